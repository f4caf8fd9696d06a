package task

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Definition is a single validated entry of the "tasks" array.
// Definitions are never modified after Build returns them.
type Definition struct {
	// Label is the task's name as written in the file, if any.
	Label string

	// Type selects shell interpretation or a literal process invocation.
	Type Type

	// Command is the command text to run.
	Command string

	// Args are appended to Command.
	Args []string

	// Detail is a human-readable description.
	Detail string

	// IsBackground marks long-running watch tasks.
	IsBackground bool

	Group          *Group
	Options        *Options
	Presentation   *Presentation
	ProblemMatcher []ProblemMatcher
}

// Group places a task in a build or test group.
type Group struct {
	// Name is set when the file gives the group as a plain string.
	Name string

	Kind      GroupKind
	IsDefault bool
}

// UnmarshalJSON accepts either a plain string or {"kind", "isDefault"}.
func (g *Group) UnmarshalJSON(b []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(b), []byte(`"`)) {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		kind, err := ParseGroupKind(name)
		if err != nil {
			kind = GroupKindNone
		}
		*g = Group{Name: name, Kind: kind}
		return nil
	}

	var raw struct {
		Kind      *GroupKind `json:"kind"`
		IsDefault bool       `json:"isDefault"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("group: %w", err)
	}
	if raw.Kind == nil {
		return fmt.Errorf("group: kind is required")
	}
	*g = Group{Kind: *raw.Kind, IsDefault: raw.IsDefault}
	return nil
}

// Options carries the working directory, environment, and shell overrides.
type Options struct {
	// Cwd is joined to the project root unless it is absolute.
	Cwd string `json:"cwd,omitempty"`

	// Env entries are added to the inherited environment.
	Env map[string]string `json:"env,omitempty"`

	// Shell replaces the configured login shell for this task.
	Shell *Shell `json:"shell,omitempty"`
}

// Shell names a shell executable and the arguments it is started with.
type Shell struct {
	Executable string   `json:"executable"`
	Args       []string `json:"args,omitempty"`
}

// Presentation holds the editor's output panel settings.
type Presentation struct {
	Reveal Reveal `json:"reveal"`
	Echo   bool   `json:"echo"`
	Focus  bool   `json:"focus"`
	Panel  Panel  `json:"panel"`
}

// UnmarshalJSON applies the schema defaults for omitted fields.
func (p *Presentation) UnmarshalJSON(b []byte) error {
	type plain Presentation
	v := plain{Reveal: RevealAlways, Echo: true, Focus: true, Panel: PanelShared}
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("presentation: %w", err)
	}
	*p = Presentation(v)
	return nil
}

// ProblemMatcher is either a reference to a named matcher ("$go") or an
// inline matcher description.
type ProblemMatcher struct {
	Name     string
	Base     string
	Owner    string
	Severity Severity
}

type problemMatchers []ProblemMatcher

// UnmarshalJSON accepts a string, an object, or an array of either.
func (pm *problemMatchers) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*pm = nil
		return nil
	}
	if bytes.HasPrefix(b, []byte("[")) {
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		out := make(problemMatchers, 0, len(items))
		for _, item := range items {
			m, err := decodeProblemMatcher(item)
			if err != nil {
				return err
			}
			out = append(out, m)
		}
		*pm = out
		return nil
	}

	m, err := decodeProblemMatcher(b)
	if err != nil {
		return err
	}
	*pm = problemMatchers{m}
	return nil
}

func decodeProblemMatcher(b []byte) (ProblemMatcher, error) {
	if bytes.HasPrefix(bytes.TrimSpace(b), []byte(`"`)) {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return ProblemMatcher{}, err
		}
		return ProblemMatcher{Name: name}, nil
	}

	var raw struct {
		Base     string    `json:"base"`
		Owner    string    `json:"owner"`
		Severity *Severity `json:"severity"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return ProblemMatcher{}, fmt.Errorf("problemMatcher: %w", err)
	}
	m := ProblemMatcher{Base: raw.Base, Owner: raw.Owner, Severity: SeverityError}
	if m.Owner == "" {
		m.Owner = "external"
	}
	if raw.Severity != nil {
		m.Severity = *raw.Severity
	}
	return m, nil
}

// UnmarshalJSON decodes and validates one task entry.
func (d *Definition) UnmarshalJSON(b []byte) error {
	var raw struct {
		Label          *string         `json:"label"`
		Type           *Type           `json:"type"`
		Command        *string         `json:"command"`
		Args           []string        `json:"args"`
		Detail         string          `json:"detail"`
		IsBackground   bool            `json:"isBackground"`
		Group          *Group          `json:"group"`
		Options        *Options        `json:"options"`
		Presentation   *Presentation   `json:"presentation"`
		ProblemMatcher problemMatchers `json:"problemMatcher"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	if raw.Command == nil || *raw.Command == "" {
		return fmt.Errorf("command is required")
	}
	if raw.Type == nil {
		return fmt.Errorf("type is required")
	}
	if raw.Options != nil && raw.Options.Shell != nil && raw.Options.Shell.Executable == "" {
		return fmt.Errorf("options.shell: executable is required")
	}

	*d = Definition{
		Type:           *raw.Type,
		Command:        *raw.Command,
		Args:           raw.Args,
		Detail:         raw.Detail,
		IsBackground:   raw.IsBackground,
		Group:          raw.Group,
		Options:        raw.Options,
		Presentation:   raw.Presentation,
		ProblemMatcher: raw.ProblemMatcher,
	}
	if raw.Label != nil {
		d.Label = *raw.Label
	}
	return nil
}

// Cwd returns options.cwd, or "" when no override is set.
func (d *Definition) Cwd() string {
	if d.Options == nil {
		return ""
	}
	return d.Options.Cwd
}

// Env returns the environment overrides, possibly nil.
func (d *Definition) Env() map[string]string {
	if d.Options == nil {
		return nil
	}
	return d.Options.Env
}

// ShellOverride returns the per-task shell, or nil.
func (d *Definition) ShellOverride() *Shell {
	if d.Options == nil {
		return nil
	}
	return d.Options.Shell
}
