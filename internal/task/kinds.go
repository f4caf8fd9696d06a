package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Type selects how the command text is handed to the shell.
type Type int

const (
	// TypeShell passes the command text to the shell for interpretation.
	TypeShell Type = iota
	// TypeProcess runs the command and its args as a literal invocation.
	TypeProcess
)

var typeNames = []string{"shell", "process"}

// ParseType parses a task type name, ignoring case.
func ParseType(s string) (Type, error) {
	i, err := parseKind("task type", s, typeNames)
	return Type(i), err
}

func (t Type) String() string { return kindName(int(t), typeNames) }

// UnmarshalJSON decodes a task type from a JSON string.
func (t *Type) UnmarshalJSON(b []byte) error {
	s, err := kindString("type", b)
	if err != nil {
		return err
	}
	v, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// GroupKind is the task group a definition belongs to.
type GroupKind int

const (
	GroupKindNone GroupKind = iota
	GroupKindBuild
	GroupKindTest
)

var groupKindNames = []string{"none", "build", "test"}

// ParseGroupKind parses a group kind name, ignoring case.
func ParseGroupKind(s string) (GroupKind, error) {
	i, err := parseKind("group kind", s, groupKindNames)
	return GroupKind(i), err
}

func (k GroupKind) String() string { return kindName(int(k), groupKindNames) }

// UnmarshalJSON decodes a group kind from a JSON string.
func (k *GroupKind) UnmarshalJSON(b []byte) error {
	s, err := kindString("group kind", b)
	if err != nil {
		return err
	}
	v, err := ParseGroupKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Reveal controls whether task output is brought to the front.
type Reveal int

const (
	RevealAlways Reveal = iota
	RevealSilent
	RevealNever
)

var revealNames = []string{"always", "silent", "never"}

// ParseReveal parses a reveal option, ignoring case.
func ParseReveal(s string) (Reveal, error) {
	i, err := parseKind("reveal option", s, revealNames)
	return Reveal(i), err
}

func (r Reveal) String() string { return kindName(int(r), revealNames) }

// UnmarshalJSON decodes a reveal option from a JSON string.
func (r *Reveal) UnmarshalJSON(b []byte) error {
	s, err := kindString("reveal", b)
	if err != nil {
		return err
	}
	v, err := ParseReveal(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Panel controls whether the output panel is shared between tasks.
type Panel int

const (
	PanelShared Panel = iota
	PanelDedicated
	PanelNew
)

var panelNames = []string{"shared", "dedicated", "new"}

// ParsePanel parses a panel option, ignoring case.
func ParsePanel(s string) (Panel, error) {
	i, err := parseKind("panel option", s, panelNames)
	return Panel(i), err
}

func (p Panel) String() string { return kindName(int(p), panelNames) }

// UnmarshalJSON decodes a panel option from a JSON string.
func (p *Panel) UnmarshalJSON(b []byte) error {
	s, err := kindString("panel", b)
	if err != nil {
		return err
	}
	v, err := ParsePanel(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Severity is the severity assigned to problems found by a matcher.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

var severityNames = []string{"error", "warning", "info"}

// ParseSeverity parses a severity name, ignoring case.
func ParseSeverity(s string) (Severity, error) {
	i, err := parseKind("severity", s, severityNames)
	return Severity(i), err
}

func (s Severity) String() string { return kindName(int(s), severityNames) }

// UnmarshalJSON decodes a severity from a JSON string.
func (s *Severity) UnmarshalJSON(b []byte) error {
	str, err := kindString("severity", b)
	if err != nil {
		return err
	}
	v, err := ParseSeverity(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func parseKind(what, s string, names []string) (int, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unsupported %s %q (want one of %s)", what, s, strings.Join(names, ", "))
}

func kindName(i int, names []string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func kindString(field string, b []byte) (string, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", fmt.Errorf("%s must be a string", field)
	}
	return s, nil
}
