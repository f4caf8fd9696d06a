package exec

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var variablePattern = regexp.MustCompile(`\$\{([A-Za-z][A-Za-z0-9]*)\}`)

// Variables holds the values substituted for ${name} references in a task.
type Variables map[string]string

// NewVariables returns the built-in variables for a project root and the
// directory vstask was invoked from.
func NewVariables(root, cwd string) Variables {
	if cwd == "" {
		cwd = root
	}
	return Variables{
		"workspaceFolder":         root,
		"workspaceFolderBasename": filepath.Base(root),
		"cwd":                     cwd,
		"pathSeparator":           string(filepath.Separator),
	}
}

// Expand replaces every known ${name} in s. Unknown references are kept as
// written.
func (v Variables) Expand(s string) string {
	if len(v) == 0 || !strings.Contains(s, "${") {
		return s
	}
	return variablePattern.ReplaceAllStringFunc(s, func(match string) string {
		if value, ok := v[match[2:len(match)-1]]; ok {
			return value
		}
		return match
	})
}

// WorkDir resolves the directory a task runs in. A relative cwd is joined to
// root; an absolute one replaces it.
func WorkDir(root, cwd string) string {
	if cwd == "" {
		return root
	}
	if filepath.IsAbs(cwd) {
		return filepath.Clean(cwd)
	}
	return filepath.Join(root, cwd)
}

// Environ appends overrides to base in key order. Later entries win when the
// child looks a name up.
func Environ(base []string, overrides map[string]string, vars Variables) []string {
	if len(overrides) == 0 {
		return base
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(base)+len(keys))
	env = append(env, base...)
	for _, k := range keys {
		env = append(env, k+"="+vars.Expand(overrides[k]))
	}
	return env
}
