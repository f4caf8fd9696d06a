package task

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/felixgeelhaar/vstask/internal/errors"
)

// Table maps task names to definitions and remembers first-seen order.
// An entry that failed validation keeps its name and its error; it is
// listed like any other task but cannot be looked up for running.
type Table struct {
	order   []string
	entries map[string]tableEntry
}

type tableEntry struct {
	def *Definition
	err error
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]tableEntry)}
}

// Set stores def under name. Replacing an existing name keeps its position.
func (t *Table) Set(name string, def *Definition) {
	t.put(name, tableEntry{def: def})
}

// SetInvalid records that the entry named name failed validation with err.
func (t *Table) SetInvalid(name string, err error) {
	t.put(name, tableEntry{err: err})
}

func (t *Table) put(name string, e tableEntry) {
	if _, ok := t.entries[name]; !ok {
		t.order = append(t.order, name)
	}
	t.entries[name] = e
}

// Get looks up a valid definition by name.
func (t *Table) Get(name string) (*Definition, bool) {
	if t == nil {
		return nil, false
	}
	e, ok := t.entries[name]
	if !ok || e.err != nil {
		return nil, false
	}
	return e.def, true
}

// Lookup returns the definition to run for name. An unknown name yields
// TASK-002 and an entry that failed validation yields its TASK-003 error.
func (t *Table) Lookup(name string) (*Definition, error) {
	if def, ok := t.Get(name); ok {
		return def, nil
	}
	if err := t.Err(name); err != nil {
		return nil, err
	}
	return nil, errors.NewUnknownTaskError(name)
}

// Err returns the validation error recorded for name, or nil.
func (t *Table) Err(name string) error {
	if t == nil {
		return nil
	}
	return t.entries[name].err
}

// Names returns the task names in table order, including invalid entries.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of distinct task names.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Name derives the table key for the entry at index.
func Name(entry gjson.Result, index int) string {
	if label := entry.Get("label"); label.Exists() {
		return label.String()
	}
	if group := entry.Get("group"); group.Type == gjson.String {
		return group.Str
	}
	return fmt.Sprintf("task%d", index)
}

// Build names every entry and validates it. Entries that fail validation
// are kept with their TASK-003 error so the rest of the file stays usable.
func Build(entries []gjson.Result) *Table {
	table := NewTable()
	for i, entry := range entries {
		name := Name(entry, i)
		if !entry.IsObject() {
			table.SetInvalid(name, errors.NewInvalidDefinitionError(i, name, fmt.Errorf("task entry must be an object")))
			continue
		}

		def := new(Definition)
		if err := json.Unmarshal([]byte(entry.Raw), def); err != nil {
			table.SetInvalid(name, errors.NewInvalidDefinitionError(i, name, err))
			continue
		}
		table.Set(name, def)
	}
	return table
}
