// Package workspace finds the project root that owns a tasks file and loads
// the raw task entries from it.
//
// The upward search is a pure function of its starting path. Nothing in this
// package changes the process working directory.
package workspace

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/felixgeelhaar/vstask/internal/errors"
	"github.com/felixgeelhaar/vstask/internal/log"
	"github.com/felixgeelhaar/vstask/internal/task"
)

const (
	// DefaultMarker is the settings directory that identifies a project root.
	DefaultMarker = ".vscode"

	// DefaultTasksFile is the task list file inside the marker directory.
	DefaultTasksFile = "tasks.json"
)

// ErrMarkerNotFound is returned by FindRoot when no ancestor holds the marker.
var ErrMarkerNotFound = errors.New(errors.ErrCodeMarkerNotFound, "marker directory not found")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FindRoot returns the first directory, starting at start and walking toward
// the filesystem root, that contains a subdirectory named marker.
func FindRoot(start, marker string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrMarkerNotFound
		}
		dir = parent
	}
}

// StripComments drops every line whose trimmed content starts with "//".
// Block comments and trailing comments are left alone.
func StripComments(data []byte) []byte {
	data = bytes.TrimPrefix(data, utf8BOM)

	lines := strings.Split(string(data), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		kept = append(kept, line)
	}
	return []byte(strings.Join(kept, "\n"))
}

// Result is the outcome of a Locate call.
type Result struct {
	// Root is the project root, or "" when no marker was found.
	Root string

	// Tasks is never nil. It is empty when nothing could be loaded.
	Tasks *task.Table
}

// Found reports whether a project root was resolved.
func (r Result) Found() bool { return r.Root != "" }

// Locator resolves a project root and its task table.
type Locator struct {
	Marker    string
	TasksFile string
	Logger    *log.Logger
}

// NewLocator returns a locator using the given marker and tasks file names.
// Empty names fall back to the defaults.
func NewLocator(marker, tasksFile string, logger *log.Logger) *Locator {
	if marker == "" {
		marker = DefaultMarker
	}
	if tasksFile == "" {
		tasksFile = DefaultTasksFile
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Locator{Marker: marker, TasksFile: tasksFile, Logger: logger}
}

// Locate walks up from start and loads the tasks file under the marker.
//
// A missing marker, an unreadable file, a malformed document, or a document
// without a "tasks" array all yield an empty table. Entries that violate the
// definition schema stay in the table with their error.
func (l *Locator) Locate(start string) Result {
	res := Result{Tasks: task.NewTable()}

	root, err := FindRoot(start, l.Marker)
	if err != nil {
		l.Logger.Debug("project root not found", slog.String("start", start), slog.String("marker", l.Marker))
		return res
	}
	res.Root = root

	path := filepath.Join(root, l.Marker, l.TasksFile)
	entries, err := l.load(path)
	if err != nil {
		l.Logger.WithError(err).Debug("tasks file not loaded", slog.String("path", path))
		return res
	}

	res.Tasks = task.Build(entries)
	for _, name := range res.Tasks.Names() {
		if err := res.Tasks.Err(name); err != nil {
			l.Logger.WithError(err).Debug("task definition invalid", slog.String("task", name))
		}
	}

	l.Logger.Debug("tasks loaded",
		slog.String("root", root),
		slog.String("path", path),
		slog.Int("count", res.Tasks.Len()),
	)
	return res
}

func (l *Locator) load(path string) ([]gjson.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTasksFileRead, "failed to read tasks file", err)
	}

	doc := StripComments(data)
	if !gjson.ValidBytes(doc) {
		return nil, errors.New(errors.ErrCodeTasksFileMalformed, "tasks file is not valid JSON")
	}

	tasks := gjson.GetBytes(doc, "tasks")
	if !tasks.IsArray() {
		return nil, errors.New(errors.ErrCodeTasksFileMalformed, "tasks file has no tasks array")
	}
	return tasks.Array(), nil
}
