package exec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/vstask/internal/task"
)

func TestScript(t *testing.T) {
	vars := NewVariables("/work/app", "/work/app/src")

	tests := []struct {
		name string
		def  *task.Definition
		want string
	}{
		{
			name: "shell command verbatim",
			def:  &task.Definition{Type: task.TypeShell, Command: "make && make install | tee log"},
			want: "make && make install | tee log",
		},
		{
			name: "shell args quoted only when needed",
			def:  &task.Definition{Type: task.TypeShell, Command: "go", Args: []string{"test", "-run", "Test Foo", "it's", ""}},
			want: `go test -run 'Test Foo' 'it'\''s' ''`,
		},
		{
			name: "shell globs left for the shell",
			def:  &task.Definition{Type: task.TypeShell, Command: "ls", Args: []string{"*.go"}},
			want: "ls *.go",
		},
		{
			name: "process quotes everything",
			def:  &task.Definition{Type: task.TypeProcess, Command: "go", Args: []string{"vet", "./..."}},
			want: "'go' 'vet' './...'",
		},
		{
			name: "variables expanded",
			def: &task.Definition{
				Type:    task.TypeShell,
				Command: "cd ${workspaceFolder} && echo ${workspaceFolderBasename}",
				Args:    []string{"${cwd}", "${unknown}"},
			},
			want: "cd /work/app && echo app /work/app/src ${unknown}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Script(tt.def, vars))
		})
	}
}
