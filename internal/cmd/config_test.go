package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/vstask/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultGlobalConfig(t *testing.T) {
	config := defaultGlobalConfig()

	assert.Equal(t, ".vscode", config.Marker)
	assert.Equal(t, "tasks.json", config.TasksFile)
	assert.Equal(t, "bash", config.Shell.Executable)
	assert.Equal(t, []string{"--login"}, config.Shell.Args)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "text", config.Logging.Format)
	assert.Empty(t, config.Logging.File)
}

func TestLoadConfigDefaultPathMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultGlobalConfig(), config)
}

func TestLoadConfigDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".vstask")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("marker: .editor\n"), 0o600))

	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ".editor", config.Marker)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, `
shell:
  executable: zsh
logging:
  level: debug
  file: ~/logs/vstask.log
`)

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ".vscode", config.Marker, "unset keys keep defaults")
	assert.Equal(t, "zsh", config.Shell.Executable)
	assert.Equal(t, []string{"--login"}, config.Shell.Args)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "text", config.Logging.Format)
	assert.Equal(t, 10, config.Logging.MaxSizeMB)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "vstask.log"), config.Logging.File)
}

func TestLoadConfigFull(t *testing.T) {
	path := writeConfig(t, `
marker: .editor
tasks_file: jobs.json
shell:
  executable: sh
  args: []
logging:
  level: error
  format: json
  max_size_mb: 1
  max_backups: 2
  max_age_days: 3
`)

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ".editor", config.Marker)
	assert.Equal(t, "jobs.json", config.TasksFile)
	assert.Equal(t, "sh", config.shell().Executable)
	assert.Empty(t, config.shell().Args)
	assert.Equal(t, LoggingConfig{Level: "error", Format: "json", MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 3}, config.Logging)
}

func TestLoadConfigEmptyValuesRestoreDefaults(t *testing.T) {
	path := writeConfig(t, "marker: \"\"\ntasks_file: \"  \"\n")

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ".vscode", config.Marker)
	assert.Equal(t, "tasks.json", config.TasksFile)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"explicit file missing", filepath.Join(t.TempDir(), "missing.yaml")},
		{"malformed yaml", writeConfig(t, "marker: [unclosed\n")},
		{"wrong type", writeConfig(t, "shell: bash\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := loadConfig(tt.path)
			require.Error(t, err)
			assert.Nil(t, config)
			assert.Equal(t, errors.ErrCodeGlobalConfig, errors.CodeOf(err))
		})
	}
}
