package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/vstask/internal/errors"
	"github.com/felixgeelhaar/vstask/internal/exec"
	"github.com/felixgeelhaar/vstask/internal/workspace"
)

// GlobalConfig represents the optional vstask configuration file
type GlobalConfig struct {
	Marker    string        `yaml:"marker,omitempty"`
	TasksFile string        `yaml:"tasks_file,omitempty"`
	Shell     ShellConfig   `yaml:"shell,omitempty"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
}

// ShellConfig selects the login shell tasks are fed to
type ShellConfig struct {
	Executable string   `yaml:"executable,omitempty"`
	Args       []string `yaml:"args,omitempty"`
}

// LoggingConfig controls diagnostic output
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format,omitempty"` // "text", "json"

	// File enables a rotating log file in addition to stderr.
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
}

// defaultGlobalConfig returns the built-in configuration
func defaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Marker:    workspace.DefaultMarker,
		TasksFile: workspace.DefaultTasksFile,
		Shell: ShellConfig{
			Executable: exec.DefaultShell.Executable,
			Args:       append([]string(nil), exec.DefaultShell.Args...),
		},
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// getConfigPath returns ~/.vstask/config.yaml
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".vstask", "config.yaml"), nil
}

// loadConfig reads the configuration at path, or at the default location
// when path is empty. A missing default file yields the defaults; a missing
// explicit file is an error. Keys absent from the file keep their defaults.
func loadConfig(path string) (*GlobalConfig, error) {
	explicit := path != ""
	if !explicit {
		p, err := getConfigPath()
		if err != nil {
			return defaultGlobalConfig(), nil
		}
		path = p
	}

	config := defaultGlobalConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return config, nil
		}
		return nil, errors.Wrap(errors.ErrCodeGlobalConfig, "failed to read config", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeGlobalConfig, "failed to parse config", err).
			WithSuggestion(fmt.Sprintf("Fix or remove %s", path))
	}

	config.normalize()
	return config, nil
}

// normalize restores defaults for keys the file set to empty values.
func (c *GlobalConfig) normalize() {
	defaults := defaultGlobalConfig()
	if strings.TrimSpace(c.Marker) == "" {
		c.Marker = defaults.Marker
	}
	if strings.TrimSpace(c.TasksFile) == "" {
		c.TasksFile = defaults.TasksFile
	}
	if c.Shell.Executable == "" {
		c.Shell = defaults.Shell
	}
	c.Logging.File = expandPath(c.Logging.File)
}

// shell returns the configured login shell for the task runner.
func (c *GlobalConfig) shell() exec.Shell {
	return exec.Shell{Executable: c.Shell.Executable, Args: c.Shell.Args}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
