package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a fresh directory so no user config is picked up
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", "")
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "git", cfg.Git.Binary)
	assert.Equal(t, "origin", cfg.Git.Remote)
	assert.Equal(t, "", cfg.Git.Branch)
	assert.Equal(t, 2*time.Minute, cfg.Git.Timeout)
	assert.False(t, cfg.Status.Short)
	assert.Equal(t, 60, cfg.UI.FPS)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, filepath.Join(home, ".gitdash", "gitdash.log"), cfg.Log.File)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "gitdash.yaml")
	content := `
git:
  remote: upstream
  branch: develop
  timeout: 30s
status:
  short: true
ui:
  fps: 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), FilePermissions))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "upstream", cfg.Git.Remote)
	assert.Equal(t, "develop", cfg.Git.Branch)
	assert.Equal(t, 30*time.Second, cfg.Git.Timeout)
	assert.True(t, cfg.Status.Short)
	assert.Equal(t, 30, cfg.UI.FPS)
	// untouched keys keep their defaults
	assert.Equal(t, "git", cfg.Git.Binary)
}

func TestLoad_HomeConfigFile(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".gitdash")
	require.NoError(t, os.MkdirAll(dir, DirPermissions))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("git:\n  remote: mirror\n"), FilePermissions))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "mirror", cfg.Git.Remote)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "gitdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("git:\n  remote: upstream\n"), FilePermissions))

	t.Setenv("GITDASH_GIT_REMOTE", "fork")
	t.Setenv("GITDASH_STATUS_SHORT", "true")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "fork", cfg.Git.Remote)
	assert.True(t, cfg.Status.Short)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_InvalidValue(t *testing.T) {
	isolate(t)

	v := New()
	v.Set("ui.fps", 0)

	_, err := Load(v, "")
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "ui.fps", cfgErr.Parameter)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Git: GitConfig{Binary: "git", Remote: "origin", Timeout: time.Minute},
			UI:  UIConfig{FPS: 60},
			Log: LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		parameter string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty binary", func(c *Config) { c.Git.Binary = " " }, "git.binary"},
		{"empty remote", func(c *Config) { c.Git.Remote = "" }, "git.remote"},
		{"zero timeout", func(c *Config) { c.Git.Timeout = 0 }, "git.timeout"},
		{"fps too high", func(c *Config) { c.UI.FPS = 240 }, "ui.fps"},
		{"unknown level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"uppercase level", func(c *Config) { c.Log.Level = "DEBUG" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.parameter == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %v", err)
			assert.Equal(t, tt.parameter, cfgErr.Parameter)
		})
	}
}

func TestDefaultLogFile_XDGStateHome(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	assert.Equal(t, filepath.Join(state, "gitdash", "gitdash.log"), DefaultLogFile())
}

func TestExpandPath(t *testing.T) {
	home := isolate(t)

	got, err := ExpandPath("~/logs/gitdash.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "gitdash.log"), got)

	got, err = ExpandPath("/var/log/gitdash.log")
	require.NoError(t, err)
	assert.Equal(t, "/var/log/gitdash.log", got)
}

func TestConfigError_Message(t *testing.T) {
	err := newConfigError("ui.fps", 0, "must be between 1 and 120")
	assert.Equal(t, "configuration error for ui.fps = 0: invalid configuration: must be between 1 and 120", err.Error())

	err = newConfigError("git.remote", nil, "must not be empty")
	assert.Equal(t, "configuration error for git.remote: invalid configuration: must not be empty", err.Error())
}
