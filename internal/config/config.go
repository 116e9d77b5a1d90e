// Package config loads gitdash settings.
// Values are layered with Viper: defaults, then a config file, then
// GITDASH_* environment variables, then CLI flags bound by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// FilePermissions is the default permission mode for files written by gitdash
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// EnvPrefix is the prefix for environment overrides (GITDASH_GIT_REMOTE, ...)
	EnvPrefix = "GITDASH"

	configName = "config"
	localName  = ".gitdash"
)

// ErrInvalidConfiguration is wrapped by every ConfigError
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config is the full gitdash configuration
type Config struct {
	Git    GitConfig    `mapstructure:"git" yaml:"git"`
	Status StatusConfig `mapstructure:"status" yaml:"status"`
	UI     UIConfig     `mapstructure:"ui" yaml:"ui"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// GitConfig controls how the git executable is invoked
type GitConfig struct {
	// Binary is the git executable, looked up on PATH when not absolute
	Binary string `mapstructure:"binary" yaml:"binary"`

	// Remote is the push remote
	Remote string `mapstructure:"remote" yaml:"remote"`

	// Branch is the push branch. Empty means the branch checked out in the repository.
	Branch string `mapstructure:"branch" yaml:"branch"`

	// Timeout bounds every single git invocation
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// StatusConfig controls the Status screen
type StatusConfig struct {
	Short bool `mapstructure:"short" yaml:"short"`
}

// UIConfig controls rendering
type UIConfig struct {
	FPS int `mapstructure:"fps" yaml:"fps"`
}

// LogConfig controls the log file
type LogConfig struct {
	File   string `mapstructure:"file" yaml:"file"`
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ConfigError describes one invalid setting
type ConfigError struct {
	Parameter string
	Value     interface{}
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("configuration error for %s = %v: %v", e.Parameter, e.Value, e.Err)
	}
	return fmt.Sprintf("configuration error for %s: %v", e.Parameter, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newConfigError(parameter string, value interface{}, reason string) *ConfigError {
	return &ConfigError{
		Parameter: parameter,
		Value:     value,
		Err:       fmt.Errorf("%w: %s", ErrInvalidConfiguration, reason),
	}
}

// ConfigDir returns the global configuration directory (~/.gitdash)
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, localName), nil
}

// DefaultLogFile returns $XDG_STATE_HOME/gitdash/gitdash.log, or
// ~/.gitdash/gitdash.log when XDG_STATE_HOME is unset
func DefaultLogFile() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "gitdash", "gitdash.log")
	}
	dir, err := ConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "gitdash.log")
	}
	return filepath.Join(dir, "gitdash.log")
}

// New returns a Viper instance with defaults and environment binding applied.
// Callers bind CLI flags onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("git.binary", "git")
	v.SetDefault("git.remote", "origin")
	v.SetDefault("git.branch", "")
	v.SetDefault("git.timeout", 2*time.Minute)

	v.SetDefault("status.short", false)

	v.SetDefault("ui.fps", 60)

	v.SetDefault("log.file", DefaultLogFile())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration into v and returns the validated result.
//
// Precedence (highest first): flags bound on v, GITDASH_* environment,
// configPath (or ./.gitdash.yaml, then ~/.gitdash/config.yaml), defaults.
// A missing default config file is fine; a missing explicit one is an error.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigType("yaml")
		if _, err := os.Stat(localName + ".yaml"); err == nil {
			v.SetConfigFile(localName + ".yaml")
		} else {
			v.SetConfigName(configName)
			if dir, err := ConfigDir(); err == nil {
				v.AddConfigPath(dir)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// No config file anywhere on the search path
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("config file not found: %s", configPath)
		default:
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every setting and returns the first problem found
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Git.Binary) == "" {
		return newConfigError("git.binary", nil, "must not be empty")
	}
	if strings.TrimSpace(c.Git.Remote) == "" {
		return newConfigError("git.remote", nil, "must not be empty")
	}
	if c.Git.Timeout <= 0 {
		return newConfigError("git.timeout", c.Git.Timeout, "must be positive")
	}
	if c.UI.FPS < 1 || c.UI.FPS > 120 {
		return newConfigError("ui.fps", c.UI.FPS, "must be between 1 and 120")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return newConfigError("log.level", c.Log.Level, "must be one of debug, info, warn, error")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return newConfigError("log.format", c.Log.Format, "must be text or json")
	}
	return nil
}

// ExpandPath expands a leading ~/ to the user's home directory
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, path[2:]), nil
}
