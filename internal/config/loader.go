package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/netgraph/internal/errors"
)

const (
	// GlobalConfigDir is the directory for the config file, under $HOME.
	GlobalConfigDir = ".config/netgraph"
	// ConfigFileName is the config file name.
	ConfigFileName = "config.yaml"
	// EnvPrefix is the prefix for environment variable overrides
	// (e.g. NETGRAPH_INTERVAL).
	EnvPrefix = "NETGRAPH"
)

// DefaultPath returns the default config file path, or empty string when the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, ConfigFileName)
}

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+path,
				"Run 'netgraph init' to create one, or specify a file with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file: "+path,
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// LoadOrDefault loads the config from the explicit path when given, otherwise
// from the default location. A missing default config is not an error; the
// built-in defaults are returned instead.
func LoadOrDefault(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}

	path := DefaultPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults and
// environment overrides merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults seeds viper so keys absent from the file keep their defaults.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("interval", def.Interval)
	v.SetDefault("history", def.History)
	v.SetDefault("stats", def.Stats)
	v.SetDefault("auto_scale", def.AutoScale)
	v.SetDefault("theme", def.Theme)
}

// Validate checks the config values for internal consistency.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Sampling interval must be positive, got %g", c.Interval),
			"Set 'interval' to a positive number of seconds, e.g. 1 or 0.5")
	}
	if c.History <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("History size must be positive, got %d", c.History),
			"Set 'history' to a positive sample count, e.g. 60")
	}
	switch c.Theme {
	case "auto", "dark", "light":
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown theme %q", c.Theme),
			"Valid themes are: auto, dark, light")
	}
	return nil
}

// Save writes the config as YAML to the given path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is a bug; please report it")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to create config directory: "+filepath.Dir(path),
			"Check directory permissions")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check file permissions")
	}

	return nil
}
