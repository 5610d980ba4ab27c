package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load discovers a config file relative to the working directory. A non-empty
// path skips discovery and must exist.
func Load(path string) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd, path)
}

// LoadFrom merges the discovered (or explicit) config file onto the defaults,
// applies environment overrides and validates the result.
func LoadFrom(dir, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = discoverConfigPath(dir)
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// discoverConfigPath returns the first existing file of the discovery chain,
// or "" when running on defaults only.
func discoverConfigPath(dir string) string {
	candidates := []string{
		filepath.Join(dir, "cewatch.yaml"),
		filepath.Join(dir, "cewatch.toml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "cewatch", "config.yaml"),
			filepath.Join(home, ".config", "cewatch", "config.toml"),
		)
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// loadFromFile decodes a YAML or TOML file depending on its extension.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	}
	return &cfg, nil
}

// merge copies non-zero scalar fields, non-nil slices and non-nil *bool
// fields of override onto base.
func merge(base *Config, override *Config) {
	if override.Compiler.ID != "" {
		base.Compiler.ID = override.Compiler.ID
	}
	if override.Compiler.URL != "" {
		base.Compiler.URL = override.Compiler.URL
	}
	if override.Compiler.Args != nil {
		base.Compiler.Args = override.Compiler.Args
	}
	if override.Compiler.Execute != nil {
		base.Compiler.Execute = override.Compiler.Execute
	}

	if override.UI.Orientation != "" {
		base.UI.Orientation = override.UI.Orientation
	}
	if override.UI.WrapWidth != 0 {
		base.UI.WrapWidth = override.UI.WrapWidth
	}
	if override.UI.ScrollStep != 0 {
		base.UI.ScrollStep = override.UI.ScrollStep
	}

	if override.Log.Path != "" {
		base.Log.Path = override.Log.Path
	}
	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
}

// applyEnvOverrides applies CEWATCH_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CEWATCH_COMPILER"); v != "" {
		cfg.Compiler.ID = v
	}
	if v := os.Getenv("CEWATCH_URL"); v != "" {
		cfg.Compiler.URL = v
	}
	if v := os.Getenv("CEWATCH_ORIENTATION"); v != "" {
		cfg.UI.Orientation = v
	}
	if v := os.Getenv("CEWATCH_EXECUTE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Compiler.Execute = boolPtr(b)
		} else {
			fmt.Fprintf(os.Stderr, "warning: CEWATCH_EXECUTE=%q is not a valid boolean, ignoring\n", v)
		}
	}
	if v := os.Getenv("CEWATCH_LOG"); v != "" {
		cfg.Log.Path = v
	}
	if v := os.Getenv("CEWATCH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// SetExecute overrides whether the compiled program is run after compiling.
func (c *Config) SetExecute(b bool) {
	c.Compiler.Execute = boolPtr(b)
}
