package config

// Config is the merged cewatch configuration: defaults, then the discovered
// config file, then CEWATCH_* environment variables, then command-line flags.
type Config struct {
	Compiler CompilerConfig `yaml:"compiler" toml:"compiler"`
	UI       UIConfig       `yaml:"ui" toml:"ui"`
	Log      LogConfig      `yaml:"log" toml:"log"`
}

type CompilerConfig struct {
	ID      string   `yaml:"id" toml:"id"`
	URL     string   `yaml:"url" toml:"url"`
	Args    []string `yaml:"args" toml:"args"`
	Execute *bool    `yaml:"execute" toml:"execute"`
}

// ExecuteEnabled reports whether the compiled program should also be run.
func (c CompilerConfig) ExecuteEnabled() bool {
	return c.Execute != nil && *c.Execute
}

type UIConfig struct {
	Orientation string `yaml:"orientation" toml:"orientation"`
	WrapWidth   int    `yaml:"wrap_width" toml:"wrap_width"`
	ScrollStep  int    `yaml:"scroll_step" toml:"scroll_step"`
}

type LogConfig struct {
	Path  string `yaml:"path" toml:"path"`
	Level string `yaml:"level" toml:"level"`
}
