package config

func boolPtr(b bool) *bool { return &b }

func DefaultConfig() Config {
	return Config{
		Compiler: CompilerConfig{
			ID:      "clang_trunk",
			URL:     "https://godbolt.org",
			Execute: boolPtr(false),
		},
		UI: UIConfig{
			Orientation: "vertical",
			WrapWidth:   256,
			ScrollStep:  1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
