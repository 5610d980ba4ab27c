package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks the config for internal consistency. All checks run and
// every failure is reported in a single *ValidationError.
func Validate(cfg *Config) error {
	var errs []string

	if strings.TrimSpace(cfg.Compiler.ID) == "" {
		errs = append(errs, "compiler.id must not be empty")
	}

	u, err := url.Parse(cfg.Compiler.URL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Sprintf("compiler.url %q is not a valid URL: %v", cfg.Compiler.URL, err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Sprintf("compiler.url %q must use http or https", cfg.Compiler.URL))
	case u.Host == "":
		errs = append(errs, fmt.Sprintf("compiler.url %q has no host", cfg.Compiler.URL))
	}

	switch strings.ToLower(cfg.UI.Orientation) {
	case "vertical", "horizontal":
	default:
		errs = append(errs, fmt.Sprintf("ui.orientation %q must be \"vertical\" or \"horizontal\"", cfg.UI.Orientation))
	}

	if cfg.UI.WrapWidth <= 0 {
		errs = append(errs, "ui.wrap_width must be positive")
	}
	if cfg.UI.ScrollStep <= 0 {
		errs = append(errs, "ui.scroll_step must be positive")
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q must be one of debug, info, warn, error", cfg.Log.Level))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
