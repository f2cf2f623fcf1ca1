package filter

import (
	"sync"

	"github.com/gobwas/glob"
)

const (
	DefaultMaxDepth       = 32
	DefaultMaxInputLength = 4096

	// functionNameSeparator separates the segments of a qualified function name. A `*` in an
	// allowlist pattern does not cross it, `**` does.
	functionNameSeparator = '.'
)

// Config bounds a parse. A nil *Config parses with the defaults.
// A Config must not be copied after first use.
type Config struct {
	// AllowedFunctionNames restricts the functions a filter may call. Entries are glob patterns,
	// e.g. `geo.*`. A nil slice disables the check, an empty one rejects every function.
	AllowedFunctionNames []string

	// MaxDepth is the deepest nesting of parentheses and function argument lists. Zero or
	// negative means DefaultMaxDepth.
	MaxDepth int

	// MaxInputLength is the longest accepted filter in bytes. Zero or negative means
	// DefaultMaxInputLength.
	MaxInputLength int

	allowlistErr  error
	allowlist     []glob.Glob
	allowlistOnce sync.Once
}

// DefaultConfig returns a new Config with the default limits and no function allowlist.
func DefaultConfig() *Config {
	return &Config{
		MaxDepth:       DefaultMaxDepth,
		MaxInputLength: DefaultMaxInputLength,
	}
}

// Validate compiles the function allowlist and returns an error for a malformed pattern.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return nil
	}

	_, err := cfg.compiledAllowlist()

	return err
}

// IsFunctionAllowed returns true if the qualified function name matches the allowlist, or if
// there is no allowlist.
func (cfg *Config) IsFunctionAllowed(name string) (bool, error) {
	if cfg == nil || cfg.AllowedFunctionNames == nil {
		return true, nil
	}

	patterns, err := cfg.compiledAllowlist()
	if err != nil {
		return false, err
	}

	for _, pattern := range patterns {
		if pattern.Match(name) {
			return true, nil
		}
	}

	return false, nil
}

func (cfg *Config) maxDepth() int {
	if cfg == nil || cfg.MaxDepth <= 0 {
		return DefaultMaxDepth
	}

	return cfg.MaxDepth
}

func (cfg *Config) maxInputLength() int {
	if cfg == nil || cfg.MaxInputLength <= 0 {
		return DefaultMaxInputLength
	}

	return cfg.MaxInputLength
}

// compiledAllowlist compiles the allowlist on first call.
// Uses sync.Once so a Config can be shared by concurrent parses.
func (cfg *Config) compiledAllowlist() ([]glob.Glob, error) {
	cfg.allowlistOnce.Do(func() {
		patterns := make([]glob.Glob, 0, len(cfg.AllowedFunctionNames))

		for _, name := range cfg.AllowedFunctionNames {
			pattern, err := glob.Compile(name, functionNameSeparator)
			if err != nil {
				cfg.allowlistErr = InvalidConfigError{Message: "malformed allowed function pattern " + name, Cause: err}
				return
			}

			patterns = append(patterns, pattern)
		}

		cfg.allowlist = patterns
	})

	return cfg.allowlist, cfg.allowlistErr
}
