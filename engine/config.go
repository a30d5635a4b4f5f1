package engine

// Config controls engine construction.
type Config struct {
	// MaxMemoBits caps the failure memo at phrases * (subject length + 1)
	// bits. Longer subjects are searched without the memo.
	// Default: 256 * 1024 * 8 (256KB)
	MaxMemoBits int

	// EnablePrefilter rejects subjects missing the pattern's longest literal
	// before backtracking.
	// Default: true
	EnablePrefilter bool
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxMemoBits:     256 * 1024 * 8,
		EnablePrefilter: true,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.MaxMemoBits < 0 || c.MaxMemoBits > 1<<30 {
		return &ConfigError{
			Field:   "MaxMemoBits",
			Message: "must be between 0 and 1<<30",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "wildcard: invalid engine config: " + e.Field + ": " + e.Message
}
