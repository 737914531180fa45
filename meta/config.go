// Package meta implements the front-end matcher of the grep engine.
//
// An Engine owns one compiled NFA, the two anchor flags of its pattern and
// an optional literal prefilter. For every line it decides which start
// offsets to try and runs the backtracking simulator from each:
//   - Prefilter: rejects lines that contain none of the required literals
//   - Literal: answers directly when the pattern is a finite literal set
//   - Backtracker: depth first NFA simulation for everything else
//
// Strategy selection is based on the literals the pattern requires and
// on its anchors. The prefilter never changes a result, it only skips work.
package meta

// Config controls front-end behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // always run the NFA
//	engine, err := meta.CompileWithConfig("foo|bar", config)
type Config struct {
	// EnablePrefilter enables literal-based prefiltering.
	// When false, every line is simulated.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the minimum length for prefilter literals.
	// Shorter literals may have too many false positives.
	// Default: 1
	MinLiteralLen int

	// MaxLiterals limits the number of literals to extract for prefiltering.
	// Default: 64
	MaxLiterals int

	// MaxClassExpansion is the largest character class expanded into
	// literals. [abc] becomes three literals; [a-z] stays opaque.
	// Zero disables expansion.
	// Default: 10
	MaxClassExpansion int

	// MaxStates limits the size of the compiled NFA.
	// Default: 1 << 20
	MaxStates int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:   true,
		MinLiteralLen:     1,
		MaxLiterals:       64,
		MaxClassExpansion: 10,
		MaxStates:         1 << 20,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - MinLiteralLen: 1 to 64
//   - MaxLiterals: 1 to 1,000
//   - MaxClassExpansion: 0 to 256
//   - MaxStates: 16 to 16,777,216
func (c Config) Validate() error {
	if c.EnablePrefilter {
		if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
			return &ConfigError{
				Field:   "MinLiteralLen",
				Message: "must be between 1 and 64",
			}
		}
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
		if c.MaxClassExpansion < 0 || c.MaxClassExpansion > 256 {
			return &ConfigError{
				Field:   "MaxClassExpansion",
				Message: "must be between 0 and 256",
			}
		}
	}

	if c.MaxStates < 16 || c.MaxStates > 1<<24 {
		return &ConfigError{
			Field:   "MaxStates",
			Message: "must be between 16 and 16,777,216",
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
	return "regexp: invalid config: " + e.Field + ": " + e.Message
}
