package logger

import "errors"

// Supported encodings.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Default configuration values.
const (
	// DefaultLevel is the default logging level.
	DefaultLevel = "info"
	// DefaultFormat is the default log format. The CLI is used interactively,
	// so console output is the default rather than JSON.
	DefaultFormat = FormatConsole
)

// DefaultOutputPaths is the default list of paths to write log output to.
var DefaultOutputPaths = []string{"stderr"}

// ErrInvalidEncoding is returned when an unknown log format is configured.
var ErrInvalidEncoding = errors.New("invalid log encoding format")

// Config represents the logger configuration.
type Config struct {
	// Level is the minimum logging level (debug, info, warn, error).
	Level string `env:"LOG_LEVEL" yaml:"level" mapstructure:"level"`
	// Format is the output format: "console" or "json".
	Format string `env:"LOG_FORMAT" yaml:"format" mapstructure:"format"`
	// Development disables sampling and enables development stack traces.
	Development bool `yaml:"development" mapstructure:"development"`
	// OutputPaths is a list of URLs or file paths to write logging output to.
	OutputPaths []string `yaml:"output_paths" mapstructure:"output_paths"`
}

// SetDefaults applies default values to the config if not set.
func (c *Config) SetDefaults() {
	if c.Level == "" {
		c.Level = DefaultLevel
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if len(c.OutputPaths) == 0 {
		c.OutputPaths = DefaultOutputPaths
	}
}
