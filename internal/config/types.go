package config

import (
	"github.com/msartiano/finder/internal/logger"
	"github.com/msartiano/finder/internal/selector"
)

// Config is the complete finder configuration.
type Config struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Finder  FinderConfig  `yaml:"finder" mapstructure:"finder"`
}

// FinderConfig holds the selector search settings. Zero limits mean the
// selector package defaults.
type FinderConfig struct {
	SeedMinLength      int `yaml:"seed_min_length" env:"FINDER_SEED_MIN_LENGTH" mapstructure:"seed_min_length"`
	OptimizedMinLength int `yaml:"optimized_min_length" env:"FINDER_OPTIMIZED_MIN_LENGTH" mapstructure:"optimized_min_length"`
	Threshold          int `yaml:"threshold" env:"FINDER_THRESHOLD" mapstructure:"threshold"`
	MaxNumberOfTries   int `yaml:"max_number_of_tries" env:"FINDER_MAX_TRIES" mapstructure:"max_number_of_tries"`

	// Attributes lists the attribute names that may appear in selectors.
	// A trailing "*" matches by prefix, e.g. "data-*".
	Attributes []string `yaml:"attributes" env:"FINDER_ATTRIBUTES" mapstructure:"attributes"`

	// IgnoreIDs, IgnoreClasses and IgnoreTags are regular expressions; a
	// name matching any of them is never used.
	IgnoreIDs     []string `yaml:"ignore_ids" env:"FINDER_IGNORE_IDS" mapstructure:"ignore_ids"`
	IgnoreClasses []string `yaml:"ignore_classes" env:"FINDER_IGNORE_CLASSES" mapstructure:"ignore_classes"`
	IgnoreTags    []string `yaml:"ignore_tags" env:"FINDER_IGNORE_TAGS" mapstructure:"ignore_tags"`
}

// SetDefaults fills in unset values.
func (c *Config) SetDefaults() {
	c.Logging.SetDefaults()
	c.Finder.SetDefaults()
}

// SetDefaults fills in unset search limits.
func (c *FinderConfig) SetDefaults() {
	if c.SeedMinLength == 0 {
		c.SeedMinLength = selector.DefaultSeedMinLength
	}
	if c.OptimizedMinLength == 0 {
		c.OptimizedMinLength = selector.DefaultOptimizedMinLength
	}
	if c.Threshold == 0 {
		c.Threshold = selector.DefaultThreshold
	}
	if c.MaxNumberOfTries == 0 {
		c.MaxNumberOfTries = selector.DefaultMaxNumberOfTries
	}
}
