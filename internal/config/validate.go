package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Validate checks the whole configuration and returns the first problem
// found as a *ValidationError.
func (c *Config) Validate() error {
	if err := validateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	if err := validateLogFormat(c.Logging.Format); err != nil {
		return err
	}
	return c.Finder.Validate()
}

// Validate checks the search limits and predicate expressions.
func (c *FinderConfig) Validate() error {
	limits := []struct {
		field string
		value int
		min   int
	}{
		{"finder.seed_min_length", c.SeedMinLength, 1},
		{"finder.optimized_min_length", c.OptimizedMinLength, 1},
		{"finder.threshold", c.Threshold, 1},
		{"finder.max_number_of_tries", c.MaxNumberOfTries, 1},
	}
	for _, l := range limits {
		if l.value < l.min {
			return &ValidationError{Field: l.field, Message: fmt.Sprintf("must be at least %d", l.min)}
		}
	}

	for i, name := range c.Attributes {
		if strings.TrimSpace(name) == "" {
			return &ValidationError{Field: fmt.Sprintf("finder.attributes[%d]", i), Message: "must not be empty"}
		}
	}

	patterns := []struct {
		field string
		exprs []string
	}{
		{"finder.ignore_ids", c.IgnoreIDs},
		{"finder.ignore_classes", c.IgnoreClasses},
		{"finder.ignore_tags", c.IgnoreTags},
	}
	for _, p := range patterns {
		if _, err := compileAll(p.field, p.exprs); err != nil {
			return err
		}
	}

	return nil
}

func compileAll(field string, patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Message: err.Error()}
		}
		out = append(out, re)
	}
	return out, nil
}

func validateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return &ValidationError{Field: "logging.level", Message: "must be one of: debug, info, warn, error"}
	}
}

func validateLogFormat(format string) error {
	switch format {
	case "json", "console":
		return nil
	default:
		return &ValidationError{Field: "logging.format", Message: "must be one of: json, console"}
	}
}
