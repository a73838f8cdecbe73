package config

import (
	"regexp"
	"strings"

	"github.com/msartiano/finder/internal/logger"
	"github.com/msartiano/finder/internal/selector"
)

// Options converts the configuration into selector options. Ignore patterns
// are compiled here; an invalid one is returned as a *ValidationError.
func (c *FinderConfig) Options(log logger.Logger) (selector.Options, error) {
	ids, err := compileAll("finder.ignore_ids", c.IgnoreIDs)
	if err != nil {
		return selector.Options{}, err
	}
	classes, err := compileAll("finder.ignore_classes", c.IgnoreClasses)
	if err != nil {
		return selector.Options{}, err
	}
	tags, err := compileAll("finder.ignore_tags", c.IgnoreTags)
	if err != nil {
		return selector.Options{}, err
	}

	return selector.Options{
		IDName:             notMatching(ids),
		ClassName:          notMatching(classes),
		TagName:            notMatching(tags),
		Attr:               attributeAllowList(c.Attributes),
		SeedMinLength:      c.SeedMinLength,
		OptimizedMinLength: c.OptimizedMinLength,
		Threshold:          c.Threshold,
		MaxNumberOfTries:   c.MaxNumberOfTries,
		Logger:             log,
	}, nil
}

// notMatching accepts names that match none of patterns. It returns nil for
// an empty list so the selector default applies.
func notMatching(patterns []*regexp.Regexp) func(string) bool {
	if len(patterns) == 0 {
		return nil
	}
	return func(name string) bool {
		for _, re := range patterns {
			if re.MatchString(name) {
				return false
			}
		}
		return true
	}
}

// attributeAllowList accepts attributes whose name is listed. An entry ending
// in "*" matches every name with that prefix. Names compare case-insensitively.
func attributeAllowList(names []string) func(name, value string) bool {
	if len(names) == 0 {
		return nil
	}

	exact := make(map[string]struct{}, len(names))
	var prefixes []string
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if prefix, ok := strings.CutSuffix(n, "*"); ok {
			prefixes = append(prefixes, prefix)
			continue
		}
		exact[n] = struct{}{}
	}

	return func(name, _ string) bool {
		name = strings.ToLower(name)
		if _, ok := exact[name]; ok {
			return true
		}
		for _, p := range prefixes {
			if strings.HasPrefix(name, p) {
				return true
			}
		}
		return false
	}
}
