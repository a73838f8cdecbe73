package selector

import "github.com/msartiano/finder/internal/logger"

// Default search limits.
const (
	DefaultSeedMinLength      = 1
	DefaultOptimizedMinLength = 2
	DefaultThreshold          = 1000
	DefaultMaxNumberOfTries   = 10000
)

// Options configures one synthesis. Zero values are replaced by defaults.
type Options struct {
	// IDName reports whether an id may be used. Default: accept all.
	IDName func(name string) bool
	// ClassName reports whether a class may be used. Default: accept all.
	ClassName func(name string) bool
	// TagName reports whether a tag name may be used. Default: accept all.
	TagName func(name string) bool
	// Attr reports whether an attribute may be used. Default: reject all.
	Attr func(name, value string) bool

	// SeedMinLength is the number of levels collected before the first
	// uniqueness attempt.
	SeedMinLength int
	// OptimizedMinLength is the path length above which optimization runs.
	OptimizedMinLength int
	// Threshold is the number of combinations above which the search
	// falls back to a narrower breadth policy.
	Threshold int
	// MaxNumberOfTries caps the optimizer's removal attempts.
	MaxNumberOfTries int

	// Logger receives debug traces of the search. Default: no-op.
	Logger logger.Logger
}

// SetDefaults fills in every unset field.
func (o *Options) SetDefaults() {
	if o.IDName == nil {
		o.IDName = acceptName
	}
	if o.ClassName == nil {
		o.ClassName = acceptName
	}
	if o.TagName == nil {
		o.TagName = acceptName
	}
	if o.Attr == nil {
		o.Attr = rejectAttr
	}
	if o.SeedMinLength <= 0 {
		o.SeedMinLength = DefaultSeedMinLength
	}
	if o.OptimizedMinLength <= 0 {
		o.OptimizedMinLength = DefaultOptimizedMinLength
	}
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.MaxNumberOfTries <= 0 {
		o.MaxNumberOfTries = DefaultMaxNumberOfTries
	}
	if o.Logger == nil {
		o.Logger = logger.NewNop()
	}
}

func acceptName(string) bool { return true }

func rejectAttr(string, string) bool { return false }
