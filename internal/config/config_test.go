package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/msartiano/finder/internal/config"
	"github.com/msartiano/finder/internal/logger"
	"github.com/msartiano/finder/internal/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `logging:
  level: debug
  format: json
finder:
  threshold: 250
  max_number_of_tries: 500
  attributes:
    - name
    - data-*
  ignore_ids:
    - "^ember\\d+$"
  ignore_classes:
    - "^css-"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "finder.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_ReadsYAML(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := config.LoadFile(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 250, cfg.Finder.Threshold)
	assert.Equal(t, 500, cfg.Finder.MaxNumberOfTries)
	assert.Equal(t, []string{"name", "data-*"}, cfg.Finder.Attributes)
	assert.Equal(t, []string{`^ember\d+$`}, cfg.Finder.IgnoreIDs)

	// Unset values fall back to defaults.
	assert.Equal(t, selector.DefaultSeedMinLength, cfg.Finder.SeedMinLength)
	assert.Equal(t, selector.DefaultOptimizedMinLength, cfg.Finder.OptimizedMinLength)
	assert.Equal(t, logger.DefaultOutputPaths, cfg.Logging.OutputPaths)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile_EnvironmentWins(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("FINDER_THRESHOLD", "42")
	t.Setenv("FINDER_ATTRIBUTES", "role, aria-label ,")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.LoadFile(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Finder.Threshold)
	assert.Equal(t, []string{"role", "aria-label"}, cfg.Finder.Attributes)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFile_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("FINDER_MAX_TRIES=77\n"), 0o600))
	t.Setenv("ENV_FILE", envFile)
	// godotenv never overrides variables that are already set; start clean
	// and let t.Setenv restore the previous state.
	t.Setenv("FINDER_MAX_TRIES", "")
	require.NoError(t, os.Unsetenv("FINDER_MAX_TRIES"))

	cfg, err := config.LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, 77, cfg.Finder.MaxNumberOfTries)
}

func TestLoadFile_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, selector.DefaultThreshold, cfg.Finder.Threshold)
	assert.Equal(t, selector.DefaultMaxNumberOfTries, cfg.Finder.MaxNumberOfTries)
	assert.Equal(t, logger.DefaultLevel, cfg.Logging.Level)
	assert.Empty(t, cfg.Finder.Attributes)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	missing := filepath.Join(t.TempDir(), "nope.yml")
	_, err := config.Load[config.Config](missing)

	var loadErr *config.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, missing, loadErr.File)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = config.LoadFile(writeConfig(t, "finder: [unclosed"))
	require.ErrorIs(t, err, config.ErrConfigParseFailed)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *config.Config {
		cfg := &config.Config{}
		cfg.SetDefaults()
		return cfg
	}

	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantField string
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "bad level", mutate: func(c *config.Config) { c.Logging.Level = "loud" }, wantField: "logging.level"},
		{name: "bad format", mutate: func(c *config.Config) { c.Logging.Format = "xml" }, wantField: "logging.format"},
		{name: "negative threshold", mutate: func(c *config.Config) { c.Finder.Threshold = -1 }, wantField: "finder.threshold"},
		{name: "zero tries", mutate: func(c *config.Config) { c.Finder.MaxNumberOfTries = 0 }, wantField: "finder.max_number_of_tries"},
		{name: "blank attribute", mutate: func(c *config.Config) { c.Finder.Attributes = []string{"id", " "} }, wantField: "finder.attributes[1]"},
		{name: "bad class pattern", mutate: func(c *config.Config) { c.Finder.IgnoreClasses = []string{"ok", "(["} }, wantField: "finder.ignore_classes[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var vErr *config.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestConfig_ApplyOverrides(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Finder.Attributes = []string{"name", "role", "title"}
	cfg.SetDefaults()

	err := cfg.ApplyOverrides(map[string]any{
		"finder": map[string]any{
			"threshold":  "300",
			"attributes": []string{"data-testid"},
		},
		"logging": map[string]any{"level": "debug"},
	})
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Finder.Threshold)
	assert.Equal(t, []string{"data-testid"}, cfg.Finder.Attributes)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, selector.DefaultMaxNumberOfTries, cfg.Finder.MaxNumberOfTries, "unset keys are kept")

	require.NoError(t, cfg.ApplyOverrides(nil))

	err = cfg.ApplyOverrides(map[string]any{"finder": map[string]any{"thresold": 1}})
	require.ErrorIs(t, err, config.ErrConfigInvalid)
}

func TestFinderConfig_Options(t *testing.T) {
	t.Parallel()

	fc := config.FinderConfig{
		Threshold:     10,
		Attributes:    []string{"Name", "data-*"},
		IgnoreIDs:     []string{`^ember\d+$`},
		IgnoreClasses: []string{`^css-`, `^is-`},
		IgnoreTags:    []string{`^(div|span)$`},
	}

	opts, err := fc.Options(logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 10, opts.Threshold)
	assert.NotNil(t, opts.Logger)

	assert.True(t, opts.IDName("main"))
	assert.False(t, opts.IDName("ember42"))

	assert.True(t, opts.ClassName("card"))
	assert.False(t, opts.ClassName("css-1x2y"))
	assert.False(t, opts.ClassName("is-active"))

	assert.True(t, opts.TagName("section"))
	assert.False(t, opts.TagName("div"))

	assert.True(t, opts.Attr("name", "q"))
	assert.True(t, opts.Attr("data-testid", "login"))
	assert.False(t, opts.Attr("href", "/"))
}

func TestFinderConfig_OptionsAttributeCase(t *testing.T) {
	t.Parallel()

	fc := config.FinderConfig{Attributes: []string{"viewBox", "ARIA-*"}}

	opts, err := fc.Options(nil)
	require.NoError(t, err)

	assert.True(t, opts.Attr("viewBox", "0 0 10 10"))
	assert.True(t, opts.Attr("viewbox", "0 0 10 10"))
	assert.True(t, opts.Attr("aria-label", "Close"))
	assert.True(t, opts.Attr("Aria-Label", "Close"))
	assert.False(t, opts.Attr("role", "dialog"))
}

func TestFinderConfig_OptionsDefaults(t *testing.T) {
	t.Parallel()

	opts, err := (&config.FinderConfig{}).Options(nil)
	require.NoError(t, err)

	assert.Nil(t, opts.IDName)
	assert.Nil(t, opts.Attr)

	opts.SetDefaults()
	assert.True(t, opts.IDName("anything"))
	assert.False(t, opts.Attr("name", "x"))
}

func TestFinderConfig_OptionsInvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := (&config.FinderConfig{IgnoreTags: []string{"("}}).Options(nil)

	var vErr *config.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "finder.ignore_tags[0]", vErr.Field)
}
