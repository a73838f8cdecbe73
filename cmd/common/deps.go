// Package common provides shared utilities for command implementations.
package common

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/msartiano/finder/internal/config"
	"github.com/msartiano/finder/internal/logger"
	"github.com/msartiano/finder/internal/selector"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Viper keys shared by the root command and its subcommands.
const (
	KeyConfig   = "config"
	KeyDebug    = "debug"
	KeyLogLevel = "log.level"
)

// CommandDeps holds common dependencies for all commands.
type CommandDeps struct {
	Logger  logger.Logger
	Config  *config.Config
	Options selector.Options
}

// Validate ensures all required dependencies are present.
func (d CommandDeps) Validate() error {
	if d.Logger == nil {
		return ErrLoggerRequired
	}
	if d.Config == nil {
		return ErrConfigRequired
	}
	return nil
}

// NewCommandDeps loads the configuration file named by the config key,
// applies the flags the user set on cmd, and builds the logger and the
// selector options from the result.
func NewCommandDeps(cmd *cobra.Command, v *viper.Viper) (CommandDeps, error) {
	cfg, err := config.LoadFile(v.GetString(KeyConfig))
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	if bindErr := bindFinderFlags(cmd, v); bindErr != nil {
		return CommandDeps{}, bindErr
	}
	if overrideErr := cfg.ApplyOverrides(overrides(cmd, v)); overrideErr != nil {
		return CommandDeps{}, fmt.Errorf("apply flags: %w", overrideErr)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate config: %w", validateErr)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}
	log = log.With(
		logger.String("run_id", uuid.NewString()),
		logger.String("command", cmd.Name()),
	)

	opts, err := cfg.Finder.Options(log)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("build selector options: %w", err)
	}

	deps := CommandDeps{
		Logger:  log,
		Config:  cfg,
		Options: opts,
	}

	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}

	return deps, nil
}

// overrides collects the values of the flags that were set explicitly, keyed
// like config.Config. Flag defaults never override the configuration file.
func overrides(cmd *cobra.Command, v *viper.Viper) map[string]any {
	settings := make(map[string]any)

	logging := make(map[string]any)
	if flagChanged(cmd, "log-level") {
		logging["level"] = v.GetString(KeyLogLevel)
	}
	if v.GetBool(KeyDebug) {
		logging["level"] = "debug"
	}
	if len(logging) > 0 {
		settings["logging"] = logging
	}

	finder := make(map[string]any)
	for _, f := range finderFlags {
		if flagChanged(cmd, f.name) {
			finder[f.key] = v.Get(finderKey(f.key))
		}
	}
	if len(finder) > 0 {
		settings["finder"] = finder
	}

	return settings
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}
