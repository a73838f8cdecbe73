// Package cmd implements the command-line interface for finder.
package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/msartiano/finder/cmd/common"
	"github.com/msartiano/finder/cmd/discover"
	"github.com/msartiano/finder/cmd/find"
	"github.com/msartiano/finder/cmd/verify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags "-X github.com/msartiano/finder/cmd.Version=...".
var Version = "dev"

// Execute runs the root command.
func Execute() error {
	// Load .env early so FINDER_CONFIG and LOG_* are visible to viper.
	_ = godotenv.Load()

	root, err := NewRootCommand(viper.New())
	if err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}
	return root.ExecuteContext(context.Background())
}

// NewRootCommand builds the command tree with its flags bound to v.
func NewRootCommand(v *viper.Viper) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   "finder",
		Short: "Generate unique CSS selectors for HTML elements",
		Long: `finder synthesizes short CSS selectors that match exactly one element
of an HTML document, and maintains page maps of named selectors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().String(common.KeyConfig, "", "config file (default: built-in defaults)")
	root.PersistentFlags().Bool(common.KeyDebug, false, "enable debug logging")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	if err := bindRootFlags(root, v); err != nil {
		return nil, err
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "finder version %s\n", Version)
		},
	})

	root.AddCommand(find.Command(v))
	root.AddCommand(discover.Command(v))
	root.AddCommand(verify.Command(v))

	return root, nil
}

// bindRootFlags binds the persistent flags and their environment variables.
func bindRootFlags(root *cobra.Command, v *viper.Viper) error {
	bindings := []struct {
		key  string
		flag string
		env  []string
	}{
		{key: common.KeyConfig, flag: "config", env: []string{"FINDER_CONFIG", "CONFIG_PATH"}},
		{key: common.KeyDebug, flag: "debug", env: []string{"FINDER_DEBUG", "APP_DEBUG"}},
		{key: common.KeyLogLevel, flag: "log-level"},
	}

	for _, b := range bindings {
		if err := v.BindPFlag(b.key, root.PersistentFlags().Lookup(b.flag)); err != nil {
			return fmt.Errorf("failed to bind %s flag: %w", b.flag, err)
		}
		if len(b.env) == 0 {
			continue
		}
		if err := v.BindEnv(append([]string{b.key}, b.env...)...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b.env[0], err)
		}
	}

	return nil
}
