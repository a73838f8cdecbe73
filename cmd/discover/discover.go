// Package discover implements the discover command: generate a page map of
// the landmark and interactive elements of a document.
package discover

import (
	"fmt"
	"os"

	"github.com/msartiano/finder/cmd/common"
	"github.com/msartiano/finder/internal/dom"
	"github.com/msartiano/finder/internal/generator"
	"github.com/msartiano/finder/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const outputFilePermissions = 0o644

type options struct {
	output string
	root   string
	source string
}

// Command creates the discover command.
func Command(v *viper.Viper) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "discover <file|->",
		Short: "Generate a page map of named, unique selectors",
		Long: `Scans a document for headings, links, buttons, form controls, images and
ARIA regions, names each element and generates a unique selector for it.

Example:
  # Write to file for review
  finder discover login.html -o login.pagemap.yaml

  # Only elements inside the main content
  finder discover login.html --root main`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps(cmd, v)
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}
			defer func() { _ = deps.Logger.Sync() }()

			return run(cmd, args[0], opts, deps)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.root, "root", "", "CSS selector of the element to scan within")
	cmd.Flags().StringVar(&opts.source, "source", "", "source name recorded in the page map (default: the file argument)")
	common.AddFinderFlags(cmd)

	return cmd
}

func run(cmd *cobra.Command, path string, opts *options, deps common.CommandDeps) error {
	doc, err := common.ReadDocument(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	scope, err := dom.Scope(doc, opts.root)
	if err != nil {
		return err
	}

	source := opts.source
	if source == "" {
		source = path
	}

	pm, err := generator.NewDiscovery(scope, deps.Options).Discover(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("failed to discover elements: %w", err)
	}
	pm.Root = opts.root

	deps.Logger.Info("Page map generated",
		logger.String("source", source),
		logger.String("root", pm.Root),
		logger.Int("entries", len(pm.Entries)),
		logger.Int("skipped", len(pm.Skipped)),
	)

	if opts.output == "" {
		return generator.WritePageMap(cmd.OutOrStdout(), pm)
	}

	if prepErr := common.PrepareOutputFile(opts.output); prepErr != nil {
		return prepErr
	}

	content, err := generator.MarshalPageMap(pm)
	if err != nil {
		return err
	}
	if writeErr := os.WriteFile(opts.output, content, outputFilePermissions); writeErr != nil {
		return fmt.Errorf("failed to write output file: %w", writeErr)
	}

	deps.Logger.Info("Page map written", logger.String("file", opts.output))
	return nil
}
