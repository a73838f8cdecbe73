// Package verify implements the verify command: check that every selector of
// a page map still matches exactly one element of a document.
package verify

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/msartiano/finder/cmd/common"
	"github.com/msartiano/finder/internal/dom"
	"github.com/msartiano/finder/internal/generator"
	"github.com/msartiano/finder/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrVerificationFailed is returned when at least one entry is not unique.
var ErrVerificationFailed = errors.New("page map verification failed")

type options struct {
	root string
}

// Command creates the verify command.
func Command(v *viper.Viper) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "verify <pagemap.yaml> <file|->",
		Short: "Check a page map against a document",
		Long: `Counts the matches of every page-map selector in the document. Exits with an
error when any selector does not match exactly one element.

Example:
  finder verify login.pagemap.yaml login.html`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps(cmd, v)
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}
			defer func() { _ = deps.Logger.Sync() }()

			return run(cmd, args[0], args[1], opts, deps)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "CSS selector of the element to verify within (default: the root recorded in the page map)")

	return cmd
}

func run(cmd *cobra.Command, mapPath, docPath string, opts *options, deps common.CommandDeps) error {
	pm, err := readPageMap(mapPath)
	if err != nil {
		return err
	}

	doc, err := common.ReadDocument(docPath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	root := opts.root
	if root == "" {
		root = pm.Root
	}

	scope, err := dom.Scope(doc, root)
	if err != nil {
		return err
	}

	result, err := generator.Verify(pm, dom.NewTree(scope))
	if err != nil {
		return err
	}

	render(cmd.OutOrStdout(), result)

	deps.Logger.Info("Page map verified",
		logger.String("page_map", mapPath),
		logger.String("root", root),
		logger.Int("total", result.Total),
		logger.Int("passed", result.Passed),
		logger.Float64("success_rate", result.SuccessRate),
	)

	if !result.OK() {
		return fmt.Errorf("%w: %d of %d entries", ErrVerificationFailed, len(result.Failed()), result.Total)
	}
	return nil
}

func readPageMap(path string) (*generator.PageMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page map: %w", err)
	}
	defer f.Close()

	return generator.ReadPageMap(f)
}

func render(w io.Writer, result *generator.VerifyResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Selector", "Matches", "Status"})

	for _, e := range result.Entries {
		status := "ok"
		switch {
		case e.Error != "":
			status = "error: " + e.Error
		case e.Matches == 0:
			status = "missing"
		case !e.Unique:
			status = "ambiguous"
		}
		t.AppendRow(table.Row{e.Name, e.Selector, e.Matches, status})
	}

	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d/%d", result.Passed, result.Total), fmt.Sprintf("%.1f%%", result.SuccessRate)})
	t.Render()
}
