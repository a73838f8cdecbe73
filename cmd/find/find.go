// Package find implements the find command: synthesize selectors for the
// elements of a document matched by a target query.
package find

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/msartiano/finder/cmd/common"
	"github.com/msartiano/finder/internal/dom"
	"github.com/msartiano/finder/internal/logger"
	"github.com/msartiano/finder/internal/selector"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatPlain = "plain"
)

var (
	// ErrNoTargets is returned when the target query matches nothing.
	ErrNoTargets = errors.New("target matched no element")
	// ErrUnknownFormat is returned for an unsupported --output value.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrSomeFailed is returned when --all is set and at least one target
	// has no selector.
	ErrSomeFailed = errors.New("no selector for some targets")
)

type options struct {
	target string
	root   string
	all    bool
	format string
}

// Match is the outcome for one target element.
type Match struct {
	Index    int     `yaml:"index"`
	Tag      string  `yaml:"tag"`
	Selector string  `yaml:"selector,omitempty"`
	Penalty  float64 `yaml:"penalty"`
	Policy   string  `yaml:"policy,omitempty"`
	Queries  int     `yaml:"queries"`
	Error    string  `yaml:"error,omitempty"`
}

// Command creates the find command.
func Command(v *viper.Viper) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "find <file|->",
		Short: "Generate a unique selector for an element",
		Long: `Generates the shortest unique CSS selector for the first element (or, with
--all, every element) of the document that matches --target.

Example:
  finder find page.html --target 'form button.primary'
  curl -s https://example.com | finder find - --target 'a' --all -o yaml`,
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

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "CSS selector of the element(s) to describe")
	cmd.Flags().StringVar(&opts.root, "root", "", "CSS selector of the element selectors are unique within")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "describe every element matched by --target")
	cmd.Flags().StringVarP(&opts.format, "output", "o", FormatTable, "output format: table, yaml or plain")
	_ = cmd.MarkFlagRequired("target")
	common.AddFinderFlags(cmd)

	return cmd
}

func run(cmd *cobra.Command, path string, opts *options, deps common.CommandDeps) error {
	switch opts.format {
	case FormatTable, FormatYAML, FormatPlain:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.format)
	}

	doc, err := common.ReadDocument(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	scope, err := dom.Scope(doc, opts.root)
	if err != nil {
		return err
	}

	targets, err := dom.Select(scope, opts.target)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("%w: %s", ErrNoTargets, opts.target)
	}
	if !opts.all {
		targets = targets[:1]
	}

	deps.Logger.Debug("Synthesizing selectors",
		logger.String("document", path),
		logger.String("target", opts.target),
		logger.Int("elements", len(targets)),
	)

	matches, failed, err := synthesize(selector.New(dom.NewTree(scope), deps.Options), targets, deps.Logger)
	if err != nil {
		return err
	}

	if writeErr := write(cmd.OutOrStdout(), opts.format, matches); writeErr != nil {
		return writeErr
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSomeFailed, failed, len(matches))
	}
	return nil
}

// synthesize finds a selector for every target. Targets without a unique
// selector are reported in their Match; other errors abort.
func synthesize(f *selector.Finder, targets []dom.Node, log logger.Logger) ([]Match, int, error) {
	matches := make([]Match, 0, len(targets))
	failed := 0

	for i, target := range targets {
		m := Match{Index: i, Tag: target.TagName()}

		res, err := f.Find(target)
		switch {
		case errors.Is(err, selector.ErrNoUniqueSelector):
			log.Warn("No unique selector", logger.Int("index", i), logger.Error(err))
			m.Error = err.Error()
			failed++
		case err != nil:
			return nil, 0, err
		default:
			m.Selector = res.Selector
			m.Penalty = res.Penalty
			m.Policy = res.Policy.String()
			m.Queries = res.Stats.Queries
		}

		matches = append(matches, m)
	}

	return matches, failed, nil
}

func write(w io.Writer, format string, matches []Match) error {
	switch format {
	case FormatPlain:
		var b strings.Builder
		for _, m := range matches {
			b.WriteString(m.Selector)
			b.WriteByte('\n')
		}
		_, err := io.WriteString(w, b.String())
		return err

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(matches); err != nil {
			return fmt.Errorf("encode matches: %w", err)
		}
		return enc.Close()

	default:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Tag", "Selector", "Penalty", "Policy", "Queries"})
		for _, m := range matches {
			sel := m.Selector
			if m.Error != "" {
				sel = "error: " + m.Error
			}
			t.AppendRow(table.Row{m.Index, m.Tag, sel, m.Penalty, m.Policy, m.Queries})
		}
		t.Render()
		return nil
	}
}
