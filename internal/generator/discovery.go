package generator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/msartiano/finder/internal/dom"
	"github.com/msartiano/finder/internal/logger"
	"github.com/msartiano/finder/internal/selector"
	"golang.org/x/net/html"
)

const (
	sampleTextLength = 60
	maxNameLength    = 40
)

// landmark is a CSS query for one element kind. Earlier landmarks win when
// an element matches several.
type landmark struct {
	kind  string
	query string
}

var landmarks = []landmark{
	{KindMain, "main"},
	{KindNav, "nav"},
	{KindForm, "form"},
	{KindHeading, "h1, h2, h3"},
	{KindLink, "a[href]"},
	{KindButton, "button"},
	{KindInput, "input:not([type=hidden])"},
	{KindSelect, "select"},
	{KindTextarea, "textarea"},
	{KindImage, "img[alt]"},
	{KindRegion, "[role]"},
}

// Discovery scans a document scope for landmark and interactive elements and
// synthesizes a unique selector for each.
type Discovery struct {
	scope  *goquery.Selection
	finder *selector.Finder
	log    logger.Logger
}

// NewDiscovery creates a Discovery over scope. Selectors are unique among
// the scope's descendants.
func NewDiscovery(scope *goquery.Selection, opts selector.Options) *Discovery {
	opts.SetDefaults()
	return &Discovery{
		scope:  scope,
		finder: selector.New(dom.NewTree(scope), opts),
		log:    opts.Logger,
	}
}

// Discover returns the page map for the scope. Elements without a unique
// selector are listed as skipped; any other synthesis error aborts.
func (d *Discovery) Discover(ctx context.Context, source string) (*PageMap, error) {
	pm := &PageMap{Source: source, Entries: []Entry{}}
	names := make(map[string]int)
	seen := make(map[*html.Node]struct{})

	for _, lm := range landmarks {
		for _, n := range d.scope.Find(lm.query).Nodes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}

			name := uniqueName(names, elementName(n, lm.kind))

			res, err := d.finder.Find(dom.Wrap(n))
			if errors.Is(err, selector.ErrNoUniqueSelector) {
				d.log.Warn("No unique selector",
					logger.String("name", name),
					logger.String("kind", lm.kind),
				)
				pm.Skipped = append(pm.Skipped, Skipped{Name: name, Kind: lm.kind, Reason: err.Error()})
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("discover %s %q: %w", lm.kind, name, err)
			}

			d.log.Debug("Discovered element",
				logger.String("name", name),
				logger.String("kind", lm.kind),
				logger.String("selector", res.Selector),
				logger.Int("queries", res.Stats.Queries),
			)

			pm.Entries = append(pm.Entries, Entry{
				Name:     name,
				Kind:     lm.kind,
				Selector: res.Selector,
				Penalty:  res.Penalty,
				Sample:   truncateText(sampleText(n), sampleTextLength),
			})
		}
	}

	return pm, nil
}

// elementName derives a readable name from the id, name, aria-label or text
// of n, falling back to the kind.
func elementName(n *html.Node, kind string) string {
	s := goquery.NewDocumentFromNode(n).Selection
	for _, attr := range []string{"id", "name", "aria-label", "alt"} {
		if v, ok := s.Attr(attr); ok {
			if slug := slugify(v); slug != "" {
				return slug
			}
		}
	}

	switch kind {
	case KindHeading, KindLink, KindButton:
		if slug := slugify(s.Text()); slug != "" {
			return slug
		}
	}

	return kind
}

// uniqueName appends an ordinal to names that were already used.
func uniqueName(used map[string]int, name string) string {
	used[name]++
	if used[name] == 1 {
		return name
	}

	for {
		candidate := name + "_" + strconv.Itoa(used[name])
		if _, taken := used[candidate]; !taken {
			used[candidate] = 1
			return candidate
		}
		used[name]++
	}
}

// slugify lowercases s and replaces every run of non-alphanumerics with a
// single underscore.
func slugify(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	out := b.String()
	if runes := []rune(out); len(runes) > maxNameLength {
		out = strings.TrimRight(string(runes[:maxNameLength]), "_")
	}
	return out
}

func sampleText(n *html.Node) string {
	s := goquery.NewDocumentFromNode(n).Selection
	text := strings.Join(strings.Fields(s.Text()), " ")
	if text != "" {
		return text
	}
	for _, attr := range []string{"placeholder", "alt", "value", "title"} {
		if v, ok := s.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// truncateText shortens text to maxLen runes.
func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
