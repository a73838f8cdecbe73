package generator_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/msartiano/finder/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWritePageMap_ReadsBack(t *testing.T) {
	t.Parallel()

	pm := &generator.PageMap{
		Source: "https://example.com/login",
		Root:   "main",
		Entries: []generator.Entry{
			{Name: "main_nav", Kind: generator.KindNav, Selector: "#main-nav", Penalty: 0},
			{Name: "user", Kind: generator.KindInput, Selector: `form > [name="user"]`, Penalty: 2.5, Sample: "User name"},
		},
		Skipped: []generator.Skipped{{Name: "ghost", Kind: generator.KindRegion, Reason: "no unique selector"}},
	}

	var buf bytes.Buffer
	require.NoError(t, generator.WritePageMap(&buf, pm))

	// Plain YAML consumers can read it too.
	var generic map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &generic))
	assert.Equal(t, "https://example.com/login", generic["source"])

	got, err := generator.ReadPageMap(&buf)
	require.NoError(t, err)
	assert.Equal(t, pm, got)
}

func TestMarshalPageMap_OmitsEmptyOptionalFields(t *testing.T) {
	t.Parallel()

	out, err := generator.MarshalPageMap(&generator.PageMap{
		Source:  "x",
		Entries: []generator.Entry{{Name: "a", Kind: generator.KindLink, Selector: "a"}},
	})
	require.NoError(t, err)

	assert.NotContains(t, string(out), "root")
	assert.NotContains(t, string(out), "skipped")
	assert.NotContains(t, string(out), "sample")
}

func TestReadPageMap_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{name: "empty", input: "", invalid: true},
		{name: "missing name", input: "entries:\n  - selector: a\n", invalid: true},
		{name: "missing selector", input: "entries:\n  - name: a\n", invalid: true},
		{name: "duplicate name", input: "entries:\n  - {name: a, selector: a}\n  - {name: a, selector: b}\n", invalid: true},
		{name: "unknown field", input: "entries:\n  - {name: a, selector: a, confidence: 1}\n"},
		{name: "not yaml", input: "entries: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := generator.ReadPageMap(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, generator.ErrInvalidPageMap)
			}
		})
	}
}
