package generator_test

import (
	"errors"
	"testing"

	"github.com/msartiano/finder/internal/generator"
	selectorMock "github.com/msartiano/finder/testutils/mocks/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVerify(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	tree := selectorMock.NewMockTree(ctrl)
	tree.EXPECT().Count("#ok").Return(1, nil)
	tree.EXPECT().Count(".many").Return(3, nil)
	tree.EXPECT().Count(".gone").Return(0, nil)
	tree.EXPECT().Count("[bad").Return(0, errors.New("compile selector"))

	pm := &generator.PageMap{Entries: []generator.Entry{
		{Name: "ok", Selector: "#ok"},
		{Name: "many", Selector: ".many"},
		{Name: "gone", Selector: ".gone"},
		{Name: "bad", Selector: "[bad"},
	}}

	result, err := generator.Verify(pm, tree)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 1, result.Passed)
	assert.InDelta(t, 25.0, result.SuccessRate, 1e-9)
	assert.False(t, result.OK())

	require.Len(t, result.Entries, 4)
	assert.True(t, result.Entries[0].Unique)
	assert.Equal(t, 3, result.Entries[1].Matches)
	assert.Zero(t, result.Entries[2].Matches)
	assert.Equal(t, "compile selector", result.Entries[3].Error)

	failed := result.Failed()
	require.Len(t, failed, 3)
	assert.Equal(t, "many", failed[0].Name)
	assert.Equal(t, "bad", failed[2].Name)
}

func TestVerify_NoEntries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	_, err := generator.Verify(&generator.PageMap{}, selectorMock.NewMockTree(ctrl))

	require.ErrorIs(t, err, generator.ErrNoEntries)
}
