package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var suggestCandidates = []string{
	"The Silent River",
	"Atlas of the Broken Harbor",
	"The Winter Lantern",
}

func TestSuggestFindsTypoTitle(t *testing.T) {
	t.Parallel()
	got, ok := Suggest("the silent rivr", suggestCandidates)
	require.True(t, ok)
	require.Equal(t, "The Silent River", got)
}

func TestSuggestMatchesSingleWord(t *testing.T) {
	t.Parallel()
	got, ok := Suggest("lanttern", suggestCandidates)
	require.True(t, ok)
	require.Equal(t, "The Winter Lantern", got)
}

func TestSuggestRejectsDistantInput(t *testing.T) {
	t.Parallel()
	_, ok := Suggest("qqqq zzzz", suggestCandidates)
	require.False(t, ok)
}

func TestSuggestEmptyInput(t *testing.T) {
	t.Parallel()
	_, ok := Suggest("   ", suggestCandidates)
	require.False(t, ok)

	_, ok = Suggest("lantern", nil)
	require.False(t, ok)
}
