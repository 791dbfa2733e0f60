package knowledge_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchFrameworkBonusIsAdditive(t *testing.T) {
	store := newStore()

	// name matches the query keyword, content and keyword list do not
	_, err := store.Add("Design Compass v2.pdf", "strategy before pixels", "")
	require.NoError(t, err)

	hits := store.Search("compass", 5)
	require.Len(t, hits, 1)
	// +3 name substring, +5 framework bonus
	require.Equal(t, 8, hits[0].Score)
}

func TestSearchScoringComponents(t *testing.T) {
	store := newStore()

	// "branding" ends up in the keyword list (+2) and is a content substring (+1)
	_, err := store.Add("notes.txt", "branding branding rules for the team", "")
	require.NoError(t, err)

	hits := store.Search("branding", 5)
	require.Len(t, hits, 1)
	require.Equal(t, 3, hits[0].Score)
}

func TestSearchExcludesZeroScores(t *testing.T) {
	store := newStore()

	_, err := store.Add("unrelated.txt", "nothing matching here", "")
	require.NoError(t, err)

	require.Empty(t, store.Search("typography", 5))
}

func TestSearchOrderAndLimit(t *testing.T) {
	store := newStore()

	_, err := store.Add("one.txt", "typography mentioned once somewhere", "")
	require.NoError(t, err)
	_, err = store.Add("typography-guide.txt", "typography typography typography", "")
	require.NoError(t, err)
	_, err = store.Add("two.txt", "typography appears here too", "")
	require.NoError(t, err)

	hits := store.Search("typography", 2)
	require.Len(t, hits, 2)
	require.Equal(t, "typography-guide.txt", hits[0].Document.Name)
	require.GreaterOrEqual(t, hits[0].Score, hits[1].Score)
	for _, h := range hits {
		require.Positive(t, h.Score)
	}
}

func TestSearchTieBreakInsertionOrder(t *testing.T) {
	store := newStore()

	_, err := store.Add("first.txt", "spacing spacing guide", "")
	require.NoError(t, err)
	_, err = store.Add("second.txt", "spacing spacing guide", "")
	require.NoError(t, err)

	hits := store.Search("spacing", 5)
	require.Len(t, hits, 2)
	require.Equal(t, hits[0].Score, hits[1].Score)
	require.Equal(t, "first.txt", hits[0].Document.Name)
	require.Equal(t, "second.txt", hits[1].Document.Name)
}

func TestSearchFrameworkAlwaysCandidate(t *testing.T) {
	store := newStore()

	_, err := store.Add("Design Compass v2.pdf", "strategy before pixels", "")
	require.NoError(t, err)

	// no keyword overlap at all: flat bonus still applies
	hits := store.Search("velocity", 5)
	require.Len(t, hits, 1)
	require.Equal(t, 5, hits[0].Score)
}

func TestSearchDefaultLimit(t *testing.T) {
	store := newStore()

	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt", "f.txt", "g.txt"} {
		_, err := store.Add(name, "layout advice layout advice", "")
		require.NoError(t, err)
	}

	hits := store.Search("layout", 0)
	require.Len(t, hits, 5)
}
