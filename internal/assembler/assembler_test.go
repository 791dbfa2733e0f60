package assembler_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/SFZPL/prezlab-brain/internal/assembler"
	"github.com/SFZPL/prezlab-brain/internal/knowledge"
	"github.com/SFZPL/prezlab-brain/internal/models"
)

func newAssembler(t *testing.T) (*assembler.Assembler, *knowledge.Store) {
	t.Helper()
	store := knowledge.NewStore(zerolog.Nop())
	return assembler.New(store, zerolog.Nop()), store
}

func TestBuildContextEmpty(t *testing.T) {
	a, _ := newAssembler(t)
	require.Empty(t, a.BuildContext("typography advice", nil, nil))
}

func TestBuildContextFrameworkTruncated(t *testing.T) {
	a, store := newAssembler(t)

	long := strings.Repeat("x", 5000)
	_, err := store.Add("Design Compass v2.pdf", long, "")
	require.NoError(t, err)

	got := a.BuildContext("anything", nil, nil)
	require.Contains(t, got, "DESIGN FRAMEWORK (Design Compass v2.pdf):")
	require.Contains(t, got, strings.Repeat("x", 2000))
	require.NotContains(t, got, strings.Repeat("x", 2001))
	// framework is not repeated in the reference-documents section
	require.NotContains(t, got, "REFERENCE DOCUMENT (Design Compass v2.pdf)")
}

func TestBuildContextTruncationKeepsValidUTF8(t *testing.T) {
	a, store := newAssembler(t)

	// 700 three-byte runes: the 2000-byte cut lands mid-rune
	_, err := store.Add("Design Compass.md", strings.Repeat("€", 700), "")
	require.NoError(t, err)

	got := a.BuildContext("anything", nil, nil)
	require.True(t, utf8.ValidString(got))
	require.Less(t, strings.Count(got, "€"), 700)
}

func TestBuildContextRelevantDocuments(t *testing.T) {
	a, store := newAssembler(t)

	_, err := store.Add("typography.txt", "typography rules "+strings.Repeat("y", 2000), "")
	require.NoError(t, err)
	_, err = store.Add("unrelated.txt", "nothing of note", "")
	require.NoError(t, err)

	got := a.BuildContext("typography", nil, nil)
	require.Contains(t, got, "REFERENCE DOCUMENT (typography.txt):")
	require.NotContains(t, got, "unrelated.txt")
	// per-document truncation to 1000 characters
	idx := strings.Index(got, "typography rules ")
	require.Positive(t, idx)
	require.LessOrEqual(t, len(got[idx:]), 1000)
}

func TestBuildContextAnalysisSection(t *testing.T) {
	a, _ := newAssembler(t)

	analysis := &models.Analysis{
		PresentationType: &models.PresentationType{Primary: "Executive & Strategic"},
		Slides: []models.SlideRecord{
			{SlideNumber: 1, TextContent: strings.Repeat("word ", 700), LayoutType: "content"},
		},
	}

	got := a.BuildContext("query", analysis, nil)
	require.Contains(t, got, "PRESENTATION ANALYSIS SUMMARY:")
	require.Contains(t, got, "Type: Executive & Strategic")
	require.Contains(t, got, "SLIDES MOST IN NEED OF ATTENTION:")
	require.Contains(t, got, "Slide 1")
}

func TestBuildContextHistoryLastSix(t *testing.T) {
	a, _ := newAssembler(t)

	var history []models.ChatMessage
	for _, content := range []string{"one", "two", "three", "four", "five", "six", "seven", "eight"} {
		history = append(history, models.ChatMessage{Role: "user", Content: content})
	}

	got := a.BuildContext("query", nil, history)
	require.Contains(t, got, "RECENT CONVERSATION:")
	require.NotContains(t, got, "user: one")
	require.NotContains(t, got, "user: two")
	require.Contains(t, got, "user: three")
	require.Contains(t, got, "user: eight")
}

func TestBuildContextSectionSeparation(t *testing.T) {
	a, store := newAssembler(t)

	_, err := store.Add("Design Compass v2.pdf", "strategy first", "")
	require.NoError(t, err)

	history := []models.ChatMessage{{Role: "user", Content: "hello"}}
	got := a.BuildContext("query", nil, history)

	parts := strings.Split(got, "\n\n")
	require.Len(t, parts, 2)
	require.True(t, strings.HasPrefix(parts[0], "DESIGN FRAMEWORK"))
	require.True(t, strings.HasPrefix(parts[1], "RECENT CONVERSATION:"))
}
