package slides_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SFZPL/prezlab-brain/internal/models"
	"github.com/SFZPL/prezlab-brain/internal/slides"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestScoreFormula(t *testing.T) {
	tests := []struct {
		name  string
		slide models.SlideRecord
		want  int
	}{
		{name: "empty slide", slide: models.SlideRecord{}, want: 0},
		{
			name:  "word count only",
			slide: models.SlideRecord{TextContent: words(200), Images: 1},
			want:  10,
		},
		{
			name:  "text boxes weighted",
			slide: models.SlideRecord{TextContent: words(20), TextBoxes: 4, Images: 1},
			want:  1 + 8,
		},
		{
			name:  "crowded shapes",
			slide: models.SlideRecord{ShapesCount: 16, Images: 1},
			want:  5,
		},
		{
			name:  "shape count at threshold not crowded",
			slide: models.SlideRecord{ShapesCount: 15, Images: 1},
			want:  0,
		},
		{
			name:  "text wall with no visuals",
			slide: models.SlideRecord{TextContent: words(40)},
			want:  2 + 20,
		},
		{
			name:  "no visuals but short text",
			slide: models.SlideRecord{TextContent: words(30)},
			want:  1,
		},
		{
			name:  "title layout credit",
			slide: models.SlideRecord{TextContent: words(40), LayoutType: "Title Slide"},
			want:  2 + 20 - 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, slides.Score(tt.slide))
		})
	}
}

func TestScoreWordCountCapped(t *testing.T) {
	small := models.SlideRecord{TextContent: words(200), Images: 1}
	big := models.SlideRecord{TextContent: words(2000), Images: 1}
	huge := models.SlideRecord{TextContent: words(4000), Images: 1}

	require.GreaterOrEqual(t, slides.Score(big), slides.Score(small))
	// the word-count contribution alone never exceeds 100
	require.Equal(t, 100, slides.Score(big))
	require.Equal(t, 100, slides.Score(huge))
}

func TestScoreTitleLayoutExactlyTenLower(t *testing.T) {
	base := models.SlideRecord{TextContent: words(120), TextBoxes: 3, ShapesCount: 20, LayoutType: "content"}
	title := base
	title.LayoutType = "TITLE and content"

	require.Equal(t, slides.Score(base)-10, slides.Score(title))
}

func TestSummarizeRanksTextWallFirst(t *testing.T) {
	list := []models.SlideRecord{
		{SlideNumber: 1, TextContent: words(10), LayoutType: "title", Images: 1},
		{SlideNumber: 2, TextContent: words(50), LayoutType: "content", Images: 2},
		{SlideNumber: 3, TextContent: words(600), LayoutType: "content"},
		{SlideNumber: 4, TextContent: words(40), LayoutType: "content", Charts: 1},
		{SlideNumber: 5, TextContent: words(20), LayoutType: "section", Images: 1},
	}

	summary := slides.Summarize(list)
	lines := strings.Split(summary, "\n")
	// header + 3 entries + footer
	require.Len(t, lines, 5)
	require.Contains(t, lines[1], "Slide 3")
	require.Contains(t, summary, "design attention")
}

func TestSummarizeEmpty(t *testing.T) {
	require.Empty(t, slides.Summarize(nil))
}

func TestRankTieBreakByOrdinal(t *testing.T) {
	list := []models.SlideRecord{
		{SlideNumber: 2, TextContent: words(40)},
		{SlideNumber: 1, TextContent: words(40)},
	}
	ranked := slides.Rank(list)
	require.Equal(t, ranked[0].Score, ranked[1].Score)
	require.Equal(t, 1, ranked[0].Slide.SlideNumber)
	require.Equal(t, 2, ranked[1].Slide.SlideNumber)
}
