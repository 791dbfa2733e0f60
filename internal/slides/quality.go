// Package slides ranks slides by a heuristic "needs work" score so the
// busiest, most text-heavy slides surface first in summaries and context.
package slides

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SFZPL/prezlab-brain/internal/models"
)

const (
	wordCountDivisor  = 20
	wordCountCap      = 100
	textBoxWeight     = 2
	crowdedShapeCount = 15
	crowdedPenalty    = 5
	noVisualsPenalty  = 20
	noVisualsMinWords = 30
	titleLayoutCredit = 10

	summaryLimit = 3
)

// summaryFooter is the fixed explanatory line closing every summary block.
const summaryFooter = "Higher scores indicate slides that likely need the most design attention."

// Score computes the needs-work score for one slide. Higher means more
// attention needed. Integer arithmetic throughout; the word-count term is
// capped at 100 so a wall of text cannot drown the structural signals.
func Score(slide models.SlideRecord) int {
	wordCount := len(strings.Fields(slide.TextContent))

	score := wordCount / wordCountDivisor
	if score > wordCountCap {
		score = wordCountCap
	}

	score += slide.TextBoxes * textBoxWeight

	if slide.ShapesCount > crowdedShapeCount {
		score += crowdedPenalty
	}

	if slide.Images+slide.Charts+slide.Tables == 0 && wordCount > noVisualsMinWords {
		score += noVisualsPenalty
	}

	if strings.Contains(strings.ToLower(slide.LayoutType), "title") {
		score -= titleLayoutCredit
	}

	return score
}

// Ranked pairs a slide with its score for summary output.
type Ranked struct {
	Slide models.SlideRecord
	Score int
}

// Rank scores every slide and returns them best-candidate-first, ties broken
// by slide ordinal.
func Rank(slideList []models.SlideRecord) []Ranked {
	ranked := make([]Ranked, 0, len(slideList))
	for _, s := range slideList {
		ranked = append(ranked, Ranked{Slide: s, Score: Score(s)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Slide.SlideNumber < ranked[j].Slide.SlideNumber
	})
	return ranked
}

// Summarize renders the top-3 slides by score as a text block for the model
// context, one line per slide plus a fixed explanatory footer.
func Summarize(slideList []models.SlideRecord) string {
	if len(slideList) == 0 {
		return ""
	}

	ranked := Rank(slideList)
	if len(ranked) > summaryLimit {
		ranked = ranked[:summaryLimit]
	}

	var b strings.Builder
	b.WriteString("SLIDES MOST IN NEED OF ATTENTION:\n")
	for _, r := range ranked {
		visuals := r.Slide.Images + r.Slide.Charts + r.Slide.Tables
		fmt.Fprintf(&b, "- Slide %d (score %d): layout %q, %d visual elements, %d characters of text\n",
			r.Slide.SlideNumber, r.Score, r.Slide.LayoutType, visuals, len(r.Slide.TextContent))
	}
	b.WriteString(summaryFooter)
	return b.String()
}
