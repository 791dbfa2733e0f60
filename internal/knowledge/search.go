package knowledge

import (
	"errors"
	"sort"
	"strings"

	"github.com/SFZPL/prezlab-brain/internal/models"
)

// ErrNotFound is returned when a document id is not in the store.
var ErrNotFound = errors.New("document not found")

const (
	DefaultSearchLimit = 5

	keywordListScore = 2
	contentScore     = 1
	nameScore        = 3
	frameworkBonus   = 5
)

// Search scores every document against the query keywords and returns up to
// limit documents with score > 0, best first. The additive scheme is the
// product contract and must not be normalised or otherwise improved: keyword
// in the precomputed list +2, substring of content +1, substring of name +3,
// plus a flat +5 for the framework document. Ties are broken by insertion
// order via an explicit index key.
func (s *Store) Search(query string, limit int) []models.ScoredDocument {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	keywords := ExtractKeywords(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	type hit struct {
		doc   *models.Document
		score int
		index int
	}

	var hits []hit
	for i, doc := range s.docs {
		score := scoreDocument(doc, keywords)
		if doc.IsFramework {
			score += frameworkBonus
		}
		if score <= 0 {
			continue
		}
		hits = append(hits, hit{doc: doc, score: score, index: i})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].index < hits[j].index
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]models.ScoredDocument, 0, len(hits))
	for _, h := range hits {
		out = append(out, models.ScoredDocument{Document: h.doc, Score: h.score})
	}
	return out
}

func scoreDocument(doc *models.Document, keywords []string) int {
	if len(keywords) == 0 {
		return 0
	}

	content := strings.ToLower(doc.Content)
	name := strings.ToLower(doc.Name)

	score := 0
	for _, kw := range keywords {
		for _, dk := range doc.Keywords {
			if dk == kw {
				score += keywordListScore
				break
			}
		}
		if strings.Contains(content, kw) {
			score += contentScore
		}
		if strings.Contains(name, kw) {
			score += nameScore
		}
	}
	return score
}
