// Package assembler builds the single context string sent alongside every
// chat request: framework document, relevant reference documents, prior
// analysis and recent conversation, in that fixed order.
package assembler

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/SFZPL/prezlab-brain/internal/knowledge"
	"github.com/SFZPL/prezlab-brain/internal/models"
	"github.com/SFZPL/prezlab-brain/internal/slides"
)

const (
	frameworkMaxChars = 2000
	documentMaxChars  = 1000
	analysisMaxChars  = 1500
	historyTurns      = 6
)

type Assembler struct {
	store *knowledge.Store
	log   zerolog.Logger
}

func New(store *knowledge.Store, log zerolog.Logger) *Assembler {
	return &Assembler{store: store, log: log.With().Str("component", "assembler").Logger()}
}

// BuildContext assembles the model context for one query. Absent sections are
// omitted, never replaced by placeholders; with nothing to say it returns "".
func (a *Assembler) BuildContext(query string, analysis *models.Analysis, history []models.ChatMessage) string {
	var sections []string

	framework := a.store.Framework()
	if framework != nil {
		sections = append(sections, fmt.Sprintf("DESIGN FRAMEWORK (%s):\n%s",
			framework.Name, truncate(framework.Content, frameworkMaxChars)))
	}

	if docs := a.relevantDocuments(query, framework); docs != "" {
		sections = append(sections, docs)
	}

	if analysis != nil {
		sections = append(sections, analysisSection(analysis))
		if len(analysis.Slides) > 0 {
			sections = append(sections, slides.Summarize(analysis.Slides))
		}
	}

	if len(history) > 0 {
		sections = append(sections, historySection(history))
	}

	context := strings.Join(sections, "\n\n")
	a.log.Debug().Int("sections", len(sections)).Int("chars", len(context)).Msg("context assembled")
	return context
}

func (a *Assembler) relevantDocuments(query string, framework *models.Document) string {
	var b strings.Builder
	for _, hit := range a.store.Search(query, knowledge.DefaultSearchLimit) {
		// the framework section already carries its content
		if framework != nil && hit.Document.ID == framework.ID {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "REFERENCE DOCUMENT (%s):\n%s",
			hit.Document.Name, truncate(hit.Document.Content, documentMaxChars))
	}
	return b.String()
}

func analysisSection(analysis *models.Analysis) string {
	var b strings.Builder
	b.WriteString("PRESENTATION ANALYSIS SUMMARY:\n")
	if analysis.PresentationType != nil {
		fmt.Fprintf(&b, "Type: %s\n", analysis.PresentationType.Primary)
	}

	serialized, err := json.Marshal(analysis)
	if err == nil {
		b.WriteString(truncate(string(serialized), analysisMaxChars))
	}
	return b.String()
}

func historySection(history []models.ChatMessage) string {
	if len(history) > historyTurns {
		history = history[len(history)-historyTurns:]
	}

	var b strings.Builder
	b.WriteString("RECENT CONVERSATION:\n")
	for i, msg := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", msg.Role, msg.Content)
	}
	return b.String()
}

// truncate cuts s to at most max bytes without splitting a multi-byte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
