// Package export renders an analysis as downloadable artifacts. Pure
// formatting; no analysis logic lives here.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SFZPL/prezlab-brain/internal/models"
)

const timeFormat = "2006-01-02 15:04:05"

// JSON serialises the analysis for download.
func JSON(analysis *models.Analysis) ([]byte, error) {
	return json.MarshalIndent(analysis, "", "  ")
}

// Report renders the plain-text design analysis report.
func Report(analysis *models.Analysis, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("AI Design Analysis Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format(timeFormat))

	b.WriteString("PRESENTATION TYPE\n")
	if pt := analysis.PresentationType; pt != nil {
		fmt.Fprintf(&b, "Primary: %s\n", orNA(pt.Primary))
		fmt.Fprintf(&b, "Secondary: %s\n", orNA(pt.Secondary))
		fmt.Fprintf(&b, "Reasoning: %s\n", orNA(pt.Reasoning))
	} else {
		b.WriteString("Primary: N/A\nSecondary: N/A\nReasoning: N/A\n")
	}

	b.WriteString("\nCONTEXTUAL GROUNDING\n")
	if cg := analysis.ContextualGrounding; cg != nil {
		fmt.Fprintf(&b, "Objective: %s\n", orNA(cg.IdentifiedObjective))
		fmt.Fprintf(&b, "Audience: %s\n", orNA(cg.AudienceProfile))
		fmt.Fprintf(&b, "Urgency: %s\n", orNA(cg.UrgencyLevel))
	} else {
		b.WriteString("Objective: N/A\nAudience: N/A\nUrgency: N/A\n")
	}

	b.WriteString("\nDESIGN DIRECTION\n")
	if dd := analysis.DesignDirection; dd != nil {
		fmt.Fprintf(&b, "Backgrounds: %s\n", choiceOrNA(dd.Backgrounds))
		fmt.Fprintf(&b, "Layouts: %s\n", choiceOrNA(dd.Layouts))
		fmt.Fprintf(&b, "Imagery: %s\n", choiceOrNA(dd.Imagery))
	} else {
		b.WriteString("Backgrounds: N/A\nLayouts: N/A\nImagery: N/A\n")
	}

	b.WriteString("\nSTORYTELLING STRUCTURE\n")
	if st := analysis.StorytellingStructure; st != nil {
		fmt.Fprintf(&b, "Narrative: %s\n", orNA(st.NarrativeApproach))
		fmt.Fprintf(&b, "Tone: %s\n", orNA(st.EmotionalTone))
	} else {
		b.WriteString("Narrative: N/A\nTone: N/A\n")
	}

	b.WriteString("\nEXECUTION GUIDANCE\n")
	if eg := analysis.ExecutionGuidance; eg != nil {
		b.WriteString("Priority Fixes:\n")
		writeBullets(&b, eg.PriorityFixes)
		b.WriteString("\nQuick Wins:\n")
		writeBullets(&b, eg.QuickWins)
	}

	if cq := analysis.ClientQuestions; cq != nil {
		b.WriteString("\nCLIENT QUESTIONS\n")
		b.WriteString("Clarifying Questions:\n")
		writeBullets(&b, cq.ClarifyingQuestions)
		b.WriteString("\nStakeholder Questions:\n")
		writeBullets(&b, cq.StakeholderQuestions)
	}

	return b.String()
}

// Questions renders the client-questions worksheet.
func Questions(analysis *models.Analysis, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("Client Questions for Design Discussion\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format(timeFormat))

	cq := analysis.ClientQuestions
	if cq == nil {
		cq = &models.ClientQuestions{}
	}

	b.WriteString("CLARIFYING QUESTIONS:\n")
	writeBullets(&b, cq.ClarifyingQuestions)
	b.WriteString("\nSTAKEHOLDER QUESTIONS:\n")
	writeBullets(&b, cq.StakeholderQuestions)
	b.WriteString("\nVISUAL READINESS QUESTIONS:\n")
	writeBullets(&b, cq.VisualReadinessQuestions)

	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func choiceOrNA(choice *models.DesignChoice) string {
	if choice == nil {
		return "N/A"
	}
	return orNA(choice.Recommended)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
