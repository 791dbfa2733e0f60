package export_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SFZPL/prezlab-brain/internal/export"
	"github.com/SFZPL/prezlab-brain/internal/models"
)

func sampleAnalysis() *models.Analysis {
	return &models.Analysis{
		PresentationType: &models.PresentationType{
			Primary:   "Investor Pitch",
			Secondary: "Product Demo",
			Reasoning: "Heavy use of financial projections",
		},
		ContextualGrounding: &models.ContextualGrounding{
			IdentifiedObjective: "Raise a Series A round",
			AudienceProfile:     "Venture partners",
			UrgencyLevel:        "High",
		},
		DesignDirection: &models.DesignDirection{
			Backgrounds: &models.DesignChoice{Recommended: "Dark gradients"},
			Layouts:     &models.DesignChoice{Recommended: "Asymmetric grids"},
		},
		StorytellingStructure: &models.Storytelling{
			NarrativeApproach: "Problem-solution arc",
			EmotionalTone:     "Confident",
		},
		ExecutionGuidance: &models.ExecutionGuidance{
			PriorityFixes: []string{"Reduce text on slide 4", "Unify chart colors"},
			QuickWins:     []string{"Increase heading contrast"},
		},
		ClientQuestions: &models.ClientQuestions{
			ClarifyingQuestions:      []string{"Who presents the deck?"},
			StakeholderQuestions:     []string{"Has finance signed off on the projections?"},
			VisualReadinessQuestions: []string{"Do you have approved brand photography?"},
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	raw, err := export.JSON(sampleAnalysis())
	require.NoError(t, err)

	var decoded models.Analysis
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.NotNil(t, decoded.PresentationType)
	assert.Equal(t, "Investor Pitch", decoded.PresentationType.Primary)
	assert.Contains(t, string(raw), "\n  ")
}

func TestReportContents(t *testing.T) {
	generated := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	report := export.Report(sampleAnalysis(), generated)

	assert.Contains(t, report, "AI Design Analysis Report")
	assert.Contains(t, report, "Generated: 2025-03-14 09:30:00")
	assert.Contains(t, report, "Primary: Investor Pitch")
	assert.Contains(t, report, "Objective: Raise a Series A round")
	assert.Contains(t, report, "Backgrounds: Dark gradients")
	assert.Contains(t, report, "Imagery: N/A")
	assert.Contains(t, report, "Narrative: Problem-solution arc")
	assert.Contains(t, report, "- Reduce text on slide 4")
	assert.Contains(t, report, "- Increase heading contrast")
	assert.Contains(t, report, "- Who presents the deck?")
}

func TestReportEmptyAnalysis(t *testing.T) {
	report := export.Report(&models.Analysis{}, time.Now())

	assert.Contains(t, report, "PRESENTATION TYPE")
	assert.Contains(t, report, "Primary: N/A")
	assert.Contains(t, report, "Urgency: N/A")
	assert.NotContains(t, report, "CLIENT QUESTIONS")
}

func TestQuestionsContents(t *testing.T) {
	generated := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	text := export.Questions(sampleAnalysis(), generated)

	assert.Contains(t, text, "Client Questions for Design Discussion")
	assert.Contains(t, text, "CLARIFYING QUESTIONS:\n- Who presents the deck?")
	assert.Contains(t, text, "STAKEHOLDER QUESTIONS:\n- Has finance signed off on the projections?")
	assert.Contains(t, text, "VISUAL READINESS QUESTIONS:\n- Do you have approved brand photography?")
}

func TestQuestionsNilSection(t *testing.T) {
	text := export.Questions(&models.Analysis{}, time.Now())

	assert.Contains(t, text, "CLARIFYING QUESTIONS:")
	assert.Contains(t, text, "STAKEHOLDER QUESTIONS:")
	assert.Contains(t, text, "VISUAL READINESS QUESTIONS:")
}
