package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"github.com/SFZPL/prezlab-brain/internal/models"
)

// AnalyzeSlide analyses a single slide in the context of the full-deck
// analysis. A response that fails to decode is replaced by a fully populated
// fallback record instead of an error, so the caller always has a complete
// record to render.
func (c *Client) AnalyzeSlide(ctx context.Context, slide models.SlideRecord, presContext *models.Analysis, audience *models.AudienceInfo, slideNumber int) (*models.SlideAnalysis, error) {
	prompt := buildSlidePrompt(slide, presContext, audience, slideNumber)

	raw, err := c.generate(ctx, c.cfg.SlideTokens, []llms.MessageContent{
		systemMessage(models.SlideSystemPrompt),
		humanMessage(prompt),
	})
	if err != nil {
		return nil, err
	}

	analysis, err := decodeSlideAnalysis(raw)
	if err != nil {
		c.log.Error().Int("slide", slideNumber).Str("raw", raw).Msg("slide analysis failed to decode, using fallback")
		return fallbackSlideAnalysis(slide, slideNumber), nil
	}
	return analysis, nil
}

func decodeSlideAnalysis(raw string) (*models.SlideAnalysis, error) {
	cleaned := stripCodeFences(raw)

	var analysis models.SlideAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if analysis.SlideOverview == nil {
		return nil, fmt.Errorf("%w: missing slide overview", ErrMalformedResponse)
	}
	return &analysis, nil
}

func buildSlidePrompt(slide models.SlideRecord, presContext *models.Analysis, audience *models.AudienceInfo, slideNumber int) string {
	presType := "Unknown"
	strategicGoal := "Not specified"
	if presContext != nil {
		if presContext.PresentationType != nil && presContext.PresentationType.Primary != "" {
			presType = presContext.PresentationType.Primary
		}
		if presContext.StrategicDirection != nil && presContext.StrategicDirection.PrimaryStrategy != "" {
			strategicGoal = presContext.StrategicDirection.PrimaryStrategy
		}
	}

	return fmt.Sprintf(models.SlideAnalysisPromptTemplate,
		slideNumber,
		slide.TextContent,
		slide.Notes,
		slide.LayoutType,
		slide.ShapesCount,
		slide.TextBoxes,
		slide.Images,
		slide.Charts,
		slide.Tables,
		presType,
		strategicGoal,
		audienceText(audience),
		slideNumber,
		slide.Images,
		slide.Charts,
		slide.Tables,
		slide.LayoutType,
	)
}

// fallbackSlideAnalysis fills every section with "Unable to analyze" markers
// so no field renders as a hole.
func fallbackSlideAnalysis(slide models.SlideRecord, slideNumber int) *models.SlideAnalysis {
	const unable = "Unable to analyze"

	return &models.SlideAnalysis{
		SlideOverview: &models.SlideOverview{
			SlideNumber:    slideNumber,
			ContentSummary: "Analysis failed - please try again",
			SlidePurpose:   "Unable to determine",
			Effectiveness:  "unknown",
			Priority:       "unknown",
		},
		ContentAnalysis: &models.ContentAnalysis{
			TextContent: &models.TextAssessment{
				Clarity:      unable,
				Organization: unable,
				Length:       "unknown",
				KeyMessages:  []string{"Analysis failed"},
				Improvements: []string{"Please try analyzing this slide again"},
			},
			VisualElements: &models.VisualElements{
				Images: &models.ElementAssessment{
					Count:           slide.Images,
					Relevance:       unable,
					Quality:         "unknown",
					Recommendations: []string{"Please try again"},
				},
				Charts: &models.ElementAssessment{
					Count:         slide.Charts,
					Effectiveness: unable,
					Clarity:       unable,
					Improvements:  []string{"Please try again"},
				},
				Tables: &models.ElementAssessment{
					Count:        slide.Tables,
					Readability:  unable,
					Structure:    unable,
					Improvements: []string{"Please try again"},
				},
			},
		},
		DesignRecommendations: &models.DesignRecommendations{
			Layout: &models.LayoutAssessment{
				CurrentLayout:     orDefault(slide.LayoutType, "unknown"),
				Effectiveness:     unable,
				RecommendedLayout: "Unable to determine",
				SpecificChanges:   []string{"Please try analyzing this slide again"},
				VisualHierarchy:   unable,
			},
			ColorScheme: &models.ColorAssessment{
				Recommendations: []string{unable},
				Contrast:        unable,
				Accessibility:   unable,
			},
			Typography: &models.TypographyAssessment{
				Readability:     unable,
				Recommendations: []string{unable},
				Hierarchy:       unable,
			},
		},
		ActionItems: &models.ActionItems{
			Immediate: []string{"Try analyzing this slide again"},
			ShortTerm: []string{"Contact support if issue persists"},
			LongTerm:  []string{"Consider manual review"},
		},
		Error: "JSON parsing failed - please try again",
	}
}
