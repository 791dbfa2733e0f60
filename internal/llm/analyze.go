package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/SFZPL/prezlab-brain/internal/models"
)

// AnalyzeDesign runs the Design Compass analysis over a parsed deck. The
// model must answer with the analysis JSON schema; anything else fails with
// ErrMalformedResponse.
func (c *Client) AnalyzeDesign(ctx context.Context, content *models.ParseResult, companyContext string, audience *models.AudienceInfo) (*models.Analysis, error) {
	prompt := buildDesignPrompt(content, companyContext, audience)

	raw, err := c.generate(ctx, c.cfg.AnalysisTokens, []llms.MessageContent{
		systemMessage(models.AnalysisSystemPrompt),
		humanMessage(prompt),
	})
	if err != nil {
		return nil, err
	}

	analysis, err := decodeAnalysis(raw)
	if err != nil {
		c.log.Error().Str("raw", raw).Msg("analysis response failed to decode")
		return nil, err
	}
	return analysis, nil
}

// decodeAnalysis validates the model output at the boundary so the rest of
// the system can trust the (still all-optional) Analysis shape.
func decodeAnalysis(raw string) (*models.Analysis, error) {
	cleaned := stripCodeFences(raw)

	var analysis models.Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if analysis.PresentationType == nil && analysis.DesignDirection == nil && analysis.ExecutionGuidance == nil {
		return nil, fmt.Errorf("%w: no recognised analysis sections", ErrMalformedResponse)
	}
	return &analysis, nil
}

func buildDesignPrompt(content *models.ParseResult, companyContext string, audience *models.AudienceInfo) string {
	var doc strings.Builder
	if content.SlideCount > 0 {
		fmt.Fprintf(&doc, "Slide Count: %d\n", content.SlideCount)
	}
	fmt.Fprintf(&doc, "Text Content: %s", content.TextContent)
	if md := content.Metadata; md != nil {
		if len(md.Colors) > 0 {
			fmt.Fprintf(&doc, "\nCurrent Colors: %s", strings.Join(md.Colors, ", "))
		}
		if len(md.Fonts) > 0 {
			fmt.Fprintf(&doc, "\nFonts: %s", strings.Join(md.Fonts, ", "))
		}
		if md.HasImages {
			doc.WriteString("\nHas Images: true")
		}
		if md.BulletPointCount > 0 {
			fmt.Fprintf(&doc, "\nBullet Points: %d", md.BulletPointCount)
		}
	}

	companyText := ""
	if companyContext != "" {
		companyText = fmt.Sprintf("COMPANY DESIGN GUIDELINES:\n%s\n\n", companyContext)
	}

	return fmt.Sprintf(models.DesignCompassPromptTemplate, doc.String(), companyText, audienceText(audience))
}

func audienceText(audience *models.AudienceInfo) string {
	if audience == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("AUDIENCE INFORMATION:\n")
	fmt.Fprintf(&b, "- Type: %s\n", orDefault(audience.Type, "Not specified"))
	fmt.Fprintf(&b, "- Goal: %s\n", orDefault(audience.Goal, "Not specified"))
	fmt.Fprintf(&b, "- Size: %s\n", orDefault(audience.Size, "Not specified"))
	fmt.Fprintf(&b, "- Additional Context: %s\n", orDefault(audience.Context, "None provided"))
	if audience.RetainerClient != "" {
		fmt.Fprintf(&b, "- Retainer Client: %s\n", audience.RetainerClient)
	}
	b.WriteString("\n")
	return b.String()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
