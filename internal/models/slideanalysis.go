package models

// SlideAnalysis is the per-slide analysis block. Like Analysis, every section
// is nullable; the llm package fills in a complete fallback record when the
// model response cannot be decoded, so the UI never renders a hole.
type SlideAnalysis struct {
	SlideOverview         *SlideOverview         `json:"slideOverview,omitempty"`
	ContentAnalysis       *ContentAnalysis       `json:"contentAnalysis,omitempty"`
	DesignRecommendations *DesignRecommendations `json:"designRecommendations,omitempty"`
	Storytelling          *SlideStorytelling     `json:"storytelling,omitempty"`
	ActionItems           *ActionItems           `json:"actionItems,omitempty"`
	Priority              *SlidePriority         `json:"priority,omitempty"`
	Error                 string                 `json:"error,omitempty"`
}

type SlideOverview struct {
	SlideNumber    int    `json:"slideNumber"`
	ContentSummary string `json:"contentSummary,omitempty"`
	SlidePurpose   string `json:"slidePurpose,omitempty"`
	Effectiveness  string `json:"effectiveness,omitempty"`
	Priority       string `json:"priority,omitempty"`
}

type ContentAnalysis struct {
	TextContent    *TextAssessment `json:"textContent,omitempty"`
	VisualElements *VisualElements `json:"visualElements,omitempty"`
}

type TextAssessment struct {
	Clarity      string   `json:"clarity,omitempty"`
	Organization string   `json:"organization,omitempty"`
	Length       string   `json:"length,omitempty"`
	KeyMessages  []string `json:"keyMessages,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
}

type VisualElements struct {
	Images *ElementAssessment `json:"images,omitempty"`
	Charts *ElementAssessment `json:"charts,omitempty"`
	Tables *ElementAssessment `json:"tables,omitempty"`
}

type ElementAssessment struct {
	Count           int      `json:"count"`
	Relevance       string   `json:"relevance,omitempty"`
	Effectiveness   string   `json:"effectiveness,omitempty"`
	Clarity         string   `json:"clarity,omitempty"`
	Quality         string   `json:"quality,omitempty"`
	Readability     string   `json:"readability,omitempty"`
	Structure       string   `json:"structure,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	Improvements    []string `json:"improvements,omitempty"`
}

type DesignRecommendations struct {
	Layout      *LayoutAssessment     `json:"layout,omitempty"`
	ColorScheme *ColorAssessment      `json:"colorScheme,omitempty"`
	Typography  *TypographyAssessment `json:"typography,omitempty"`
	Spacing     *SpacingAssessment    `json:"spacing,omitempty"`
}

type LayoutAssessment struct {
	CurrentLayout     string   `json:"currentLayout,omitempty"`
	Effectiveness     string   `json:"effectiveness,omitempty"`
	RecommendedLayout string   `json:"recommendedLayout,omitempty"`
	SpecificChanges   []string `json:"specificChanges,omitempty"`
	VisualHierarchy   string   `json:"visualHierarchy,omitempty"`
}

type ColorAssessment struct {
	CurrentColors      []string `json:"currentColors,omitempty"`
	Effectiveness      string   `json:"effectiveness,omitempty"`
	RecommendedPalette []string `json:"recommendedPalette,omitempty"`
	Recommendations    []string `json:"recommendations,omitempty"`
	ColorPsychology    string   `json:"colorPsychology,omitempty"`
	Contrast           string   `json:"contrast,omitempty"`
	Accessibility      string   `json:"accessibility,omitempty"`
}

type TypographyAssessment struct {
	CurrentFonts     []string `json:"currentFonts,omitempty"`
	Readability      string   `json:"readability,omitempty"`
	RecommendedFonts []string `json:"recommendedFonts,omitempty"`
	Recommendations  []string `json:"recommendations,omitempty"`
	Sizing           string   `json:"sizing,omitempty"`
	Hierarchy        string   `json:"hierarchy,omitempty"`
}

type SpacingAssessment struct {
	CurrentSpacing  string   `json:"currentSpacing,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	WhiteSpace      string   `json:"whiteSpace,omitempty"`
}

type SlideStorytelling struct {
	NarrativeRole string `json:"narrativeRole,omitempty"`
	Flow          string `json:"flow,omitempty"`
	Engagement    string `json:"engagement,omitempty"`
	CallToAction  string `json:"callToAction,omitempty"`
}

type ActionItems struct {
	Immediate []string `json:"immediate,omitempty"`
	ShortTerm []string `json:"shortTerm,omitempty"`
	LongTerm  []string `json:"longTerm,omitempty"`
}

type SlidePriority struct {
	Level     string `json:"level,omitempty"`
	Reasoning string `json:"reasoning,omitempty"`
	Impact    string `json:"impact,omitempty"`
}
