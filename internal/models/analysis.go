package models

// Analysis is the structured design analysis returned by the model. The model
// is free to omit any section, so every section is nullable and consumers
// must check before dereferencing. Validation happens where the model
// response is decoded, not at access sites.
type Analysis struct {
	PresentationType        *PresentationType    `json:"presentationType,omitempty"`
	StrategicDirection      *StrategicDirection  `json:"strategicDirection,omitempty"`
	ContextualGrounding     *ContextualGrounding `json:"contextualGrounding,omitempty"`
	DesignDirection         *DesignDirection     `json:"designDirection,omitempty"`
	StorytellingStructure   *Storytelling        `json:"storytellingStructure,omitempty"`
	ContentStrategy         *ContentStrategy     `json:"contentStrategy,omitempty"`
	ExecutionGuidance       *ExecutionGuidance   `json:"executionGuidance,omitempty"`
	ClientQuestions         *ClientQuestions     `json:"clientQuestions,omitempty"`
	DesignCompassStage      *CompassStage        `json:"designCompassStage,omitempty"`
	BrandIntegration        *BrandIntegration    `json:"brandIntegration,omitempty"`
	TechnicalSpecifications *TechnicalSpecs      `json:"technicalSpecifications,omitempty"`
	Slides                  []SlideRecord        `json:"slides,omitempty"`
}

type PresentationType struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary,omitempty"`
	Reasoning  string `json:"reasoning,omitempty"`
	Confidence string `json:"confidence,omitempty"`
}

type StrategicDirection struct {
	PrimaryStrategy    string   `json:"primaryStrategy,omitempty"`
	CommunicationGoal  string   `json:"communicationGoal,omitempty"`
	AudienceEngagement string   `json:"audienceEngagement,omitempty"`
	CallToAction       string   `json:"callToAction,omitempty"`
	SuccessMetrics     []string `json:"successMetrics,omitempty"`
}

type ContextualGrounding struct {
	IdentifiedObjective string `json:"identifiedObjective,omitempty"`
	AudienceProfile     string `json:"audienceProfile,omitempty"`
	PresentationTrigger string `json:"presentationTrigger,omitempty"`
	StakeholderMapping  string `json:"stakeholderMapping,omitempty"`
	UrgencyLevel        string `json:"urgencyLevel,omitempty"`
	PoliticalClimate    string `json:"politicalClimate,omitempty"`
	BusinessContext     string `json:"businessContext,omitempty"`
}

type DesignDirection struct {
	Backgrounds     *DesignChoice `json:"backgrounds,omitempty"`
	Layouts         *DesignChoice `json:"layouts,omitempty"`
	Imagery         *DesignChoice `json:"imagery,omitempty"`
	Fonts           *FontChoice   `json:"fonts,omitempty"`
	Colors          *ColorChoice  `json:"colors,omitempty"`
	VisualMetaphors *DesignChoice `json:"visualMetaphors,omitempty"`
	Spacing         *DesignChoice `json:"spacing,omitempty"`
	VisualHierarchy *DesignChoice `json:"visualHierarchy,omitempty"`
}

type DesignChoice struct {
	Recommended             string   `json:"recommended,omitempty"`
	SpecificRecommendations []string `json:"specificRecommendations,omitempty"`
	Reasoning               string   `json:"reasoning,omitempty"`
}

type FontChoice struct {
	Headings     string   `json:"headings,omitempty"`
	Body         string   `json:"body,omitempty"`
	Accent       string   `json:"accent,omitempty"`
	Reasoning    string   `json:"reasoning,omitempty"`
	FontPairings []string `json:"fontPairings,omitempty"`
	Sizing       string   `json:"sizing,omitempty"`
}

type ColorChoice struct {
	Primary         []string `json:"primary,omitempty"`
	Secondary       []string `json:"secondary,omitempty"`
	Accent          []string `json:"accent,omitempty"`
	Neutral         []string `json:"neutral,omitempty"`
	PaletteApproach string   `json:"paletteApproach,omitempty"`
	ColorPsychology string   `json:"colorPsychology,omitempty"`
	Accessibility   string   `json:"accessibility,omitempty"`
	BrandAlignment  string   `json:"brandAlignment,omitempty"`
}

type Storytelling struct {
	NarrativeApproach   string   `json:"narrativeApproach,omitempty"`
	KeyMessages         []string `json:"keyMessages,omitempty"`
	EmotionalTone       string   `json:"emotionalTone,omitempty"`
	FlowRecommendations []string `json:"flowRecommendations,omitempty"`
	Opening             string   `json:"opening,omitempty"`
	Closing             string   `json:"closing,omitempty"`
	Transitions         []string `json:"transitions,omitempty"`
}

type ContentStrategy struct {
	KeyPoints          []string `json:"keyPoints,omitempty"`
	DataPresentation   string   `json:"dataPresentation,omitempty"`
	StoryElements      []string `json:"storyElements,omitempty"`
	CallToAction       string   `json:"callToAction,omitempty"`
	SupportingEvidence string   `json:"supportingEvidence,omitempty"`
}

type ExecutionGuidance struct {
	PriorityFixes      []string `json:"priorityFixes,omitempty"`
	QuickWins          []string `json:"quickWins,omitempty"`
	DesignPrinciples   []string `json:"designPrinciples,omitempty"`
	SlideTemplateNeeds []string `json:"slideTemplateNeeds,omitempty"`
	TechnicalSpecs     []string `json:"technicalSpecs,omitempty"`
	DeliveryTips       []string `json:"deliveryTips,omitempty"`
}

type ClientQuestions struct {
	ClarifyingQuestions      []string `json:"clarifyingQuestions,omitempty"`
	StakeholderQuestions     []string `json:"stakeholderQuestions,omitempty"`
	VisualReadinessQuestions []string `json:"visualReadinessQuestions,omitempty"`
	TechnicalQuestions       []string `json:"technicalQuestions,omitempty"`
	TimelineQuestions        []string `json:"timelineQuestions,omitempty"`
}

type CompassStage struct {
	CurrentStage  string   `json:"currentStage,omitempty"`
	NextSteps     []string `json:"nextSteps,omitempty"`
	StageGuidance string   `json:"stageGuidance,omitempty"`
	Deliverables  []string `json:"deliverables,omitempty"`
}

type BrandIntegration struct {
	BrandAlignment string   `json:"brandAlignment,omitempty"`
	BrandElements  []string `json:"brandElements,omitempty"`
	BrandColors    []string `json:"brandColors,omitempty"`
	BrandVoice     string   `json:"brandVoice,omitempty"`
}

type TechnicalSpecs struct {
	Format        string `json:"format,omitempty"`
	AspectRatio   string `json:"aspectRatio,omitempty"`
	Resolution    string `json:"resolution,omitempty"`
	FileSize      string `json:"fileSize,omitempty"`
	Compatibility string `json:"compatibility,omitempty"`
}

// AudienceInfo is the optional audience block supplied by the caller.
type AudienceInfo struct {
	Type           string `json:"type,omitempty"`
	Goal           string `json:"goal,omitempty"`
	Size           string `json:"size,omitempty"`
	Context        string `json:"context,omitempty"`
	RetainerClient string `json:"retainer_client,omitempty"`
}

// ChatMessage is one conversation turn.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
