package models

// SlideRecord is the per-slide metadata produced by the external parsing
// service. Read-only here.
type SlideRecord struct {
	SlideNumber int    `json:"slide_number"`
	TextContent string `json:"text_content"`
	LayoutType  string `json:"layout_type"`
	Images      int    `json:"images"`
	Charts      int    `json:"charts"`
	Tables      int    `json:"tables"`
	TextBoxes   int    `json:"text_boxes"`
	ShapesCount int    `json:"shapes_count"`
	Notes       string `json:"notes,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// DeckMetadata is the presentation-level metadata block from the parser.
type DeckMetadata struct {
	Colors           []string `json:"colors,omitempty"`
	Fonts            []string `json:"fonts,omitempty"`
	HasImages        bool     `json:"has_images"`
	BulletPointCount int      `json:"bullet_point_count"`
	DesignComplexity string   `json:"design_complexity,omitempty"`
	ContentDensity   string   `json:"content_density,omitempty"`
}

// ParseResult is the body returned by the parsing service for one deck.
type ParseResult struct {
	SlideCount  int           `json:"slide_count"`
	TextContent string        `json:"text_content"`
	Slides      []SlideRecord `json:"slides"`
	Metadata    *DeckMetadata `json:"metadata,omitempty"`
	Truncated   bool          `json:"response_truncated,omitempty"`
}
