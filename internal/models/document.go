package models

import "time"

// Document is a reference document held by the knowledge store. The keyword
// list is derived once at ingestion; the record is immutable afterwards.
type Document struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Keywords    []string  `json:"keywords"`
	IsFramework bool      `json:"is_framework"`
	AddedAt     time.Time `json:"added_at"`
	Size        int64     `json:"size"`
}

// ScoredDocument pairs a document with its relevance score for one query.
type ScoredDocument struct {
	Document *Document `json:"document"`
	Score    int       `json:"relevance_score"`
}

// Stats summarises the knowledge store.
type Stats struct {
	Documents     int            `json:"documents"`
	TotalBytes    int64          `json:"total_bytes"`
	HasFramework  bool           `json:"has_framework"`
	FrameworkName string         `json:"framework_name,omitempty"`
	Categories    map[string]int `json:"categories"`
}
