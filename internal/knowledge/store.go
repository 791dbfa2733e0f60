package knowledge

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SFZPL/prezlab-brain/internal/models"
)

var frameworkName = regexp.MustCompile(models.FrameworkNamePattern)

// Store holds the session's reference documents in memory. It is created at
// session start and cleared by Reset; there is no hidden global instance.
// At most one document carries the framework role at any time.
type Store struct {
	mu          sync.RWMutex
	docs        []*models.Document
	frameworkID string
	log         zerolog.Logger
}

func NewStore(log zerolog.Logger) *Store {
	return &Store{log: log.With().Str("component", "knowledge").Logger()}
}

// Add ingests a reference document. Keywords are derived once here; the
// record is immutable afterwards. A name matching the framework pattern takes
// over the framework role from any previous holder.
func (s *Store) Add(name, content, category string) (*models.Document, error) {
	if name == "" {
		return nil, fmt.Errorf("document name is required")
	}

	doc := &models.Document{
		ID:       uuid.NewString(),
		Name:     name,
		Content:  content,
		Category: category,
		Keywords: ExtractKeywords(content),
		AddedAt:  time.Now(),
		Size:     int64(len(content)),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if frameworkName.MatchString(name) {
		if prev := s.frameworkLocked(); prev != nil {
			prev.IsFramework = false
		}
		doc.IsFramework = true
		s.frameworkID = doc.ID
		s.log.Info().Str("name", name).Msg("framework document designated")
	}

	s.docs = append(s.docs, doc)
	s.log.Debug().Str("id", doc.ID).Str("name", name).Int("keywords", len(doc.Keywords)).Msg("document added")
	return doc, nil
}

// Remove deletes a document by id.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, doc := range s.docs {
		if doc.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			if s.frameworkID == id {
				s.frameworkID = ""
			}
			return nil
		}
	}
	return ErrNotFound
}

// Get returns a document by id.
func (s *Store) Get(id string) (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return nil, ErrNotFound
}

// List returns all documents in insertion order.
func (s *Store) List() []*models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Framework returns the designated framework document, or nil.
func (s *Store) Framework() *models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frameworkLocked()
}

func (s *Store) frameworkLocked() *models.Document {
	if s.frameworkID == "" {
		return nil
	}
	for _, doc := range s.docs {
		if doc.ID == s.frameworkID {
			return doc
		}
	}
	return nil
}

// Stats summarises the store contents.
func (s *Store) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := models.Stats{
		Documents:  len(s.docs),
		Categories: make(map[string]int),
	}
	for _, doc := range s.docs {
		st.TotalBytes += doc.Size
		if doc.Category != "" {
			st.Categories[doc.Category]++
		}
	}
	if fw := s.frameworkLocked(); fw != nil {
		st.HasFramework = true
		st.FrameworkName = fw.Name
	}
	return st
}

// Reset drops every document.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = nil
	s.frameworkID = ""
	s.log.Info().Msg("knowledge store reset")
}
