package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SFZPL/prezlab-brain/internal/cache"
	"github.com/SFZPL/prezlab-brain/internal/deckparse"
	"github.com/SFZPL/prezlab-brain/internal/export"
	"github.com/SFZPL/prezlab-brain/internal/knowledge"
	"github.com/SFZPL/prezlab-brain/internal/llm"
	"github.com/SFZPL/prezlab-brain/internal/models"
	"github.com/SFZPL/prezlab-brain/internal/parser"
)

const (
	// Responses above this size are replaced by a summary so a huge deck
	// does not flood the client.
	maxResponseBytes = 10 * 1024 * 1024

	summaryTextLimit = 5000
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	parserStatus := "available"
	if err := s.deck.Health(ctx); err != nil {
		parserStatus = "unavailable"
	}

	modelStatus := "available"
	if s.cfg.LLM.APIKey == "" {
		modelStatus = "missing api key"
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services": map[string]string{
			"model":       modelStatus,
			"file_parser": parserStatus,
		},
	})
}

// deckExtensions are the upload types the parsing collaborator accepts.
var deckExtensions = map[string]bool{
	".ppt":  true,
	".pptx": true,
	".doc":  true,
	".docx": true,
	".pdf":  true,
	".txt":  true,
}

func looksLikePowerPoint(data []byte) bool {
	// PK: zip container (pptx); d0cf11e0: OLE compound file (ppt)
	return bytes.HasPrefix(data, []byte("PK")) ||
		bytes.HasPrefix(data, []byte{0xd0, 0xcf, 0x11, 0xe0})
}

func (s *Server) handleParseDeck(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(s.cfg.Server.MaxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("file exceeds the %dMB upload limit", s.cfg.Server.MaxUploadMB))
			return
		}
		s.writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.writeError(w, http.StatusBadRequest, "no file selected")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !deckExtensions[ext] {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("file type %q is not supported; supported types: ppt, pptx, doc, docx, pdf, txt", ext))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	if (ext == ".ppt" || ext == ".pptx") && !looksLikePowerPoint(data) {
		s.log.Warn().Str("file", header.Filename).Msg("file may be corrupted or not a valid PowerPoint file")
	}

	key := cache.Fingerprint(header.Filename, data)
	if raw, ok := s.cache.Get(key); ok {
		var cached models.ParseResult
		if err := json.Unmarshal(raw, &cached); err == nil {
			s.log.Info().Str("file", header.Filename).Msg("serving cached parse result")
			s.writeParseResult(w, header.Filename, &cached, raw)
			return
		}
		s.cache.Delete(key)
	}

	result, err := s.deck.Parse(r.Context(), header.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, deckparse.ErrInsufficientContent):
			s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, deckparse.ErrUnavailable):
			s.writeError(w, http.StatusServiceUnavailable,
				"the parsing service is unavailable; convert the deck to PDF and add it to the knowledge base, or paste the slide text directly")
		default:
			s.log.Error().Err(err).Str("file", header.Filename).Msg("parse failed")
			s.writeError(w, http.StatusInternalServerError, "an unexpected error occurred while processing the file")
		}
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "could not encode parse result")
		return
	}
	s.cache.Set(key, raw)

	s.writeParseResult(w, header.Filename, result, raw)
}

// writeParseResult sends a parse result, replacing oversized payloads with a
// summary. Cached and fresh results go through the same gate, so a repeat
// upload of a huge deck stays summarized.
func (s *Server) writeParseResult(w http.ResponseWriter, filename string, result *models.ParseResult, raw []byte) {
	if len(raw) > maxResponseBytes {
		s.log.Warn().Str("file", filename).Int("bytes", len(raw)).Msg("large parse response, summarising")
		text := result.TextContent
		if len(text) > summaryTextLimit {
			text = text[:summaryTextLimit] + "..."
		}
		s.writeJSON(w, http.StatusOK, map[string]any{
			"slide_count":        result.SlideCount,
			"text_content":       text,
			"metadata":           result.Metadata,
			"slides_available":   true,
			"total_slides":       len(result.Slides),
			"response_truncated": true,
			"original_size_mb":   float64(len(raw)) / (1 << 20),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

type analyzeRequest struct {
	Content        *models.ParseResult  `json:"content"`
	CompanyContext string               `json:"company_context"`
	Audience       *models.AudienceInfo `json:"audience_info"`
	Slides         []models.SlideRecord `json:"slides_data"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Content == nil {
		s.writeError(w, http.StatusBadRequest, "content required for analysis")
		return
	}

	gen := s.analyzeGen.Add(1)

	analysis, err := s.model.AnalyzeDesign(r.Context(), req.Content, req.CompanyContext, req.Audience)
	if err != nil {
		s.writeModelError(w, err)
		return
	}

	// A newer /analyze request arrived while this one was in flight; its
	// result is the one the client should keep.
	if s.analyzeGen.Load() != gen {
		s.writeError(w, http.StatusConflict, "analysis superseded by a newer request")
		return
	}

	analysis.Slides = req.Slides
	s.writeJSON(w, http.StatusOK, analysis)
}

type analyzeSlideRequest struct {
	Slide       *models.SlideRecord  `json:"slide_data"`
	Context     *models.Analysis     `json:"presentation_context"`
	Audience    *models.AudienceInfo `json:"audience_info"`
	SlideNumber int                  `json:"slide_number"`
}

func (s *Server) handleAnalyzeSlide(w http.ResponseWriter, r *http.Request) {
	var req analyzeSlideRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Slide == nil {
		s.writeError(w, http.StatusBadRequest, "slide data required for analysis")
		return
	}
	if req.SlideNumber < 1 {
		req.SlideNumber = 1
	}

	result, err := s.model.AnalyzeSlide(r.Context(), *req.Slide, req.Context, req.Audience, req.SlideNumber)
	if err != nil {
		s.writeModelError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

type chatRequest struct {
	Message  string               `json:"message"`
	Analysis *models.Analysis     `json:"analysis"`
	History  []models.ChatMessage `json:"conversation_history"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		s.writeError(w, http.StatusBadRequest, "message required")
		return
	}

	contextString := s.assembler.BuildContext(req.Message, req.Analysis, req.History)

	reply, err := s.model.Chat(r.Context(), req.Message, contextString, req.History)
	if err != nil {
		s.writeModelError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func (s *Server) writeModelError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey), errors.Is(err, llm.ErrEmptyMessage):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, llm.ErrMalformedResponse):
		s.writeError(w, http.StatusBadGateway, err.Error())
	default:
		s.log.Error().Err(err).Msg("model call failed")
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

type exportRequest struct {
	Analysis *models.Analysis `json:"analysis"`
}

func (s *Server) decodeExport(w http.ResponseWriter, r *http.Request) *models.Analysis {
	var req exportRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return nil
	}
	if req.Analysis == nil {
		s.writeError(w, http.StatusBadRequest, "analysis data required")
		return nil
	}
	return req.Analysis
}

func writeAttachment(w http.ResponseWriter, name, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	analysis := s.decodeExport(w, r)
	if analysis == nil {
		return
	}

	raw, err := export.JSON(analysis)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "could not encode analysis")
		return
	}
	writeAttachment(w, "design-analysis.json", "application/json", raw)
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	analysis := s.decodeExport(w, r)
	if analysis == nil {
		return
	}

	report := export.Report(analysis, time.Now())
	writeAttachment(w, "design-analysis-report.txt", "text/plain", []byte(report))
}

func (s *Server) handleExportQuestions(w http.ResponseWriter, r *http.Request) {
	analysis := s.decodeExport(w, r)
	if analysis == nil {
		return
	}

	questions := export.Questions(analysis, time.Now())
	writeAttachment(w, "client-questions.txt", "text/plain", []byte(questions))
}

// documentSummary is a document without its content, for listings and
// upload acknowledgements.
type documentSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Keywords    []string  `json:"keywords"`
	IsFramework bool      `json:"is_framework"`
	AddedAt     time.Time `json:"added_at"`
	Size        int64     `json:"size"`
}

func summarizeDocument(doc *models.Document) documentSummary {
	return documentSummary{
		ID:          doc.ID,
		Name:        doc.Name,
		Category:    doc.Category,
		Keywords:    doc.Keywords,
		IsFramework: doc.IsFramework,
		AddedAt:     doc.AddedAt,
		Size:        doc.Size,
	}
}

type knowledgeTextRequest struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (s *Server) handleKnowledgeAdd(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(s.cfg.Server.MaxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	name, content, category, ok := s.readKnowledgeUpload(w, r)
	if !ok {
		return
	}

	doc, err := s.store.Add(name, content, category)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, http.StatusCreated, summarizeDocument(doc))
}

// readKnowledgeUpload accepts either a multipart file upload or a pasted-text
// JSON body. On failure the error response has already been written.
func (s *Server) readKnowledgeUpload(w http.ResponseWriter, r *http.Request) (name, content, category string, ok bool) {
	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !isMultipart(contentType) {
		var req knowledgeTextRequest
		if err := decodeBody(r, &req); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid request body")
			return "", "", "", false
		}
		if req.Name == "" || req.Content == "" {
			s.writeError(w, http.StatusBadRequest, "name and content required")
			return "", "", "", false
		}
		return req.Name, req.Content, req.Category, true
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "no file provided")
		return "", "", "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "could not read uploaded file")
		return "", "", "", false
	}

	text, err := parser.ExtractBytes(header.Filename, data)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return "", "", "", false
	}

	return header.Filename, text, r.FormValue("category"), true
}

func isMultipart(contentType string) bool {
	return len(contentType) >= 10 && contentType[:10] == "multipart/"
}

func (s *Server) handleKnowledgeList(w http.ResponseWriter, r *http.Request) {
	docs := s.store.List()
	summaries := make([]documentSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, summarizeDocument(doc))
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"documents": summaries,
		"stats":     s.store.Stats(),
	})
}

func (s *Server) handleKnowledgeRemove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Remove(id); err != nil {
		if errors.Is(err, knowledge.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "document not found")
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (s *Server) handleKnowledgeReset(w http.ResponseWriter, r *http.Request) {
	s.store.Reset()
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
