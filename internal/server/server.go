// Package server exposes the HTTP API: deck parsing, design analysis, chat,
// exports and knowledge-base management.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/SFZPL/prezlab-brain/internal/assembler"
	"github.com/SFZPL/prezlab-brain/internal/cache"
	"github.com/SFZPL/prezlab-brain/internal/config"
	"github.com/SFZPL/prezlab-brain/internal/knowledge"
	"github.com/SFZPL/prezlab-brain/internal/models"
)

// DeckParser is the external parsing collaborator.
type DeckParser interface {
	Health(ctx context.Context) error
	Parse(ctx context.Context, filename string, data []byte) (*models.ParseResult, error)
}

// ModelClient is the language-model collaborator.
type ModelClient interface {
	AnalyzeDesign(ctx context.Context, content *models.ParseResult, companyContext string, audience *models.AudienceInfo) (*models.Analysis, error)
	AnalyzeSlide(ctx context.Context, slide models.SlideRecord, presContext *models.Analysis, audience *models.AudienceInfo, slideNumber int) (*models.SlideAnalysis, error)
	Chat(ctx context.Context, message, contextString string, history []models.ChatMessage) (string, error)
}

// Parse uploads are rate limited per client IP.
const (
	parseRateLimit  = 20
	parseRateWindow = time.Minute
)

type Server struct {
	cfg       *config.Config
	log       zerolog.Logger
	store     *knowledge.Store
	cache     *cache.Cache
	deck      DeckParser
	model     ModelClient
	assembler *assembler.Assembler
	router    http.Handler

	// analyzeGen orders overlapping /analyze requests so that a response
	// superseded by a newer request is discarded instead of served.
	analyzeGen atomic.Int64
}

func New(cfg *config.Config, store *knowledge.Store, parseCache *cache.Cache, deck DeckParser, model ModelClient, log zerolog.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		log:       log,
		store:     store,
		cache:     parseCache,
		deck:      deck,
		model:     model,
		assembler: assembler.New(store, log),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	parseLimiter := httprate.Limit(parseRateLimit, parseRateWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			s.writeError(w, http.StatusTooManyRequests, "rate limit exceeded; wait before making another request")
		}),
	)

	r.Get("/health", s.handleHealth)
	r.With(parseLimiter).Post("/parse-pptx", s.handleParseDeck)
	r.Post("/analyze", s.handleAnalyze)
	r.Post("/analyze-slide", s.handleAnalyzeSlide)
	r.Post("/chat", s.handleChat)

	r.Post("/export/json", s.handleExportJSON)
	r.Post("/export/report", s.handleExportReport)
	r.Post("/export/questions", s.handleExportQuestions)

	r.Route("/knowledge", func(r chi.Router) {
		r.Post("/", s.handleKnowledgeAdd)
		r.Get("/", s.handleKnowledgeList)
		r.Delete("/{id}", s.handleKnowledgeRemove)
		r.Post("/reset", s.handleKnowledgeReset)
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error().Err(err).Msg("write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
