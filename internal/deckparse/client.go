// Package deckparse is the client for the external slide-deck parsing
// service. The service owns all .pptx handling; this side only uploads the
// file and checks the response is usable.
package deckparse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/SFZPL/prezlab-brain/internal/models"
)

// Responses with less text than this are treated as a failed parse: decks
// that render text as images produce nearly empty extractions.
const minContentLength = 50

var (
	ErrUnavailable = errors.New("parsing service unavailable")

	// ErrInsufficientContent carries the manual alternative the UI offers.
	ErrInsufficientContent = errors.New("could not extract enough text from the presentation; try converting it to PDF or pasting the text directly")
)

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "deckparse").Logger(),
	}
}

// Health probes the service's availability.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health returned %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// Parse uploads a deck and returns the extracted slides and metadata. No
// retries; a failure is surfaced with enough detail for the user to act on.
func (c *Client) Parse(ctx context.Context, filename string, data []byte) (*models.ParseResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse-pptx", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		c.log.Error().Int("status", resp.StatusCode).Str("body", string(raw)).Msg("parse request failed")
		return nil, fmt.Errorf("%w: parse returned %d", ErrUnavailable, resp.StatusCode)
	}

	var result models.ParseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode parse response: %w", err)
	}

	if len(result.TextContent) < minContentLength {
		c.log.Warn().Str("file", filename).Int("chars", len(result.TextContent)).Msg("parse produced too little text")
		return nil, ErrInsufficientContent
	}

	c.log.Info().Str("file", filename).Int("slides", result.SlideCount).Msg("deck parsed")
	return &result, nil
}
