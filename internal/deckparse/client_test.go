package deckparse_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/SFZPL/prezlab-brain/internal/deckparse"
)

func newClient(url string) *deckparse.Client {
	return deckparse.New(url, 5*time.Second, zerolog.Nop())
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newClient(srv.URL).Health(context.Background()))
}

func TestHealthUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newClient(srv.URL).Health(context.Background())
	require.ErrorIs(t, err, deckparse.ErrUnavailable)
}

func TestParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/parse-pptx", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "deck.pptx", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"slide_count": 2,
			"text_content": "` + strings.Repeat("slide text ", 10) + `",
			"slides": [
				{"slide_number": 1, "text_content": "intro", "layout_type": "title"},
				{"slide_number": 2, "text_content": "body", "layout_type": "content"}
			]
		}`))
	}))
	defer srv.Close()

	result, err := newClient(srv.URL).Parse(context.Background(), "deck.pptx", []byte("bytes"))
	require.NoError(t, err)
	require.Equal(t, 2, result.SlideCount)
	require.Len(t, result.Slides, 2)
	require.Equal(t, "title", result.Slides[0].LayoutType)
}

func TestParseInsufficientContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"slide_count": 1, "text_content": "too short"}`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Parse(context.Background(), "deck.pptx", []byte("bytes"))
	require.ErrorIs(t, err, deckparse.ErrInsufficientContent)
}

func TestParseUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Parse(context.Background(), "deck.pptx", []byte("bytes"))
	require.ErrorIs(t, err, deckparse.ErrUnavailable)
}
