package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SFZPL/prezlab-brain/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8080", cfg.Server.BindAddr)
	require.Equal(t, "gpt-4", cfg.LLM.Model)
	require.Equal(t, 0.7, cfg.LLM.Temperature)
	require.Equal(t, 3000, cfg.LLM.AnalysisTokens)
	require.Equal(t, "http://localhost:5000", cfg.DeckParser.BaseURL)
	require.Equal(t, 50, cfg.Cache.Capacity)
	require.Equal(t, 24*time.Hour, cfg.Cache.TTL)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  bind_addr: "127.0.0.1:9000"
llm:
  model: "gpt-4o"
  api_key: "sk-test"
deck_parser:
  base_url: "http://parser:5000"
  timeout: 30s
cache:
  capacity: 5
  ttl: 1h
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.Server.BindAddr)
	require.Equal(t, "gpt-4o", cfg.LLM.Model)
	require.Equal(t, "sk-test", cfg.LLM.APIKey)
	require.Equal(t, "http://parser:5000", cfg.DeckParser.BaseURL)
	require.Equal(t, 30*time.Second, cfg.DeckParser.Timeout)
	require.Equal(t, 5, cfg.Cache.Capacity)
	require.Equal(t, time.Hour, cfg.Cache.TTL)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("DECK_PARSER_URL", "http://env-parser:5000")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, "sk-env", cfg.LLM.APIKey)
	require.Equal(t, "http://env-parser:5000", cfg.DeckParser.BaseURL)
}

func TestLoadConfigRejectsOversizeUpload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  max_upload_mb: 1000\n"), 0o644))

	_, err := config.LoadConfig(path)
	require.Error(t, err)
}
