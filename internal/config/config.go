package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	LLM        LLMConfig        `yaml:"llm"`
	DeckParser DeckParserConfig `yaml:"deck_parser"`
	Cache      CacheConfig      `yaml:"cache"`
}

type ServerConfig struct {
	BindAddr    string `yaml:"bind_addr"`
	MaxUploadMB int64  `yaml:"max_upload_mb"`
}

type LLMConfig struct {
	BaseURL        string  `yaml:"base_url"`
	APIKey         string  `yaml:"api_key"`
	Model          string  `yaml:"model"`
	Temperature    float64 `yaml:"temperature"`
	AnalysisTokens int     `yaml:"analysis_tokens"`
	SlideTokens    int     `yaml:"slide_tokens"`
	ChatTokens     int     `yaml:"chat_tokens"`
}

type DeckParserConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type CacheConfig struct {
	Capacity int           `yaml:"capacity"`
	TTL      time.Duration `yaml:"ttl"`
	FilePath string        `yaml:"file_path"`
}

// LoadConfig reads the YAML file, applies environment overrides and fills in
// defaults. A missing file is fine; env vars alone can configure the service.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// env wins over file for deploy-time settings
	cfg.Server.BindAddr = getEnv("BIND_ADDR", cfg.Server.BindAddr)
	cfg.LLM.APIKey = getEnv("OPENAI_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.BaseURL = getEnv("OPENAI_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.Model = getEnv("OPENAI_MODEL", cfg.LLM.Model)
	cfg.DeckParser.BaseURL = getEnv("DECK_PARSER_URL", cfg.DeckParser.BaseURL)

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.BindAddr == "" {
		c.Server.BindAddr = "0.0.0.0:8080"
	}
	if c.Server.MaxUploadMB <= 0 {
		c.Server.MaxUploadMB = 200
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4"
	}
	if c.LLM.Temperature <= 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.AnalysisTokens <= 0 {
		c.LLM.AnalysisTokens = 3000
	}
	if c.LLM.SlideTokens <= 0 {
		c.LLM.SlideTokens = 2000
	}
	if c.LLM.ChatTokens <= 0 {
		c.LLM.ChatTokens = 1000
	}
	if c.DeckParser.BaseURL == "" {
		c.DeckParser.BaseURL = "http://localhost:5000"
	}
	if c.DeckParser.Timeout <= 0 {
		c.DeckParser.Timeout = 120 * time.Second
	}
	if c.Cache.Capacity <= 0 {
		c.Cache.Capacity = 50
	}
	if c.Cache.TTL <= 0 {
		c.Cache.TTL = 24 * time.Hour
	}
	if c.Cache.FilePath == "" {
		c.Cache.FilePath = "./data/parse-cache.json"
	}
}

func (c *Config) validate() error {
	if c.Server.MaxUploadMB > 600 {
		return fmt.Errorf("max_upload_mb cannot exceed 600")
	}
	if c.LLM.Temperature > 2 {
		return fmt.Errorf("llm temperature must be at most 2")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
