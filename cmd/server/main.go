package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SFZPL/prezlab-brain/internal/cache"
	"github.com/SFZPL/prezlab-brain/internal/config"
	"github.com/SFZPL/prezlab-brain/internal/deckparse"
	"github.com/SFZPL/prezlab-brain/internal/knowledge"
	"github.com/SFZPL/prezlab-brain/internal/llm"
	"github.com/SFZPL/prezlab-brain/internal/server"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	configPath := flag.String("config", configFilePath, "Path to the config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	store := knowledge.NewStore(log.Logger)

	parseCache := cache.New(cfg.Cache.Capacity, cfg.Cache.TTL, log.Logger)
	if err := parseCache.Load(cfg.Cache.FilePath); err != nil {
		log.Warn().Err(err).Str("path", cfg.Cache.FilePath).Msg("could not load parse cache, starting empty")
	}

	deck := deckparse.New(cfg.DeckParser.BaseURL, cfg.DeckParser.Timeout, log.Logger)
	model := llm.New(cfg.LLM, log.Logger)

	srv := server.New(cfg, store, parseCache, deck, model, log.Logger)

	httpServer := &http.Server{
		Addr:              cfg.Server.BindAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Server.BindAddr).Msg("server starting")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	if err := parseCache.Save(cfg.Cache.FilePath); err != nil {
		log.Error().Err(err).Str("path", cfg.Cache.FilePath).Msg("could not persist parse cache")
	}
}
