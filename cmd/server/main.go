package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/aichatops/mockgpt/internal/auth"
	"github.com/aichatops/mockgpt/internal/catalog"
	"github.com/aichatops/mockgpt/internal/completion"
	"github.com/aichatops/mockgpt/internal/config"
	"github.com/aichatops/mockgpt/internal/fallback"
	"github.com/aichatops/mockgpt/internal/generator"
	"github.com/aichatops/mockgpt/internal/httpapi"
	"github.com/aichatops/mockgpt/internal/logger"
	"github.com/aichatops/mockgpt/internal/upstream"
)

func main() {
	configPath := flag.String("config", "", "Path to the configuration file")
	flag.Parse()

	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	logg := logger.New(logger.ParseLevel(cfg.LogLevel), "server")

	// Upstream provider is optional: with a credential the plain chat
	// surface attempts one real call per request before degrading to
	// canned replies; without one it answers from the fallback table only.
	var upstreamClient upstream.Client
	if cfg.UpstreamEnabled() {
		upstreamClient = upstream.NewOpenAIClient(cfg.Upstream.APIKey, cfg.Upstream.BaseURL, cfg.Upstream.Model)
		logg.Info("upstream provider enabled (model=%s)", cfg.Upstream.Model)
	} else {
		logg.Info("no upstream credential configured, running in fallback-only mode")
	}

	cat := catalog.New()
	gate := auth.NewGate(cfg.Server.APIKeys)
	responder := fallback.NewResponder(nil)
	chatGen := generator.NewFallback(upstreamClient, cfg.UpstreamTimeout(), responder, logg)

	// The OpenAI-compatible surface defaults to the deterministic mock
	// strategy; configuration may point it at the fallback strategy instead.
	var apiGen generator.Generator = generator.NewMock()
	if cfg.Generator == generator.StrategyFallback {
		apiGen = chatGen
	}
	completions := completion.NewService(cat, apiGen, logg)

	server := httpapi.NewServer(gate, completions, chatGen, cat, logg, cfg.StreamDelay())

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logg.Info("listening on %s", addr)
	if err := server.Router().Run(addr); err != nil {
		logg.Fatal("server stopped: %v", err)
	}
}
