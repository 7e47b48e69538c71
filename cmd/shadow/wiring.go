package main

import (
	"context"
	"fmt"

	"github.com/ayoub/shadow-system/internal/artifacts"
	"github.com/ayoub/shadow-system/internal/config"
	"github.com/ayoub/shadow-system/internal/llm"
	"github.com/ayoub/shadow-system/internal/store"
)

// loadRuntime resolves configuration from the optional config file and
// the environment. Commands that never touch a backend pass
// requireAPIKey=false so a bare DATABASE_URL is enough.
func loadRuntime(requireAPIKey bool) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set (set the environment variable or database_url in the config file)")
	}
	if requireAPIKey && cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set (set the environment variable or api_key in the config file)")
	}
	return cfg, nil
}

// openStore connects the progression store.
func openStore(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return st, nil
}

// newOrchestrator builds the ranked-backend orchestrator.
func newOrchestrator(ctx context.Context, cfg *config.Config) (*llm.Orchestrator, error) {
	backend, err := llm.NewGeminiBackend(ctx, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend: %w", err)
	}

	llmCfg := llm.DefaultConfig()
	if len(cfg.Models) > 0 {
		llmCfg.Models = cfg.Models
	}
	return llm.NewOrchestrator(backend, llmCfg), nil
}

// newArtifactWriter creates the artifact writer for the configured
// output directory.
func newArtifactWriter(cfg *config.Config) (*artifacts.Writer, error) {
	return artifacts.NewWriter(cfg.ArtifactsDir)
}
