// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/shikha-bhatt/ct-hackathon-2025/internal/config"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/llm"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/server"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/travel"
)

func main() {
	// Local development convenience; the environment wins in deployments.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	provider, err := llm.NewAzureOpenAI(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	planner := travel.NewPlanner(provider)

	srv := server.New(*cfg, planner)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
