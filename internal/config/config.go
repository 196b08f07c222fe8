package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8080"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"`
}

// OpenAIConfig identifies the Azure OpenAI deployment the gateway talks to
// and carries the process-wide generation defaults.
type OpenAIConfig struct {
	APIKey         string        `envconfig:"AZURE_OPENAI_API_KEY" required:"true"`
	Endpoint       string        `envconfig:"AZURE_OPENAI_ENDPOINT" required:"true"`
	DeploymentName string        `envconfig:"AZURE_OPENAI_DEPLOYMENT" default:"gpt-4o"`
	APIVersion     string        `envconfig:"AZURE_OPENAI_API_VERSION" default:"2024-02-15-preview"`
	MaxTokens      int64         `envconfig:"AZURE_OPENAI_MAX_TOKENS" default:"4000"`
	Temperature    float64       `envconfig:"AZURE_OPENAI_TEMPERATURE" default:"0.7"`
	Timeout        time.Duration `envconfig:"AZURE_OPENAI_TIMEOUT" default:"60s"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
