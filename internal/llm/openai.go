package llm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"

	"github.com/shikha-bhatt/ct-hackathon-2025/internal/config"
)

// AzureOpenAI is the gateway to the configured Azure OpenAI deployment. It is
// constructed once at process start and is safe for concurrent use.
type AzureOpenAI struct {
	client *openai.Client
	cfg    *config.OpenAIConfig
}

func NewAzureOpenAI(cfg *config.OpenAIConfig) (*AzureOpenAI, error) {
	client := openai.NewClient(
		azure.WithEndpoint(cfg.Endpoint, cfg.APIVersion),
		azure.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		// Retry policy belongs to callers; the gateway reports failures as-is.
		option.WithMaxRetries(0),
	)

	return &AzureOpenAI{
		client: client,
		cfg:    cfg,
	}, nil
}

func (a *AzureOpenAI) Complete(ctx context.Context, messages []Message, opts ...Option) (*Reply, error) {
	// Apply options over the configured defaults
	options := &Options{
		Model:       a.cfg.DeploymentName,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
		TopP:        1.0,
	}
	for _, opt := range opts {
		opt(options)
	}

	resp, err := a.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Model:       openai.F(options.Model),
			Messages:    openai.F(toParamMessages(messages)),
			MaxTokens:   openai.F(options.MaxTokens),
			Temperature: openai.F(options.Temperature),
			TopP:        openai.F(options.TopP),
		},
	)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			slog.Error("model endpoint rejected completion request", "status", apierr.StatusCode)
			return nil, &RejectedError{Status: apierr.StatusCode, Body: apierr.Error()}
		}
		slog.Error("completion request failed", "error", err)
		return nil, &UnavailableError{Err: err}
	}

	if len(resp.Choices) == 0 {
		slog.Error("model returned an empty choice list")
		return nil, ErrEmptyCompletion
	}

	choice := resp.Choices[0]
	slog.Info("received completion from model endpoint")

	return &Reply{
		Content:      choice.Message.Content,
		FinishReason: string(choice.FinishReason),
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func toParamMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
