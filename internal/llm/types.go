package llm

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged chat message. Prompt builders always emit the
// system message first; the gateway sends messages in the order given.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Provider interface {
	// Complete sends the messages to the chat-completion endpoint and returns
	// the first choice. Generation parameters not overridden via opts fall
	// back to the configured defaults.
	Complete(ctx context.Context, messages []Message, opts ...Option) (*Reply, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Reply is the usable part of a successful completion.
type Reply struct {
	Content      string
	FinishReason string
	Usage        Usage
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
	TopP        float64
}

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

func WithMaxTokens(n int64) Option {
	return func(o *Options) { o.MaxTokens = n }
}

func WithTemperature(t float64) Option {
	return func(o *Options) { o.Temperature = t }
}

func WithTopP(p float64) Option {
	return func(o *Options) { o.TopP = p }
}
