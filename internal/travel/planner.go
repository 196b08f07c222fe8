// Package travel implements the five travel-assistance features (forex,
// cards, visa, SIM, itinerary) as one shared pipeline: normalize the request,
// render the feature prompt, invoke the model gateway, extract the reply and
// merge it with the deterministic reference data.
package travel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shikha-bhatt/ct-hackathon-2025/internal/llm"
)

// Planner answers traveler questions by combining the model's free-text
// reasoning with the static catalogs. It holds no per-request state.
type Planner struct {
	provider llm.Provider
}

func NewPlanner(provider llm.Provider) *Planner {
	return &Planner{provider: provider}
}

// MalformedOutputError means the model's reply could not be parsed into the
// structured schema a feature requires. No defaults are substituted; callers
// decide how to surface the failure.
type MalformedOutputError struct {
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// completeNarrative runs the prompt and passes the reply text through
// unchanged.
func completeNarrative(ctx context.Context, provider llm.Provider, messages []llm.Message) (string, error) {
	reply, err := provider.Complete(ctx, messages)
	if err != nil {
		return "", err
	}
	return reply.Content, nil
}

// completeStructured runs the prompt and decodes the carved JSON object from
// the reply into T.
func completeStructured[T any](ctx context.Context, provider llm.Provider, messages []llm.Message) (T, error) {
	var out T
	reply, err := provider.Complete(ctx, messages)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal([]byte(ExtractJSON(reply.Content)), &out); err != nil {
		return out, &MalformedOutputError{Err: err}
	}
	return out, nil
}
