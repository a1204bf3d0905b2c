// Package llm runs prompt-template use cases against a pluggable model
// gateway and captures a reproducibility snapshot per run.
package llm

import (
	"context"
	"errors"
)

// ErrNoProvider is returned when a run names a provider no gateway is
// registered for (including the empty provider of users who never
// configured one).
var ErrNoProvider = errors.New("no LLM gateway registered for provider")

// Request carries the four rendered prompt parts and the tool specs.
type Request struct {
	System  string
	Context string
	Ask     string
	Tools   string // textual tool documentation, for the prompt
	Specs   []ToolSpec
}

// ToolCall is one tool invocation requested by the model.
type ToolCall struct {
	Name      string
	Arguments map[string]any
}

// Response is the provider-neutral model output.
type Response struct {
	Text      string
	ToolCalls []ToolCall // from the native tool-call channel, if any
}

// Gateway is a model provider adapter.
type Gateway interface {
	Provider() string
	Generate(ctx context.Context, req Request) (*Response, error)
}
