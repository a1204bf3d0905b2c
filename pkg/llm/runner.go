package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/daybreakhq/daybreak/pkg/domain"
)

// UseCase is a named prompt bundle plus the tools the model may legally
// react with. Prompts arrive already rendered (see pkg/templates).
type UseCase struct {
	Name    string
	System  string
	Context string
	Ask     string
	Tools   []ToolSpec

	// SerializedContext is the day-context JSON the prompts were rendered
	// from; stored verbatim in the snapshot.
	SerializedContext string
	// ReferencedEntities lists the entity ids the prompts mention.
	ReferencedEntities []string
}

// Runner executes use cases synchronously: one gateway call, tool-call
// extraction, validation, sequential invocation, snapshot.
type Runner struct {
	gateways map[string]Gateway
}

// NewRunner creates a Runner over the given gateways, keyed by provider.
func NewRunner(gws ...Gateway) *Runner {
	m := make(map[string]Gateway, len(gws))
	for _, gw := range gws {
		m[gw.Provider()] = gw
	}
	return &Runner{gateways: m}
}

// HasProvider reports whether a gateway is registered for the provider.
// Callers skip LLM-dependent work for users without one.
func (r *Runner) HasProvider(provider string) bool {
	_, ok := r.gateways[provider]
	return ok
}

// Run executes the use case against the named provider. Tool callback
// failures are captured in the snapshot, not returned; the error return is
// reserved for gateway failure and unknown providers. The snapshot is
// always non-nil when the error is nil.
func (r *Runner) Run(ctx context.Context, provider string, uc UseCase) (*domain.LLMRunResult, error) {
	gw, ok := r.gateways[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoProvider, provider)
	}

	start := time.Now()
	toolsPrompt := RenderToolsPrompt(uc.Tools)

	resp, err := gw.Generate(ctx, Request{
		System:  uc.System,
		Context: uc.Context,
		Ask:     uc.Ask,
		Tools:   toolsPrompt,
		Specs:   uc.Tools,
	})
	if err != nil {
		slog.Error("LLM run failed",
			"usecase", uc.Name,
			"provider", provider,
			"duration", time.Since(start),
			"error", err)
		return nil, fmt.Errorf("LLM gateway call failed: %w", err)
	}

	calls := resp.ToolCalls
	if len(calls) == 0 {
		calls = ParseToolCalls(resp.Text)
	}

	records := make([]domain.ToolCallRecord, 0, len(calls))
	for _, call := range calls {
		records = append(records, r.invoke(ctx, uc, call))
	}

	snapshot := &domain.LLMRunResult{
		Provider:           provider,
		CurrentTime:        start.UTC(),
		SystemPrompt:       uc.System,
		ContextPrompt:      uc.Context,
		AskPrompt:          uc.Ask,
		ToolsPrompt:        toolsPrompt,
		SerializedContext:  uc.SerializedContext,
		ToolCalls:          records,
		ReferencedEntities: uc.ReferencedEntities,
	}

	slog.Info("LLM run completed",
		"usecase", uc.Name,
		"provider", provider,
		"tool_calls", len(records),
		"response_chars", len(resp.Text),
		"duration", time.Since(start))
	return snapshot, nil
}

// invoke validates and executes one tool call, capturing the outcome.
func (r *Runner) invoke(ctx context.Context, uc UseCase, call ToolCall) domain.ToolCallRecord {
	rec := domain.ToolCallRecord{Name: call.Name, Arguments: call.Arguments}

	spec, ok := findTool(uc.Tools, call.Name)
	if !ok {
		rec.IsError = true
		rec.Result = fmt.Sprintf("unknown tool %q", call.Name)
		return rec
	}
	if err := spec.ValidateArgs(call.Arguments); err != nil {
		rec.IsError = true
		rec.Result = err.Error()
		return rec
	}

	result, err := spec.Invoke(ctx, call.Arguments)
	if err != nil {
		rec.IsError = true
		rec.Result = err.Error()
		return rec
	}
	rec.Result = result
	return rec
}

func findTool(specs []ToolSpec, name string) (ToolSpec, bool) {
	for _, s := range specs {
		if s.Name == name {
			return s, true
		}
	}
	return ToolSpec{}, false
}

// ParseToolCalls extracts tool calls from free response text for
// providers (or responses) without a native tool-call channel. Accepts a
// single call object, a list of them, or {"tool_calls": [...]}, optionally
// inside a fenced code block. Returns nil when the text holds none.
func ParseToolCalls(text string) []ToolCall {
	payload := strings.TrimSpace(extractFenced(text))
	if payload == "" {
		return nil
	}

	var one rawCall
	if err := json.Unmarshal([]byte(payload), &one); err == nil && one.Name != "" {
		return []ToolCall{{Name: one.Name, Arguments: one.Arguments}}
	}

	var many []rawCall
	if err := json.Unmarshal([]byte(payload), &many); err == nil {
		return toToolCalls(many)
	}

	var wrapped struct {
		ToolCalls []rawCall `json:"tool_calls"`
	}
	if err := json.Unmarshal([]byte(payload), &wrapped); err == nil {
		return toToolCalls(wrapped.ToolCalls)
	}
	return nil
}

type rawCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

func toToolCalls(raw []rawCall) []ToolCall {
	var out []ToolCall
	for _, c := range raw {
		if c.Name == "" {
			continue
		}
		out = append(out, ToolCall{Name: c.Name, Arguments: c.Arguments})
	}
	return out
}

// extractFenced returns the contents of the first fenced code block, or
// the whole text when no fence is present.
func extractFenced(text string) string {
	open := strings.Index(text, "```")
	if open < 0 {
		return text
	}
	rest := text[open+3:]
	// Skip an optional language tag on the fence line.
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(rest[:nl])
		if firstLine == "json" || firstLine == "" {
			rest = rest[nl+1:]
		}
	}
	if end := strings.Index(rest, "```"); end >= 0 {
		return rest[:end]
	}
	return rest
}
