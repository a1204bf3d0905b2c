package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway returns a scripted response (or error) and records the request.
type fakeGateway struct {
	provider string
	resp     *Response
	err      error
	lastReq  Request
}

func (f *fakeGateway) Provider() string { return f.provider }

func (f *fakeGateway) Generate(_ context.Context, req Request) (*Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func echoTool(calls *[]map[string]any) ToolSpec {
	return ToolSpec{
		Name:        "set_plan",
		Description: "Set the day plan",
		Params: []ParamSpec{
			{Name: "title", Type: ParamString, Doc: "plan title"},
		},
		Invoke: func(_ context.Context, args map[string]any) (string, error) {
			*calls = append(*calls, args)
			return "ok", nil
		},
	}
}

func TestRunnerNoProvider(t *testing.T) {
	r := NewRunner()
	_, err := r.Run(context.Background(), "ANTHROPIC", UseCase{Name: "morning_overview"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoProvider)

	assert.False(t, r.HasProvider("ANTHROPIC"))
}

func TestRunnerGatewayError(t *testing.T) {
	gw := &fakeGateway{provider: "ANTHROPIC", err: errors.New("rate limited")}
	r := NewRunner(gw)

	_, err := r.Run(context.Background(), "ANTHROPIC", UseCase{Name: "morning_overview"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestRunnerNativeToolCalls(t *testing.T) {
	var invoked []map[string]any
	gw := &fakeGateway{
		provider: "ANTHROPIC",
		resp: &Response{
			Text:      "Setting the plan.",
			ToolCalls: []ToolCall{{Name: "set_plan", Arguments: map[string]any{"title": "Deep work"}}},
		},
	}
	r := NewRunner(gw)

	uc := UseCase{
		Name:    "schedule_day",
		System:  "You are a planner.",
		Context: "No tasks yet.",
		Ask:     "Plan the day.",
		Tools:   []ToolSpec{echoTool(&invoked)},
	}
	snap, err := r.Run(context.Background(), "ANTHROPIC", uc)
	require.NoError(t, err)
	require.NotNil(t, snap)

	require.Len(t, invoked, 1)
	assert.Equal(t, "Deep work", invoked[0]["title"])

	require.Len(t, snap.ToolCalls, 1)
	assert.Equal(t, "set_plan", snap.ToolCalls[0].Name)
	assert.Equal(t, "ok", snap.ToolCalls[0].Result)
	assert.False(t, snap.ToolCalls[0].IsError)

	assert.Equal(t, "ANTHROPIC", snap.Provider)
	assert.Equal(t, "You are a planner.", snap.SystemPrompt)
	assert.Equal(t, "Plan the day.", snap.AskPrompt)
	assert.NotEmpty(t, snap.ToolsPrompt)

	// The rendered tools prompt travels with the request for fallback use.
	assert.Contains(t, gw.lastReq.Tools, "set_plan")
	require.Len(t, gw.lastReq.Specs, 1)
}

func TestRunnerFencedFallback(t *testing.T) {
	var invoked []map[string]any
	gw := &fakeGateway{
		provider: "ANTHROPIC",
		resp: &Response{
			Text: "Here is my decision:\n```json\n{\"name\": \"set_plan\", \"arguments\": {\"title\": \"Errands\"}}\n```\nDone.",
		},
	}
	r := NewRunner(gw)

	snap, err := r.Run(context.Background(), "ANTHROPIC", UseCase{
		Name:  "schedule_day",
		Tools: []ToolSpec{echoTool(&invoked)},
	})
	require.NoError(t, err)
	require.Len(t, invoked, 1)
	assert.Equal(t, "Errands", invoked[0]["title"])
	require.Len(t, snap.ToolCalls, 1)
}

func TestRunnerUnknownTool(t *testing.T) {
	gw := &fakeGateway{
		provider: "ANTHROPIC",
		resp: &Response{
			ToolCalls: []ToolCall{{Name: "launch_rockets", Arguments: map[string]any{}}},
		},
	}
	r := NewRunner(gw)

	snap, err := r.Run(context.Background(), "ANTHROPIC", UseCase{Name: "schedule_day"})
	require.NoError(t, err)
	require.Len(t, snap.ToolCalls, 1)
	assert.True(t, snap.ToolCalls[0].IsError)
	assert.Contains(t, snap.ToolCalls[0].Result, "unknown tool")
}

func TestRunnerValidationFailureRecorded(t *testing.T) {
	var invoked []map[string]any
	gw := &fakeGateway{
		provider: "ANTHROPIC",
		resp: &Response{
			ToolCalls: []ToolCall{{Name: "set_plan", Arguments: map[string]any{"title": 42.0}}},
		},
	}
	r := NewRunner(gw)

	snap, err := r.Run(context.Background(), "ANTHROPIC", UseCase{
		Name:  "schedule_day",
		Tools: []ToolSpec{echoTool(&invoked)},
	})
	require.NoError(t, err)
	assert.Empty(t, invoked)
	require.Len(t, snap.ToolCalls, 1)
	assert.True(t, snap.ToolCalls[0].IsError)
	assert.Contains(t, snap.ToolCalls[0].Result, "string")
}

func TestRunnerInvokeErrorRecorded(t *testing.T) {
	failing := ToolSpec{
		Name:   "set_plan",
		Params: []ParamSpec{{Name: "title", Type: ParamString}},
		Invoke: func(_ context.Context, _ map[string]any) (string, error) {
			return "", errors.New("day is immutable")
		},
	}
	gw := &fakeGateway{
		provider: "ANTHROPIC",
		resp: &Response{
			ToolCalls: []ToolCall{{Name: "set_plan", Arguments: map[string]any{"title": "x"}}},
		},
	}
	r := NewRunner(gw)

	snap, err := r.Run(context.Background(), "ANTHROPIC", UseCase{
		Name:  "schedule_day",
		Tools: []ToolSpec{failing},
	})
	require.NoError(t, err)
	require.Len(t, snap.ToolCalls, 1)
	assert.True(t, snap.ToolCalls[0].IsError)
	assert.Equal(t, "day is immutable", snap.ToolCalls[0].Result)
}

func TestParseToolCalls(t *testing.T) {
	t.Run("single object", func(t *testing.T) {
		calls := ParseToolCalls(`{"name": "a", "arguments": {"x": 1}}`)
		require.Len(t, calls, 1)
		assert.Equal(t, "a", calls[0].Name)
	})

	t.Run("array", func(t *testing.T) {
		calls := ParseToolCalls(`[{"name": "a"}, {"name": "b"}]`)
		require.Len(t, calls, 2)
		assert.Equal(t, "b", calls[1].Name)
	})

	t.Run("wrapped", func(t *testing.T) {
		calls := ParseToolCalls(`{"tool_calls": [{"name": "a"}]}`)
		require.Len(t, calls, 1)
	})

	t.Run("fenced with language tag", func(t *testing.T) {
		calls := ParseToolCalls("prose\n```json\n{\"name\": \"a\"}\n```")
		require.Len(t, calls, 1)
	})

	t.Run("plain prose yields none", func(t *testing.T) {
		assert.Nil(t, ParseToolCalls("Nothing to do today."))
	})

	t.Run("nameless entries skipped", func(t *testing.T) {
		assert.Nil(t, ParseToolCalls(`[{"arguments": {}}]`))
	})
}
