package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTool() ToolSpec {
	return ToolSpec{
		Name:        "decide_notification",
		Description: "Decide whether to notify the user",
		Params: []ParamSpec{
			{Name: "should_notify", Type: ParamBool, Doc: "whether to send"},
			{Name: "message", Type: ParamString, Doc: "notification text", Optional: true},
			{Name: "priority", Type: ParamEnum, Doc: "urgency", Enum: []string{"low", "high"}, Optional: true},
			{Name: "minutes", Type: ParamInt, Doc: "snooze minutes", Optional: true},
			{Name: "task_ids", Type: ParamList, Doc: "affected tasks", Optional: true},
			{Name: "at", Type: ParamTime, Doc: "when", Optional: true},
		},
	}
}

func TestValidateArgs(t *testing.T) {
	tool := sampleTool()

	t.Run("valid full set", func(t *testing.T) {
		err := tool.ValidateArgs(map[string]any{
			"should_notify": true,
			"message":       "heads up",
			"priority":      "high",
			"minutes":       float64(10),
			"task_ids":      []any{"a", "b"},
			"at":            "2026-08-24T09:00:00Z",
		})
		assert.NoError(t, err)
	})

	t.Run("missing required", func(t *testing.T) {
		err := tool.ValidateArgs(map[string]any{"message": "hi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "should_notify")
	})

	t.Run("optional absent is fine", func(t *testing.T) {
		assert.NoError(t, tool.ValidateArgs(map[string]any{"should_notify": false}))
	})

	t.Run("wrong bool type", func(t *testing.T) {
		err := tool.ValidateArgs(map[string]any{"should_notify": "yes"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boolean")
	})

	t.Run("non-integral number", func(t *testing.T) {
		err := tool.ValidateArgs(map[string]any{"should_notify": true, "minutes": 1.5})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "integer")
	})

	t.Run("enum out of range", func(t *testing.T) {
		err := tool.ValidateArgs(map[string]any{"should_notify": true, "priority": "medium"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "one of low, high")
	})

	t.Run("list wrong type", func(t *testing.T) {
		err := tool.ValidateArgs(map[string]any{"should_notify": true, "task_ids": "a,b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "list")
	})
}

func TestJSONSchema(t *testing.T) {
	schema := sampleTool().JSONSchema()

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{"should_notify"}, schema["required"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)

	boolProp := props["should_notify"].(map[string]any)
	assert.Equal(t, "boolean", boolProp["type"])

	enumProp := props["priority"].(map[string]any)
	assert.Equal(t, "string", enumProp["type"])
	assert.Equal(t, []string{"low", "high"}, enumProp["enum"])

	timeProp := props["at"].(map[string]any)
	assert.Equal(t, "string", timeProp["type"])
	assert.Equal(t, "date-time", timeProp["format"])

	intProp := props["minutes"].(map[string]any)
	assert.Equal(t, "integer", intProp["type"])

	listProp := props["task_ids"].(map[string]any)
	assert.Equal(t, "array", listProp["type"])
}

func TestJSONSchemaNoRequired(t *testing.T) {
	tool := ToolSpec{
		Name:   "noop",
		Params: []ParamSpec{{Name: "note", Type: ParamString, Optional: true}},
	}
	_, hasRequired := tool.JSONSchema()["required"]
	assert.False(t, hasRequired)
}

func TestRenderToolsPrompt(t *testing.T) {
	out := RenderToolsPrompt([]ToolSpec{sampleTool()})

	assert.Contains(t, out, "decide_notification: Decide whether to notify the user")
	assert.Contains(t, out, "should_notify (bool)")
	assert.Contains(t, out, "message (string, optional)")
	assert.Contains(t, out, "priority (enum(low|high), optional)")
	assert.True(t, strings.HasPrefix(out, "You may call the following tools"))
}

func TestRenderToolsPromptEmpty(t *testing.T) {
	assert.Empty(t, RenderToolsPrompt(nil))
}
