package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// defaultMaxTokens caps completions for planning use cases. Tool-call
// responses are small; overviews fit comfortably.
const defaultMaxTokens = 2048

// AnthropicGateway implements Gateway over the Claude Messages API.
type AnthropicGateway struct {
	msg   *sdk.MessageService
	model sdk.Model
}

// NewAnthropicGateway creates the gateway. model is an Anthropic model
// identifier, e.g. string(sdk.ModelClaudeSonnet4_5).
func NewAnthropicGateway(apiKey, model string) (*AnthropicGateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic api key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("anthropic model identifier is required")
	}
	client := sdk.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicGateway{msg: &client.Messages, model: sdk.Model(model)}, nil
}

// Provider returns the provider key users select in their settings.
func (g *AnthropicGateway) Provider() string { return "ANTHROPIC" }

// Generate issues one non-streaming Messages.New call. Tools go through
// the native tool-call channel; the textual tools prompt is omitted since
// the schema already carries the documentation.
func (g *AnthropicGateway) Generate(ctx context.Context, req Request) (*Response, error) {
	var userParts []string
	if req.Context != "" {
		userParts = append(userParts, req.Context)
	}
	if req.Ask != "" {
		userParts = append(userParts, req.Ask)
	}

	params := sdk.MessageNewParams{
		Model:     g.model,
		MaxTokens: defaultMaxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(strings.Join(userParts, "\n\n"))),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	for _, spec := range req.Specs {
		u := sdk.ToolUnionParamOfTool(
			sdk.ToolInputSchemaParam{ExtraFields: spec.JSONSchema()},
			spec.Name,
		)
		if u.OfTool != nil {
			u.OfTool.Description = sdk.String(spec.Description)
		}
		params.Tools = append(params.Tools, u)
	}

	msg, err := g.msg.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic messages.new: %w", err)
	}

	resp := &Response{}
	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			resp.Text += block.Text
		case "tool_use":
			var args map[string]any
			if len(block.Input) > 0 {
				if err := json.Unmarshal(block.Input, &args); err != nil {
					return nil, fmt.Errorf("anthropic tool_use input for %q: %w", block.Name, err)
				}
			}
			resp.ToolCalls = append(resp.ToolCalls, ToolCall{Name: block.Name, Arguments: args})
		}
	}
	return resp, nil
}
