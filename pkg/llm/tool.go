package llm

import (
	"context"
	"fmt"
	"strings"
)

// Parameter type tags. The schema vocabulary is deliberately small: every
// tool a use case exposes is describable with these.
const (
	ParamString = "string"
	ParamInt    = "int"
	ParamBool   = "bool"
	ParamTime   = "time"
	ParamEnum   = "enum"
	ParamList   = "list"
)

// ParamSpec describes one tool parameter.
type ParamSpec struct {
	Name     string
	Type     string // one of the Param* tags
	Doc      string
	Optional bool
	Enum     []string // for ParamEnum
}

// ToolSpec is a tool callback with its derived schema. Built once per use
// case; the runner validates model-supplied arguments against it before
// invoking.
type ToolSpec struct {
	Name        string
	Description string
	Params      []ParamSpec
	Invoke      func(ctx context.Context, args map[string]any) (string, error)
}

// ValidateArgs checks presence and JSON types of the arguments.
func (t ToolSpec) ValidateArgs(args map[string]any) error {
	for _, p := range t.Params {
		v, ok := args[p.Name]
		if !ok || v == nil {
			if p.Optional {
				continue
			}
			return fmt.Errorf("missing required argument %q", p.Name)
		}
		if err := checkType(p, v); err != nil {
			return err
		}
	}
	return nil
}

func checkType(p ParamSpec, v any) error {
	switch p.Type {
	case ParamString, ParamTime:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("argument %q must be a string", p.Name)
		}
	case ParamInt:
		// JSON numbers decode as float64.
		f, ok := v.(float64)
		if !ok || f != float64(int64(f)) {
			return fmt.Errorf("argument %q must be an integer", p.Name)
		}
	case ParamBool:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("argument %q must be a boolean", p.Name)
		}
	case ParamEnum:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("argument %q must be a string", p.Name)
		}
		for _, allowed := range p.Enum {
			if s == allowed {
				return nil
			}
		}
		return fmt.Errorf("argument %q must be one of %s", p.Name, strings.Join(p.Enum, ", "))
	case ParamList:
		if _, ok := v.([]any); !ok {
			return fmt.Errorf("argument %q must be a list", p.Name)
		}
	}
	return nil
}

// JSONSchema renders the spec as a JSON-schema object for the native
// tool-call channel.
func (t ToolSpec) JSONSchema() map[string]any {
	properties := make(map[string]any, len(t.Params))
	var required []string
	for _, p := range t.Params {
		prop := map[string]any{"description": p.Doc}
		switch p.Type {
		case ParamInt:
			prop["type"] = "integer"
		case ParamBool:
			prop["type"] = "boolean"
		case ParamTime:
			prop["type"] = "string"
			prop["format"] = "date-time"
		case ParamEnum:
			prop["type"] = "string"
			prop["enum"] = p.Enum
		case ParamList:
			prop["type"] = "array"
		default:
			prop["type"] = "string"
		}
		properties[p.Name] = prop
		if !p.Optional {
			required = append(required, p.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// RenderToolsPrompt renders the textual tool documentation included in the
// prompt for providers (or fallbacks) that do not use the native channel.
func RenderToolsPrompt(specs []ToolSpec) string {
	if len(specs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("You may call the following tools by responding with JSON of the form\n")
	b.WriteString(`{"name": "<tool>", "arguments": {...}}` + "\n\n")
	for _, t := range specs {
		fmt.Fprintf(&b, "- %s: %s\n", t.Name, t.Description)
		for _, p := range t.Params {
			optional := ""
			if p.Optional {
				optional = ", optional"
			}
			typeTag := p.Type
			if p.Type == ParamEnum {
				typeTag = "enum(" + strings.Join(p.Enum, "|") + ")"
			}
			fmt.Fprintf(&b, "    %s (%s%s): %s\n", p.Name, typeTag, optional, p.Doc)
		}
	}
	return b.String()
}
