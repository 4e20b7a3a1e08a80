// Package outtext extracts plain text from Responses API payloads.
//
// The payload shape is not fixed: batch result lines carry a plain
// JSON-decoded body, while direct SDK calls return typed objects that
// must be normalized to JSON first. Everything funnels through FromBody
// so there is exactly one place that tracks the payload shape.
package outtext

import (
	"encoding/json"
	"strings"
)

// Normalizer is implemented by response objects that can render
// themselves as raw JSON (the openai-go SDK types all can).
type Normalizer interface {
	RawJSON() string
}

// FromBody walks a JSON-decoded Responses API body and concatenates all
// output_text fragments in order of appearance, separated by newlines.
// Non-text fragments (reasoning items, tool calls) are ignored. Accepts
// a map[string]any, a Normalizer, or raw JSON bytes; anything else
// yields "".
func FromBody(body any) string {
	m := normalize(body)
	if m == nil {
		return ""
	}
	output, ok := m["output"].([]any)
	if !ok {
		return ""
	}

	var chunks []string
	for _, item := range output {
		msg, ok := item.(map[string]any)
		if !ok {
			continue
		}
		content, ok := msg["content"].([]any)
		if !ok {
			continue
		}
		for _, c := range content {
			frag, ok := c.(map[string]any)
			if !ok || frag["type"] != "output_text" {
				continue
			}
			if val := textValue(frag["text"]); val != "" {
				chunks = append(chunks, val)
			}
		}
	}
	return strings.TrimSpace(strings.Join(chunks, "\n"))
}

func normalize(body any) map[string]any {
	switch v := body.(type) {
	case map[string]any:
		return v
	case Normalizer:
		return decode([]byte(v.RawJSON()))
	case []byte:
		return decode(v)
	case json.RawMessage:
		return decode(v)
	default:
		return nil
	}
}

func decode(data []byte) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}

// The text field itself has two observed shapes: a bare string, or an
// object carrying the string under "value" (older SDK dumps used
// "content").
func textValue(field any) string {
	switch t := field.(type) {
	case string:
		return t
	case map[string]any:
		if s, ok := t["value"].(string); ok && s != "" {
			return s
		}
		if s, ok := t["content"].(string); ok {
			return s
		}
	}
	return ""
}
