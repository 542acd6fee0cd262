package analyzer

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fenceRe captures the body of a markdown code block, optionally tagged json.
var fenceRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")

// ParseResponse extracts a JSON object from raw model output. Generation
// backends regularly wrap valid JSON in prose or markdown fences despite
// explicit formatting instructions, so three strategies are tried in order,
// each a looser match than the one before:
//
//  1. the whole trimmed text is a JSON object
//  2. the body of the first fenced code block is a JSON object
//  3. the span from the first '{' to the last '}' is a JSON object
//
// The first strategy that yields a valid object wins. If none does, a
// *ParseError carrying the raw text is returned.
func ParseResponse(raw string) (map[string]any, error) {
	text := strings.TrimSpace(raw)

	if payload, ok := tryUnmarshal(text); ok {
		return payload, nil
	}

	if m := fenceRe.FindStringSubmatch(text); m != nil {
		if payload, ok := tryUnmarshal(strings.TrimSpace(m[1])); ok {
			return payload, nil
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		if payload, ok := tryUnmarshal(text[start : end+1]); ok {
			return payload, nil
		}
	}

	return nil, &ParseError{Raw: raw}
}

func tryUnmarshal(text string) (map[string]any, bool) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, false
	}
	// "null" unmarshals into a nil map without error
	if payload == nil {
		return nil, false
	}
	return payload, true
}

// payloadString reads an optional string field from a parsed payload.
func payloadString(payload map[string]any, key string) (string, bool) {
	v, ok := payload[key].(string)
	return v, ok
}

// payloadList reads an optional list field from a parsed payload, keeping
// only the entries that are objects. Malformed entries are skipped rather
// than failing the whole payload.
func payloadList(payload map[string]any, key string) []map[string]any {
	items, ok := payload[key].([]any)
	if !ok {
		return nil
	}

	result := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if entry, ok := item.(map[string]any); ok {
			result = append(result, entry)
		}
	}
	return result
}
