package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedResponse means the model reply held no parsable JSON object.
	ErrMalformedResponse = errors.New("model reply contains no parsable JSON object")
	// ErrIncompleteResponse means the object parsed but a required field is
	// absent, empty, or not a string.
	ErrIncompleteResponse = errors.New("model reply is missing required fields")
)

var requiredFields = []string{"name", "description", "blend_formula", "best_time"}

// extractJSONObject cuts the first JSON object out of a prose-wrapped model
// reply. It tracks brace depth from the first '{', honoring string literals
// and escapes; when the object never closes it falls back to the widest
// first-'{'..last-'}' substring and lets parsing decide.
func extractJSONObject(text string) (string, error) {
	start := strings.Index(text, "{")
	if start == -1 {
		return "", fmt.Errorf("%w: no opening brace", ErrMalformedResponse)
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	end := strings.LastIndex(text, "}")
	if end <= start {
		return "", fmt.Errorf("%w: no closing brace", ErrMalformedResponse)
	}
	return text[start : end+1], nil
}

// parseRecommendationFields decodes a candidate object and checks that every
// required key carries a usable string value.
func parseRecommendationFields(candidate string) (map[string]string, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	fields := make(map[string]string, len(requiredFields))
	for _, key := range requiredFields {
		value, ok := raw[key].(string)
		if !ok || strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: %q", ErrIncompleteResponse, key)
		}
		fields[key] = cleanField(value)
	}
	return fields, nil
}
