package translate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var jsonFenceRegex = regexp.MustCompile("```(?:json)?\\s*")

// cleanResponse strips markdown code fences that models wrap around JSON
// despite instructions.
func cleanResponse(s string) string {
	s = strings.TrimSpace(s)
	s = jsonFenceRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// fixInvalidEscapes rewrites escape sequences that are legal in subtitle
// text but not in JSON, like \N, as escaped backslashes so decoding
// keeps the literal marker.
func fixInvalidEscapes(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
				out.WriteByte(s[i])
				out.WriteByte(s[i+1])
			default:
				out.WriteString(`\\`)
				out.WriteByte(s[i+1])
			}
			i += 2
			continue
		}
		out.WriteByte(s[i])
		i++
	}

	return out.String()
}

// extractResults finds the first decodable JSON value in the response
// text that yields translation results, either directly as an array or
// wrapped in an object.
func extractResults(text string) ([]TranslationResult, error) {
	text = fixInvalidEscapes(cleanResponse(text))

	for i := 0; i < len(text); i++ {
		if text[i] != '[' && text[i] != '{' {
			continue
		}
		decoder := json.NewDecoder(strings.NewReader(text[i:]))
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			continue
		}
		if results, ok := resultsFromRaw(raw); ok && len(results) > 0 {
			return results, nil
		}
	}

	return nil, fmt.Errorf("no valid translation JSON found in response")
}

func resultsFromRaw(raw json.RawMessage) ([]TranslationResult, bool) {
	var results []TranslationResult
	if err := json.Unmarshal(raw, &results); err == nil &&
		hasText(results) {
		return results, true
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, false
	}

	for _, key := range []string{"results", "translations", "data", "items"} {
		if field, exists := wrapper[key]; exists {
			if results, ok := resultsFromField(field); ok {
				return results, true
			}
		}
	}
	for _, field := range wrapper {
		if results, ok := resultsFromField(field); ok {
			return results, true
		}
	}

	return nil, false
}

func resultsFromField(field json.RawMessage) ([]TranslationResult, bool) {
	var results []TranslationResult
	if err := json.Unmarshal(field, &results); err == nil &&
		hasText(results) {
		return results, true
	}
	return nil, false
}

func hasText(results []TranslationResult) bool {
	for _, r := range results {
		if r.Text != "" {
			return true
		}
	}
	return false
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
