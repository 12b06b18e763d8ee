package service

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrMalformedModelOutput means no parseable JSON object could be located in
// the model's response.
var ErrMalformedModelOutput = errors.New("no valid JSON object found in model output")

func cleanModelText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// extractJSONObject isolates the first top-level JSON object in the model
// response, tolerating commentary the model prepends or appends.
func extractJSONObject(text string) (string, error) {
	text = cleanModelText(text)

	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last == -1 || last <= first {
		return "", ErrMalformedModelOutput
	}

	candidate := text[first : last+1]
	if !gjson.Valid(candidate) {
		return "", ErrMalformedModelOutput
	}
	return candidate, nil
}

// stringItems returns the string-typed entries of a JSON array result,
// trimmed. Anything that is not an array yields nil, anything in the array
// that is not a string is dropped.
func stringItems(res gjson.Result) []string {
	if !res.IsArray() {
		return nil
	}
	var out []string
	for _, item := range res.Array() {
		if item.Type != gjson.String {
			continue
		}
		s := strings.TrimSpace(item.Str)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// normalizeTokens deduplicates case-insensitively, preserving the first-seen
// form. When maxWords > 0, tokens with more whitespace-separated words are
// dropped (guards against the model returning full sentences as skills).
func normalizeTokens(items []string, maxWords int) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		token := strings.TrimSpace(item)
		if token == "" {
			continue
		}
		if maxWords > 0 && len(strings.Fields(token)) > maxWords {
			continue
		}
		key := strings.ToLower(token)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, token)
	}
	return out
}

func trimNonEmpty(items []string) []string {
	out := []string{}
	for _, item := range items {
		s := strings.TrimSpace(item)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
