package services

import "strings"

// Normalize strips markdown code-fence wrapping from a raw model reply so
// the remainder can be parsed as JSON. The model is told not to use fences
// but wraps its reply anyway often enough that this has to be defensive:
// fence-free input passes through with only surrounding whitespace trimmed,
// and applying Normalize twice yields the same string as applying it once.
func Normalize(raw string) string {
	text := strings.TrimSpace(raw)

	// Leading fence, optionally tagged with "json"
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSpace(text)

	// Any fences left in the body, including the closing one
	text = strings.ReplaceAll(text, "```", "")

	return strings.TrimSpace(text)
}
