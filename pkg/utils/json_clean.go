package utils

import "strings"

// StripCodeFence unwraps LLM output such as "```json\n{...}\n```" to the outermost
// JSON object. Content that does not start with a fence is only trimmed.
func StripCodeFence(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
