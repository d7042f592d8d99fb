package ai

import "strings"

// ExtractJSON strips conversational wrapping from a raw model reply and
// returns a best-effort JSON object candidate. It removes a single enclosing
// code fence (``` or ```json) and, failing an exact {...} shape, extracts the
// span between the first '{' and last '}'. No further heuristics are applied;
// an empty return means no candidate was found. ExtractJSON never fails.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSpace(s)
		if strings.HasSuffix(s, "```") {
			s = strings.TrimSpace(s[:len(s)-3])
		}
	}

	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return s
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
