package gemini

import "strings"

// stripCodeFences removes a surrounding markdown code fence (```", "```text,
// etc.) that models sometimes wrap their output in despite instructions.
// Content without fences is returned unchanged apart from trimming.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		if nl := strings.Index(s, "\n"); nl != -1 {
			s = s[nl+1:]
		} else {
			// A fence with no body
			return ""
		}
	}

	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}

	return strings.TrimSpace(s)
}
