package utils

// Helpers for pulling a JSON document out of free-form model output. Completion
// services routinely wrap their JSON in prose or markdown code fences, so the
// span is located by bracket-depth counting and only that span is parsed.

// ExtractJSONObject returns the first balanced {...} span in s.
// The second return value is false when no complete object is present.
func ExtractJSONObject(s string) (string, bool) {
	return extractBalanced(s, '{', '}')
}

// ExtractJSONArray returns the first balanced [...] span in s.
func ExtractJSONArray(s string) (string, bool) {
	return extractBalanced(s, '[', ']')
}

func extractBalanced(s string, open, close byte) (string, bool) {
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] == open {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
