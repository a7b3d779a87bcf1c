package generator

import (
	"errors"
	"strings"
	"unicode"
)

// PostProcess turns a settled snapshot into the final Insight. Models
// occasionally wrap the code payload in markdown fences despite
// instructions, so those are stripped here, downstream of extraction.
func PostProcess(snap Snapshot) (Insight, error) {
	code := StripCodeFence(snap.Code)
	if strings.TrimSpace(code) == "" {
		return Insight{}, errors.New("model returned empty code payload")
	}

	name := strings.TrimSpace(snap.Name)
	if name == "" {
		name = "Untitled insight"
	}

	return Insight{
		Name:        name,
		Explanation: strings.TrimSpace(snap.Explanation),
		Code:        code,
	}, nil
}

// StripCodeFence removes a surrounding markdown code fence, with or
// without a language tag. Text that is not fenced passes through trimmed.
func StripCodeFence(code string) string {
	s := strings.TrimSpace(code)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if i := strings.IndexByte(s, '\n'); i >= 0 && isFenceTag(strings.TrimSpace(s[:i])) {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// isFenceTag reports whether the first fence line is a bare language tag
// like "javascript" (or nothing at all) rather than actual code.
func isFenceTag(tag string) bool {
	for _, r := range tag {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
