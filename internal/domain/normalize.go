package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares text for duplicate comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses interior whitespace runs into a single space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// IsDuplicate reports whether candidate normalizes to the same text as any
// todo in existing. An empty (or whitespace-only) candidate is never a
// duplicate.
func IsDuplicate(candidate string, existing []Todo) bool {
	q := NormalizeText(candidate)
	if q == "" {
		return false
	}
	for _, t := range existing {
		if NormalizeText(t.Text) == q {
			return true
		}
	}
	return false
}
