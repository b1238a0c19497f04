package service

import (
	"strings"
	"unicode/utf8"
)

// cleanField normalizes a model-produced value before it enters a record:
// surrounding whitespace goes, and invalid UTF-8 sequences are dropped so
// storage backends never choke on broken encoding.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			s = s[1:]
			continue
		}
		b.WriteRune(r)
		s = s[size:]
	}
	return b.String()
}
