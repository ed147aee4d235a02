package services

import (
	"strings"
	"unicode"
)

// Matcher normalizes Arabic text and tests candidate answers against
// the accepted set of a round.
type Matcher struct{}

func NewMatcher() *Matcher {
	return &Matcher{}
}

// Arabic combining marks (harakat), Quranic annotation marks and tatweel
// are stripped; alef variants and taa marbuta are unified so that
// different spellings of the same word compare equal.
func isArabicDiacritic(r rune) bool {
	switch {
	case r >= 0x0610 && r <= 0x061A:
		return true
	case r >= 0x064B && r <= 0x065F:
		return true
	case r == 0x0670:
		return true
	case r >= 0x06D6 && r <= 0x06ED:
		return true
	}
	return false
}

func (m *Matcher) Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case isArabicDiacritic(r) || r == 0x0640: // tatweel
			continue
		case r == 'أ' || r == 'إ' || r == 'آ' || r == 'ٱ':
			r = 'ا'
		case r == 'ة':
			r = 'ه'
		case r == 'ى':
			r = 'ي'
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			continue
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}

	return strings.TrimSpace(b.String())
}

// IsMatch reports whether text matches any accepted answer. Command
// messages and empty messages never match.
func (m *Matcher) IsMatch(text string, accepted []string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "/") {
		return false
	}

	norm := m.Normalize(trimmed)
	if norm == "" {
		return false
	}

	for _, a := range accepted {
		if norm == m.Normalize(a) {
			return true
		}
	}
	return false
}
