package services

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LanguagePair is a source and target language for extraction.
type LanguagePair struct {
	Source string
	Target string
}

func (p LanguagePair) String() string {
	return p.Source + " → " + p.Target
}

// DefaultLanguages is used when a submission's direction cannot be parsed.
var DefaultLanguages = LanguagePair{Source: "Arabic", Target: "Dutch"}

var directionSeparator = regexp.MustCompile(`[→>-]+`)

// ParseLanguageDirection parses directions like "arabic → dutch" or
// "Dutch -> Arabic". Anything that is not exactly two non-empty languages
// yields fallback.
func ParseLanguageDirection(direction string, fallback LanguagePair) LanguagePair {
	if strings.TrimSpace(direction) == "" {
		return fallback
	}
	parts := directionSeparator.Split(direction, -1)
	if len(parts) != 2 {
		return fallback
	}
	source := capitalize(strings.ToLower(strings.TrimSpace(parts[0])))
	target := capitalize(strings.ToLower(strings.TrimSpace(parts[1])))
	if source == "" || target == "" {
		return fallback
	}
	return LanguagePair{Source: source, Target: target}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
