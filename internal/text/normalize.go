// Package text implements the ticket text pipeline: normalization, keyword
// extraction, and subject-term extraction over static vocabularies.
//
// All functions are pure and deterministic; the vocabularies are fixed
// package-level sets initialized once. Callers pass plain text: rich-text
// flattening happens in the collaborator layer before text reaches here.
package text

import (
	"regexp"
	"strings"
)

// punctRe matches punctuation: anything that is not a letter, digit,
// underscore, whitespace, or hyphen. Unicode classes, not \w, so non-ASCII
// letters survive normalization.
var (
	punctRe = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lowercases raw text, strips generic status/problem phrasing,
// replaces punctuation other than hyphens and underscores with spaces, and
// collapses runs of whitespace. Empty input yields "".
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ToLower(raw)
	for _, phrase := range genericPhrases {
		s = strings.ReplaceAll(s, phrase, " ")
	}
	s = punctRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits normalized text on single spaces. Returns nil for empty
// input.
func Tokenize(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
