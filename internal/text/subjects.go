package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SubjectTerms extracts the subject/feature terms of a ticket summary: the
// unigrams and short phrases that name what the ticket is about, as opposed
// to how it is misbehaving.
//
// Extraction is anchored on the SubjectHeads vocabulary: a head token
// contributes itself plus its adjacent bigrams on both sides. Known
// multi-word phrases are matched as substrings of the normalized summary.
// Finally any token longer than 3 characters that is alphanumeric or
// hyphenated and not a stop word is kept as a fallback subject.
//
// Summaries only; descriptions are too noisy to anchor subjects on.
func SubjectTerms(summary string) map[string]struct{} {
	normalized := Normalize(summary)
	tokens := Tokenize(normalized)
	subjects := make(map[string]struct{})

	for i, tok := range tokens {
		if _, head := SubjectHeads[tok]; head {
			subjects[tok] = struct{}{}
			if i+1 < len(tokens) {
				subjects[tok+" "+tokens[i+1]] = struct{}{}
			}
			if i-1 >= 0 {
				subjects[tokens[i-1]+" "+tok] = struct{}{}
			}
		}
		if i+1 < len(tokens) {
			if _, head := SubjectHeads[tokens[i+1]]; head {
				subjects[tok+" "+tokens[i+1]] = struct{}{}
			}
		}
	}

	for _, phrase := range SubjectPhrases {
		if strings.Contains(normalized, phrase) {
			subjects[phrase] = struct{}{}
		}
	}

	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 3 {
			continue
		}
		if _, stop := StopWords[tok]; stop {
			continue
		}
		if strings.Contains(tok, "-") || isAlnum(tok) {
			subjects[tok] = struct{}{}
		}
	}
	return subjects
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
