package text

import "unicode/utf8"

// Keywords extracts the meaningful tokens from raw text. The input is
// normalized and tokenized, then filtered: stop words and tokens shorter
// than 2 characters are dropped, URL noise tokens are dropped, and the rest
// survive when they are a known technical term, at least 3 characters long,
// or on the short always-keep list.
//
// The result is deduplicated in first-occurrence order, so callers can treat
// it as a set without losing determinism.
func Keywords(raw string) []string {
	tokens := Tokenize(Normalize(raw))
	if len(tokens) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tokens))
	var keywords []string
	for _, tok := range tokens {
		// Rune counts, not byte lengths: multibyte letters count as one.
		if _, stop := StopWords[tok]; stop || utf8.RuneCountInString(tok) < 2 {
			continue
		}
		if _, noise := noiseTokens[tok]; noise {
			continue
		}
		_, tech := TechnicalTerms[tok]
		_, keep := alwaysKeep[tok]
		if !tech && utf8.RuneCountInString(tok) < 3 && !keep {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}
	return keywords
}

// KeywordSet returns the keywords of raw text as a set.
func KeywordSet(raw string) map[string]struct{} {
	kws := Keywords(raw)
	set := make(map[string]struct{}, len(kws))
	for _, k := range kws {
		set[k] = struct{}{}
	}
	return set
}
