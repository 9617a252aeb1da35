// Package match turns one target ticket into a ranked list of similar
// tickets: query planning, candidate collection against the search
// collaborator, subject-gate filtering, scoring, and threshold ranking with
// a one-shot relaxation fallback.
package match

import (
	"sort"
	"strings"
	"unicode/utf8"

	"deja/internal/jira"
	"deja/internal/text"
)

// maxQueries caps the planned query set per analysis.
const maxQueries = 25

// PlanQueries derives the search queries for a target ticket: the raw
// summary, every keyword and subject term longer than 2 characters, and the
// adjacent word bigrams (>5 chars) and trigrams (>8 chars) of the normalized
// summary. The set is deduplicated in a fixed order (summary, keywords,
// sorted subject terms, n-grams) and capped at 25 entries, so planning is
// deterministic even though the original query-set construction was not.
func PlanQueries(target jira.Ticket) []string {
	keywords := text.Keywords(target.Summary + " " + target.Description)
	subjects := text.SubjectTerms(target.Summary)

	seen := make(map[string]struct{}, maxQueries)
	var queries []string
	add := func(q string) {
		if len(queries) >= maxQueries {
			return
		}
		if _, dup := seen[q]; dup {
			return
		}
		seen[q] = struct{}{}
		queries = append(queries, q)
	}

	add(target.Summary)

	for _, kw := range keywords {
		if utf8.RuneCountInString(kw) > 2 {
			add(kw)
		}
	}

	sortedSubjects := make([]string, 0, len(subjects))
	for s := range subjects {
		sortedSubjects = append(sortedSubjects, s)
	}
	sort.Strings(sortedSubjects)
	for _, s := range sortedSubjects {
		if utf8.RuneCountInString(s) > 2 {
			add(s)
		}
	}

	// Fields, not a single-space split: tabs, newlines, and doubled spaces
	// in a summary must not leak empty tokens into the n-grams.
	words := strings.Fields(strings.ToLower(target.Summary))
	for i := 0; i+1 < len(words); i++ {
		phrase := words[i] + " " + words[i+1]
		if utf8.RuneCountInString(phrase) > 5 {
			add(phrase)
		}
	}
	for i := 0; i+2 < len(words); i++ {
		phrase := words[i] + " " + words[i+1] + " " + words[i+2]
		if utf8.RuneCountInString(phrase) > 8 {
			add(phrase)
		}
	}

	return queries
}
