package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func asSet(terms ...string) map[string]struct{} {
	return makeSet(terms...)
}

func TestSubjectTerms(t *testing.T) {
	cases := []struct {
		name    string
		summary string
		want    map[string]struct{}
	}{
		{"empty", "", asSet()},
		{
			"head anchors pull adjacent bigrams",
			"DialogGPT: Repeat Response Event firing incorrectly for imported app",
			asSet(
				"dialoggpt", "dialoggpt repeat",
				"event", "event firing", "response event",
				"repeat", "response", "firing", "incorrectly", "imported",
			),
		},
		{
			"multiple heads chain bigrams",
			"Admin console migration import",
			asSet(
				"console", "admin console", "console migration",
				"migration", "migration import", "import",
			),
		},
		{
			"known phrase matched as substring",
			"Goal completion rate wrong",
			asSet("goal completion rate", "goal", "completion", "rate", "wrong"),
		},
		{
			"hyphenated fallback tokens kept",
			"re-index throughput",
			asSet("re-index", "throughput"),
		},
		{
			"short and stop tokens excluded from fallback",
			"app was slow",
			asSet("slow"),
		},
		{
			"non-ascii fallback tokens kept",
			"Café menü broken",
			asSet("café", "menü"),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SubjectTerms(tc.summary)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("SubjectTerms(%q) mismatch (-want +got):\n%s", tc.summary, diff)
			}
		})
	}
}

// The hard gate in candidate filtering depends on subject sets of unrelated
// summaries staying disjoint. Inflected forms must not collide.
func TestSubjectTermsDisjointForUnrelatedSummaries(t *testing.T) {
	a := SubjectTerms("DialogGPT: Repeat Response Event firing incorrectly for imported app")
	b := SubjectTerms("Admin console migration import")
	for term := range a {
		if _, ok := b[term]; ok {
			t.Errorf("unexpected shared subject term %q", term)
		}
	}
}
