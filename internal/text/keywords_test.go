package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKeywords(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{
			"generic phrasing stripped first",
			"Login not working as expected",
			[]string{"login"},
		},
		{
			"stop words win over technical terms",
			"the error in task",
			nil,
		},
		{
			"short technical terms survive",
			"ui ux ci",
			[]string{"ui", "ux", "ci"},
		},
		{
			"short non-technical tokens dropped",
			"db up",
			nil,
		},
		{
			"deduplicated in first-occurrence order",
			"api API api timeout",
			[]string{"api", "timeout"},
		},
		{
			"url noise dropped",
			"https www com check",
			[]string{"check"},
		},
		{
			"non-ascii tokens survive intact",
			"Café menü broken",
			[]string{"café", "menü"},
		},
		{
			"length rules count runes not bytes",
			"né ok",
			nil,
		},
		{
			"full summary",
			"DialogGPT: Repeat Response Event firing incorrectly for imported app",
			[]string{"dialoggpt", "repeat", "response", "event", "firing", "incorrectly", "imported", "app"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Keywords(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Keywords(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestKeywordSet(t *testing.T) {
	set := KeywordSet("api timeout api")
	if len(set) != 2 {
		t.Fatalf("KeywordSet size = %d, want 2", len(set))
	}
	for _, k := range []string{"api", "timeout"} {
		if _, ok := set[k]; !ok {
			t.Errorf("KeywordSet missing %q", k)
		}
	}
}
