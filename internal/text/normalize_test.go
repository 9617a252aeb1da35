package text

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"lowercases", "DialogGPT Task", "dialoggpt task"},
		{"strips punctuation keeps hyphens", "re-index: done!", "re-index done"},
		{"collapses whitespace", "a   b\t\nc", "a b c"},
		{"strips generic phrases", "Login not working as expected", "login"},
		{"strips failure words", "API call failed with failure", "api call with"},
		{"phrase inside word", "unexpected behavior", "behavior"},
		{"keeps underscores", "user_id mismatch", "user_id mismatch"},
		{"keeps accented letters", "Café dashboard broken", "café dashboard broken"},
		{"keeps non-latin letters", "Ошибка входа 500!", "ошибка входа 500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	if got := Tokenize(""); got != nil {
		t.Errorf("Tokenize(\"\") = %v, want nil", got)
	}
	got := Tokenize("a b c")
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("Tokenize = %v", got)
	}
}
