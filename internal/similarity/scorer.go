// Package similarity scores ticket pairs. The score is a weighted blend of
// four set overlaps (subject terms, summary keywords, technical terms, all
// keywords) plus a small bonus for near-equal summary lengths.
//
// Weights are fixed for behavioral compatibility with the production
// heuristic; changing them invalidates recorded thresholds downstream.
package similarity

import (
	"math"
	"unicode/utf8"

	"deja/internal/jira"
	"deja/internal/text"
)

// Factor weights. Metadata factors are computed into the breakdown for
// diagnostics but weighted at zero.
const (
	subjectWeight = 0.5
	summaryWeight = 0.35
	techWeight    = 0.10
	jaccardWeight = 0.05

	// lengthBonus is added when the two summaries are within 20% of each
	// other in length. It can push a perfect match to 1.01; the upper bound
	// is deliberately not clamped.
	lengthBonus          = 0.01
	lengthBonusThreshold = 0.8
)

// Breakdown carries every factor that went into a pairwise score. The
// metadata factors do not affect Final.
type Breakdown struct {
	Subject   float64 `json:"subject"`
	Summary   float64 `json:"summary"`
	Technical float64 `json:"technical"`
	Jaccard   float64 `json:"jaccard"`

	TypeMatch        float64 `json:"type_match"`
	PriorityMatch    float64 `json:"priority_match"`
	ComponentOverlap float64 `json:"component_overlap"`
	LabelOverlap     float64 `json:"label_overlap"`
	ProjectMatch     float64 `json:"project_match"`

	LengthBonus float64 `json:"length_bonus"`
	Final       float64 `json:"final"`
}

// Score computes the full similarity between two tickets, returning the
// final value and its factor breakdown. The function is deterministic and
// symmetric in its arguments, length bonus included. The result is in
// [0, 1.01], rounded to 6 decimal places.
func Score(a, b jira.Ticket) Breakdown {
	keywordsA := union(text.KeywordSet(a.Summary), text.KeywordSet(a.Description))
	keywordsB := union(text.KeywordSet(b.Summary), text.KeywordSet(b.Description))

	if len(keywordsA) == 0 && len(keywordsB) == 0 {
		return Breakdown{}
	}

	bd := factors(a, b, keywordsA, keywordsB)
	bd.TypeMatch = matchScore(a.IssueType, b.IssueType)
	bd.PriorityMatch = matchScore(a.Priority, b.Priority)
	bd.ComponentOverlap = maxOverlap(a.Components, b.Components)
	bd.LabelOverlap = maxOverlap(a.Labels, b.Labels)
	bd.ProjectMatch = matchScore(a.Project, b.Project)

	final := bd.Subject*subjectWeight +
		bd.Summary*summaryWeight +
		bd.Technical*techWeight +
		bd.Jaccard*jaccardWeight

	// Character counts, not byte lengths, so multibyte summaries compare
	// the same way regardless of encoding width.
	lenA, lenB := utf8.RuneCountInString(a.Summary), utf8.RuneCountInString(b.Summary)
	lengthSim := 1.0 - math.Abs(float64(lenA-lenB))/math.Max(math.Max(float64(lenA), float64(lenB)), 1)
	if lengthSim > lengthBonusThreshold {
		bd.LengthBonus = lengthBonus
		final += lengthBonus
	}

	bd.Final = round6(math.Max(0, final))
	return bd
}

// ContentScore is the scoring formula without the length bonus or metadata
// factors. It is a diagnostic value; the ranking threshold applies to the
// full score.
func ContentScore(a, b jira.Ticket) float64 {
	keywordsA := union(text.KeywordSet(a.Summary), text.KeywordSet(a.Description))
	keywordsB := union(text.KeywordSet(b.Summary), text.KeywordSet(b.Description))

	if len(keywordsA) == 0 && len(keywordsB) == 0 {
		return 0
	}

	bd := factors(a, b, keywordsA, keywordsB)
	return round6(bd.Subject*subjectWeight +
		bd.Summary*summaryWeight +
		bd.Technical*techWeight +
		bd.Jaccard*jaccardWeight)
}

// factors computes the four content overlaps shared by Score and
// ContentScore.
func factors(a, b jira.Ticket, keywordsA, keywordsB map[string]struct{}) Breakdown {
	var bd Breakdown

	subjA := text.SubjectTerms(a.Summary)
	subjB := text.SubjectTerms(b.Summary)
	bd.Subject = jaccard(subjA, subjB)

	bd.Summary = jaccard(text.KeywordSet(a.Summary), text.KeywordSet(b.Summary))

	techA := intersect(keywordsA, text.TechnicalTerms)
	techB := intersect(keywordsB, text.TechnicalTerms)
	bd.Technical = jaccard(techA, techB)

	bd.Jaccard = jaccard(keywordsA, keywordsB)
	return bd
}

// jaccard is |a∩b| / |a∪b|, 0 when the union is empty.
func jaccard(a, b map[string]struct{}) float64 {
	inter, un := 0, len(b)
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		} else {
			un++
		}
	}
	if un == 0 {
		return 0
	}
	return float64(inter) / float64(un)
}

// maxOverlap is |a∩b| / max(|a|,|b|,1), the overlap measure used for
// component and label sets.
func maxOverlap(a, b []string) float64 {
	setA, setB := toSet(a), toSet(b)
	inter := 0
	for k := range setA {
		if _, ok := setB[k]; ok {
			inter++
		}
	}
	denom := len(setA)
	if len(setB) > denom {
		denom = len(setB)
	}
	if denom < 1 {
		denom = 1
	}
	return float64(inter) / float64(denom)
}

func matchScore(a, b string) float64 {
	if a == b {
		return 1
	}
	return 0
}

func union(a, b map[string]struct{}) map[string]struct{} {
	u := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		u[k] = struct{}{}
	}
	for k := range b {
		u[k] = struct{}{}
	}
	return u
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func toSet(ss []string) map[string]struct{} {
	s := make(map[string]struct{}, len(ss))
	for _, v := range ss {
		s[v] = struct{}{}
	}
	return s
}

func round6(f float64) float64 {
	return math.Round(f*1e6) / 1e6
}
