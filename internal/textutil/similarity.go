package textutil

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Ratio returns the Ratcliff/Obershelp similarity of a and b in [0, 1].
// Two empty strings are identical and score 1.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

// Match is a candidate accepted by CloseMatch.
type Match struct {
	Candidate string
	Score     float64
}

// CloseMatch returns the candidate most similar to word when its score meets
// or exceeds cutoff. Cutoffs outside [0, 1] never match.
//
// Candidates are compared as the first sequence and word as the second, and
// the cheap upper bounds are checked before the full ratio, mirroring the
// classic get_close_matches algorithm with n=1.
func CloseMatch(word string, candidates []string, cutoff float64) (Match, bool) {
	if cutoff < 0 || cutoff > 1 || len(candidates) == 0 {
		return Match{}, false
	}
	matcher := difflib.NewMatcher(nil, runes(word))

	var best Match
	found := false
	for _, candidate := range candidates {
		matcher.SetSeq1(runes(candidate))
		if matcher.RealQuickRatio() < cutoff || matcher.QuickRatio() < cutoff {
			continue
		}
		score := matcher.Ratio()
		if score < cutoff {
			continue
		}
		if !found || score > best.Score || (score == best.Score && candidate > best.Candidate) {
			best = Match{Candidate: candidate, Score: score}
			found = true
		}
	}
	return best, found
}

func runes(value string) []string {
	out := make([]string, 0, len(value))
	for _, r := range value {
		out = append(out, string(r))
	}
	return out
}
