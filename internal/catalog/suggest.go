package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to input by edit distance, for
// "did you mean" hints when a search comes back empty. Candidates are
// compared whole and word by word, so a single mistyped word still finds
// its title. ok is false when nothing lands within the distance budget.
func Suggest(input string, candidates []string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" || len(candidates) == 0 {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, c := range candidates {
		if d := distance(in, c); bestDist == -1 || d < bestDist {
			best, bestDist = c, d
		}
	}

	budget := len(in) / 3
	if budget < 2 {
		budget = 2
	}
	if bestDist > budget {
		return "", false
	}
	return best, true
}

func distance(in, candidate string) int {
	c := strings.ToLower(candidate)
	d := levenshtein.ComputeDistance(in, c)
	for _, w := range strings.Fields(c) {
		if wd := levenshtein.ComputeDistance(in, w); wd < d {
			d = wd
		}
	}
	return d
}
