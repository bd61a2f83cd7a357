package match

import (
	"sort"
	"strings"
)

// DefaultMaxSuggestions bounds the number of names reported for one miss.
const DefaultMaxSuggestions = 3

// Suggest returns up to limit candidates close to name, best first.
//
// Comparison is case-insensitive. A candidate qualifies when its distance is
// at most a third of the longer name (and at least 1). Ties keep the
// candidates' input order.
func Suggest(name string, candidates []string, limit int) []string {
	if name == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}

	lower := strings.ToLower(name)

	var hits []scored

	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c == name {
			continue
		}

		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}

		dist := Levenshtein(lower, strings.ToLower(c))
		if dist <= threshold(name, c) {
			hits = append(hits, scored{name: c, dist: dist})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].dist < hits[j].dist
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.name)
	}

	return out
}

func threshold(a, b string) int {
	return max(1, max(len(a), len(b))/3)
}
