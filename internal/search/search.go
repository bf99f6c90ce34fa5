package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"stargaze/internal/domain"
)

// Match pairs a star with its fuzzy rank (lower = better)
type Match struct {
	Star domain.Star
	Rank int
}

// Rank returns the stars whose name or description fuzzily matches the
// query, scored and sorted by rank, then feed order for equal ranks so
// results stay stable across keystrokes. An empty query matches
// nothing.
func Rank(query string, stars []domain.Star) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	targets := make([]string, len(stars))
	for i, s := range stars {
		targets[i] = s.FilterValue()
	}

	ranks := fuzzy.RankFindFold(query, targets)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	matches := make([]Match, len(ranks))
	for i, r := range ranks {
		matches[i] = Match{Star: stars[r.OriginalIndex], Rank: r.Distance}
	}
	return matches
}

// Best returns the best-ranked star for the query
func Best(query string, stars []domain.Star) (domain.Star, bool) {
	matches := Rank(query, stars)
	if len(matches) == 0 {
		return domain.Star{}, false
	}
	return matches[0].Star, true
}
