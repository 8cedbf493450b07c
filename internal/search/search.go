// Package search ranks cached queries, playlist items and playlist names
// against loosely typed user input.
package search

import (
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps the "did you mean" list.
const maxSuggestions = 3

// Rank returns the candidates matching query, best first.
// Matching is case-insensitive and subsequence based; ties keep the
// candidates' original order.
func Rank(query string, candidates []string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	matches := lfuzzy.RankFindFold(query, candidates)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].OriginalIndex < matches[j].OriginalIndex
	})

	results := make([]string, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.Target)
	}
	return results
}

// Suggest returns up to three candidates close to target, for "did you mean"
// hints. Subsequence matches come first, then candidates within a small edit
// distance.
func Suggest(target string, candidates []string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if len(out) < maxSuggestions && !seen[s] && s != target {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, s := range Rank(target, candidates) {
		add(s)
	}

	type scored struct {
		value string
		dist  int
	}
	lowered := strings.ToLower(target)
	limit := len(target)/3 + 1
	var near []scored
	for _, c := range candidates {
		d := lfuzzy.LevenshteinDistance(lowered, strings.ToLower(c))
		if d <= limit {
			near = append(near, scored{value: c, dist: d})
		}
	}
	sort.SliceStable(near, func(i, j int) bool { return near[i].dist < near[j].dist })
	for _, n := range near {
		add(n.value)
	}
	return out
}

// Filter returns the names matching pattern, best match first.
// An empty pattern returns all names unchanged.
func Filter(pattern string, names []string) []string {
	if strings.TrimSpace(pattern) == "" {
		return names
	}

	lower := make([]string, len(names))
	for i, n := range names {
		lower[i] = strings.ToLower(n)
	}

	matches := fuzzy.Find(strings.ToLower(pattern), lower)
	results := make([]string, len(matches))
	for i, m := range matches {
		results[i] = names[m.Index]
	}
	return results
}
