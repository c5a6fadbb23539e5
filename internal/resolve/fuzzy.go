// Package resolve provides fuzzy matching of user-supplied operation names
// against the API operation catalog.
package resolve

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// DefaultLimit caps the number of suggestions returned by Suggest.
const DefaultLimit = 3

type lowered []string

func (s lowered) String(i int) string { return strings.ToLower(s[i]) }
func (s lowered) Len() int            { return len(s) }

// Suggest returns up to DefaultLimit candidates that fuzzily match query,
// best first. An exact case-insensitive match returns just that candidate.
// Empty query or candidates yield nil.
func Suggest(query string, candidates []string) []string {
	return SuggestN(query, candidates, DefaultLimit)
}

// SuggestN is Suggest with an explicit result cap.
func SuggestN(query string, candidates []string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || len(candidates) == 0 || limit <= 0 {
		return nil
	}

	// Exact case-insensitive match wins outright.
	for _, c := range candidates {
		if strings.EqualFold(c, query) {
			return []string{c}
		}
	}

	results := fuzzy.FindFrom(strings.ToLower(query), lowered(candidates))
	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, candidates[r.Index])
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
