// Package filter implements the free-text warning search.
package filter

import (
	"strconv"
	"strings"

	"github.com/quell-dev/quell/internal/model"
)

// Warnings returns the order-preserving subsequence of ws matching
// query. The query is split on whitespace; a warning matches when
// every term is a case-insensitive substring of its file path, rule,
// message, or decimal line number. An empty query matches everything;
// a query with no matches returns an empty result — widening back to
// the full list is the caller's call.
func Warnings(ws []model.Warning, query string) []model.Warning {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return ws
	}

	matched := make([]model.Warning, 0, len(ws))
	for _, w := range ws {
		if matches(w, terms) {
			matched = append(matched, w)
		}
	}
	return matched
}

func matches(w model.Warning, terms []string) bool {
	fields := []string{
		strings.ToLower(w.File),
		strings.ToLower(w.Rule),
		strings.ToLower(w.Message),
		strconv.Itoa(w.Line),
	}

	for _, term := range terms {
		found := false
		for _, f := range fields {
			if strings.Contains(f, term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
