// Package stats aggregates per-rule progress over a review session.
package stats

import (
	"fmt"
	"sort"

	"github.com/quell-dev/quell/internal/model"
)

// RuleStats is the per-rule progress record.
type RuleStats struct {
	Rule      string
	Total     int
	Addressed int // warnings with a non-None decision
	Visited   int // warnings the user has displayed at least once
}

// AddressedPercent returns Addressed as an integer-truncated
// percentage of Total, 0 for an empty rule.
func (r RuleStats) AddressedPercent() int {
	if r.Total == 0 {
		return 0
	}
	return r.Addressed * 100 / r.Total
}

// Aggregate computes per-rule counts, sorted alphabetically by rule.
func Aggregate(ws []model.Warning, decisions model.Decisions, visited map[string]bool) []RuleStats {
	byRule := make(map[string]*RuleStats)

	for _, w := range ws {
		rs, ok := byRule[w.Rule]
		if !ok {
			rs = &RuleStats{Rule: w.Rule}
			byRule[w.Rule] = rs
		}
		rs.Total++

		key := w.Key()
		if decisions[key] != model.StyleNone {
			rs.Addressed++
		}
		if visited[key] {
			rs.Visited++
		}
	}

	out := make([]RuleStats, 0, len(byRule))
	for _, rs := range byRule {
		out = append(out, *rs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rule < out[j].Rule })
	return out
}

// Summary returns a one-line progress description for a stats slice.
func Summary(all []RuleStats) string {
	total, addressed := 0, 0
	for _, rs := range all {
		total += rs.Total
		addressed += rs.Addressed
	}
	if total == 0 {
		return "no warnings"
	}
	return fmt.Sprintf("%d/%d warnings addressed across %d rule(s)", addressed, total, len(all))
}
