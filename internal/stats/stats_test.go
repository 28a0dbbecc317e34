package stats

import (
	"testing"

	"github.com/quell-dev/quell/internal/model"
)

func TestAggregate(t *testing.T) {
	ws := []model.Warning{
		{File: "a.cpp", Line: 1, Column: 1, Rule: "readability-magic-numbers"},
		{File: "a.cpp", Line: 2, Column: 1, Rule: "readability-magic-numbers"},
		{File: "a.cpp", Line: 3, Column: 1, Rule: "readability-magic-numbers"},
		{File: "b.cpp", Line: 1, Column: 1, Rule: "modernize-use-auto"},
	}
	decisions := model.Decisions{
		"a.cpp:1:1": model.StyleLineSpecific,
		"a.cpp:2:1": model.StyleNone, // explicit None is not addressed
	}
	visited := map[string]bool{
		"a.cpp:1:1": true,
		"a.cpp:2:1": true,
	}

	got := Aggregate(ws, decisions, visited)
	if len(got) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(got))
	}

	// Alphabetical order: modernize before readability.
	if got[0].Rule != "modernize-use-auto" || got[1].Rule != "readability-magic-numbers" {
		t.Fatalf("unexpected order: %q, %q", got[0].Rule, got[1].Rule)
	}

	rm := got[1]
	if rm.Total != 3 {
		t.Errorf("Total = %d, want 3", rm.Total)
	}
	if rm.Addressed != 1 {
		t.Errorf("Addressed = %d, want 1", rm.Addressed)
	}
	if rm.Visited != 2 {
		t.Errorf("Visited = %d, want 2", rm.Visited)
	}
	if rm.AddressedPercent() != 33 {
		t.Errorf("AddressedPercent = %d, want 33", rm.AddressedPercent())
	}
}

func TestAddressedPercentEmpty(t *testing.T) {
	if got := (RuleStats{}).AddressedPercent(); got != 0 {
		t.Errorf("AddressedPercent on empty rule = %d, want 0", got)
	}
}

func TestSummary(t *testing.T) {
	if got := Summary(nil); got != "no warnings" {
		t.Errorf("empty summary = %q", got)
	}

	s := Summary([]RuleStats{
		{Rule: "a", Total: 3, Addressed: 1},
		{Rule: "b", Total: 1, Addressed: 1},
	})
	want := "2/4 warnings addressed across 2 rule(s)"
	if s != want {
		t.Errorf("Summary = %q, want %q", s, want)
	}
}
