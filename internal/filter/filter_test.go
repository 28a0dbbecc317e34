package filter

import (
	"reflect"
	"testing"

	"github.com/quell-dev/quell/internal/model"
)

var testWarnings = []model.Warning{
	{File: "/src/main.cpp", Line: 42, Rule: "readability-magic-numbers", Message: "42 is a magic number"},
	{File: "/src/utils.cpp", Line: 10, Rule: "modernize-use-auto", Message: "use auto when initializing with a cast"},
	{File: "/src/main.cpp", Line: 7, Rule: "readability-function-size", Message: "function 'f' exceeds thresholds"},
}

func TestEmptyQueryReturnsAll(t *testing.T) {
	for _, q := range []string{"", "   ", "\t \n"} {
		got := Warnings(testWarnings, q)
		if !reflect.DeepEqual(got, testWarnings) {
			t.Errorf("query %q: expected full input back", q)
		}
	}
}

func TestAndSemantics(t *testing.T) {
	got := Warnings(testWarnings, "main magic")
	if len(got) != 1 || got[0].Rule != "readability-magic-numbers" {
		t.Fatalf("expected exactly the magic-numbers warning, got %+v", got)
	}
}

func TestNoMatchReturnsEmpty(t *testing.T) {
	got := Warnings(testWarnings, "nonexistent")
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d warnings", len(got))
	}
}

func TestCaseInsensitive(t *testing.T) {
	got := Warnings(testWarnings, "MODERNIZE")
	if len(got) != 1 || got[0].Rule != "modernize-use-auto" {
		t.Errorf("case-insensitive match failed: %+v", got)
	}
}

func TestLineNumberMatch(t *testing.T) {
	got := Warnings(testWarnings, "10")
	if len(got) != 1 || got[0].File != "/src/utils.cpp" {
		t.Errorf("line-number match failed: %+v", got)
	}
}

func TestOrderPreserved(t *testing.T) {
	got := Warnings(testWarnings, "main")
	if len(got) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(got))
	}
	if got[0].Line != 42 || got[1].Line != 7 {
		t.Errorf("relative order not preserved: %+v", got)
	}
}

func TestMatchAcrossDifferentFields(t *testing.T) {
	// Terms may hit different fields of the same warning.
	got := Warnings(testWarnings, "utils auto")
	if len(got) != 1 || got[0].Rule != "modernize-use-auto" {
		t.Errorf("cross-field AND failed: %+v", got)
	}
}
