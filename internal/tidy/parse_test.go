package tidy

import (
	"strings"
	"testing"
)

const sampleOutput = `/src/main.cpp:42:5: warning: 42 is a magic number [readability-magic-numbers]
    int x = 42;
        ^
/src/utils.cpp:10:1: warning: function 'process' exceeds recommended size/complexity thresholds [readability-function-size]
void process() {
^
/src/utils.cpp:10:1: note: 87 lines including whitespace and comments (threshold 80)
/src/other.cpp:5:3: warning: use auto when initializing with a cast [modernize-use-auto]
garbage line that matches nothing
`

func TestParse(t *testing.T) {
	ws, err := Parse(strings.NewReader(sampleOutput))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(ws) != 3 {
		t.Fatalf("expected 3 warnings, got %d", len(ws))
	}

	w0 := ws[0]
	if w0.File != "/src/main.cpp" || w0.Line != 42 || w0.Column != 5 {
		t.Errorf("unexpected location: %+v", w0)
	}
	if w0.Rule != "readability-magic-numbers" {
		t.Errorf("unexpected rule: %q", w0.Rule)
	}
	if w0.Message != "42 is a magic number" {
		t.Errorf("unexpected message: %q", w0.Message)
	}
	if w0.FunctionLines != 0 {
		t.Errorf("expected no span hint, got %d", w0.FunctionLines)
	}

	// The note line attaches to the function-size warning.
	if ws[1].FunctionLines != 87 {
		t.Errorf("expected span hint 87, got %d", ws[1].FunctionLines)
	}

	// And not to the following warning.
	if ws[2].FunctionLines != 0 {
		t.Errorf("hint leaked into next warning: %d", ws[2].FunctionLines)
	}
}

func TestParseEmpty(t *testing.T) {
	ws, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ws) != 0 {
		t.Errorf("expected no warnings, got %d", len(ws))
	}
}

func TestParseSkipsMalformed(t *testing.T) {
	input := strings.Join([]string{
		"random noise",
		"/src/a.cpp:notanumber:1: warning: broken [rule]",
		"note: 12 lines with no preceding warning",
		"/src/b.cpp:7:2: warning: real one [some-rule]",
	}, "\n")

	ws, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ws) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(ws))
	}
	if ws[0].File != "/src/b.cpp" {
		t.Errorf("unexpected file: %q", ws[0].File)
	}
}

func TestParseWindowsPathColons(t *testing.T) {
	input := `C:\src\main.cpp:3:1: warning: something [a-rule]`
	ws, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ws) != 1 || ws[0].File != `C:\src\main.cpp` || ws[0].Line != 3 {
		t.Errorf("unexpected parse: %+v", ws)
	}
}
