package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quell-dev/quell/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.quell")

	in := model.Decisions{
		"/src/a.cpp:10:5":  model.StyleLineSpecific,
		"/src/b.cpp:20:1":  model.StyleBlockRange,
		"/src/c.cpp:30:2":  model.StyleNone, // must not be persisted
		"/src/d.cpp:40:12": model.StyleNextLinePrefix,
	}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(out) != 3 {
		t.Fatalf("expected 3 decisions, got %d", len(out))
	}
	if _, ok := out["/src/c.cpp:30:2"]; ok {
		t.Error("None decision should not have been persisted")
	}
	if out["/src/a.cpp:10:5"] != model.StyleLineSpecific {
		t.Errorf("wrong style for a.cpp: %v", out["/src/a.cpp:10:5"])
	}
	if out["/src/b.cpp:20:1"] != model.StyleBlockRange {
		t.Errorf("wrong style for b.cpp: %v", out["/src/b.cpp:20:1"])
	}
}

func TestSaveSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.quell")
	in := model.Decisions{
		"z.cpp:1:1": model.StyleLineSpecific,
		"a.cpp:1:1": model.StyleLineSpecific,
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "a.cpp") {
		t.Errorf("expected sorted output, got %q", lines)
	}
}

func TestLoadSkipsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.quell")
	content := strings.Join([]string{
		"",                                // blank
		"no separator here",               // missing pipe
		"a.cpp:1:1|EXTRA|NOLINT_SPECIFIC", // two pipes
		"|NOLINT_SPECIFIC",                // empty key
		"b.cpp:2:2|NOLINT_SPECIFIC",       // valid
		"c.cpp:3:3|BOGUS_STYLE",           // unknown token → None
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(out), out)
	}
	if out["b.cpp:2:2"] != model.StyleLineSpecific {
		t.Errorf("wrong style for b.cpp: %v", out["b.cpp:2:2"])
	}
	if out["c.cpp:3:3"] != model.StyleNone {
		t.Errorf("unknown token should decode to None, got %v", out["c.cpp:3:3"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("expected error for missing session file")
	}
}
