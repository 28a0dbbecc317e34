package source

import (
	"testing"
)

func TestHighlight(t *testing.T) {
	lines := []string{
		"#include <cstdio>",
		"",
		"int main() {",
		`    printf("hello\n");`,
		"}",
	}

	highlighted := Highlight("main.cpp", lines)

	if len(highlighted) != len(lines) {
		t.Fatalf("expected %d highlighted lines, got %d", len(lines), len(highlighted))
	}
	if len(highlighted[0].Tokens) == 0 {
		t.Error("expected tokens in first line")
	}
	if highlighted[0].Plain() != "#include <cstdio>" {
		t.Errorf("plain text mismatch: %q", highlighted[0].Plain())
	}
}

func TestHighlightUnknownLanguage(t *testing.T) {
	lines := []string{"some content", "more content"}
	highlighted := Highlight("unknown.xyz123", lines)

	if len(highlighted) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(highlighted))
	}
	if highlighted[0].Plain() != "some content" {
		t.Errorf("expected plain passthrough, got %q", highlighted[0].Plain())
	}
}
