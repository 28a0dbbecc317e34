// Package annotate holds the suppression engine: a source file
// represented as an annotatable document, the decision logic that maps
// a warning and style onto it, and the renderer that serializes it
// back to text.
//
// The document never inserts into its line slice. Comments live as
// decorations on the original lines and block markers are keyed by
// original indices, so every warning keeps its line number valid no
// matter how many suppressions have already been recorded.
package annotate

import (
	"strings"

	"github.com/quell-dev/quell/internal/model"
)

// Line is one original source line plus its decorations.
type Line struct {
	Text           string   // original content, never mutated
	BeforeComments []string // rendered above the line, in order
	InlineComment  string   // appended after the line; "" means none
}

// Block is a NOLINTBEGIN/END pair keyed by original 0-based indices.
// Indices are stable across further edits because rendering never
// shifts the underlying lines.
type Block struct {
	Start int
	End   int
	Rule  string
}

// File is an annotatable document for one source file.
type File struct {
	Lines  []Line
	Blocks []Block
}

// New wraps raw source lines into an undecorated document.
func New(lines []string) *File {
	f := &File{Lines: make([]Line, len(lines))}
	for i, l := range lines {
		f.Lines[i] = Line{Text: l}
	}
	return f
}

// Apply records a suppression decision. An out-of-range warning line
// is a no-op: analyzer output may be stale relative to the file on
// disk, and one stale warning must not abort a batch.
func (f *File) Apply(w model.Warning, style model.Style) {
	if w.Line < 1 || w.Line > len(f.Lines) {
		return
	}
	idx := w.Line - 1

	switch style {
	case model.StyleLineSpecific:
		// Last decision wins; no multi-rule merge.
		f.Lines[idx].InlineComment = "// NOLINT(" + w.Rule + ")"

	case model.StyleNextLinePrefix:
		indent := Indentation(f.Lines[idx].Text)
		f.Lines[idx].BeforeComments = append(f.Lines[idx].BeforeComments,
			indent+"// NOLINTNEXTLINE("+w.Rule+")")

	case model.StyleBlockRange:
		if w.FunctionLines <= 0 {
			return
		}
		start, end := Boundaries(f.texts(), w)
		f.Blocks = append(f.Blocks, Block{Start: start, End: end, Rule: w.Rule})
	}
}

// Render serializes the document. For each original line, in order:
// block-begin markers, before-comments, the line itself (with any
// inline comment two spaces after), then block-end markers. A
// next-line comment therefore always lands between a block begin and
// the code it annotates.
func (f *File) Render() []string {
	out := make([]string, 0, len(f.Lines)+2*len(f.Blocks))

	for i, line := range f.Lines {
		for _, b := range f.Blocks {
			if b.Start == i {
				indent := Indentation(line.Text)
				out = append(out, indent+"// NOLINTBEGIN("+b.Rule+")")
			}
		}

		out = append(out, line.BeforeComments...)

		text := line.Text
		if line.InlineComment != "" {
			text += "  " + line.InlineComment
		}
		out = append(out, text)

		for _, b := range f.Blocks {
			if b.End == i {
				indent := Indentation(line.Text)
				out = append(out, indent+"// NOLINTEND("+b.Rule+")")
			}
		}
	}

	return out
}

// Modified reports whether any decoration has been recorded.
func (f *File) Modified() bool {
	if len(f.Blocks) > 0 {
		return true
	}
	for _, l := range f.Lines {
		if l.InlineComment != "" || len(l.BeforeComments) > 0 {
			return true
		}
	}
	return false
}

func (f *File) texts() []string {
	ts := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		ts[i] = l.Text
	}
	return ts
}

// Indentation returns the longest prefix of space and tab characters.
// An all-whitespace line yields "".
func Indentation(line string) string {
	i := strings.IndexFunc(line, func(r rune) bool {
		return r != ' ' && r != '\t'
	})
	if i < 0 {
		return ""
	}
	return line[:i]
}
