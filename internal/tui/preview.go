package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/quell-dev/quell/internal/annotate"
	"github.com/quell-dev/quell/internal/model"
	"github.com/quell-dev/quell/internal/source"
)

// previewLine is one row of the context pane: either an original
// source line or a pending suppression comment spliced in.
type previewLine struct {
	Number   int // 1-based original line number, 0 for inserted rows
	Text     string
	Warning  bool // the flagged line itself
	Inserted bool // pending suppression comment
}

// buildPreview assembles the context window around a warning with the
// currently selected suppression spliced in at the position it would
// occupy after rendering. For block suppressions the window stretches
// to cover both markers.
func buildPreview(lines []string, w model.Warning, style model.Style, ctx int) []previewLine {
	if len(lines) == 0 || w.Line < 1 || w.Line > len(lines) {
		return nil
	}
	warnIdx := w.Line - 1

	start := max(0, warnIdx-ctx)
	end := min(len(lines)-1, warnIdx+ctx)

	blockStart, blockEnd := -1, -1
	if style == model.StyleBlockRange && w.BlockAvailable() {
		blockStart, blockEnd = annotate.Boundaries(lines, w)
		start = min(start, blockStart)
		end = max(end, blockEnd)
	}

	var out []previewLine
	for i := start; i <= end; i++ {
		indent := annotate.Indentation(lines[i])

		if i == blockStart {
			out = append(out, previewLine{
				Text:     indent + "// NOLINTBEGIN(" + w.Rule + ")",
				Inserted: true,
			})
		}
		if i == warnIdx && style == model.StyleNextLinePrefix {
			out = append(out, previewLine{
				Text:     indent + "// NOLINTNEXTLINE(" + w.Rule + ")",
				Inserted: true,
			})
		}

		text := lines[i]
		if i == warnIdx && style == model.StyleLineSpecific {
			text += "  // NOLINT(" + w.Rule + ")"
		}
		out = append(out, previewLine{Number: i + 1, Text: text, Warning: i == warnIdx})

		if i == blockEnd {
			out = append(out, previewLine{
				Text:     indent + "// NOLINTEND(" + w.Rule + ")",
				Inserted: true,
			})
		}
	}
	return out
}

// renderPreview styles preview lines for display, syntax-highlighting
// original lines and tinting inserted and flagged ones.
func renderPreview(file string, pv []previewLine, width int) []string {
	texts := make([]string, len(pv))
	for i, pl := range pv {
		texts[i] = pl.Text
	}
	highlighted := source.Highlight(file, texts)

	out := make([]string, len(pv))
	for i, pl := range pv {
		var num string
		if pl.Number > 0 {
			num = fmt.Sprintf("%5d", pl.Number)
		} else {
			num = "     "
		}

		marker := "  "
		if pl.Warning {
			marker = ">>"
		} else if pl.Inserted {
			marker = " +"
		}

		content := truncate(pl.Text, width)
		switch {
		case pl.Inserted:
			content = insertedLineStyle.Render(content)
		case pl.Warning:
			content = warningLineStyle.Render(content)
		default:
			content = renderTokens(highlighted[i], width)
		}

		out[i] = lineNumberStyle.Render(num) + " " + marker + " " + content
	}
	return out
}

func renderTokens(hl source.HighlightedLine, width int) string {
	var b strings.Builder
	remaining := width
	for _, tok := range hl.Tokens {
		text := tok.Text
		if len(text) > remaining {
			text = truncate(text, remaining)
		}
		if tok.Color != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(tok.Color)).Render(text))
		} else {
			b.WriteString(text)
		}
		remaining -= len(text)
		if remaining <= 0 {
			break
		}
	}
	return b.String()
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) > max {
		return s[:max-1] + "…"
	}
	return s
}
