package annotate

import (
	"strings"

	"github.com/quell-dev/quell/internal/model"
)

// Bounded search windows for the no-hint heuristic.
const (
	signatureLookback = 20
	braceLookahead    = 50
	hintBraceSlack    = 10
)

// Boundaries computes the 0-based inclusive line range a block
// suppression should wrap. The analyzer's function span hint is the
// trusted path; without one a signature/brace text heuristic stands
// in. The result always lies inside [0, len(lines)-1].
func Boundaries(lines []string, w model.Warning) (start, end int) {
	if len(lines) == 0 {
		return 0, 0
	}
	last := len(lines) - 1

	start = clamp(w.Line-1, 0, last)

	if w.FunctionLines > 0 {
		end = clamp(start+w.FunctionLines-1, start, last)
		// The hint counts lines, so the true closing brace can sit a
		// little past it (trailing comments, blank lines). Anchor on
		// it when it is nearby at the signature's indentation.
		if refined, ok := closingBrace(lines, start, end, end+hintBraceSlack); ok {
			end = refined
		}
		return start, end
	}

	// No hint: walk back to something that looks like a signature.
	for i := start; i >= 0 && start-i <= signatureLookback; i-- {
		if looksLikeSignature(lines[i]) {
			start = i
			break
		}
	}

	// Then forward to a closing brace at the signature's indentation.
	indent := Indentation(lines[start])
	for i := clamp(w.Line, 0, last); i <= last && i <= w.Line-1+braceLookahead; i++ {
		if strings.Contains(lines[i], "}") && Indentation(lines[i]) == indent {
			return start, i
		}
	}

	// Nothing matched: wrap only the warning's own line.
	return clamp(w.Line-1, 0, last), clamp(w.Line-1, 0, last)
}

// closingBrace scans [from, to] for the first line whose stripped
// content is exactly "}" (optionally "};") at the same indentation as
// lines[indentOf].
func closingBrace(lines []string, indentOf, from, to int) (int, bool) {
	indent := Indentation(lines[indentOf])
	from = clamp(from, 0, len(lines)-1)
	to = clamp(to, 0, len(lines)-1)
	for i := from; i <= to; i++ {
		stripped := strings.TrimSpace(lines[i])
		if stripped != "}" && stripped != "};" {
			continue
		}
		if Indentation(lines[i]) == indent {
			return i, true
		}
	}
	return 0, false
}

// looksLikeSignature is a text heuristic: a call-shaped line that is
// neither a comment nor a control-flow statement.
func looksLikeSignature(line string) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" || strings.HasPrefix(stripped, "//") || strings.HasPrefix(stripped, "*") {
		return false
	}
	if !strings.Contains(stripped, "(") || !strings.Contains(stripped, ")") {
		return false
	}
	for _, kw := range []string{"if", "while", "for", "switch"} {
		if stripped == kw || strings.HasPrefix(stripped, kw+" ") || strings.HasPrefix(stripped, kw+"(") {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
