// Package model defines the core data types shared across quell.
package model

import "fmt"

// Warning is a single clang-tidy diagnostic. Immutable once parsed.
type Warning struct {
	File    string
	Line    int    // 1-based
	Column  int    // 1-based
	Rule    string // e.g. "readability-magic-numbers"
	Message string

	// FunctionLines is the span reported by a companion
	// "note: N lines including..." line; 0 when absent.
	FunctionLines int
}

// Key returns the identity key used for decisions and visited tracking.
func (w Warning) Key() string {
	return fmt.Sprintf("%s:%d:%d", w.File, w.Line, w.Column)
}

// BlockAvailable reports whether a block suppression can be offered
// for this warning. It requires the analyzer's function span hint.
func (w Warning) BlockAvailable() bool {
	return w.FunctionLines > 0
}

// Style is the kind of suppression comment to insert.
type Style int

const (
	StyleNone           Style = iota
	StyleLineSpecific         // NOLINT(rule) appended to the line
	StyleNextLinePrefix       // NOLINTNEXTLINE(rule) on the line above
	StyleBlockRange           // NOLINTBEGIN/END(rule) around the function
)

func (s Style) String() string {
	switch s {
	case StyleLineSpecific:
		return "NOLINT_SPECIFIC"
	case StyleNextLinePrefix:
		return "NOLINTNEXTLINE"
	case StyleBlockRange:
		return "NOLINT_BLOCK"
	default:
		return "NONE"
	}
}

// DisplayName is the human-readable form shown in the UI.
func (s Style) DisplayName() string {
	switch s {
	case StyleLineSpecific:
		return "inline NOLINT"
	case StyleNextLinePrefix:
		return "NOLINTNEXTLINE"
	case StyleBlockRange:
		return "NOLINTBEGIN/END block"
	default:
		return "no suppression"
	}
}

// ParseStyle decodes a persisted style token. Unknown tokens decode to
// StyleNone so a stale session never poisons a load.
func ParseStyle(s string) Style {
	switch s {
	case "NOLINT_SPECIFIC":
		return StyleLineSpecific
	case "NOLINTNEXTLINE":
		return StyleNextLinePrefix
	case "NOLINT_BLOCK":
		return StyleBlockRange
	default:
		return StyleNone
	}
}

// Next cycles forward: None → LineSpecific → NextLinePrefix →
// BlockRange → None, skipping BlockRange when blockAvailable is false.
func (s Style) Next(blockAvailable bool) Style {
	switch s {
	case StyleNone:
		return StyleLineSpecific
	case StyleLineSpecific:
		return StyleNextLinePrefix
	case StyleNextLinePrefix:
		if blockAvailable {
			return StyleBlockRange
		}
		return StyleNone
	default:
		return StyleNone
	}
}

// Prev is the exact inverse of Next under the same availability, so
// cycling one way then the other always returns to the starting style.
func (s Style) Prev(blockAvailable bool) Style {
	switch s {
	case StyleNone:
		if blockAvailable {
			return StyleBlockRange
		}
		return StyleNextLinePrefix
	case StyleLineSpecific:
		return StyleNone
	case StyleNextLinePrefix:
		return StyleLineSpecific
	case StyleBlockRange:
		return StyleNextLinePrefix
	default:
		return StyleNone
	}
}

// Decisions maps a warning key to its chosen style. Entries with
// StyleNone mean "no suppression" and are excluded from addressed
// counts and from saved sessions.
type Decisions map[string]Style

// Addressed returns the number of non-None decisions.
func (d Decisions) Addressed() int {
	n := 0
	for _, s := range d {
		if s != StyleNone {
			n++
		}
	}
	return n
}
