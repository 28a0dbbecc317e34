// Package tui implements the Bubble Tea interactive review session.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quell-dev/quell/internal/config"
	"github.com/quell-dev/quell/internal/filter"
	"github.com/quell-dev/quell/internal/model"
	"github.com/quell-dev/quell/internal/source"
	"github.com/quell-dev/quell/internal/stats"
)

// Result is the outcome of a review session. Nil decisions mean the
// user quit without saving.
type Result struct {
	Decisions model.Decisions
	Visited   map[string]bool
}

// fileEntry caches one loaded source file for preview building.
type fileEntry struct {
	lines []string
	err   error
}

// Model is the top-level Bubble Tea model for quell.
type Model struct {
	warnings []model.Warning // full parsed list
	active   []model.Warning // after filtering
	cfg      config.Config

	decisions model.Decisions
	visited   map[string]bool

	index int // position within active

	// Search state
	searching bool
	search    textinput.Model
	query     string // committed query

	// Overlays
	showStats bool
	showHelp  bool

	// Outcome
	accepted bool

	width  int
	height int

	files map[string]*fileEntry

	status string
}

// New creates a review model over a warning list. Previously saved
// decisions may be seeded in.
func New(ws []model.Warning, cfg config.Config, seed model.Decisions) Model {
	decisions := make(model.Decisions)
	for k, v := range seed {
		decisions[k] = v
	}

	search := textinput.New()
	search.Placeholder = "file, rule, message, line..."
	search.Prompt = "/"
	search.CharLimit = 128

	m := Model{
		warnings:  ws,
		active:    ws,
		cfg:       cfg,
		decisions: decisions,
		visited:   make(map[string]bool),
		search:    search,
		files:     make(map[string]*fileEntry),
	}
	m.markVisited()
	return m
}

func (m *Model) markVisited() {
	if w, ok := m.current(); ok {
		m.visited[w.Key()] = true
	}
}

func (m Model) current() (model.Warning, bool) {
	if len(m.active) == 0 || m.index >= len(m.active) {
		return model.Warning{}, false
	}
	return m.active[m.index], true
}

func (m Model) currentStyle() model.Style {
	w, ok := m.current()
	if !ok {
		return model.StyleNone
	}
	if s, ok := m.decisions[w.Key()]; ok {
		return s
	}
	return m.cfg.Style()
}

func (m *Model) loadFile(path string) *fileEntry {
	if e, ok := m.files[path]; ok {
		return e
	}
	lines, _, err := source.ReadLines(path)
	e := &fileEntry{lines: lines, err: err}
	m.files[path] = e
	return e
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.query)
		m.applyFilter(m.query)
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		m.applyFilter(m.search.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter(m.search.Value())
	return m, cmd
}

func (m *Model) applyFilter(query string) {
	m.query = query
	m.active = filter.Warnings(m.warnings, query)

	if m.index >= len(m.active) {
		if len(m.active) == 0 {
			m.index = 0
		} else {
			m.index = len(m.active) - 1
		}
	}

	switch {
	case strings.TrimSpace(query) == "":
		m.status = fmt.Sprintf("Filter cleared — showing all %d warnings", len(m.warnings))
	case len(m.active) == 0:
		m.status = fmt.Sprintf("No warnings match %q", query)
	default:
		m.status = fmt.Sprintf("Filter %q — showing %d/%d warnings", query, len(m.active), len(m.warnings))
	}
	m.markVisited()
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.accepted = false
		return m, tea.Quit

	case key.Matches(msg, keys.SaveExit):
		m.accepted = true
		return m, tea.Quit

	case key.Matches(msg, keys.NextWarning):
		if m.index < len(m.active)-1 {
			m.index++
			m.status = ""
			m.markVisited()
		} else {
			m.status = "Already at last warning."
		}

	case key.Matches(msg, keys.PrevWarning):
		if m.index > 0 {
			m.index--
			m.status = ""
			m.markVisited()
		} else {
			m.status = "Already at first warning."
		}

	case key.Matches(msg, keys.StyleUp):
		m.cycleStyle(func(s model.Style, avail bool) model.Style { return s.Next(avail) })

	case key.Matches(msg, keys.StyleDown):
		m.cycleStyle(func(s model.Style, avail bool) model.Style { return s.Prev(avail) })

	case key.Matches(msg, keys.Search):
		m.searching = true
		m.search.Focus()
		m.search.SetValue(m.query)

	case key.Matches(msg, keys.Stats):
		m.showStats = !m.showStats

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
	}

	return m, nil
}

func (m *Model) cycleStyle(step func(model.Style, bool) model.Style) {
	w, ok := m.current()
	if !ok {
		return
	}
	next := step(m.currentStyle(), w.BlockAvailable())
	m.decisions[w.Key()] = next
	m.status = "Style: " + next.DisplayName()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showStats {
		return m.renderStats()
	}

	var b strings.Builder

	w, ok := m.current()
	if !ok {
		b.WriteString(headerStyle.Render("quell"))
		b.WriteString("\n\n")
		if len(m.warnings) == 0 {
			b.WriteString("No warnings to review.\n")
		} else {
			b.WriteString(fmt.Sprintf("No warnings match filter %q — press / to change it.\n", m.query))
		}
		b.WriteString("\n")
		b.WriteString(m.renderStatusBar())
		return b.String()
	}

	// Header: rule + message + location
	b.WriteString(ruleStyle.Render("["+w.Rule+"]"))
	b.WriteString(" ")
	b.WriteString(messageStyle.Render(w.Message))
	b.WriteString("\n")
	b.WriteString(locationStyle.Render(fmt.Sprintf("%s:%d:%d", w.File, w.Line, w.Column)))
	b.WriteString("\n\n")

	b.WriteString(m.renderPreviewPane(w))
	b.WriteString("\n")

	b.WriteString(m.renderStylePicker(w))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) renderPreviewPane(w model.Warning) string {
	entry := (&m).loadFile(w.File)
	innerWidth := max(20, m.width-14)

	if entry.err != nil {
		return previewStyle.Width(m.width - 2).Render(
			errorStyle.Render(fmt.Sprintf("cannot read %s: %v", w.File, entry.err)))
	}
	if w.Line < 1 || w.Line > len(entry.lines) {
		return previewStyle.Width(m.width - 2).Render(
			errorStyle.Render(fmt.Sprintf("line %d is out of range (file has %d lines); decision will be skipped",
				w.Line, len(entry.lines))))
	}

	pv := buildPreview(entry.lines, w, m.currentStyle(), m.cfg.ContextLines)

	// Clip tall block previews to what fits.
	maxRows := max(5, m.height-10)
	if len(pv) > maxRows {
		head := pv[:maxRows-1]
		rendered := renderPreview(w.File, head, innerWidth)
		rendered = append(rendered, helpBarStyle.Render(fmt.Sprintf("… %d more lines", len(pv)-len(head))))
		return previewStyle.Width(m.width - 2).Render(strings.Join(rendered, "\n"))
	}

	return previewStyle.Width(m.width - 2).Render(strings.Join(renderPreview(w.File, pv, innerWidth), "\n"))
}

func (m Model) renderStylePicker(w model.Warning) string {
	current := m.currentStyle()

	var parts []string
	for _, s := range []model.Style{model.StyleNone, model.StyleLineSpecific, model.StyleNextLinePrefix, model.StyleBlockRange} {
		name := s.DisplayName()
		switch {
		case s == current:
			parts = append(parts, styleNameStyle.Render("● "+name))
		case s == model.StyleBlockRange && !w.BlockAvailable():
			parts = append(parts, styleUnavailableStyle.Render("○ "+name+" (no span hint)"))
		default:
			parts = append(parts, "○ "+name)
		}
	}
	return "  " + strings.Join(parts, "   ")
}

func (m Model) renderStatusBar() string {
	left := fmt.Sprintf(" Warning %d/%d", min(m.index+1, len(m.active)), len(m.active))
	if m.query != "" {
		left += fmt.Sprintf("  filter: %q", m.query)
	}
	if m.status != "" {
		left += "  " + m.status
	}

	right := fmt.Sprintf("%d addressed  ? help ", m.decisions.Addressed())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return statusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderStats() string {
	var b strings.Builder
	b.WriteString(statsHeaderStyle.Render("Review Progress"))
	b.WriteString("\n")

	all := stats.Aggregate(m.warnings, m.decisions, m.visited)
	b.WriteString(fmt.Sprintf("%-45s %7s %10s %8s %5s\n", "rule", "total", "addressed", "visited", "%"))
	for _, rs := range all {
		pct := fmt.Sprintf("%d%%", rs.AddressedPercent())
		line := fmt.Sprintf("%-45s %7d %10d %8d %5s", rs.Rule, rs.Total, rs.Addressed, rs.Visited, pct)
		if rs.Addressed == rs.Total {
			b.WriteString(statsAddressedStyle.Render(line))
		} else {
			b.WriteString(statsPendingStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render(stats.Summary(all) + " — press s to close"))
	return b.String()
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("quell — Keyboard Shortcuts"))
	b.WriteString("\n\n")

	helpItems := []struct{ key, desc string }{
		{"←/h", "Previous warning"},
		{"→/l", "Next warning"},
		{"↑/k", "Cycle suppression style forward"},
		{"↓/j", "Cycle suppression style back"},
		{"/", "Filter warnings (AND across terms)"},
		{"s", "Toggle statistics"},
		{"x", "Apply suppressions and exit"},
		{"q", "Quit without writing"},
		{"?", "Toggle this help"},
	}
	for _, item := range helpItems {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			helpKeyStyle.Width(12).Render(item.key),
			item.desc,
		))
	}

	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render("Press ? to close help"))
	return b.String()
}

// Run starts the interactive session and returns the accepted result,
// or nil when the user quit without saving.
func Run(ws []model.Warning, cfg config.Config, seed model.Decisions) (*Result, error) {
	m := New(ws, cfg, seed)
	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	fm, ok := final.(Model)
	if !ok || !fm.accepted {
		return nil, nil
	}
	return &Result{Decisions: fm.decisions, Visited: fm.visited}, nil
}
