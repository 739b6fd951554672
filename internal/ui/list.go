package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flightdeck/internal/filter"
	"github.com/five82/flightdeck/internal/selection"
)

// listPage is the local state of the Devices or Fleets page: its filters,
// its selection, the cursor row and the search box.
type listPage struct {
	noun      string   // plural, e.g. "devices"
	statuses  []string // status filter cycle; "" means all
	label     func(status string) string
	filter    filter.State
	selection selection.State
	cursor    int
	search    textinput.Model
	searching bool
}

func newListPage(kind selection.Kind, noun, placeholder string, statuses []string, label func(string) string) listPage {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = placeholder
	input.CharLimit = 64

	return listPage{
		noun:      noun,
		statuses:  append([]string{""}, statuses...),
		label:     label,
		selection: selection.New(kind),
		search:    input,
	}
}

func (p *listPage) focusSearch() tea.Cmd {
	p.searching = true
	return p.search.Focus()
}

func (p *listPage) blurSearch() {
	p.searching = false
	p.search.Blur()
}

// updateSearch feeds msg to the search box and re-derives the search filter
// from its value. Filtering is live on every keystroke.
func (p *listPage) updateSearch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	p.filter.Search = p.search.Value()
	return cmd
}

func (p *listPage) cycleStatus() {
	next := 0
	for i, s := range p.statuses {
		if s == p.filter.Status {
			next = (i + 1) % len(p.statuses)
			break
		}
	}
	p.filter.Status = p.statuses[next]
}

func (p *listPage) statusLabel() string {
	if p.filter.Status == "" {
		return "All statuses"
	}
	return p.label(p.filter.Status)
}

// clearFilters resets search and status; the selection is kept.
func (p *listPage) clearFilters() {
	p.filter = p.filter.Cleared()
	p.search.SetValue("")
	p.cursor = 0
}

// leave runs when the shell navigates away from the page.
func (p *listPage) leave() {
	p.selection.Clear()
	p.blurSearch()
}

func (p *listPage) move(delta, rows int) {
	p.cursor += delta
	p.clamp(rows)
}

func (p *listPage) clamp(rows int) {
	if p.cursor >= rows {
		p.cursor = rows - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}
