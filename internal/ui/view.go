package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flightdeck/internal/filter"
	"github.com/five82/flightdeck/internal/state"
)

const (
	sidebarWidth = 20
	modalWidth   = 60
)

// renderMain composes masthead, sidebar, banner, page content and footer.
func (m Model) renderMain() string {
	header := m.renderMasthead()
	footer := m.renderFooter()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	bodyWidth := m.width
	var sidebar string
	if m.shell.SidebarOpen {
		sidebar = m.renderSidebar(bodyHeight)
		bodyWidth -= lipgloss.Width(sidebar)
	}
	contentWidth := bodyWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	parts := make([]string, 0, 2)
	if line := m.renderBanner(contentWidth); line != "" {
		parts = append(parts, line)
	}
	parts = append(parts, m.renderPage(contentWidth))

	content := lipgloss.NewStyle().
		Width(bodyWidth).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	body := content
	if sidebar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderPage(width int) string {
	switch m.shell.Active {
	case state.PageDevices:
		return m.renderDevices(width)
	case state.PageFleets:
		return m.renderFleets(width)
	case state.PageSettings:
		return m.renderSettings(width)
	default:
		return m.renderOverview(width)
	}
}

// renderMasthead draws the top bar. The organization selector only shows on
// the Devices and Fleets pages.
func (m Model) renderMasthead() string {
	styles := m.theme.Styles()
	bg := newBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("✈ Flight Control", styles.AccentText.Bold(true)),
		bg.Render(m.shell.Active.Title(), styles.Text),
	}
	if m.shell.Active == state.PageDevices || m.shell.Active == state.PageFleets {
		parts = append(parts, bg.Render("Organization: "+m.cfg.Organization+" ▾", styles.MutedText))
	}

	line := bg.Spaces(1) + bg.Join(parts, "  │  ")
	return bg.FillLine(line, m.width)
}

func (m Model) renderSidebar(height int) string {
	styles := m.theme.Styles()

	var lines []string
	lines = append(lines, "")
	for i, page := range state.Pages {
		label := padRight(fmt.Sprintf(" %d  %s", i+1, page.Title()), sidebarWidth)
		if page == m.shell.Active {
			lines = append(lines, styles.Selected.Bold(true).Render(label))
			continue
		}
		lines = append(lines, styles.Surface.Render(label))
	}

	return styles.Surface.
		Width(sidebarWidth).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

// renderBanner shows the selection acknowledgment while its window is open.
func (m Model) renderBanner(width int) string {
	b := m.shell.Banner
	if !b.VisibleAt(m.now()) {
		return ""
	}
	styles := m.theme.Styles()
	bg := newBgStyle(m.theme.SurfaceAlt)

	title := bg.Render("✓ "+b.Title(), styles.SuccessText)
	hint := bg.Render("x dismiss", styles.FaintText)
	gap := width - lipgloss.Width(title) - lipgloss.Width(hint) - 2
	return bg.FillLine(bg.Spaces(1)+title+bg.Spaces(gap)+hint, width)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(m.help.View(m.keys))
}

// renderEmpty draws the no-match state of a list page.
func (m Model) renderEmpty(p listPage) string {
	styles := m.theme.Styles()
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		styles.MutedText.Render(fmt.Sprintf("No %s match your search criteria.", p.noun)),
		styles.AccentText.Render(fmt.Sprintf("c  Clear filters to see all %s", p.noun)),
	)
}

// renderToolbar draws the status filter, search box and summary lines.
func (m Model) renderToolbar(p listPage, shown, total int, actions string) string {
	styles := m.theme.Styles()

	status := styles.MutedText.Render("f Status: ") + styles.Text.Render(p.statusLabel())
	search := p.search.View()
	if !p.searching && p.search.Value() == "" {
		search = styles.FaintText.Render("/ " + p.search.Placeholder)
	}
	toolbar := status + "    " + search
	if actions != "" {
		toolbar += "    " + styles.AccentText.Render(actions)
	}

	summary := styles.MutedText.Render(summaryLine(p, shown, total))
	if p.filter.Active() {
		summary += "  " + styles.AccentText.Render("c Clear filters")
	}
	return toolbar + "\n" + summary
}

// rowMarker returns the cursor gutter for row index and whether the row is
// the selected record.
func rowMarker(p listPage, id string, index int) (string, bool) {
	marker := "  "
	if index == p.cursor {
		marker = "› "
	}
	return marker, p.selection.Highlighted(id)
}

func summaryLine(p listPage, shown, total int) string {
	return filter.Summary{Shown: shown, Total: total, Noun: p.noun}.String()
}
