package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/flightdeck/internal/fleet"
)

// Below this width the Devices table drops its Fleet and Last seen columns.
const wideTableWidth = 124

type column struct {
	title string
	width int
}

func (m Model) renderDevices(width int) string {
	styles := m.theme.Styles()
	p := m.devicePage
	rows := m.visibleDevices()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Devices"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Width(width).Render(
		"Flight Control is waiting for devices to connect and report their status."))
	b.WriteString("\n\n")
	b.WriteString(styles.WarningText.Bold(true).Render("⚠ System recovery complete."))
	b.WriteString("\n")
	b.WriteString(styles.WarningText.Width(width).Render(
		`Devices will report a "Pending sync" status until they are able to connect. ` +
			`Devices with configuration conflicts will report a "Suspended" status and require manual action to resume.`))
	b.WriteString("\n\n")
	b.WriteString(m.renderToolbar(p, len(rows), len(m.devices), "a Add devices"))
	b.WriteString("\n\n")

	wide := width >= wideTableWidth
	cols := []column{
		{"Name", 12}, {"Status", 10}, {"Type", 14}, {"Location", 18},
		{"Address", 15}, {"Firmware", 10},
	}
	if wide {
		cols = append(cols, column{"Fleet", 22}, column{"Last seen", 14})
	}
	b.WriteString(renderHeader(styles, cols))

	if len(rows) == 0 {
		b.WriteString("\n")
		b.WriteString(m.renderEmpty(p))
		return b.String()
	}

	now := m.now()
	for i, d := range rows {
		values := []string{d.Name, d.Status.Label(), d.Type, d.Location, d.Address, d.Firmware}
		if wide {
			values = append(values, orDash(d.Fleet), lastSeen(d.LastSeen, now))
		}
		b.WriteString("\n")
		b.WriteString(m.renderRow(p, d.ID, i, cols, values, map[int]lipgloss.Style{
			1: styles.StatusStyle(string(d.Status)),
		}))
	}
	return b.String()
}

func (m Model) renderFleets(width int) string {
	styles := m.theme.Styles()
	p := m.fleetPage
	rows := m.visibleFleets()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Fleets"))
	b.WriteString("\n\n")
	b.WriteString(styles.DangerText.Render("✖ Suspended devices detected"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Width(width).Render(
		"Some devices are suspended because their local configuration is newer than the server's record. " +
			"They will not receive updates until they are resumed."))
	b.WriteString("\n\n")
	b.WriteString(m.renderToolbar(p, len(rows), len(m.fleets), ""))
	b.WriteString("\n\n")

	cols := []column{{"Name", 26}, {"System image", 38}, {"Up-to-date devices", 20}, {"Status", 18}}
	b.WriteString(renderHeader(styles, cols))

	if len(rows) == 0 {
		b.WriteString("\n")
		b.WriteString(m.renderEmpty(p))
		return b.String()
	}

	for i, f := range rows {
		values := []string{f.Name, f.SystemImage, upToDate(f), f.Status.Label()}
		b.WriteString("\n")
		colored := map[int]lipgloss.Style{3: styles.StatusStyle(string(f.Status))}
		if f.Outdated() > 0 {
			colored[2] = styles.DangerText
		}
		b.WriteString(m.renderRow(p, f.ID, i, cols, values, colored))
	}
	return b.String()
}

// renderRow lays out one table row. colored maps column indexes to their
// style; the selected row ignores it and uses the selection colors.
func (m Model) renderRow(p listPage, id string, index int, cols []column, values []string, colored map[int]lipgloss.Style) string {
	styles := m.theme.Styles()
	marker, highlighted := rowMarker(p, id, index)

	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = cell(values[i], c.width)
	}

	if highlighted {
		return styles.Selected.Render(marker + strings.Join(cells, " "))
	}
	for i, style := range colored {
		cells[i] = style.Render(cells[i])
	}
	return styles.AccentText.Render(marker) + strings.Join(cells, " ")
}

func renderHeader(styles Styles, cols []column) string {
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = cell(c.title, c.width)
	}
	return styles.MutedText.Bold(true).Render("  " + strings.Join(titles, " "))
}

func upToDate(f fleet.Fleet) string {
	return fmt.Sprintf("%d/%d", f.UpToDate, f.Total)
}

func lastSeen(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
