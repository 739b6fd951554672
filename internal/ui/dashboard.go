package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flightdeck/internal/fleet"
	"github.com/five82/flightdeck/internal/overview"
)

const chartBarWidth = 40

func (m Model) renderOverview(width int) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Overview"))
	b.WriteString("\n\n")
	b.WriteString(styles.Title.Render(fmt.Sprintf("%d devices", overview.TotalDevices)))
	b.WriteString("\n")

	barWidth := chartBarWidth
	if width-2 < barWidth {
		barWidth = width - 2
	}
	for _, chart := range overview.Charts() {
		b.WriteString("\n")
		b.WriteString(renderChart(styles, chart, barWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Title.Render("Alerts"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("There are no active Alerts at this time"))
	b.WriteString("\n\n")

	b.WriteString(m.renderDatasetSummary())
	return b.String()
}

// renderChart draws a chart as one segmented bar plus its legend.
func renderChart(styles Styles, chart overview.Chart, width int) string {
	segments := chart.Segments(width)

	var bar strings.Builder
	legend := make([]string, 0, len(chart.Slices))
	for i, slice := range chart.Slices {
		color := lipgloss.NewStyle().Foreground(lipgloss.Color(slice.Color))
		bar.WriteString(color.Render(strings.Repeat("█", segments[i])))
		legend = append(legend, color.Render("■")+" "+styles.Text.Render(fmt.Sprintf("%s %d%%", slice.Label, slice.Percent)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.AccentText.Bold(true).Render(chart.Title),
		bar.String(),
		strings.Join(legend, "  "),
	)
}

// renderDatasetSummary shows live counts computed from the loaded records.
func (m Model) renderDatasetSummary() string {
	styles := m.theme.Styles()

	counts := fleet.CountByStatus(m.devices)
	parts := make([]string, 0, len(fleet.DeviceStatuses))
	for _, status := range fleet.DeviceStatuses {
		parts = append(parts, styles.StatusStyle(string(status)).Render(
			fmt.Sprintf("%s %d", status.Label(), counts[status])))
	}

	outdated := 0
	for _, f := range m.fleets {
		outdated += f.Outdated()
	}

	lines := []string{
		styles.Title.Render("Loaded dataset"),
		styles.Text.Render(fmt.Sprintf("%d devices in %d fleets", len(m.devices), len(m.fleets))),
		strings.Join(parts, "  "),
		styles.MutedText.Render(fmt.Sprintf("%d fleet devices awaiting update", outdated)),
		m.renderFirmware(fleet.FirmwareSummary(m.devices)),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFirmware(fw fleet.Firmware) string {
	styles := m.theme.Styles()
	if fw.Latest == "" {
		return styles.MutedText.Render("Firmware: no semantic versions reported")
	}
	line := fmt.Sprintf("Firmware: latest %s, %d current, %d behind", fw.Latest, fw.Current, fw.Behind)
	if fw.Unparsable > 0 {
		line += fmt.Sprintf(", %d unrecognized", fw.Unparsable)
	}
	if fw.Behind > 0 {
		return styles.WarningText.Render(line)
	}
	return styles.SuccessText.Render(line)
}
