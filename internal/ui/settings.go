package ui

import (
	"fmt"
	"strings"
)

func (m Model) renderSettings(width int) string {
	styles := m.theme.Styles()
	valueWidth := width - 14
	if valueWidth < 20 {
		valueWidth = 20
	}

	row := func(label, value string) string {
		return styles.MutedText.Render(padRight(label, 14)) + styles.Text.Render(value)
	}

	dataset := m.datasetLabel
	if dataset == "" {
		dataset = "built-in sample"
	}
	prefsPath := m.prefsPath
	if prefsPath == "" {
		prefsPath = "not saved"
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(row("Config", truncateMiddle(m.cfg.Path, valueWidth)))
	b.WriteString("\n")
	b.WriteString(row("Preferences", truncateMiddle(prefsPath, valueWidth)))
	b.WriteString("\n")
	b.WriteString(row("Dataset", truncateMiddle(dataset, valueWidth)))
	b.WriteString("\n")
	b.WriteString(row("Organization", m.cfg.Organization))
	b.WriteString("\n")
	b.WriteString(row("Theme", m.theme.Name+styles.FaintText.Render("  (T to cycle)")))
	b.WriteString("\n")
	b.WriteString(row("Log file", truncateMiddle(m.cfg.LogFile, valueWidth)))
	b.WriteString("\n")
	b.WriteString(row("Log level", m.cfg.LogLevel.String()))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Bold(true).Render("Recent signals"))
	b.WriteString("\n")
	if len(m.signals) == 0 {
		b.WriteString(styles.FaintText.Render("none yet"))
		b.WriteString("\n")
	}
	for i := len(m.signals) - 1; i >= 0; i-- {
		b.WriteString(styles.Text.Render(m.signals[i].String()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Console log"))
	b.WriteString("\n")
	switch {
	case m.logTailErr != nil:
		b.WriteString(styles.DangerText.Render(fmt.Sprintf("read log: %v", m.logTailErr)))
	case len(m.logTail) == 0:
		b.WriteString(styles.FaintText.Render("no entries"))
	default:
		for i, line := range m.logTail {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(styles.MutedText.Render(truncate(line, width)))
		}
	}
	return b.String()
}
