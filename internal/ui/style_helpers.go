package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bgStyle renders segments over a shared background color. Lipgloss resets
// the background between separately styled segments, which leaves gaps in
// bars such as the masthead; bgStyle paints the spaces too.
type bgStyle struct {
	bg lipgloss.Color
}

func newBgStyle(bgColor string) bgStyle {
	return bgStyle{bg: lipgloss.Color(bgColor)}
}

// Render applies style with the shared background to every word and space of text.
func (b bgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	styled := style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return styled.Render(text)
	}
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = styled.Render(w)
		}
	}
	return strings.Join(words, b.Spaces(1))
}

// Spaces returns n spaces painted with the background.
func (b bgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Join joins rendered parts with a painted separator.
func (b bgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, lipgloss.NewStyle().Background(b.bg).Render(sep))
}

// FillLine pads rendered content with the background to width.
func (b bgStyle) FillLine(content string, width int) string {
	return lipgloss.NewStyle().Background(b.bg).Width(width).Render(content)
}
