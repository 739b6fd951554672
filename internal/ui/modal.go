package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width int) string
}

// addDeviceModal explains how to enroll a device. It holds no state beyond
// the enrollment request id minted when it opens.
type addDeviceModal struct {
	requestID string
}

func newAddDeviceModal() addDeviceModal {
	return addDeviceModal{requestID: uuid.NewString()}
}

func (d addDeviceModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	if key.Matches(keyMsg, keys.Escape, keys.Confirm) {
		return d, nil, true
	}
	return d, nil, false
}

func (d addDeviceModal) View(theme Theme, width int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Add devices"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Width(width).Render(
		"Devices join Flight Control by submitting an enrollment request. " +
			"Boot the device with an image that includes the agent and point it at this service."))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Enrollment request"))
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render(d.requestID))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter/esc close"))
	return b.String()
}
