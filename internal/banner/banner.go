// Package banner implements the transient "selected" acknowledgment shown by
// the shell after a row selection.
//
// The banner is either hidden or visible for one id until a deadline. Every
// Show returns a fresh Token; a dismissal timer only hides the banner when it
// carries the current token, so a timer started for an earlier selection can
// never hide a newer banner.
package banner

import (
	"fmt"
	"time"

	"github.com/five82/flightdeck/internal/selection"
)

// Window is how long a banner stays up without a new selection.
const Window = 3 * time.Second

// Token identifies one Show call.
type Token uint64

// Banner is a value; transitions return a new Banner.
type Banner struct {
	visible  bool
	subject  selection.Notification
	deadline time.Time
	token    Token
}

// Show displays the banner for n, replacing any current content and
// restarting the window from now.
func (b Banner) Show(n selection.Notification, now time.Time) (Banner, Token) {
	b.visible = true
	b.subject = n
	b.deadline = now.Add(Window)
	b.token++
	return b, b.token
}

// Expire hides the banner if tok is the token of the latest Show. Stale tokens
// leave the banner untouched.
func (b Banner) Expire(tok Token) Banner {
	if !b.visible || tok != b.token {
		return b
	}
	return b.hide()
}

// Dismiss hides the banner immediately.
func (b Banner) Dismiss() Banner {
	if !b.visible {
		return b
	}
	return b.hide()
}

func (b Banner) hide() Banner {
	b.visible = false
	b.subject = selection.Notification{}
	b.deadline = time.Time{}
	return b
}

// Visible reports whether the banner is showing.
func (b Banner) Visible() bool {
	return b.visible
}

// VisibleAt reports whether the banner is showing and its window has not
// elapsed at now.
func (b Banner) VisibleAt(now time.Time) bool {
	return b.visible && now.Before(b.deadline)
}

// Subject returns the notification currently shown.
func (b Banner) Subject() selection.Notification {
	return b.subject
}

// Deadline returns when the current window ends; zero when hidden.
func (b Banner) Deadline() time.Time {
	return b.deadline
}

// Token returns the token of the latest Show.
func (b Banner) Token() Token {
	return b.token
}

// Title is the banner headline, e.g. "Device 1 selected".
func (b Banner) Title() string {
	if !b.visible {
		return ""
	}
	kind := b.subject.Kind
	if kind == "" {
		kind = selection.KindDevice
	}
	return fmt.Sprintf("%s %s selected", kind, b.subject.ID)
}
