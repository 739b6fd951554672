package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/flightdeck/internal/banner"
	"github.com/five82/flightdeck/internal/selection"
)

// Page identifies a top-level console page.
type Page string

const (
	PageOverview Page = "overview"
	PageDevices  Page = "devices"
	PageFleets   Page = "fleets"
	PageSettings Page = "settings"
)

// Pages lists pages in sidebar order.
var Pages = []Page{PageOverview, PageDevices, PageFleets, PageSettings}

// Title returns the sidebar label of the page.
func (p Page) Title() string {
	switch p {
	case PageOverview:
		return "Overview"
	case PageDevices:
		return "Devices"
	case PageFleets:
		return "Fleets"
	case PageSettings:
		return "Settings"
	}
	return string(p)
}

// Valid reports whether p is a known page.
func (p Page) Valid() bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePage converts a case-insensitive page name.
func ParsePage(value string) (Page, error) {
	p := Page(strings.ToLower(strings.TrimSpace(value)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown page %q", value)
	}
	return p, nil
}

// SignalKind enumerates the output signals the shell produces.
type SignalKind string

const (
	SignalSelectionNotified  SignalKind = "selection-notified"
	SignalFiltersCleared     SignalKind = "filters-cleared"
	SignalAddDeviceRequested SignalKind = "add-device-requested"
	SignalNavigationChanged  SignalKind = "navigation-changed"
)

// Signal is one observable output of a transition.
type Signal struct {
	Kind SignalKind
	Arg  string // selected id or page id; empty otherwise
}

func (s Signal) String() string {
	if s.Arg == "" {
		return string(s.Kind) + "()"
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.Arg)
}

// Shell is the centrally owned console state. Transitions are pure: they
// return the next Shell plus the signal they produced, if any.
type Shell struct {
	Active      Page
	SidebarOpen bool
	ModalOpen   bool
	Banner      banner.Banner
}

// NewShell returns the initial state: the given start page, banner hidden.
func NewShell(start Page, sidebarOpen bool) Shell {
	if !start.Valid() {
		start = PageOverview
	}
	return Shell{Active: start, SidebarOpen: sidebarOpen}
}

// Navigate mounts page p. Unknown pages and the current page are no-ops.
func (s Shell) Navigate(p Page) (Shell, *Signal) {
	if !p.Valid() || p == s.Active {
		return s, nil
	}
	s.Active = p
	return s, &Signal{Kind: SignalNavigationChanged, Arg: string(p)}
}

// NextPage navigates forward in sidebar order, wrapping at the end.
func (s Shell) NextPage() (Shell, *Signal) {
	return s.Navigate(step(s.Active, 1))
}

// PrevPage navigates backward in sidebar order, wrapping at the start.
func (s Shell) PrevPage() (Shell, *Signal) {
	return s.Navigate(step(s.Active, -1))
}

func step(current Page, delta int) Page {
	for i, p := range Pages {
		if p == current {
			return Pages[(i+delta+len(Pages))%len(Pages)]
		}
	}
	return Pages[0]
}

// ToggleSidebar flips sidebar visibility.
func (s Shell) ToggleSidebar() Shell {
	s.SidebarOpen = !s.SidebarOpen
	return s
}

// OpenModal shows the Add Device dialog.
func (s Shell) OpenModal() (Shell, *Signal) {
	s.ModalOpen = true
	return s, &Signal{Kind: SignalAddDeviceRequested}
}

// CloseModal hides the Add Device dialog.
func (s Shell) CloseModal() Shell {
	s.ModalOpen = false
	return s
}

// Notify shows the selection banner for n and returns the token its
// dismissal timer must carry.
func (s Shell) Notify(n selection.Notification, now time.Time) (Shell, banner.Token, *Signal) {
	var tok banner.Token
	s.Banner, tok = s.Banner.Show(n, now)
	return s, tok, &Signal{Kind: SignalSelectionNotified, Arg: n.ID}
}

// ExpireBanner applies a dismissal timer. Tokens from superseded banners are ignored.
func (s Shell) ExpireBanner(tok banner.Token) Shell {
	s.Banner = s.Banner.Expire(tok)
	return s
}

// DismissBanner hides the banner on user request.
func (s Shell) DismissBanner() Shell {
	s.Banner = s.Banner.Dismiss()
	return s
}

// FiltersCleared is the signal a list page emits when the user resets its filters.
func FiltersCleared() *Signal {
	return &Signal{Kind: SignalFiltersCleared}
}
