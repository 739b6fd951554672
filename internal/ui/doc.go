// Package ui provides the terminal console for flightdeck.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns the shell state (active page,
// sidebar, Add Device modal, selection banner) and the local state of the two
// list pages. Page views are pure functions of the model; nothing is fetched
// after startup because the dataset is fixed for the session.
//
// # Package Structure
//
//   - app.go: Model, key handling, messages and commands, Run
//   - list.go: per-page filter, selection, cursor and search box
//   - lists.go: Devices and Fleets tables
//   - dashboard.go: Overview charts and live dataset counts
//   - settings.go: paths, theme, recent shell signals and the console log tail
//   - view.go: masthead, sidebar, banner, toolbar and footer
//   - modal.go: Modal interface and the Add Device dialog
//   - help.go: help overlay built from the key map
//   - keys.go, theme.go, style_helpers.go, strings.go: bindings, palettes and layout helpers
//
// # Selection Flow
//
// Selecting a row updates the page's selection and returns a command that
// delivers a selectedMsg to the model. The model shows the banner through
// state.Shell.Notify and schedules a bannerExpiredMsg after banner.Window
// carrying the banner token. A newer selection issues a new token, so the
// tick of an earlier selection arrives stale and is ignored.
//
// # Key Bindings
//
//   - 1-4, tab, shift+tab: switch pages; b toggles the sidebar
//   - /: live search (enter or esc leaves the box); f cycles the status filter; c clears filters
//   - j/k, g/G: move the cursor; enter or space selects the row
//   - a: Add Device dialog (Devices page); x dismisses the banner
//   - T: cycle theme; ?: help; e or ctrl+c: quit
package ui
