// Package state holds the console shell state.
//
// # Overview
//
// The shell owns four pieces of UI state: the mounted page, sidebar
// visibility, Add Device modal visibility and the selection banner. Views do
// not keep their own copies; they read the Shell passed down by the root
// model and ask it for the next value on every event.
//
// # Transitions
//
// Every transition is a method on the Shell value that returns a new Shell.
// Transitions that correspond to an output signal of the console also return
// a *Signal:
//
//	Navigate(page)   -> navigation-changed(page)
//	OpenModal()      -> add-device-requested()
//	Notify(n, now)   -> selection-notified(id)
//	FiltersCleared() -> filters-cleared()   (emitted by list pages)
//
// ToggleSidebar, CloseModal, ExpireBanner and DismissBanner produce no signal.
//
// # Banner timing
//
// Notify returns a banner.Token. The UI schedules one dismissal tick per
// token; ExpireBanner ignores tokens that a later Notify superseded. No
// locking is required: the bubbletea runtime delivers every message to the
// root model on a single goroutine.
package state
