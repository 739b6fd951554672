// Package selection tracks the single active row of a list page.
package selection

// Kind names the record type a selection refers to.
type Kind string

const (
	KindDevice Kind = "Device"
	KindFleet  Kind = "Fleet"
)

// Notification is emitted on every Select call, including repeats of the
// current id.
type Notification struct {
	Kind Kind
	ID   string
	Seq  uint64 // increases on every Select; distinguishes repeated selections
}

// State holds at most one selected id for one page.
type State struct {
	kind     Kind
	selected string
	seq      uint64
}

// New returns an empty selection for records of the given kind.
func New(kind Kind) State {
	return State{kind: kind}
}

// Select makes id the active selection and returns the notification for the
// shell. Selecting the current id again still produces a new notification.
func (s *State) Select(id string) Notification {
	s.selected = id
	s.seq++
	return Notification{Kind: s.kind, ID: id, Seq: s.seq}
}

// Clear drops the selection.
func (s *State) Clear() {
	s.selected = ""
}

// Selected returns the active id and whether one is set.
func (s State) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// Highlighted reports whether the row with id should be drawn as selected.
func (s State) Highlighted(id string) bool {
	return s.selected != "" && s.selected == id
}

// VisibleIn returns the index of the selected id within ids, or -1 when
// nothing is selected or the selection is filtered out of view.
func (s State) VisibleIn(ids []string) int {
	if s.selected == "" {
		return -1
	}
	for i, id := range ids {
		if id == s.selected {
			return i
		}
	}
	return -1
}
