// Package filter computes the visible subset of a record list from the
// search text and status filter of a list page.
//
// Filtering is a pure function of (records, State). It never reorders,
// never trims the search text and never fails.
package filter

import (
	"fmt"
	"strings"

	"github.com/five82/flightdeck/internal/fleet"
)

// State is the filter input owned by a list page.
type State struct {
	Search string // case-insensitive substring
	Status string // exact status value; empty means no status filter
}

// Active reports whether any filter narrows the list.
func (s State) Active() bool {
	return s.Search != "" || s.Status != ""
}

// Cleared returns the include-all state.
func (s State) Cleared() State {
	return State{}
}

// Apply keeps the records whose fields contain the search text and whose
// status equals the status filter. Source order is preserved.
func Apply[T any](records []T, st State, fields func(T) []string, status func(T) string) []T {
	if len(records) == 0 {
		return nil
	}
	needle := strings.ToLower(st.Search)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if st.Status != "" && status(r) != st.Status {
			continue
		}
		if needle != "" && !containsAny(fields(r), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func containsAny(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// Devices matches the search text against name and location.
func Devices(records []fleet.Device, st State) []fleet.Device {
	return Apply(records, st,
		func(d fleet.Device) []string { return []string{d.Name, d.Location} },
		func(d fleet.Device) string { return string(d.Status) })
}

// Fleets matches the search text against the fleet name only.
func Fleets(records []fleet.Fleet, st State) []fleet.Fleet {
	return Apply(records, st,
		func(f fleet.Fleet) []string { return []string{f.Name} },
		func(f fleet.Fleet) string { return string(f.Status) })
}

// Summary is the "Showing N of M" line under a list toolbar.
type Summary struct {
	Shown int
	Total int
	Noun  string // plural, e.g. "devices"
}

func (s Summary) String() string {
	return fmt.Sprintf("Showing %d of %d %s", s.Shown, s.Total, s.Noun)
}

// Empty reports the no-match condition: records exist but none are visible.
func (s Summary) Empty() bool {
	return s.Shown == 0
}
