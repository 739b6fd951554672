// Package dataset provides the record sets shown by the console.
package dataset

import (
	"errors"
	"fmt"

	"github.com/five82/flightdeck/internal/fleet"
)

// ErrInvalidDataset wraps every validation failure reported by Load and NewStatic.
var ErrInvalidDataset = errors.New("invalid dataset")

// Source provides the current record set. Implementations return copies so
// callers cannot change what other views see.
type Source interface {
	Devices() []fleet.Device
	Fleets() []fleet.Fleet
}

// Ensure Static implements Source at compile time.
var _ Source = (*Static)(nil)

// Static is an immutable in-memory Source.
type Static struct {
	devices []fleet.Device
	fleets  []fleet.Fleet
}

// NewStatic validates and copies the given records.
func NewStatic(devices []fleet.Device, fleets []fleet.Fleet) (*Static, error) {
	seen := make(map[string]bool, len(devices))
	for _, d := range devices {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("%w: duplicate device id %q", ErrInvalidDataset, d.ID)
		}
		seen[d.ID] = true
	}
	seen = make(map[string]bool, len(fleets))
	for _, f := range fleets {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
		if seen[f.ID] {
			return nil, fmt.Errorf("%w: duplicate fleet id %q", ErrInvalidDataset, f.ID)
		}
		seen[f.ID] = true
	}
	return &Static{devices: cloneDevices(devices), fleets: cloneFleets(fleets)}, nil
}

// Devices returns a copy of the device records in source order.
func (s *Static) Devices() []fleet.Device {
	if s == nil {
		return nil
	}
	return cloneDevices(s.devices)
}

// Fleets returns a copy of the fleet records in source order.
func (s *Static) Fleets() []fleet.Fleet {
	if s == nil {
		return nil
	}
	return cloneFleets(s.fleets)
}

func cloneDevices(items []fleet.Device) []fleet.Device {
	if len(items) == 0 {
		return nil
	}
	dup := make([]fleet.Device, len(items))
	copy(dup, items)
	return dup
}

func cloneFleets(items []fleet.Fleet) []fleet.Fleet {
	if len(items) == 0 {
		return nil
	}
	dup := make([]fleet.Fleet, len(items))
	copy(dup, items)
	return dup
}
