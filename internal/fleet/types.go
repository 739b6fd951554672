package fleet

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownStatus is returned when a status string matches no known value.
var ErrUnknownStatus = errors.New("unknown status")

// DeviceStatus is the reported health of a device.
type DeviceStatus string

const (
	DeviceHealthy  DeviceStatus = "HEALTHY"
	DeviceDegraded DeviceStatus = "DEGRADED"
	DeviceError    DeviceStatus = "ERROR"
	DeviceUnknown  DeviceStatus = "UNKNOWN"
)

// DeviceStatuses lists device statuses in filter cycle order.
var DeviceStatuses = []DeviceStatus{DeviceHealthy, DeviceDegraded, DeviceError, DeviceUnknown}

// Label returns the display label for the status.
func (s DeviceStatus) Label() string {
	switch s {
	case DeviceHealthy:
		return "Healthy"
	case DeviceDegraded:
		return "Degraded"
	case DeviceError:
		return "Error"
	case DeviceUnknown:
		return "Unknown"
	}
	return string(s)
}

// ParseDeviceStatus converts a case-insensitive status name.
func ParseDeviceStatus(value string) (DeviceStatus, error) {
	normalized := DeviceStatus(strings.ToUpper(strings.TrimSpace(value)))
	for _, s := range DeviceStatuses {
		if s == normalized {
			return s, nil
		}
	}
	return "", fmt.Errorf("device status %q: %w", value, ErrUnknownStatus)
}

// FleetStatus is the validity of a fleet definition.
type FleetStatus string

const (
	FleetValid           FleetStatus = "VALID"
	FleetSelectorOverlap FleetStatus = "SELECTOR_OVERLAP"
)

// FleetStatuses lists fleet statuses in filter cycle order.
var FleetStatuses = []FleetStatus{FleetValid, FleetSelectorOverlap}

// Label returns the display label for the status.
func (s FleetStatus) Label() string {
	switch s {
	case FleetValid:
		return "Valid"
	case FleetSelectorOverlap:
		return "Selector overlap"
	}
	return string(s)
}

// ParseFleetStatus accepts "selector overlap", "selector-overlap" and
// "SELECTOR_OVERLAP" spellings.
func ParseFleetStatus(value string) (FleetStatus, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	for _, s := range FleetStatuses {
		if string(s) == normalized {
			return s, nil
		}
	}
	return "", fmt.Errorf("fleet status %q: %w", value, ErrUnknownStatus)
}

// Device is one managed device. Records are immutable once loaded.
type Device struct {
	ID       string
	Name     string
	Status   DeviceStatus
	Type     string
	Location string
	Address  string
	Firmware string
	Fleet    string    // presentational only; empty when unassigned
	LastSeen time.Time // zero when the device never reported
}

// Validate reports whether the record can be shown.
func (d Device) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("device id is empty")
	}
	if _, err := ParseDeviceStatus(string(d.Status)); err != nil {
		return fmt.Errorf("device %s: %w", d.ID, err)
	}
	return nil
}

// Fleet is a named group of devices sharing a system image.
type Fleet struct {
	ID          string
	Name        string
	SystemImage string
	UpToDate    int
	Total       int
	Status      FleetStatus
}

// Validate enforces UpToDate <= Total and a known status.
func (f Fleet) Validate() error {
	if strings.TrimSpace(f.ID) == "" {
		return errors.New("fleet id is empty")
	}
	if f.UpToDate < 0 || f.Total < 0 {
		return fmt.Errorf("fleet %s: negative device count", f.ID)
	}
	if f.UpToDate > f.Total {
		return fmt.Errorf("fleet %s: %d up-to-date exceeds %d total", f.ID, f.UpToDate, f.Total)
	}
	if _, err := ParseFleetStatus(string(f.Status)); err != nil {
		return fmt.Errorf("fleet %s: %w", f.ID, err)
	}
	return nil
}

// Outdated returns the number of members not on the fleet's current image.
func (f Fleet) Outdated() int {
	return f.Total - f.UpToDate
}

// CountByStatus tallies devices per status. Every known status is present.
func CountByStatus(devices []Device) map[DeviceStatus]int {
	counts := make(map[DeviceStatus]int, len(DeviceStatuses))
	for _, s := range DeviceStatuses {
		counts[s] = 0
	}
	for _, d := range devices {
		counts[d.Status]++
	}
	return counts
}
