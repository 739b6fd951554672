package fleet

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Firmware summarizes the firmware versions reported across devices.
type Firmware struct {
	Latest     string // newest version as written in the record; empty if none parse
	Current    int    // devices running Latest
	Behind     int    // devices on an older version
	Unparsable int    // devices whose firmware is not a semantic version
}

// FirmwareSummary finds the newest firmware and counts devices lagging behind it.
func FirmwareSummary(devices []Device) Firmware {
	var (
		summary Firmware
		latest  *semver.Version
	)
	parsed := make([]*semver.Version, len(devices))
	for i, d := range devices {
		v, err := semver.NewVersion(strings.TrimSpace(d.Firmware))
		if err != nil {
			summary.Unparsable++
			continue
		}
		parsed[i] = v
		if latest == nil || v.GreaterThan(latest) {
			latest = v
			summary.Latest = strings.TrimSpace(d.Firmware)
		}
	}
	if latest == nil {
		return summary
	}
	for _, v := range parsed {
		if v == nil {
			continue
		}
		if v.Equal(latest) {
			summary.Current++
		} else {
			summary.Behind++
		}
	}
	return summary
}
