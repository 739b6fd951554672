package dataset

import (
	"time"

	"github.com/five82/flightdeck/internal/fleet"
)

const demoImage = "github.com/flightctl/flightctl-demos @ main"

// Sample returns the built-in demo dataset: eight devices and four fleets.
// Last-seen times are relative to now.
func Sample() *Static {
	seen := time.Now().Add(-4 * 24 * time.Hour)
	devices := []fleet.Device{
		{ID: "1", Name: "Device-01", Status: fleet.DeviceError, Type: "Gateway", Location: "New York", Address: "192.168.1.10", Firmware: "v2.1.3", LastSeen: seen},
		{ID: "2", Name: "Device-02", Status: fleet.DeviceHealthy, Type: "Sensor", Location: "San Francisco", Address: "192.168.1.15", Firmware: "v1.8.2", Fleet: "Fitting Room Devices", LastSeen: seen},
		{ID: "3", Name: "Device-03", Status: fleet.DeviceDegraded, Type: "Compute", Location: "Los Angeles", Address: "192.168.1.20", Firmware: "v2.0.1", Fleet: "Fitting Room Devices", LastSeen: seen},
		{ID: "4", Name: "Device-04", Status: fleet.DeviceUnknown, Type: "Router", Location: "Chicago", Address: "192.168.1.25", Firmware: "v1.9.5", Fleet: "Fitting Room Devices", LastSeen: seen},
		{ID: "5", Name: "Device-05", Status: fleet.DeviceHealthy, Type: "Storage", Location: "Miami", Address: "192.168.1.30", Firmware: "v2.2.0", Fleet: "Fitting Room Devices", LastSeen: seen},
		{ID: "6", Name: "Device-06", Status: fleet.DeviceHealthy, Type: "Gateway", Location: "Boston", Address: "192.168.1.35", Firmware: "v2.1.3", Fleet: "Fitting Room Devices", LastSeen: seen},
		{ID: "7", Name: "Device-07", Status: fleet.DeviceError, Type: "Sensor", Location: "Seattle", Address: "192.168.1.40", Firmware: "v1.8.2", Fleet: "Fitting Room Devices", LastSeen: seen},
		{ID: "8", Name: "Device-08", Status: fleet.DeviceHealthy, Type: "Compute", Location: "Denver", Address: "192.168.1.45", Firmware: "v2.0.1", Fleet: "Fitting Room Devices", LastSeen: seen},
	}
	fleets := []fleet.Fleet{
		{ID: "1", Name: "Warehouse name", SystemImage: demoImage, UpToDate: 1520, Total: 1520, Status: fleet.FleetValid},
		{ID: "2", Name: "Warehouse name", SystemImage: "Local", UpToDate: 125, Total: 340, Status: fleet.FleetSelectorOverlap},
		{ID: "3", Name: "Warehouse name", SystemImage: demoImage, UpToDate: 217, Total: 217, Status: fleet.FleetValid},
		{ID: "4", Name: "Warehouse name", SystemImage: demoImage, UpToDate: 217, Total: 217, Status: fleet.FleetValid},
	}
	return &Static{devices: devices, fleets: fleets}
}
