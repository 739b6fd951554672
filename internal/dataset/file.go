package dataset

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/five82/flightdeck/internal/fleet"
)

type fileDevice struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Status   string    `yaml:"status"`
	Type     string    `yaml:"type"`
	Location string    `yaml:"location"`
	Address  string    `yaml:"ip"`
	Firmware string    `yaml:"firmware"`
	Fleet    string    `yaml:"fleet"`
	LastSeen time.Time `yaml:"last_seen"`
}

type fileFleet struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	SystemImage string `yaml:"system_image"`
	UpToDate    int    `yaml:"up_to_date"`
	Total       int    `yaml:"total"`
	Status      string `yaml:"status"`
}

type fileDataset struct {
	Devices []fileDevice `yaml:"devices"`
	Fleets  []fileFleet  `yaml:"fleets"`
}

// Load reads a YAML dataset file. Status spellings are normalized and every
// record is validated before the Source is returned.
func Load(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML dataset document.
func Parse(data []byte) (*Static, error) {
	var raw fileDataset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	devices := make([]fleet.Device, 0, len(raw.Devices))
	for i, d := range raw.Devices {
		status, err := fleet.ParseDeviceStatus(d.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: device #%d: %w", ErrInvalidDataset, i+1, err)
		}
		devices = append(devices, fleet.Device{
			ID:       strings.TrimSpace(d.ID),
			Name:     d.Name,
			Status:   status,
			Type:     d.Type,
			Location: d.Location,
			Address:  strings.TrimSpace(d.Address),
			Firmware: strings.TrimSpace(d.Firmware),
			Fleet:    d.Fleet,
			LastSeen: d.LastSeen,
		})
	}

	fleets := make([]fleet.Fleet, 0, len(raw.Fleets))
	for i, f := range raw.Fleets {
		status, err := fleet.ParseFleetStatus(f.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: fleet #%d: %w", ErrInvalidDataset, i+1, err)
		}
		fleets = append(fleets, fleet.Fleet{
			ID:          strings.TrimSpace(f.ID),
			Name:        f.Name,
			SystemImage: f.SystemImage,
			UpToDate:    f.UpToDate,
			Total:       f.Total,
			Status:      status,
		})
	}

	return NewStatic(devices, fleets)
}
