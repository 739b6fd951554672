package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/flightdeck/internal/fleet"
)

func TestSample_ShapeMatchesDemoData(t *testing.T) {
	s := Sample()

	devices := s.Devices()
	require.Len(t, devices, 8)
	assert.Equal(t, "1", devices[0].ID)
	assert.Equal(t, "Boston", devices[5].Location)
	assert.Equal(t, fleet.DeviceError, devices[6].Status)

	fleets := s.Fleets()
	require.Len(t, fleets, 4)
	assert.Equal(t, fleet.FleetSelectorOverlap, fleets[1].Status)
	assert.Equal(t, "Local", fleets[1].SystemImage)

	for _, d := range devices {
		assert.NoError(t, d.Validate())
	}
	for _, f := range fleets {
		assert.NoError(t, f.Validate())
	}
}

func TestStatic_ReturnsCopies(t *testing.T) {
	s := Sample()

	devices := s.Devices()
	devices[0].Name = "mutated"
	assert.Equal(t, "Device-01", s.Devices()[0].Name)

	fleets := s.Fleets()
	fleets[0].Total = 0
	assert.Equal(t, 1520, s.Fleets()[0].Total)
}

func TestNewStatic_RejectsInvalidRecords(t *testing.T) {
	_, err := NewStatic([]fleet.Device{
		{ID: "1", Status: fleet.DeviceHealthy},
		{ID: "1", Status: fleet.DeviceError},
	}, nil)
	assert.ErrorIs(t, err, ErrInvalidDataset)

	_, err = NewStatic(nil, []fleet.Fleet{{ID: "1", UpToDate: 3, Total: 2, Status: fleet.FleetValid}})
	assert.ErrorIs(t, err, ErrInvalidDataset)
}

func TestNewStatic_EmptyIsValid(t *testing.T) {
	s, err := NewStatic(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, s.Devices())
	assert.Empty(t, s.Fleets())
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	doc := `
devices:
  - id: " a1 "
    name: Edge-A1
    status: degraded
    type: Gateway
    location: Oslo
    ip: 10.0.0.1
    firmware: v3.0.0
    last_seen: 2026-01-02T03:04:05Z
fleets:
  - id: f1
    name: Retail
    system_image: Local
    up_to_date: 3
    total: 4
    status: Selector overlap
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	s, err := Load(path)
	require.NoError(t, err)

	devices := s.Devices()
	require.Len(t, devices, 1)
	assert.Equal(t, "a1", devices[0].ID)
	assert.Equal(t, fleet.DeviceDegraded, devices[0].Status)
	assert.Equal(t, "10.0.0.1", devices[0].Address)
	assert.True(t, devices[0].LastSeen.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))

	fleets := s.Fleets()
	require.Len(t, fleets, 1)
	assert.Equal(t, fleet.FleetSelectorOverlap, fleets[0].Status)
	assert.Equal(t, 1, fleets[0].Outdated())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"malformed yaml", "devices: [", false},
		{"unknown device status", "devices:\n  - id: x\n    status: ONLINE\n", true},
		{"unknown fleet status", "fleets:\n  - id: x\n    status: broken\n", true},
		{"up to date above total", "fleets:\n  - id: x\n    status: valid\n    up_to_date: 5\n    total: 1\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidDataset)
			} else {
				assert.Contains(t, err.Error(), "parse dataset")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read dataset")
}
