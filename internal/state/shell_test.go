package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/flightdeck/internal/banner"
	"github.com/five82/flightdeck/internal/selection"
)

func TestNewShell_DefaultsUnknownStartPage(t *testing.T) {
	s := NewShell("reports", true)
	assert.Equal(t, PageOverview, s.Active)
	assert.True(t, s.SidebarOpen)
	assert.False(t, s.ModalOpen)
	assert.False(t, s.Banner.Visible())
}

func TestParsePage(t *testing.T) {
	p, err := ParsePage(" Fleets ")
	require.NoError(t, err)
	assert.Equal(t, PageFleets, p)

	_, err = ParsePage("repositories")
	assert.Error(t, err)
}

func TestNavigate(t *testing.T) {
	s := NewShell(PageOverview, true)

	s, sig := s.Navigate(PageDevices)
	require.NotNil(t, sig)
	assert.Equal(t, PageDevices, s.Active)
	assert.Equal(t, "navigation-changed(devices)", sig.String())

	s, sig = s.Navigate(PageDevices)
	assert.Nil(t, sig, "navigating to the mounted page emits nothing")

	s, sig = s.Navigate("bogus")
	assert.Nil(t, sig)
	assert.Equal(t, PageDevices, s.Active)
}

func TestNextPrevPageWrap(t *testing.T) {
	s := NewShell(PageSettings, true)
	s, _ = s.NextPage()
	assert.Equal(t, PageOverview, s.Active)

	s, _ = s.PrevPage()
	assert.Equal(t, PageSettings, s.Active)

	s, _ = s.PrevPage()
	assert.Equal(t, PageFleets, s.Active)
}

func TestSidebarAndModal(t *testing.T) {
	s := NewShell(PageDevices, true)

	s = s.ToggleSidebar()
	assert.False(t, s.SidebarOpen)
	s = s.ToggleSidebar()
	assert.True(t, s.SidebarOpen)

	s, sig := s.OpenModal()
	require.NotNil(t, sig)
	assert.Equal(t, SignalAddDeviceRequested, sig.Kind)
	assert.True(t, s.ModalOpen)
	assert.Equal(t, "add-device-requested()", sig.String())

	s = s.CloseModal()
	assert.False(t, s.ModalOpen)
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	before := NewShell(PageOverview, true)
	_, _ = before.Navigate(PageFleets)
	_ = before.ToggleSidebar()
	_, _ = before.OpenModal()

	assert.Equal(t, PageOverview, before.Active)
	assert.True(t, before.SidebarOpen)
	assert.False(t, before.ModalOpen)
}

func TestNotifyAndExpire(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewShell(PageDevices, true)

	s, first, sig := s.Notify(selection.Notification{Kind: selection.KindDevice, ID: "1"}, now)
	require.NotNil(t, sig)
	assert.Equal(t, "selection-notified(1)", sig.String())

	s, second, _ := s.Notify(selection.Notification{Kind: selection.KindDevice, ID: "2"}, now.Add(time.Second))
	assert.NotEqual(t, first, second)

	s = s.ExpireBanner(first)
	assert.True(t, s.Banner.VisibleAt(now.Add(banner.Window)))
	assert.Equal(t, "Device 2 selected", s.Banner.Title())

	s = s.ExpireBanner(second)
	assert.False(t, s.Banner.Visible())
}

func TestDismissBanner(t *testing.T) {
	s := NewShell(PageDevices, true)
	s, _, _ = s.Notify(selection.Notification{Kind: selection.KindDevice, ID: "5"}, time.Now())
	s = s.DismissBanner()
	assert.False(t, s.Banner.Visible())
}

func TestFiltersClearedSignal(t *testing.T) {
	assert.Equal(t, "filters-cleared()", FiltersCleared().String())
}
