package ui

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/flightdeck/internal/config"
	"github.com/five82/flightdeck/internal/dataset"
	"github.com/five82/flightdeck/internal/prefs"
	"github.com/five82/flightdeck/internal/state"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestModel(t *testing.T, start state.Page) (Model, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	m := New(Options{
		Source: dataset.Sample(),
		Config: config.Config{
			StartPage:    start,
			Organization: "Charlie Services",
			LogLevel:     zerolog.InfoLevel,
			LogFile:      filepath.Join(t.TempDir(), "flightdeck.log"),
		},
		Logger: zerolog.Nop(),
		Prefs:  prefs.Prefs{Theme: "Dracula"},
		Now:    clock.Now,
	})
	return update(t, m, tea.WindowSizeMsg{Width: 140, Height: 60}), clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// typeText sends one key message per rune, like a user typing.
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = update(t, m, runes(string(r)))
	}
	return m
}

// selectRow presses enter and feeds the resulting selection back into the model.
func selectRow(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := updateCmd(t, m, keyOf(tea.KeyEnter))
	if cmd == nil {
		t.Fatalf("expected a selection command")
	}
	msg, ok := cmd().(selectedMsg)
	if !ok {
		t.Fatalf("expected selectedMsg, got %T", cmd())
	}
	m, cmd = updateCmd(t, m, msg)
	if cmd == nil {
		t.Fatalf("expected a banner timer command")
	}
	return m
}

func signalsOf(m Model, kind state.SignalKind) []string {
	var out []string
	for _, sig := range m.signals {
		if sig.Kind == kind {
			out = append(out, sig.Arg)
		}
	}
	return out
}

func TestLiveSearchFiltersOnEveryKeystroke(t *testing.T) {
	m, _ := newTestModel(t, state.PageDevices)

	m = update(t, m, runes("/"))
	if !m.devicePage.searching {
		t.Fatalf("expected search box to be focused")
	}

	m = typeText(t, m, "s")
	if got, want := m.visibleIDs(), []string{"2", "3", "6", "7"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after 's' visible = %v, want %v", got, want)
	}

	m = typeText(t, m, "e")
	if got, want := m.visibleIDs(), []string{"7"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after 'se' visible = %v, want %v", got, want)
	}

	m = update(t, m, keyOf(tea.KeyBackspace))
	if got, want := m.visibleIDs(), []string{"2", "3", "6", "7"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after backspace visible = %v, want %v", got, want)
	}

	m = update(t, m, keyOf(tea.KeyEsc))
	if m.devicePage.searching {
		t.Fatalf("expected esc to leave the search box")
	}
	if m.devicePage.filter.Search != "s" {
		t.Fatalf("search = %q, want %q kept after leaving the box", m.devicePage.filter.Search, "s")
	}
}

func TestSearchBoxCapturesShortcutKeys(t *testing.T) {
	m, _ := newTestModel(t, state.PageDevices)

	m = update(t, m, runes("/"))
	m = typeText(t, m, "boston")
	m = update(t, m, keyOf(tea.KeyEnter))

	if got, want := m.visibleIDs(), []string{"6"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("visible = %v, want %v", got, want)
	}
	if !m.shell.SidebarOpen {
		t.Fatalf("typing 'b' must not toggle the sidebar")
	}
	if m.shell.Active != state.PageDevices {
		t.Fatalf("typing must not navigate, active = %s", m.shell.Active)
	}
	if m.devicePage.filter.Status != "" {
		t.Fatalf("typing must not change status filter, got %q", m.devicePage.filter.Status)
	}
}

func TestStatusFilterCycle(t *testing.T) {
	m, _ := newTestModel(t, state.PageDevices)

	tests := []struct {
		status string
		want   []string
	}{
		{"HEALTHY", []string{"2", "5", "6", "8"}},
		{"DEGRADED", []string{"3"}},
		{"ERROR", []string{"1", "7"}},
		{"UNKNOWN", []string{"4"}},
		{"", []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
	}
	for _, tt := range tests {
		m = update(t, m, runes("f"))
		if m.devicePage.filter.Status != tt.status {
			t.Fatalf("status = %q, want %q", m.devicePage.filter.Status, tt.status)
		}
		if got := m.visibleIDs(); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("status %q visible = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestClearFiltersRestoresDataset(t *testing.T) {
	m, _ := newTestModel(t, state.PageDevices)

	m = update(t, m, runes("f"))
	m = update(t, m, runes("/"))
	m = typeText(t, m, "zzz")
	m = update(t, m, keyOf(tea.KeyEnter))

	if len(m.visibleIDs()) != 0 {
		t.Fatalf("expected no matches, got %v", m.visibleIDs())
	}
	view := m.View()
	for _, want := range []string{"No devices match your search criteria.", "Showing 0 of 8 devices"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}

	m = update(t, m, runes("c"))
	if got := len(m.visibleIDs()); got != 8 {
		t.Fatalf("visible after clear = %d, want 8", got)
	}
	if m.devicePage.search.Value() != "" {
		t.Fatalf("search box not cleared: %q", m.devicePage.search.Value())
	}
	if got := signalsOf(m, state.SignalFiltersCleared); len(got) != 1 {
		t.Fatalf("filters-cleared signals = %d, want 1", len(got))
	}
	if !strings.Contains(m.View(), "Showing 8 of 8 devices") {
		t.Fatalf("view missing full summary")
	}
}

func TestSelectShowsBanner(t *testing.T) {
	m, _ := newTestModel(t, state.PageDevices)

	m = update(t, m, runes("j"))
	m = selectRow(t, m)

	if got := m.shell.Banner.Title(); got != "Device 2 selected" {
		t.Fatalf("banner title = %q", got)
	}
	if id, ok := m.devicePage.selection.Selected(); !ok || id != "2" {
		t.Fatalf("selected = %q, %v", id, ok)
	}
	if !strings.Contains(m.View(), "Device 2 selected") {
		t.Fatalf("view missing banner")
	}
	if got := signalsOf(m, state.SignalSelectionNotified); !reflect.DeepEqual(got, []string{"2"}) {
		t.Fatalf("selection signals = %v", got)
	}
}

func TestRepeatedSelectionNotifiesTwice(t *testing.T) {
	m, _ := newTestModel(t, state.PageDevices)

	m = selectRow(t, m)
	first := m.shell.Banner.Subject()
	m = selectRow(t, m)
	second := m.shell.Banner.Subject()

	if first.ID != "1" || second.ID != "1" {
		t.Fatalf("subjects = %q, %q, want 1 and 1", first.ID, second.ID)
	}
	if first.Seq == second.Seq {
		t.Fatalf("repeated selection reused sequence %d", first.Seq)
	}
	if got := signalsOf(m, state.SignalSelectionNotified); len(got) != 2 {
		t.Fatalf("selection signals = %v, want two", got)
	}
}

func TestBannerRestartIgnoresStaleTimer(t *testing.T) {
	m, clock := newTestModel(t, state.PageDevices)

	m = selectRow(t, m)
	firstToken := m.shell.Banner.Token()

	clock.Advance(2 * time.Second)
	m = update(t, m, runes("j"))
	m = selectRow(t, m)
	secondToken := m.shell.Banner.Token()

	// The first selection's timer fires at its 3 second mark.
	clock.Advance(1 * time.Second)
	m = update(t, m, bannerExpiredMsg{token: firstToken})
	if !m.shell.Banner.VisibleAt(clock.Now()) {
		t.Fatalf("stale timer hid the banner")
	}
	if got := m.shell.Banner.Title(); got != "Device 2 selected" {
		t.Fatalf("banner title = %q, want Device 2 selected", got)
	}

	clock.Advance(2 * time.Second)
	m = update(t, m, bannerExpiredMsg{token: secondToken})
	if m.shell.Banner.Visible() {
		t.Fatalf("current timer did not hide the banner")
	}
	if strings.Contains(m.View(), "Device 2 selected") {
		t.Fatalf("view still shows the banner")
	}
}

func TestDismissBanner(t *testing.T) {
	m, _ := newTestModel(t, state.PageDevices)

	m = selectRow(t, m)
	m = update(t, m, runes("x"))
	if m.shell.Banner.Visible() {
		t.Fatalf("expected banner dismissed")
	}
}

func TestSelectionHiddenByFilterIsNotHighlighted(t *testing.T) {
	m, _ := newTestModel(t, state.PageDevices)

	m = selectRow(t, m) // device 1
	m = update(t, m, runes("/"))
	m = typeText(t, m, "Boston")

	p := m.devicePage
	if got := p.selection.VisibleIn(m.visibleIDs()); got != -1 {
		t.Fatalf("VisibleIn = %d, want -1", got)
	}
	if id, ok := p.selection.Selected(); !ok || id != "1" {
		t.Fatalf("selection should survive filtering, got %q", id)
	}
}

func TestNavigationClearsSelection(t *testing.T) {
	m, _ := newTestModel(t, state.PageDevices)

	m = selectRow(t, m)
	m = update(t, m, runes("3"))

	if m.shell.Active != state.PageFleets {
		t.Fatalf("active = %s, want fleets", m.shell.Active)
	}
	if _, ok := m.devicePage.selection.Selected(); ok {
		t.Fatalf("device selection should be cleared after leaving the page")
	}
	if got := signalsOf(m, state.SignalNavigationChanged); !reflect.DeepEqual(got, []string{"fleets"}) {
		t.Fatalf("navigation signals = %v", got)
	}

	// Re-selecting the mounted page is a no-op.
	m = update(t, m, runes("3"))
	if got := signalsOf(m, state.SignalNavigationChanged); len(got) != 1 {
		t.Fatalf("navigation signals = %v, want one", got)
	}
}

func TestTabCyclesPages(t *testing.T) {
	m, _ := newTestModel(t, state.PageSettings)

	m = update(t, m, keyOf(tea.KeyTab))
	if m.shell.Active != state.PageOverview {
		t.Fatalf("tab from settings = %s, want overview", m.shell.Active)
	}
	m = update(t, m, keyOf(tea.KeyShiftTab))
	if m.shell.Active != state.PageSettings {
		t.Fatalf("shift+tab from overview = %s, want settings", m.shell.Active)
	}
}

func TestFleetsPageFilters(t *testing.T) {
	m, _ := newTestModel(t, state.PageFleets)

	m = update(t, m, runes("f"))
	m = update(t, m, runes("f"))
	if got, want := m.visibleIDs(), []string{"2"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("selector overlap fleets = %v, want %v", got, want)
	}

	view := m.View()
	for _, want := range []string{"Showing 1 of 4 fleets", "125/340", "Selector overlap", "Organization: Charlie Services"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}

	m = selectRow(t, m)
	if got := m.shell.Banner.Title(); got != "Fleet 2 selected" {
		t.Fatalf("banner title = %q", got)
	}
}

func TestAddDeviceModal(t *testing.T) {
	m, _ := newTestModel(t, state.PageDevices)

	m = update(t, m, runes("a"))
	if !m.shell.ModalOpen || m.modal == nil {
		t.Fatalf("expected modal open")
	}
	if got := signalsOf(m, state.SignalAddDeviceRequested); len(got) != 1 {
		t.Fatalf("add-device signals = %v", got)
	}
	if !strings.Contains(m.View(), "Enrollment request") {
		t.Fatalf("modal view missing enrollment request")
	}

	// Keys do not leak to the page while the modal is open.
	m = update(t, m, runes("3"))
	if m.shell.Active != state.PageDevices {
		t.Fatalf("modal leaked navigation")
	}

	m = update(t, m, keyOf(tea.KeyEsc))
	if m.shell.ModalOpen || m.modal != nil {
		t.Fatalf("expected modal closed")
	}

	m = update(t, m, runes("3"))
	m = update(t, m, runes("a"))
	if m.shell.ModalOpen {
		t.Fatalf("Add Device is only available on the Devices page")
	}
}

func TestSidebarAndThemeArePersisted(t *testing.T) {
	m, _ := newTestModel(t, state.PageOverview)
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m.prefsPath = path

	m = update(t, m, runes("b"))
	if m.shell.SidebarOpen {
		t.Fatalf("expected sidebar closed")
	}
	m = update(t, m, runes("T"))
	if m.theme.Name != "Nightfox" {
		t.Fatalf("theme = %q, want Nightfox", m.theme.Name)
	}

	saved := prefs.Load(path)
	if saved.SidebarOpen() {
		t.Fatalf("saved sidebar = open, want closed")
	}
	if saved.Theme != "Nightfox" {
		t.Fatalf("saved theme = %q, want Nightfox", saved.Theme)
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, state.PageOverview)

	m = update(t, m, runes("?"))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not rendered")
	}
	m = update(t, m, runes("j"))
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t, state.PageOverview)

	for _, msg := range []tea.KeyMsg{runes("e"), keyOf(tea.KeyCtrlC)} {
		_, cmd := updateCmd(t, m, msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", msg)
		}
	}
}

func TestOverviewRendersChartsAndCounts(t *testing.T) {
	m, _ := newTestModel(t, state.PageOverview)

	view := m.View()
	for _, want := range []string{
		"7250 devices",
		"Application Status",
		"System Update Status",
		"There are no active Alerts at this time",
		"8 devices in 4 fleets",
		"Healthy 4",
		"Firmware: latest v2.2.0",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("overview missing %q", want)
		}
	}
}

func TestSettingsShowsLogTail(t *testing.T) {
	m, _ := newTestModel(t, state.PageOverview)

	line := `{"level":"info","time":"2025-06-01T12:00:00Z","message":"console started"}` + "\n"
	if err := os.WriteFile(m.cfg.LogFile, []byte(line), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	m = update(t, m, runes("2"))
	m, cmd := updateCmd(t, m, runes("4"))
	if cmd == nil {
		t.Fatalf("expected log tail command")
	}
	m = update(t, m, cmd())

	view := m.View()
	for _, want := range []string{"console started", "navigation-changed(settings)", "Charlie Services"} {
		if !strings.Contains(view, want) {
			t.Fatalf("settings missing %q", want)
		}
	}
}
