package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/flightdeck/internal/banner"
	"github.com/five82/flightdeck/internal/config"
	"github.com/five82/flightdeck/internal/dataset"
	"github.com/five82/flightdeck/internal/filter"
	"github.com/five82/flightdeck/internal/fleet"
	"github.com/five82/flightdeck/internal/logtail"
	"github.com/five82/flightdeck/internal/prefs"
	"github.com/five82/flightdeck/internal/selection"
	"github.com/five82/flightdeck/internal/state"
)

const (
	maxSignals  = 8
	logTailSize = 12
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Source       dataset.Source
	Config       config.Config
	Logger       zerolog.Logger
	Prefs        prefs.Prefs
	PrefsPath    string // empty disables saving preferences
	DatasetLabel string // where the dataset came from, shown on Settings
	Now          func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	cfg          config.Config
	logger       zerolog.Logger
	prefs        prefs.Prefs
	prefsPath    string
	datasetLabel string
	now          func() time.Time

	// Dataset, read once at startup
	devices []fleet.Device
	fleets  []fleet.Fleet

	// UI state
	shell    state.Shell
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	modal    Modal

	devicePage listPage
	fleetPage  listPage

	// Settings page
	signals    []state.Signal
	logTail    []string
	logTailErr error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	var (
		devices []fleet.Device
		fleets  []fleet.Fleet
	)
	if opts.Source != nil {
		devices = opts.Source.Devices()
		fleets = opts.Source.Fleets()
	}

	startPage := opts.Config.StartPage
	if !startPage.Valid() {
		startPage = state.PageOverview
	}

	return Model{
		cfg:          opts.Config,
		logger:       opts.Logger,
		prefs:        opts.Prefs,
		prefsPath:    opts.PrefsPath,
		datasetLabel: opts.DatasetLabel,
		now:          now,
		devices:      devices,
		fleets:       fleets,
		shell:        state.NewShell(startPage, opts.Prefs.SidebarOpen()),
		theme:        GetTheme(opts.Prefs.Theme),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		devicePage: newListPage(selection.KindDevice, "devices", "Search by name or location",
			deviceStatusValues(), deviceStatusLabel),
		fleetPage: newListPage(selection.KindFleet, "fleets", "Search by name",
			fleetStatusValues(), fleetStatusLabel),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.shell.Active == state.PageSettings {
		return loadLogTailCmd(m.cfg.LogFile)
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case selectedMsg:
		return m.notify(selection.Notification(msg))

	case bannerExpiredMsg:
		m.shell = m.shell.ExpireBanner(msg.token)
		return m, nil

	case logTailMsg:
		m.logTail = msg.lines
		m.logTailErr = msg.err
		return m, nil
	}

	// Cursor blink and other input messages go to the focused search box.
	if p := m.activeList(); p != nil && p.searching {
		cmd := p.updateSearch(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.shell.ModalOpen && m.modal != nil {
		return m.overlay(m.modal.View(m.theme, modalWidth-4), modalWidth)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.shell.ModalOpen {
		return m.handleModalKey(msg)
	}

	if p := m.activeList(); p != nil && p.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSidebar):
		m.shell = m.shell.ToggleSidebar()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.shell = m.shell.DismissBanner()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		return m.navigate(m.shell.NextPage())

	case key.Matches(msg, m.keys.PrevPage):
		return m.navigate(m.shell.PrevPage())

	case key.Matches(msg, m.keys.Overview):
		return m.navigate(m.shell.Navigate(state.PageOverview))

	case key.Matches(msg, m.keys.Devices):
		return m.navigate(m.shell.Navigate(state.PageDevices))

	case key.Matches(msg, m.keys.Fleets):
		return m.navigate(m.shell.Navigate(state.PageFleets))

	case key.Matches(msg, m.keys.Settings):
		return m.navigate(m.shell.Navigate(state.PageSettings))
	}

	if m.activeList() != nil {
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal == nil {
		m.shell = m.shell.CloseModal()
		return m, nil
	}
	modal, cmd, done := m.modal.Update(msg, m.keys)
	m.modal = modal
	if done {
		m.modal = nil
		m.shell = m.shell.CloseModal()
	}
	return m, cmd
}

// handleSearchKey edits the search box of the active list page.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.activeList()
	if key.Matches(msg, m.keys.Confirm, m.keys.Escape) {
		p.blurSearch()
		return m, nil
	}
	cmd := p.updateSearch(msg)
	p.clamp(m.visibleRows())
	return m, cmd
}

// handleListKey handles keys of the Devices and Fleets pages.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.activeList()
	rows := m.visibleRows()

	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := p.focusSearch()
		return m, cmd

	case key.Matches(msg, m.keys.CycleStatus):
		p.cycleStatus()
		p.clamp(m.visibleRows())
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		p.clearFilters()
		m.record(state.FiltersCleared())
		return m, nil

	case key.Matches(msg, m.keys.Up):
		p.move(-1, rows)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		p.move(1, rows)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		p.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		p.cursor = rows - 1
		p.clamp(rows)
		return m, nil

	case key.Matches(msg, m.keys.Select):
		id, ok := m.cursorID()
		if !ok {
			return m, nil
		}
		n := p.selection.Select(id)
		return m, func() tea.Msg { return selectedMsg(n) }

	case key.Matches(msg, m.keys.AddDevice):
		if m.shell.Active != state.PageDevices {
			return m, nil
		}
		var sig *state.Signal
		m.shell, sig = m.shell.OpenModal()
		m.modal = newAddDeviceModal()
		m.record(sig)
		return m, nil
	}
	return m, nil
}

// navigate applies a page transition. A nil signal means nothing changed.
func (m Model) navigate(next state.Shell, sig *state.Signal) (tea.Model, tea.Cmd) {
	if sig == nil {
		return m, nil
	}
	if p := m.listFor(m.shell.Active); p != nil {
		p.leave()
	}
	m.shell = next
	m.record(sig)
	if m.shell.Active == state.PageSettings {
		return m, loadLogTailCmd(m.cfg.LogFile)
	}
	return m, nil
}

// notify raises the banner for n and schedules its dismissal.
func (m Model) notify(n selection.Notification) (tea.Model, tea.Cmd) {
	var (
		tok banner.Token
		sig *state.Signal
	)
	m.shell, tok, sig = m.shell.Notify(n, m.now())
	m.record(sig)
	return m, expireBannerCmd(tok)
}

func (m *Model) record(sig *state.Signal) {
	if sig == nil {
		return
	}
	m.logger.Info().
		Str("signal", string(sig.Kind)).
		Str("arg", sig.Arg).
		Str("page", string(m.shell.Active)).
		Msg("shell signal")

	m.signals = append(m.signals, *sig)
	if len(m.signals) > maxSignals {
		m.signals = m.signals[len(m.signals)-maxSignals:]
	}
}

func (m *Model) savePrefs() {
	m.prefs.Theme = m.theme.Name
	m.prefs = m.prefs.WithSidebar(m.shell.SidebarOpen)
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn().Err(err).Str("path", m.prefsPath).Msg("save preferences")
	}
}

// activeList returns the state of the mounted list page, or nil.
func (m *Model) activeList() *listPage {
	return m.listFor(m.shell.Active)
}

func (m *Model) listFor(page state.Page) *listPage {
	switch page {
	case state.PageDevices:
		return &m.devicePage
	case state.PageFleets:
		return &m.fleetPage
	}
	return nil
}

func (m Model) visibleDevices() []fleet.Device {
	return filter.Devices(m.devices, m.devicePage.filter)
}

func (m Model) visibleFleets() []fleet.Fleet {
	return filter.Fleets(m.fleets, m.fleetPage.filter)
}

// visibleIDs returns the ids of the rows the active list page shows.
func (m Model) visibleIDs() []string {
	var ids []string
	switch m.shell.Active {
	case state.PageDevices:
		for _, d := range m.visibleDevices() {
			ids = append(ids, d.ID)
		}
	case state.PageFleets:
		for _, f := range m.visibleFleets() {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

func (m Model) visibleRows() int {
	return len(m.visibleIDs())
}

func (m Model) cursorID() (string, bool) {
	p := m.activeList()
	if p == nil {
		return "", false
	}
	ids := m.visibleIDs()
	if p.cursor < 0 || p.cursor >= len(ids) {
		return "", false
	}
	return ids[p.cursor], true
}

func deviceStatusValues() []string {
	out := make([]string, 0, len(fleet.DeviceStatuses))
	for _, s := range fleet.DeviceStatuses {
		out = append(out, string(s))
	}
	return out
}

func fleetStatusValues() []string {
	out := make([]string, 0, len(fleet.FleetStatuses))
	for _, s := range fleet.FleetStatuses {
		out = append(out, string(s))
	}
	return out
}

func deviceStatusLabel(value string) string {
	return fleet.DeviceStatus(value).Label()
}

func fleetStatusLabel(value string) string {
	return fleet.FleetStatus(value).Label()
}

// Messages

type selectedMsg selection.Notification

type bannerExpiredMsg struct {
	token banner.Token
}

type logTailMsg struct {
	lines []string
	err   error
}

// Commands

func expireBannerCmd(tok banner.Token) tea.Cmd {
	return tea.Tick(banner.Window, func(time.Time) tea.Msg {
		return bannerExpiredMsg{token: tok}
	})
}

func loadLogTailCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailSize)
		return logTailMsg{lines: logtail.FormatLines(lines), err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			// Interrupted from outside; not a failure.
			return nil
		}
		return err
	}
	return nil
}
