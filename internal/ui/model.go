package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quicklaunch/internal/domain"
	"quicklaunch/internal/eventbus"
	"quicklaunch/internal/filter"
	"quicklaunch/internal/input"
	"quicklaunch/internal/selection"
	"quicklaunch/internal/ui/views"
)

// Options configures a Model
type Options struct {
	Policy        selection.Policy
	CloseOnLaunch bool
	MaxVisible    int
	Placeholder   string
	KeyMap        *input.KeyMap // nil means input.DefaultKeyMap()

	// RequestScan is called when the user asks for a rescan
	RequestScan func()
}

// Model represents the UI state
type Model struct {
	out      *signals
	machine  *selection.Machine
	keys     input.KeyMap
	query    textinput.Model
	help     help.Model
	renderer *views.Renderer

	catalog    domain.Catalog
	view       domain.FilteredView
	hasScanned bool

	// Generations of the newest scan started and the catalog on screen.
	// A catalog older than either is stale.
	latestScan uint64
	applied    uint64

	offset        int
	maxVisible    int
	closeOnLaunch bool
	requestScan   func()

	status     string
	statusKind views.StatusKind
	quitting   bool
}

// NewModel creates a new UI model that reports launches and dismissals to out
func NewModel(out selection.Dispatcher, opts Options) *Model {
	keys := input.DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}

	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.Prompt = ""
	ti.Focus()

	sig := &signals{next: out}
	return &Model{
		out:           sig,
		machine:       selection.New(opts.Policy, sig),
		keys:          keys,
		query:         ti,
		help:          help.New(),
		renderer:      views.NewRenderer(),
		view:          domain.FilteredView{},
		maxVisible:    opts.MaxVisible,
		closeOnLaunch: opts.CloseOnLaunch,
		requestScan:   opts.RequestScan,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.query.Width = max(0, msg.Width-6)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Refresh):
		if m.requestScan != nil {
			m.requestScan()
		}
		return m, nil
	}

	if action := m.keys.Action(msg); action != selection.ActionNone {
		m.machine.Apply(action, m.view)
		m.scroll()
		return m, m.afterSignals()
	}

	before := m.query.Value()
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	if m.query.Value() != before {
		m.view = filter.Filter(m.catalog, m.query.Value())
		m.machine.QueryChanged(len(m.view))
		m.scroll()
	}
	return m, cmd
}

// afterSignals turns the machine's outgoing signals into program commands
func (m *Model) afterSignals() tea.Cmd {
	launched, dismissed := m.out.take()
	if dismissed || (launched && m.closeOnLaunch) {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ScanStartedEvent:
		if e.Generation > m.latestScan {
			m.latestScan = e.Generation
			m.setStatus("scanning...", views.StatusLoading)
		}

	case eventbus.CatalogDiscoveredEvent:
		if e.Generation <= m.applied || e.Generation < m.latestScan {
			log.Printf("Ignoring stale catalog from scan %s (generation %d)", e.ScanID, e.Generation)
			return
		}
		m.applyCatalog(e.Generation, e.Catalog)

	case eventbus.ScanAbandonedEvent:
		if e.Generation == m.latestScan && m.statusKind == views.StatusLoading {
			m.setStatus("", views.StatusInfo)
		}

	case eventbus.AppLaunchedEvent:
		m.setStatus("launched "+e.Entry.Name, views.StatusInfo)

	case eventbus.LaunchFailedEvent:
		m.setStatus(fmt.Sprintf("could not launch %s: %v", e.Entry.Name, e.Err), views.StatusError)

	case eventbus.ErrorEvent:
		m.setStatus(e.Message, views.StatusError)
	}
}

func (m *Model) applyCatalog(generation uint64, catalog domain.Catalog) {
	m.applied = generation
	m.latestScan = max(m.latestScan, generation)
	m.catalog = catalog
	m.hasScanned = true
	m.view = filter.Filter(m.catalog, m.query.Value())
	m.machine.Clamp(len(m.view))
	m.scroll()
	if m.statusKind == views.StatusLoading {
		m.setStatus("", views.StatusInfo)
	}
}

func (m *Model) setStatus(text string, kind views.StatusKind) {
	m.status = text
	m.statusKind = kind
}

func (m *Model) scroll() {
	m.offset = views.Scroll(m.offset, m.machine.Index(), m.maxVisible, len(m.view))
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(views.ViewState{
		Input:      m.query.View(),
		Query:      m.query.Value(),
		Rows:       m.view,
		Selected:   m.machine.Index(),
		Offset:     m.offset,
		MaxVisible: m.maxVisible,
		Total:      len(m.catalog),
		Status:     m.status,
		StatusKind: m.statusKind,
		HelpView:   m.help.View(m.keys),
		HasScanned: m.hasScanned,
	})
}

// Query returns the current query text
func (m *Model) Query() string {
	return m.query.Value()
}

// Visible returns the current filtered view
func (m *Model) Visible() domain.FilteredView {
	return m.view
}

// Selected returns the selected entry, if any
func (m *Model) Selected() (domain.AppEntry, bool) {
	return m.machine.Selected(m.view)
}
