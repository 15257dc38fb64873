package ui

import (
	"fmt"
	"log"

	"combobox/internal/config"
	"combobox/internal/domain"
	"combobox/internal/eventbus"
	"combobox/internal/ui/selectbox"
	"combobox/internal/ui/views"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Title is drawn on the first line of the screen
const Title = "combobox"

// DefaultError is shown by the error toggle when the config sets none
const DefaultError = "This field is required"

// where the widget is drawn
const (
	widgetX = 2
	widgetY = 2
)

// Model is the demo host: one select widget built from the config file, a
// status line and a key help footer
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService

	widget    *selectbox.Model
	keys      keyMap
	help      help.Model
	catalogue *CatalogueRenderer
	pager     *Pager
	styles    *views.Styles

	width         int
	height        int
	status        string
	statusKind    views.StatusKind
	lastEvent     string
	selectedIndex int

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the demo UI for cfg
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService) (*Model, error) {
	w, err := cfg.Widget()
	if err != nil {
		return nil, fmt.Errorf("failed to build widget: %w", err)
	}

	widget := selectbox.New(w.Options, w.Initial)
	widget.Value = w.Value
	widget.Searchable = cfg.Searchable
	widget.Label = cfg.Label
	widget.Placeholder = cfg.Placeholder
	widget.Error = cfg.Error
	widget.ErrorColor = cfg.ErrorColor
	if cfg.Width > 0 {
		widget.Width = cfg.Width
	}
	widget.Styles = w.Styles
	widget.Classes = w.Classes
	widget.Sheet = w.Sheet
	widget.Bus = bus
	widget.SetOrigin(widgetX, widgetY)
	widget.SearchField().SetPlaceholder(cfg.UISettings.SearchHint)

	m := &Model{
		bus:           bus,
		config:        cfg,
		configSvc:     configSvc,
		widget:        widget,
		keys:          newKeyMap(),
		help:          help.New(),
		catalogue:     NewCatalogueRenderer(),
		pager:         NewPager(nil),
		styles:        views.NewStyles(widgetX),
		selectedIndex: -1,
	}
	if cfg.LastSelected != nil && w.Initial != nil {
		m.selectedIndex = *cfg.LastSelected
	}

	widget.OnSelected = func(opt domain.Option) {
		log.Printf("selected %q", opt.Label)
	}
	widget.OnUpdate = func(value any) {
		log.Printf("value is now %v", value)
	}
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPager(p)
}

// Widget returns the embedded select widget
func (m *Model) Widget() *selectbox.Model {
	return m.widget
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.widget.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case selectbox.SelectedMsg:
		m.selectedIndex = msg.Index
		m.setStatus(views.StatusInfo, fmt.Sprintf("Selected %s", msg.Option.Label))
		m.config.RecordSelection(msg.Index)
		if m.config.UISettings.SaveOnSelect {
			return m, m.saveConfig()
		}
		return m, nil

	case configSavedMsg:
		if msg.err != nil {
			log.Printf("Failed to save config: %v", msg.err)
			m.setStatus(views.StatusError, fmt.Sprintf("Save failed: %v", msg.err))
			m.publish(eventbus.ErrorEvent{Message: "failed to save config", Err: msg.err})
		} else {
			m.setStatus(views.StatusSuccess, fmt.Sprintf("Saved %s", msg.path))
		}
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager error: %v", msg.err)
			m.setStatus(views.StatusError, fmt.Sprintf("Pager error: %v", msg.err))
		}
		return m, nil

	case EventMsg:
		m.lastEvent = describeEvent(msg.Event)
		return m, nil
	}

	_, cmd := m.widget.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Toggle) {
		_, cmd := m.widget.Update(msg)
		return m, cmd
	}

	// while open every other key is search input
	if m.widget.State().Open {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		_, cmd := m.widget.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Catalogue):
		return m, m.showCatalogue()

	case key.Matches(msg, m.keys.Error):
		if m.widget.Error != "" {
			m.widget.SetError("")
		} else if m.config.Error != "" {
			m.widget.SetError(m.config.Error)
		} else {
			m.widget.SetError(DefaultError)
		}

	case key.Matches(msg, m.keys.Pin):
		m.togglePin()

	case key.Matches(msg, m.keys.Save):
		return m, m.saveConfig()
	}
	return m, nil
}

// togglePin makes the current selection the controlled value, or releases it
func (m *Model) togglePin() {
	if m.widget.Value != nil {
		m.widget.SetValue(nil)
		m.setStatus(views.StatusInfo, "Value released")
		return
	}
	selected := m.widget.State().Selected
	if selected == nil {
		m.setStatus(views.StatusError, "Nothing selected to pin")
		return
	}
	m.widget.SetValue(selected)
	m.setStatus(views.StatusInfo, fmt.Sprintf("Value pinned to %s", selected.Label))
}

func (m *Model) setStatus(kind views.StatusKind, msg string) {
	m.status = msg
	m.statusKind = kind
}

func (m *Model) saveConfig() tea.Cmd {
	if m.configSvc == nil {
		return nil
	}
	snapshot := *m.config
	svc := m.configSvc
	return func() tea.Msg {
		err := svc.Save(&snapshot)
		return configSavedMsg{path: svc.Path(), err: err}
	}
}

func (m *Model) showCatalogue() tea.Cmd {
	content := m.catalogue.Render(m.config.Label, m.widget.Options, m.selectedIndex)
	pager := m.pager
	return func() tea.Msg {
		return pagerMsg{err: pager.Show(content)}
	}
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// View renders the UI
func (m *Model) View() string {
	header := m.styles.Title.Render(Title)

	body := m.styles.Body.Render(m.widget.View())

	var footer []string
	if m.status != "" {
		footer = append(footer, m.styles.RenderStatus(m.statusKind, m.status))
	}
	if m.lastEvent != "" {
		footer = append(footer, m.styles.Event.Render(m.lastEvent))
	}
	footer = append(footer, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		"",
		lipgloss.JoinVertical(lipgloss.Left, footer...),
	)
}

func describeEvent(e eventbus.DomainEvent) string {
	switch ev := e.(type) {
	case eventbus.OptionSelectedEvent:
		return fmt.Sprintf("event: option %d (%s) selected", ev.Index, ev.Option.Label)
	case eventbus.QueryChangedEvent:
		return fmt.Sprintf("event: query is %q", ev.Query)
	case eventbus.DropdownToggledEvent:
		if ev.Open {
			return "event: dropdown opened"
		}
		return "event: dropdown closed"
	case eventbus.ConfigLoadedEvent:
		return fmt.Sprintf("event: loaded %d options from %s", ev.Options, ev.Path)
	case eventbus.ConfigSavedEvent:
		return fmt.Sprintf("event: saved %s", ev.Path)
	case eventbus.ErrorEvent:
		return fmt.Sprintf("event: error: %s", ev.Message)
	default:
		return fmt.Sprintf("event: %s", e.Type())
	}
}
