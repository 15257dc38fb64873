package selectbox

import (
	"log"
	"strconv"
	"sync/atomic"

	"combobox/internal/domain"
	"combobox/internal/eventbus"
	"combobox/internal/styling"
	"combobox/internal/ui/dropdown"
	"combobox/internal/ui/textfield"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Sub-element names of the select group
const (
	KeyContainer = "container"
	KeyLabel     = "label"
	KeyField     = "field"
	KeyControl   = "control"
	KeyError     = "error"
)

const (
	DefaultPlaceholder = "Choose an Option"
	DefaultErrorColor  = "#DC3545"
	DefaultWidth       = 30
	placeholderColor   = "#666666"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Model is a dropdown select widget. Exported fields are caller-controlled
// props and may be changed between updates; interaction state lives in the
// unexported state and only changes inside Update
type Model struct {
	id    int
	state State
	field *textfield.Model

	// Value, when set, is displayed instead of the internally selected
	// option on every render
	Value      *domain.Option
	Options    []domain.Option
	Searchable bool
	Label      string
	// Placeholder and ErrorColor fall back to their defaults when empty
	Placeholder string
	Error       string
	ErrorColor  string
	Width       int

	Styles  styling.StyleGroup
	Classes styling.ClassGroup
	Sheet   styling.Sheet

	OnSelected func(domain.Option)
	OnUpdate   func(value any)

	// Bus, when set, receives selection, query and toggle events
	Bus eventbus.EventBus

	// where the last View put things, for mouse hit testing
	originX, originY int
	viewWidth        int
	controlTop       int
	controlBottom    int
	dropdownTop      int
	dropdownLayout   dropdown.Layout

	// commands produced by callbacks during the current Update
	pending []tea.Cmd
}

// New creates a closed widget over options. initial, if not nil, is the
// option shown as selected until the user picks another
func New(options []domain.Option, initial *domain.Option) *Model {
	return &Model{
		id:      nextID(),
		state:   NewState(initial),
		field:   textfield.New(),
		Options: options,
		Width:   DefaultWidth,
	}
}

// ID identifies the widget in messages and events
func (m *Model) ID() int { return m.id }

// State returns a copy of the interaction state
func (m *Model) State() State { return m.state }

// SearchField exposes the search input, for hosts that want to set its
// placeholder
func (m *Model) SearchField() *textfield.Model { return m.field }

// SetValue sets the controlled value; nil hands display back to the
// internal selection
func (m *Model) SetValue(opt *domain.Option) {
	if opt == nil {
		m.Value = nil
		return
	}
	v := *opt
	m.Value = &v
}

// SetOptions replaces the option list. Query and selection are kept
func (m *Model) SetOptions(options []domain.Option) {
	m.Options = options
}

// SetError sets the message shown below the field; "" clears it
func (m *Model) SetError(msg string) {
	m.Error = msg
}

// SetOrigin tells the widget where its top-left corner is drawn on screen so
// mouse coordinates can be translated
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case settleMsg:
		if msg.id == m.id {
			m.applyQuery(msg.target.Value())
		}

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	default:
		// cursor blink and similar input housekeeping
		cmd = m.field.Update(msg)
	}

	cmds := append(m.pending, cmd)
	m.pending = nil
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEnter {
		return m.toggle()
	}
	if !m.state.Open {
		return nil
	}
	return dropdown.HandleKey(m.dropdownProps(), msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	x := msg.X - m.originX
	y := msg.Y - m.originY
	if x < 0 || x >= m.viewWidth {
		return nil
	}

	if y >= m.controlTop && y < m.controlBottom {
		return m.toggle()
	}

	line := y - m.dropdownTop
	index := m.dropdownLayout.IndexAt(line)
	props := m.dropdownProps()
	props.Select = func(opt domain.Option) {
		m.pending = append(m.pending, m.selectOption(index, opt))
	}
	dropdown.HandleClick(props, m.dropdownLayout, line)
	return nil
}

// toggle is the control surface activation
func (m *Model) toggle() tea.Cmd {
	m.state = m.state.Toggle()
	m.publish(eventbus.DropdownToggledEvent{WidgetID: m.id, Open: m.state.Open})
	if m.state.Open && m.Searchable {
		return m.field.Focus()
	}
	m.field.Blur()
	return nil
}

// search defers reading the field until the event loop's next turn
func (m *Model) search(e textfield.KeyEvent) tea.Cmd {
	id := m.id
	target := e.Target
	return func() tea.Msg {
		return settleMsg{id: id, target: target}
	}
}

func (m *Model) applyQuery(q string) {
	if q == m.state.Query {
		return
	}
	m.state = m.state.WithQuery(q)
	m.publish(eventbus.QueryChangedEvent{WidgetID: m.id, Query: q})
}

// match is the filter handed to the dropdown
func (m *Model) match(opt domain.Option) bool {
	return m.state.Match(opt)
}

// selectOption closes the dropdown, records opt and notifies listeners:
// OnSelected with the option, then OnUpdate with its value
func (m *Model) selectOption(index int, opt domain.Option) tea.Cmd {
	m.state = m.state.Select(opt)
	m.field.Blur()

	if m.OnSelected != nil {
		m.OnSelected(opt)
	}
	if m.OnUpdate != nil {
		m.OnUpdate(opt.Value)
	}

	log.Printf("select %d: chose %q (index %d)", m.id, opt.Label, index)
	m.publish(eventbus.OptionSelectedEvent{WidgetID: m.id, Index: index, Option: opt})

	id := m.id
	return func() tea.Msg {
		return SelectedMsg{ID: id, Index: index, Option: opt}
	}
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.Bus != nil {
		m.Bus.Publish(e)
	}
}

func (m *Model) dropdownProps() dropdown.Props {
	return dropdown.Props{
		Options:    m.Options,
		Show:       m.state.Open,
		Searchable: m.Searchable,
		Width:      m.Width,
		Styles:     m.Styles,
		Classes:    m.Classes,
		Sheet:      m.Sheet,
		Field:      m.field,
		Select: func(opt domain.Option) {
			m.pending = append(m.pending, m.selectOption(-1, opt))
		},
		Search: m.search,
		Match:  m.match,
	}
}

func (m *Model) errorColor() string {
	if m.ErrorColor != "" {
		return m.ErrorColor
	}
	return DefaultErrorColor
}

func (m *Model) placeholder() string {
	if m.Placeholder != "" {
		return m.Placeholder
	}
	return DefaultPlaceholder
}

// DefaultStyles returns the built-in visual properties of the widget for the
// given error state
func DefaultStyles(hasError bool, errorColor string, width int) styling.Defaults[styling.Props] {
	container := styling.Props{}
	control := styling.Props{
		styling.Border:           "normal",
		styling.BorderForeground: "250",
		styling.PaddingLeft:      "1",
		styling.PaddingRight:     "1",
	}
	if width > 0 {
		control[styling.Width] = strconv.Itoa(width)
	}
	if hasError {
		container[styling.Foreground] = errorColor
		control[styling.BorderForeground] = errorColor
		control[styling.Foreground] = errorColor
	}

	return styling.Defaults[styling.Props]{
		KeyContainer: styling.Some(container),
		KeyLabel:     styling.Some(styling.Props{styling.Bold: "true"}),
		KeyField:     styling.None[styling.Props](),
		KeyControl:   styling.Some(control),
		KeyError:     styling.None[styling.Props](),
	}
}

// DefaultClasses returns the built-in class names of the widget, none
func DefaultClasses() styling.Defaults[styling.Classes] {
	return styling.Defaults[styling.Classes]{
		KeyContainer: styling.None[styling.Classes](),
		KeyLabel:     styling.None[styling.Classes](),
		KeyField:     styling.None[styling.Classes](),
		KeyControl:   styling.None[styling.Classes](),
		KeyError:     styling.None[styling.Classes](),
	}
}

// displayLabel returns the text for the control and whether it is the
// placeholder. The Value prop wins over the internal selection
func (m *Model) displayLabel() (string, bool) {
	if m.Value != nil && m.Value.Label != "" {
		return m.Value.Label, false
	}
	if m.state.Selected != nil && m.state.Selected.Label != "" {
		return m.state.Selected.Label, false
	}
	return m.placeholder(), true
}

// View implements tea.Model
func (m *Model) View() string {
	hasError := m.Error != ""
	styles := styling.ResolveStyles(m.Styles, DefaultStyles(hasError, m.errorColor(), m.Width))
	classes := styling.ResolveClasses(m.Classes, DefaultClasses())
	props := func(key string) styling.Props {
		return m.Sheet.Compose(classes.Lookup(key), styles.Lookup(key))
	}

	containerStyle := props(KeyContainer).Style()
	fieldStyle := props(KeyField).Style()

	var parts []string
	line := containerStyle.GetMarginTop() + containerStyle.GetBorderTopSize() + containerStyle.GetPaddingTop()

	if m.Label != "" {
		label := props(KeyLabel).Render(m.Label)
		parts = append(parts, label)
		line += lipgloss.Height(label)
	}

	line += fieldStyle.GetMarginTop() + fieldStyle.GetBorderTopSize() + fieldStyle.GetPaddingTop()

	text, isPlaceholder := m.displayLabel()
	if isPlaceholder {
		text = lipgloss.NewStyle().Foreground(lipgloss.Color(placeholderColor)).Render(text)
	}
	controlProps := props(KeyControl)
	controlStyle := controlProps.Style()
	control := controlProps.Render(text)
	// margins are drawn but not clickable
	m.controlTop = line + controlStyle.GetMarginTop()
	m.controlBottom = line + lipgloss.Height(control) - controlStyle.GetMarginBottom()

	panel, layout := dropdown.Render(m.dropdownProps())
	m.dropdownTop = line + lipgloss.Height(control)
	m.dropdownLayout = layout

	fieldParts := []string{control}
	if panel != "" {
		fieldParts = append(fieldParts, panel)
	}
	parts = append(parts, fieldStyle.Render(lipgloss.JoinVertical(lipgloss.Left, fieldParts...)))

	if hasError {
		parts = append(parts, props(KeyError).Render(m.Error))
	}

	out := containerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	m.viewWidth = lipgloss.Width(out)
	return out
}
