package textfield

import (
	"combobox/internal/styling"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Sub-element names of a text field
const (
	KeyField   = "field"
	KeyControl = "control"
)

// KeyEvent is a key press the field has already applied to its value.
// Target is the field itself so receivers can read its settled value later
type KeyEvent struct {
	Msg    tea.KeyMsg
	Target *Model
}

// Model is a single line text entry with style overrides for its wrapper
// (field) and input box (control), and optional trailing decoration
type Model struct {
	input textinput.Model

	Styles   styling.StyleGroup
	Classes  styling.ClassGroup
	Sheet    styling.Sheet
	Trailing string

	// OnKeyUp receives every key message after the input consumed it
	OnKeyUp func(KeyEvent) tea.Cmd
}

// New creates an unfocused, empty text field
func New() *Model {
	ti := textinput.New()
	ti.Prompt = ""
	return &Model{input: ti}
}

// Value returns the current text
func (m *Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the current text
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
}

// SetPlaceholder sets the text shown while the field is empty
func (m *Model) SetPlaceholder(s string) {
	m.input.Placeholder = s
}

// Focus makes the field accept key messages
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur stops the field from accepting key messages
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the field accepts key messages
func (m *Model) Focused() bool {
	return m.input.Focused()
}

// Update applies msg to the input. While focused, key messages are then
// forwarded to OnKeyUp unchanged
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if key, ok := msg.(tea.KeyMsg); ok && m.OnKeyUp != nil && m.input.Focused() {
		cmds = append(cmds, m.OnKeyUp(KeyEvent{Msg: key, Target: m}))
	}
	return tea.Batch(cmds...)
}

func defaultStyles() styling.Defaults[styling.Props] {
	return styling.Defaults[styling.Props]{
		KeyField: styling.None[styling.Props](),
		KeyControl: styling.Some(styling.Props{
			styling.Border:           "normal",
			styling.BorderForeground: "241",
			styling.PaddingLeft:      "1",
			styling.PaddingRight:     "1",
		}),
	}
}

func defaultClasses() styling.Defaults[styling.Classes] {
	return styling.Defaults[styling.Classes]{
		KeyField:   styling.None[styling.Classes](),
		KeyControl: styling.None[styling.Classes](),
	}
}

// View renders the field. The trailing decoration sits to the right of the
// input box, inside the field wrapper
func (m *Model) View() string {
	styles := styling.ResolveStyles(m.Styles, defaultStyles())
	classes := styling.ResolveClasses(m.Classes, defaultClasses())

	field := m.Sheet.Compose(classes.Lookup(KeyField), styles.Lookup(KeyField))
	control := m.Sheet.Compose(classes.Lookup(KeyControl), styles.Lookup(KeyControl))

	box := control.Render(m.input.View())
	if m.Trailing != "" {
		box = lipgloss.JoinHorizontal(lipgloss.Center, box, m.Trailing)
	}
	return field.Render(box)
}
