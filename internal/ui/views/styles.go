package views

import (
	"github.com/charmbracelet/lipgloss"
)

// StatusKind selects the colour of the status line
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// Styles contains the style definitions of the demo screen around the widget
type Styles struct {
	Title         lipgloss.Style
	Body          lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Event         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values. bodyIndent is
// the number of columns left of the widget
func NewStyles(bodyIndent int) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Body:          lipgloss.NewStyle().PaddingLeft(bodyIndent),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Event:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
}

// RenderStatus draws msg in the colour for kind
func (s *Styles) RenderStatus(kind StatusKind, msg string) string {
	switch kind {
	case StatusError:
		return s.StatusError.Render(msg)
	case StatusSuccess:
		return s.StatusSuccess.Render(msg)
	default:
		return s.Status.Render(msg)
	}
}
