package styling

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Property names understood by Props.Style
const (
	Foreground       = "foreground"
	Background       = "background"
	Border           = "border"
	BorderSides      = "border-sides"
	BorderForeground = "border-foreground"
	Bold             = "bold"
	Italic           = "italic"
	Faint            = "faint"
	Underline        = "underline"
	Padding          = "padding"
	PaddingTop       = "padding-top"
	PaddingRight     = "padding-right"
	PaddingBottom    = "padding-bottom"
	PaddingLeft      = "padding-left"
	MarginTop        = "margin-top"
	MarginBottom     = "margin-bottom"
	MarginLeft       = "margin-left"
	Width            = "width"
	MaxHeight        = "max-height"
	Display          = "display"
	Align            = "align"
)

// Props is a set of visual properties for one sub-element, keyed by property
// name. Unknown properties survive merges and are ignored when rendering
type Props map[string]string

// MergeProps returns base with every property of over applied on top. Neither
// argument is modified
func MergeProps(base, over Props) Props {
	out := make(Props, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Hidden reports whether the sub-element should not be drawn
func (p Props) Hidden() bool {
	return p[Display] == "none"
}

// Int returns an integer property, or def when unset or malformed
func (p Props) Int(key string, def int) int {
	v, ok := p[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// Validate checks the values of the properties Style understands
func (p Props) Validate() error {
	for _, k := range sortedKeys(p) {
		v := p[k]
		switch k {
		case Bold, Italic, Faint, Underline:
			if _, err := strconv.ParseBool(v); err != nil {
				return fmt.Errorf("property %s: %q is not a boolean", k, v)
			}
		case PaddingTop, PaddingRight, PaddingBottom, PaddingLeft,
			MarginTop, MarginBottom, MarginLeft, Width, MaxHeight:
			if _, err := strconv.Atoi(strings.TrimSpace(v)); err != nil {
				return fmt.Errorf("property %s: %q is not an integer", k, v)
			}
		case Padding:
			if _, err := parseInts(v, 4); err != nil {
				return fmt.Errorf("property %s: %w", k, err)
			}
		case BorderSides:
			if _, err := parseSides(v); err != nil {
				return fmt.Errorf("property %s: %w", k, err)
			}
		case Border:
			if _, ok := borderFor(v); !ok && v != "none" {
				return fmt.Errorf("property %s: unknown border %q", k, v)
			}
		case Align:
			if _, ok := alignFor(v); !ok {
				return fmt.Errorf("property %s: unknown alignment %q", k, v)
			}
		}
	}
	return nil
}

// Style converts the properties into a lipgloss style. Malformed values are
// skipped; use Validate to report them
func (p Props) Style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if len(p) == 0 {
		return s
	}

	if v, ok := p[Foreground]; ok && v != "" {
		s = s.Foreground(lipgloss.Color(v))
	}
	if v, ok := p[Background]; ok && v != "" {
		s = s.Background(lipgloss.Color(v))
	}
	if v, ok := p[Border]; ok {
		if b, ok := borderFor(v); ok {
			if sides, err := parseSides(p[BorderSides]); err == nil && sides != nil {
				s = s.Border(b, sides...)
			} else {
				s = s.Border(b)
			}
		}
	}
	if v, ok := p[BorderForeground]; ok && v != "" {
		s = s.BorderForeground(lipgloss.Color(v))
	}

	if b, ok := p.boolProp(Bold); ok {
		s = s.Bold(b)
	}
	if b, ok := p.boolProp(Italic); ok {
		s = s.Italic(b)
	}
	if b, ok := p.boolProp(Faint); ok {
		s = s.Faint(b)
	}
	if b, ok := p.boolProp(Underline); ok {
		s = s.Underline(b)
	}

	if v, ok := p[Padding]; ok {
		if n, err := parseInts(v, 4); err == nil {
			s = s.Padding(n...)
		}
	}
	if n, ok := p.intProp(PaddingTop); ok {
		s = s.PaddingTop(n)
	}
	if n, ok := p.intProp(PaddingRight); ok {
		s = s.PaddingRight(n)
	}
	if n, ok := p.intProp(PaddingBottom); ok {
		s = s.PaddingBottom(n)
	}
	if n, ok := p.intProp(PaddingLeft); ok {
		s = s.PaddingLeft(n)
	}
	if n, ok := p.intProp(MarginTop); ok {
		s = s.MarginTop(n)
	}
	if n, ok := p.intProp(MarginBottom); ok {
		s = s.MarginBottom(n)
	}
	if n, ok := p.intProp(MarginLeft); ok {
		s = s.MarginLeft(n)
	}
	if n, ok := p.intProp(Width); ok {
		s = s.Width(n)
	}
	if v, ok := p[Align]; ok {
		if a, ok := alignFor(v); ok {
			s = s.Align(a)
		}
	}
	return s
}

// Render draws text with the properties, or returns "" when hidden
func (p Props) Render(text string) string {
	if p.Hidden() {
		return ""
	}
	return p.Style().Render(text)
}

func (p Props) boolProp(key string) (bool, bool) {
	v, ok := p[key]
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

func (p Props) intProp(key string) (int, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseInts(v string, limit int) ([]int, error) {
	fields := strings.Fields(v)
	if len(fields) == 0 || len(fields) > limit {
		return nil, fmt.Errorf("expected 1 to %d integers, got %q", limit, v)
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", f)
		}
		out[i] = n
	}
	return out, nil
}

// parseSides reads "top right bottom left" flags such as "0 1 1 1". An empty
// string means all sides and yields nil
func parseSides(v string) ([]bool, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	fields := strings.Fields(v)
	if len(fields) > 4 {
		return nil, fmt.Errorf("expected at most 4 sides, got %q", v)
	}
	out := make([]bool, len(fields))
	for i, f := range fields {
		b, err := strconv.ParseBool(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a side flag", f)
		}
		out[i] = b
	}
	return out, nil
}

func borderFor(name string) (lipgloss.Border, bool) {
	switch name {
	case "normal":
		return lipgloss.NormalBorder(), true
	case "rounded":
		return lipgloss.RoundedBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "hidden":
		return lipgloss.HiddenBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}

func alignFor(name string) (lipgloss.Position, bool) {
	switch name {
	case "left":
		return lipgloss.Left, true
	case "center":
		return lipgloss.Center, true
	case "right":
		return lipgloss.Right, true
	default:
		return 0, false
	}
}
