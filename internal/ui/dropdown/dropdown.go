// Package dropdown renders the option list of a select widget. It holds no
// interaction state: the owner passes everything in through Props and keeps
// the returned Layout for hit testing clicks against the last render
package dropdown

import (
	"strconv"
	"strings"

	"combobox/internal/domain"
	"combobox/internal/styling"
	"combobox/internal/ui/textfield"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Sub-element names of the dropdown group
const (
	KeyDropdown      = "dropdown"
	KeySearchField   = "searchField"
	KeySearchControl = "searchControl"
	KeySearchIcon    = "searchIcon"
	KeyOptions       = "options"
	KeyOption        = "option"
)

// SearchIcon is drawn after the search input
const SearchIcon = "⌕"

// Props configures one render of the panel
type Props struct {
	Options    []domain.Option
	Show       bool
	Searchable bool
	Width      int // 0 sizes the panel to its content

	Styles  styling.StyleGroup
	Classes styling.ClassGroup
	Sheet   styling.Sheet

	// Field is the search input, owned by the caller so its text survives
	// while the panel is hidden. Required when Searchable
	Field *textfield.Model

	Select func(domain.Option)
	Search func(textfield.KeyEvent) tea.Cmd
	Match  func(domain.Option) bool
}

// DefaultStyles returns the built-in visual properties of the panel
func DefaultStyles(show bool, width int) styling.Defaults[styling.Props] {
	dropdown := styling.Props{
		styling.Border:           "normal",
		styling.BorderSides:      "false true true true",
		styling.BorderForeground: "240",
	}
	if width > 0 {
		dropdown[styling.Width] = strconv.Itoa(width)
	}
	if !show {
		dropdown[styling.Display] = "none"
	}

	return styling.Defaults[styling.Props]{
		KeyDropdown: styling.Some(dropdown),
		KeySearchField: styling.Some(styling.Props{
			styling.PaddingLeft:  "1",
			styling.PaddingRight: "1",
		}),
		KeySearchControl: styling.Some(styling.Props{
			styling.PaddingRight: "1",
		}),
		KeySearchIcon: styling.Some(styling.Props{
			styling.Foreground:  "241",
			styling.PaddingLeft: "1",
		}),
		KeyOptions: styling.Some(styling.Props{
			styling.MaxHeight: "8",
		}),
		KeyOption: styling.Some(styling.Props{
			styling.PaddingLeft:  "1",
			styling.PaddingRight: "1",
		}),
	}
}

// DefaultClasses returns the built-in class names of the panel, none
func DefaultClasses() styling.Defaults[styling.Classes] {
	return styling.Defaults[styling.Classes]{
		KeyDropdown:      styling.None[styling.Classes](),
		KeySearchField:   styling.None[styling.Classes](),
		KeySearchControl: styling.None[styling.Classes](),
		KeySearchIcon:    styling.None[styling.Classes](),
		KeyOptions:       styling.None[styling.Classes](),
		KeyOption:        styling.None[styling.Classes](),
	}
}

type rowSpan struct {
	top, bottom int // [top, bottom) in panel lines
	index       int // position in Props.Options
	option      domain.Option
}

// Layout records where option rows were drawn, relative to the first line of
// the panel
type Layout struct {
	Height int
	rows   []rowSpan
}

// OptionAt returns the option drawn on the given panel line
func (l Layout) OptionAt(line int) (domain.Option, bool) {
	for _, r := range l.rows {
		if line >= r.top && line < r.bottom {
			return r.option, true
		}
	}
	return domain.Option{}, false
}

// IndexAt returns the position in Props.Options of the option drawn on the
// given panel line, or -1
func (l Layout) IndexAt(line int) int {
	for _, r := range l.rows {
		if line >= r.top && line < r.bottom {
			return r.index
		}
	}
	return -1
}

// Rows returns the number of option rows drawn
func (l Layout) Rows() int {
	return len(l.rows)
}

// Render draws the panel. A hidden panel renders to "" with an empty layout,
// but the search field keeps its text
func Render(p Props) (string, Layout) {
	styles := styling.ResolveStyles(p.Styles, DefaultStyles(p.Show, p.Width))
	classes := styling.ResolveClasses(p.Classes, DefaultClasses())
	props := func(key string) styling.Props {
		return p.Sheet.Compose(classes.Lookup(key), styles.Lookup(key))
	}

	dropdown := props(KeyDropdown)
	if dropdown.Hidden() {
		return "", Layout{}
	}
	dropdownStyle := dropdown.Style()

	var parts []string
	line := topOffset(dropdownStyle)

	if p.Searchable && p.Field != nil {
		p.Field.Styles = styles.AsGroup(map[string]string{
			textfield.KeyField:   KeySearchField,
			textfield.KeyControl: KeySearchControl,
		})
		p.Field.Classes = classes.AsGroup(map[string]string{
			textfield.KeyField:   KeySearchField,
			textfield.KeyControl: KeySearchControl,
		})
		p.Field.Sheet = p.Sheet
		p.Field.Trailing = props(KeySearchIcon).Render(SearchIcon)

		search := p.Field.View()
		parts = append(parts, search)
		line += lipgloss.Height(search)
	}

	optionsProps := props(KeyOptions)
	optionsStyle := optionsProps.Style()
	limit := optionsProps.Int(styling.MaxHeight, 0)
	line += topOffset(optionsStyle)

	optionProps := props(KeyOption)
	var layout Layout
	var rows []string
	used := 0
	for i, opt := range p.Options {
		if p.Match == nil || !p.Match(opt) {
			continue
		}
		row := optionProps.Render(opt.Label)
		h := lipgloss.Height(row)
		if limit > 0 && used+h > limit {
			break
		}
		layout.rows = append(layout.rows, rowSpan{top: line + used, bottom: line + used + h, index: i, option: opt})
		rows = append(rows, row)
		used += h
	}

	if !optionsProps.Hidden() {
		parts = append(parts, optionsStyle.Render(strings.Join(rows, "\n")))
	} else {
		layout.rows = nil
	}

	out := dropdownStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	layout.Height = lipgloss.Height(out)
	return out, layout
}

// HandleClick selects the option drawn on the given panel line. It reports
// whether an option was hit
func HandleClick(p Props, layout Layout, line int) bool {
	opt, ok := layout.OptionAt(line)
	if !ok || p.Select == nil {
		return false
	}
	p.Select(opt)
	return true
}

// HandleKey routes a key press to the search field, which reports it to
// p.Search once applied
func HandleKey(p Props, msg tea.KeyMsg) tea.Cmd {
	if !p.Searchable || p.Field == nil {
		return nil
	}
	p.Field.OnKeyUp = p.Search
	return p.Field.Update(msg)
}

// topOffset is the number of lines a style adds above its content
func topOffset(s lipgloss.Style) int {
	return s.GetMarginTop() + s.GetBorderTopSize() + s.GetPaddingTop()
}
