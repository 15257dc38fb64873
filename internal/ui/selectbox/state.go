package selectbox

import "combobox/internal/domain"

// State is everything the widget owns. Transitions return a new value and
// never touch the receiver
type State struct {
	Open     bool
	Query    string
	Selected *domain.Option
}

// NewState returns the closed initial state, preselecting initial if given
func NewState(initial *domain.Option) State {
	s := State{}
	if initial != nil {
		opt := *initial
		s.Selected = &opt
	}
	return s
}

// Toggle flips Open. Query and Selected are untouched
func (s State) Toggle() State {
	s.Open = !s.Open
	return s
}

// Select stores opt and always closes the dropdown
func (s State) Select(opt domain.Option) State {
	s.Open = false
	s.Selected = &opt
	return s
}

// WithQuery replaces the search text. Open is untouched
func (s State) WithQuery(q string) State {
	s.Query = q
	return s
}

// Match reports whether opt passes the current query
func (s State) Match(opt domain.Option) bool {
	return opt.Keyword.Matches(s.Query)
}
