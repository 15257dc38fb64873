package selectbox

import (
	"combobox/internal/domain"
	"combobox/internal/ui/textfield"
)

// SelectedMsg is emitted after an option is chosen through the widget
type SelectedMsg struct {
	ID     int
	Index  int
	Option domain.Option
}

// settleMsg carries a search key press back one turn later so the field's
// value is read after it has settled
type settleMsg struct {
	id     int
	target *textfield.Model
}
