package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderStatusKeepsText(t *testing.T) {
	s := NewStyles(2)
	for _, kind := range []StatusKind{StatusInfo, StatusSuccess, StatusError} {
		assert.Contains(t, s.RenderStatus(kind, "Saved"), "Saved")
	}
}

func TestBodyIndentsWidget(t *testing.T) {
	s := NewStyles(3)
	assert.Equal(t, "   x", s.Body.Render("x"))
}
