package styling

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePropsOverrideWins(t *testing.T) {
	base := Props{"foreground": "1", "bold": "true"}
	over := Props{"foreground": "2", "width": "10"}

	got := MergeProps(base, over)

	assert.Equal(t, Props{"foreground": "2", "bold": "true", "width": "10"}, got)
	assert.Equal(t, Props{"foreground": "1", "bold": "true"}, base)
}

func TestPropsStyle(t *testing.T) {
	p := Props{
		Foreground:  "203",
		Bold:        "true",
		PaddingLeft: "2",
		Width:       "12",
		"unknown":   "ignored",
	}

	s := p.Style()

	assert.Equal(t, lipgloss.Color("203"), s.GetForeground())
	assert.True(t, s.GetBold())
	assert.Equal(t, 2, s.GetPaddingLeft())
	assert.Equal(t, 12, s.GetWidth())
}

func TestPropsPaddingShorthand(t *testing.T) {
	s := Props{Padding: "1 2"}.Style()

	assert.Equal(t, 1, s.GetPaddingTop())
	assert.Equal(t, 2, s.GetPaddingRight())
	assert.Equal(t, 1, s.GetPaddingBottom())
	assert.Equal(t, 2, s.GetPaddingLeft())
}

func TestPropsHiddenRendersNothing(t *testing.T) {
	assert.Equal(t, "", Props{Display: "none"}.Render("hello"))
	assert.Contains(t, Props{}.Render("hello"), "hello")
	assert.Contains(t, Props(nil).Render("hello"), "hello")
}

func TestPropsValidate(t *testing.T) {
	assert.NoError(t, Props{Bold: "true", Padding: "1 2 3 4", Border: "rounded", BorderSides: "0 1 1 1"}.Validate())
	assert.NoError(t, Props{Border: "none"}.Validate())

	assert.Error(t, Props{Bold: "yes please"}.Validate())
	assert.Error(t, Props{Width: "wide"}.Validate())
	assert.Error(t, Props{Padding: "1 2 3 4 5"}.Validate())
	assert.Error(t, Props{Border: "wavy"}.Validate())
	assert.Error(t, Props{Align: "justify"}.Validate())
}

func TestMergeClasses(t *testing.T) {
	assert.Equal(t, Classes("a b c"), MergeClasses("a b", "b c"))
	assert.Equal(t, Classes("x"), MergeClasses("", "x"))
	assert.Equal(t, Classes(""), MergeClasses("", ""))
}

func TestSheetCompose(t *testing.T) {
	sheet := Sheet{
		"accent": {Foreground: "99", Bold: "true"},
		"danger": {Foreground: "203"},
	}

	got := sheet.Compose(Some(Classes("accent danger missing")), Some(Props{Bold: "false"}))
	assert.Equal(t, Props{Foreground: "203", Bold: "false"}, got)

	assert.Nil(t, sheet.Compose(None[Classes](), None[Props]()))
	assert.Equal(t, Props{Foreground: "99", Bold: "true"}, sheet.Compose(Some(Classes("accent")), None[Props]()))
}

func TestDecodeGroupsFromTOML(t *testing.T) {
	doc := `
[styles]
option = { padding-left = 2, bold = true }
searchIcon = false
control = true

[classes]
control = "accent"
error = false
`
	var raw map[string]any
	require.NoError(t, toml.Unmarshal([]byte(doc), &raw))

	styles, err := DecodeStyleGroup(raw["styles"])
	require.NoError(t, err)
	option, ok := styles.Lookup("option").Value()
	require.True(t, ok)
	assert.Equal(t, Props{"padding-left": "2", "bold": "true"}, option)
	assert.True(t, styles.Lookup("searchIcon").IsDisabled())
	assert.True(t, styles.Lookup("control").IsAbsent())

	classes, err := DecodeClassGroup(raw["classes"])
	require.NoError(t, err)
	control, ok := classes.Lookup("control").Value()
	require.True(t, ok)
	assert.Equal(t, Classes("accent"), control)
	assert.True(t, classes.Lookup("error").IsDisabled())
}

func TestDecodeWholeGroupDisabled(t *testing.T) {
	var raw map[string]any
	require.NoError(t, toml.Unmarshal([]byte("styles = false\n"), &raw))

	styles, err := DecodeStyleGroup(raw["styles"])
	require.NoError(t, err)
	assert.True(t, styles.Disabled())

	none, err := DecodeStyleGroup(nil)
	require.NoError(t, err)
	assert.False(t, none.Disabled())
}

func TestDecodeErrors(t *testing.T) {
	_, err := DecodeStyleGroup(map[string]any{"option": "red"})
	assert.ErrorContains(t, err, "styles.option")

	_, err = DecodeStyleGroup(map[string]any{"option": map[string]any{"bold": "maybe"}})
	assert.ErrorContains(t, err, "bold")

	_, err = DecodeClassGroup(map[string]any{"control": 3})
	assert.ErrorContains(t, err, "classes.control")

	_, err = DecodeStyleGroup("nope")
	assert.Error(t, err)

	_, err = DecodeSheet(map[string]any{"bad": map[string]any{"width": "wide"}})
	var ruleErr *RuleError
	require.True(t, errors.As(err, &ruleErr))
	assert.Equal(t, "bad", ruleErr.Class)
}

func TestSheetErrorsReportFirstClassByName(t *testing.T) {
	bad := map[string]any{"width": "wide"}
	raw := map[string]any{"zebra": bad, "alpha": bad, "mango": bad}

	for i := 0; i < 20; i++ {
		_, err := DecodeSheet(raw)
		var ruleErr *RuleError
		require.True(t, errors.As(err, &ruleErr))
		assert.Equal(t, "alpha", ruleErr.Class)

		err = Sheet{"zebra": {"width": "wide"}, "alpha": {"width": "wide"}}.Validate()
		require.True(t, errors.As(err, &ruleErr))
		assert.Equal(t, "alpha", ruleErr.Class)
	}
}
