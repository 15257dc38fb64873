//go:build e2e && unix

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const colourConfig = `
version = 1
label = "Colour"
searchable = true

[ui]
mouse = true
save_on_select = true
search_hint = "Search"

[[options]]
label = "Red"
value = "red"
keyword = "red"

[[options]]
label = "Green"
value = "green"
keyword = "green"

[[options]]
label = "Blue"
value = "blue"
keyword = "blue"

[[options]]
label = "Black"
value = "black"
keyword = "black"
`

// Screen rows of the default layout: title, blank line, then the widget at
// column 2 with its label on row 2 and the bordered control on rows 3-5. The
// open dropdown starts on row 6 with the three row search box, so the first
// listed option is on row 9.
const (
	controlRow     = 4
	firstOptionRow = 9
	widgetColumn   = 4
)

func startColours(t *testing.T) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	path, err := tf.CreateWorkspace(colourConfig)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("--config", path))
	require.True(t, tf.Ready(), "Should receive ready signal")
	return tf
}

func TestShowsPlaceholder(t *testing.T) {
	t.Parallel()
	tf := startColours(t)
	defer tf.Cleanup()

	require.True(t, tf.SeePlain("combobox"), "Should show title")
	require.True(t, tf.SeePlain("Colour"), "Should show label")
	require.True(t, tf.SeePlain("Choose an Option"), "Should show placeholder")
}

func TestEnterOpensDropdown(t *testing.T) {
	t.Parallel()
	tf := startColours(t)
	defer tf.Cleanup()
	require.True(t, tf.SeePlain("Choose an Option"))

	mark := tf.Mark()
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlainSince(mark, "Green"), "Options should be listed once open")
	require.True(t, tf.SeePlainSince(mark, "dropdown opened"), "Toggle event should reach the status line")
}

func TestSearchThenClickSelects(t *testing.T) {
	t.Parallel()
	tf := startColours(t)
	defer tf.Cleanup()
	require.True(t, tf.SeePlain("Choose an Option"))

	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Green"))

	mark := tf.Mark()
	require.NoError(t, tf.Type("bl"))
	require.True(t, tf.SeePlainSince(mark, `query is "bl"`), "Query should settle")

	mark = tf.Mark()
	require.NoError(t, tf.Click(widgetColumn, firstOptionRow))
	require.True(t, tf.SeePlainSince(mark, "Selected Blue"), "Clicking the first filtered row selects Blue")
	require.True(t, tf.SeePlainSince(mark, "Saved"), "Selection should be saved")

	require.NoError(t, tf.Quit())
	require.True(t, tf.WaitExit(2*time.Second), "q should quit while closed")

	data, err := os.ReadFile(tf.ConfigPath())
	require.NoError(t, err)
	require.Contains(t, string(data), "last_selected = 2")
}

func TestClickControlToggles(t *testing.T) {
	t.Parallel()
	tf := startColours(t)
	defer tf.Cleanup()
	require.True(t, tf.SeePlain("Choose an Option"))

	mark := tf.Mark()
	require.NoError(t, tf.Click(widgetColumn, controlRow))
	require.True(t, tf.SeePlainSince(mark, "dropdown opened"))

	mark = tf.Mark()
	require.NoError(t, tf.Click(widgetColumn, controlRow))
	require.True(t, tf.SeePlainSince(mark, "dropdown closed"))
}

func TestErrorToggle(t *testing.T) {
	t.Parallel()
	tf := startColours(t)
	defer tf.Cleanup()
	require.True(t, tf.SeePlain("Choose an Option"))

	require.NoError(t, tf.SendKeys(KeyError))
	require.True(t, tf.SeePlain("This field is required"))
}

func TestCtrlCQuitsWhileOpen(t *testing.T) {
	t.Parallel()
	tf := startColours(t)
	defer tf.Cleanup()
	require.True(t, tf.SeePlain("Choose an Option"))

	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Green"))
	require.NoError(t, tf.Quit())
	time.Sleep(300 * time.Millisecond)
	require.NotNil(t, tf.cmd, "q is search text while open")

	require.NoError(t, tf.SendCtrlC())
	require.True(t, tf.WaitExit(2*time.Second))
}
