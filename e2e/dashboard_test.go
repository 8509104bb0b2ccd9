//go:build e2e && unix

package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Default sample: 137 drivers, 412 orders, 10 rows per page
const firstDriverPage = "1–10 of 137"

func startDashboard(t *testing.T, args ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	require.NoError(t, tf.StartApp(args...), "Failed to start app")
	if !tf.Ready() {
		tf.DumpTailOnFail(t, "startup", 4096)
		t.Fatal("dashboard did not render its first frame")
	}
	return tf
}

func TestStartupShowsDriversTable(t *testing.T) {
	t.Parallel()
	tf := startDashboard(t)

	require.True(t, tf.SeePlain(firstDriverPage), "Should show the pager summary")
	require.True(t, tf.SeePlain("Orders"), "Should show the orders tab")
	require.True(t, tf.SeePlain("Name"), "Should show the default columns")
	require.True(t, tf.SeePlain("D001"), "Should show the first driver")
}

func TestPageKeys(t *testing.T) {
	t.Parallel()
	tf := startDashboard(t)

	mark := tf.Mark()
	tf.SendKeys("l")
	require.True(t, tf.SeePlainAfter(mark, "11–20 of 137"), "l should go to page 2")

	mark = tf.Mark()
	tf.SendKeys("]")
	require.True(t, tf.SeePlainAfter(mark, "131–137 of 137"), "] should go to the last page")

	mark = tf.Mark()
	tf.SendKeys("[")
	require.True(t, tf.SeePlainAfter(mark, firstDriverPage), "[ should go back to page 1")
}

func TestPageSizePicker(t *testing.T) {
	t.Parallel()
	tf := startDashboard(t)

	tf.SendKeys("p")
	require.True(t, tf.SeePlain("Rows per page"), "p should open the page size picker")

	mark := tf.Mark()
	tf.SendKeys("3")
	require.True(t, tf.SeePlainAfter(mark, "1–50 of 137"), "3 should pick 50 rows per page")
}

func TestSearchSettlesAfterTyping(t *testing.T) {
	t.Parallel()
	tf := startDashboard(t)

	tf.SendKeys("/")
	require.True(t, tf.SeePlain("Search:"), "/ should open the search box")

	mark := tf.Mark()
	require.NoError(t, tf.Type("harbor", 20*time.Millisecond))
	require.True(t, tf.SeePlainAfter(mark, "[Search: harbor]"), "query should settle after the debounce")

	tf.SendEnter()
	mark = tf.Mark()
	tf.SendKeys(KeyEsc)
	require.True(t, tf.SeePlainAfter(mark, firstDriverPage), "esc in normal mode should clear the search")
}

func TestShortSearchIsIgnored(t *testing.T) {
	t.Parallel()
	tf := startDashboard(t)

	tf.SendKeys("/")
	require.NoError(t, tf.Type("ha", 20*time.Millisecond))
	time.Sleep(800 * time.Millisecond)

	assert.NotContains(t, tf.SnapshotPlain(), "[Search: ha]")
}

func TestSwitchToOrders(t *testing.T) {
	t.Parallel()
	tf := startDashboard(t)

	mark := tf.Mark()
	tf.SendKeys(KeyTab)
	require.True(t, tf.SeePlainAfter(mark, "Customer"), "tab should switch to the orders table")
	require.True(t, tf.SeePlainAfter(mark, "1–10 of 412"), "orders should have their own pager")
}

func TestKeyboardColumnReorder(t *testing.T) {
	t.Parallel()
	tf := startDashboard(t)

	tf.SendKeys(">>")
	tf.SendKeys("m")
	require.True(t, tf.SeePlain("Move column"), "m should start moving the focused column")

	mark := tf.Mark()
	tf.SendKeys(KeyLeft + KeyLeft)
	tf.SendEnter()
	require.True(t, tf.SeePatternAfter(mark, `Status +Name +Vehicle`), "Status should move in front of Name")
}

func TestMouseColumnDrag(t *testing.T) {
	t.Parallel()
	tf := startDashboard(t)

	// Default header cells: Name at x=1, Vehicle at x=20, Status at x=30
	mark := tf.Mark()
	tf.SendMouse(0, 32, headerRow, false)
	tf.SendMouse(32, 10, headerRow, false)
	tf.SendMouse(32, 3, headerRow, false)
	tf.SendMouse(0, 3, headerRow, true)

	if !tf.SeePatternAfter(mark, `Status +Name +Vehicle`) {
		tf.DumpTailOnFail(t, "mouse-drag", 4096)
		t.Fatal("dragging Status onto the left half of Name should move it first")
	}
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := startDashboard(t)

	tf.SendKeys(KeyHelp)
	require.True(t, tf.SeePlain("dispatchdash help"), "? should open the help pager")

	mark := tf.Mark()
	tf.Quit()
	require.True(t, tf.SeePlainAfter(mark, "per page"), "Should return to the table after closing help")
}

func TestQuitExits(t *testing.T) {
	t.Parallel()
	tf := startDashboard(t)

	tf.SendKeys("/")
	require.NoError(t, tf.Type("abc", 10*time.Millisecond))
	tf.SendCtrlC()

	require.NoError(t, tf.WaitExit(2*time.Second), "ctrl+c should quit with a pending search")
}

func TestConfigPageSize(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)
	require.NoError(t, tf.WriteConfig("[table]\npage_size = 20\n"))

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "dashboard did not render its first frame")
	require.True(t, tf.SeePlain("1–20 of 137"), "page size should come from the config file")
}

func TestListCommand(t *testing.T) {
	t.Parallel()

	cmd := exec.Command(binPath, "list", "--table", "orders", "--page", "3", "--json")
	cmd.Env = append(os.Environ(), "DISPATCHDASH_CONFIG="+filepath.Join(t.TempDir(), "none.toml"))
	out, err := cmd.Output()
	require.NoError(t, err)

	var doc struct {
		Table      string              `json:"table"`
		Rows       []map[string]string `json:"rows"`
		Pagination struct {
			CurrentPage int `json:"current_page"`
			TotalItems  int `json:"total_items"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "orders", doc.Table)
	assert.Equal(t, 3, doc.Pagination.CurrentPage)
	assert.Equal(t, 412, doc.Pagination.TotalItems)
	assert.Len(t, doc.Rows, 10)
}

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	assert.True(t, strings.Contains(output, "Usage"), "Help should contain usage information")
	assert.Contains(t, output, "list")
	assert.Contains(t, output, "--seed")
}
