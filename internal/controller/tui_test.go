package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

func TestTUI_WritesDirectlyWhenNotAFile(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewTUI(cmd)

	results := []m.CheckResult{
		{Target: m.LookupPath{File: "m.go", Function: "F"}, Status: m.Changed, Current: "func F() int { return 2 }", Previous: "func F() int { return 1 }"},
		{Target: m.LookupPath{File: "m.go", Function: "G"}, Status: m.Stale, Err: errors.New("declaration not found")},
	}

	require.NoError(t, ui.DisplayResults(context.Background(), results, true))

	output := out.String()
	assert.Contains(t, output, "The function F has changed.")
	assert.Contains(t, output, "return 2")
	assert.Contains(t, output, "The function G could not be checked (stale): declaration not found")
}

func TestTUI_DisplayTreeAndScan(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewTUI(cmd)

	require.NoError(t, ui.DisplayScan(context.Background(), sampleDiscovery(), "snap.json"))
	require.NoError(t, ui.DisplayTree(context.Background(), sampleDiscovery()))
	ui.DisplayPromotion(context.Background(), "cur.json", "prev.json")
	ui.DisplayBaselineMissing(context.Background(), "prev.json")

	output := out.String()
	assert.Contains(t, output, "pkg/util/util.go")
	assert.Contains(t, output, "snapshot written to snap.json")
	assert.Contains(t, output, "broken.go (import failed)")
	assert.Contains(t, output, "promoted cur.json")
	assert.Contains(t, output, "No baseline snapshot available at prev.json")
}

// terminalTUI returns a TUI writing to a regular file that it treats as a
// terminal of the given height.
func terminalTUI(t *testing.T, height int) (*TUI, *os.File) {
	t.Helper()

	out, err := os.CreateTemp(t.TempDir(), "tty")
	require.NoError(t, err)
	t.Cleanup(func() { _ = out.Close() })

	cmd := &cobra.Command{}
	cmd.SetOut(out)

	ui := NewTUI(cmd)
	ui.input = out
	ui.isTerminal = func(int) bool { return true }
	ui.size = func(int) (int, int, error) { return 80, height, nil }

	return ui, out
}

func TestTUI_CheckOutputIsNeverPaged(t *testing.T) {
	ui, out := terminalTUI(t, 5)

	results := make([]m.CheckResult, 0, 40)
	for i := range 40 {
		results = append(results, m.CheckResult{
			Target: m.LookupPath{File: "m.go", Function: fmt.Sprintf("F%d", i)},
			Status: m.Unchanged,
		})
	}

	require.NoError(t, ui.DisplayScan(context.Background(), sampleDiscovery(), "snap.json"))
	require.NoError(t, ui.DisplayResults(context.Background(), results, false))

	written, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	assert.Contains(t, string(written), "snapshot written to snap.json")
	assert.Contains(t, string(written), "The function F0 has not changed.")
	assert.Contains(t, string(written), "The function F39 has not changed.")
}

func TestTUI_Pageable(t *testing.T) {
	tall := strings.Repeat("line\n", 10)

	ui, _ := terminalTUI(t, 5)
	_, ok := ui.pageable(tall)
	assert.True(t, ok)

	_, ok = ui.pageable("short\n")
	assert.False(t, ok, "content that fits is printed")

	ui, _ = terminalTUI(t, 5)
	ui.isTerminal = func(fd int) bool { return fd != int(os.Stdin.Fd()) }
	ui.input = os.Stdin
	_, ok = ui.pageable(tall)
	assert.False(t, ok, "no pager without interactive input")

	ui, _ = terminalTUI(t, 5)
	ui.input = nil
	_, ok = ui.pageable(tall)
	assert.False(t, ok)

	cmd, _ := newTestCommand()
	_, ok = NewTUI(cmd).pageable(tall)
	assert.False(t, ok, "a buffer is never paged")
}

func TestColorDiff_KeepsLines(t *testing.T) {
	diff := "--- a\n+++ b\n@@ -1 +1 @@\n-old\n+new\n"

	colored := colorDiff(diff)

	assert.Equal(t, strings.Count(diff, "\n"), strings.Count(colored, "\n"))
	assert.Contains(t, colored, "old")
	assert.Contains(t, colored, "new")
}

func TestPagerModel(t *testing.T) {
	model := newPagerModel("Results", strings.Repeat("line\n", 100))

	assert.Equal(t, "\n  Loading...", model.View())

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	pager := updated.(pagerModel)

	require.True(t, pager.ready)
	assert.Equal(t, 20, pager.viewport.Height)
	assert.Contains(t, pager.View(), "Results")

	updated, _ = pager.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	pager = updated.(pagerModel)
	assert.Equal(t, 36, pager.viewport.Height)
	assert.Equal(t, 100, pager.viewport.Width)

	_, cmd := pager.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
