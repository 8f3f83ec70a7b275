package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	changedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	unchangedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Italic(true)

	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// pagerChrome is the number of lines used by the pager header and footer.
const pagerChrome = 4

// TUI implements UI with lipgloss styling. Scan and check output is always
// printed straight to the command's output. Only the directory tree may open
// a scrollable Bubble Tea pager, and only when someone can answer it.
type TUI struct {
	cmd        *cobra.Command
	input      *os.File
	isTerminal func(fd int) bool
	size       func(fd int) (width, height int, err error)
}

// NewTUI creates a new TUI reading keys from stdin.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		cmd:        cmd,
		input:      os.Stdin,
		isTerminal: term.IsTerminal,
		size:       term.GetSize,
	}
}

// DisplayScan shows the scan summary table and import failures.
func (t *TUI) DisplayScan(ctx context.Context, discovery m.Discovery, snapshot m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Scanned " + string(discovery.Root)))
	b.WriteString("\n")
	b.WriteString(renderScanTable(discovery))

	for _, failure := range discovery.Failures {
		b.WriteString(errorStyle.Render("✗ import failed: " + failure.Error()))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("snapshot written to " + string(snapshot)))
	b.WriteString("\n")

	return t.print(b.String())
}

// DisplayBaselineMissing reports that no previous snapshot exists yet.
func (t *TUI) DisplayBaselineMissing(ctx context.Context, previous m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintln(t.out(), changedStyle.Render("No baseline snapshot available at "+string(previous)+"; nothing to compare."))
	_, _ = fmt.Fprintln(t.out(), hintStyle.Render("run `funcsnap promote` to make the current snapshot the baseline"))
}

// DisplayResults shows one styled line per target, with optional diffs.
func (t *TUI) DisplayResults(ctx context.Context, results []m.CheckResult, showDiff bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(results) == 0 {
		_, err := fmt.Fprintln(t.out(), hintStyle.Render("No targets configured."))
		return err
	}

	var b strings.Builder

	for _, result := range results {
		line := resultLine(result)

		switch result.Status {
		case m.Changed:
			b.WriteString(changedStyle.Render("● " + line))
		case m.Unchanged:
			b.WriteString(unchangedStyle.Render("✓ " + line))
		default:
			b.WriteString(errorStyle.Render("✗ " + line))
		}

		b.WriteString("\n")

		if showDiff && result.Status == m.Changed {
			diff, err := unifiedDiff(result)
			if err != nil {
				return err
			}

			b.WriteString(colorDiff(diff))
		}
	}

	return t.print(b.String())
}

func colorDiff(diff string) string {
	var b strings.Builder

	for _, line := range strings.SplitAfter(diff, "\n") {
		trimmed := strings.TrimSuffix(line, "\n")

		switch {
		case trimmed == "":
			b.WriteString(line)
			continue
		case strings.HasPrefix(trimmed, "+++"), strings.HasPrefix(trimmed, "---"), strings.HasPrefix(trimmed, "@@"):
			b.WriteString(hintStyle.Render(trimmed))
		case strings.HasPrefix(trimmed, "+"):
			b.WriteString(addedStyle.Render(trimmed))
		case strings.HasPrefix(trimmed, "-"):
			b.WriteString(removedStyle.Render(trimmed))
		default:
			b.WriteString(trimmed)
		}

		b.WriteString("\n")
	}

	return b.String()
}

// DisplayTree shows the scanned directory structure.
func (t *TUI) DisplayTree(ctx context.Context, discovery m.Discovery) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := titleStyle.Render(string(discovery.Root)) + "\n" + buildTree(discovery).String()

	return t.page("Directory tree", content)
}

// DisplayPromotion confirms that a snapshot became the new baseline.
func (t *TUI) DisplayPromotion(ctx context.Context, from, to m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintln(t.out(), unchangedStyle.Render("✓ promoted "+string(from)+" → "+string(to)))
}

func (t *TUI) out() io.Writer {
	return t.cmd.OutOrStdout()
}

func (t *TUI) print(content string) error {
	_, err := fmt.Fprint(t.out(), content)
	return err
}

// page opens a pager for content taller than the terminal and prints it
// directly otherwise. The content is printed after the pager closes as well,
// since the alternate screen is discarded on exit.
func (t *TUI) page(title, content string) error {
	f, ok := t.pageable(content)
	if !ok {
		return t.print(content)
	}

	program := tea.NewProgram(
		newPagerModel(title, content),
		tea.WithInput(t.input),
		tea.WithOutput(f),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return err
	}

	return t.print(content)
}

// pageable returns the terminal to page on. Paging needs an interactive
// input and an output terminal shorter than content.
func (t *TUI) pageable(content string) (*os.File, bool) {
	f, ok := t.out().(*os.File)
	if !ok || t.input == nil {
		return nil, false
	}

	if !t.isTerminal(int(t.input.Fd())) || !t.isTerminal(int(f.Fd())) {
		return nil, false
	}

	_, height, err := t.size(int(f.Fd()))
	if err != nil || strings.Count(content, "\n")+pagerChrome <= height {
		return nil, false
	}

	return f, true
}

// pagerModel is a scrollable view over pre-rendered content.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-pagerChrome, 1)

		if !pm.ready {
			pm.viewport = viewport.New(msg.Width, height)
			pm.viewport.SetContent(pm.content)
			pm.ready = true
		} else {
			pm.viewport.Width = msg.Width
			pm.viewport.Height = height
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if !pm.ready {
		return "\n  Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("%3.f%% • ↑/↓ scroll • q quit", pm.viewport.ScrollPercent()*100)))

	return b.String()
}
