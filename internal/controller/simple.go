package controller

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayScan prints a per-file callable count table and any import failures.
func (s *SimpleUI) DisplayScan(ctx context.Context, discovery m.Discovery, snapshot m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderScanTable(discovery))

	for _, failure := range discovery.Failures {
		s.printf("import failed: %s\n", failure.Error())
	}

	s.printf("Snapshot written to %s\n", snapshot)

	return nil
}

func renderScanTable(discovery m.Discovery) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Functions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, p := range discovery.Paths() {
		count := len(discovery.Modules[p].Functions())
		table.Append([]string{string(p), fmt.Sprintf("%d", count)})

		total += count
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(discovery.Modules)),
		fmt.Sprintf("%d", total),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayBaselineMissing reports that no previous snapshot exists yet.
func (s *SimpleUI) DisplayBaselineMissing(ctx context.Context, previous m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("No baseline snapshot available at %s; nothing to compare.\n", previous)
}

// DisplayResults prints one line per target and, if requested, a diff of changed functions.
func (s *SimpleUI) DisplayResults(ctx context.Context, results []m.CheckResult, showDiff bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(results) == 0 {
		s.printf("No targets configured.\n")
		return nil
	}

	for _, result := range results {
		s.printf("%s\n", resultLine(result))

		if showDiff && result.Status == m.Changed {
			diff, err := unifiedDiff(result)
			if err != nil {
				return err
			}

			s.printf("%s", diff)
		}
	}

	return nil
}

// resultLine renders the sentence reported for one target.
func resultLine(result m.CheckResult) string {
	name := result.Target.Function

	switch result.Status {
	case m.Changed:
		return fmt.Sprintf("The function %s has changed.", name)
	case m.Unchanged:
		return fmt.Sprintf("The function %s has not changed.", name)
	default:
		return fmt.Sprintf("The function %s could not be checked (%s): %v", name, result.Status, result.Err)
	}
}

func unifiedDiff(result m.CheckResult) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(result.Previous + "\n"),
		B:        difflib.SplitLines(result.Current + "\n"),
		FromFile: "previous/" + string(result.Target.File),
		ToFile:   "current/" + string(result.Target.File),
		Context:  3,
	})
}

// DisplayTree prints the scanned directory structure.
func (s *SimpleUI) DisplayTree(ctx context.Context, discovery m.Discovery) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n%s", discovery.Root, buildTree(discovery).String())

	return nil
}

// buildTree renders Directories as a tree rooted at discovery.Root. Each file
// is annotated with its function count.
func buildTree(discovery m.Discovery) treeprint.Tree {
	tree := treeprint.New()
	branches := map[m.Path]treeprint.Tree{".": tree}

	var branchFor func(dir m.Path) treeprint.Tree
	branchFor = func(dir m.Path) treeprint.Tree {
		if branch, ok := branches[dir]; ok {
			return branch
		}

		parent := branchFor(m.Path(path.Dir(string(dir))))
		branch := parent.AddBranch(path.Base(string(dir)) + "/")
		branches[dir] = branch

		return branch
	}

	for _, dir := range sortedDirs(discovery.Directories) {
		branch := branchFor(dir)

		for _, file := range discovery.Directories[dir] {
			label := path.Base(string(file))

			if record, ok := discovery.Modules[file]; ok {
				branch.AddNode(fmt.Sprintf("%s (%d)", label, len(record.Functions())))
			} else {
				branch.AddNode(label + " (import failed)")
			}
		}
	}

	return tree
}

func sortedDirs(dirs map[m.Path][]m.Path) []m.Path {
	out := make([]m.Path, 0, len(dirs))
	for dir := range dirs {
		out = append(out, dir)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// DisplayPromotion confirms that a snapshot became the new baseline.
func (s *SimpleUI) DisplayPromotion(ctx context.Context, from, to m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Promoted %s to %s\n", from, to)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
