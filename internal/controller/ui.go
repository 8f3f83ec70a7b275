// Package controller provides output adapters for displaying snapshot and check results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

// UI defines the interface for reporting workflow progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayScan(ctx context.Context, discovery m.Discovery, snapshot m.Path) error
	DisplayBaselineMissing(ctx context.Context, previous m.Path)
	DisplayResults(ctx context.Context, results []m.CheckResult, showDiff bool) error
	DisplayTree(ctx context.Context, discovery m.Discovery) error
	DisplayPromotion(ctx context.Context, from, to m.Path)
}

// NewUI returns the TUI when writing to a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
