package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"funcsnap.dev/pkg/funcsnap/internal/adapter"
	"funcsnap.dev/pkg/funcsnap/internal/controller"
	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

const (
	currentSnapshotName  = "current"
	previousSnapshotName = "previous"
)

// ScanArgs contains the arguments for taking a snapshot.
type ScanArgs struct {
	Root     m.Path
	Exclude  []string
	Parallel int
	// Snapshot is where the current snapshot is written.
	Snapshot m.Path
	// Previous is the baseline snapshot. Scan only needs it to keep the
	// baseline's files out of the walk.
	Previous m.Path
}

// CheckArgs contains the arguments for comparing targets against a baseline.
type CheckArgs struct {
	ScanArgs
	Targets  []m.LookupPath
	ShowDiff bool
}

// PromoteArgs contains the arguments for promoting a snapshot to baseline.
type PromoteArgs struct {
	From m.Path
	To   m.Path
}

// TreeArgs contains the arguments for displaying the scanned directory structure.
type TreeArgs struct {
	Root     m.Path
	Exclude  []string
	Parallel int
	// Snapshots are left out of the tree when they sit below Root.
	Snapshots []m.Path
}

// Workflow is the batch entry point behind every command.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
	Check(ctx context.Context, args CheckArgs) error
	Promote(ctx context.Context, args PromoteArgs) error
	Tree(ctx context.Context, args TreeArgs) error
}

type workflow struct {
	store      adapter.SnapshotStore
	ui         controller.UI
	discoverer Discoverer
	detector   ChangeDetector
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	store adapter.SnapshotStore,
	ui controller.UI,
	discoverer Discoverer,
	detector ChangeDetector,
) Workflow {
	return &workflow{
		store:      store,
		ui:         ui,
		discoverer: discoverer,
		detector:   detector,
	}
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	discovery, err := w.scan(ctx, args)
	if err != nil {
		return err
	}

	return w.ui.DisplayScan(ctx, discovery, args.Snapshot)
}

// scan discovers args.Root, serializes the result and overwrites the current snapshot.
func (w *workflow) scan(ctx context.Context, args ScanArgs) (m.Discovery, error) {
	logger := slog.With("scan_id", uuid.NewString())
	logger.Info("scan started", "root", args.Root, "snapshot", args.Snapshot)

	discovery, err := w.discoverer.Discover(ctx, DiscoverArgs{
		Root:     args.Root,
		Exclude:  args.Exclude,
		Parallel: args.Parallel,
		Skip:     snapshotArtifacts(args.Snapshot, args.Previous),
	})
	if err != nil {
		logger.Error("discovery failed", "error", err)
		return m.Discovery{}, fmt.Errorf("discover sources: %w", err)
	}

	if err := ImportErrors(discovery.Failures); err != nil {
		logger.Warn("some source files failed to import", "count", len(discovery.Failures), "error", err)
	}

	doc, err := Serialize(discovery.Tree())
	if err != nil {
		return m.Discovery{}, fmt.Errorf("serialize snapshot: %w", err)
	}

	err = w.store.Save(ctx, args.Snapshot, doc, adapter.SaveOptions{
		Root:  args.Root,
		Files: discovery.Paths(),
	})
	if err != nil {
		logger.Error("failed to save snapshot", "path", args.Snapshot, "error", err)
		return m.Discovery{}, fmt.Errorf("save snapshot: %w", err)
	}

	logger.Info("scan finished", "modules", len(discovery.Modules), "failures", len(discovery.Failures))

	return discovery, nil
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	discovery, err := w.scan(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayScan(ctx, discovery, args.Snapshot); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	current, err := w.store.Load(ctx, currentSnapshotName, args.Snapshot, args.Root)
	if err != nil {
		return fmt.Errorf("load current snapshot: %w", err)
	}

	previous, err := w.store.Load(ctx, previousSnapshotName, args.Previous, args.Root)
	if errors.Is(err, adapter.ErrSnapshotMissing) {
		slog.Info("no baseline snapshot available", "path", args.Previous)
		w.ui.DisplayBaselineMissing(ctx, args.Previous)

		return nil
	}

	if err != nil {
		return fmt.Errorf("load previous snapshot: %w", err)
	}

	results := make([]m.CheckResult, 0, len(args.Targets))
	failed := 0

	for _, target := range args.Targets {
		result := w.detector.Compare(ctx, current, previous, target)
		if result.Status == m.LookupMissing || result.Status == m.Invalid {
			failed++
		}

		results = append(results, result)
	}

	if err := w.ui.DisplayResults(ctx, results, args.ShowDiff); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrChecksFailed, failed, len(args.Targets))
	}

	return nil
}

func (w *workflow) Promote(ctx context.Context, args PromoteArgs) error {
	if err := w.store.Promote(ctx, args.From, args.To); err != nil {
		return fmt.Errorf("promote snapshot: %w", err)
	}

	w.ui.DisplayPromotion(ctx, args.From, args.To)

	return nil
}

func (w *workflow) Tree(ctx context.Context, args TreeArgs) error {
	discovery, err := w.discoverer.Discover(ctx, DiscoverArgs{
		Root:     args.Root,
		Exclude:  args.Exclude,
		Parallel: args.Parallel,
		Skip:     snapshotArtifacts(args.Snapshots...),
	})
	if err != nil {
		return fmt.Errorf("discover sources: %w", err)
	}

	return w.ui.DisplayTree(ctx, discovery)
}

// snapshotArtifacts collects the store's files for every configured snapshot
// so a snapshot kept inside the source root is never scanned.
func snapshotArtifacts(snapshots ...m.Path) []m.Path {
	var paths []m.Path

	for _, snapshot := range snapshots {
		if snapshot == "" {
			continue
		}

		paths = append(paths, adapter.SnapshotArtifacts(snapshot)...)
	}

	return paths
}
