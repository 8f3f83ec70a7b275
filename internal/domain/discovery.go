package domain

import (
	"context"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"funcsnap.dev/pkg/funcsnap/internal/adapter"
	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

// DiscoverArgs contains the arguments for scanning a source tree.
type DiscoverArgs struct {
	Root    m.Path
	Exclude []string // regexes matched against slash-separated relative paths
	// Parallel bounds how many files are parsed at once. Values below 1 mean 1.
	Parallel int
	// Skip lists files and directories left out of the walk together with
	// everything below them.
	Skip []m.Path
}

// Discoverer builds the callable mapping for a source tree.
type Discoverer interface {
	Discover(ctx context.Context, args DiscoverArgs) (m.Discovery, error)
}

type discoverer struct {
	fsAdapter     adapter.SourceFSAdapter
	goFileAdapter adapter.GoFileAdapter
}

// NewDiscoverer constructs a Discoverer backed by the provided adapters.
func NewDiscoverer(fsAdapter adapter.SourceFSAdapter, goFileAdapter adapter.GoFileAdapter) Discoverer {
	return &discoverer{
		fsAdapter:     fsAdapter,
		goFileAdapter: goFileAdapter,
	}
}

var skippedDirs = map[string]struct{}{
	"vendor":       {},
	"node_modules": {},
}

type parseResult struct {
	record  m.ModuleRecord
	failure *m.ImportFailure
}

// Discover walks args.Root and parses every Go file below it. A file that
// cannot be read or parsed is recorded as a failure and the walk continues.
func (d *discoverer) Discover(ctx context.Context, args DiscoverArgs) (m.Discovery, error) {
	info, err := d.fsAdapter.FileInfo(ctx, args.Root)
	if err != nil {
		return m.Discovery{}, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return m.Discovery{}, fmt.Errorf("root path %s is not a directory", args.Root)
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return m.Discovery{}, err
	}

	discovery := m.Discovery{
		Root:        args.Root,
		Modules:     map[m.Path]m.ModuleRecord{},
		Directories: map[m.Path][]m.Path{},
	}

	skip, err := skipSet(args.Skip)
	if err != nil {
		return m.Discovery{}, err
	}

	files, err := d.collect(ctx, args.Root, excludes, skip, &discovery)
	if err != nil {
		return m.Discovery{}, err
	}

	results := make([]parseResult, len(files))

	var group errgroup.Group

	group.SetLimit(max(args.Parallel, 1))

	for i, file := range files {
		group.Go(func() error {
			results[i] = d.parse(ctx, args.Root, file)
			return nil
		})
	}

	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return m.Discovery{}, err
	}

	for _, result := range results {
		if result.failure != nil {
			slog.Warn("failed to import source file", "path", result.failure.Path, "error", result.failure.Err)
			discovery.Failures = append(discovery.Failures, *result.failure)

			continue
		}

		discovery.Modules[result.record.Path] = result.record
	}

	slog.Debug("discovery finished",
		"root", args.Root,
		"modules", len(discovery.Modules),
		"directories", len(discovery.Directories),
		"failures", len(discovery.Failures))

	return discovery, nil
}

// collect walks root and returns the Go files to parse in sorted order. It
// fills the directory mapping as it goes.
func (d *discoverer) collect(
	ctx context.Context,
	root m.Path,
	excludes []*regexp.Regexp,
	skip map[string]struct{},
	discovery *m.Discovery,
) ([]m.Path, error) {
	var files []m.Path

	err := d.fsAdapter.Walk(ctx, root, func(path string, info os.FileInfo, err error) error {
		rel, relErr := d.fsAdapter.RelPath(ctx, root, m.Path(path))
		if relErr != nil {
			return relErr
		}

		short := m.Path(filepath.ToSlash(string(rel)))

		if err != nil {
			if path == string(root) {
				return err
			}

			discovery.Failures = append(discovery.Failures, m.ImportFailure{Path: short, Err: err})

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if path != string(root) && isSkipped(path, skip) {
			if info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() {
			if path != string(root) && skipDir(info.Name()) {
				return filepath.SkipDir
			}

			if _, ok := discovery.Directories[short]; !ok {
				discovery.Directories[short] = []m.Path{}
			}

			return nil
		}

		if filepath.Ext(path) != ".go" || isExcluded(string(short), excludes) {
			return nil
		}

		dir := m.Path(filepath.ToSlash(filepath.Dir(string(short))))
		discovery.Directories[dir] = append(discovery.Directories[dir], short)
		files = append(files, short)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	for dir := range discovery.Directories {
		entries := discovery.Directories[dir]
		sort.Slice(entries, func(i, j int) bool { return entries[i] < entries[j] })
	}

	return files, nil
}

// parse reads and parses one file with its own file set, so nothing from a
// previous parse of the same path can leak into the result.
func (d *discoverer) parse(ctx context.Context, root, short m.Path) parseResult {
	full := d.fsAdapter.JoinPath(ctx, string(root), filepath.FromSlash(string(short)))

	src, err := d.fsAdapter.ReadFile(ctx, full)
	if err != nil {
		return parseResult{failure: &m.ImportFailure{Path: short, Err: err}}
	}

	fileSet := token.NewFileSet()

	file, err := d.goFileAdapter.Parse(ctx, fileSet, string(full), src)
	if err != nil {
		return parseResult{failure: &m.ImportFailure{Path: short, Err: err}}
	}

	return parseResult{record: d.goFileAdapter.ExtractCallables(fileSet, file, short)}
}

func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}

	_, skip := skippedDirs[name]

	return skip
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			continue
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func isExcluded(path string, excludes []*regexp.Regexp) bool {
	for _, re := range excludes {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// skipSet resolves paths to absolute form so they match walked paths however
// the root was spelled.
func skipSet(paths []m.Path) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(paths))

	for _, path := range paths {
		if path == "" {
			continue
		}

		abs, err := filepath.Abs(string(path))
		if err != nil {
			return nil, fmt.Errorf("resolve skipped path %s: %w", path, err)
		}

		set[abs] = struct{}{}
	}

	return set, nil
}

func isSkipped(path string, skip map[string]struct{}) bool {
	if len(skip) == 0 {
		return false
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	_, ok := skip[abs]

	return ok
}
