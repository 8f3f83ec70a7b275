package domain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funcsnap.dev/pkg/funcsnap/internal/adapter"
	"funcsnap.dev/pkg/funcsnap/internal/domain"
	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

func newDiscoverer() domain.Discoverer {
	return domain.NewDiscoverer(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalGoFileAdapter())
}

func writeSource(t *testing.T, root, rel, contents string) {
	t.Helper()

	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(contents), 0o644))
}

func TestDiscoverer_Discover_NestedTree(t *testing.T) {
	root := t.TempDir()

	writeSource(t, root, "main.go", "package main\n\nfunc main() {}\n")
	writeSource(t, root, "pkg/util/util.go", `package util

type Box struct{}

func Helper() int { return 1 }

func (b *Box) Open() error { return nil }

func (b Box) Size() int { return 0 }
`)
	writeSource(t, root, "pkg/util/README.md", "# not go\n")

	discovery, err := newDiscoverer().Discover(context.Background(), domain.DiscoverArgs{Root: m.Path(root)})
	require.NoError(t, err)

	assert.Empty(t, discovery.Failures)
	assert.Equal(t, []m.Path{"main.go", "pkg/util/util.go"}, discovery.Paths())

	assert.Equal(t, []m.Path{"main.go"}, discovery.Directories["."])
	assert.Equal(t, []m.Path{}, discovery.Directories["pkg"])
	assert.Equal(t, []m.Path{"pkg/util/util.go"}, discovery.Directories["pkg/util"])

	util := discovery.Modules["pkg/util/util.go"]
	assert.Equal(t, "util", util.Package)
	require.Contains(t, util.Objects, "Helper")

	methods, ok := util.Objects["<type util.Box>"].(map[string]m.Function)
	require.True(t, ok)
	assert.Contains(t, methods, "Open")
	assert.Contains(t, methods, "Size")
	assert.Len(t, util.Functions(), 3)
}

func TestDiscoverer_Discover_IsolatesBrokenFiles(t *testing.T) {
	root := t.TempDir()

	writeSource(t, root, "good.go", "package demo\n\nfunc Good() {}\n")
	writeSource(t, root, "bad.go", "package demo\n\nfunc Bad( {\n")

	discovery, err := newDiscoverer().Discover(context.Background(), domain.DiscoverArgs{Root: m.Path(root), Parallel: 4})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{"good.go"}, discovery.Paths())
	require.Len(t, discovery.Failures, 1)
	assert.Equal(t, m.Path("bad.go"), discovery.Failures[0].Path)
	assert.Equal(t, []m.Path{"bad.go", "good.go"}, discovery.Directories["."])

	importErr := domain.ImportErrors(discovery.Failures)
	require.Error(t, importErr)
	assert.Contains(t, importErr.Error(), "bad.go")
}

func TestDiscoverer_Discover_ModuleWithoutFunctions(t *testing.T) {
	root := t.TempDir()

	writeSource(t, root, "consts.go", "package demo\n\nconst Answer = 42\n")

	discovery, err := newDiscoverer().Discover(context.Background(), domain.DiscoverArgs{Root: m.Path(root)})
	require.NoError(t, err)

	record, ok := discovery.Modules["consts.go"]
	require.True(t, ok)
	assert.Empty(t, record.Objects)

	doc, err := domain.Serialize(discovery.Tree())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{m.ObjectsKey: map[string]any{}}, doc["consts.go"])
}

func TestDiscoverer_Discover_SkipsHiddenVendorAndExcluded(t *testing.T) {
	root := t.TempDir()

	writeSource(t, root, "keep.go", "package demo\n\nfunc Keep() {}\n")
	writeSource(t, root, "keep_test.go", "package demo\n\nfunc TestKeep() {}\n")
	writeSource(t, root, ".funcsnap/current_modules.src/keep.go", "package demo\n\nfunc Keep() {}\n")
	writeSource(t, root, "vendor/dep/dep.go", "package dep\n\nfunc Dep() {}\n")
	writeSource(t, root, "_scratch/tmp.go", "package scratch\n\nfunc Tmp() {}\n")

	discovery, err := newDiscoverer().Discover(context.Background(), domain.DiscoverArgs{
		Root:    m.Path(root),
		Exclude: []string{`_test\.go$`, "  "},
	})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{"keep.go"}, discovery.Paths())
	assert.NotContains(t, discovery.Directories, m.Path("vendor"))
	assert.NotContains(t, discovery.Directories, m.Path(".funcsnap"))
	assert.NotContains(t, discovery.Directories, m.Path("_scratch"))
}

func TestDiscoverer_Discover_SkipsListedPaths(t *testing.T) {
	root := t.TempDir()

	writeSource(t, root, "keep.go", "package demo\n\nfunc Keep() {}\n")
	writeSource(t, root, "snaps/current_modules.src/keep.go", "package demo\n\nfunc Keep() {}\n")
	writeSource(t, root, "snaps/previous_modules.src/keep.go", "package demo\n\nfunc Keep() {}\n")
	writeSource(t, root, "snaps/notes.go", "package snaps\n\nfunc Note() {}\n")

	discovery, err := newDiscoverer().Discover(context.Background(), domain.DiscoverArgs{
		Root: m.Path(root),
		Skip: []m.Path{
			m.Path(filepath.Join(root, "snaps", "current_modules.src")),
			m.Path(filepath.Join(root, "snaps", "..", "snaps", "previous_modules.src")),
			m.Path(filepath.Join(root, "snaps", "missing.json")),
			"",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{"keep.go", "snaps/notes.go"}, discovery.Paths())
	assert.NotContains(t, discovery.Directories, m.Path("snaps/current_modules.src"))
	assert.NotContains(t, discovery.Directories, m.Path("snaps/previous_modules.src"))
}

func TestDiscoverer_Discover_Deterministic(t *testing.T) {
	root := t.TempDir()

	for _, name := range []string{"a.go", "b.go", "c/c.go", "d/e/f.go"} {
		writeSource(t, root, name, "package x\n\nfunc F() {}\n\nfunc init() {}\n\nfunc init() {}\n")
	}

	first, err := newDiscoverer().Discover(context.Background(), domain.DiscoverArgs{Root: m.Path(root), Parallel: 1})
	require.NoError(t, err)

	second, err := newDiscoverer().Discover(context.Background(), domain.DiscoverArgs{Root: m.Path(root), Parallel: 8})
	require.NoError(t, err)

	firstDoc, err := domain.Serialize(first.Tree())
	require.NoError(t, err)

	secondDoc, err := domain.Serialize(second.Tree())
	require.NoError(t, err)

	assert.Equal(t, firstDoc, secondDoc)
	assert.Equal(t, first.Directories, second.Directories)

	objects := firstDoc["a.go"].(map[string]any)[m.ObjectsKey].(map[string]any)
	assert.Equal(t, "<func x.init in a.go>", objects["init"])
	assert.Equal(t, "<func x.init in a.go>", objects["init#2"])
}

func TestDiscoverer_Discover_RootErrors(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "file.go", "package demo\n")

	tests := []struct {
		name string
		root m.Path
	}{
		{name: "missing root", root: m.Path(filepath.Join(root, "nope"))},
		{name: "root is a file", root: m.Path(filepath.Join(root, "file.go"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newDiscoverer().Discover(context.Background(), domain.DiscoverArgs{Root: tt.root})
			assert.Error(t, err)
		})
	}
}

func TestDiscoverer_Discover_InvalidExclude(t *testing.T) {
	_, err := newDiscoverer().Discover(context.Background(), domain.DiscoverArgs{
		Root:    m.Path(t.TempDir()),
		Exclude: []string{"("},
	})
	assert.ErrorContains(t, err, "invalid exclude pattern")
}

func TestDiscoverer_Discover_CanceledContext(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "a.go", "package demo\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newDiscoverer().Discover(ctx, domain.DiscoverArgs{Root: m.Path(root)})
	assert.ErrorIs(t, err, context.Canceled)
}
