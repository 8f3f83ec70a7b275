package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

var (
	// ErrSnapshotMissing is returned when a snapshot file does not exist.
	ErrSnapshotMissing = errors.New("snapshot not found")
	// ErrSnapshotCorrupt is returned when a snapshot file is not a JSON object.
	ErrSnapshotCorrupt = errors.New("snapshot is not a valid JSON document")
)

const (
	// mirrorSuffix names the directory holding a snapshot's frozen sources.
	mirrorSuffix = ".src"
	// stagingSuffix marks a file or mirror that is still being written.
	stagingSuffix = ".tmp"
)

// SaveOptions controls how a snapshot's sources are mirrored.
type SaveOptions struct {
	// Root is the scanned source tree. An empty root skips mirroring.
	Root m.Path
	// Files are slash-separated paths relative to Root.
	Files []m.Path
}

// SnapshotStore persists and loads snapshot documents.
type SnapshotStore interface {
	// Save writes doc to path, replacing any existing snapshot there, and
	// mirrors the listed source files next to it.
	Save(ctx context.Context, path m.Path, doc m.Document, opts SaveOptions) error

	// Load reads the snapshot at path. Its Root is the mirror written by Save
	// when present, otherwise fallbackRoot.
	Load(ctx context.Context, name string, path, fallbackRoot m.Path) (m.Snapshot, error)

	// Promote copies the snapshot at from, with its mirror, over to.
	Promote(ctx context.Context, from, to m.Path) error
}

// MirrorPath returns the source mirror directory for a snapshot file.
func MirrorPath(path m.Path) m.Path {
	p := string(path)
	return m.Path(strings.TrimSuffix(p, filepath.Ext(p)) + mirrorSuffix)
}

// SnapshotArtifacts lists every path the store may create for the snapshot
// at path: the document, its mirror and their staging copies. A scan must
// leave them out when they live inside the scanned tree.
func SnapshotArtifacts(path m.Path) []m.Path {
	mirror := MirrorPath(path)

	return []m.Path{
		path,
		path + stagingSuffix,
		mirror,
		mirror + stagingSuffix,
	}
}

// JSONSnapshotStore stores snapshots as indented JSON files.
type JSONSnapshotStore struct {
	fs SourceFSAdapter
}

// NewJSONSnapshotStore constructs a JSONSnapshotStore on top of fsAdapter.
func NewJSONSnapshotStore(fsAdapter SourceFSAdapter) *JSONSnapshotStore {
	return &JSONSnapshotStore{fs: fsAdapter}
}

// Save implements SnapshotStore.
func (s *JSONSnapshotStore) Save(ctx context.Context, path m.Path, doc m.Document, opts SaveOptions) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	// The mirror is complete before the document that points at it replaces
	// the old one.
	if opts.Root != "" {
		if err := s.mirror(ctx, path, opts); err != nil {
			return err
		}
	}

	if err := s.writeAtomic(ctx, path, append(data, '\n')); err != nil {
		return err
	}

	slog.Debug("wrote snapshot", "path", path, "modules", len(doc))

	return nil
}

func (s *JSONSnapshotStore) writeAtomic(ctx context.Context, path m.Path, data []byte) error {
	if err := s.fs.MkdirAll(ctx, m.Path(filepath.Dir(string(path)))); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp := path + stagingSuffix
	if err := s.fs.WriteFile(ctx, tmp, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	if err := s.fs.Rename(ctx, tmp, path); err != nil {
		_ = s.fs.RemoveAll(ctx, tmp)
		return fmt.Errorf("replace snapshot %s: %w", path, err)
	}

	return nil
}

// mirror copies opts.Files into a staging directory and swaps it in place of
// the snapshot's mirror once every file is copied.
func (s *JSONSnapshotStore) mirror(ctx context.Context, path m.Path, opts SaveOptions) error {
	mirror := MirrorPath(path)
	staging := mirror + stagingSuffix

	if err := s.fs.RemoveAll(ctx, staging); err != nil {
		return fmt.Errorf("clear staging mirror: %w", err)
	}

	if err := s.fs.MkdirAll(ctx, staging); err != nil {
		return fmt.Errorf("create source mirror: %w", err)
	}

	for _, file := range opts.Files {
		native := filepath.FromSlash(string(file))
		src := s.fs.JoinPath(ctx, string(opts.Root), native)
		dst := s.fs.JoinPath(ctx, string(staging), native)

		if err := s.fs.CopyFile(ctx, src, dst); err != nil {
			slog.Error("failed to mirror source", "file", file, "mirror", mirror, "error", err)
			_ = s.fs.RemoveAll(ctx, staging)

			return fmt.Errorf("mirror %s: %w", file, err)
		}
	}

	if err := s.fs.RemoveAll(ctx, mirror); err != nil {
		return fmt.Errorf("clear source mirror: %w", err)
	}

	if err := s.fs.Rename(ctx, staging, mirror); err != nil {
		return fmt.Errorf("replace source mirror: %w", err)
	}

	slog.Debug("mirrored sources", "mirror", mirror, "files", len(opts.Files))

	return nil
}

// Load implements SnapshotStore.
func (s *JSONSnapshotStore) Load(ctx context.Context, name string, path, fallbackRoot m.Path) (m.Snapshot, error) {
	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.Snapshot{}, fmt.Errorf("%w: %s snapshot at %s", ErrSnapshotMissing, name, path)
		}

		return m.Snapshot{}, fmt.Errorf("read %s snapshot: %w", name, err)
	}

	var doc m.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return m.Snapshot{}, fmt.Errorf("%w: %s snapshot at %s: %v", ErrSnapshotCorrupt, name, path, err)
	}

	if doc == nil {
		return m.Snapshot{}, fmt.Errorf("%w: %s snapshot at %s is null", ErrSnapshotCorrupt, name, path)
	}

	root := fallbackRoot

	mirror := MirrorPath(path)
	if info, err := s.fs.FileInfo(ctx, mirror); err == nil && info.IsDir() {
		root = mirror
	}

	slog.Debug("loaded snapshot", "name", name, "path", path, "root", root, "modules", len(doc))

	return m.Snapshot{
		Name:     name,
		Path:     path,
		Document: doc,
		Root:     root,
	}, nil
}

// Promote implements SnapshotStore.
func (s *JSONSnapshotStore) Promote(ctx context.Context, from, to m.Path) error {
	data, err := s.fs.ReadFile(ctx, from)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSnapshotMissing, from)
		}

		return fmt.Errorf("read snapshot: %w", err)
	}

	if !json.Valid(data) {
		return fmt.Errorf("%w: %s", ErrSnapshotCorrupt, from)
	}

	if err := s.writeAtomic(ctx, to, data); err != nil {
		return err
	}

	target := MirrorPath(to)
	if err := s.fs.RemoveAll(ctx, target); err != nil {
		return fmt.Errorf("clear source mirror: %w", err)
	}

	source := MirrorPath(from)
	if info, err := s.fs.FileInfo(ctx, source); err == nil && info.IsDir() {
		if err := s.fs.CopyDir(ctx, source, target); err != nil {
			return fmt.Errorf("copy source mirror: %w", err)
		}
	}

	slog.Info("promoted snapshot", "from", from, "to", to)

	return nil
}
