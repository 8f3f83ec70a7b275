package domain

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"path/filepath"

	"funcsnap.dev/pkg/funcsnap/internal/adapter"
	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

// ChangeDetector compares one function across two snapshots.
type ChangeDetector interface {
	// Changed reports whether the source text at target differs between the
	// two snapshots. Any resolution failure is returned as an error.
	Changed(ctx context.Context, current, previous m.Snapshot, target m.LookupPath) (bool, error)

	// Compare resolves target in both snapshots and returns the texts along
	// with the outcome. Failures are carried in the result.
	Compare(ctx context.Context, current, previous m.Snapshot, target m.LookupPath) m.CheckResult
}

type changeDetector struct {
	fsAdapter     adapter.SourceFSAdapter
	goFileAdapter adapter.GoFileAdapter
}

// NewChangeDetector constructs a ChangeDetector that re-reads sources through fsAdapter.
func NewChangeDetector(fsAdapter adapter.SourceFSAdapter, goFileAdapter adapter.GoFileAdapter) ChangeDetector {
	return &changeDetector{
		fsAdapter:     fsAdapter,
		goFileAdapter: goFileAdapter,
	}
}

func (d *changeDetector) Changed(ctx context.Context, current, previous m.Snapshot, target m.LookupPath) (bool, error) {
	result := d.Compare(ctx, current, previous, target)
	if result.Err != nil {
		return false, result.Err
	}

	return result.Status == m.Changed, nil
}

func (d *changeDetector) Compare(ctx context.Context, current, previous m.Snapshot, target m.LookupPath) m.CheckResult {
	result := m.CheckResult{Target: target}

	fail := func(err error) m.CheckResult {
		result.Status = statusForError(err)
		result.Err = err

		slog.Warn("target could not be compared", "target", target, "status", result.Status, "error", err)

		return result
	}

	currentRef, currentErr := LookupReference(current, target)
	previousRef, previousErr := LookupReference(previous, target)

	if err := lookupErrors(currentErr, previousErr); err != nil {
		return fail(err)
	}

	var err error

	result.Current, err = d.sourceText(ctx, current, target, currentRef)
	if err != nil {
		return fail(err)
	}

	result.Previous, err = d.sourceText(ctx, previous, target, previousRef)
	if err != nil {
		return fail(err)
	}

	result.Status = m.Unchanged
	if result.Current != result.Previous {
		result.Status = m.Changed
	}

	slog.Debug("compared target", "target", target, "status", result.Status)

	return result
}

// LookupReference follows target through the snapshot document and returns
// the parsed reference stored at its end. The reference must agree with the
// path it was found under.
func LookupReference(snapshot m.Snapshot, target m.LookupPath) (m.Reference, error) {
	missing := func(segment, key, reason string) error {
		return &LookupPathError{
			Document: snapshot.Name,
			Path:     target,
			Segment:  segment,
			Key:      key,
			Reason:   reason,
		}
	}

	module, err := descend(map[string]any(snapshot.Document), string(target.File), SegmentFile, missing)
	if err != nil {
		return m.Reference{}, err
	}

	container, err := descend(module, m.ObjectsKey, SegmentObjects, missing)
	if err != nil {
		return m.Reference{}, err
	}

	if target.Qualifier != m.TopLevel {
		container, err = descend(container, target.Qualifier, SegmentQualifier, missing)
		if err != nil {
			return m.Reference{}, err
		}
	}

	value, ok := container[target.Function]
	if !ok {
		return m.Reference{}, missing(SegmentFunction, target.Function, "")
	}

	text, ok := value.(string)
	if !ok {
		return m.Reference{}, fmt.Errorf("%w: %s snapshot stores %T at %s", m.ErrInvalidReference, snapshot.Name, value, target)
	}

	ref, err := m.ParseReference(text)
	if err != nil {
		return m.Reference{}, fmt.Errorf("%s snapshot at %s: %w", snapshot.Name, target, err)
	}

	if err := validateReference(ref, target); err != nil {
		return m.Reference{}, fmt.Errorf("%s snapshot: %w", snapshot.Name, err)
	}

	return ref, nil
}

func descend(
	node map[string]any,
	key, segment string,
	missing func(segment, key, reason string) error,
) (map[string]any, error) {
	value, ok := node[key]
	if !ok {
		return nil, missing(segment, key, "")
	}

	child, ok := value.(map[string]any)
	if !ok {
		return nil, missing(segment, key, fmt.Sprintf("is %T, not an object", value))
	}

	return child, nil
}

func validateReference(ref m.Reference, target m.LookupPath) error {
	name, _ := adapter.SplitOrdinal(target.Function)

	switch {
	case ref.File != target.File:
		return fmt.Errorf("%w: %s points at file %s, not %s", m.ErrInvalidReference, ref, ref.File, target.File)
	case ref.Name != name:
		return fmt.Errorf("%w: %s is not function %s", m.ErrInvalidReference, ref, name)
	case ref.Qualifier() != target.Qualifier:
		return fmt.Errorf("%w: %s is not under qualifier %q", m.ErrInvalidReference, ref, target.Qualifier)
	}

	return nil
}

// sourceText re-reads and re-parses the referenced file under the snapshot's
// root on every call and returns the declaration's exact text.
func (d *changeDetector) sourceText(ctx context.Context, snapshot m.Snapshot, target m.LookupPath, ref m.Reference) (string, error) {
	stale := func(err error) error {
		return &StaleReferenceError{
			Document:  snapshot.Name,
			Reference: ref,
			Root:      snapshot.Root,
			Err:       err,
		}
	}

	full := d.fsAdapter.JoinPath(ctx, string(snapshot.Root), filepath.FromSlash(string(ref.File)))

	src, err := d.fsAdapter.ReadFile(ctx, full)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		return "", stale(err)
	}

	fileSet := token.NewFileSet()

	file, err := d.goFileAdapter.Parse(ctx, fileSet, string(full), src)
	if err != nil {
		return "", stale(fmt.Errorf("parse: %w", err))
	}

	if file.Name.Name != ref.Package {
		return "", stale(fmt.Errorf("file now declares package %s", file.Name.Name))
	}

	_, ordinal := adapter.SplitOrdinal(target.Function)

	decl, ok := d.goFileAdapter.FindFunction(file, ref.ReceiverType(), ref.Name, ordinal)
	if !ok {
		return "", stale(errors.New("declaration not found"))
	}

	text, err := d.goFileAdapter.SourceText(fileSet, src, decl)
	if err != nil {
		return "", stale(err)
	}

	return text, nil
}
