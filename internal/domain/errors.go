package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

var (
	// ErrLookupPathMissing matches every LookupPathError.
	ErrLookupPathMissing = errors.New("lookup path missing")
	// ErrStaleReference matches every StaleReferenceError.
	ErrStaleReference = errors.New("stale reference")
	// ErrChecksFailed is returned by Check when a target could not be compared.
	ErrChecksFailed = errors.New("one or more targets could not be checked")
)

// Lookup path segments, in resolution order.
const (
	SegmentFile      = "file"
	SegmentObjects   = "objects"
	SegmentQualifier = "qualifier"
	SegmentFunction  = "function"
)

// LookupPathError reports which document and which segment of a lookup path
// could not be resolved.
type LookupPathError struct {
	Document string
	Path     m.LookupPath
	Segment  string
	Key      string
	// Reason is empty when the key is absent, otherwise it says why the
	// value under the key cannot be descended into.
	Reason string
}

func (e *LookupPathError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("lookup path %s in %s snapshot: %s %q %s", e.Path, e.Document, e.Segment, e.Key, e.Reason)
	}

	return fmt.Sprintf("lookup path %s missing in %s snapshot: %s %q not found", e.Path, e.Document, e.Segment, e.Key)
}

// Is makes errors.Is(err, ErrLookupPathMissing) hold.
func (e *LookupPathError) Is(target error) bool {
	return target == ErrLookupPathMissing
}

// StaleReferenceError reports a stored reference that no longer resolves to
// a declaration in the snapshot's source tree.
type StaleReferenceError struct {
	Document  string
	Reference m.Reference
	Root      m.Path
	Err       error
}

func (e *StaleReferenceError) Error() string {
	return fmt.Sprintf("%s snapshot reference %s does not resolve under %s: %v", e.Document, e.Reference, e.Root, e.Err)
}

// Is makes errors.Is(err, ErrStaleReference) hold.
func (e *StaleReferenceError) Is(target error) bool {
	return target == ErrStaleReference
}

func (e *StaleReferenceError) Unwrap() error {
	return e.Err
}

// ImportErrors folds import failures into a single error, or nil.
func ImportErrors(failures []m.ImportFailure) error {
	var result *multierror.Error

	for _, failure := range failures {
		result = multierror.Append(result, failure)
	}

	return result.ErrorOrNil()
}

// lookupErrors reports the lookup failures of both documents. A single
// failure is returned unchanged.
func lookupErrors(current, previous error) error {
	switch {
	case current == nil:
		return previous
	case previous == nil:
		return current
	}

	merr := multierror.Append(current, previous)
	merr.ErrorFormat = inlineErrors

	return merr
}

// inlineErrors renders several errors on one line so result output stays
// one line per target.
func inlineErrors(errs []error) string {
	texts := make([]string, 0, len(errs))
	for _, err := range errs {
		texts = append(texts, err.Error())
	}

	return strings.Join(texts, "; ")
}

func statusForError(err error) m.CheckStatus {
	switch {
	case errors.Is(err, ErrLookupPathMissing):
		return m.LookupMissing
	case errors.Is(err, ErrStaleReference):
		return m.Stale
	default:
		return m.Invalid
	}
}
