package model

// CheckStatus is the outcome of comparing one target across two snapshots.
type CheckStatus int

const (
	// Unchanged indicates identical source text in both snapshots.
	Unchanged CheckStatus = iota
	// Changed indicates the source text differs.
	Changed
	// LookupMissing indicates the lookup path is absent from a document.
	LookupMissing
	// Stale indicates a stored reference no longer resolves to source.
	Stale
	// Invalid indicates a stored reference is malformed or inconsistent.
	Invalid
)

func (s CheckStatus) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Changed:
		return "changed"
	case LookupMissing:
		return "missing"
	case Stale:
		return "stale"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// CheckResult is the comparison result for a single target.
type CheckResult struct {
	Target   LookupPath
	Status   CheckStatus
	Current  string // source text resolved from the current snapshot
	Previous string // source text resolved from the previous snapshot
	Err      error
}
