package model

import (
	"fmt"
	"strings"
)

// Document is a serialized snapshot: file path -> "objects" -> name -> reference.
type Document map[string]any

// Snapshot is a document loaded from the snapshot store.
type Snapshot struct {
	Name     string // "current" or "previous"
	Path     Path
	Document Document
	// Root is the source tree the document's references resolve against.
	Root Path
}

// LookupPath locates one function in a snapshot document.
type LookupPath struct {
	File      Path
	Qualifier string
	Function  string
}

func (p LookupPath) String() string {
	return fmt.Sprintf("%s:%s:%s", p.File, p.Qualifier, p.Function)
}

// ParseLookupPath parses "file:qualifier:function". The qualifier is empty
// for top-level functions ("m.go::F") and "<type pkg.T>" for methods. The
// file part may itself contain colons.
func ParseLookupPath(text string) (LookupPath, error) {
	last := strings.LastIndex(text, ":")
	if last < 0 {
		return LookupPath{}, fmt.Errorf("target %q: expected file:qualifier:function", text)
	}

	prefix := text[:last]

	middle := strings.LastIndex(prefix, ":")
	if middle < 0 {
		return LookupPath{}, fmt.Errorf("target %q: expected file:qualifier:function", text)
	}

	path := LookupPath{
		File:      Path(prefix[:middle]),
		Qualifier: prefix[middle+1:],
		Function:  text[last+1:],
	}

	if path.File == "" || path.Function == "" {
		return LookupPath{}, fmt.Errorf("target %q: file and function must not be empty", text)
	}

	if path.Qualifier != TopLevel {
		if _, _, err := ParseQualifier(path.Qualifier); err != nil {
			return LookupPath{}, fmt.Errorf("target %q: %w", text, err)
		}
	}

	return path, nil
}
