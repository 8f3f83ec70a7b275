package model

import (
	"sort"
)

// ObjectsKey is the key under which a module record stores its callables.
const ObjectsKey = "objects"

// Callable is a live object found by discovery. Serialization replaces it
// with the rendering of its reference.
type Callable interface {
	Reference() Reference
}

// Function is a function or method declaration found in a parsed file.
type Function struct {
	Ref       Reference
	StartLine int
	EndLine   int
}

// Reference implements Callable.
func (f Function) Reference() Reference {
	return f.Ref
}

func (f Function) String() string {
	return f.Ref.String()
}

// ModuleRecord holds the callables defined in one source file.
//
// Objects maps a top-level function name to its Function and a type
// qualifier to a map[string]Function of that type's methods.
type ModuleRecord struct {
	Path    Path
	Package string
	Objects map[string]any
}

// NewModuleRecord returns a record with an empty objects mapping.
func NewModuleRecord(path Path, pkg string) ModuleRecord {
	return ModuleRecord{
		Path:    path,
		Package: pkg,
		Objects: map[string]any{},
	}
}

// Functions returns every Function in the record, ordered by start line.
func (r ModuleRecord) Functions() []Function {
	var out []Function

	for _, value := range r.Objects {
		switch v := value.(type) {
		case Function:
			out = append(out, v)
		case map[string]Function:
			for _, fn := range v {
				out = append(out, fn)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartLine != out[j].StartLine {
			return out[i].StartLine < out[j].StartLine
		}

		return out[i].Ref.Name < out[j].Ref.Name
	})

	return out
}

// ImportFailure records a source file that could not be read or parsed.
type ImportFailure struct {
	Path Path
	Err  error
}

func (f ImportFailure) Error() string {
	return string(f.Path) + ": " + f.Err.Error()
}

func (f ImportFailure) Unwrap() error {
	return f.Err
}

// Discovery is the result of scanning a source tree.
type Discovery struct {
	Root        Path
	Modules     map[Path]ModuleRecord
	Directories map[Path][]Path
	Failures    []ImportFailure
}

// Paths returns the discovered module paths in sorted order.
func (d Discovery) Paths() []Path {
	paths := make([]Path, 0, len(d.Modules))
	for path := range d.Modules {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}

// Tree returns the nested mapping file path -> "objects" -> name -> callable.
func (d Discovery) Tree() map[Path]map[string]any {
	tree := make(map[Path]map[string]any, len(d.Modules))

	for path, record := range d.Modules {
		tree[path] = map[string]any{ObjectsKey: record.Objects}
	}

	return tree
}
