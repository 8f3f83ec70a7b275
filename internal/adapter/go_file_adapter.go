package adapter

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

// GoFileAdapter encapsulates Go-specific parsing so the domain layer can
// focus on discovery and comparison while delegating syntax details to an
// infrastructure component.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and source bytes.
	Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// ExtractCallables collects the top-level functions and methods declared
	// in file into a module record keyed for snapshot lookup.
	ExtractCallables(fileSet *token.FileSet, file *ast.File, path m.Path) m.ModuleRecord

	// FindFunction returns the ordinal-th declaration (1-based) named name
	// whose receiver base type is receiverType ("" for top-level functions).
	FindFunction(file *ast.File, receiverType, name string, ordinal int) (*ast.FuncDecl, bool)

	// SourceText returns the exact source of decl, from the func keyword to
	// the closing brace.
	SourceText(fileSet *token.FileSet, src []byte, decl *ast.FuncDecl) (string, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return parser.ParseFile(fileSet, filename, src, parser.ParseComments)
}

// ExtractCallables walks the file's declarations and records every function.
func (a *LocalGoFileAdapter) ExtractCallables(fileSet *token.FileSet, file *ast.File, path m.Path) m.ModuleRecord {
	pkg := file.Name.Name
	record := m.NewModuleRecord(path, pkg)

	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Name == nil {
			continue
		}

		ref := m.Reference{File: path, Package: pkg, Name: fd.Name.Name}
		if fd.Recv != nil && len(fd.Recv.List) > 0 {
			typeName, pointer := ReceiverType(fd.Recv.List[0].Type)
			if typeName == "" {
				continue
			}

			ref.Receiver = typeName
			if pointer {
				ref.Receiver = "*" + typeName
			}
		}

		function := m.Function{
			Ref:       ref,
			StartLine: fileSet.Position(fd.Pos()).Line,
			EndLine:   fileSet.Position(fd.End()).Line,
		}

		if !ref.IsMethod() {
			record.Objects[uniqueKey(record.Objects, ref.Name)] = function
			continue
		}

		qualifier := ref.Qualifier()

		methods, ok := record.Objects[qualifier].(map[string]m.Function)
		if !ok {
			methods = map[string]m.Function{}
			record.Objects[qualifier] = methods
		}

		methods[uniqueKey(methods, ref.Name)] = function
	}

	return record
}

// uniqueKey returns name, or name#n for the n-th repeated declaration
// (several init functions may share a file).
func uniqueKey[V any](objects map[string]V, name string) string {
	if _, taken := objects[name]; !taken {
		return name
	}

	for n := 2; ; n++ {
		key := name + "#" + strconv.Itoa(n)
		if _, taken := objects[key]; !taken {
			return key
		}
	}
}

// SplitOrdinal splits an object key such as "init#2" into its declared name
// and 1-based occurrence.
func SplitOrdinal(key string) (string, int) {
	idx := strings.LastIndex(key, "#")
	if idx < 0 {
		return key, 1
	}

	n, err := strconv.Atoi(key[idx+1:])
	if err != nil || n < 2 {
		return key, 1
	}

	return key[:idx], n
}

// ReceiverType returns the base type name of a receiver expression and
// whether it is a pointer receiver. Type parameters are dropped.
func ReceiverType(expr ast.Expr) (string, bool) {
	pointer := false

	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			pointer = true
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.Ident:
			return e.Name, pointer
		default:
			return "", pointer
		}
	}
}

// FindFunction locates a declaration by receiver base type, name and occurrence.
func (a *LocalGoFileAdapter) FindFunction(file *ast.File, receiverType, name string, ordinal int) (*ast.FuncDecl, bool) {
	seen := 0

	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Name == nil || fd.Name.Name != name {
			continue
		}

		declReceiver := ""
		if fd.Recv != nil && len(fd.Recv.List) > 0 {
			declReceiver, _ = ReceiverType(fd.Recv.List[0].Type)
		}

		if declReceiver != receiverType {
			continue
		}

		seen++
		if seen == ordinal {
			return fd, true
		}
	}

	return nil, false
}

// SourceText slices the declaration's bytes out of src.
func (a *LocalGoFileAdapter) SourceText(fileSet *token.FileSet, src []byte, decl *ast.FuncDecl) (string, error) {
	start := fileSet.Position(decl.Pos()).Offset
	end := fileSet.Position(decl.End()).Offset

	if start < 0 || end > len(src) || start > end {
		return "", fmt.Errorf("declaration %s spans [%d,%d) outside source of %d bytes", decl.Name.Name, start, end, len(src))
	}

	return string(src[start:end]), nil
}
