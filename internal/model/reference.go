package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// TopLevel is the qualifier for package-level functions. Their entries live
// directly under the "objects" key of a module record.
const TopLevel = ""

// ErrInvalidReference is returned when a stored reference string cannot be
// parsed or does not agree with the lookup path it was found under.
var ErrInvalidReference = errors.New("invalid callable reference")

// Reference identifies a function or method by file, package, receiver and name.
type Reference struct {
	File     Path
	Package  string
	Receiver string // "", "T" or "*T"
	Name     string
}

// IsMethod reports whether the reference points at a method.
func (r Reference) IsMethod() bool {
	return r.Receiver != ""
}

// ReceiverType returns the receiver's base type name without the pointer.
func (r Reference) ReceiverType() string {
	return strings.TrimPrefix(r.Receiver, "*")
}

// Qualifier returns the object key the reference is grouped under.
func (r Reference) Qualifier() string {
	if !r.IsMethod() {
		return TopLevel
	}

	return Qualifier(r.Package, r.ReceiverType())
}

// String renders the reference as `<func pkg.Name in file>` or
// `<func pkg.(*T).Name in file>`.
func (r Reference) String() string {
	if r.IsMethod() {
		return fmt.Sprintf("<func %s.(%s).%s in %s>", r.Package, r.Receiver, r.Name, r.File)
	}

	return fmt.Sprintf("<func %s.%s in %s>", r.Package, r.Name, r.File)
}

var referencePattern = regexp.MustCompile(`^<func ([^\s.()*]+)\.(?:\((\*?[^\s.()*]+)\)\.)?([^\s.()*]+) in (.+)>$`)

// ParseReference is the inverse of Reference.String. The text is matched
// against a fixed grammar and never evaluated.
func ParseReference(text string) (Reference, error) {
	match := referencePattern.FindStringSubmatch(text)
	if match == nil {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, text)
	}

	return Reference{
		Package:  match[1],
		Receiver: match[2],
		Name:     match[3],
		File:     Path(match[4]),
	}, nil
}

// Qualifier builds the class qualifier for a named type declared in pkg.
func Qualifier(pkg, typeName string) string {
	return fmt.Sprintf("<type %s.%s>", pkg, typeName)
}

var qualifierPattern = regexp.MustCompile(`^<type ([^\s.]+)\.([^\s.]+)>$`)

// ParseQualifier splits a qualifier into its package and type name.
func ParseQualifier(qualifier string) (pkg, typeName string, err error) {
	match := qualifierPattern.FindStringSubmatch(qualifier)
	if match == nil {
		return "", "", fmt.Errorf("%w: malformed qualifier %q", ErrInvalidReference, qualifier)
	}

	return match[1], match[2], nil
}
