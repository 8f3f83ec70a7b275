// Package model defines the data structures for function snapshots.
package model

// Path represents a file system path.
type Path string
