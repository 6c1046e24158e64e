// Package testdata contains sample types for scan tests.
package testdata

// Vector is a plain exported struct.
type Vector struct {
	X, Y float64
}

// ID is a defined type over a primitive-mapped basic.
type ID int64

// Pair is a generic type; uninstantiated it carries no type arguments.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Registry mixes compound field types.
type Registry struct {
	Entries map[string]*Vector
	Tags    []ID
}

// Handle is a non-empty interface.
type Handle interface {
	Close() error
}

type unexported struct{}

var _ = unexported{}
