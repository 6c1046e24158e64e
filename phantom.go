package manifest

import "reflect"

// The five phantom singletons form a small fixed lattice:
//
//	Nothing <: every non-nil descriptor
//	Null    <: every descriptor that is neither Nothing nor a value type
//	Object  <: Any
//	Value   <: Any
//	Any     <: only itself
//
// Phantoms have no structural decomposition, so they are compared by
// identity, never by content.
var (
	// Any is the universal top type.
	Any Descriptor

	// Object is the supertype of all non-value types.
	Object Descriptor

	// Value is the supertype of all primitive value types.
	Value Descriptor

	// Null is the type of the null reference: a subtype of everything
	// except Nothing and the value types.
	Null Descriptor

	// Nothing is the bottom type.
	Nothing Descriptor
)

// The closures refer to the singletons themselves, so they are assigned
// in init to avoid an initialization cycle; they only run after init.
func init() {
	Any = &phantomType{
		name: "Any",
		sub:  func(other Descriptor) bool { return other == Any },
	}
	Object = &phantomType{
		name: "Object",
		sub:  func(other Descriptor) bool { return other == Object || other == Any },
	}
	Value = &phantomType{
		name: "Value",
		sub:  func(other Descriptor) bool { return other == Value || other == Any },
	}
	Null = &phantomType{
		name: "Null",
		sub: func(other Descriptor) bool {
			return other != nil && other != Nothing && !other.AssignableTo(Value)
		},
	}
	Nothing = &phantomType{
		name: "Nothing",
		sub:  func(other Descriptor) bool { return other != nil },
	}
	phantoms = []Descriptor{Any, Object, Value, Null, Nothing}
}

// phantoms lists the singletons for wire-format resolution. It is
// populated in init, after the singletons themselves are assigned.
var phantoms []Descriptor

// phantomType implements the five phantom singletons. All of them erase
// to the empty interface; the lattice rule, not the erasure, is what
// distinguishes them.
type phantomType struct {
	noArgs
	name string
	sub  func(other Descriptor) bool
}

func (p *phantomType) Kind() Kind { return KindPhantom }

func (p *phantomType) Runtime() reflect.Type { return anyRuntime }

func (p *phantomType) AssignableTo(other Descriptor) bool {
	return p.sub(other)
}

// Equal is identity for phantoms.
func (p *phantomType) Equal(other Descriptor) bool {
	return Descriptor(p) == other
}

func (p *phantomType) NewArray(n int) any {
	return make([]any, n)
}

func (p *phantomType) ArrayOf() Descriptor {
	return ClassType(reflect.SliceOf(anyRuntime), p)
}

func (p *phantomType) String() string { return p.name }
