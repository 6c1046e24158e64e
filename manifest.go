// Package manifest provides runtime-retained type descriptors.
//
// A Descriptor is an opaque handle for a type: it exposes the type's
// erased runtime representation (a reflect.Type), an approximate
// subtype test against another descriptor, an approximate equality
// test, and slice construction for the element type. Generic code uses
// descriptors to allocate collections of a statically-unknown element
// type and to compare type handles at runtime.
//
// Subtyping and equality are approximations: not all conformance rules
// are representable on erased types, so AssignableTo must not be
// treated as a sound type-conformance oracle.
package manifest

import (
	"reflect"
	"strings"
)

// Kind identifies the category of a descriptor.
type Kind int

const (
	KindPrimitive Kind = iota // One of the nine primitive value kinds
	KindPhantom               // Any, Object, Value, Null, Nothing
	KindClass                 // Possibly-parameterized named type
	KindSingleton             // Exact type of one specific value
	KindAbstract              // Named type bound by an upper bound
	KindWildcard              // Unknown type bounded below and above
	KindIntersection          // Conjunction of parent descriptors
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindPhantom:
		return "phantom"
	case KindClass:
		return "class"
	case KindSingleton:
		return "singleton"
	case KindAbstract:
		return "abstract"
	case KindWildcard:
		return "wildcard"
	case KindIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// Descriptor is a runtime-retained type descriptor.
//
// Descriptors are immutable once constructed. The interface is sealed;
// instances come from the package-level singletons (Int, Boolean, Any,
// ...) and constructors (ClassOf, ClassType, SingletonType, ...).
type Descriptor interface {
	// Kind returns the descriptor kind for type switching.
	Kind() Kind

	// Runtime returns the type-erased runtime representation.
	// It is never nil and is stable for the life of the descriptor.
	Runtime() reflect.Type

	// TypeArgs returns the ordered type-argument descriptors.
	// Empty unless the descriptor represents a parameterized type.
	TypeArgs() []Descriptor

	// AssignableTo reports whether this descriptor's type conforms to
	// other's. The result is an approximation: class-like descriptors
	// delegate to the erased representations, so type arguments and
	// variance are not consulted.
	AssignableTo(other Descriptor) bool

	// Equal reports whether both descriptors describe the same type:
	// identical erased representations and mutual AssignableTo.
	Equal(other Descriptor) bool

	// NewArray allocates a slice of length n whose element type is the
	// erased representation. The returned value is a []T boxed in any.
	NewArray(n int) any

	// ArrayOf returns the descriptor for a slice of this type.
	ArrayOf() Descriptor

	// String returns a display form of the descriptor.
	String() string

	// Ensure only types in this package can implement Descriptor.
	sealed()
}

// BoxedUnit is the boxed unit value. The Unit descriptor erases to it
// so that unit slices are real, correctly-typed allocations.
type BoxedUnit struct{}

var anyRuntime = reflect.TypeFor[any]()

// Of returns the descriptor for T. Primitive-shaped types map to the
// canonical primitive singletons; everything else goes through FromType.
func Of[T any]() Descriptor {
	return FromType(reflect.TypeFor[T]())
}

// noArgs provides the default empty type-argument list for descriptors
// that are never parameterized.
type noArgs struct{}

func (noArgs) TypeArgs() []Descriptor { return nil }
func (noArgs) sealed()                {}

// approxEqual implements Equal for all descriptors. Testing erasure
// first is important: it is many times faster and rules out most
// comparisons before the two subtype checks run.
func approxEqual(d, other Descriptor) bool {
	if other == nil {
		return false
	}
	if d == other {
		return true
	}
	if d.Runtime() != other.Runtime() {
		return false
	}
	return d.AssignableTo(other) && other.AssignableTo(d)
}

// erasedAssignable is the default subtype rule for class-like
// descriptors: phantoms are handled by the fixed lattice, everything
// else delegates to the erased representation's own assignability
// check.
func erasedAssignable(d, other Descriptor) bool {
	switch other {
	case nil:
		return false
	case Any, Object:
		return true
	case Value, Null, Nothing:
		return false
	}
	if d == other {
		return true
	}
	return d.Runtime().AssignableTo(other.Runtime())
}

// newSliceOf is the generic array-construction path: a []T of length n
// built through reflection from the erased representation.
func newSliceOf(t reflect.Type, n int) any {
	return reflect.MakeSlice(reflect.SliceOf(t), n, n).Interface()
}

// argString renders a type-argument list as "[A,B]", or "" when empty.
func argString(args []Descriptor) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}
