package manifest

import (
	"reflect"
	"strings"
)

// abstractType describes a named type bound to a prefix, with an
// explicit upper-bound erased representation and type arguments.
type abstractType struct {
	prefix Descriptor
	name   string
	upper  reflect.Type
	args   []Descriptor
}

// AbstractType returns a descriptor for the named type bound by upper.
// Like the other compound constructors, nothing is validated here;
// inconsistent input surfaces later in subtype or equality checks.
func AbstractType(prefix Descriptor, name string, upper reflect.Type, args ...Descriptor) Descriptor {
	return &abstractType{prefix: prefix, name: name, upper: upper, args: args}
}

func (a *abstractType) Kind() Kind { return KindAbstract }

func (a *abstractType) Runtime() reflect.Type { return a.upper }

func (a *abstractType) TypeArgs() []Descriptor { return a.args }

func (a *abstractType) AssignableTo(other Descriptor) bool {
	return erasedAssignable(a, other)
}

func (a *abstractType) Equal(other Descriptor) bool {
	return approxEqual(a, other)
}

func (a *abstractType) NewArray(n int) any {
	return newSliceOf(a.upper, n)
}

func (a *abstractType) ArrayOf() Descriptor {
	return ClassType(reflect.SliceOf(a.upper), a)
}

func (a *abstractType) String() string {
	name := a.name
	if a.prefix != nil {
		name = a.prefix.String() + "#" + name
	}
	return name + argString(a.args)
}

func (a *abstractType) sealed() {}

// wildcardType describes an unknown type constrained by a lower and an
// upper bound. Its erased representation is the upper bound's.
type wildcardType struct {
	noArgs
	lower Descriptor
	upper Descriptor
}

// Wildcard returns a descriptor for an unknown type bounded below by
// lower and above by upper.
func Wildcard(lower, upper Descriptor) Descriptor {
	return &wildcardType{lower: lower, upper: upper}
}

func (w *wildcardType) Kind() Kind { return KindWildcard }

func (w *wildcardType) Runtime() reflect.Type { return w.upper.Runtime() }

func (w *wildcardType) AssignableTo(other Descriptor) bool {
	return erasedAssignable(w, other)
}

func (w *wildcardType) Equal(other Descriptor) bool {
	return approxEqual(w, other)
}

func (w *wildcardType) NewArray(n int) any {
	return newSliceOf(w.Runtime(), n)
}

func (w *wildcardType) ArrayOf() Descriptor {
	return ClassType(reflect.SliceOf(w.Runtime()), w)
}

func (w *wildcardType) String() string {
	return "_ >: " + w.lower.String() + " <: " + w.upper.String()
}

// intersectionType describes the conjunction of an ordered sequence of
// parent descriptors. The erased representation is the first parent's.
type intersectionType struct {
	noArgs
	parents []Descriptor
}

// IntersectionType returns a descriptor for the conjunction of parents.
// At least one parent is expected; an empty list surfaces later as a
// panic in Runtime, never as a construction error.
func IntersectionType(parents ...Descriptor) Descriptor {
	return &intersectionType{parents: parents}
}

func (i *intersectionType) Kind() Kind { return KindIntersection }

func (i *intersectionType) Runtime() reflect.Type {
	return i.parents[0].Runtime()
}

func (i *intersectionType) AssignableTo(other Descriptor) bool {
	return erasedAssignable(i, other)
}

func (i *intersectionType) Equal(other Descriptor) bool {
	return approxEqual(i, other)
}

func (i *intersectionType) NewArray(n int) any {
	return newSliceOf(i.Runtime(), n)
}

func (i *intersectionType) ArrayOf() Descriptor {
	return ClassType(reflect.SliceOf(i.Runtime()), i)
}

func (i *intersectionType) String() string {
	parts := make([]string, len(i.parents))
	for n, p := range i.parents {
		parts[n] = p.String()
	}
	return strings.Join(parts, " with ")
}
