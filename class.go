package manifest

import "reflect"

// classType describes a possibly-parameterized named type: an optional
// prefix for nested (path-dependent) types, the erased representation,
// and the ordered type arguments.
type classType struct {
	prefix  Descriptor
	runtime reflect.Type
	args    []Descriptor
}

// ClassOf returns a descriptor for t with no type arguments. This is
// the hot-path form: ArrayOf and FromType use it without re-entering
// the array construction logic.
func ClassOf(t reflect.Type) Descriptor {
	return &classType{runtime: t}
}

// ClassType returns a descriptor for t parameterized by args. The
// arguments are not checked against t's arity; callers are trusted to
// supply a type and argument list that are mutually consistent.
func ClassType(t reflect.Type, args ...Descriptor) Descriptor {
	return &classType{runtime: t, args: args}
}

// PrefixedClassType returns a descriptor for a type nested inside the
// type described by prefix.
func PrefixedClassType(prefix Descriptor, t reflect.Type, args ...Descriptor) Descriptor {
	return &classType{prefix: prefix, runtime: t, args: args}
}

// ArrayType returns the descriptor for a slice of elem's type.
func ArrayType(elem Descriptor) Descriptor {
	return elem.ArrayOf()
}

func (c *classType) Kind() Kind { return KindClass }

func (c *classType) Runtime() reflect.Type { return c.runtime }

func (c *classType) TypeArgs() []Descriptor { return c.args }

func (c *classType) AssignableTo(other Descriptor) bool {
	return erasedAssignable(c, other)
}

func (c *classType) Equal(other Descriptor) bool {
	return approxEqual(c, other)
}

func (c *classType) NewArray(n int) any {
	return newSliceOf(c.runtime, n)
}

func (c *classType) ArrayOf() Descriptor {
	return ClassType(reflect.SliceOf(c.runtime), c)
}

func (c *classType) String() string {
	name := c.runtime.String()
	if c.prefix != nil {
		name = c.prefix.String() + "#" + name
	}
	return name + argString(c.args)
}

func (c *classType) sealed() {}
