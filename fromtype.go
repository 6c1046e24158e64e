package manifest

import "reflect"

// FromType returns a descriptor for t. Types whose erased
// representation matches one of the nine primitive kinds resolve to the
// canonical primitive singletons, the empty interface resolves to Any,
// slices become array descriptors, and maps, channels, and fixed arrays
// become class descriptors carrying their element descriptors as type
// arguments. Everything else becomes a plain class descriptor.
func FromType(t reflect.Type) Descriptor {
	if t == nil {
		return Any
	}
	if p, ok := primitiveFor(t); ok {
		return p
	}
	switch t.Kind() {
	case reflect.Slice:
		return FromType(t.Elem()).ArrayOf()
	case reflect.Array:
		return ClassType(t, FromType(t.Elem()))
	case reflect.Map:
		return ClassType(t, FromType(t.Key()), FromType(t.Elem()))
	case reflect.Chan:
		return ClassType(t, FromType(t.Elem()))
	case reflect.Interface:
		if t == anyRuntime {
			return Any
		}
		return ClassOf(t)
	default:
		return ClassOf(t)
	}
}

// primitiveFor maps an erased representation back to the canonical
// primitive singleton, if one matches.
func primitiveFor(t reflect.Type) (Descriptor, bool) {
	for k := range primitiveTable {
		if primitiveTable[k].runtime == t {
			return primitives[k], true
		}
	}
	return nil, false
}
