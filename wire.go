package manifest

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Wire format. Every node carries a "kind" field for type
// discrimination. Primitive and phantom nodes name their singleton;
// class-like nodes name their erased representation, which decoding
// resolves through the type registry.

// Marshal encodes d in the JSON wire format.
func Marshal(d Descriptor) ([]byte, error) {
	return json.Marshal(d)
}

// Unmarshal decodes a descriptor from the JSON wire format. Primitive
// and phantom nodes decode to the canonical singletons, so round trips
// preserve identity. Class-like nodes resolve their erased type through
// the registry; an unregistered name yields an *UnknownTypeError.
func Unmarshal(data []byte) (Descriptor, error) {
	var n wireNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	return decodeNode(&n)
}

// UnknownTypeError reports a class node naming an erased type that was
// never registered with RegisterType.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("manifest: unknown type %q (register it with RegisterType)", e.Name)
}

// UnknownKindError reports a wire node with an unrecognized kind field.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("manifest: unknown descriptor kind %q", e.Kind)
}

// MarshalJSON implements json.Marshaler for primitive descriptors.
func (p *primitiveType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}{
		Kind: KindPrimitive.String(),
		Name: p.String(),
	})
}

// MarshalJSON implements json.Marshaler for phantom descriptors.
func (p *phantomType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}{
		Kind: KindPhantom.String(),
		Name: p.name,
	})
}

// MarshalJSON implements json.Marshaler for class descriptors.
func (c *classType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind   string       `json:"kind"`
		Type   string       `json:"type"`
		Prefix Descriptor   `json:"prefix,omitempty"`
		Args   []Descriptor `json:"args,omitempty"`
	}{
		Kind:   KindClass.String(),
		Type:   c.runtime.String(),
		Prefix: c.prefix,
		Args:   c.args,
	})
}

// MarshalJSON implements json.Marshaler for singleton descriptors.
// The captured value is deliberately not serialized; a singleton
// marshals as the class form of its erased representation.
func (s *singletonType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		Type string `json:"type"`
	}{
		Kind: KindClass.String(),
		Type: s.Runtime().String(),
	})
}

// MarshalJSON implements json.Marshaler for abstract type descriptors.
func (a *abstractType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind   string       `json:"kind"`
		Name   string       `json:"name"`
		Bound  string       `json:"bound"`
		Prefix Descriptor   `json:"prefix,omitempty"`
		Args   []Descriptor `json:"args,omitempty"`
	}{
		Kind:   KindAbstract.String(),
		Name:   a.name,
		Bound:  a.upper.String(),
		Prefix: a.prefix,
		Args:   a.args,
	})
}

// MarshalJSON implements json.Marshaler for wildcard descriptors.
func (w *wildcardType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string     `json:"kind"`
		Lower Descriptor `json:"lower"`
		Upper Descriptor `json:"upper"`
	}{
		Kind:  KindWildcard.String(),
		Lower: w.lower,
		Upper: w.upper,
	})
}

// MarshalJSON implements json.Marshaler for intersection descriptors.
func (i *intersectionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string       `json:"kind"`
		Parents []Descriptor `json:"parents"`
	}{
		Kind:    KindIntersection.String(),
		Parents: i.parents,
	})
}

// wireNode is the decoded form of any wire-format node.
type wireNode struct {
	Kind    string      `json:"kind"`
	Name    string      `json:"name,omitempty"`
	Type    string      `json:"type,omitempty"`
	Bound   string      `json:"bound,omitempty"`
	Prefix  *wireNode   `json:"prefix,omitempty"`
	Args    []*wireNode `json:"args,omitempty"`
	Lower   *wireNode   `json:"lower,omitempty"`
	Upper   *wireNode   `json:"upper,omitempty"`
	Parents []*wireNode `json:"parents,omitempty"`
}

func decodeNode(n *wireNode) (Descriptor, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case KindPrimitive.String():
		for k := range primitiveTable {
			if primitiveTable[k].name == n.Name {
				return primitives[k], nil
			}
		}
		return nil, fmt.Errorf("manifest: unknown primitive %q", n.Name)

	case KindPhantom.String():
		for _, p := range phantoms {
			if p.String() == n.Name {
				return p, nil
			}
		}
		return nil, fmt.Errorf("manifest: unknown phantom %q", n.Name)

	case KindClass.String():
		t, err := lookupType(n.Type)
		if err != nil {
			return nil, err
		}
		prefix, err := decodeNode(n.Prefix)
		if err != nil {
			return nil, err
		}
		args, err := decodeNodes(n.Args)
		if err != nil {
			return nil, err
		}
		if prefix != nil {
			return PrefixedClassType(prefix, t, args...), nil
		}
		if len(args) > 0 {
			return ClassType(t, args...), nil
		}
		return ClassOf(t), nil

	case KindAbstract.String():
		upper, err := lookupType(n.Bound)
		if err != nil {
			return nil, err
		}
		prefix, err := decodeNode(n.Prefix)
		if err != nil {
			return nil, err
		}
		args, err := decodeNodes(n.Args)
		if err != nil {
			return nil, err
		}
		return AbstractType(prefix, n.Name, upper, args...), nil

	case KindWildcard.String():
		lower, err := decodeNode(n.Lower)
		if err != nil {
			return nil, err
		}
		upper, err := decodeNode(n.Upper)
		if err != nil {
			return nil, err
		}
		return Wildcard(lower, upper), nil

	case KindIntersection.String():
		parents, err := decodeNodes(n.Parents)
		if err != nil {
			return nil, err
		}
		return IntersectionType(parents...), nil

	default:
		return nil, &UnknownKindError{Kind: n.Kind}
	}
}

func decodeNodes(nodes []*wireNode) ([]Descriptor, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]Descriptor, len(nodes))
	for i, n := range nodes {
		d, err := decodeNode(n)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// Type registry for decoding. Mirrors encoding/gob: callers register
// the concrete types their descriptors may name.

var typeRegistry = struct {
	sync.RWMutex
	byName map[string]reflect.Type
}{byName: make(map[string]reflect.Type)}

// RegisterType records the runtime representation of v so wire-format
// class nodes naming it can be decoded.
func RegisterType(v any) {
	RegisterTypeOf(reflect.TypeOf(v))
}

// RegisterTypeFor records T's runtime representation for decoding.
func RegisterTypeFor[T any]() {
	RegisterTypeOf(reflect.TypeFor[T]())
}

// RegisterTypeOf records t under its reflect string form.
func RegisterTypeOf(t reflect.Type) {
	if t == nil {
		return
	}
	typeRegistry.Lock()
	defer typeRegistry.Unlock()
	typeRegistry.byName[t.String()] = t
}

// builtinTypes are resolvable without registration.
var builtinTypes = map[string]reflect.Type{
	"bool":         reflect.TypeFor[bool](),
	"string":       reflect.TypeFor[string](),
	"int":          reflect.TypeFor[int](),
	"int8":         reflect.TypeFor[int8](),
	"int16":        reflect.TypeFor[int16](),
	"int32":        reflect.TypeFor[int32](),
	"int64":        reflect.TypeFor[int64](),
	"uint":         reflect.TypeFor[uint](),
	"uint8":        reflect.TypeFor[uint8](),
	"uint16":       reflect.TypeFor[uint16](),
	"uint32":       reflect.TypeFor[uint32](),
	"uint64":       reflect.TypeFor[uint64](),
	"uintptr":      reflect.TypeFor[uintptr](),
	"float32":      reflect.TypeFor[float32](),
	"float64":      reflect.TypeFor[float64](),
	"complex64":    reflect.TypeFor[complex64](),
	"complex128":   reflect.TypeFor[complex128](),
	"interface {}": anyRuntime,
	"error":        reflect.TypeFor[error](),

	"manifest.BoxedUnit": reflect.TypeFor[BoxedUnit](),
}

// lookupType resolves an erased-type name to a reflect.Type: builtins
// and registered types directly, slice and pointer forms structurally.
func lookupType(name string) (reflect.Type, error) {
	if t, ok := builtinTypes[name]; ok {
		return t, nil
	}
	typeRegistry.RLock()
	t, ok := typeRegistry.byName[name]
	typeRegistry.RUnlock()
	if ok {
		return t, nil
	}
	if rest, found := strings.CutPrefix(name, "[]"); found {
		elem, err := lookupType(rest)
		if err != nil {
			return nil, &UnknownTypeError{Name: name}
		}
		return reflect.SliceOf(elem), nil
	}
	if rest, found := strings.CutPrefix(name, "*"); found {
		elem, err := lookupType(rest)
		if err != nil {
			return nil, &UnknownTypeError{Name: name}
		}
		return reflect.PointerTo(elem), nil
	}
	return nil, &UnknownTypeError{Name: name}
}
