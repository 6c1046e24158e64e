package manifest

import "reflect"

// PrimitiveKind identifies one of the nine primitive value kinds.
type PrimitiveKind int

const (
	ByteKind    PrimitiveKind = iota // byte (uint8)
	ShortKind                        // int16
	CharKind                         // rune (int32)
	IntKind                          // int
	LongKind                         // int64
	FloatKind                        // float32
	DoubleKind                       // float64
	BooleanKind                      // bool
	UnitKind                         // BoxedUnit
)

// String returns the display name of the primitive kind.
func (k PrimitiveKind) String() string {
	if k < 0 || int(k) >= len(primitiveTable) {
		return "Unknown"
	}
	return primitiveTable[k].name
}

// primitiveInfo drives one primitive singleton: its display name, its
// erased representation, and a direct slice constructor. The direct
// constructor keeps primitive allocation off the generic reflect path.
type primitiveInfo struct {
	name     string
	runtime  reflect.Type
	newSlice func(n int) any
}

var primitiveTable = [...]primitiveInfo{
	ByteKind:    {"Byte", reflect.TypeFor[byte](), func(n int) any { return make([]byte, n) }},
	ShortKind:   {"Short", reflect.TypeFor[int16](), func(n int) any { return make([]int16, n) }},
	CharKind:    {"Char", reflect.TypeFor[rune](), func(n int) any { return make([]rune, n) }},
	IntKind:     {"Int", reflect.TypeFor[int](), func(n int) any { return make([]int, n) }},
	LongKind:    {"Long", reflect.TypeFor[int64](), func(n int) any { return make([]int64, n) }},
	FloatKind:   {"Float", reflect.TypeFor[float32](), func(n int) any { return make([]float32, n) }},
	DoubleKind:  {"Double", reflect.TypeFor[float64](), func(n int) any { return make([]float64, n) }},
	BooleanKind: {"Boolean", reflect.TypeFor[bool](), func(n int) any { return make([]bool, n) }},
	// Unit allocates []BoxedUnit directly; its erased representation
	// cannot produce a useful unit slice through the generic path.
	UnitKind: {"Unit", reflect.TypeFor[BoxedUnit](), func(n int) any { return make([]BoxedUnit, n) }},
}

// Canonical primitive singletons. Construction elsewhere in the package
// (FromType, Unmarshal) always resolves back to these, so primitives
// can be compared by identity.
var (
	Byte    Descriptor = &primitiveType{kind: ByteKind}
	Short   Descriptor = &primitiveType{kind: ShortKind}
	Char    Descriptor = &primitiveType{kind: CharKind}
	Int     Descriptor = &primitiveType{kind: IntKind}
	Long    Descriptor = &primitiveType{kind: LongKind}
	Float   Descriptor = &primitiveType{kind: FloatKind}
	Double  Descriptor = &primitiveType{kind: DoubleKind}
	Boolean Descriptor = &primitiveType{kind: BooleanKind}
	Unit    Descriptor = &primitiveType{kind: UnitKind}
)

// primitives lists the singletons indexed by PrimitiveKind.
var primitives = [...]Descriptor{
	ByteKind:    Byte,
	ShortKind:   Short,
	CharKind:    Char,
	IntKind:     Int,
	LongKind:    Long,
	FloatKind:   Float,
	DoubleKind:  Double,
	BooleanKind: Boolean,
	UnitKind:    Unit,
}

// primitiveType is the single implementation behind all nine primitive
// singletons; per-kind behavior comes from primitiveTable.
type primitiveType struct {
	noArgs
	kind PrimitiveKind
}

func (p *primitiveType) Kind() Kind { return KindPrimitive }

func (p *primitiveType) PrimitiveKind() PrimitiveKind { return p.kind }

func (p *primitiveType) Runtime() reflect.Type {
	return primitiveTable[p.kind].runtime
}

// AssignableTo encodes the primitive lattice: a primitive's only proper
// supertypes are Value and Any.
func (p *primitiveType) AssignableTo(other Descriptor) bool {
	return other == Descriptor(p) || other == Value || other == Any
}

func (p *primitiveType) Equal(other Descriptor) bool {
	return approxEqual(p, other)
}

func (p *primitiveType) NewArray(n int) any {
	return primitiveTable[p.kind].newSlice(n)
}

func (p *primitiveType) ArrayOf() Descriptor {
	return ClassType(reflect.SliceOf(p.Runtime()), p)
}

func (p *primitiveType) String() string {
	return primitiveTable[p.kind].name
}
