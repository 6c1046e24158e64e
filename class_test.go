package manifest

import (
	"io"
	"reflect"
	"testing"
)

type node struct {
	next *node
}

func TestClassType_String(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		want string
	}{
		{
			"bare class",
			ClassOf(reflect.TypeFor[string]()),
			"string",
		},
		{
			"parameterized class",
			ClassType(reflect.TypeFor[map[string]int](), ClassOf(reflect.TypeFor[string]()), Int),
			"map[string]int[string,Int]",
		},
		{
			"prefixed class",
			PrefixedClassType(ClassOf(reflect.TypeFor[node]()), reflect.TypeFor[*node]()),
			"manifest.node#*manifest.node",
		},
		{
			"array of int",
			ArrayType(Int),
			"[]int[Int]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassType_AssignableTo(t *testing.T) {
	str := ClassOf(reflect.TypeFor[string]())
	reader := ClassOf(reflect.TypeFor[io.Reader]())
	buf := ClassOf(reflect.TypeFor[*testWriterTo]())

	tests := []struct {
		name string
		from Descriptor
		to   Descriptor
		want bool
	}{
		{"identity", str, str, true},
		{"to Any", str, Any, true},
		{"to Object", str, Object, true},
		{"to Value", str, Value, false},
		{"to Null", str, Null, false},
		{"to Nothing", str, Nothing, false},
		{"to nil", str, nil, false},
		{"unrelated", str, ClassOf(reflect.TypeFor[int]()), false},
		{"interface satisfied", buf, reader, true},
		{"interface not satisfied", str, reader, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.AssignableTo(tt.to); got != tt.want {
				t.Errorf("AssignableTo = %v, want %v", got, tt.want)
			}
		})
	}
}

// testWriterTo exists to give the assignability tests a concrete type
// that implements io.Reader.
type testWriterTo struct{}

func (*testWriterTo) Read(p []byte) (int, error) { return 0, io.EOF }

func TestClassType_Equal(t *testing.T) {
	a := ClassOf(reflect.TypeFor[string]())
	b := ClassOf(reflect.TypeFor[string]())
	c := ClassType(reflect.TypeFor[string]())

	if !a.Equal(a) {
		t.Error("Equal should be reflexive")
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Error("distinct descriptors with the same erasure should be equal both ways")
	}
	if !a.Equal(c) {
		t.Error("ClassOf and no-argument ClassType should be equal")
	}
	if a.Equal(ClassOf(reflect.TypeFor[int]())) {
		t.Error("different erasures should not be equal")
	}
	if a.Equal(nil) {
		t.Error("Equal(nil) should be false")
	}
}

func TestClassType_NewArray(t *testing.T) {
	str := ClassOf(reflect.TypeFor[string]())
	got, ok := str.NewArray(3).([]string)
	if !ok {
		t.Fatalf("NewArray(3) = %T, want []string", str.NewArray(3))
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestArrayType_Composition(t *testing.T) {
	arr := ArrayType(Int)
	got, ok := arr.NewArray(3).([][]int)
	if !ok {
		t.Fatalf("ArrayType(Int).NewArray(3) = %T, want [][]int", arr.NewArray(3))
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}

	nested := ArrayType(arr)
	if nested.Runtime() != reflect.TypeFor[[][]int]() {
		t.Errorf("nested Runtime() = %v, want [][]int", nested.Runtime())
	}
	args := nested.TypeArgs()
	if len(args) != 1 || !args[0].Equal(arr) {
		t.Errorf("nested TypeArgs() = %v, want the inner array descriptor", args)
	}
}
