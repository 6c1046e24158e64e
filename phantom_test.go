package manifest

import (
	"reflect"
	"testing"
)

func TestPhantom_Lattice(t *testing.T) {
	someClass := ClassOf(reflect.TypeFor[string]())

	tests := []struct {
		name string
		from Descriptor
		to   Descriptor
		want bool
	}{
		{"Any to Any", Any, Any, true},
		{"Any to Object", Any, Object, false},
		{"Any to Value", Any, Value, false},
		{"Any to class", Any, someClass, false},

		{"Object to Object", Object, Object, true},
		{"Object to Any", Object, Any, true},
		{"Object to Value", Object, Value, false},
		{"Object to Null", Object, Null, false},

		{"Value to Value", Value, Value, true},
		{"Value to Any", Value, Any, true},
		{"Value to Object", Value, Object, false},

		{"Null to Null", Null, Null, true},
		{"Null to Any", Null, Any, true},
		{"Null to Object", Null, Object, true},
		{"Null to class", Null, someClass, true},
		{"Null to Value", Null, Value, false},
		{"Null to Int", Null, Int, false},
		{"Null to Nothing", Null, Nothing, false},
		{"Null to nil", Null, nil, false},

		{"Nothing to Nothing", Nothing, Nothing, true},
		{"Nothing to Any", Nothing, Any, true},
		{"Nothing to Null", Nothing, Null, true},
		{"Nothing to Value", Nothing, Value, true},
		{"Nothing to Int", Nothing, Int, true},
		{"Nothing to class", Nothing, someClass, true},
		{"Nothing to nil", Nothing, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.AssignableTo(tt.to); got != tt.want {
				t.Errorf("%s.AssignableTo(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPhantom_Runtime(t *testing.T) {
	for _, p := range phantoms {
		t.Run(p.String(), func(t *testing.T) {
			if p.Runtime() != anyRuntime {
				t.Errorf("Runtime() = %v, want interface {}", p.Runtime())
			}
			if p.Kind() != KindPhantom {
				t.Errorf("Kind() = %v, want KindPhantom", p.Kind())
			}
		})
	}
}

func TestPhantom_IdentityEquality(t *testing.T) {
	// All phantoms share the same erased representation, so equality
	// must be identity, not erasure comparison.
	for _, p := range phantoms {
		for _, q := range phantoms {
			want := p == q
			if got := p.Equal(q); got != want {
				t.Errorf("%s.Equal(%s) = %v, want %v", p, q, got, want)
			}
		}
	}
	if Any.Equal(nil) {
		t.Error("Any should not equal nil")
	}
}

func TestPhantom_NewArray(t *testing.T) {
	for _, p := range phantoms {
		t.Run(p.String(), func(t *testing.T) {
			got, ok := p.NewArray(5).([]any)
			if !ok {
				t.Fatalf("NewArray(5) = %T, want []interface {}", p.NewArray(5))
			}
			if len(got) != 5 {
				t.Errorf("len = %d, want 5", len(got))
			}
		})
	}
}

func TestPhantom_ArrayOf(t *testing.T) {
	arr := Nothing.ArrayOf()
	if arr.Kind() != KindClass {
		t.Errorf("Kind() = %v, want KindClass", arr.Kind())
	}
	if arr.Runtime() != reflect.TypeFor[[]any]() {
		t.Errorf("Runtime() = %v, want []interface {}", arr.Runtime())
	}
	args := arr.TypeArgs()
	if len(args) != 1 || args[0] != Nothing {
		t.Errorf("TypeArgs() = %v, want [Nothing]", args)
	}
}
