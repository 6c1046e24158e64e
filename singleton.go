package manifest

import (
	"fmt"
	"reflect"
	"sync"
)

// singletonType describes the exact type of one specific value. The
// erased representation is derived from the value on first use and
// memoized; the derivation is idempotent and side-effect-free, so a
// concurrent first call can only repeat the work.
type singletonType struct {
	noArgs
	value   any
	once    sync.Once
	runtime reflect.Type
}

// SingletonType returns a descriptor for the exact type of value.
func SingletonType(value any) Descriptor {
	return &singletonType{value: value}
}

func (s *singletonType) Kind() Kind { return KindSingleton }

func (s *singletonType) Runtime() reflect.Type {
	s.once.Do(func() {
		s.runtime = reflect.TypeOf(s.value)
		if s.runtime == nil {
			// A nil value has no dynamic type; fall back to the top
			// type's erasure so Runtime never returns nil.
			s.runtime = anyRuntime
		}
	})
	return s.runtime
}

func (s *singletonType) AssignableTo(other Descriptor) bool {
	return erasedAssignable(s, other)
}

func (s *singletonType) Equal(other Descriptor) bool {
	return approxEqual(s, other)
}

func (s *singletonType) NewArray(n int) any {
	return newSliceOf(s.Runtime(), n)
}

func (s *singletonType) ArrayOf() Descriptor {
	return ClassType(reflect.SliceOf(s.Runtime()), s)
}

func (s *singletonType) String() string {
	return fmt.Sprintf("%v.type", s.value)
}
