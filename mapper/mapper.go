// Package mapper holds the runtime registry of compiled type maps and the
// map(source) -> destination entry points.
package mapper

import (
	"errors"
	"fmt"
	"reflect"

	"object-mapper/mapping"
)

var (
	ErrNoMapFound       = errors.New("no type map registered for the requested type pair")
	ErrDuplicateTypeMap = errors.New("two type maps share the same type pair")
	ErrNilSource        = errors.New("source instance is nil")
)

// TypePair identifies a registered type map. Types are stored with pointers
// stripped, so a map registered for (A, B) serves both A and *A sources.
type TypePair struct {
	Src, Dst reflect.Type
}

// Mapper resolves and executes type maps for requested type pairs. Lookups
// are goroutine safe; construction is not concurrent.
type Mapper struct {
	maps map[TypePair]*mapping.TypeMap
	inst mapping.Instantiator
}

type Option func(*Mapper)

// WithInstantiator replaces the default parameterless construction, e.g. with
// a dependency-injection container resolution.
func WithInstantiator(inst mapping.Instantiator) Option {
	return func(m *Mapper) {
		if inst != nil {
			m.inst = inst
		}
	}
}

// New builds a runtime over a collection of compiled type maps.
func New(maps []*mapping.TypeMap, opts ...Option) (*Mapper, error) {
	m := &Mapper{
		maps: make(map[TypePair]*mapping.TypeMap, len(maps)),
		inst: DefaultInstantiator{},
	}

	for _, tm := range maps {
		// keys are stored pointer-stripped, matching the lookup in MapTo
		key := TypePair{Src: baseType(tm.Source()), Dst: baseType(tm.Dest())}
		if _, exists := m.maps[key]; exists {
			return nil, fmt.Errorf("%w: %s -> %s", ErrDuplicateTypeMap, key.Src, key.Dst)
		}

		m.maps[key] = tm
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Map maps src into a freshly created D using the registered type map for
// (runtime type of src, D).
func Map[D any](m *Mapper, src any) (*D, error) {
	out, err := m.MapTo(src, reflect.TypeFor[D]())
	if err != nil {
		return nil, err
	}

	return out.(*D), nil
}

// MapTo is the dynamic form of Map. It looks up the type map, creates the
// destination through the instantiator bound into a fresh mapping context,
// executes the map and returns a pointer to the destination. It also serves
// nested mapping calls as the mapping.Runtime backing the context.
func (m *Mapper) MapTo(src any, dst reflect.Type) (any, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	key := TypePair{Src: baseType(reflect.TypeOf(src)), Dst: baseType(dst)}

	tm, ok := m.maps[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoMapFound, key.Src, key.Dst)
	}

	out, err := m.inst.Create(reflect.PointerTo(key.Dst))
	if err != nil {
		return nil, fmt.Errorf("instantiate destination %s: %w", key.Dst, err)
	}

	source, err := pointerTo(src, key.Src)
	if err != nil {
		return nil, err
	}

	ctx := mapping.NewContext(m.inst, m)
	if err := tm.Execute(source, out, ctx); err != nil {
		return nil, err
	}

	return out, nil
}

var _ mapping.Runtime = (*Mapper)(nil)

func baseType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}

// pointerTo normalizes a source instance to exactly one pointer level,
// unwrapping multi-level pointers and copying value sources into fresh
// addressable storage.
func pointerTo(src any, base reflect.Type) (any, error) {
	v := reflect.ValueOf(src)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: %s", ErrNilSource, v.Type())
		}

		if v.Type().Elem() == base {
			return v.Interface(), nil
		}

		v = v.Elem()
	}

	boxed := reflect.New(base)
	boxed.Elem().Set(v)

	return boxed.Interface(), nil
}
