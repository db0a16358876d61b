package mapping

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrTypeIsNotResolver = errors.New("type does not satisfy the value resolver capability")

// Resolver is a pluggable strategy computing one destination member value
// from the full mapping state. ResultType declares the static type of values
// Resolve produces; configurations check it against the target member.
type Resolver interface {
	Resolve(args Args) (any, error)
	ResultType() reflect.Type
}

// ResolverFor adapts a typed function into a Resolver whose declared result
// type is T.
type ResolverFor[T any] func(args Args) (T, error)

func (r ResolverFor[T]) Resolve(args Args) (any, error) { return r(args) }

func (r ResolverFor[T]) ResultType() reflect.Type { return reflect.TypeFor[T]() }

var resolverIface = reflect.TypeOf((*Resolver)(nil)).Elem()

// ParseResolverType checks that rtype satisfies Resolver, either directly or
// through a pointer receiver, and returns the concrete type to instantiate.
func ParseResolverType(rtype reflect.Type) (reflect.Type, error) {
	if rtype == nil {
		return nil, fmt.Errorf("%w: nil type", ErrTypeIsNotResolver)
	}

	if rtype.Implements(resolverIface) {
		return rtype, nil
	}

	if rtype.Kind() != reflect.Ptr && reflect.PointerTo(rtype).Implements(resolverIface) {
		return reflect.PointerTo(rtype), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrTypeIsNotResolver, rtype)
}

// probeResultType reads the declared result type off a throwaway zero
// instance of an already validated resolver type.
func probeResultType(concrete reflect.Type) reflect.Type {
	var probe Resolver
	if concrete.Kind() == reflect.Ptr {
		probe = reflect.New(concrete.Elem()).Interface().(Resolver)
	} else {
		probe = reflect.Zero(concrete).Interface().(Resolver)
	}

	return probe.ResultType()
}
