package mapper

import (
	"fmt"
	"reflect"

	"object-mapper/mapping"
)

// DefaultInstantiator creates instances by parameterless construction: a
// pointer type yields a pointer to a fresh zero value, anything else yields
// its zero value. It backs destination construction and type-referenced
// resolver construction unless the embedding application injects its own.
type DefaultInstantiator struct{}

var _ mapping.Instantiator = DefaultInstantiator{}

func (DefaultInstantiator) Create(rtype reflect.Type) (any, error) {
	if rtype == nil {
		return nil, fmt.Errorf("cannot instantiate nil type")
	}

	if rtype.Kind() == reflect.Ptr {
		return reflect.New(rtype.Elem()).Interface(), nil
	}

	return reflect.Zero(rtype).Interface(), nil
}
