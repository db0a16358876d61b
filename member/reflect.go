package member

import (
	"fmt"
	"reflect"
)

// ReflectProvider resolves members by name on every accessor invocation.
// Simple and slow; it exists as the correctness reference for the compiled
// strategy and as a fallback where pre-resolved access is not wanted.
type ReflectProvider struct{}

var _ Provider = ReflectProvider{}

func (ReflectProvider) Getter(rtype reflect.Type, name string) (Getter, error) {
	if _, err := lookupField(rtype, name); err != nil {
		return nil, err
	}

	return func(instance any) (any, error) {
		v, err := structValue(instance)
		if err != nil {
			return nil, err
		}

		field := v.FieldByName(name)
		if !field.IsValid() {
			return nil, fmt.Errorf("%w: %s.%s", ErrMemberNotFound, v.Type(), name)
		}

		return field.Interface(), nil
	}, nil
}

func (ReflectProvider) Setter(rtype reflect.Type, name string) (Setter, error) {
	if _, err := lookupField(rtype, name); err != nil {
		return nil, err
	}

	return func(instance any, value any) error {
		elem, err := writableValue(instance)
		if err != nil {
			return err
		}

		field := elem.FieldByName(name)
		if !field.IsValid() {
			return fmt.Errorf("%w: %s.%s", ErrMemberNotFound, elem.Type(), name)
		}

		return assign(field, value)
	}, nil
}
