// Package member provides generic read and write access to named members of
// arbitrary struct types. Accessors are built once per (type, member, strategy)
// and cached, so mapping code can touch members repeatedly without paying the
// by-name reflection cost on every call.
package member

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrMemberNotFound = errors.New("type has no exported member with the requested name")
	ErrTypeMismatch   = errors.New("value is not assignable to the member type")
	ErrNotAStruct     = errors.New("instance is not a struct or pointer to struct")
	ErrNotAddressable = errors.New("write access requires a pointer to struct instance")
	ErrNilInstance    = errors.New("instance is a nil pointer")
)

// Getter reads one member from an instance of the type it was built for.
type Getter func(instance any) (any, error)

// Setter writes one member on an instance of the type it was built for.
// The instance must be a pointer to struct.
type Setter func(instance any, value any) error

// Copier copies one member straight from a source instance to a destination
// instance, without boxing the value through the caller.
type Copier func(src any, dst any) error

// Provider builds read and write accessors for named members of a type.
// Implementations must be safe for concurrent use.
type Provider interface {
	Getter(rtype reflect.Type, name string) (Getter, error)
	Setter(rtype reflect.Type, name string) (Setter, error)
}

// DirectProvider is implemented by providers that can build a fused
// same-name member copy between two types.
type DirectProvider interface {
	Copier(srcType, dstType reflect.Type, name string) (Copier, error)
}

// baseStructType strips pointer levels down to the underlying type.
func baseStructType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}

// lookupField resolves an exported, non-promoted member on the base struct
// type behind rtype.
func lookupField(rtype reflect.Type, name string) (reflect.StructField, error) {
	base := baseStructType(rtype)
	if base == nil || base.Kind() != reflect.Struct {
		return reflect.StructField{}, fmt.Errorf("%w: %s", ErrNotAStruct, rtype)
	}

	field, ok := base.FieldByName(name)
	if !ok || !field.IsExported() || len(field.Index) != 1 {
		return reflect.StructField{}, fmt.Errorf("%w: %s.%s", ErrMemberNotFound, base, name)
	}

	return field, nil
}

// structValue unwraps an instance down to its struct value for reading.
func structValue(instance any) (reflect.Value, error) {
	v := reflect.ValueOf(instance)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrNilInstance, v.Type())
		}
		v = v.Elem()
	}

	if !v.IsValid() || v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %T", ErrNotAStruct, instance)
	}

	return v, nil
}

// writableValue unwraps an instance to an addressable struct value for writing.
func writableValue(instance any) (reflect.Value, error) {
	v := reflect.ValueOf(instance)
	if v.Kind() != reflect.Ptr {
		return reflect.Value{}, fmt.Errorf("%w: got %T", ErrNotAddressable, instance)
	}

	if v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNilInstance, v.Type())
	}

	elem := v.Elem()
	if elem.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %T", ErrNotAStruct, instance)
	}

	return elem, nil
}

// assign writes a boxed value into a member field, zeroing nilable members on
// nil input. Narrowing or widening is the caller's responsibility: anything
// not directly assignable fails.
func assign(field reflect.Value, value any) error {
	if value == nil {
		switch field.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			field.Set(reflect.Zero(field.Type()))
			return nil
		default:
			return fmt.Errorf("%w: cannot write nil into %s", ErrTypeMismatch, field.Type())
		}
	}

	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(field.Type()) {
		return fmt.Errorf("%w: %s is not assignable to %s", ErrTypeMismatch, v.Type(), field.Type())
	}

	field.Set(v)
	return nil
}
