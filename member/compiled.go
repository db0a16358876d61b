package member

import (
	"reflect"
	"unsafe"
)

// CompiledProvider resolves the member once at accessor build time and closes
// over the field index, so repeated invocations skip name lookup entirely.
// Same-type primitive members additionally get an unsafe direct offset copy
// when fused through Copier.
type CompiledProvider struct{}

var (
	_ Provider       = CompiledProvider{}
	_ DirectProvider = CompiledProvider{}
)

func (CompiledProvider) Getter(rtype reflect.Type, name string) (Getter, error) {
	field, err := lookupField(rtype, name)
	if err != nil {
		return nil, err
	}

	index := field.Index[0]

	return func(instance any) (any, error) {
		v, err := structValue(instance)
		if err != nil {
			return nil, err
		}

		return v.Field(index).Interface(), nil
	}, nil
}

func (CompiledProvider) Setter(rtype reflect.Type, name string) (Setter, error) {
	field, err := lookupField(rtype, name)
	if err != nil {
		return nil, err
	}

	index := field.Index[0]

	return func(instance any, value any) error {
		elem, err := writableValue(instance)
		if err != nil {
			return err
		}

		return assign(elem.Field(index), value)
	}, nil
}

// Copier builds a fused same-name copy accessor. For primitive members of
// identical type on both sides the copy goes through pre-computed offsets;
// everything else goes through index-resolved reflect access with the usual
// assignability check.
func (CompiledProvider) Copier(srcType, dstType reflect.Type, name string) (Copier, error) {
	srcField, err := lookupField(srcType, name)
	if err != nil {
		return nil, err
	}

	dstField, err := lookupField(dstType, name)
	if err != nil {
		return nil, err
	}

	srcIndex, dstIndex := srcField.Index[0], dstField.Index[0]

	if srcField.Type == dstField.Type && isPrimitiveKind(srcField.Type.Kind()) {
		srcBase, dstBase := baseStructType(srcType), baseStructType(dstType)
		srcOffset, dstOffset := srcField.Offset, dstField.Offset
		size := srcField.Type.Size()

		// the offsets are only valid against exactly *srcBase and *dstBase;
		// anything else (values, multi-level pointers) takes the generic path
		return func(src, dst any) error {
			dv := reflect.ValueOf(dst)
			if dv.Kind() != reflect.Ptr || dv.IsNil() || dv.Type().Elem() != dstBase {
				return copyByIndex(src, dst, srcIndex, dstIndex)
			}

			sv := reflect.ValueOf(src)
			if sv.Kind() != reflect.Ptr || sv.IsNil() || sv.Type().Elem() != srcBase {
				return copyByIndex(src, dst, srcIndex, dstIndex)
			}

			copyField(unsafe.Pointer(sv.Pointer()), unsafe.Pointer(dv.Pointer()), srcOffset, dstOffset, size)
			return nil
		}, nil
	}

	return func(src, dst any) error {
		return copyByIndex(src, dst, srcIndex, dstIndex)
	}, nil
}

// copyByIndex is the generic path shared by all compiled copies.
func copyByIndex(src, dst any, srcIndex, dstIndex int) error {
	sv, err := structValue(src)
	if err != nil {
		return err
	}

	elem, err := writableValue(dst)
	if err != nil {
		return err
	}

	return assign(elem.Field(dstIndex), sv.Field(srcIndex).Interface())
}

// isPrimitiveKind reports whether a kind is safe for the direct offset copy.
func isPrimitiveKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	}

	return false
}

// copyField copies a member value between two struct instances through raw
// offsets. Only valid for identical primitive member types.
func copyField(srcPtr, dstPtr unsafe.Pointer, srcOffset, dstOffset, size uintptr) {
	src := unsafe.Add(srcPtr, srcOffset)
	dst := unsafe.Add(dstPtr, dstOffset)

	switch size {
	case 1:
		*(*uint8)(dst) = *(*uint8)(src)
	case 2:
		*(*uint16)(dst) = *(*uint16)(src)
	case 4:
		*(*uint32)(dst) = *(*uint32)(src)
	case 8:
		*(*uint64)(dst) = *(*uint64)(src)
	case 16:
		// strings: pointer + length
		*(*[16]byte)(dst) = *(*[16]byte)(src)
	default:
		copy(unsafe.Slice((*byte)(dst), size), unsafe.Slice((*byte)(src), size))
	}
}
