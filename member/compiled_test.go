package member_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object-mapper/member"
)

type srcRecord struct {
	ID    int64
	Label string
	Ratio float32
	Blob  []byte
}

type dstRecord struct {
	Pad   byte // shifts offsets so the copier cannot rely on matching layout
	ID    int64
	Label string
	Ratio float64
	Blob  []byte
}

var (
	srcType = reflect.TypeFor[srcRecord]()
	dstType = reflect.TypeFor[dstRecord]()
)

func TestCopierPrimitiveOffsets(t *testing.T) {
	p := member.CompiledProvider{}

	copyID, err := p.Copier(srcType, dstType, "ID")
	require.NoError(t, err)

	copyLabel, err := p.Copier(srcType, dstType, "Label")
	require.NoError(t, err)

	src := &srcRecord{ID: 42, Label: "boxes"}
	dst := &dstRecord{}

	require.NoError(t, copyID(src, dst))
	require.NoError(t, copyLabel(src, dst))
	assert.Equal(t, int64(42), dst.ID)
	assert.Equal(t, "boxes", dst.Label)
}

func TestCopierValueSourceFallback(t *testing.T) {
	copyID, err := member.CompiledProvider{}.Copier(srcType, dstType, "ID")
	require.NoError(t, err)

	dst := &dstRecord{}
	require.NoError(t, copyID(srcRecord{ID: 7}, dst))
	assert.Equal(t, int64(7), dst.ID)
}

// Multi-level pointers pass type lookup but carry the wrong indirection for
// offset arithmetic, so they must route through the generic path.
func TestCopierDoublePointerFallback(t *testing.T) {
	copyID, err := member.CompiledProvider{}.Copier(srcType, dstType, "ID")
	require.NoError(t, err)

	src := &srcRecord{ID: 11}
	dst := &dstRecord{}
	require.NoError(t, copyID(&src, dst))
	assert.Equal(t, int64(11), dst.ID)

	// writes still demand exactly one pointer level
	inner := &dstRecord{}
	assert.ErrorIs(t, copyID(src, &inner), member.ErrNotAStruct)
}

func TestCopierNonPrimitiveSameType(t *testing.T) {
	copyBlob, err := member.CompiledProvider{}.Copier(srcType, dstType, "Blob")
	require.NoError(t, err)

	dst := &dstRecord{}
	require.NoError(t, copyBlob(&srcRecord{Blob: []byte("raw")}, dst))
	assert.Equal(t, []byte("raw"), dst.Blob)
}

func TestCopierIncompatibleMemberFailsAtCopy(t *testing.T) {
	copyRatio, err := member.CompiledProvider{}.Copier(srcType, dstType, "Ratio")
	require.NoError(t, err)

	// float32 -> float64 is a narrowing concern for the caller, not the accessor
	err = copyRatio(&srcRecord{Ratio: 0.5}, &dstRecord{})
	assert.ErrorIs(t, err, member.ErrTypeMismatch)
}

func TestCopierMissingMember(t *testing.T) {
	_, err := member.CompiledProvider{}.Copier(srcType, dstType, "Pad")
	assert.ErrorIs(t, err, member.ErrMemberNotFound)

	_, err = member.CompiledProvider{}.Copier(srcType, dstType, "Missing")
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestCopierRequiresWritableDestination(t *testing.T) {
	copyID, err := member.CompiledProvider{}.Copier(srcType, dstType, "ID")
	require.NoError(t, err)

	assert.ErrorIs(t, copyID(&srcRecord{ID: 1}, dstRecord{}), member.ErrNotAddressable)
}

// Cached providers created over a reflect inner still hand out copiers by
// composing the cached getter and setter.
func TestCachedCopierOverReflect(t *testing.T) {
	cached := member.NewCached(member.ReflectProvider{})

	copyID, err := cached.Copier(srcType, dstType, "ID")
	require.NoError(t, err)

	dst := &dstRecord{}
	require.NoError(t, copyID(&srcRecord{ID: 9}, dst))
	assert.Equal(t, int64(9), dst.ID)
}
