package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dense-ml/dense/internal/alloc"
)

func newTestTensor(t *testing.T) *Tensor[float32] {
	t.Helper()
	tn, err := FromFunc(Shape{3, 4}, alloc.NewHeap[float32](), func(idx Index) (float32, error) {
		return float32(idx[0]*10 + idx[1]), nil
	})
	require.NoError(t, err)
	return tn
}

func TestTensorMetadata(t *testing.T) {
	tn := newTestTensor(t)
	defer tn.Release()

	assert.Equal(t, Shape{3, 4}, tn.Shape())
	assert.Equal(t, 2, tn.Rank())
	assert.Equal(t, 12, tn.NumElements())
	assert.Equal(t, []int{4, 1}, tn.Strides())
	assert.Equal(t, Float32, tn.DType())
}

func TestTensorShapeIsACopy(t *testing.T) {
	tn := newTestTensor(t)
	defer tn.Release()

	s := tn.Shape()
	s[0] = 99
	assert.Equal(t, Shape{3, 4}, tn.Shape())
}

func TestTensorGetSet(t *testing.T) {
	tn := newTestTensor(t)
	defer tn.Release()

	v, err := tn.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(12), v)

	require.NoError(t, tn.Set(-5, 1, 2))
	v, err = tn.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(-5), v)
}

func TestTensorGetSetOutOfBounds(t *testing.T) {
	tn := newTestTensor(t)
	defer tn.Release()

	_, err := tn.Get(3, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = tn.Get(0, 4)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = tn.Get(0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	err = tn.Set(1, 3, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	// A failed Set must not have touched anything.
	assert.Equal(t, float32(0), tn.At(0, 0))
}

func TestTensorAtPanicsOutOfBounds(t *testing.T) {
	tn := newTestTensor(t)
	defer tn.Release()

	assert.Panics(t, func() { tn.At(3, 0) })
}

func TestTensorItem(t *testing.T) {
	a := alloc.NewHeap[int64]()
	s, err := Full[int64](Shape{}, 42, a)
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, int64(42), s.Item())

	tn := newTestTensor(t)
	defer tn.Release()
	assert.Panics(t, func() { tn.Item() })
}

func TestTensorRelease(t *testing.T) {
	tracked := alloc.NewTracking[float32](alloc.NewHeap[float32]())
	tn, err := Zeros[float32](Shape{2, 2}, tracked)
	require.NoError(t, err)

	tn.Release()
	assert.True(t, tn.Released())
	assert.Equal(t, 1, tracked.Frees())
	assert.Zero(t, tracked.Live())

	// Releasing again must not double-free.
	tn.Release()
	assert.Equal(t, 1, tracked.Frees())

	_, err = tn.Get(0, 0)
	assert.ErrorIs(t, err, ErrTensorReleased)
	assert.ErrorIs(t, tn.Set(1, 0, 0), ErrTensorReleased)
	assert.Nil(t, tn.Data())
	_, err = tn.Clone()
	assert.ErrorIs(t, err, ErrTensorReleased)
}

func TestTensorClone(t *testing.T) {
	tn := newTestTensor(t)
	defer tn.Release()

	c, err := tn.Clone()
	require.NoError(t, err)
	defer c.Release()

	assert.Equal(t, tn.Data(), c.Data())

	// The clone owns an independent buffer.
	require.NoError(t, c.Set(99, 0, 0))
	assert.Equal(t, float32(0), tn.At(0, 0))
}

func TestTensorCloneAllocationFailure(t *testing.T) {
	quota := alloc.NewQuota[float32](alloc.NewHeap[float32](), 12)
	tn, err := Zeros[float32](Shape{3, 4}, quota)
	require.NoError(t, err)
	defer tn.Release()

	_, err = tn.Clone()
	assert.ErrorIs(t, err, alloc.ErrOutOfMemory)
}

func TestTensorIndexes(t *testing.T) {
	tn := newTestTensor(t)
	defer tn.Release()

	count := 0
	it := tn.Indexes()
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		v, err := tn.Get(idx...)
		require.NoError(t, err)
		assert.Equal(t, float32(idx[0]*10+idx[1]), v)
		count++
	}
	assert.Equal(t, 12, count)
}

func TestTensorString(t *testing.T) {
	tn := newTestTensor(t)
	assert.Equal(t, "Tensor[float32][3 4]", tn.String())
	tn.Release()
	assert.Equal(t, "Tensor[float32][3 4] (released)", tn.String())
}
