package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dense-ml/dense/alloc"
	"github.com/dense-ml/dense/tensor"
)

// End-to-end check of the public surface: construct, index, iterate,
// release.
func TestPublicAPI(t *testing.T) {
	a := alloc.NewHeap[float32]()

	m, err := tensor.FromFunc(tensor.Shape{3, 3}, a, func(idx tensor.Index) (float32, error) {
		if idx[0] == idx[1] {
			return 1, nil
		}
		return 0, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, m.Data())

	v, err := m.Get(2, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(1), v)

	_, err = m.Get(3, 0)
	assert.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)

	seen := 0
	for offset, idx := range (tensor.Shape{3, 3}).All() {
		assert.Equal(t, seen, offset)
		assert.Len(t, idx, 2)
		seen++
	}
	assert.Equal(t, 9, seen)

	m.Release()
	_, err = m.Get(0, 0)
	assert.ErrorIs(t, err, tensor.ErrTensorReleased)
}

func TestPublicAPIWithQuota(t *testing.T) {
	a := alloc.NewQuota[int32](alloc.NewHeap[int32](), 4)

	_, err := tensor.Zeros[int32](tensor.Shape{5}, a)
	require.ErrorIs(t, err, alloc.ErrOutOfMemory)

	small, err := tensor.Ones[int32](tensor.Shape{2, 2}, a)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 1, 1, 1}, small.Data())
	small.Release()
	assert.Zero(t, a.Live())
}
