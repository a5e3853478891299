package tensor

import "iter"

// IndexIterator enumerates every valid coordinate of a shape in row-major
// order: the last dimension varies fastest and the serialized offsets of
// the yielded coordinates are 0, 1, 2, ... in that order.
//
// The only state is an integer cursor, so iterators are cheap, independent
// of the tensor they describe, and never require mutable access to it.
// Multiple iterators over the same shape do not share state.
type IndexIterator struct {
	shape  Shape
	cursor int
}

// Indexes returns a fresh iterator over all valid coordinates of the shape,
// starting at offset 0. The sequence is empty iff NumElements is 0; the
// empty (rank-0) shape yields exactly one empty coordinate.
func (s Shape) Indexes() *IndexIterator {
	return &IndexIterator{shape: s}
}

// Next returns the coordinate at the cursor and advances. The second
// result is false once every coordinate has been yielded; after that Next
// keeps returning (nil, false).
func (it *IndexIterator) Next() (Index, bool) {
	idx, err := it.shape.IndexOf(it.cursor)
	if err != nil {
		return nil, false
	}
	it.cursor++
	return idx, true
}

// Cursor returns the linear offset the iterator will yield next.
func (it *IndexIterator) Cursor() int {
	return it.cursor
}

// Reset rewinds the iterator to offset 0.
func (it *IndexIterator) Reset() {
	it.cursor = 0
}

// All returns a range-over-func sequence of (offset, coordinate) pairs in
// row-major order, for use with the for ... range statement:
//
//	for offset, idx := range shape.All() {
//	    ...
//	}
//
// Each pair's coordinate is freshly allocated and owned by the loop body.
func (s Shape) All() iter.Seq2[int, Index] {
	return func(yield func(int, Index) bool) {
		it := s.Indexes()
		for idx, ok := it.Next(); ok; idx, ok = it.Next() {
			if !yield(it.cursor-1, idx) {
				return
			}
		}
	}
}
