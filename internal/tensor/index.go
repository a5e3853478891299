package tensor

import "fmt"

// OffsetOf converts a coordinate to its linear offset in the row-major
// layout of the shape. It walks the axes from last to first, accumulating
// idx[d]*stride while the stride grows by each dimension length.
//
// Every coordinate is bounds-checked before its contribution is
// accumulated; on failure the returned offset is 0 and must not be used.
// An index with the wrong number of entries is out of bounds by definition.
func (s Shape) OffsetOf(idx Index) (int, error) {
	if len(idx) != len(s) {
		return 0, &IndexError{
			Shape:  s,
			Axis:   -1,
			Detail: fmt.Sprintf("expected %d indices, got %d", len(s), len(idx)),
		}
	}

	offset := 0
	stride := 1
	for d := len(s) - 1; d >= 0; d-- {
		if idx[d] < 0 || idx[d] >= s[d] {
			return 0, &IndexError{Shape: s, Axis: d, Index: idx[d], Limit: s[d]}
		}
		offset += idx[d] * stride
		stride *= s[d]
	}
	return offset, nil
}

// IndexOf converts a linear offset back to its coordinate, the inverse of
// OffsetOf. The offset is range-checked first, so shapes with a zero-length
// dimension (NumElements == 0) reject every offset before any division by a
// dimension length can happen.
func (s Shape) IndexOf(offset int) (Index, error) {
	count := s.NumElements()
	if offset < 0 || offset >= count {
		return nil, &IndexError{Shape: s, Axis: -1, Index: offset, Limit: count}
	}

	idx := make(Index, len(s))
	remaining := offset
	for d := len(s) - 1; d >= 0; d-- {
		idx[d] = remaining % s[d]
		remaining /= s[d]
	}
	if remaining != 0 {
		// Unreachable for offsets inside [0, count); kept as a guard
		// against a malformed shape slipping past Validate.
		return nil, &IndexError{
			Shape:  s,
			Axis:   -1,
			Index:  offset,
			Limit:  count,
			Detail: "nonzero remainder after decomposition",
		}
	}
	return idx, nil
}
