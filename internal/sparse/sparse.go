// Package sparse provides a sparse set of NFA state IDs.
//
// A sparse set supports O(1) insertion, membership testing and clearing
// while keeping its members in insertion order. The NFA uses it to walk
// the states reachable from the start state.
package sparse

// SparseSet is a set of uint32 values below a fixed capacity.
// The sparse array maps values to their index in the dense array.
type SparseSet struct {
	sparse []uint32 // value -> index in dense
	dense  []uint32 // members in insertion order
}

// NewSparseSet creates a set that can hold the values 0..capacity-1.
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set and reports whether it was absent.
// Panics if value >= capacity.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	//nolint:gosec // G115: len(dense) < capacity, which fits in uint32
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Clear removes all elements in O(1).
func (s *SparseSet) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *SparseSet) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no elements.
func (s *SparseSet) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the members in insertion order.
// The slice is valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense
}
