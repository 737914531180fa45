package sparse

import (
	"testing"
)

func TestSparseSet_Basic(t *testing.T) {
	s := NewSparseSet(100)

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	if !s.Insert(5) {
		t.Error("first insert should return true")
	}
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	if s.Insert(5) {
		t.Error("duplicate insert should return false")
	}
	if s.Len() != 1 {
		t.Errorf("len should be 1, got %d", s.Len())
	}

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Len() != 4 {
		t.Errorf("len should be 4, got %d", s.Len())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) {
		t.Error("cleared set should not contain 5")
	}
}

func TestSparseSet_InsertionOrder(t *testing.T) {
	s := NewSparseSet(10)
	for _, v := range []uint32{4, 1, 9, 1, 0} {
		s.Insert(v)
	}

	want := []uint32{4, 1, 9, 0}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
}

func TestSparseSet_ContainsOutOfBounds(t *testing.T) {
	s := NewSparseSet(4)
	s.Insert(3)
	if s.Contains(4) || s.Contains(1 << 31) {
		t.Error("values beyond capacity are never members")
	}
}

func TestSparseSet_StaleSparseEntries(t *testing.T) {
	s := NewSparseSet(8)
	s.Insert(6)
	s.Insert(2)
	s.Clear()
	s.Insert(2)

	// sparse[6] still points at index 0, which now holds 2.
	if s.Contains(6) {
		t.Error("stale entry must not be reported as member")
	}
	if !s.Contains(2) {
		t.Error("re-inserted value must be member")
	}
}

func BenchmarkSparseSet_Insert(b *testing.B) {
	s := NewSparseSet(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Insert(uint32(i % 1024))
		if s.Len() == 1024 {
			s.Clear()
		}
	}
}
