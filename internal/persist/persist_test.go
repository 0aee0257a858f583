package persist

import "testing"

func TestVectorPushPopShareStructure(t *testing.T) {
	v0 := NewVector[int]()
	v1 := v0.Push(1).Push(2).Push(3)
	if v1.Len() != 3 || v1.Get(0) != 1 || v1.Get(2) != 3 {
		t.Fatalf("Vector contents = %v, want [1 2 3]", v1.Slice())
	}
	v2 := v1.Pop()
	if v2.Len() != 2 || v2.Last() != 2 {
		t.Fatalf("Vector after Pop = %v, want [1 2]", v2.Slice())
	}
	if v1.Len() != 3 {
		t.Fatalf("Pop must not mutate the receiver, v1.Len() = %d, want 3", v1.Len())
	}
}

func TestVectorEqualFastPath(t *testing.T) {
	v := NewVector[int]().Push(1).Push(2)
	same := v
	if !v.Equal(same, func(a, b int) bool { return a == b }) {
		t.Fatalf("an unmodified copy should be Equal via pointer identity")
	}
}

func TestMapWithWithoutShareStructure(t *testing.T) {
	m0 := NewMap[string, int]()
	m1 := m0.With("a", 1).With("b", 2)
	if v, ok := m1.Get("a"); !ok || v != 1 {
		t.Fatalf("Map.Get(a) = %v, %v, want 1, true", v, ok)
	}
	m2 := m1.Without("a")
	if _, ok := m2.Get("a"); ok {
		t.Fatalf("Without(a) should remove a")
	}
	if _, ok := m1.Get("a"); !ok {
		t.Fatalf("Without must not mutate the receiver")
	}
}

func TestSetMembership(t *testing.T) {
	s := NewSet[int]().With(1).With(2).With(1)
	if s.Len() != 2 {
		t.Fatalf("Set.Len() = %d, want 2", s.Len())
	}
	if !s.Has(1) || !s.Has(2) || s.Has(3) {
		t.Fatalf("Set membership wrong: %v", s.Slice())
	}
	s2 := s.Without(1)
	if s2.Has(1) || !s2.Has(2) {
		t.Fatalf("Set after Without(1) wrong: %v", s2.Slice())
	}
}
