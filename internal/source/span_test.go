package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 2, End: 7}
	if s.Empty() {
		t.Error("non-empty span reported Empty")
	}
	if s.Len() != 5 {
		t.Errorf("Len = %d, want 5", s.Len())
	}
	if got := s.String(); got != "1:2-7" {
		t.Errorf("String = %q", got)
	}

	empty := Span{File: 1, Start: 3, End: 3}
	if !empty.Empty() {
		t.Error("empty span not reported Empty")
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{Start: 2, End: 5}
	for _, off := range []uint32{2, 3, 4} {
		if !s.Contains(off) {
			t.Errorf("Contains(%d) = false, want true", off)
		}
	}
	for _, off := range []uint32{0, 1, 5, 6} {
		if s.Contains(off) {
			t.Errorf("Contains(%d) = true, want false", off)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 4, End: 6}
	b := Span{File: 0, Start: 1, End: 5}
	got := a.Cover(b)
	if got.Start != 1 || got.End != 6 {
		t.Errorf("Cover = %v, want 0:1-6", got)
	}

	other := Span{File: 9, Start: 0, End: 100}
	got = a.Cover(other)
	if got != a {
		t.Errorf("Cover across files = %v, want %v", got, a)
	}
}
