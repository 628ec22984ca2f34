package runeclass

import "testing"

func TestSpanExtend(t *testing.T) {
	s := Span{4, 7}
	if x := s.Extend(Span{2, 5}); x != (Span{2, 7}) {
		t.Errorf("expected (2…7), have %v", x)
	}
	if x := s.Extend(Span{}); x != s {
		t.Errorf("extending by null span should not change span, have %v", x)
	}
	if x := (Span{}).Extend(s); x != s {
		t.Errorf("extending null span should give other span, have %v", x)
	}
	if s.Len() != 3 || s.String() != "(4…7)" {
		t.Errorf("unexpected length or string for %v", s)
	}
}
