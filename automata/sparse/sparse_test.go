package sparse

import (
	"testing"
)

func TestMatrixSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, -1)
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected 4711 at (2,3), have %d", v)
	}
	if v := M.Value(9, 9); v != -1 {
		t.Errorf("expected null value at (9,9), have %d", v)
	}
	M.Set(2, 3, 42)
	if M.ValueCount() != 1 || M.Value(2, 3) != 42 {
		t.Errorf("overwriting should not add a value")
	}
}

func TestMatrixOrdering(t *testing.T) {
	M := NewIntMatrix(5, 5, DefaultNullValue)
	M.Set(4, 4, 1).Set(0, 1, 2).Set(2, 2, 3).Set(2, 0, 4).Set(0, 0, 5)
	if M.ValueCount() != 5 {
		t.Fatalf("expected 5 values, have %d", M.ValueCount())
	}
	for k := 1; k < len(M.values); k++ {
		prev, cur := M.values[k-1], M.values[k]
		if !prev.storedLeftOf(cur.row, cur.col) {
			t.Errorf("triplets out of order: %v before %v", prev, cur)
		}
	}
	var cols []int
	M.Row(2, func(j int, v int32) { cols = append(cols, j) })
	if len(cols) != 2 || cols[0] != 0 || cols[1] != 2 {
		t.Errorf("expected row 2 to have columns [0 2], has %v", cols)
	}
	if M.Value(1, 1) != DefaultNullValue {
		t.Errorf("expected null value at (1,1)")
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set out of range to panic")
		}
	}()
	NewIntMatrix(2, 2, -1).Set(2, 0, 1)
}
