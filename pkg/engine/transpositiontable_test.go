package engine

import (
	"testing"
)

func TestTransTableReadAbsent(t *testing.T) {
	var tt = NewTransTable()
	if _, _, _, ok := tt.Read(12345); ok {
		t.Error("read of an unwritten key must report absent")
	}
}

func TestTransTableRoundTrip(t *testing.T) {
	var tt = NewTransTable()
	tt.Update(1, 3, -42, boundExact)
	var depth, score, bound, ok = tt.Read(1)
	if !ok || depth != 3 || score != -42 || bound != boundExact {
		t.Errorf("got depth=%v score=%v bound=%v ok=%v", depth, score, bound, ok)
	}
}

func TestTransTableOverwrite(t *testing.T) {
	var tt = NewTransTable()
	tt.Update(1, 5, 10, boundExact)
	tt.Update(1, 2, -7, boundLower)
	var depth, score, bound, ok = tt.Read(1)
	if !ok || depth != 2 || score != -7 || bound != boundLower {
		t.Error("update must overwrite unconditionally, even with a shallower entry")
	}
	if tt.Len() != 1 {
		t.Errorf("expected one entry, got %v", tt.Len())
	}
}

func TestTransTableDistinctKeys(t *testing.T) {
	var tt = NewTransTable()
	tt.Update(1, 1, 100, boundExact)
	tt.Update(2, 1, 200, boundExact)
	if _, score, _, _ := tt.Read(1); score != 100 {
		t.Error("keys must not collide")
	}
	if _, score, _, _ := tt.Read(2); score != 200 {
		t.Error("keys must not collide")
	}
}
