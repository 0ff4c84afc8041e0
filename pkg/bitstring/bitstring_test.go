package bitstring

import "testing"

func TestSetClearGet(t *testing.T) {
	b := New(70)
	b.Set(0)
	b.Set(69)
	b.Set(35)
	for _, pos := range []int{0, 69, 35} {
		if !b.Get(pos) {
			t.Fatalf("expected bit %d to be set", pos)
		}
	}
	b.Clear(35)
	if b.Get(35) {
		t.Fatalf("expected bit 35 to be cleared")
	}
}

func TestFlip(t *testing.T) {
	b := New(3)
	b.Flip(1)
	if !b.Get(1) {
		t.Fatalf("expected bit 1 set after flip")
	}
	b.Flip(1)
	if b.Get(1) {
		t.Fatalf("expected bit 1 clear after second flip")
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	b, err := FromString("101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Get(2) || b.Get(1) || !b.Get(0) {
		t.Fatalf("unexpected bit layout: %s", b.String())
	}
	if b.String() != "101" {
		t.Fatalf("expected round-trip string 101, got %s", b.String())
	}
}

func TestFromStringInvalid(t *testing.T) {
	if _, err := FromString("102"); err == nil {
		t.Fatalf("expected error for invalid character")
	}
}

func TestEqualAndClone(t *testing.T) {
	a, _ := FromString("1100")
	c := a.Clone()
	if !Equal(a, c) {
		t.Fatalf("expected clone to be equal")
	}
	c.Flip(0)
	if Equal(a, c) {
		t.Fatalf("expected mutation on clone not to affect original")
	}
	if a.Get(0) {
		t.Fatalf("original bitstring mutated through clone")
	}
}
