package util

import "testing"

func TestGenerateLutShape(t *testing.T) {
	lut := GenerateLut(10)

	if len(lut) != 10 {
		t.Fatalf("len = %d, want 10", len(lut))
	}
	if lut[0] != 0 || lut[9] != 0 {
		t.Fatalf("ends = %v, %v, want 0 at both", lut[0], lut[9])
	}
	for i := 0; i < 5; i++ {
		if lut[i] != lut[9-i] {
			t.Fatalf("lut not symmetric at %d: %v vs %v", i, lut[i], lut[9-i])
		}
	}
	for i := 1; i < 5; i++ {
		if lut[i] < lut[i-1] {
			t.Fatalf("rising half not monotonic at %d: %v < %v", i, lut[i], lut[i-1])
		}
	}
}

func TestGenerateLutMemoized(t *testing.T) {
	m := Memoizer{}

	a := GenerateLutMemoized(8, m)
	b := GenerateLutMemoized(8, m)
	if &a[0] != &b[0] {
		t.Fatalf("second call should return the cached slice")
	}
	if len(m) != 1 {
		t.Fatalf("cache holds %d entries, want 1", len(m))
	}

	c := GenerateLutMemoized(12, m)
	if len(c) != 12 || len(m) != 2 {
		t.Fatalf("distinct lengths should cache separately")
	}
}

func TestRandomiseSaturationBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := RandomiseSaturation(0.6, 1.0)
		if s < 0.6 || s > 1.0 {
			t.Fatalf("saturation %v outside [0.6, 1.0]", s)
		}
	}
}
