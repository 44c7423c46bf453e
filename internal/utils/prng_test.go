package utils

import "testing"

func TestPRNGServiceIsReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 16; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", a.Seed())
	}
	if a.Rand().Float64() != b.Float64() {
		t.Error("Rand() does not share the service's stream")
	}
}

func TestPRNGServiceZeroSeed(t *testing.T) {
	if NewPRNGService(0).Seed() == 0 {
		t.Fatal("zero seed was not replaced")
	}
}
