package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSinePeriod(t *testing.T) {
	// 250 Hz at 1 kHz: quarter-period sampling hits 0, 1, 0, -1.
	x := DeterministicSine(250, 1000, 1, 4)

	want := []float64{0, 1, 0, -1}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v want %v", i, x[i], want[i])
		}
	}
}

func TestDeterministicHarmonicFundamentalDominates(t *testing.T) {
	x := DeterministicHarmonic(100, 48000, 1, 4, 480)

	RequireFinite(t, x)

	maxAbs := 0.0
	for _, v := range x {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		t.Fatal("harmonic signal is silent")
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 0.5, 256)
	b := DeterministicNoise(42, 0.5, 256)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
		if math.Abs(a[i]) > 0.5 {
			t.Fatalf("index %d: amplitude exceeded: %v", i, a[i])
		}
	}
}

func TestDC(t *testing.T) {
	x := DC(0.25, 8)
	for i, v := range x {
		if v != 0.25 {
			t.Fatalf("index %d: got %v", i, v)
		}
	}
}
