package pitch

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-voice/internal/testutil"
)

func TestAutocorrelationZeroLag(t *testing.T) {
	signal := []float64{1, -2, 3}

	ac := Autocorrelation(signal, 3)
	if len(ac) != 3 {
		t.Fatalf("length mismatch: got %d", len(ac))
	}

	// A[0] is the signal energy.
	if math.Abs(ac[0]-14) > 1e-12 {
		t.Fatalf("A[0] mismatch: got %f want 14", ac[0])
	}
	// A[1] = 1*-2 + -2*3 = -8, A[2] = 1*3 = 3.
	if math.Abs(ac[1]+8) > 1e-12 || math.Abs(ac[2]-3) > 1e-12 {
		t.Fatalf("lag values mismatch: got %v", ac)
	}
}

func TestAutocorrelationClampsMaxLag(t *testing.T) {
	ac := Autocorrelation([]float64{1, 2}, 10)
	if len(ac) != 2 {
		t.Fatalf("expected clamp to signal length, got %d", len(ac))
	}
}

func TestAutocorrelationEmpty(t *testing.T) {
	if ac := Autocorrelation(nil, 8); ac != nil {
		t.Fatalf("expected nil for empty input, got %v", ac)
	}
	if ac := Autocorrelation([]float64{1}, 0); ac != nil {
		t.Fatalf("expected nil for zero maxLag, got %v", ac)
	}
}

func TestAutocorrelationFFTMatchesDirect(t *testing.T) {
	noise := testutil.DeterministicNoise(7, 1, 1024)

	direct := Autocorrelation(noise, 512)

	viaFFT, err := AutocorrelationFFT(noise, 512)
	if err != nil {
		t.Fatalf("fft autocorrelation failed: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, viaFFT, direct, 1e-6)
}

func TestAutocorrelationFFTSine(t *testing.T) {
	sine := testutil.DeterministicSine(200, 48000, 1, 2048)

	direct := Autocorrelation(sine, 1024)

	viaFFT, err := AutocorrelationFFT(sine, 1024)
	if err != nil {
		t.Fatalf("fft autocorrelation failed: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, viaFFT, direct, 1e-6)
}
