package pitch

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-voice/internal/testutil"
)

func TestDetectPureSine(t *testing.T) {
	const (
		sampleRate = 48000.0
		lag        = 240 // 200 Hz
	)

	sine := testutil.DeterministicSine(sampleRate/lag, sampleRate, 1, 4096)

	est := Detect(sine, Config{SampleRate: sampleRate})

	if est.BestLag != lag {
		t.Fatalf("best lag mismatch: got %d want %d", est.BestLag, lag)
	}
	if math.Abs(est.FundamentalFreq-200) > 1e-9 {
		t.Fatalf("fundamental mismatch: got %f want 200", est.FundamentalFreq)
	}
	if est.PeakCorrelation <= 0 {
		t.Fatalf("expected positive peak correlation, got %f", est.PeakCorrelation)
	}
	if est.WindowSize != 4096 {
		t.Fatalf("window size mismatch: got %d", est.WindowSize)
	}
}

func TestDetectRoundedPeriod(t *testing.T) {
	// 440 Hz at 48 kHz has a non-integer period of ~109.09 samples; the
	// detector must land on the nearest integer lag.
	const sampleRate = 48000.0

	sine := testutil.DeterministicSine(440, sampleRate, 1, 4096)

	est := Detect(sine, Config{SampleRate: sampleRate})

	wantLag := int(math.Round(sampleRate / 440))
	if est.BestLag != wantLag {
		t.Fatalf("best lag mismatch: got %d want %d", est.BestLag, wantLag)
	}

	wantFreq := sampleRate / float64(wantLag)
	if math.Abs(est.FundamentalFreq-wantFreq) > 1e-9 {
		t.Fatalf("fundamental mismatch: got %f want %f", est.FundamentalFreq, wantFreq)
	}
}

func TestDetectEmptyInput(t *testing.T) {
	est := Detect(nil, Config{SampleRate: 48000})

	if est != (Estimate{}) {
		t.Fatalf("expected zero estimate, got %+v", est)
	}
}

func TestDetectSilence(t *testing.T) {
	est := Detect(make([]float64, 4096), Config{SampleRate: 48000})

	if est.FundamentalFreq != 0 || est.BestLag != 0 || est.PeakCorrelation != 0 {
		t.Fatalf("expected silent estimate, got %+v", est)
	}
	if est.WindowSize != 4096 {
		t.Fatalf("window size mismatch: got %d", est.WindowSize)
	}
}

func TestDetectShortBuffer(t *testing.T) {
	// 30 samples leave no searchable lag above the default minimum of 20.
	sine := testutil.DeterministicSine(1000, 48000, 1, 30)

	est := Detect(sine, Config{SampleRate: 48000})

	if est.FundamentalFreq != 0 || est.BestLag != 0 {
		t.Fatalf("expected degenerate estimate, got %+v", est)
	}
}

func TestDetectInvalidSampleRate(t *testing.T) {
	sine := testutil.DeterministicSine(200, 48000, 1, 4096)

	est := Detect(sine, Config{SampleRate: 0})

	if est != (Estimate{}) {
		t.Fatalf("expected zero estimate, got %+v", est)
	}
}

func TestDetectWindowCap(t *testing.T) {
	sine := testutil.DeterministicSine(200, 48000, 1, 10000)

	est := Detect(sine, Config{SampleRate: 48000})

	if est.WindowSize != defaultMaxWindow {
		t.Fatalf("window cap not applied: got %d", est.WindowSize)
	}
}

func TestDetectIdempotent(t *testing.T) {
	sine := testutil.DeterministicSine(180, 44100, 0.7, 4096)
	cfg := Config{SampleRate: 44100}

	a := Detect(sine, cfg)
	b := Detect(sine, cfg)

	if a != b {
		t.Fatalf("estimates differ: %+v vs %+v", a, b)
	}
}

func TestDetectMethodFFTMatchesDirect(t *testing.T) {
	sine := testutil.DeterministicSine(200, 48000, 1, 4096)

	direct := Detect(sine, Config{SampleRate: 48000, Method: MethodDirect})
	viaFFT := Detect(sine, Config{SampleRate: 48000, Method: MethodFFT})

	if direct.BestLag != viaFFT.BestLag {
		t.Fatalf("lag mismatch: direct %d fft %d", direct.BestLag, viaFFT.BestLag)
	}
	if math.Abs(direct.FundamentalFreq-viaFFT.FundamentalFreq) > 1e-9 {
		t.Fatalf("fundamental mismatch: direct %f fft %f",
			direct.FundamentalFreq, viaFFT.FundamentalFreq)
	}
}

func TestSearchPeakNonPositiveCorrelations(t *testing.T) {
	ac := make([]float64, 64)
	for i := range ac {
		ac[i] = -1
	}

	lag, peak := searchPeak(ac, 20)
	if lag != 0 || peak != 0 {
		t.Fatalf("expected no peak, got lag %d peak %f", lag, peak)
	}
}
