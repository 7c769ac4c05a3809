package pitch

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// Autocorrelation computes autocorrelation values for lags 0..maxLag-1:
//
//	A[L] = sum_{i=0}^{len(signal)-L-1} signal[i] * signal[i+L]
//
// maxLag is clamped to len(signal). The computation is O(len * maxLag);
// callers bound cost by limiting the window length.
func Autocorrelation(signal []float64, maxLag int) []float64 {
	if len(signal) == 0 || maxLag <= 0 {
		return nil
	}

	if maxLag > len(signal) {
		maxLag = len(signal)
	}

	out := make([]float64, maxLag)
	for lag := range out {
		sum := 0.0
		for i := 0; i < len(signal)-lag; i++ {
			sum += signal[i] * signal[i+lag]
		}

		out[lag] = sum
	}

	return out
}

// AutocorrelationFFT computes the same lag values as [Autocorrelation]
// using the Wiener-Khinchin relation: the inverse transform of the power
// spectrum of the zero-padded signal.
func AutocorrelationFFT(signal []float64, maxLag int) ([]float64, error) {
	if len(signal) == 0 || maxLag <= 0 {
		return nil, nil
	}

	if maxLag > len(signal) {
		maxLag = len(signal)
	}

	// Zero-pad to at least 2n-1 to avoid circular wrap-around.
	n := len(signal)
	fftSize := nextPowerOf2(2*n - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("pitch: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range signal {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)

	err = plan.Forward(freq, padded)
	if err != nil {
		return nil, fmt.Errorf("pitch: forward FFT failed: %w", err)
	}

	// Power spectrum |X[k]|^2 has zero phase, so the inverse transform is
	// real and holds positive lags at indices 0..n-1.
	for i, x := range freq {
		re := real(x)
		im := imag(x)
		freq[i] = complex(re*re+im*im, 0)
	}

	lags := make([]complex128, fftSize)

	err = plan.Inverse(lags, freq)
	if err != nil {
		return nil, fmt.Errorf("pitch: inverse FFT failed: %w", err)
	}

	out := make([]float64, maxLag)
	for i := range out {
		out[i] = real(lags[i])
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
