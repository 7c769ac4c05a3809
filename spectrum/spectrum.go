package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-voice/window"
)

const (
	defaultFFTSize = 2048
	defaultBands   = 32
	defaultMinFreq = 20.0
	defaultFloorDB = -90.0

	epsMagnitude = 1e-12
)

// Config holds spectrum analysis parameters.
type Config struct {
	// SampleRate in Hz, must be > 0.
	SampleRate float64
	// FFTSize is the transform length (default 2048). Frames longer than
	// FFTSize are rejected; shorter frames are zero-padded.
	FFTSize int
	// Bands is the number of display bars (default 32).
	Bands int
	// WindowType selects the analysis window (default Hann).
	WindowType window.Type
	// MinFreq is the lowest band edge in Hz (default 20).
	MinFreq float64
	// MaxFreq is the highest band edge in Hz (default Nyquist).
	MaxFreq float64
	// FloorDB is the display floor (default -90). Levels at or below the
	// floor map to bar value 0; full scale maps to 1.
	FloorDB float64
}

// Analyzer computes magnitude spectra and display bars from audio frames.
type Analyzer struct {
	cfg  Config
	plan *algofft.Plan[complex128]

	in  []complex128
	out []complex128
	re  []float64
	im  []float64
}

// NewAnalyzer creates an analyzer with normalized configuration.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	cfg = normalizeConfig(cfg)

	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("spectrum: sample rate must be > 0: %f", cfg.SampleRate)
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	binCount := cfg.FFTSize/2 + 1

	return &Analyzer{
		cfg:  cfg,
		plan: plan,
		in:   make([]complex128, cfg.FFTSize),
		out:  make([]complex128, cfg.FFTSize),
		re:   make([]float64, binCount),
		im:   make([]float64, binCount),
	}, nil
}

// Config returns the normalized analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Magnitudes returns the one-sided magnitude spectrum of frame, with
// FFTSize/2+1 bins from DC to Nyquist. The frame is windowed in periodic
// form and zero-padded to the FFT size; interior bins are doubled and
// normalized by the window's coherent gain so a bin-centered full-scale
// sine reads 1.0.
func (a *Analyzer) Magnitudes(frame []float64) ([]float64, error) {
	if len(frame) == 0 {
		return nil, fmt.Errorf("spectrum: frame must not be empty")
	}

	if len(frame) > a.cfg.FFTSize {
		return nil, fmt.Errorf("spectrum: frame length %d exceeds FFT size %d",
			len(frame), a.cfg.FFTSize)
	}

	coeffs := window.Generate(a.cfg.WindowType, len(frame), window.WithPeriodic())

	windowSum := 0.0
	for _, w := range coeffs {
		windowSum += w
	}

	if windowSum <= 0 {
		return nil, fmt.Errorf("spectrum: window has non-positive coherent gain")
	}

	for i := range a.in {
		a.in[i] = 0
	}

	for i, v := range frame {
		a.in[i] = complex(v*coeffs[i], 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	binCount := a.cfg.FFTSize/2 + 1
	for k := 0; k < binCount; k++ {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}

	mags := make([]float64, binCount)
	vecmath.Magnitude(mags, a.re, a.im)

	last := binCount - 1
	for k := range mags {
		mags[k] /= windowSum
		if k > 0 && k < last {
			mags[k] *= 2
		}
	}

	return mags, nil
}

// Bars returns Bands display values in [0, 1] over log-spaced frequency
// bands between MinFreq and MaxFreq. Each band reports its peak bin level
// in dB mapped linearly from [FloorDB, 0] onto [0, 1]; bands narrower
// than a bin are interpolated between neighboring bins.
func (a *Analyzer) Bars(frame []float64) ([]float64, error) {
	mags, err := a.Magnitudes(frame)
	if err != nil {
		return nil, err
	}

	binHz := a.cfg.SampleRate / float64(a.cfg.FFTSize)
	ratio := a.cfg.MaxFreq / a.cfg.MinFreq

	bars := make([]float64, a.cfg.Bands)
	for b := range bars {
		lo := a.cfg.MinFreq * math.Pow(ratio, float64(b)/float64(a.cfg.Bands))
		hi := a.cfg.MinFreq * math.Pow(ratio, float64(b+1)/float64(a.cfg.Bands))

		peak := bandPeak(mags, binHz, lo, hi)
		bars[b] = a.levelToBar(peak)
	}

	return bars, nil
}

func (a *Analyzer) levelToBar(mag float64) float64 {
	db := 20 * math.Log10(math.Max(epsMagnitude, mag))
	if db < a.cfg.FloorDB {
		db = a.cfg.FloorDB
	}

	if db > 0 {
		db = 0
	}

	return (db - a.cfg.FloorDB) / -a.cfg.FloorDB
}

// bandPeak returns the strongest bin level in [loHz, hiHz), interpolating
// between neighbors when the band spans no full bin.
func bandPeak(mags []float64, binHz, loHz, hiHz float64) float64 {
	loBin := int(math.Ceil(loHz / binHz))
	hiBin := int(math.Floor(hiHz / binHz))

	if hiBin >= len(mags) {
		hiBin = len(mags) - 1
	}

	if loBin <= hiBin && loBin >= 0 {
		peak := 0.0
		for k := loBin; k <= hiBin; k++ {
			if mags[k] > peak {
				peak = mags[k]
			}
		}

		return peak
	}

	// Band narrower than a bin: interpolate at the band center.
	pos := (loHz + hiHz) / 2 / binHz
	if pos <= 0 {
		return mags[0]
	}

	if pos >= float64(len(mags)-1) {
		return mags[len(mags)-1]
	}

	base := int(pos)
	frac := pos - float64(base)

	return mags[base] + frac*(mags[base+1]-mags[base])
}

func normalizeConfig(cfg Config) Config {
	if cfg.FFTSize <= 0 {
		cfg.FFTSize = defaultFFTSize
	}

	if cfg.Bands <= 0 {
		cfg.Bands = defaultBands
	}

	if cfg.WindowType == 0 {
		cfg.WindowType = window.TypeHann
	}

	if cfg.MinFreq <= 0 {
		cfg.MinFreq = defaultMinFreq
	}

	nyquist := cfg.SampleRate / 2
	if cfg.MaxFreq <= cfg.MinFreq || cfg.MaxFreq > nyquist {
		cfg.MaxFreq = nyquist
	}

	if cfg.FloorDB >= 0 {
		cfg.FloorDB = defaultFloorDB
	}

	return cfg
}
