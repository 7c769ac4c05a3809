package classify

import (
	"math"

	"github.com/cwbudde/algo-voice/pitch"
)

// Voice band limits in Hz. The female band is checked first; the overlap
// in [165, 180] Hz therefore always resolves to female.
const (
	FemaleLowHz  = 165.0
	FemaleHighHz = 265.0
	MaleLowHz    = 85.0
	MaleHighHz   = 180.0
)

const (
	maxBandConfidence      = 0.9
	baseBandConfidence     = 0.4
	outOfBandConfidence    = 0.3
	femaleRampWidthHz      = 100.0
	maleRampWidthHz        = 95.0
	confidenceRampFraction = 0.5
)

// Label identifies the classified voice type.
type Label int

const (
	LabelUnknown Label = iota
	LabelMale
	LabelFemale
)

// String returns the lower-case label name.
func (l Label) String() string {
	switch l {
	case LabelMale:
		return "male"
	case LabelFemale:
		return "female"
	default:
		return "unknown"
	}
}

// Config holds classification parameters. The zero value uses the default
// pitch detection settings; SampleRate must be set by the caller.
type Config struct {
	// SampleRate in Hz. Values <= 0 yield the zero Result.
	SampleRate float64
	// MaxWindow caps the analysis window length in samples (default 4096).
	MaxWindow int
	// MinLag is the smallest searched autocorrelation lag (default 20).
	MinLag int
	// Method selects the autocorrelation backend.
	Method pitch.Method
}

// Result holds one classification.
type Result struct {
	// Label is the classified voice type.
	Label Label
	// Confidence is in [0, 0.9] for band hits, exactly 0.3 for a detected
	// pitch outside both bands, and 0 when no pitch was found.
	Confidence float64
	// FundamentalFreq is the detected fundamental in Hz, 0 when unvoiced.
	FundamentalFreq float64
	// Pitch carries the underlying pitch estimate for diagnostics.
	Pitch pitch.Estimate
}

// Classifier performs pitch-band voice classification.
type Classifier struct {
	det *pitch.Detector
}

// NewClassifier creates a classifier with normalized configuration.
func NewClassifier(cfg Config) *Classifier {
	return &Classifier{
		det: pitch.NewDetector(pitch.Config{
			SampleRate: cfg.SampleRate,
			MaxWindow:  cfg.MaxWindow,
			MinLag:     cfg.MinLag,
			Method:     cfg.Method,
		}),
	}
}

// Classify is a one-shot classification of samples.
func Classify(samples []float64, cfg Config) Result {
	return NewClassifier(cfg).Classify(samples)
}

// Classify estimates the fundamental frequency of samples and labels it.
func (c *Classifier) Classify(samples []float64) Result {
	est := c.det.Detect(samples)

	label, confidence := FromFrequency(est.FundamentalFreq)

	return Result{
		Label:           label,
		Confidence:      confidence,
		FundamentalFreq: est.FundamentalFreq,
		Pitch:           est,
	}
}

// FromFrequency labels a fundamental frequency in Hz.
//
// The confidence ramps linearly across each band: from 0.4 at 165 Hz to
// 0.9 at 265 Hz for female, and from 0.9 at 85 Hz down to 0.4 at 180 Hz
// for male, clamped at 0.9. A positive frequency outside both bands
// reports unknown with confidence 0.3; zero frequency reports unknown
// with confidence 0.
func FromFrequency(freqHz float64) (Label, float64) {
	switch {
	case freqHz >= FemaleLowHz && freqHz <= FemaleHighHz:
		ramp := (freqHz - FemaleLowHz) / femaleRampWidthHz * confidenceRampFraction
		return LabelFemale, math.Min(maxBandConfidence, ramp+baseBandConfidence)
	case freqHz >= MaleLowHz && freqHz <= MaleHighHz:
		ramp := (MaleHighHz - freqHz) / maleRampWidthHz * confidenceRampFraction
		return LabelMale, math.Min(maxBandConfidence, ramp+baseBandConfidence)
	case freqHz > 0:
		return LabelUnknown, outOfBandConfidence
	default:
		return LabelUnknown, 0
	}
}
