package track

import (
	"sort"

	"github.com/cwbudde/algo-voice/classify"
	"github.com/cwbudde/algo-voice/pitch"
)

const defaultFrameSize = 4096

// Config holds tracking parameters.
type Config struct {
	// SampleRate in Hz. Values <= 0 yield zero Tracks.
	SampleRate float64
	// FrameSize is the analysis frame length in samples (default 4096).
	FrameSize int
	// HopSize is the frame advance in samples (default FrameSize/2).
	HopSize int
	// MinLag is the smallest searched autocorrelation lag (default 20).
	MinLag int
	// Method selects the autocorrelation backend.
	Method pitch.Method
}

// Frame holds one classified analysis frame.
type Frame struct {
	// Offset is the frame start in samples from the beginning of the input.
	Offset int
	// Result is the frame classification.
	Result classify.Result
}

// Track summarizes a framewise classification run.
type Track struct {
	// Frames holds the per-frame results in input order.
	Frames []Frame
	// MedianFundamental is the median F0 in Hz over voiced frames,
	// 0 when no frame was voiced.
	MedianFundamental float64
	// VoicedRatio is the fraction of frames with a detected pitch.
	VoicedRatio float64
	// Label is the majority label over voiced frames; ties resolve to the
	// label with the larger summed confidence.
	Label classify.Label
	// Confidence is the mean confidence of frames carrying Label.
	Confidence float64
}

// Tracker classifies a recording frame by frame.
type Tracker struct {
	cfg Config
	cls *classify.Classifier
}

// NewTracker creates a tracker with normalized configuration.
func NewTracker(cfg Config) *Tracker {
	cfg = normalizeConfig(cfg)

	return &Tracker{
		cfg: cfg,
		cls: classify.NewClassifier(classify.Config{
			SampleRate: cfg.SampleRate,
			MaxWindow:  cfg.FrameSize,
			MinLag:     cfg.MinLag,
			Method:     cfg.Method,
		}),
	}
}

// Process is a one-shot framewise classification of samples.
func Process(samples []float64, cfg Config) Track {
	return NewTracker(cfg).Process(samples)
}

// Config returns the normalized tracker configuration.
func (t *Tracker) Config() Config {
	return t.cfg
}

// Process classifies samples frame by frame. Only complete frames are
// analyzed; input shorter than one frame yields the zero Track.
func (t *Tracker) Process(samples []float64) Track {
	if t.cfg.SampleRate <= 0 || len(samples) < t.cfg.FrameSize {
		return Track{}
	}

	var frames []Frame
	for off := 0; off+t.cfg.FrameSize <= len(samples); off += t.cfg.HopSize {
		frames = append(frames, Frame{
			Offset: off,
			Result: t.cls.Classify(samples[off : off+t.cfg.FrameSize]),
		})
	}

	return summarize(frames)
}

func summarize(frames []Frame) Track {
	if len(frames) == 0 {
		return Track{}
	}

	var (
		voicedFreqs []float64
		counts      [3]int
		confSums    [3]float64
	)

	for _, f := range frames {
		if f.Result.FundamentalFreq <= 0 {
			continue
		}

		voicedFreqs = append(voicedFreqs, f.Result.FundamentalFreq)
		counts[f.Result.Label]++
		confSums[f.Result.Label] += f.Result.Confidence
	}

	out := Track{
		Frames:      frames,
		VoicedRatio: float64(len(voicedFreqs)) / float64(len(frames)),
	}

	if len(voicedFreqs) == 0 {
		return out
	}

	out.MedianFundamental = median(voicedFreqs)

	best := classify.LabelUnknown
	for _, label := range []classify.Label{classify.LabelMale, classify.LabelFemale} {
		if counts[label] > counts[best] ||
			(counts[label] == counts[best] && confSums[label] > confSums[best]) {
			best = label
		}
	}

	out.Label = best
	if counts[best] > 0 {
		out.Confidence = confSums[best] / float64(counts[best])
	}

	return out
}

// median sorts a copy of values and returns the middle element, averaging
// the two middles for even counts.
func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}

func normalizeConfig(cfg Config) Config {
	if cfg.FrameSize <= 0 {
		cfg.FrameSize = defaultFrameSize
	}

	if cfg.HopSize <= 0 {
		cfg.HopSize = cfg.FrameSize / 2
	}

	// A frame size of 1 would default the hop to 0 and stall Process.
	if cfg.HopSize < 1 {
		cfg.HopSize = 1
	}

	return cfg
}
