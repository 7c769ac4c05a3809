package pitch

const (
	defaultMaxWindow = 4096
	defaultMinLag    = 20
)

// Method selects the autocorrelation backend.
type Method int

const (
	// MethodDirect computes correlation sums directly. This is the
	// reference behavior.
	MethodDirect Method = iota
	// MethodFFT computes the same lag values via FFT. Results match the
	// direct method within floating-point tolerance.
	MethodFFT
)

// Config holds pitch detection parameters.
type Config struct {
	// SampleRate in Hz. Values <= 0 disable frequency computation and
	// yield the zero Estimate.
	SampleRate float64
	// MaxWindow caps the analysis window length in samples. Defaults to
	// 4096, which bounds the direct method below ~16M multiply-adds.
	MaxWindow int
	// MinLag is the smallest searched lag. Defaults to 20, excluding the
	// zero-lag peak and sub-audio artifacts.
	MinLag int
	// Method selects the autocorrelation backend.
	Method Method
}

// Estimate holds the result of one pitch detection.
type Estimate struct {
	// FundamentalFreq is the detected fundamental in Hz, 0 when no
	// periodicity was found.
	FundamentalFreq float64
	// BestLag is the winning lag in samples, 0 when none won.
	BestLag int
	// PeakCorrelation is the autocorrelation value at BestLag.
	PeakCorrelation float64
	// WindowSize is the analysis window length actually used.
	WindowSize int
}

// Detector performs autocorrelation pitch detection.
type Detector struct {
	cfg Config
}

// NewDetector creates a detector with normalized configuration.
func NewDetector(cfg Config) *Detector {
	return &Detector{cfg: normalizeConfig(cfg)}
}

// Detect is a one-shot pitch detection over samples.
func Detect(samples []float64, cfg Config) Estimate {
	return NewDetector(cfg).Detect(samples)
}

// Config returns the normalized detector configuration.
func (d *Detector) Config() Config {
	return d.cfg
}

// Detect estimates the fundamental frequency of samples.
//
// The analysis window is min(MaxWindow, len(samples)). Lags in
// [MinLag, window/2) are searched for the maximum correlation; the search
// starts from a best value of 0, so silent input keeps BestLag at 0.
func (d *Detector) Detect(samples []float64) Estimate {
	window := len(samples)
	if window > d.cfg.MaxWindow {
		window = d.cfg.MaxWindow
	}

	if window == 0 || d.cfg.SampleRate <= 0 {
		return Estimate{}
	}

	frame := samples[:window]
	maxLag := window / 2
	if maxLag <= d.cfg.MinLag {
		return Estimate{WindowSize: window}
	}

	var ac []float64
	if d.cfg.Method == MethodFFT {
		var err error

		ac, err = AutocorrelationFFT(frame, maxLag)
		if err != nil {
			ac = nil
		}
	}

	if ac == nil {
		ac = Autocorrelation(frame, maxLag)
	}

	bestLag, peak := searchPeak(ac, d.cfg.MinLag)
	if bestLag == 0 {
		return Estimate{WindowSize: window}
	}

	return Estimate{
		FundamentalFreq: d.cfg.SampleRate / float64(bestLag),
		BestLag:         bestLag,
		PeakCorrelation: peak,
		WindowSize:      window,
	}
}

// searchPeak returns the lag with the strongest correlation in
// [minLag, len(ac)). The initial best is 0 with strict comparison, so a
// buffer whose correlations never exceed 0 reports lag 0.
func searchPeak(ac []float64, minLag int) (bestLag int, peak float64) {
	for lag := minLag; lag < len(ac); lag++ {
		if ac[lag] > peak {
			peak = ac[lag]
			bestLag = lag
		}
	}

	return bestLag, peak
}

func normalizeConfig(cfg Config) Config {
	if cfg.MaxWindow <= 0 {
		cfg.MaxWindow = defaultMaxWindow
	}

	if cfg.MinLag <= 0 {
		cfg.MinLag = defaultMinLag
	}

	return cfg
}
