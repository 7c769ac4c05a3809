package classify_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-voice/classify"
)

func ExampleClassify() {
	const sampleRate = 48000.0

	// 200 Hz tone, inside the female band.
	samples := make([]float64, 4096)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 200 * float64(i) / sampleRate)
	}

	res := classify.Classify(samples, classify.Config{SampleRate: sampleRate})

	fmt.Printf("%s (%.3f) at %.1f Hz\n", res.Label, res.Confidence, res.FundamentalFreq)
	// Output:
	// female (0.575) at 200.0 Hz
}

func ExampleFromFrequency() {
	for _, f := range []float64{120, 172, 300, 0} {
		label, conf := classify.FromFrequency(f)
		fmt.Printf("%.0f Hz: %s %.3f\n", f, label, conf)
	}
	// Output:
	// 120 Hz: male 0.716
	// 172 Hz: female 0.435
	// 300 Hz: unknown 0.300
	// 0 Hz: unknown 0.000
}
