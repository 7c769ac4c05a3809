package track_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-voice/track"
)

func ExampleProcess() {
	const sampleRate = 48000.0

	// One second of a 120 Hz tone.
	samples := make([]float64, 48000)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 120 * float64(i) / sampleRate)
	}

	tr := track.Process(samples, track.Config{SampleRate: sampleRate})

	fmt.Printf("%s, voiced %.0f%%, median %.1f Hz\n",
		tr.Label, tr.VoicedRatio*100, tr.MedianFundamental)
	// Output:
	// male, voiced 100%, median 120.0 Hz
}
