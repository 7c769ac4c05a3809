// Command voiceinfo prints pitch and voice classification info for WAV files.
//
// Usage:
//
//	voiceinfo [flags] file.wav [file.wav ...]
//
// For each file it decodes the first channel, estimates the fundamental
// frequency by autocorrelation, classifies the voice by pitch band, and
// prints a framewise tracking summary. With -bars it also renders a
// log-spaced spectrum bar meter for the first analysis frame.
//
// Examples:
//
//	voiceinfo recording.wav
//	voiceinfo -frame 2048 -method fft recording.wav
//	voiceinfo -bars 16 recording.wav
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-voice/classify"
	"github.com/cwbudde/algo-voice/pitch"
	"github.com/cwbudde/algo-voice/spectrum"
	"github.com/cwbudde/algo-voice/track"
)

const barWidth = 40

func main() {
	frame := flag.Int("frame", 4096, "analysis frame length in samples")
	hop := flag.Int("hop", 0, "frame advance in samples (default frame/2)")
	method := flag.String("method", "direct", "autocorrelation backend: direct or fft")
	bars := flag.Int("bars", 0, "render a spectrum bar meter with this many bands")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: voiceinfo [flags] file.wav [file.wav ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints pitch and voice classification info for WAV files.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  voiceinfo recording.wav\n")
		fmt.Fprintf(os.Stderr, "  voiceinfo -frame 2048 -method fft recording.wav\n")
		fmt.Fprintf(os.Stderr, "  voiceinfo -bars 16 recording.wav\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	acMethod, err := parseMethod(*method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, path := range flag.Args() {
		if err := analyzeFile(path, *frame, *hop, acMethod, *bars); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, err)
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func parseMethod(name string) (pitch.Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "direct":
		return pitch.MethodDirect, nil
	case "fft":
		return pitch.MethodFFT, nil
	default:
		return 0, fmt.Errorf("unknown method %q (direct or fft)", name)
	}
}

func analyzeFile(path string, frame, hop int, method pitch.Method, bars int) error {
	samples, sampleRate, err := decodeWAV(path)
	if err != nil {
		return err
	}

	res := classify.Classify(samples, classify.Config{
		SampleRate: sampleRate,
		MaxWindow:  frame,
		Method:     method,
	})

	tr := track.Process(samples, track.Config{
		SampleRate: sampleRate,
		FrameSize:  frame,
		HopSize:    hop,
		Method:     method,
	})

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "File\t%s\n", path)
	fmt.Fprintf(tw, "Sample rate\t%.0f Hz\n", sampleRate)
	fmt.Fprintf(tw, "Duration\t%.2f s\n", float64(len(samples))/sampleRate)
	fmt.Fprintf(tw, "Fundamental\t%.1f Hz\n", res.FundamentalFreq)
	fmt.Fprintf(tw, "Voice\t%s (confidence %.2f)\n", res.Label, res.Confidence)
	fmt.Fprintf(tw, "Voiced frames\t%.0f%%\n", tr.VoicedRatio*100)
	fmt.Fprintf(tw, "Median F0\t%.1f Hz\n", tr.MedianFundamental)
	fmt.Fprintf(tw, "Track vote\t%s (confidence %.2f)\n", tr.Label, tr.Confidence)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if bars > 0 {
		if err := printBars(samples, sampleRate, frame, bars); err != nil {
			return err
		}
	}

	fmt.Println()

	return nil
}

func printBars(samples []float64, sampleRate float64, frame, bands int) error {
	analyzer, err := spectrum.NewAnalyzer(spectrum.Config{
		SampleRate: sampleRate,
		FFTSize:    nextPowerOf2(frame),
		Bands:      bands,
	})
	if err != nil {
		return err
	}

	if len(samples) > frame {
		samples = samples[:frame]
	}

	values, err := analyzer.Bars(samples)
	if err != nil {
		return err
	}

	cfg := analyzer.Config()
	ratio := cfg.MaxFreq / cfg.MinFreq

	for b, v := range values {
		lo := cfg.MinFreq * math.Pow(ratio, float64(b)/float64(bands))
		meter := strings.Repeat("#", int(v*barWidth))
		fmt.Printf("%7.0f Hz |%-*s| %.2f\n", lo, barWidth, meter, v)
	}

	return nil
}

func decodeWAV(path string) (samples []float64, sampleRate float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode: %w", err)
	}

	if buf == nil || buf.Format == nil || buf.Format.SampleRate <= 0 {
		return nil, 0, fmt.Errorf("missing format information")
	}

	return firstChannel(buf, int(dec.BitDepth)), float64(buf.Format.SampleRate), nil
}

// firstChannel extracts channel 0 as float64 samples in [-1, 1].
func firstChannel(buf *audio.IntBuffer, bitDepth int) []float64 {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil
	}

	if bitDepth <= 0 {
		bitDepth = 16
	}

	scale := 1 / float64(uint64(1)<<(bitDepth-1))
	channels := buf.Format.NumChannels

	out := make([]float64, 0, len(buf.Data)/channels)
	for i := 0; i < len(buf.Data); i += channels {
		out = append(out, float64(buf.Data[i])*scale)
	}

	return out
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
