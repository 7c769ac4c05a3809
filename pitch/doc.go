// Package pitch estimates the fundamental frequency of a voice signal
// using time-domain autocorrelation.
//
// The detector computes the autocorrelation of a bounded analysis window
// and picks the lag with the strongest correlation inside the searched
// lag range. The fundamental frequency is sampleRate / bestLag, or 0 when
// no periodicity is found. All inputs produce a valid Estimate; empty or
// silent buffers yield the zero Estimate rather than an error.
//
// Two autocorrelation backends are available: the direct O(w²) loop
// (reference semantics, default) and an FFT-based computation that agrees
// with the direct form within floating-point tolerance and is preferable
// for long windows.
package pitch
