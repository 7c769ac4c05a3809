// Package spectrum computes frequency-domain visualization data from
// audio frames: one-sided magnitude spectra and log-spaced band bars
// suitable for frequency-bar displays.
//
// Frames are windowed, zero-padded to the FFT size, and transformed; bin
// magnitudes are coherent-gain normalized so a full-scale sine centered
// on a bin reads close to 1.0. Bars map per-band peak levels in dB onto
// [0, 1] against a configurable floor.
package spectrum
