// Package signal generates deterministic test and demo signals: sine
// waves, harmonic series resembling voiced sounds, and seeded white
// noise.
package signal
