// Package track runs voice classification framewise over a recording and
// aggregates the per-frame results into a single summary: median
// fundamental frequency, voiced ratio, and a majority-vote label.
package track
