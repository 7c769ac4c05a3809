// Package classify labels a voice signal as male or female from its
// autocorrelation pitch estimate.
//
// Classification checks fixed frequency bands in a fixed priority order:
// the female band [165, 265] Hz first, then the male band [85, 180] Hz.
// The bands overlap in [165, 180] Hz; detections there always classify as
// female. This evaluation order is part of the contract and must not be
// reordered.
//
// Classification is a pure function of its inputs. Every input, including
// empty or silent buffers, produces a fully populated Result; the unvoiced
// case is reported as LabelUnknown with zero confidence and frequency.
package classify
