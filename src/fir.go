/*------------------------------------------------------------------------------
* fir.go : windowed-sinc FIR design and a persistent-state streaming filter
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */
package gnssgo

import "math"

// designLowpassFIR returns a length-(order+1) Hamming-windowed sinc
// lowpass filter with normalized cutoff fc (relative to the Nyquist rate,
// 0 < fc <= 1).
func designLowpassFIR(order int, fc float64) []float64 {
	n := order + 1
	taps := make([]float64, n)
	m := float64(order) / 2
	sum := 0.0
	for i := 0; i < n; i++ {
		x := float64(i) - m
		var s float64
		if x == 0 {
			s = fc
		} else {
			s = fc * math.Sin(math.Pi*fc*x) / (math.Pi * fc * x)
		}
		w := 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(order))
		taps[i] = s * w
		sum += taps[i]
	}
	for i := range taps {
		taps[i] /= sum
	}
	return taps
}

// firComplexState is a streaming FIR filter over complex128 samples that
// carries its tap delay line across calls (Design Notes bullet 4): the
// whole accumulated output is never re-filtered, only len(taps)-1 samples
// of state persist.
type firComplexState struct {
	taps []float64
	z    []complex128 // oldest-first delay line, length len(taps)-1
}

func newFIRComplexState(taps []float64) *firComplexState {
	return &firComplexState{taps: taps, z: make([]complex128, len(taps)-1)}
}

// Filter runs x through the FIR, returning len(x) output samples and
// updating the delay line in place.
func (f *firComplexState) Filter(x []complex128) []complex128 {
	out := make([]complex128, len(x))
	hist := append(append([]complex128(nil), f.z...), x...)
	// hist[i] corresponds to input sample i - len(f.z); output[k] uses
	// hist[k .. k+len(taps)-1].
	for k := range x {
		var acc complex128
		for j, tap := range f.taps {
			acc += complex(tap, 0) * hist[k+len(f.taps)-1-j]
		}
		out[k] = acc
	}
	if len(f.z) > 0 {
		f.z = append([]complex128(nil), hist[len(hist)-len(f.z):]...)
	}
	return out
}
