/*------------------------------------------------------------------------------
* source.go : raw sample sources (repeating chips, sine, filtered)
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */
package gnssgo

import "math"

// SampleSource is the leaf-stage capability set every chip/tone/filtered
// generator implements: pull n samples and advance n samples without
// generating them. Variants are plain structs behind this interface rather
// than an inheritance hierarchy (Design Notes bullet 1).
type SampleSource interface {
	// Request returns the next n samples and advances internal state by n.
	Request(n int) []complex128
	// Advance updates internal state by n samples without generating them.
	Advance(n int)
	// Rate returns the source's fixed sample rate in Hz.
	Rate() float64
	// UseNeighborInterp reports whether downstream resampling onto a
	// common grid should use nearest-lower (true, e.g. square-wave chip
	// streams) rather than shape-preserving cubic (false).
	UseNeighborInterp() bool
}

// RepeatingSampleSource cycles through an immutable chip/sample array at a
// fixed rate, starting at a 1-based user-facing offset (converted to a
// 0-based internal index at construction).
type RepeatingSampleSource struct {
	samples     []complex128
	rate        float64
	idx         int
	neighborInt bool
}

// NewRepeatingSampleSource validates samples/rate/start and returns a
// RepeatingSampleSource. start is 1-based per spec (user-facing); start
// must lie in [1, len(samples)].
func NewRepeatingSampleSource(samples []complex128, rate float64, start int, useNeighborInterp bool) (*RepeatingSampleSource, error) {
	if len(samples) == 0 {
		Logger.Warn("source: rejected empty chip array")
		return nil, ErrEmptyChipArray
	}
	if rate <= 0 {
		Logger.Warn("source: rejected non-positive rate", "rate", rate)
		return nil, ErrNonPositiveRate
	}
	if start < 1 || start > len(samples) {
		Logger.Warn("source: rejected start index out of range", "start", start, "len", len(samples))
		return nil, ErrBadStartIndex
	}
	return &RepeatingSampleSource{
		samples:     samples,
		rate:        rate,
		idx:         start - 1,
		neighborInt: useNeighborInterp,
	}, nil
}

func (r *RepeatingSampleSource) Rate() float64            { return r.rate }
func (r *RepeatingSampleSource) UseNeighborInterp() bool  { return r.neighborInt }

func (r *RepeatingSampleSource) Request(n int) []complex128 {
	out := make([]complex128, n)
	l := len(r.samples)
	for k := 0; k < n; k++ {
		out[k] = r.samples[(r.idx+k)%l]
	}
	r.Advance(n)
	return out
}

func (r *RepeatingSampleSource) Advance(n int) {
	l := len(r.samples)
	r.idx = ((r.idx+n)%l + l) % l
}

// SineSampleSource generates a pure complex tone exp(i*2*pi*f*t) at a
// fixed rate, carrying phase continuity across Request calls. Frequency
// zero degenerates to a constant 1+0i stream, used as a DC test fixture
// (spec §8 scenario 4).
type SineSampleSource struct {
	freq  float64
	rate  float64
	phase float64 // radians, mod 2*pi
}

// NewSineSampleSource constructs a tone generator; rate must be positive.
func NewSineSampleSource(freq, rate, initialPhase float64) (*SineSampleSource, error) {
	if rate <= 0 {
		Logger.Warn("source: rejected non-positive rate", "rate", rate)
		return nil, ErrNonPositiveRate
	}
	return &SineSampleSource{freq: freq, rate: rate, phase: math.Mod(initialPhase, 2*math.Pi)}, nil
}

func (s *SineSampleSource) Rate() float64           { return s.rate }
func (s *SineSampleSource) UseNeighborInterp() bool { return false }

func (s *SineSampleSource) Request(n int) []complex128 {
	out := make([]complex128, n)
	dphi := 2 * math.Pi * s.freq / s.rate
	phi := s.phase
	for k := 0; k < n; k++ {
		out[k] = complex(math.Cos(phi), math.Sin(phi))
		phi += dphi
	}
	s.phase = math.Mod(phi, 2*math.Pi)
	if s.phase < 0 {
		s.phase += 2 * math.Pi
	}
	return out
}

func (s *SineSampleSource) Advance(n int) {
	dphi := 2 * math.Pi * s.freq / s.rate
	s.phase = math.Mod(s.phase+float64(n)*dphi, 2*math.Pi)
	if s.phase < 0 {
		s.phase += 2 * math.Pi
	}
}

// FilteredSampleSource wraps an upstream SampleSource with a direct-form-II
// transposed IIR/FIR filter, carrying its delay line across calls (Design
// Notes bullet 4: the state is the delay line, not the accumulated output).
type FilteredSampleSource struct {
	upstream SampleSource
	b, a     []float64
	z        []complex128 // delay line, length max(len(b),len(a))-1, lazily allocated
}

// NewFilteredSampleSource wraps upstream with numerator b and denominator
// a (a defaults to [1] when nil/empty, i.e. a pure FIR).
func NewFilteredSampleSource(upstream SampleSource, b, a []float64) (*FilteredSampleSource, error) {
	if len(a) == 0 {
		a = []float64{1}
	}
	if a[0] == 0 {
		Logger.Warn("source: rejected filter with zero leading denominator coefficient")
		return nil, ErrBadFilterCoefs
	}
	return &FilteredSampleSource{upstream: upstream, b: b, a: a}, nil
}

func (f *FilteredSampleSource) Rate() float64           { return f.upstream.Rate() }
func (f *FilteredSampleSource) UseNeighborInterp() bool { return f.upstream.UseNeighborInterp() }

func (f *FilteredSampleSource) Request(n int) []complex128 {
	in := f.upstream.Request(n)
	order := len(f.b)
	if len(f.a) > order {
		order = len(f.a)
	}
	if f.z == nil {
		f.z = make([]complex128, order-1)
	}
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		x := in[k]
		var y complex128
		if len(f.z) > 0 {
			y = complex(f.b0(), 0)*x + f.z[0]
		} else {
			y = complex(f.b0(), 0) * x
		}
		for i := 0; i+1 < len(f.z); i++ {
			f.z[i] = f.coefB(i+1)*x + f.z[i+1] - f.coefA(i+1)*y
		}
		if len(f.z) > 0 {
			last := len(f.z) - 1
			f.z[last] = f.coefB(last+1)*x - f.coefA(last+1)*y
		}
		out[k] = y
	}
	return out
}

func (f *FilteredSampleSource) Advance(n int) { f.upstream.Advance(n) }

func (f *FilteredSampleSource) b0() float64 {
	if len(f.b) == 0 {
		return 0
	}
	return f.b[0] / f.a[0]
}

func (f *FilteredSampleSource) coefB(i int) complex128 {
	if i >= len(f.b) {
		return 0
	}
	return complex(f.b[i]/f.a[0], 0)
}

func (f *FilteredSampleSource) coefA(i int) complex128 {
	if i >= len(f.a) {
		return 0
	}
	return complex(f.a[i]/f.a[0], 0)
}
