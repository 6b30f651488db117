/*------------------------------------------------------------------------------
* refsignal.go : data-symbol modulation wrapping a SampleSource
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */
package gnssgo

import "math"

// DataSymbolSource yields complex data symbols, one per ReferenceSignal
// segment boundary. Once the underlying list is exhausted it yields
// 1+0i forever rather than signaling end of stream (spec Open Question 4):
// this is documented behavior, not a defect to fix.
type DataSymbolSource struct {
	symbols      []complex128
	symbolPeriod float64 // seconds
	next         int
}

// NewDataSymbolSource constructs a finite symbol stream with a fixed
// symbol period in seconds.
func NewDataSymbolSource(symbols []complex128, symbolPeriod float64) *DataSymbolSource {
	return &DataSymbolSource{symbols: symbols, symbolPeriod: symbolPeriod}
}

// Next returns the next symbol, or 1+0i once the list is exhausted.
func (d *DataSymbolSource) Next() complex128 {
	if d.next >= len(d.symbols) {
		return complex(1, 0)
	}
	s := d.symbols[d.next]
	d.next++
	return s
}

const defaultSegmentSeconds = 0.02 // 20 ms, used when no data-symbol generator is attached

// ReferenceSignal wraps a SampleSource and, if a DataSymbolSource is
// attached, multiplies successive fixed-length segments by successive
// symbols. Segment length is round(symbolPeriod*rate) when a symbol
// source is present, else round(0.02*rate).
type ReferenceSignal struct {
	upstream    SampleSource
	symbols     *DataSymbolSource
	rate        float64
	segLen      int
	seg         []complex128
	segIdx      int // segIdx == segLen means the segment buffer is exhausted
}

// NewReferenceSignal constructs a ReferenceSignal over upstream. symbols
// may be nil (no data modulation).
func NewReferenceSignal(upstream SampleSource, symbols *DataSymbolSource) *ReferenceSignal {
	rate := upstream.Rate()
	var segLen int
	if symbols != nil {
		segLen = int(math.Round(symbols.symbolPeriod * rate))
	} else {
		segLen = int(math.Round(defaultSegmentSeconds * rate))
	}
	if segLen < 1 {
		segLen = 1
	}
	return &ReferenceSignal{
		upstream: upstream,
		symbols:  symbols,
		rate:     rate,
		segLen:   segLen,
		seg:      make([]complex128, segLen),
		segIdx:   segLen, // start exhausted so the first Request triggers generation
	}
}

func (r *ReferenceSignal) Rate() float64           { return r.rate }
func (r *ReferenceSignal) UseNeighborInterp() bool { return r.upstream.UseNeighborInterp() }

// Request returns N samples, drawing new segments from upstream and
// consuming exactly one symbol per segment boundary crossed, regardless
// of the caller's request size.
func (r *ReferenceSignal) Request(N int) []complex128 {
	out := make([]complex128, 0, N)
	for len(out) < N {
		if r.segIdx >= r.segLen {
			copy(r.seg, r.upstream.Request(r.segLen))
			if r.symbols != nil {
				sym := r.symbols.Next()
				for i := range r.seg {
					r.seg[i] *= sym
				}
			}
			r.segIdx = 0
		}
		remaining := N - len(out)
		segRemaining := r.segLen - r.segIdx
		take := remaining
		if segRemaining < take {
			take = segRemaining
		}
		out = append(out, r.seg[r.segIdx:r.segIdx+take]...)
		r.segIdx += take
	}
	return out
}

func (r *ReferenceSignal) Advance(n int) {
	remaining := n
	for remaining > 0 {
		if r.segIdx >= r.segLen {
			r.upstream.Advance(r.segLen)
			if r.symbols != nil {
				r.symbols.Next()
			}
			r.segIdx = 0
		}
		segRemaining := r.segLen - r.segIdx
		take := remaining
		if segRemaining < take {
			take = segRemaining
		}
		r.segIdx += take
		remaining -= take
	}
}
