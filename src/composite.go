/*------------------------------------------------------------------------------
* composite.go : multi-signal summation with anti-alias filtering and downsampling
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */
package gnssgo

import "math"

const (
	defaultOversampleRatio = 4
	defaultFIROrder        = 60
	defaultCutoffScale     = 1.0
)

// compositeSource is one ModulatedSignal added to a Composite, with its
// own FDMA carrier state and ring buffer.
type compositeSource struct {
	name       string
	mod        *ModulatedSignal
	fdmaOffset float64 // Hz, 0 disables FDMA rotation
	fdmaPhase  float64 // radians, mod 2*pi
	buf        timeSampleBuffer
	ended      bool
}

// BufferDepthObserver reports a named source's current ring buffer depth,
// in samples, after each Composite.Request call; wired to an external
// metrics collector via WithBufferDepthObserver.
type BufferDepthObserver func(signal string, depth int)

// Composite aggregates N ModulatedSignals onto a common high-rate grid,
// sums them, and optionally anti-alias filters and downsamples to the
// output rate.
type Composite struct {
	rOut        float64
	k           int
	rHi         float64
	cutoffScale float64
	firOrder    int
	firTaps     []float64
	groupDelay  float64 // seconds, (firOrder/2)/rHi
	fir         *firComplexState

	sampleCounterHi  int64
	sources          []*compositeSource
	bufDepthObserver BufferDepthObserver
}

// CompositeOption configures optional Composite construction parameters.
type CompositeOption func(*Composite)

// WithOversampleRatio overrides the default oversample ratio K=4.
func WithOversampleRatio(k int) CompositeOption {
	return func(c *Composite) { c.k = k }
}

// WithAntiAliasFilter overrides the default FIR order (60) and cutoff
// scale (1.0, i.e. normalized cutoff alpha/K).
func WithAntiAliasFilter(order int, cutoffScale float64) CompositeOption {
	return func(c *Composite) { c.firOrder = order; c.cutoffScale = cutoffScale }
}

// WithBufferDepthObserver attaches a callback invoked after every
// resampleSource pass with each source's current ring buffer depth,
// letting a caller (e.g. package metrics) observe it without Composite
// importing any observability library itself.
func WithBufferDepthObserver(obs BufferDepthObserver) CompositeOption {
	return func(c *Composite) { c.bufDepthObserver = obs }
}

// NewComposite constructs a Composite at output rate rOut with the given
// options applied over the defaults (K=4, FIR order 60, cutoff scale 1.0).
func NewComposite(rOut float64, opts ...CompositeOption) (*Composite, error) {
	if rOut <= 0 {
		Logger.Warn("composite: rejected non-positive output rate", "rate", rOut)
		return nil, ErrNonPositiveRate
	}
	c := &Composite{
		rOut:        rOut,
		k:           defaultOversampleRatio,
		firOrder:    defaultFIROrder,
		cutoffScale: defaultCutoffScale,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.k < 1 {
		Logger.Warn("composite: rejected oversample ratio", "k", c.k)
		return nil, ErrBadOversampleRatio
	}
	c.rHi = float64(c.k) * rOut
	if c.k != 1 {
		fc := c.cutoffScale / float64(c.k)
		c.firTaps = designLowpassFIR(c.firOrder, fc)
		c.fir = newFIRComplexState(c.firTaps)
		c.groupDelay = (float64(c.firOrder) / 2) / c.rHi
	}
	return c, nil
}

// AddSignal registers a ModulatedSignal under the given name (used only
// to label buffer-depth observations; see WithBufferDepthObserver), with
// an optional FDMA carrier offset in Hz (0 disables FDMA rotation for
// this source).
func (c *Composite) AddSignal(mod *ModulatedSignal, name string, fdmaOffsetHz float64) error {
	if math.IsNaN(fdmaOffsetHz) || math.IsInf(fdmaOffsetHz, 0) {
		Logger.Warn("composite: rejected non-finite FDMA offset", "signal", name, "fdma_offset_hz", fdmaOffsetHz)
		return ErrBadFDMAOffset
	}
	c.sources = append(c.sources, &compositeSource{name: name, mod: mod, fdmaOffset: fdmaOffsetHz})
	return nil
}

// Request returns D seconds (true time) of the summed, anti-alias
// filtered, downsampled output and its time axis.
func (c *Composite) Request(D float64) ([]float64, []complex128, error) {
	if len(c.sources) == 0 {
		Logger.Error("composite: request with no signal sources registered")
		return nil, nil, ErrNoSignals
	}
	nHi := int(math.Floor(D * c.rHi))
	if nHi < 1 {
		Logger.Warn("composite: requested duration too small for one high-rate sample", "duration_s", D, "rate_hi_hz", c.rHi)
		return nil, nil, ErrChunkTooSmall
	}

	tHi := make([]float64, nHi)
	for k := 0; k < nHi; k++ {
		tHi[k] = float64(c.sampleCounterHi+int64(k)) / c.rHi
	}
	c.sampleCounterHi += int64(nHi)

	sum := make([]complex128, nHi)
	for _, src := range c.sources {
		xi, err := c.resampleSource(src, tHi, D)
		if err != nil {
			return nil, nil, err
		}
		if src.fdmaOffset != 0 {
			t0 := tHi[0]
			dphi := 2 * math.Pi * src.fdmaOffset
			for k := range xi {
				trel := tHi[k] - t0
				phi := src.fdmaPhase + dphi*trel
				xi[k] *= complex(math.Cos(phi), math.Sin(phi))
			}
			lastTrel := tHi[len(tHi)-1] - t0
			src.fdmaPhase = math.Mod(src.fdmaPhase+dphi*lastTrel, 2*math.Pi)
			if src.fdmaPhase < 0 {
				src.fdmaPhase += 2 * math.Pi
			}
		}
		for k := range sum {
			sum[k] += xi[k]
		}
	}

	if c.k == 1 {
		return tHi, sum, nil
	}

	filtered := c.fir.Filter(sum)
	outN := (nHi + c.k - 1) / c.k
	outT := make([]float64, 0, outN)
	outS := make([]complex128, 0, outN)
	for k := 0; k < nHi; k += c.k {
		outT = append(outT, tHi[k])
		outS = append(outS, filtered[k])
	}
	return outT, outS, nil
}

// resampleSource trims, fills, and resamples one source's buffer onto the
// common high-rate grid tHi.
func (c *Composite) resampleSource(src *compositeSource, tHi []float64, requestD float64) ([]complex128, error) {
	src.buf.TrimBefore(tHi[0])

	target := tHi[len(tHi)-1]
	for !src.ended {
		last, ok := src.buf.LastTime()
		if ok && last >= target {
			break
		}
		t, samples, ended := src.mod.Request(requestD)
		if len(t) == 0 {
			src.ended = ended
			if ended {
				break
			}
			continue
		}
		if c.k != 1 {
			for i := range t {
				t[i] -= c.groupDelay
			}
		}
		src.buf.Append(t, samples)
		if !src.buf.MonotoneIncreasing() {
			Logger.Error("composite: source buffer time axis is not monotonic", "signal", src.name)
			return nil, ErrNonMonotonicTimeAxis
		}
		src.ended = ended
		if ended {
			break
		}
	}

	if c.bufDepthObserver != nil {
		c.bufDepthObserver(src.name, src.buf.Len())
	}

	if src.buf.Len() == 0 {
		return make([]complex128, len(tHi)), nil
	}

	if src.mod.upstream.UseNeighborInterp() {
		return NearestLowerComplex(src.buf.Times(), src.buf.Samples(), tHi)
	}
	return ShapePreservingComplex(src.buf.Times(), src.buf.Samples(), tHi)
}
