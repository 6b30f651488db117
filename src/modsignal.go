/*------------------------------------------------------------------------------
* modsignal.go : power, Doppler, and signal-time-to-true-time warp modulation
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */
package gnssgo

import "math"

// ModulatedSignal wraps a ReferenceSignal and applies, independently and
// optionally: amplitude (power) scaling, Doppler carrier rotation, and
// signal-time-to-true-time warping. State (signal time, carrier phase) is
// continuous across chunk boundaries (spec §3 invariant).
type ModulatedSignal struct {
	upstream *ReferenceSignal
	power    *PiecewisePolynomial // linear power vs true time
	doppler  *PiecewisePolynomial // Hz vs true time
	warp     *PiecewisePolynomial // true time as a function of signal time

	signalTime float64 // seconds, signal time, monotone nondecreasing
	phase      float64 // radians, mod 2*pi

	haveLastSample  bool
	lastTrueT       float64
	lastDopplerFreq float64
}

// NewModulatedSignal constructs a ModulatedSignal. power, doppler, and warp
// may each independently be nil to disable that stage. initialPhase is in
// radians. Per spec Open Question 3, warp (not doppler) is validated on
// its own PP structure, by NewPiecewisePolynomial at the PP's own
// construction; this constructor performs no further check beyond
// accepting a possibly-nil pointer.
func NewModulatedSignal(upstream *ReferenceSignal, power, doppler, warp *PiecewisePolynomial, initialPhase float64) *ModulatedSignal {
	return &ModulatedSignal{
		upstream: upstream,
		power:    power,
		doppler:  doppler,
		warp:     warp,
		phase:    math.Mod(initialPhase, 2*math.Pi),
	}
}

// Request asks for duration D seconds of signal time and returns the
// resulting true-time axis, complex samples, and whether the stream has
// ended (the warp PP's domain was exceeded and the tail was truncated).
func (m *ModulatedSignal) Request(D float64) (trueT []float64, samples []complex128, streamEnded bool) {
	rate := m.upstream.Rate()
	T := 1.0 / rate
	M := int(math.Round(D * rate))
	if M <= 0 {
		return nil, nil, false
	}
	raw := m.upstream.Request(M)

	sigT := make([]float64, M)
	for k := 0; k < M; k++ {
		sigT[k] = m.signalTime + float64(k)*T
	}

	if m.warp != nil {
		lastBreak := m.warp.Breaks[len(m.warp.Breaks)-1]
		kept := 0
		for kept < M && sigT[kept] < lastBreak {
			kept++
		}
		streamEnded = kept < M
		sigT = sigT[:kept]
		raw = raw[:kept]
		trueT = m.warp.EvalAll(sigT)
	} else {
		trueT = sigT
		streamEnded = false
	}

	// Open Question 2: signal_time advances by the *untruncated* duration
	// even when warp truncated the tail, preserved verbatim: once the warp
	// domain is exceeded every subsequent call returns empty output.
	m.signalTime += float64(M) * T

	if len(trueT) == 0 {
		return trueT, raw, streamEnded
	}

	samples = raw
	if m.power != nil {
		for k := range samples {
			p := m.power.Eval(trueT[k])
			samples[k] *= complex(math.Sqrt(p), 0)
		}
	}

	if m.doppler != nil {
		f := m.doppler.EvalAll(trueT)
		n := len(f)
		phi := make([]float64, n)
		if n == 1 {
			phi[0] = m.phase + 2*math.Pi*trueT[0]*f[0]
		} else {
			// base carries the phase forward across the chunk boundary: the
			// stream is continuous, so the trapezoidal integral spans from
			// the previous call's last true-time sample (at phase m.phase)
			// to this call's own axis, not just within this call's array.
			base := m.phase
			if m.haveLastSample {
				dt0 := trueT[0] - m.lastTrueT
				base += 2 * math.Pi * 0.5 * (m.lastDopplerFreq + f[0]) * dt0
			}
			acc := 0.0
			phi[0] = base
			for k := 1; k < n; k++ {
				dt := trueT[k] - trueT[k-1]
				acc += 0.5 * (f[k] + f[k-1]) * dt
				phi[k] = base + 2*math.Pi*acc
			}
		}
		for k := range samples {
			samples[k] *= complex(math.Cos(phi[k]), math.Sin(phi[k]))
		}
		m.phase = math.Mod(phi[n-1], 2*math.Pi)
		if m.phase < 0 {
			m.phase += 2 * math.Pi
		}
		m.haveLastSample = true
		m.lastTrueT = trueT[n-1]
		m.lastDopplerFreq = f[n-1]
	}

	return trueT, samples, streamEnded
}
