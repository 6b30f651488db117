/*------------------------------------------------------------------------------
* pseudorange.go : pseudorange-to-signal-time inversion
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */
package gnssgo

import "sort"

// pseudorangeResolution is the fixed evaluation-point spacing (seconds)
// used to densify long breakpoint intervals before inverting a
// pseudorange profile; accuracy is governed by this sampling density
// since the inversion has no closed form for an arbitrary PP.
const pseudorangeResolution = 0.1

// SpeedOfLight is the vacuum propagation speed, in meters/second, used
// to convert a pseudorange profile into a signal-time warp.
const SpeedOfLight = 299792458.0

// ConvertToSignalTimeSpline inverts a pseudorange profile p(t) (meters vs
// true time t) into a PiecewisePolynomial mapping signal time ts = t -
// p(t)/C back to true time t, via a natural cubic spline fit over a dense
// evaluation grid built from p's own breakpoints.
//
// gonum's interp package ships ClampedCubic (first-derivative boundary
// conditions) and AkimaSpline/FritschButland (shape-preserving, not
// natural); none of those match the free/natural boundary condition
// (zero second derivative at both ends) this inversion calls for, so the
// spline solve is hand-rolled here via the standard tridiagonal
// second-derivative system.
func ConvertToSignalTimeSpline(p *PiecewisePolynomial, c float64) (*PiecewisePolynomial, error) {
	tSamples := denseEvalPoints(p.Breaks, pseudorangeResolution)

	ts := make([]float64, len(tSamples))
	for i, t := range tSamples {
		ts[i] = t - p.Eval(t)/c
	}

	breaks, coefs, err := naturalCubicSpline(ts, tSamples)
	if err != nil {
		return nil, err
	}
	return NewPiecewisePolynomial(breaks, coefs)
}

// denseEvalPoints starts from breaks and inserts a uniform grid at
// spacing res into any interval wider than res, always keeping the final
// break, and returns a unique, sorted point set.
func denseEvalPoints(breaks []float64, res float64) []float64 {
	out := make([]float64, 0, len(breaks))
	for i := 0; i+1 < len(breaks); i++ {
		lo, hi := breaks[i], breaks[i+1]
		out = append(out, lo)
		if hi-lo > res {
			for x := lo + res; x < hi; x += res {
				out = append(out, x)
			}
		}
	}
	out = append(out, breaks[len(breaks)-1])
	sort.Float64s(out)
	return uniqueSorted(out)
}

func uniqueSorted(xs []float64) []float64 {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

// naturalCubicSpline fits a natural cubic spline (zero second derivative
// at both endpoints) through (x[i], y[i]), x strictly increasing, and
// returns it in PiecewisePolynomial's breaks+descending-coefficient form
// (order 4: a*dx^3+b*dx^2+c*dx+d per piece).
func naturalCubicSpline(x, y []float64) ([]float64, [][]float64, error) {
	n := len(x)
	if n < 2 {
		return nil, nil, ErrTooFewBreaks
	}
	h := make([]float64, n-1)
	for i := range h {
		h[i] = x[i+1] - x[i]
	}

	// Tridiagonal system for the second derivatives m[1..n-2] (m[0]=m[n-1]=0).
	alpha := make([]float64, n)
	for i := 1; i < n-1; i++ {
		alpha[i] = 3*(y[i+1]-y[i])/h[i] - 3*(y[i]-y[i-1])/h[i-1]
	}
	l := make([]float64, n)
	mu := make([]float64, n)
	z := make([]float64, n)
	l[0] = 1
	for i := 1; i < n-1; i++ {
		l[i] = 2*(x[i+1]-x[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}
	l[n-1] = 1
	m := make([]float64, n) // second derivatives / 2 style c-coefficients per de Boor's algorithm
	for j := n - 2; j >= 0; j-- {
		m[j] = z[j] - mu[j]*m[j+1]
	}

	breaks := append([]float64(nil), x...)
	coefs := make([][]float64, n-1)
	for i := 0; i < n-1; i++ {
		b := (y[i+1]-y[i])/h[i] - h[i]*(m[i+1]+2*m[i])/3
		d := (m[i+1] - m[i]) / (3 * h[i])
		// descending powers: d*dx^3 + m[i]*dx^2 + b*dx + y[i]
		coefs[i] = []float64{d, m[i], b, y[i]}
	}
	return breaks, coefs, nil
}
