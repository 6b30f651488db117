/*------------------------------------------------------------------------------
* resample.go : non-uniform resampling onto a target time axis
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */
package gnssgo

import "gonum.org/v1/gonum/interp"

// isWeaklyIncreasing reports whether xi is sorted non-decreasing, the
// precondition the forward-scan resamplers below require.
func isWeaklyIncreasing(xi []float64) bool {
	for i := 1; i < len(xi); i++ {
		if xi[i] < xi[i-1] {
			return false
		}
	}
	return true
}

// NearestLowerReal resamples real-valued y (sampled at strictly increasing
// x) onto xi via a single forward scan: yi[k] = y[j] where j = max{i :
// x[i] <= xi[k]}, or 0 if no such i exists. xi must be weakly increasing;
// otherwise the forward scan's result is meaningless and this rejects it
// with ErrUnsortedResampleAxis rather than silently producing it.
func NearestLowerReal(x, y, xi []float64) ([]float64, error) {
	if !isWeaklyIncreasing(xi) {
		Logger.Warn("resample: rejected unsorted query axis", "len", len(xi))
		return nil, ErrUnsortedResampleAxis
	}
	yi := make([]float64, len(xi))
	j := 0
	for k, xk := range xi {
		for j < len(x) && x[j] <= xk {
			j++
		}
		if j == 0 {
			yi[k] = 0
		} else {
			yi[k] = y[j-1]
		}
	}
	return yi, nil
}

// NearestLowerComplex is the complex-valued analogue of NearestLowerReal,
// used for chip/square-wave sources to avoid ringing.
func NearestLowerComplex(x []float64, y []complex128, xi []float64) ([]complex128, error) {
	if !isWeaklyIncreasing(xi) {
		Logger.Warn("resample: rejected unsorted query axis", "len", len(xi))
		return nil, ErrUnsortedResampleAxis
	}
	yi := make([]complex128, len(xi))
	j := 0
	for k, xk := range xi {
		for j < len(x) && x[j] <= xk {
			j++
		}
		if j == 0 {
			yi[k] = 0
		} else {
			yi[k] = y[j-1]
		}
	}
	return yi, nil
}

// ShapePreservingComplex resamples complex-valued y (sampled at strictly
// increasing x) onto xi using a shape-preserving (Fritsch-Butland, the
// gonum analogue of MATLAB's pchip) cubic fit of the real and imaginary
// parts independently. Query points outside [x[0], x[last]] are clamped
// to the end of the domain rather than extrapolated, consistent with the
// silent-clamp policy PiecewisePolynomial uses.
func ShapePreservingComplex(x []float64, y []complex128, xi []float64) ([]complex128, error) {
	re := make([]float64, len(y))
	im := make([]float64, len(y))
	for i, v := range y {
		re[i] = real(v)
		im[i] = imag(v)
	}
	var fbRe, fbIm interp.FritschButland
	if err := fbRe.Fit(x, re); err != nil {
		return nil, err
	}
	if err := fbIm.Fit(x, im); err != nil {
		return nil, err
	}
	lo, hi := x[0], x[len(x)-1]
	out := make([]complex128, len(xi))
	for k, xk := range xi {
		xc := xk
		if xc < lo {
			xc = lo
		} else if xc > hi {
			xc = hi
		}
		out[k] = complex(fbRe.Predict(xc), fbIm.Predict(xc))
	}
	return out, nil
}
