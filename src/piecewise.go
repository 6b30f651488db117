/*------------------------------------------------------------------------------
* piecewise.go : piecewise-polynomial time-varying profile evaluator
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */
package gnssgo

import "sort"

// PiecewisePolynomial is an immutable value object representing a scalar
// function of one variable as N-1 polynomial pieces over N breakpoints.
// Coefficients are stored in descending-power order per piece, piece i
// evaluated at x as Horner's method on dx = x - Breaks[i]:
//
//	Σ Coefs[i][k] * dx^(order-1-k)
//
// Breaks must be strictly increasing and there must be at least two of
// them; this is enforced at construction, never at evaluation.
type PiecewisePolynomial struct {
	Breaks []float64
	Coefs  [][]float64
	order  int
}

// NewPiecewisePolynomial validates breaks/coefs and returns an immutable
// PiecewisePolynomial. coefs[i] may be shorter than the global order; rows
// are left-zero-padded to the longest row, matching the binary file format's
// per-piece coefficient-count convention (see ppfile).
func NewPiecewisePolynomial(breaks []float64, coefs [][]float64) (*PiecewisePolynomial, error) {
	if len(breaks) < 2 {
		Logger.Warn("piecewise: rejected breaks array", "len", len(breaks), "reason", "need at least two breaks")
		return nil, ErrTooFewBreaks
	}
	for i := 1; i < len(breaks); i++ {
		if breaks[i] <= breaks[i-1] {
			Logger.Warn("piecewise: rejected non-increasing breaks", "index", i, "breaks_i_minus_1", breaks[i-1], "breaks_i", breaks[i])
			return nil, ErrNonIncreasingBreaks
		}
	}
	if len(coefs) != len(breaks)-1 {
		Logger.Warn("piecewise: coefficient row count does not match breaks", "coefs_len", len(coefs), "want", len(breaks)-1)
		return nil, ErrBadCoefCount
	}
	order := 0
	for _, row := range coefs {
		if len(row) > order {
			order = len(row)
		}
	}
	if order == 0 {
		Logger.Warn("piecewise: rejected all-empty coefficient rows")
		return nil, ErrBadCoefCount
	}
	padded := make([][]float64, len(coefs))
	for i, row := range coefs {
		if len(row) == order {
			padded[i] = row
			continue
		}
		p := make([]float64, order)
		copy(p[order-len(row):], row)
		padded[i] = p
	}
	return &PiecewisePolynomial{
		Breaks: append([]float64(nil), breaks...),
		Coefs:  padded,
		order:  order,
	}, nil
}

// Order returns the global polynomial order (max coefficient count across
// pieces, after left-zero-padding).
func (p *PiecewisePolynomial) Order() int { return p.order }

// NumPieces returns the number of polynomial pieces (len(Breaks)-1).
func (p *PiecewisePolynomial) NumPieces() int { return len(p.Breaks) - 1 }

// pieceIndex returns the clamped piece index for evaluation point x: piece
// 0 if x <= Breaks[0], piece N-2 if x > Breaks[N-1], else the piece i with
// Breaks[i] < x <= Breaks[i+1], located by binary search.
func (p *PiecewisePolynomial) pieceIndex(x float64) int {
	n := len(p.Breaks)
	if x <= p.Breaks[0] {
		return 0
	}
	if x > p.Breaks[n-1] {
		return n - 2
	}
	// first index j such that Breaks[j] > x; piece is j-1.
	j := sort.Search(n, func(i int) bool { return p.Breaks[i] > x })
	return j - 1
}

// Eval evaluates the polynomial at x, silently clamping extrapolation to
// the end pieces per the documented policy.
func (p *PiecewisePolynomial) Eval(x float64) float64 {
	i := p.pieceIndex(x)
	dx := x - p.Breaks[i]
	row := p.Coefs[i]
	v := row[0]
	for k := 1; k < len(row); k++ {
		v = v*dx + row[k]
	}
	return v
}

// EvalAll evaluates the polynomial at each point in xs independently,
// returning a vector of equal length.
func (p *PiecewisePolynomial) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Eval(x)
	}
	return out
}

// Equal reports bit-exact equality of breaks and coefficients, used by the
// ppfile round-trip tests.
func (p *PiecewisePolynomial) Equal(other *PiecewisePolynomial) bool {
	if other == nil || len(p.Breaks) != len(other.Breaks) || len(p.Coefs) != len(other.Coefs) {
		return false
	}
	for i := range p.Breaks {
		if p.Breaks[i] != other.Breaks[i] {
			return false
		}
	}
	for i := range p.Coefs {
		if len(p.Coefs[i]) != len(other.Coefs[i]) {
			return false
		}
		for k := range p.Coefs[i] {
			if p.Coefs[i][k] != other.Coefs[i][k] {
				return false
			}
		}
	}
	return true
}
