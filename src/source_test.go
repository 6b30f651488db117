package gnssgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func chips(vals ...float64) []complex128 {
	out := make([]complex128, len(vals))
	for i, v := range vals {
		out[i] = complex(v, 0)
	}
	return out
}

func TestRepeatingSampleSource_Scenario(t *testing.T) {
	src, err := NewRepeatingSampleSource(chips(1, -1, 1, -1), 1, 1, true)
	require.NoError(t, err)

	got := src.Request(3)
	assert.Equal(t, chips(1, -1, 1), got)

	src.Advance(2)
	got = src.Request(3)
	assert.Equal(t, chips(-1, 1, -1), got)
}

func TestRepeatingSampleSource_FullCycleBoundary(t *testing.T) {
	vals := chips(1, -1, 1, -1)
	src, err := NewRepeatingSampleSource(vals, 1, 1, true)
	require.NoError(t, err)
	assert.Equal(t, vals, src.Request(4))

	src2, err := NewRepeatingSampleSource(vals, 1, 1, true)
	require.NoError(t, err)
	got := src2.Request(5)
	assert.Equal(t, append(append([]complex128{}, vals...), vals[0]), got)
}

func TestRepeatingSampleSource_ConstructionErrors(t *testing.T) {
	_, err := NewRepeatingSampleSource(nil, 1, 1, false)
	assert.ErrorIs(t, err, ErrEmptyChipArray)

	_, err = NewRepeatingSampleSource(chips(1), 0, 1, false)
	assert.ErrorIs(t, err, ErrNonPositiveRate)

	_, err = NewRepeatingSampleSource(chips(1, 1), 1, 3, false)
	assert.ErrorIs(t, err, ErrBadStartIndex)
}

// request(n) followed by request(m) equals the concatenation of request(n+m).
func TestRepeatingSampleSource_ConcatenationInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := rapid.IntRange(1, 9).Draw(t, "l")
		vals := make([]float64, l)
		for i := range vals {
			vals[i] = rapid.Float64Range(-1, 1).Draw(t, "v")
		}
		n := rapid.IntRange(0, 20).Draw(t, "n")
		m := rapid.IntRange(0, 20).Draw(t, "m")

		a, err := NewRepeatingSampleSource(chips(vals...), 1, 1, false)
		require.NoError(t, err)
		first := a.Request(n)
		second := a.Request(m)
		combined := append(append([]complex128{}, first...), second...)

		b, err := NewRepeatingSampleSource(chips(vals...), 1, 1, false)
		require.NoError(t, err)
		want := b.Request(n + m)

		assert.Equal(t, want, combined)
	})
}
