package gnssgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sineModSignal(t *testing.T, freq, rate float64) *ModulatedSignal {
	t.Helper()
	src, err := NewSineSampleSource(freq, rate, 0)
	require.NoError(t, err)
	ref := NewReferenceSignal(src, nil)
	return NewModulatedSignal(ref, nil, nil, nil, 0)
}

// Composite with a single signal, K=1, no FDMA, no profiles returns
// (t_hi, samples) identical to the upstream ModulatedSignal.
func TestComposite_SingleSignalPassthrough(t *testing.T) {
	rate := 8000.0
	mod := sineModSignal(t, 1000, rate)
	c, err := NewComposite(rate, WithOversampleRatio(1))
	require.NoError(t, err)
	require.NoError(t, c.AddSignal(mod, "sig", 0))

	wantMod := sineModSignal(t, 1000, rate)
	wantT, wantS, _ := wantMod.Request(0.01)

	gotT, gotS, err := c.Request(0.01)
	require.NoError(t, err)

	require.Equal(t, len(wantT), len(gotT))
	for i := range wantT {
		assert.InDelta(t, wantT[i], gotT[i], 1e-9)
		assert.InDelta(t, real(wantS[i]), real(gotS[i]), 1e-9)
		assert.InDelta(t, imag(wantS[i]), imag(gotS[i]), 1e-9)
	}
}

// Two sinewave sources summed with K=1, no FDMA: output equals the
// elementwise sum of the two individual streams.
func TestComposite_TwoSignalSum(t *testing.T) {
	rate := 8000.0
	modA := sineModSignal(t, 1000, rate)
	modB := sineModSignal(t, 2000, rate)

	c, err := NewComposite(rate, WithOversampleRatio(1))
	require.NoError(t, err)
	require.NoError(t, c.AddSignal(modA, "sigA", 0))
	require.NoError(t, c.AddSignal(modB, "sigB", 0))

	wantA := sineModSignal(t, 1000, rate)
	wantB := sineModSignal(t, 2000, rate)
	_, sA, _ := wantA.Request(0.01)
	_, sB, _ := wantB.Request(0.01)

	_, gotS, err := c.Request(0.01)
	require.NoError(t, err)

	require.Equal(t, len(sA), len(gotS))
	for i := range sA {
		want := sA[i] + sB[i]
		assert.InDelta(t, real(want), real(gotS[i]), 1e-9)
		assert.InDelta(t, imag(want), imag(gotS[i]), 1e-9)
	}
}

func TestComposite_ChunkTooSmall(t *testing.T) {
	c, err := NewComposite(10, WithOversampleRatio(1))
	require.NoError(t, err)
	mod := sineModSignal(t, 1, 10)
	require.NoError(t, c.AddSignal(mod, "sig", 0))

	_, _, err = c.Request(0.001)
	assert.ErrorIs(t, err, ErrChunkTooSmall)
}

func TestComposite_NoSignals(t *testing.T) {
	c, err := NewComposite(10, WithOversampleRatio(1))
	require.NoError(t, err)
	_, _, err = c.Request(1.0)
	assert.ErrorIs(t, err, ErrNoSignals)
}
