package gnssgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ModulatedSignal with no profiles returns samples identical to its
// upstream ReferenceSignal, and true_t[k]-true_t[0] == k/rate.
func TestModulatedSignal_NoProfilesPassthrough(t *testing.T) {
	rate := 1000.0
	src, err := NewRepeatingSampleSource(chips(1, -1), rate, 1, false)
	require.NoError(t, err)
	ref := NewReferenceSignal(src, nil)

	refSrc, err := NewRepeatingSampleSource(chips(1, -1), rate, 1, false)
	require.NoError(t, err)
	refOnly := NewReferenceSignal(refSrc, nil)

	mod := NewModulatedSignal(ref, nil, nil, nil, 0)

	trueT, samples, ended := mod.Request(0.01)
	assert.False(t, ended)
	want := refOnly.Request(len(samples))

	assert.Equal(t, want, samples)
	for k := range trueT {
		assert.InDelta(t, float64(k)/rate, trueT[k]-trueT[0], 1e-9)
	}
}

// Doppler phase continuity: DC source, constant 100Hz Doppler, 1kHz rate,
// two sequential one-second requests. The phase step across the boundary
// must equal 2*pi*100*(1/1000) mod 2*pi.
func TestModulatedSignal_DopplerPhaseContinuity(t *testing.T) {
	rate := 1000.0
	src, err := NewSineSampleSource(0, rate, 0)
	require.NoError(t, err)
	ref := NewReferenceSignal(src, nil)

	doppler, err := NewPiecewisePolynomial([]float64{-1e9, 1e9}, [][]float64{{100}})
	require.NoError(t, err)

	mod := NewModulatedSignal(ref, nil, doppler, nil, 0)

	_, first, _ := mod.Request(1.0)
	_, second, _ := mod.Request(1.0)

	lastPhase := math.Atan2(imag(first[len(first)-1]), real(first[len(first)-1]))
	firstPhase := math.Atan2(imag(second[0]), real(second[0]))

	diff := math.Mod(firstPhase-lastPhase, 2*math.Pi)
	if diff < 0 {
		diff += 2 * math.Pi
	}
	want := math.Mod(2*math.Pi*100*(1.0/1000.0), 2*math.Pi)
	assert.InDelta(t, want, diff, 1e-6)
}
