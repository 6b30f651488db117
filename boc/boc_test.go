package boc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsample_BOC11(t *testing.T) {
	out, err := Upsample([]float64{1, -1}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1, -1, 1}, out)
}

func TestUpsample_OddKRejected(t *testing.T) {
	_, err := Upsample([]float64{1}, 3)
	assert.Error(t, err)
}

func TestUpsample_NonPositiveKRejected(t *testing.T) {
	_, err := Upsample([]float64{1}, 0)
	assert.Error(t, err)
	_, err = Upsample([]float64{1}, -2)
	assert.Error(t, err)
}

func TestUpsample_LengthScalesByK(t *testing.T) {
	out, err := Upsample([]float64{1, 1, -1, 1}, 4)
	require.NoError(t, err)
	assert.Len(t, out, 16)
}
