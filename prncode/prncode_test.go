package prncode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allPM1(t *testing.T, xs []float64) {
	t.Helper()
	for _, x := range xs {
		assert.True(t, x == 1 || x == -1, "expected +-1, got %v", x)
	}
}

func TestGPS_L1CA_LengthAndAlphabet(t *testing.T) {
	code, err := GPS_L1CA(1)
	require.NoError(t, err)
	assert.Len(t, code, CALength)
	allPM1(t, code)
}

func TestGPS_L1CA_DistinctPerPRN(t *testing.T) {
	c1, err := GPS_L1CA(1)
	require.NoError(t, err)
	c2, err := GPS_L1CA(2)
	require.NoError(t, err)
	assert.NotEqual(t, c1, c2)
}

func TestGPS_L1CA_UnsupportedPRN(t *testing.T) {
	_, err := GPS_L1CA(99)
	assert.Error(t, err)
}

func TestGLONASS_L1CA_LengthAndAlphabet(t *testing.T) {
	code := GLONASS_L1CA()
	assert.Len(t, code, GlonassLength)
	allPM1(t, code)
}

func TestGPS_L1C_DataPilot(t *testing.T) {
	data, pilot := GPS_L1C_DataPilot(5)
	assert.Len(t, data, L1CDataLength)
	assert.Len(t, pilot, L1CPilotLength)
	allPM1(t, data)
	allPM1(t, pilot)
	assert.NotEqual(t, data, pilot)
}

func TestGPS_L5(t *testing.T) {
	i, q, iov, qov := GPS_L5(7)
	assert.Len(t, i, L5Length)
	assert.Len(t, q, L5Length)
	assert.Len(t, iov, L5INHBits)
	assert.Len(t, qov, L5QNHBits)
	allPM1(t, i)
	allPM1(t, q)
}

func TestGalileo_E1BC(t *testing.T) {
	b, c, ov := Galileo_E1BC(11)
	assert.Len(t, b, E1Length)
	assert.Len(t, c, E1Length)
	assert.Len(t, ov, E1PilotNHBits)
	allPM1(t, b)
	allPM1(t, c)
}
