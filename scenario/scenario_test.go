package scenario

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validJSON = `{
  "output_rate_hz": 10000000,
  "signals": [
    {
      "system": "GPS",
      "name": "L1CA-PRN1",
      "params": {"prn": 1, "data_rate_hz": 50},
      "carrier_phase_rad": 0.0,
      "doppler_file": "doppler1.bin",
      "power_file": "power1.bin",
      "fdma_offset_hz": 0
    }
  ]
}`

func TestLoad_Valid(t *testing.T) {
	s, err := Load(strings.NewReader(validJSON))
	require.NoError(t, err)
	assert.Equal(t, 10000000.0, s.OutputRate)
	require.Len(t, s.Signals, 1)
	assert.Equal(t, "GPS", s.Signals[0].System)
	assert.Equal(t, 1, s.Signals[0].Params.PRN)
	assert.Equal(t, "doppler1.bin", s.Signals[0].DopplerFile)
}

func TestLoad_RejectsMissingOutputRate(t *testing.T) {
	_, err := Load(strings.NewReader(`{"signals":[{"system":"GPS","name":"x","params":{"prn":1}}]}`))
	assert.Error(t, err)
}

func TestLoad_RejectsEmptySignals(t *testing.T) {
	_, err := Load(strings.NewReader(`{"output_rate_hz": 1000, "signals": []}`))
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader(`{"output_rate_hz": 1000, "signals": [{"system":"GPS","name":"x","params":{"prn":1}}], "bogus": 1}`))
	assert.Error(t, err)
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`not json`))
	assert.Error(t, err)
}
