package sink

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleIQ_FullScaleAtFsPower(t *testing.T) {
	samples := []complex128{complex(1, -1)}
	out := ScaleIQ(samples, 0)
	assert.Equal(t, int16(math.MaxInt16), out[0])
	assert.Equal(t, int16(-math.MaxInt16), out[1])
}

func TestScaleIQ_Clamps(t *testing.T) {
	samples := []complex128{complex(100, -100)}
	out := ScaleIQ(samples, 0)
	assert.Equal(t, int16(math.MaxInt16), out[0])
	assert.Equal(t, int16(math.MinInt16), out[1])
}

func TestFileSink_WritesInterleavedLittleEndian(t *testing.T) {
	var buf bytes.Buffer
	fs := NewFileSink(&buf)
	require.NoError(t, fs.Write([]complex128{complex(1, -1)}, 0))
	require.NoError(t, fs.Flush())

	assert.Len(t, buf.Bytes(), 4)
	i := int16(binary.LittleEndian.Uint16(buf.Bytes()[0:2]))
	q := int16(binary.LittleEndian.Uint16(buf.Bytes()[2:4]))
	assert.Equal(t, int16(math.MaxInt16), i)
	assert.Equal(t, int16(-math.MaxInt16), q)
}
