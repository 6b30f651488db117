/*------------------------------------------------------------------------------
* ppfile.go : bit-exact piecewise-polynomial binary file format
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */

// Package ppfile reads and writes the binary piecewise-polynomial file
// format consumed by gnssgo's time-varying profiles (power, Doppler,
// pseudorange, data symbols): a magic word, a break count and vector, a
// per-piece byte-offset lookup table, and per-piece coefficient rows in
// descending-power order.
package ppfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	gnssgo "github.com/fengxuebin/gnssgo-synth/src"
)

// Magic is the little-endian magic word at bytes 0-3 of a valid file.
const Magic uint32 = 0x70537750

// Read parses the binary format from r and returns the decoded
// PiecewisePolynomial. The per-piece offset lookup table is parsed only
// to skip past it; its contents are never consulted (Open Question 1:
// pieces are located by sequential parsing, not by the table).
func Read(r io.Reader) (*gnssgo.PiecewisePolynomial, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(buf) < 20 {
		return nil, fmt.Errorf("ppfile: file too short to contain a header: %w", gnssgo.ErrBadMagic)
	}
	magic := binary.LittleEndian.Uint32(buf[0:4])
	if magic != Magic {
		return nil, fmt.Errorf("ppfile: magic word 0x%08x, want 0x%08x: %w", magic, Magic, gnssgo.ErrBadMagic)
	}
	n := int(int32(binary.LittleEndian.Uint32(buf[16:20])))
	if n < 2 {
		return nil, fmt.Errorf("ppfile: N=%d, need at least 2 breaks", n)
	}

	off := 20
	breaks := make([]float64, n)
	for i := 0; i < n; i++ {
		breaks[i] = asFloat64(buf[off : off+8])
		off += 8
	}

	// per-piece byte-offset lookup table: 4*(N-1) bytes, skipped.
	off += 4 * (n - 1)

	coefs := make([][]float64, n-1)
	for i := 0; i < n-1; i++ {
		c := int(int32(binary.LittleEndian.Uint32(buf[off : off+4])))
		off += 4
		row := make([]float64, c)
		for k := 0; k < c; k++ {
			row[k] = asFloat64(buf[off : off+8])
			off += 8
		}
		coefs[i] = row
	}

	return gnssgo.NewPiecewisePolynomial(breaks, coefs)
}

// Write encodes pp in the binary format, emitting an all-zero offset
// lookup table of N-1 entries (a round-trip-safe choice per Open Question
// 1 since no reader is required to honor it; Read skips exactly that
// many bytes).
func Write(w io.Writer, pp *gnssgo.PiecewisePolynomial) error {
	var buf bytes.Buffer
	header := make([]byte, 20)
	binary.LittleEndian.PutUint32(header[0:4], Magic)
	binary.LittleEndian.PutUint32(header[16:20], uint32(int32(len(pp.Breaks))))
	buf.Write(header)

	for _, b := range pp.Breaks {
		var bs [8]byte
		binary.LittleEndian.PutUint64(bs[:], floatBits(b))
		buf.Write(bs[:])
	}

	// per-piece offset table: emitted as all-zero, consistent with "never
	// consulted" (Open Question 1); length matches N-1 so a reader that
	// does honor it still sees a structurally valid, if unused, table.
	offsetTable := make([]byte, 4*(len(pp.Breaks)-1))
	buf.Write(offsetTable)

	// Each piece is written at the polynomial's full (already left-padded)
	// order: every C_i equals the global order, so a reader's own
	// left-zero-pad step is a no-op and the round trip is bit-exact.
	for _, row := range pp.Coefs {
		var cb [4]byte
		binary.LittleEndian.PutUint32(cb[:], uint32(int32(len(row))))
		buf.Write(cb[:])
		for _, c := range row {
			var bs [8]byte
			binary.LittleEndian.PutUint64(bs[:], floatBits(c))
			buf.Write(bs[:])
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func asFloat64(b []byte) float64 {
	bits := binary.LittleEndian.Uint64(b)
	return math.Float64frombits(bits)
}

func floatBits(f float64) uint64 { return math.Float64bits(f) }
