/*------------------------------------------------------------------------------
* sink.go : fixed-point IQ scaling and transport sinks
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */

// Package sink converts floating-point composite samples into the
// fixed-point wire representation and writes interleaved I/Q to a file,
// serial port, or TCP connection, the same three transports the teacher
// library dispatches over (stream.go's FileType/SerialComm/TcpConn),
// reduced here to the synthesis side's write-only needs.
package sink

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"net"

	serial "github.com/tarm/goserial"
)

// ScaleIQ maps floating-point I/Q samples onto signed 16-bit integers so
// that a signal at full-scale power fsPowerDB (dBW or dBm, matching the
// units of the power profile the caller scaled samples against) occupies
// the full int16 range: scale = (2^15-1) / 10^(fsPowerDB/20).
func ScaleIQ(samples []complex128, fsPowerDB float64) []int16 {
	scale := (math.MaxInt16) / math.Pow(10, fsPowerDB/20)
	out := make([]int16, 2*len(samples))
	for i, s := range samples {
		out[2*i] = clampInt16(real(s) * scale)
		out[2*i+1] = clampInt16(imag(s) * scale)
	}
	return out
}

func clampInt16(x float64) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}
	return int16(math.Round(x))
}

// writeInterleaved writes scaled I/Q samples to w as little-endian int16
// pairs.
func writeInterleaved(w io.Writer, iq []int16) error {
	buf := make([]byte, 2*len(iq))
	for i, v := range iq {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(v))
	}
	_, err := w.Write(buf)
	return err
}

// FileSink writes interleaved I/Q samples to a buffered io.Writer.
type FileSink struct {
	w *bufio.Writer
}

// NewFileSink wraps w in a buffered writer.
func NewFileSink(w io.Writer) *FileSink {
	return &FileSink{w: bufio.NewWriter(w)}
}

// Write scales samples against fsPowerDB and writes them.
func (f *FileSink) Write(samples []complex128, fsPowerDB float64) error {
	return writeInterleaved(f.w, ScaleIQ(samples, fsPowerDB))
}

// Flush flushes any buffered bytes to the underlying writer.
func (f *FileSink) Flush() error { return f.w.Flush() }

// SerialSink writes interleaved I/Q samples to a serial port via
// tarm/goserial, the same library the teacher's stream.go dispatches
// serial streams through.
type SerialSink struct {
	port io.ReadWriteCloser
}

// OpenSerialSink opens the named serial port at baud bps.
func OpenSerialSink(name string, baud int) (*SerialSink, error) {
	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("sink: open serial %s: %w", name, err)
	}
	return &SerialSink{port: port}, nil
}

// Write scales samples against fsPowerDB and writes them to the port.
func (s *SerialSink) Write(samples []complex128, fsPowerDB float64) error {
	return writeInterleaved(s.port, ScaleIQ(samples, fsPowerDB))
}

// Close closes the underlying serial port.
func (s *SerialSink) Close() error { return s.port.Close() }

// TCPSink writes interleaved I/Q samples to a TCP connection.
type TCPSink struct {
	conn net.Conn
}

// DialTCPSink connects to the given TCP address.
func DialTCPSink(addr string) (*TCPSink, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("sink: dial %s: %w", addr, err)
	}
	return &TCPSink{conn: conn}, nil
}

// Write scales samples against fsPowerDB and writes them to the connection.
func (t *TCPSink) Write(samples []complex128, fsPowerDB float64) error {
	return writeInterleaved(t.conn, ScaleIQ(samples, fsPowerDB))
}

// Close closes the underlying TCP connection.
func (t *TCPSink) Close() error { return t.conn.Close() }
