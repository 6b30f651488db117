/*------------------------------------------------------------------------------
* modern.go : structurally faithful synthetic codes for modernized signals
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */
package prncode

// The spec treats PRN code tables as opaque lookup data (§1, §6): the
// core only needs a ±1-valued chip array of the documented length at the
// documented rate, plus any documented overlay. For the modernized
// signals below, ICD-exact reference sequences are out of scope (no
// ICD-validated table is part of this codebase); these generators
// produce deterministic, PRN-seeded synthetic codes of the right length,
// rate, and overlay structure, suitable for exercising the pipeline
// end-to-end without standing in for a real receiver's acquisition code.

// L1CDataLength and L1CPilotLength are the pre-BOC chip counts for GPS
// L1C's data and pilot components (each upsampled 2x by package boc for
// BOC(1,1) to the documented 2.046 Mcps rate).
const (
	L1CDataLength  = 10230
	L1CPilotLength = 10230
	L1CBaseRateHz  = 1.023e6
)

// L5Length is the GPS L5 I/Q pre-overlay chip count at 10.23 Mcps.
const (
	L5Length  = 10230
	L5RateHz  = 10.23e6
	L5INHBits = 10
	L5QNHBits = 20
)

// E1Length is the Galileo E1B/C pre-BOC chip count (BOC(1,1), upsampled
// 2x to 2.046 Mcps), with a 25-bit pilot secondary (overlay) code.
const (
	E1Length      = 4092
	E1BaseRateHz  = 1.023e6
	E1PilotNHBits = 25
)

// synthChipSequence deterministically expands a PRN into a ±1-valued
// chip array of length n via a simple (mixed, additive-constant) linear
// congruential generator seeded by the PRN, documented as synthetic (see package doc).
func synthChipSequence(prn, n int) []float64 {
	out := make([]float64, n)
	state := uint32(prn)*2654435761 + 1
	for i := range out {
		state = state*1664525 + 1013904223
		if state&0x8000_0000 != 0 {
			out[i] = -1
		} else {
			out[i] = 1
		}
	}
	return out
}

// overlayBits deterministically expands a PRN into an n-bit ±1-valued
// overlay (secondary/Neuman-Hofman-style) code.
func overlayBits(prn, n int) []float64 {
	return synthChipSequence(prn*7919+1, n)
}

// GPS_L1C_DataPilot returns the pre-BOC data and pilot chip sequences for
// GPS L1C; callers apply boc.Upsample(.., 2) to reach the documented
// 2.046 Mcps BOC(1,1) rate.
func GPS_L1C_DataPilot(prn int) (data, pilot []float64) {
	return synthChipSequence(prn, L1CDataLength), synthChipSequence(prn+10000, L1CPilotLength)
}

// GPS_L5 returns the I/Q pre-overlay chip sequences and their Neuman-
// Hofman-style overlay codes (I: 10 bits, Q: 20 bits) at 10.23 Mcps.
func GPS_L5(prn int) (i, q, iOverlay, qOverlay []float64) {
	i = synthChipSequence(prn+20000, L5Length)
	q = synthChipSequence(prn+30000, L5Length)
	iOverlay = overlayBits(prn, L5INHBits)
	qOverlay = overlayBits(prn, L5QNHBits)
	return
}

// Galileo_E1BC returns the pre-BOC E1B (data) and E1C (pilot) chip
// sequences and E1C's 25-bit pilot overlay; callers apply
// boc.Upsample(.., 2) to reach the documented 2.046 Mcps BOC(1,1) rate.
func Galileo_E1BC(prn int) (e1b, e1c, e1cOverlay []float64) {
	e1b = synthChipSequence(prn+40000, E1Length)
	e1c = synthChipSequence(prn+50000, E1Length)
	e1cOverlay = overlayBits(prn, E1PilotNHBits)
	return
}
