/*------------------------------------------------------------------------------
* ca.go : GPS L1 C/A Gold code generator
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */

// Package prncode generates the ±1-valued chip sequences the core
// treats as opaque lookup data (spec §1, §6): GPS L1 C/A via the
// standard two-register Gold-code construction, and structurally
// faithful synthetic stand-ins (right chip count, right rate) for the
// modernized codes the spec names but does not require validating
// against an ICD reference sequence.
package prncode

import "fmt"

// CALength is the GPS L1 C/A code period in chips.
const CALength = 1023

// CARateHz is the GPS L1 C/A chipping rate in chips/second.
const CARateHz = 1.023e6

// caTaps holds the two G2 output-tap positions (1-indexed) per PRN,
// per the standard ICD-GPS-200 C/A code phase assignment.
var caTaps = map[int][2]int{
	1: {2, 6}, 2: {3, 7}, 3: {4, 8}, 4: {5, 9}, 5: {1, 9},
	6: {2, 10}, 7: {1, 8}, 8: {2, 9}, 9: {3, 10}, 10: {2, 3},
	11: {3, 4}, 12: {5, 6}, 13: {6, 7}, 14: {7, 8}, 15: {8, 9},
	16: {9, 10}, 17: {1, 4}, 18: {2, 5}, 19: {3, 6}, 20: {4, 7},
	21: {5, 8}, 22: {6, 9}, 23: {1, 3}, 24: {4, 6}, 25: {5, 7},
	26: {6, 8}, 27: {7, 9}, 28: {8, 10}, 29: {1, 6}, 30: {2, 7},
	31: {3, 8}, 32: {4, 9},
}

// GPS_L1CA returns the ±1-valued 1023-chip Gold code for the given PRN
// (1-32), generated from the standard G1/G2 10-stage LFSR pair.
func GPS_L1CA(prn int) ([]float64, error) {
	taps, ok := caTaps[prn]
	if !ok {
		return nil, fmt.Errorf("prncode: unsupported GPS L1 C/A PRN %d", prn)
	}

	g1 := newLFSR10([]int{3, 10})
	g2 := newLFSR10([]int{2, 3, 6, 8, 9, 10})

	code := make([]float64, CALength)
	for i := 0; i < CALength; i++ {
		g1out := g1.bit(10)
		g2out := g2.bit(taps[0]) ^ g2.bit(taps[1])
		chip := g1out ^ g2out
		if chip == 0 {
			code[i] = 1
		} else {
			code[i] = -1
		}
		g1.clock()
		g2.clock()
	}
	return code, nil
}

// lfsr10 is a 10-stage Fibonacci LFSR with bit 1 the stage the feedback
// shifts into and bit 10 the oldest (output) stage, state all-ones at
// construction (the GPS C/A initial state).
type lfsr10 struct {
	state  [10]int
	taps   []int // 1-indexed feedback taps
}

func newLFSR10(taps []int) *lfsr10 {
	l := &lfsr10{taps: taps}
	for i := range l.state {
		l.state[i] = 1
	}
	return l
}

// bit returns the value of the given 1-indexed stage.
func (l *lfsr10) bit(i int) int { return l.state[i-1] }

func (l *lfsr10) clock() {
	fb := 0
	for _, t := range l.taps {
		fb ^= l.state[t-1]
	}
	copy(l.state[1:], l.state[:9])
	l.state[0] = fb
}
