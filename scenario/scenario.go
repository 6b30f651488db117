/*------------------------------------------------------------------------------
* scenario.go : JSON scenario descriptor loader
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */

// Package scenario loads the declarative description of a synthesis run:
// which signals to generate, at what PRN and data rate, and where to find
// the piecewise-polynomial profiles (pseudorange, Doppler, power, data
// I/Q, noise) driving each one.
package scenario

import (
	"encoding/json"
	"fmt"
	"io"
)

// SignalParams names the code-generation parameters for one signal.
type SignalParams struct {
	PRN      int     `json:"prn"`
	DataRate float64 `json:"data_rate_hz"`
}

// Signal describes one modulated signal within a scenario: which GNSS
// system and code family to draw chips from, and the file paths (stored
// as written; cmd/iqgen opens them as given, so relative paths resolve
// against the working directory, not the scenario file's location) of
// the piecewise-polynomial profiles driving it.
type Signal struct {
	System       string       `json:"system"`
	Name         string       `json:"name"`
	Params       SignalParams `json:"params"`
	CarrierPhase float64      `json:"carrier_phase_rad"`

	PseudorangeFile string `json:"pseudorange_file,omitempty"`
	DopplerFile     string `json:"doppler_file,omitempty"`
	PowerFile       string `json:"power_file,omitempty"`
	DataIFile       string `json:"data_i_file,omitempty"`
	DataQFile       string `json:"data_q_file,omitempty"`
	NoiseFile       string `json:"noise_file,omitempty"`

	FDMAOffsetHz float64 `json:"fdma_offset_hz,omitempty"`
}

// Scenario is the top-level descriptor: the composite output sample rate
// and the signals to sum into it.
type Scenario struct {
	OutputRate float64  `json:"output_rate_hz"`
	Signals    []Signal `json:"signals"`
}

// Load parses a JSON scenario descriptor. XML descriptors are not
// supported; they fail JSON decoding and are returned as an ordinary
// decode error, which does not name XML as the cause.
func Load(r io.Reader) (*Scenario, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if s.OutputRate <= 0 {
		return nil, fmt.Errorf("scenario: output_rate_hz must be positive, got %v", s.OutputRate)
	}
	if len(s.Signals) == 0 {
		return nil, fmt.Errorf("scenario: at least one signal is required")
	}
	for i, sig := range s.Signals {
		if sig.Name == "" {
			return nil, fmt.Errorf("scenario: signals[%d]: name is required", i)
		}
	}
	return &s, nil
}
