/*------------------------------------------------------------------------------
* main.go : IQ synthesis command-line driver
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */

// Command iqgen loads a scenario descriptor, builds the reference
// signal / modulated signal / composite pipeline it describes, and
// streams the resulting fixed-point IQ samples to a sink.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/pflag"

	gnssgo "github.com/fengxuebin/gnssgo-synth/src"
	"github.com/fengxuebin/gnssgo-synth/boc"
	"github.com/fengxuebin/gnssgo-synth/ledger"
	"github.com/fengxuebin/gnssgo-synth/metrics"
	"github.com/fengxuebin/gnssgo-synth/ppfile"
	"github.com/fengxuebin/gnssgo-synth/prncode"
	"github.com/fengxuebin/gnssgo-synth/scenario"
	"github.com/fengxuebin/gnssgo-synth/sink"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	scenarioPath := pflag.StringP("scenario", "s", "", "Path to JSON scenario descriptor.")
	outputPath := pflag.StringP("output", "o", "", "Path to output IQ file (written interleaved int16 little-endian).")
	durationSec := pflag.Float64P("duration", "d", 1.0, "Duration of signal to generate, in seconds.")
	fsPowerDB := pflag.Float64P("fs-power", "p", 0, "Full-scale reference power in dB matching the scenario's power profile units.")
	dsn := pflag.StringP("ledger-dsn", "l", "", "Optional sqlx data source name for the run ledger; empty disables the ledger.")
	driver := pflag.StringP("ledger-driver", "D", "postgres", "SQL driver name for the run ledger (ignored if --ledger-dsn is empty).")
	pflag.Parse()

	if *scenarioPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "iqgen: --scenario and --output are required")
		pflag.Usage()
		os.Exit(2)
	}

	if err := run(*scenarioPath, *outputPath, *durationSec, *fsPowerDB, *dsn, *driver); err != nil {
		gnssgo.Logger.Error("iqgen failed", "err", err)
		os.Exit(1)
	}
}

func run(scenarioPath, outputPath string, durationSec, fsPowerDB float64, dsn, driver string) error {
	sf, err := os.Open(scenarioPath)
	if err != nil {
		return fmt.Errorf("open scenario: %w", err)
	}
	defer sf.Close()

	scn, err := scenario.Load(sf)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	reg := prometheus.NewRegistry()
	mcol := metrics.NewCollectors(reg)

	var led *ledger.Ledger
	var runID string
	ctx := context.Background()
	if dsn != "" {
		db, err := sqlx.Open(driver, dsn)
		if err != nil {
			return fmt.Errorf("open ledger db: %w", err)
		}
		defer db.Close()
		led = ledger.New(db)
		r, err := led.Start(ctx, scn.Signals[0].Name, scn.OutputRate)
		if err != nil {
			return fmt.Errorf("start ledger run: %w", err)
		}
		runID = r.ID
	}

	composite, err := gnssgo.NewComposite(scn.OutputRate,
		gnssgo.WithBufferDepthObserver(mcol.ObserveSourceBufDepth))
	if err != nil {
		return fmt.Errorf("new composite: %w", err)
	}

	for _, sigDesc := range scn.Signals {
		mod, err := buildModulatedSignal(sigDesc)
		if err != nil {
			return fmt.Errorf("build signal %s: %w", sigDesc.Name, err)
		}
		if err := composite.AddSignal(mod, sigDesc.Name, sigDesc.FDMAOffsetHz); err != nil {
			return fmt.Errorf("add signal %s: %w", sigDesc.Name, err)
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	fileSink := sink.NewFileSink(out)

	const chunkSeconds = 0.02
	var written int64
	for elapsed := 0.0; elapsed < durationSec; elapsed += chunkSeconds {
		d := chunkSeconds
		if elapsed+d > durationSec {
			d = durationSec - elapsed
		}

		start := time.Now()
		_, samples, err := composite.Request(d)
		mcol.FIRFillSeconds.Observe(time.Since(start).Seconds())
		if err != nil {
			return fmt.Errorf("composite request: %w", err)
		}
		if err := fileSink.Write(samples, fsPowerDB); err != nil {
			return fmt.Errorf("write samples: %w", err)
		}
		mcol.SamplesProduced.Add(float64(len(samples)))
		written += int64(len(samples))
	}
	if err := fileSink.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if led != nil {
		if err := led.Finish(ctx, runID, written); err != nil {
			return fmt.Errorf("finish ledger run: %w", err)
		}
	}

	gnssgo.Logger.Info("iqgen complete", "samples_written", written, "output", outputPath)
	return nil
}

// buildModulatedSignal constructs a ModulatedSignal for one scenario
// signal entry: its chip source (drawn from the code table named by
// System) feeds a ReferenceSignal, which is wrapped by the power/
// Doppler/warp profiles loaded from the scenario's referenced
// piecewise-polynomial files.
func buildModulatedSignal(sigDesc scenario.Signal) (*gnssgo.ModulatedSignal, error) {
	chips, rate, err := codeChips(sigDesc)
	if err != nil {
		return nil, err
	}

	src, err := gnssgo.NewRepeatingSampleSource(toComplex(chips), rate, 1, true)
	if err != nil {
		return nil, fmt.Errorf("chip source: %w", err)
	}

	// No data-symbol source: the scenario's data_i/data_q profiles are
	// reserved for a future boundary extension that samples them into a
	// DataSymbolSource (Params.DataRate sets the intended symbol rate).
	ref := gnssgo.NewReferenceSignal(src, nil)

	power, err := loadOptionalPP(sigDesc.PowerFile)
	if err != nil {
		return nil, fmt.Errorf("power profile: %w", err)
	}
	doppler, err := loadOptionalPP(sigDesc.DopplerFile)
	if err != nil {
		return nil, fmt.Errorf("doppler profile: %w", err)
	}
	warp, err := loadWarpProfile(sigDesc)
	if err != nil {
		return nil, fmt.Errorf("warp profile: %w", err)
	}

	return gnssgo.NewModulatedSignal(ref, power, doppler, warp, sigDesc.CarrierPhase), nil
}

func loadOptionalPP(path string) (*gnssgo.PiecewisePolynomial, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ppfile.Read(f)
}

// loadWarpProfile derives the signal-time-warp piecewise polynomial from
// the scenario's pseudorange file, inverting range-vs-true-time into
// true-time-vs-signal-time via the natural cubic spline inverter.
func loadWarpProfile(sigDesc scenario.Signal) (*gnssgo.PiecewisePolynomial, error) {
	if sigDesc.PseudorangeFile == "" {
		return nil, nil
	}
	f, err := os.Open(sigDesc.PseudorangeFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pr, err := ppfile.Read(f)
	if err != nil {
		return nil, err
	}
	return gnssgo.ConvertToSignalTimeSpline(pr, gnssgo.SpeedOfLight)
}

func toComplex(chips []float64) []complex128 {
	out := make([]complex128, len(chips))
	for i, c := range chips {
		out[i] = complex(c, 0)
	}
	return out
}

// codeChips dispatches to the code family named by sigDesc.System and
// sigDesc.Name, returning its ±1-valued chip array and chipping rate in
// Hz. Modernized BOC(1,1) signals are upsampled here via package boc.
func codeChips(sigDesc scenario.Signal) ([]float64, float64, error) {
	switch sigDesc.System {
	case "GPS":
		if sigDesc.Name == "L1C" {
			data, _ := prncode.GPS_L1C_DataPilot(sigDesc.Params.PRN)
			chips, err := boc.Upsample(data, 2)
			return chips, prncode.L1CBaseRateHz * 2, err
		}
		chips, err := prncode.GPS_L1CA(sigDesc.Params.PRN)
		return chips, prncode.CARateHz, err
	case "GLONASS":
		return prncode.GLONASS_L1CA(), prncode.GlonassRateHz, nil
	case "Galileo":
		e1b, _, _ := prncode.Galileo_E1BC(sigDesc.Params.PRN)
		chips, err := boc.Upsample(e1b, 2)
		return chips, prncode.E1BaseRateHz * 2, err
	default:
		return nil, 0, fmt.Errorf("unsupported system %q", sigDesc.System)
	}
}
