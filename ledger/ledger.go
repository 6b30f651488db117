/*------------------------------------------------------------------------------
* ledger.go : synthesis run recorder
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
 */

// Package ledger records one row per synthesis run against a caller-
// injected database handle, the way the teacher's rtkrcv persists
// solution records via jmoiron/sqlx (there against clickhouse; this
// package imports no concrete driver, leaving backend choice to the
// caller). Run identity uses google/uuid, as rtkrcv does for document
// IDs.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Run is one row of the synthesis run ledger.
type Run struct {
	ID             string     `db:"id"`
	ScenarioName   string     `db:"scenario_name"`
	OutputRate     float64    `db:"output_rate"`
	StartedAt      time.Time  `db:"started_at"`
	FinishedAt     *time.Time `db:"finished_at"`
	SamplesWritten int64      `db:"samples_written"`
}

// Schema is the reference table definition. Ledger does not execute
// DDL itself; callers apply it (or an equivalent migration) before use.
const Schema = `
CREATE TABLE IF NOT EXISTS gnssgo_synth_runs (
	id              TEXT PRIMARY KEY,
	scenario_name   TEXT NOT NULL,
	output_rate     DOUBLE PRECISION NOT NULL,
	started_at      TIMESTAMP NOT NULL,
	finished_at     TIMESTAMP,
	samples_written BIGINT NOT NULL
)`

// Ledger records synthesis runs in a database reachable through db.
type Ledger struct {
	db *sqlx.DB
}

// New wraps an already-open database handle. No concrete driver is
// imported here; db may be backed by any driver sqlx/database-sql
// supports.
func New(db *sqlx.DB) *Ledger {
	return &Ledger{db: db}
}

// Start inserts a new run row with a freshly generated ID and returns it.
func (l *Ledger) Start(ctx context.Context, scenarioName string, outputRate float64) (*Run, error) {
	run := &Run{
		ID:           uuid.NewString(),
		ScenarioName: scenarioName,
		OutputRate:   outputRate,
		StartedAt:    time.Now(),
	}
	_, err := l.db.NamedExecContext(ctx, `
		INSERT INTO gnssgo_synth_runs (id, scenario_name, output_rate, started_at, samples_written)
		VALUES (:id, :scenario_name, :output_rate, :started_at, 0)`, run)
	if err != nil {
		return nil, fmt.Errorf("ledger: start: %w", err)
	}
	return run, nil
}

// Finish marks a run complete with its final sample count.
func (l *Ledger) Finish(ctx context.Context, runID string, samplesWritten int64) error {
	_, err := l.db.ExecContext(ctx, `
		UPDATE gnssgo_synth_runs SET finished_at = $1, samples_written = $2 WHERE id = $3`,
		time.Now(), samplesWritten, runID)
	if err != nil {
		return fmt.Errorf("ledger: finish: %w", err)
	}
	return nil
}

// Get fetches one run by ID.
func (l *Ledger) Get(ctx context.Context, runID string) (*Run, error) {
	var run Run
	err := l.db.GetContext(ctx, &run, `SELECT * FROM gnssgo_synth_runs WHERE id = $1`, runID)
	if err != nil {
		return nil, fmt.Errorf("ledger: get %s: %w", runID, err)
	}
	return &run, nil
}
