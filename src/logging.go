package gnssgo

import "github.com/charmbracelet/log"

// Logger is the package-wide structured logger. Stages log construction
// warnings and Composite's buffer/time-axis faults through it rather than
// the old file-based Trace()/Tracet() tracer; replace it with a
// run-scoped sub-logger (log.With("run", runID)) before driving a scenario.
var Logger = log.Default()
