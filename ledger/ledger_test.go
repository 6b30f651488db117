package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_NamesExpectedColumns(t *testing.T) {
	for _, col := range []string{"id", "scenario_name", "output_rate", "started_at", "finished_at", "samples_written"} {
		assert.True(t, strings.Contains(Schema, col), "schema missing column %q", col)
	}
}

