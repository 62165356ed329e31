package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The jobs run against whatever database state exists at startup. With
// no connection they must log and return, never panic.

func TestPruneSearchHistory_NoDatabase(t *testing.T) {
	assert.NotPanics(t, func() { PruneSearchHistory() })
}

func TestSeedReferenceMedications_NoDatabase(t *testing.T) {
	assert.NotPanics(t, func() { SeedReferenceMedications() })
}
