package reco

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gtaillepied/k1reco/internal/config"
)

func TestFixedGate(t *testing.T) {
	g := FixedGate{MaxTPC: 2, MaxTOF: 2, UseTOF: true}

	assert.True(t, g.Accepts(1.5, 0, false))
	assert.True(t, g.Accepts(-2.0, 0, false), "threshold is inclusive")
	assert.False(t, g.Accepts(2.5, 0, false))

	// TOF is conjunctive once the track has a TOF signal.
	assert.False(t, g.Accepts(1.5, 2.5, true))
	assert.True(t, g.Accepts(1.5, 1.0, true))

	// A missing TOF signal skips the sub-check, it is not an error.
	assert.True(t, g.Accepts(1.5, 99, false))
}

func TestFixedGateTOFToggle(t *testing.T) {
	g := FixedGate{MaxTPC: 2, MaxTOF: 2, UseTOF: false}
	assert.True(t, g.Accepts(1.5, 99, true), "disabled TOF cut must not reject")
}

func TestBinnedGateLookup(t *testing.T) {
	g := NewBinnedGate(
		config.PIDTable{PtBreaks: []float64{0.5, 1.0}, NSigma: []float64{2, 3}},
		config.PIDTable{},
	)

	// pt below the first breakpoint uses the first threshold.
	assert.True(t, g.Accepts(0.3, 1.9, 0, false))
	assert.False(t, g.Accepts(0.3, 2.5, 0, false))

	// pt between breakpoints uses the second threshold.
	assert.True(t, g.Accepts(0.7, 2.5, 0, false))
	assert.False(t, g.Accepts(0.7, 3.5, 0, false))

	// pt equal to a breakpoint belongs to the next interval.
	assert.True(t, g.Accepts(0.5, 2.5, 0, false))

	// pt above every breakpoint keeps the last threshold in force.
	assert.True(t, g.Accepts(2.0, 2.5, 0, false))
	assert.False(t, g.Accepts(2.0, 3.5, 0, false))
}

func TestBinnedGateEmptyTableAccepts(t *testing.T) {
	g := NewBinnedGate(config.PIDTable{}, config.PIDTable{})
	assert.True(t, g.Accepts(1.0, 99, 99, true))
}

func TestBinnedGateTOFIndependent(t *testing.T) {
	g := NewBinnedGate(
		config.PIDTable{PtBreaks: []float64{999}, NSigma: []float64{5}},
		config.PIDTable{PtBreaks: []float64{1.0, 999}, NSigma: []float64{2, 3}},
	)

	// TPC passes everywhere; TOF table decides, only when a signal exists.
	assert.True(t, g.Accepts(0.5, 4, 2.5, false))
	assert.False(t, g.Accepts(0.5, 4, 2.5, true))
	assert.True(t, g.Accepts(2.0, 4, 2.5, true))
}
