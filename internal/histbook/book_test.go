package histbook

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtaillepied/k1reco/internal/reco"
)

func TestBookRoutesPairs(t *testing.T) {
	b := NewBook()

	b.FillPair(reco.K892Matter, 50, 1.2, 0.9)
	b.FillPair(reco.K892AntiMix, 60, 0.8, 0.85)

	assert.EqualValues(t, 1, b.K892Mass.Entries(), "only same-event pairs feed the quick-check spectrum")
	assert.EqualValues(t, 1, b.Pairs[reco.K892Matter].MassVsPt.Entries())
	assert.EqualValues(t, 1, b.Pairs[reco.K892AntiMix].MassVsMult.Entries())
	assert.EqualValues(t, 0, b.Pairs[reco.K892Anti].MassVsPt.Entries())
}

func TestBookRoutesTriplets(t *testing.T) {
	b := NewBook()

	b.FillTriplet(reco.MatterPos, 50, 2.0, 1.27)
	b.FillTriplet(reco.MatterNeg, 50, 2.0, 1.31)
	b.FillTriplet(reco.AntiNegMix, 70, 1.5, 1.25)

	// Quick-check keeps the charge-matched combinations only.
	assert.EqualValues(t, 2, b.K1Mass.Entries())
	assert.EqualValues(t, 1, b.Triplets[reco.MatterPos].MassVsPt.Entries())
	assert.EqualValues(t, 1, b.Triplets[reco.MatterNeg].MassVsPt.Entries())
	assert.EqualValues(t, 1, b.Triplets[reco.AntiNegMix].MassVsMult.Entries())
	assert.EqualValues(t, 0, b.Triplets[reco.AntiPos].MassVsPt.Entries())
}

func TestBookRoutesTruth(t *testing.T) {
	b := NewBook()

	b.FillTruth(reco.TruthReconK892, 50, 1.0, 0.89)
	b.FillTruth(reco.TruthReconK1, 50, 1.8, 1.27)
	b.FillTruth(reco.TruthGenK1, 0, 1.2, 0)

	assert.EqualValues(t, 1, b.ReconK892Pt.Entries())
	assert.EqualValues(t, 1, b.ReconK1Pt.Entries())
	assert.EqualValues(t, 1, b.TrueK1Pt.Entries())
	assert.EqualValues(t, 1, b.ReconK1.MassVsPt.Entries())
}

func TestWriteYODA(t *testing.T) {
	b := NewBook()
	b.FillPair(reco.K892Matter, 50, 1.2, 0.9)
	b.FillTriplet(reco.MatterPos, 50, 2.0, 1.27)

	var buf bytes.Buffer
	require.NoError(t, b.WriteYODA(&buf))
	assert.Contains(t, buf.String(), "BEGIN YODA")
}

func TestSavePlots(t *testing.T) {
	b := NewBook()
	b.FillPair(reco.K892Matter, 50, 1.2, 0.9)
	b.FillTriplet(reco.MatterPos, 50, 2.0, 1.27)
	b.FillTruth(reco.TruthGenK1, 0, 1.2, 0)

	dir := t.TempDir()
	require.NoError(t, b.SavePlots(dir))
}
