package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsMismatchedPIDTable(t *testing.T) {
	cfg := Default()
	cfg.KaonTPC = PIDTable{PtBreaks: []float64{0.5, 1.0}, NSigma: []float64{2}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaon_tpc")
}

func TestValidateRejectsUnsortedBreakpoints(t *testing.T) {
	cfg := Default()
	cfg.KaonTOF = PIDTable{PtBreaks: []float64{1.0, 0.5}, NSigma: []float64{2, 3}}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsInvertedWindows(t *testing.T) {
	cfg := Default()
	cfg.MinRapidity, cfg.MaxRapidity = 0.5, -0.5
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MinDCAz, cfg.MaxDCAz = 3, 2
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.PiPiMassMin, cfg.PiPiMassMax = 1.0, 0.5
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadMassWindowAndDepth(t *testing.T) {
	cfg := Default()
	cfg.K892MassWindow = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MixingDepth = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadBinEdges(t *testing.T) {
	cfg := Default()
	cfg.VtxBins = []float64{0}
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MultBins = []float64{0, 100, 100}
	assert.Error(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cuts.yaml")
	raw := `
min_pt: 0.2
k892_mass_window: 0.05
kaon_tpc:
  pt_breaks: [0.5, 999]
  nsigma: [2, 3]
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, cfg.MinPt, 1e-12)
	assert.InDelta(t, 0.05, cfg.K892MassWindow, 1e-12)
	assert.Equal(t, []float64{0.5, 999}, cfg.KaonTPC.PtBreaks)
	assert.Equal(t, []float64{2, 3}, cfg.KaonTPC.NSigma)

	// Untouched options keep their defaults.
	assert.InDelta(t, 0.5, cfg.MaxDCAxy, 1e-12)
	assert.Equal(t, 5, cfg.MixingDepth)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cuts.yaml")
	raw := `
kaon_tpc:
  pt_breaks: [0.5, 999]
  nsigma: [2]
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
