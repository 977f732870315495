package histbook

import (
	"fmt"
	"image/color"
	"path/filepath"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
)

// SavePlots renders the quick-check invariant-mass spectra and the truth pT
// spectra as PNG files under dir.
func (b *Book) SavePlots(dir string) error {
	for _, ph := range []struct {
		hist  *hbook.H1D
		label string
		file  string
	}{
		{b.K892Mass, "m(piK) (GeV)", "k892invmass.png"},
		{b.K1Mass, "m(piKpi) (GeV)", "k1invmass.png"},
		{b.ReconK892Pt, "pT (GeV)", "recon_k892_pt.png"},
		{b.ReconK1Pt, "pT (GeV)", "recon_k1_pt.png"},
		{b.TrueK1Pt, "pT (GeV)", "true_k1_pt.png"},
	} {
		if ph.hist.Entries() == 0 {
			continue
		}
		if err := savePlot(ph.hist, ph.label, filepath.Join(dir, ph.file)); err != nil {
			return fmt.Errorf("histbook: %w", err)
		}
	}
	return nil
}

func savePlot(hist *hbook.H1D, xLabel, path string) error {
	p := hplot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "count"
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}

	h := hplot.NewH1D(hist)
	h.LineStyle.Color = color.RGBA{B: 255, A: 255}
	h.Infos.Style = hplot.HInfoSummary
	p.Add(h)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
