// Package histbook accumulates the categorized candidate records produced by
// the reconstruction engine into hbook histograms and renders/serializes them
// for downstream signal extraction.
package histbook

import (
	"go-hep.org/x/hep/hbook"

	"github.com/gtaillepied/k1reco/internal/reco"
)

// Axis definitions shared by all books.
const (
	nMassBinsK892, massLoK892, massHiK892 = 900, 0.6, 1.5
	nMassBinsK1, massLoK1, massHiK1       = 1600, 0.9, 2.5
	nPtBins, ptLo, ptHi                   = 200, 0.0, 20.0
	nMultBins, multLo, multHi             = 300, 0.0, 3000.0
)

// catHists is the per-category record accumulation: mass against pt and mass
// against the multiplicity estimator, which together carry every field of a
// candidate record.
type catHists struct {
	MassVsPt   *hbook.H2D
	MassVsMult *hbook.H2D
}

func newCatHists(nMass int, massLo, massHi float64) *catHists {
	return &catHists{
		MassVsPt:   hbook.NewH2D(nPtBins, ptLo, ptHi, nMass, massLo, massHi),
		MassVsMult: hbook.NewH2D(nMultBins, multLo, multHi, nMass, massLo, massHi),
	}
}

func (h *catHists) fill(mult, pt, mass float64) {
	h.MassVsPt.Fill(pt, mass, 1)
	h.MassVsMult.Fill(mult, mass, 1)
}

func (h *catHists) annotate(name string) {
	h.MassVsPt.Annotation()["name"] = name + "_mass_vs_pt"
	h.MassVsMult.Annotation()["name"] = name + "_mass_vs_mult"
}

// Book is the candidate sink: per-category pair and triplet spectra,
// quick-check mass distributions, and the truth-tagged spectra for simulated
// data. It is append-only and not safe for concurrent fills.
type Book struct {
	K892Mass *hbook.H1D
	K1Mass   *hbook.H1D

	Pairs    map[reco.PairCategory]*catHists
	Triplets map[reco.Category]*catHists

	ReconK892Pt *hbook.H1D
	ReconK1Pt   *hbook.H1D
	TrueK1Pt    *hbook.H1D
	ReconK1     *catHists
}

var _ reco.Sink = (*Book)(nil)

// NewBook allocates every histogram up front so fills never allocate.
func NewBook() *Book {
	b := &Book{
		K892Mass:    hbook.NewH1D(nMassBinsK892, massLoK892, massHiK892),
		K1Mass:      hbook.NewH1D(nMassBinsK1, massLoK1, massHiK1),
		Pairs:       make(map[reco.PairCategory]*catHists, 4),
		Triplets:    make(map[reco.Category]*catHists, 8),
		ReconK892Pt: hbook.NewH1D(nPtBins, ptLo, ptHi),
		ReconK1Pt:   hbook.NewH1D(nPtBins, ptLo, ptHi),
		TrueK1Pt:    hbook.NewH1D(nPtBins, ptLo, ptHi),
		ReconK1:     newCatHists(nMassBinsK1, massLoK1, massHiK1),
	}
	for _, cat := range []reco.PairCategory{reco.K892Matter, reco.K892Anti, reco.K892MatterMix, reco.K892AntiMix} {
		h := newCatHists(nMassBinsK892, massLoK892, massHiK892)
		h.annotate("pair_" + cat.String())
		b.Pairs[cat] = h
	}
	for cat := reco.MatterPos; cat <= reco.AntiNegMix; cat++ {
		h := newCatHists(nMassBinsK1, massLoK1, massHiK1)
		h.annotate("k1_" + cat.String())
		b.Triplets[cat] = h
	}
	b.ReconK1.annotate("recon_k1")
	b.K892Mass.Annotation()["name"] = "k892invmass"
	b.K1Mass.Annotation()["name"] = "k1invmass"
	b.ReconK892Pt.Annotation()["name"] = "recon_k892_pt"
	b.ReconK1Pt.Annotation()["name"] = "recon_k1_pt"
	b.TrueK1Pt.Annotation()["name"] = "true_k1_pt"
	return b
}

// FillPair records a K(892)0 pair candidate. Same-event candidates also feed
// the quick-check mass spectrum.
func (b *Book) FillPair(cat reco.PairCategory, mult, pt, mass float64) {
	if cat == reco.K892Matter || cat == reco.K892Anti {
		b.K892Mass.Fill(mass, 1)
	}
	b.Pairs[cat].fill(mult, pt, mass)
}

// FillTriplet records a K1 candidate. The quick-check spectrum keeps the two
// charge-matched combinations (matter with π+, antimatter with π−).
func (b *Book) FillTriplet(cat reco.Category, mult, pt, mass float64) {
	switch cat {
	case reco.MatterPos, reco.AntiNeg, reco.MatterPosMix, reco.AntiNegMix:
		b.K1Mass.Fill(mass, 1)
	}
	b.Triplets[cat].fill(mult, pt, mass)
}

// FillTruth records a truth-tagged entry for simulated data.
func (b *Book) FillTruth(kind reco.TruthKind, mult, pt, mass float64) {
	switch kind {
	case reco.TruthReconK892:
		b.ReconK892Pt.Fill(pt, 1)
	case reco.TruthReconK1:
		b.ReconK1Pt.Fill(pt, 1)
		b.ReconK1.fill(mult, pt, mass)
	case reco.TruthGenK1:
		b.TrueK1Pt.Fill(pt, 1)
	}
}
