package reco

import "github.com/gtaillepied/k1reco/internal/evdata"

// TruthKind labels truth-tagged spectra for simulated data.
type TruthKind int

const (
	// TruthReconK892 credits a reconstructed pair whose constituents share
	// the expected K(892)0 mother.
	TruthReconK892 TruthKind = iota + 1
	// TruthReconK1 credits a fully truth-matched K1 triplet.
	TruthReconK1
	// TruthGenK1 is the generator-level K1 input spectrum.
	TruthGenK1
)

// Sink receives every categorized candidate record. Implementations are
// append-only; the engine never reads anything back. All methods are called
// from a single goroutine per processing pass.
type Sink interface {
	// FillPair records a K(892)0 pair candidate. Called for every
	// opposite-sign pair passing track and PID selection, before the mass
	// window, so the sink sees the full pair spectrum.
	FillPair(cat PairCategory, mult, pt, mass float64)

	// FillTriplet records a K1 candidate passing the full cascade.
	FillTriplet(cat Category, mult, pt, mass float64)

	// FillTruth records a truth-tagged entry. Truth-matched candidates are
	// additionally reported through FillTriplet; truth tagging never removes
	// them from the untagged spectrum.
	FillTruth(kind TruthKind, mult, pt, mass float64)
}

// QAStage distinguishes per-track QA emitted before and after the PID
// selection.
type QAStage int

const (
	QABefore QAStage = iota
	QAAfter
)

// QARole names the selection role a track is being considered for.
type QARole int

const (
	QAPion QARole = iota
	QAKaon
	QABachelor
)

// QASink receives per-track monitoring records. It is bypassed entirely in
// mixed-event passes.
type QASink interface {
	// FillTrack records a track's pt and PID deviations for the given role.
	// TOF values are only meaningful when the track has a TOF signal.
	FillTrack(stage QAStage, role QARole, t *evdata.Track)

	// FillMassScan records the (piK mass, pipi mass) correlation for a
	// triplet under consideration; QABefore is filled ahead of the pipi
	// window, QAAfter only for truth-matched candidates.
	FillMassScan(stage QAStage, massPiK, massPiPi float64)
}

// NopQA is the QASink used for mixed-event passes.
type NopQA struct{}

func (NopQA) FillTrack(QAStage, QARole, *evdata.Track) {}
func (NopQA) FillMassScan(QAStage, float64, float64)   {}
