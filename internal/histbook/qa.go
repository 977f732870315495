package histbook

import (
	"go-hep.org/x/hep/hbook"

	"github.com/gtaillepied/k1reco/internal/evdata"
	"github.com/gtaillepied/k1reco/internal/reco"
)

const (
	nSigmaBins, nSigmaLo, nSigmaHi = 130, -6.5, 6.5
	nScanBins, scanLo, scanHi      = 250, 0.0, 2.5
)

// TrackQA is the per-(stage, role) track monitoring set: pt spectrum, TPC
// and TOF deviations against pt, and the TOF-TPC correlation map.
type TrackQA struct {
	Pt        *hbook.H1D
	TPCVsPt   *hbook.H2D
	TOFVsPt   *hbook.H2D
	TOFTPCMap *hbook.H2D
}

func newTrackQA() *TrackQA {
	return &TrackQA{
		Pt:        hbook.NewH1D(nPtBins, ptLo, ptHi),
		TPCVsPt:   hbook.NewH2D(nPtBins, ptLo, ptHi, nSigmaBins, nSigmaLo, nSigmaHi),
		TOFVsPt:   hbook.NewH2D(nPtBins, ptLo, ptHi, nSigmaBins, nSigmaLo, nSigmaHi),
		TOFTPCMap: hbook.NewH2D(nSigmaBins, nSigmaLo, nSigmaHi, nSigmaBins, nSigmaLo, nSigmaHi),
	}
}

type qaKey struct {
	stage reco.QAStage
	role  reco.QARole
}

// QABook accumulates same-event per-track QA before and after the PID
// selection, plus the (piK, pipi) mass-correlation scan.
type QABook struct {
	tracks   map[qaKey]*TrackQA
	massScan map[reco.QAStage]*hbook.H2D
}

var _ reco.QASink = (*QABook)(nil)

// NewQABook allocates the full QA set.
func NewQABook() *QABook {
	q := &QABook{
		tracks:   make(map[qaKey]*TrackQA, 6),
		massScan: make(map[reco.QAStage]*hbook.H2D, 2),
	}
	for _, stage := range []reco.QAStage{reco.QABefore, reco.QAAfter} {
		for _, role := range []reco.QARole{reco.QAPion, reco.QAKaon, reco.QABachelor} {
			q.tracks[qaKey{stage, role}] = newTrackQA()
		}
		q.massScan[stage] = hbook.NewH2D(nScanBins, scanLo, scanHi, nScanBins, scanLo, scanHi)
	}
	return q
}

// Track returns the monitoring set for one stage and role.
func (q *QABook) Track(stage reco.QAStage, role reco.QARole) *TrackQA {
	return q.tracks[qaKey{stage, role}]
}

// MassScan returns the mass-correlation scan for one stage.
func (q *QABook) MassScan(stage reco.QAStage) *hbook.H2D {
	return q.massScan[stage]
}

// FillTrack records one track under the species hypothesis of its role.
func (q *QABook) FillTrack(stage reco.QAStage, role reco.QARole, t *evdata.Track) {
	tpc, tof := t.TPCNSigmaPi, t.TOFNSigmaPi
	if role == reco.QAKaon {
		tpc, tof = t.TPCNSigmaKa, t.TOFNSigmaKa
	}

	h := q.tracks[qaKey{stage, role}]
	h.Pt.Fill(t.Pt, 1)
	h.TPCVsPt.Fill(t.Pt, tpc, 1)
	if t.HasTOF {
		h.TOFVsPt.Fill(t.Pt, tof, 1)
		h.TOFTPCMap.Fill(tof, tpc, 1)
	}
}

// FillMassScan records one (piK mass, pipi mass) point.
func (q *QABook) FillMassScan(stage reco.QAStage, massPiK, massPiPi float64) {
	q.massScan[stage].Fill(massPiK, massPiPi, 1)
}
