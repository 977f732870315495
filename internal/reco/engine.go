// Package reco implements the two-stage combinatorial reconstruction of
// K1(1270)± → K*(892)0 π± candidates from per-collision track lists: an
// opposite-sign π±K∓ pair search with a mass window around the K(892)0,
// extended by a bachelor pion with rapidity and ππ sub-mass selections.
// The same engine runs over single collisions and over mixed collision
// pairs for the combinatorial-background estimate.
package reco

import (
	"math"

	"go.uber.org/zap"

	"github.com/gtaillepied/k1reco/internal/config"
	"github.com/gtaillepied/k1reco/internal/evdata"
	"github.com/gtaillepied/k1reco/internal/fourvec"
)

// PDG masses (GeV) and codes for the assumed decay chain.
const (
	massPion = 0.13957039
	massKaon = 0.493677
	massK892 = 0.89555

	pdgPion = 211
	pdgKaon = 321
	pdgK892 = 313
	pdgK1   = 10323
)

// Engine reconstructs candidates for one collision (or one mixed collision
// pair) per call. It holds only configuration-derived state, so calls on
// distinct events are independent and an external scheduler may partition
// events freely.
type Engine struct {
	cfg    config.Config
	filter TrackFilter
	pion   FixedGate
	kaon   BinnedGate
	bach   FixedGate
	sink   Sink
	qa     QASink
	log    *zap.Logger
}

// New builds an engine from a validated configuration. The sink receives
// every categorized candidate; the QA sink receives per-track monitoring for
// same-event passes only.
func New(cfg config.Config, sink Sink, qa QASink, log *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		cfg:    cfg,
		filter: NewTrackFilter(cfg),
		pion:   FixedGate{MaxTPC: cfg.MaxTPCNSigmaPion, MaxTOF: cfg.MaxTOFNSigmaPion, UseTOF: true},
		kaon:   NewBinnedGate(cfg.KaonTPC, cfg.KaonTOF),
		bach:   FixedGate{MaxTPC: cfg.MaxTPCNSigmaBachelor, MaxTOF: cfg.MaxTOFNSigmaBachelor, UseTOF: cfg.DoBachelorTOF},
		sink:   sink,
		qa:     qa,
		log:    log,
	}, nil
}

// ProcessCollision runs the same-event pass over one collision.
func (e *Engine) ProcessCollision(col *evdata.Collision) {
	e.Process(col, col.Tracks, col.Tracks, SameEvent)
}

// Process enumerates pair candidates over the full ordered cross product of
// pairTracks1 × pairTracks2 and extends each accepted pair with a bachelor
// drawn from pairTracks1. For a same-event pass both collections are the
// collision's own track list, so both (i,j) and (j,i) role assignments are
// visited; identical track identities are skipped. col supplies the
// multiplicity estimator attached to every output record (the first
// collision of the pair in mixed mode).
func (e *Engine) Process(col *evdata.Collision, pairTracks1, pairTracks2 []evdata.Track, mode Mode) {
	qa := e.qa
	if mode == Mixed {
		qa = NopQA{}
	}
	e.log.Debug("processing collision",
		zap.Stringer("mode", mode),
		zap.Int("ntracks1", len(pairTracks1)),
		zap.Int("ntracks2", len(pairTracks2)))

	for i := range pairTracks1 {
		trk1 := &pairTracks1[i] // pion hypothesis
		for j := range pairTracks2 {
			trk2 := &pairTracks2[j] // kaon hypothesis
			if trk1.ID.Equal(trk2.ID) {
				continue
			}
			if trk1.Sign*trk2.Sign > 0 {
				continue
			}
			if !e.filter.Accepts(trk1) || !e.filter.Accepts(trk2) {
				continue
			}

			trk1OK := e.pion.Accepts(trk1.TPCNSigmaPi, trk1.TOFNSigmaPi, trk1.HasTOF)
			trk2OK := e.kaon.Accepts(trk2.Pt, trk2.TPCNSigmaKa, trk2.TOFNSigmaKa, trk2.HasTOF)

			qa.FillTrack(QABefore, QAPion, trk1)
			qa.FillTrack(QABefore, QAKaon, trk2)
			if !trk1OK || !trk2OK {
				continue
			}
			qa.FillTrack(QAAfter, QAPion, trk1)
			qa.FillTrack(QAAfter, QAKaon, trk2)

			lPion := fourvec.XYZM(trk1.Px, trk1.Py, trk1.Pz, massPion)
			lKaon := fourvec.XYZM(trk2.Px, trk2.Py, trk2.Pz, massKaon)
			lK892 := lPion.Add(lKaon)
			anti := trk2.Sign > 0

			// The pair spectrum is recorded before the mass window so the
			// sink sees the full combinatorial shape.
			e.sink.FillPair(pairCategory(anti, mode), col.Mult, lK892.Pt(), lK892.M())

			if math.Abs(lK892.M()-massK892) > e.cfg.K892MassWindow {
				continue
			}

			e.extend(col, trk1, trk2, lPion, lK892, anti, pairTracks1, mode, qa)
		}
	}
}

// extend runs the bachelor loop for one accepted pair.
func (e *Engine) extend(col *evdata.Collision, trk1, trk2 *evdata.Track, lPion, lK892 fourvec.Vec, anti bool, bachTracks []evdata.Track, mode Mode, qa QASink) {
	for k := range bachTracks {
		bach := &bachTracks[k]
		if bach.ID.Equal(trk1.ID) || bach.ID.Equal(trk2.ID) {
			continue
		}
		if !e.filter.Accepts(bach) {
			continue
		}

		bachOK := e.bach.Accepts(bach.TPCNSigmaPi, bach.TOFNSigmaPi, bach.HasTOF)
		qa.FillTrack(QABefore, QABachelor, bach)
		if !bachOK {
			continue
		}
		qa.FillTrack(QAAfter, QABachelor, bach)

		lBach := fourvec.XYZM(bach.Px, bach.Py, bach.Pz, massPion)
		lK1 := lK892.Add(lBach)

		if y := lK1.Rapidity(); y < e.cfg.MinRapidity || y > e.cfg.MaxRapidity {
			continue
		}

		lPiPi := lPion.Add(lBach)
		qa.FillMassScan(QABefore, lK892.M(), lPiPi.M())
		if m := lPiPi.M(); m < e.cfg.PiPiMassMin || m > e.cfg.PiPiMassMax {
			continue
		}

		cat := tripletCategory(anti, bach.Sign, mode)
		e.sink.FillTriplet(cat, col.Mult, lK1.Pt(), lK1.M())

		// Truth tagging for simulated data. A failed match leaves the
		// candidate in the untagged spectrum as combinatorial background.
		if isTruePair(trk1, trk2) {
			e.sink.FillTruth(TruthReconK892, col.Mult, lK892.Pt(), lK892.M())
			if isTrueBachelor(bach) {
				e.sink.FillTruth(TruthReconK1, col.Mult, lK1.Pt(), lK1.M())
				qa.FillMassScan(QAAfter, lK892.M(), lPiPi.M())
			}
		}
	}
}
