package reco

import "github.com/gtaillepied/k1reco/internal/evdata"

// isTruePair reports whether the two pair legs are generator-level pion and
// kaon sharing a K(892)0 mother. A track without resolvable truth is untrue,
// never an error.
func isTruePair(trk1, trk2 *evdata.Track) bool {
	if !trk1.HasTruth || !trk2.HasTruth {
		return false
	}
	if absInt(trk1.PDGCode) != pdgPion || absInt(trk2.PDGCode) != pdgKaon {
		return false
	}
	if trk1.MotherID != trk2.MotherID {
		return false
	}
	return absInt(trk1.MotherPDG) == pdgK892
}

// isTrueBachelor reports whether the bachelor is a generator-level pion
// whose mother is a K1(1270).
func isTrueBachelor(bach *evdata.Track) bool {
	if !bach.HasTruth {
		return false
	}
	return absInt(bach.PDGCode) == pdgPion && absInt(bach.MotherPDG) == pdgK1
}

// IsTrueDecay reports whether a full triplet descends from the expected
// K1(1270) → K(892)0 π decay chain. All conditions are conjunctive.
func IsTrueDecay(trk1, trk2, bach *evdata.Track) bool {
	return isTruePair(trk1, trk2) && isTrueBachelor(bach)
}

// GenSpectrum fills the generator-level K1 input spectrum: particles with
// the K1 code inside the rapidity window that decay to both a K(892)0 and a
// pion. Multiplicity and mass are not defined for this spectrum and are
// recorded as zero.
func (e *Engine) GenSpectrum(parts []evdata.Particle) {
	for i := range parts {
		p := &parts[i]
		if absInt(p.PDGCode) != pdgK1 {
			continue
		}
		if p.Y < e.cfg.MinRapidity || p.Y > e.cfg.MaxRapidity {
			continue
		}
		hasK892, hasPion := false, false
		for _, dau := range p.DaughterPDG {
			switch absInt(dau) {
			case pdgK892:
				hasK892 = true
			case pdgPion:
				hasPion = true
			}
		}
		if hasK892 && hasPion {
			e.sink.FillTruth(TruthGenK1, 0, p.Pt, 0)
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
