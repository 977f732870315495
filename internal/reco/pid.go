package reco

import (
	"math"
	"sort"

	"github.com/gtaillepied/k1reco/internal/config"
)

// FixedGate is a PID selection with fixed nSigma thresholds: the TPC cut
// always applies, the TOF cut applies only when the track produced a TOF
// signal (and, for the bachelor, when TOF PID is enabled at all). Once a TOF
// signal exists the two cuts are conjunctive.
type FixedGate struct {
	MaxTPC float64
	MaxTOF float64
	UseTOF bool
}

// Accepts applies the gate to a track's deviation scores.
func (g FixedGate) Accepts(tpcNSigma, tofNSigma float64, hasTOF bool) bool {
	if math.Abs(tpcNSigma) > g.MaxTPC {
		return false
	}
	if g.UseTOF && hasTOF && math.Abs(tofNSigma) > g.MaxTOF {
		return false
	}
	return true
}

// ptBinnedCut is a momentum-dependent nSigma threshold, built once from the
// configured parallel breakpoint/threshold lists. The active threshold for a
// track is the one attached to the first breakpoint exceeding the track's
// pt; above the last breakpoint the last threshold stays in force. An empty
// table accepts everything.
type ptBinnedCut struct {
	breaks []float64
	nsigma []float64
}

func newPtBinnedCut(tbl config.PIDTable) ptBinnedCut {
	return ptBinnedCut{breaks: tbl.PtBreaks, nsigma: tbl.NSigma}
}

func (c ptBinnedCut) accepts(pt, nSigma float64) bool {
	if len(c.breaks) == 0 {
		return true
	}
	i := sort.Search(len(c.breaks), func(i int) bool { return c.breaks[i] > pt })
	if i == len(c.breaks) {
		i = len(c.breaks) - 1
	}
	return math.Abs(nSigma) <= c.nsigma[i]
}

// BinnedGate is the companion-species PID selection: independent
// momentum-dependent TPC and TOF tables, TOF applied only for tracks with a
// TOF signal.
type BinnedGate struct {
	tpc ptBinnedCut
	tof ptBinnedCut
}

// NewBinnedGate builds the gate from validated configuration tables.
func NewBinnedGate(tpc, tof config.PIDTable) BinnedGate {
	return BinnedGate{tpc: newPtBinnedCut(tpc), tof: newPtBinnedCut(tof)}
}

// Accepts applies both tables to a track's deviation scores at the given pt.
func (g BinnedGate) Accepts(pt, tpcNSigma, tofNSigma float64, hasTOF bool) bool {
	if !g.tpc.accepts(pt, tpcNSigma) {
		return false
	}
	if hasTOF && !g.tof.accepts(pt, tofNSigma) {
		return false
	}
	return true
}
