package reco

import (
	"sort"

	"go.uber.org/zap"

	"github.com/gtaillepied/k1reco/internal/config"
	"github.com/gtaillepied/k1reco/internal/evdata"
)

// Mixer pairs kinematically similar collisions for the combinatorial
// background estimate: two collisions mix only when their vertex z and
// multiplicity fall in the same configured bins, a collision never mixes
// with itself, and each collision draws at most Depth partners per pass.
type Mixer struct {
	depth    int
	vtxBins  []float64
	multBins []float64
	log      *zap.Logger
}

// NewMixer builds a mixer from a validated configuration.
func NewMixer(cfg config.Config, log *zap.Logger) *Mixer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mixer{
		depth:    cfg.MixingDepth,
		vtxBins:  cfg.VtxBins,
		multBins: cfg.MultBins,
		log:      log,
	}
}

type mixKey struct {
	vtx, mult int
}

// Mix buckets the collisions by mixing bin and invokes pair for each drawn
// (first, second) collision pair. Draws are without replacement within one
// pass: within a bucket, each collision is paired with up to depth of the
// collisions following it. Collisions falling outside the configured bin
// edges never mix; a bucket of one produces no pairs.
func (m *Mixer) Mix(cols []evdata.Collision, pair func(first, second *evdata.Collision)) {
	m.log.Debug("event mixing started", zap.Int("ncollisions", len(cols)), zap.Int("depth", m.depth))

	buckets := make(map[mixKey][]*evdata.Collision)
	for i := range cols {
		col := &cols[i]
		vtx := binIndex(m.vtxBins, col.VtxZ)
		mult := binIndex(m.multBins, col.Mult)
		if vtx < 0 || mult < 0 {
			continue
		}
		key := mixKey{vtx: vtx, mult: mult}
		buckets[key] = append(buckets[key], col)
	}

	for _, bucket := range buckets {
		for i, first := range bucket {
			for j := i + 1; j < len(bucket) && j <= i+m.depth; j++ {
				pair(first, bucket[j])
			}
		}
	}
}

// binIndex returns the index of the half-open interval [edges[i], edges[i+1])
// containing v, or -1 when v lies outside the binning.
func binIndex(edges []float64, v float64) int {
	if v < edges[0] || v >= edges[len(edges)-1] {
		return -1
	}
	i := sort.Search(len(edges), func(i int) bool { return edges[i] > v })
	return i - 1
}
