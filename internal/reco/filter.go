package reco

import (
	"math"

	"github.com/gtaillepied/k1reco/internal/config"
	"github.com/gtaillepied/k1reco/internal/evdata"
)

// TrackFilter is the stateless pre-selection applied to every track before
// it can enter a candidate: minimum pt, maximum radial DCA, and a
// longitudinal DCA band.
//
// MinDCAz defaults to 0 but is tunable, which makes the DCAz acceptance a
// donut around the vertex when raised. That is the configured behavior and
// is applied exactly as given.
type TrackFilter struct {
	MinPt    float64
	MaxDCAxy float64
	MinDCAz  float64
	MaxDCAz  float64
}

// NewTrackFilter builds the filter from the analysis configuration.
func NewTrackFilter(cfg config.Config) TrackFilter {
	return TrackFilter{
		MinPt:    cfg.MinPt,
		MaxDCAxy: cfg.MaxDCAxy,
		MinDCAz:  cfg.MinDCAz,
		MaxDCAz:  cfg.MaxDCAz,
	}
}

// Accepts reports whether the track passes the pre-selection.
func (f TrackFilter) Accepts(t *evdata.Track) bool {
	if t.Pt < f.MinPt {
		return false
	}
	if math.Abs(t.DCAxy) > f.MaxDCAxy {
		return false
	}
	if t.DCAz < f.MinDCAz || t.DCAz > f.MaxDCAz {
		return false
	}
	return true
}
