package reco

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gtaillepied/k1reco/internal/config"
	"github.com/gtaillepied/k1reco/internal/evdata"
)

func TestTrackFilter(t *testing.T) {
	cfg := config.Default() // pt >= 0.15, |dcaXY| <= 0.5, dcaZ in [0, 2]
	f := NewTrackFilter(cfg)

	for _, tc := range []struct {
		name string
		trk  evdata.Track
		want bool
	}{
		{"nominal", evdata.Track{Pt: 1.0}, true},
		{"pt below minimum", evdata.Track{Pt: 0.1}, false},
		{"pt at minimum", evdata.Track{Pt: 0.15}, true},
		{"dcaXY too large", evdata.Track{Pt: 1.0, DCAxy: 0.6}, false},
		{"dcaXY negative magnitude", evdata.Track{Pt: 1.0, DCAxy: -0.6}, false},
		{"dcaXY at maximum", evdata.Track{Pt: 1.0, DCAxy: 0.5}, true},
		{"dcaZ above band", evdata.Track{Pt: 1.0, DCAz: 2.5}, false},
		{"dcaZ below band", evdata.Track{Pt: 1.0, DCAz: -0.1}, false},
		{"dcaZ at edges", evdata.Track{Pt: 1.0, DCAz: 2.0}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Accepts(&tc.trk))
		})
	}
}

func TestTrackFilterDonutBand(t *testing.T) {
	// A raised dcaZ minimum excludes tracks closest to the vertex. Unusual
	// for a primary-vertex cut, but it is the configured behavior.
	cfg := config.Default()
	cfg.MinDCAz = 0.3
	f := NewTrackFilter(cfg)

	assert.False(t, f.Accepts(&evdata.Track{Pt: 1.0, DCAz: 0.1}))
	assert.True(t, f.Accepts(&evdata.Track{Pt: 1.0, DCAz: 0.5}))
}
