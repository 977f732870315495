// Package evdata holds the event and track data model consumed by the
// reconstruction engine. Tracks and collisions are produced upstream (track
// reconstruction, PID calibration) and are read-only inputs here.
package evdata

import (
	"fmt"
	"math"
)

// TrackID is the stable identity of a reconstructed track within a dataset.
// Identity comparison is the only guard preventing a track from being
// combined with itself across the nested pair and bachelor loops.
type TrackID int64

// Equal reports whether two track identities refer to the same track.
func (id TrackID) Equal(other TrackID) bool { return id == other }

// Track is a reconstructed charged-particle track with the kinematic,
// impact-parameter and PID attributes used by the candidate selection.
// PID deviations are detector-reported numbers of sigma against the named
// species hypothesis; TOF deviations are only meaningful when HasTOF is set.
type Track struct {
	ID   TrackID `json:"id"`
	Px   float64 `json:"px"`
	Py   float64 `json:"py"`
	Pz   float64 `json:"pz"`
	Pt   float64 `json:"pt"`
	Sign int     `json:"sign"`

	DCAxy float64 `json:"dcaXY"`
	DCAz  float64 `json:"dcaZ"`

	TPCNSigmaPi float64 `json:"tpcNSigmaPi"`
	TPCNSigmaKa float64 `json:"tpcNSigmaKa"`
	TOFNSigmaPi float64 `json:"tofNSigmaPi"`
	TOFNSigmaKa float64 `json:"tofNSigmaKa"`
	HasTOF      bool    `json:"hasTOF"`

	// Generator-level truth, present only for simulated data.
	HasTruth  bool    `json:"hasTruth,omitempty"`
	PDGCode   int     `json:"pdgCode,omitempty"`
	MotherID  int64   `json:"motherId,omitempty"`
	MotherPDG int     `json:"motherPDG,omitempty"`
}

// Collision is one recorded event: a primary-vertex z position, a
// multiplicity estimator and the tracks attached to it.
type Collision struct {
	VtxZ   float64 `json:"vtxZ"`
	Mult   float64 `json:"mult"`
	Tracks []Track `json:"tracks"`
}

// Particle is a generator-level particle, used for the true-yield spectrum
// in simulated datasets.
type Particle struct {
	PDGCode     int     `json:"pdgCode"`
	Pt          float64 `json:"pt"`
	Y           float64 `json:"y"`
	DaughterPDG []int   `json:"daughterPDG"`
}

// CheckTracks verifies that every track carries finite momentum components.
// A non-finite component is a malformed input record and aborts the batch.
func CheckTracks(tracks []Track) error {
	for i := range tracks {
		t := &tracks[i]
		for _, v := range [4]float64{t.Px, t.Py, t.Pz, t.Pt} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("evdata: track %d has non-finite momentum (px=%v py=%v pz=%v pt=%v)",
					t.ID, t.Px, t.Py, t.Pz, t.Pt)
			}
		}
	}
	return nil
}
