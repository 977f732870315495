package evdata

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTracks(t *testing.T) {
	good := []Track{
		{ID: 1, Px: 0.3, Py: -0.2, Pz: 0.5, Pt: 0.36},
		{ID: 2, Px: -1.1, Py: 0.0, Pz: 2.4, Pt: 1.1},
	}
	assert.NoError(t, CheckTracks(good))
	assert.NoError(t, CheckTracks(nil))

	nan := append([]Track(nil), good...)
	nan[1].Py = math.NaN()
	err := CheckTracks(nan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "track 2")

	inf := append([]Track(nil), good...)
	inf[0].Pz = math.Inf(-1)
	assert.Error(t, CheckTracks(inf))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	raw := `{
		"collisions": [
			{"vtxZ": 1.5, "mult": 120,
			 "tracks": [
				{"id": 7, "px": 0.3, "py": 0.1, "pz": -0.2, "pt": 0.316, "sign": 1,
				 "tpcNSigmaPi": 0.4, "hasTOF": true, "tofNSigmaPi": -0.2}
			]}
		],
		"particles": [
			{"pdgCode": 10323, "pt": 1.2, "y": 0.1, "daughterPDG": [313, 211]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	ds, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, ds.Collisions, 1)
	require.Len(t, ds.Collisions[0].Tracks, 1)

	trk := ds.Collisions[0].Tracks[0]
	assert.Equal(t, TrackID(7), trk.ID)
	assert.Equal(t, 1, trk.Sign)
	assert.True(t, trk.HasTOF)
	assert.InDelta(t, -0.2, trk.TOFNSigmaPi, 1e-12)

	require.Len(t, ds.Particles, 1)
	assert.Equal(t, []int{313, 211}, ds.Particles[0].DaughterPDG)
}

func TestReadFileRejectsNonFiniteMomentum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	raw := `{"collisions": [{"vtxZ": 0, "mult": 1,
		"tracks": [{"id": 1, "px": 1e999, "py": 0, "pz": 0, "pt": 1, "sign": 1}]}]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := ReadFile(path)
	assert.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
