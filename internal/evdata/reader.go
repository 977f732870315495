package evdata

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dataset is the on-disk input layout: the recorded collisions plus, for
// simulated data, the generator-level particle list.
type Dataset struct {
	Collisions []Collision `json:"collisions"`
	Particles  []Particle  `json:"particles,omitempty"`
}

// ReadFile loads a dataset from a JSON file and validates every track's
// momentum components. Malformed records fail the whole file.
func ReadFile(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("evdata: %w", err)
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("evdata: decoding %s: %w", path, err)
	}

	for i := range ds.Collisions {
		if err := CheckTracks(ds.Collisions[i].Tracks); err != nil {
			return nil, fmt.Errorf("collision %d: %w", i, err)
		}
	}
	return &ds, nil
}
