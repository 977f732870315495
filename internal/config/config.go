// Package config defines the analysis configuration and its fail-fast
// validation. Values are loaded from a YAML file through viper; every option
// has a default matching the standard K1 selection.
package config

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"
)

// PIDTable is a momentum-dependent PID cut: parallel lists of transverse
// momentum breakpoints and nSigma thresholds. An empty table disables the
// cut. The two lists must have the same length and breakpoints must be
// strictly ascending.
type PIDTable struct {
	PtBreaks []float64 `mapstructure:"pt_breaks"`
	NSigma   []float64 `mapstructure:"nsigma"`
}

// Config collects every recognized selection and mixing option.
type Config struct {
	// Track pre-selection.
	MinPt    float64 `mapstructure:"min_pt"`
	MaxDCAxy float64 `mapstructure:"max_dca_xy"`
	MinDCAz  float64 `mapstructure:"min_dca_z"`
	MaxDCAz  float64 `mapstructure:"max_dca_z"`

	// Pion (pair primary) PID, fixed thresholds.
	MaxTPCNSigmaPion float64 `mapstructure:"max_tpc_nsigma_pion"`
	MaxTOFNSigmaPion float64 `mapstructure:"max_tof_nsigma_pion"`

	// Bachelor pion PID, fixed thresholds. TOF is behind a toggle.
	MaxTPCNSigmaBachelor float64 `mapstructure:"max_tpc_nsigma_bachelor"`
	MaxTOFNSigmaBachelor float64 `mapstructure:"max_tof_nsigma_bachelor"`
	DoBachelorTOF        bool    `mapstructure:"do_bachelor_tof"`

	// Kaon (pair companion) PID, pT-dependent.
	KaonTPC PIDTable `mapstructure:"kaon_tpc"`
	KaonTOF PIDTable `mapstructure:"kaon_tof"`

	// K(892)0 and K1 candidate selection.
	K892MassWindow float64 `mapstructure:"k892_mass_window"`
	PiPiMassMin    float64 `mapstructure:"pipi_mass_min"`
	PiPiMassMax    float64 `mapstructure:"pipi_mass_max"`
	MinRapidity    float64 `mapstructure:"min_rapidity"`
	MaxRapidity    float64 `mapstructure:"max_rapidity"`

	// Event mixing.
	MixingDepth int       `mapstructure:"mixing_depth"`
	VtxBins     []float64 `mapstructure:"vtx_bins"`
	MultBins    []float64 `mapstructure:"mult_bins"`
}

// Default returns the standard selection.
func Default() Config {
	return Config{
		MinPt:    0.15,
		MaxDCAxy: 0.5,
		MinDCAz:  0,
		MaxDCAz:  2.0,

		MaxTPCNSigmaPion: 2.0,
		MaxTOFNSigmaPion: 2.0,

		MaxTPCNSigmaBachelor: 2.0,
		MaxTOFNSigmaBachelor: 2.0,
		DoBachelorTOF:        true,

		KaonTPC: PIDTable{PtBreaks: []float64{999}, NSigma: []float64{2}},
		KaonTOF: PIDTable{PtBreaks: []float64{999}, NSigma: []float64{2}},

		K892MassWindow: 0.1,
		PiPiMassMin:    0,
		PiPiMassMax:    999,
		MinRapidity:    -0.5,
		MaxRapidity:    0.5,

		MixingDepth: 5,
		VtxBins:     []float64{-10, -8, -6, -4, -2, 0, 2, 4, 6, 8, 10},
		MultBins:    []float64{0, 20, 40, 60, 80, 100, 200, 99999},
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate fails fast on inconsistent options. Parallel breakpoint and
// threshold lists of differing length are never silently truncated.
func (c Config) Validate() error {
	if err := c.KaonTPC.validate("kaon_tpc"); err != nil {
		return err
	}
	if err := c.KaonTOF.validate("kaon_tof"); err != nil {
		return err
	}
	if c.MinDCAz > c.MaxDCAz {
		return fmt.Errorf("config: min_dca_z %v > max_dca_z %v", c.MinDCAz, c.MaxDCAz)
	}
	if c.K892MassWindow <= 0 {
		return fmt.Errorf("config: k892_mass_window must be positive, got %v", c.K892MassWindow)
	}
	if c.PiPiMassMin > c.PiPiMassMax {
		return fmt.Errorf("config: pipi_mass_min %v > pipi_mass_max %v", c.PiPiMassMin, c.PiPiMassMax)
	}
	if c.MinRapidity > c.MaxRapidity {
		return fmt.Errorf("config: min_rapidity %v > max_rapidity %v", c.MinRapidity, c.MaxRapidity)
	}
	if c.MixingDepth < 0 {
		return fmt.Errorf("config: mixing_depth must be non-negative, got %d", c.MixingDepth)
	}
	if err := checkEdges("vtx_bins", c.VtxBins); err != nil {
		return err
	}
	if err := checkEdges("mult_bins", c.MultBins); err != nil {
		return err
	}
	return nil
}

func (t PIDTable) validate(name string) error {
	if len(t.PtBreaks) != len(t.NSigma) {
		return fmt.Errorf("config: %s: %d pt breakpoints vs %d nsigma thresholds",
			name, len(t.PtBreaks), len(t.NSigma))
	}
	if !sort.Float64sAreSorted(t.PtBreaks) {
		return fmt.Errorf("config: %s: pt breakpoints must be ascending", name)
	}
	return nil
}

func checkEdges(name string, edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("config: %s: need at least two bin edges, got %d", name, len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return fmt.Errorf("config: %s: bin edges must be strictly ascending", name)
		}
	}
	return nil
}
