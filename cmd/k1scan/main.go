// Command k1scan reconstructs K1(1270)± → K*(892)0 π± candidates from
// per-collision track datasets, runs the mixed-event background pass, and
// writes the categorized invariant-mass spectra as plots and a YODA dump.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/gtaillepied/k1reco/internal/config"
	"github.com/gtaillepied/k1reco/internal/evdata"
	"github.com/gtaillepied/k1reco/internal/histbook"
	"github.com/gtaillepied/k1reco/internal/reco"
)

var (
	configPath = flag.String("config", "", "selection config file (YAML); built-in defaults when empty")
	outDir     = flag.String("out", ".", "output directory")
	doProfile  = flag.Bool("profile", false, "write a CPU profile to the output directory")

	vtxBins  floatList
	multBins floatList
)

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: `+os.Args[0]+` [options] <event-input-files>...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Var(&vtxBins, "vtxbin", "override a vertex-z mixing bin edge (repeatable)")
	flag.Var(&multBins, "multbin", "override a multiplicity mixing bin edge (repeatable)")
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	if *doProfile {
		defer profile.Start(profile.ProfilePath(*outDir)).Stop()
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if vtxBins.set {
		cfg.VtxBins = vtxBins.vals
	}
	if multBins.set {
		cfg.MultBins = multBins.vals
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	book := histbook.NewBook()
	qa := histbook.NewQABook()

	engine, err := reco.New(cfg, book, qa, logger)
	if err != nil {
		return err
	}
	mixer := reco.NewMixer(cfg, logger)

	for _, path := range flag.Args() {
		ds, err := evdata.ReadFile(path)
		if err != nil {
			return err
		}
		logger.Info("processing dataset",
			zap.String("file", path),
			zap.Int("collisions", len(ds.Collisions)),
			zap.Int("particles", len(ds.Particles)))

		for i := range ds.Collisions {
			engine.ProcessCollision(&ds.Collisions[i])
		}
		mixer.Mix(ds.Collisions, func(first, second *evdata.Collision) {
			engine.Process(first, first.Tracks, second.Tracks, reco.Mixed)
		})
		if len(ds.Particles) > 0 {
			engine.GenSpectrum(ds.Particles)
		}
	}

	if err := book.SavePlots(*outDir); err != nil {
		return err
	}

	out, err := os.Create(filepath.Join(*outDir, "k1scan.yoda"))
	if err != nil {
		return err
	}
	defer out.Close()
	if err := book.WriteYODA(out); err != nil {
		return err
	}
	logger.Info("wrote output", zap.String("dir", *outDir))
	return nil
}
