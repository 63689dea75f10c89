// Command seabed writes the ocean floor height grid to a JSON file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tidegen.dev/internal/persistence/runlog"
	"tidegen.dev/internal/seabed"
	"tidegen.dev/internal/tuning"
)

func main() {
	var (
		configPath = flag.String("config", "./configs/generators.yaml", "generators config path")
		seed       = flag.String("seed", "", "seed string (overrides config)")
		out        = flag.String("out", "", "output path (default: seabed.out from config)")
		density    = flag.Int("density", 0, "grid cells per side (overrides config when > 0)")
		runlogDir  = flag.String("runlog", "", "directory for the compressed run trail (overrides config)")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[seabed] ", log.LstdFlags|log.Lmicroseconds)

	cfg, found, err := tuning.LoadOrDefaults(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if !found {
		logger.Printf("config not found (%s); using defaults", *configPath)
	}
	if strings.TrimSpace(*seed) != "" {
		cfg.Seed = *seed
	}
	if strings.TrimSpace(*out) != "" {
		cfg.Seabed.Out = *out
	}
	if *density > 0 {
		cfg.Seabed.Density = *density
	}
	if *runlogDir != "" {
		cfg.RunLogDir = *runlogDir
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}
	if cfg.EnsureSeed(time.Now()) {
		logger.Printf("no seed configured; using %s", cfg.Seed)
	}

	grid, err := seabed.Generate(cfg.SeabedConfig())
	if err != nil {
		logger.Fatalf("seabed: %v", err)
	}
	if err := writeGrid(cfg.Seabed.Out, grid); err != nil {
		logger.Fatalf("write %s: %v", cfg.Seabed.Out, err)
	}
	fmt.Printf("Seabed is saved to %s\n", cfg.Seabed.Out)

	if err := runlog.Record(cfg.RunLogDir, runlog.Entry{
		Tool:   "seabed",
		Seed:   cfg.Seed,
		Config: cfg.Seabed,
		Result: map[string]any{"rows": len(grid.Heights), "out": cfg.Seabed.Out},
	}); err != nil {
		logger.Printf("runlog: %v", err)
	}
}

func writeGrid(path string, g seabed.Grid) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if err := seabed.WriteJSON(f, g); err != nil {
		return err
	}
	return f.Close()
}
