// Command scatter writes island positions with a minimum spacing to a JSON file.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"tidegen.dev/internal/persistence/runlog"
	"tidegen.dev/internal/scatter"
	"tidegen.dev/internal/schemas"
	"tidegen.dev/internal/tuning"
)

func main() {
	var (
		configPath  = flag.String("config", "./configs/generators.yaml", "generators config path")
		seed        = flag.String("seed", "", "seed string (overrides config)")
		out         = flag.String("out", "", "output path (default: scatter.out from config)")
		count       = flag.Int("count", -1, "number of points (overrides config when >= 0)")
		minDistance = flag.Float64("min_distance", -1, "minimum pairwise distance (overrides config when >= 0)")
		maxAttempts = flag.Int("max_attempts", 0, "rejection budget (overrides config when > 0)")
		runlogDir   = flag.String("runlog", "", "directory for the compressed run trail (overrides config)")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[scatter] ", log.LstdFlags|log.Lmicroseconds)

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
		cfg.Scatter.Out = *out
	}
	if *count >= 0 {
		cfg.Scatter.Count = *count
	}
	if *minDistance >= 0 {
		cfg.Scatter.MinDistance = *minDistance
	}
	if *maxAttempts > 0 {
		cfg.Scatter.MaxAttempts = *maxAttempts
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

	sc, err := cfg.ScatterConfig()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	points, err := scatter.Scatter(cfg.Source(), sc)
	if err != nil {
		logger.Fatalf("scatter: %v", err)
	}
	var doc bytes.Buffer
	if err := scatter.WriteJSON(&doc, points); err != nil {
		logger.Fatalf("encode: %v", err)
	}
	if err := schemas.ValidateJSON(schemas.Positions, doc.Bytes()); err != nil {
		logger.Fatalf("positions schema: %v", err)
	}
	if err := scatter.WriteFile(cfg.Scatter.Out, points); err != nil {
		logger.Fatalf("write %s: %v", cfg.Scatter.Out, err)
	}
	fmt.Printf("Positions are saved to %s\n", cfg.Scatter.Out)

	if err := runlog.Record(cfg.RunLogDir, runlog.Entry{
		Tool:   "scatter",
		Seed:   cfg.Seed,
		Config: cfg.Scatter,
		Result: map[string]any{
			"count":             len(points),
			"min_pair_distance": minPair(points),
			"out":               cfg.Scatter.Out,
		},
	}); err != nil {
		logger.Printf("runlog: %v", err)
	}
}

// minPair keeps +Inf out of the JSON trail.
func minPair(points []scatter.Point) any {
	if len(points) < 2 {
		return nil
	}
	return scatter.MinPairDistance(points)
}
