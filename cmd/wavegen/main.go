// Command wavegen prints a Gerstner wave table for the ocean renderer.
//
//	go run ./cmd/wavegen | pbcopy
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"tidegen.dev/internal/gerstner"
	"tidegen.dev/internal/persistence/runlog"
	"tidegen.dev/internal/tuning"
	"tidegen.dev/internal/waves"
	"tidegen.dev/internal/waves/emit"
)

func main() {
	var (
		configPath = flag.String("config", "./configs/generators.yaml", "generators config path")
		seed       = flag.String("seed", "", "seed string (overrides config; empty keeps config)")
		mode       = flag.String("mode", "", "generator mode: biased|decay (overrides config)")
		format     = flag.String("format", "", "output format: snippet|glsl (overrides config)")
		sweep      = flag.String("sweep", "", "bias center sweep: ascending|descending (overrides config)")
		count      = flag.Int("count", 0, "number of waves (overrides config when > 0)")
		summary    = flag.Bool("summary", false, "print parameter statistics to stderr")
		probe      = flag.String("probe", "", "evaluate the surface at x,z,t and print height/normal to stderr")
		runlogDir  = flag.String("runlog", "", "directory for the compressed run trail (overrides config)")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[wavegen] ", log.LstdFlags|log.Lmicroseconds)

	var probeAt []float64
	if strings.TrimSpace(*probe) != "" {
		p, err := parseProbe(*probe)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bad -probe:", err)
			os.Exit(2)
		}
		probeAt = p
	}

	cfg, found, err := tuning.LoadOrDefaults(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if !found {
		logger.Printf("config not found (%s); using defaults", *configPath)
	}
	applyOverrides(&cfg, *seed, *mode, *format, *sweep, *count, *runlogDir)
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}
	if cfg.EnsureSeed(time.Now()) {
		logger.Printf("no seed configured; using %s", cfg.Seed)
	}

	set, err := generate(cfg)
	if err != nil {
		logger.Fatalf("generate: %v", err)
	}
	f, _ := emit.ParseFormat(cfg.Waves.Format)
	if err := emit.Write(os.Stdout, set, f); err != nil {
		logger.Fatalf("write: %v", err)
	}

	sum := waves.Summarize(set)
	if *summary {
		fmt.Fprintln(os.Stderr, renderSummary(sum, cfg.Seed, cfg.Waves.Mode))
	}
	if probeAt != nil {
		x, z, t := probeAt[0], probeAt[1], probeAt[2]
		h := gerstner.HeightAt(set, x, z, t)
		n := gerstner.Normal(set, r3.Vec{X: x, Z: z}, t)
		logger.Printf("probe x=%g z=%g t=%g height=%.6f normal=(%.4f, %.4f, %.4f)", x, z, t, h, n.X, n.Y, n.Z)
	}

	if err := runlog.Record(cfg.RunLogDir, runlog.Entry{
		Tool:   "wavegen",
		Seed:   cfg.Seed,
		Config: cfg.Waves,
		Result: map[string]any{"mode": cfg.Waves.Mode, "summary": sum},
	}); err != nil {
		logger.Printf("runlog: %v", err)
	}
}

func generate(cfg tuning.Tuning) (waves.Set, error) {
	src := cfg.Source()
	if cfg.Waves.Mode == tuning.ModeDecay {
		dc, err := cfg.DecayConfig()
		if err != nil {
			return waves.Set{}, err
		}
		return waves.GenerateDecay(src, dc)
	}
	wc, err := cfg.WaveConfig()
	if err != nil {
		return waves.Set{}, err
	}
	return waves.Generate(src, wc)
}

func applyOverrides(cfg *tuning.Tuning, seed, mode, format, sweep string, count int, runlogDir string) {
	if strings.TrimSpace(seed) != "" {
		cfg.Seed = seed
	}
	if mode != "" {
		cfg.Waves.Mode = mode
	}
	if format != "" {
		cfg.Waves.Format = format
	}
	if sweep != "" {
		cfg.Waves.Sweep = sweep
	}
	if count > 0 {
		if cfg.Waves.Mode == tuning.ModeDecay || strings.EqualFold(mode, tuning.ModeDecay) {
			cfg.Decay.Count = count
		} else {
			cfg.Waves.Count = count
		}
	}
	if runlogDir != "" {
		cfg.RunLogDir = runlogDir
	}
}

func parseProbe(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("want x,z,t, got %q", s)
	}
	out := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
