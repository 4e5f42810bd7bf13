// Package main provides an algorithm comparison tool for the minimum
// enclosing circle solvers. It runs every algorithm over the same random
// point sets and reports timing, work counters and disagreements.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/banshee-data/mincircle/internal/geom"
	"github.com/banshee-data/mincircle/internal/mec"
	"github.com/banshee-data/mincircle/internal/pointset"
	"github.com/banshee-data/mincircle/internal/security"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Config holds configuration for the algorithm comparison.
type Config struct {
	Trials     int
	Points     int
	Kind       string
	Seed       uint64
	OracleMax  int
	OutputDir  string
	OutputJSON string
	Verbose    bool
}

// ComparisonResult holds the results of algorithm comparison.
type ComparisonResult struct {
	Kind         string               `json:"kind"`
	Points       int                  `json:"points"`
	Trials       int                  `json:"trials"`
	Seed         uint64               `json:"seed"`
	Duration     time.Duration        `json:"duration_ns"`
	DurationSecs float64              `json:"duration_secs"`
	PerAlgorithm map[string]AlgoStats `json:"per_algorithm"`
	Agreement    AgreementStats       `json:"agreement_stats"`
}

// AlgoStats holds per-algorithm statistics.
type AlgoStats struct {
	Name          string  `json:"name"`
	Runs          int     `json:"runs"`
	AvgMicros     float64 `json:"avg_us"`
	StdDevMicros  float64 `json:"stddev_us"`
	MaxMicros     float64 `json:"max_us"`
	AvgCalls      float64 `json:"avg_calls"`
	AvgPromotions float64 `json:"avg_promotions"`
	Violations    int     `json:"violations"`
}

// radiusTolerance is the relative radius difference still counted as
// agreement. It sits above the oracle's enclosure slack.
const radiusTolerance = 1e-7

// AgreementStats compares every algorithm's radius with the reference.
// The reference is the exhaustive oracle when it ran, else Welzl.
type AgreementStats struct {
	Reference       string  `json:"reference"`
	Comparisons     int     `json:"comparisons"`
	Mismatches      int     `json:"mismatches"`
	MaxRelRadiusErr float64 `json:"max_rel_radius_err"`
}

func main() {
	cfg := parseFlags()

	if cfg.Trials <= 0 || cfg.Points <= 0 {
		log.Fatal("-trials and -n must be positive")
	}

	if cfg.OutputDir != "" {
		if err := security.ValidateExportPath(cfg.OutputDir); err != nil {
			log.Fatalf("Invalid output directory: %v", err)
		}
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	result, err := runComparison(cfg)
	if err != nil {
		log.Fatalf("Comparison failed: %v", err)
	}

	printResults(result)

	if cfg.OutputJSON != "" {
		outputPath := cfg.OutputJSON
		if cfg.OutputDir != "" {
			outputPath = filepath.Join(cfg.OutputDir, cfg.OutputJSON)
		}
		if err := exportJSON(result, outputPath); err != nil {
			log.Printf("Warning: failed to export JSON: %v", err)
		} else {
			log.Printf("Results exported to: %s", outputPath)
		}
	}
}

func parseFlags() Config {
	cfg := Config{}

	flag.IntVar(&cfg.Trials, "trials", 100, "Number of random point sets")
	flag.IntVar(&cfg.Points, "n", 1000, "Points per set")
	flag.StringVar(&cfg.Kind, "kind", pointset.KindUniform.String(), "Distribution: "+kindNames())
	flag.Uint64Var(&cfg.Seed, "seed", 1, "Base random seed")
	flag.IntVar(&cfg.OracleMax, "oracle-max", 60, "Run the exhaustive oracle only when n is at most this")
	flag.StringVar(&cfg.OutputDir, "output", "", "Output directory for results")
	flag.StringVar(&cfg.OutputJSON, "json", "", "Output JSON filename (e.g., results.json)")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose logging")

	flag.Parse()

	return cfg
}

// trialLog accumulates raw samples for one algorithm.
type trialLog struct {
	micros     []float64
	calls      []float64
	promotions []float64
	violations int
}

func runComparison(cfg Config) (*ComparisonResult, error) {
	kind, err := pointset.ParseKind(cfg.Kind)
	if err != nil {
		return nil, err
	}

	algos := []mec.Algorithm{mec.AlgorithmWelzl, mec.AlgorithmIterative}
	reference := mec.AlgorithmWelzl
	if cfg.Points <= cfg.OracleMax {
		algos = append(algos, mec.AlgorithmExhaustive)
		reference = mec.AlgorithmExhaustive
	}

	logs := make(map[mec.Algorithm]*trialLog, len(algos))
	for _, a := range algos {
		logs[a] = &trialLog{}
	}
	agreement := AgreementStats{Reference: reference.String()}

	startTime := time.Now()
	for trial := 0; trial < cfg.Trials; trial++ {
		seed := cfg.Seed + uint64(trial)
		pts := pointset.Generate(kind, cfg.Points, mec.NewRand(seed))

		circles := make(map[mec.Algorithm]geom.Circle, len(algos))
		for _, a := range algos {
			s := mec.NewSolver(mec.WithAlgorithm(a), mec.WithSeed(seed))
			c := s.Solve(pts)
			circles[a] = c

			st := s.Stats()
			l := logs[a]
			l.micros = append(l.micros, float64(st.Elapsed.Nanoseconds())/1e3)
			l.calls = append(l.calls, float64(st.Calls))
			l.promotions = append(l.promotions, float64(st.Promotions))
			if idx, ok := mec.Encloses(c, pts, c.Tolerance()); !ok {
				l.violations++
				log.Printf("Trial %d: %s leaves point %d %v outside %v", trial, a, idx, pts[idx], c)
			}
		}

		ref := circles[reference]
		for _, a := range algos {
			if a == reference {
				continue
			}
			agreement.Comparisons++
			relErr := math.Abs(circles[a].Radius-ref.Radius) / math.Max(1, ref.Radius)
			agreement.MaxRelRadiusErr = math.Max(agreement.MaxRelRadiusErr, relErr)
			if relErr > radiusTolerance {
				agreement.Mismatches++
				log.Printf("Trial %d: %s radius %g differs from %s radius %g", trial, a, circles[a].Radius, reference, ref.Radius)
			}
		}

		if cfg.Verbose && (trial+1)%10 == 0 {
			log.Printf("Completed %d/%d trials", trial+1, cfg.Trials)
		}
	}
	processingTime := time.Since(startTime)

	perAlgo := make(map[string]AlgoStats, len(algos))
	for _, a := range algos {
		perAlgo[a.String()] = summarize(a.String(), logs[a])
	}

	return &ComparisonResult{
		Kind:         kind.String(),
		Points:       cfg.Points,
		Trials:       cfg.Trials,
		Seed:         cfg.Seed,
		Duration:     processingTime,
		DurationSecs: processingTime.Seconds(),
		PerAlgorithm: perAlgo,
		Agreement:    agreement,
	}, nil
}

func summarize(name string, l *trialLog) AlgoStats {
	s := AlgoStats{Name: name, Runs: len(l.micros), Violations: l.violations}
	if len(l.micros) == 0 {
		return s
	}
	s.AvgMicros, s.StdDevMicros = stat.MeanStdDev(l.micros, nil)
	if math.IsNaN(s.StdDevMicros) {
		s.StdDevMicros = 0
	}
	s.MaxMicros = floats.Max(l.micros)
	s.AvgCalls = stat.Mean(l.calls, nil)
	s.AvgPromotions = stat.Mean(l.promotions, nil)
	return s
}

func kindNames() string {
	names := make([]string, 0, len(pointset.Kinds()))
	for _, k := range pointset.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func printResults(result *ComparisonResult) {
	fmt.Println("\n=== Algorithm Comparison Results ===")
	fmt.Printf("Distribution: %s\n", result.Kind)
	fmt.Printf("Points per set: %d\n", result.Points)
	fmt.Printf("Trials: %d (seed %d)\n", result.Trials, result.Seed)
	fmt.Printf("Processing Time: %.2fs\n", result.DurationSecs)

	fmt.Println("\n--- Per-Algorithm Statistics ---")
	for _, a := range mec.Algorithms() {
		stats, ok := result.PerAlgorithm[a.String()]
		if !ok {
			continue
		}
		fmt.Printf("\n%s:\n", stats.Name)
		fmt.Printf("  Time: %.2f µs avg, %.2f µs stddev, %.2f µs max\n", stats.AvgMicros, stats.StdDevMicros, stats.MaxMicros)
		fmt.Printf("  Calls: %.1f avg\n", stats.AvgCalls)
		fmt.Printf("  Promotions: %.1f avg\n", stats.AvgPromotions)
		fmt.Printf("  Violations: %d\n", stats.Violations)
	}

	fmt.Println("\n--- Agreement Statistics ---")
	fmt.Printf("Reference: %s\n", result.Agreement.Reference)
	fmt.Printf("Comparisons: %d\n", result.Agreement.Comparisons)
	fmt.Printf("Mismatches: %d\n", result.Agreement.Mismatches)
	fmt.Printf("Max relative radius error: %.3g\n", result.Agreement.MaxRelRadiusErr)
}

func exportJSON(result *ComparisonResult, path string) error {
	if err := security.ValidateExportPath(path); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
