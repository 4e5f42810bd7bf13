package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunComparisonWithOracle(t *testing.T) {
	result, err := runComparison(Config{Trials: 20, Points: 12, Kind: "uniform", Seed: 5, OracleMax: 60})
	if err != nil {
		t.Fatalf("runComparison: %v", err)
	}

	if result.Agreement.Reference != "exhaustive" {
		t.Errorf("reference = %q, want exhaustive", result.Agreement.Reference)
	}
	if len(result.PerAlgorithm) != 3 {
		t.Fatalf("got %d algorithms, want 3", len(result.PerAlgorithm))
	}
	if result.Agreement.Comparisons != 40 {
		t.Errorf("comparisons = %d, want 40", result.Agreement.Comparisons)
	}
	if result.Agreement.Mismatches != 0 {
		t.Errorf("mismatches = %d, want 0", result.Agreement.Mismatches)
	}
	for name, s := range result.PerAlgorithm {
		if s.Runs != 20 {
			t.Errorf("%s runs = %d, want 20", name, s.Runs)
		}
		if s.Violations != 0 {
			t.Errorf("%s violations = %d", name, s.Violations)
		}
	}
}

func TestRunComparisonSkipsOracleForLargeSets(t *testing.T) {
	result, err := runComparison(Config{Trials: 3, Points: 2000, Kind: "gaussian", Seed: 1, OracleMax: 60})
	if err != nil {
		t.Fatalf("runComparison: %v", err)
	}
	if _, ok := result.PerAlgorithm["exhaustive"]; ok {
		t.Error("exhaustive ran above -oracle-max")
	}
	if result.Agreement.Reference != "welzl" {
		t.Errorf("reference = %q, want welzl", result.Agreement.Reference)
	}
	if s := result.PerAlgorithm["welzl"]; s.AvgCalls <= 0 {
		t.Errorf("welzl avg calls = %v, want > 0", s.AvgCalls)
	}
}

func TestRunComparisonUnknownKind(t *testing.T) {
	if _, err := runComparison(Config{Trials: 1, Points: 5, Kind: "spiral"}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestExportJSON(t *testing.T) {
	result, err := runComparison(Config{Trials: 2, Points: 8, Kind: "grid", Seed: 9, OracleMax: 60})
	if err != nil {
		t.Fatalf("runComparison: %v", err)
	}

	path := filepath.Join(t.TempDir(), "results.json")
	if err := exportJSON(result, path); err != nil {
		t.Fatalf("exportJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back ComparisonResult
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Points != 8 || back.Kind != "grid" {
		t.Errorf("round trip = %+v", back)
	}
}

func TestExportJSONRejectsPathOutsideAllowedDirs(t *testing.T) {
	result := &ComparisonResult{Kind: "uniform", Points: 1, Trials: 1}

	err := exportJSON(result, "/etc/mec-compare.json")
	if err == nil {
		t.Fatal("expected error for path outside temp and working directories")
	}
	if !strings.Contains(err.Error(), "invalid output path") {
		t.Errorf("error = %v, want invalid output path", err)
	}
	if _, statErr := os.Stat("/etc/mec-compare.json"); statErr == nil {
		t.Error("file was created despite validation failure")
	}
}
