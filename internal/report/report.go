// Package report packages a solved circle with the metadata of the run that
// produced it.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/banshee-data/mincircle/internal/geom"
	"github.com/banshee-data/mincircle/internal/mec"
	"github.com/banshee-data/mincircle/internal/timeutil"
	"github.com/banshee-data/mincircle/internal/version"
	"github.com/google/uuid"
)

// Report is the result envelope emitted by the CLI.
type Report struct {
	RunID     string          `json:"run_id"`
	Version   string          `json:"version"`
	Algorithm string          `json:"algorithm"`
	Seed      *uint64         `json:"seed,omitempty"`
	Points    int             `json:"points"`
	Circle    geom.Circle     `json:"circle"`
	Integral  *geom.IntCircle `json:"integral,omitempty"`
	Stats     mec.Stats       `json:"stats"`
	// Verified is nil when no verification pass was run.
	Verified *bool `json:"verified,omitempty"`
	// Violation is the index of the first point found outside the circle.
	Violation *int      `json:"violation,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// clock stamps CreatedAt.
var clock timeutil.Clock = timeutil.RealClock{}

// New builds a Report with a fresh run ID.
func New(algo mec.Algorithm, c geom.Circle, stats mec.Stats) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Version:   version.Version,
		Algorithm: algo.String(),
		Points:    stats.Points,
		Circle:    c,
		Stats:     stats,
		CreatedAt: clock.Now().UTC(),
	}
}

// WithSeed records the seed that drove the solver.
func (r *Report) WithSeed(seed uint64) *Report {
	r.Seed = &seed
	return r
}

// WithIntegral attaches the integer rounding of the circle.
func (r *Report) WithIntegral() *Report {
	ic := r.Circle.Integral()
	r.Integral = &ic
	return r
}

// WithVerification records the outcome of mec.Encloses.
func (r *Report) WithVerification(violation int, ok bool) *Report {
	r.Verified = &ok
	if !ok {
		r.Violation = &violation
	}
	return r
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteText writes r as a short human-readable summary.
func WriteText(w io.Writer, r *Report) error {
	_, err := fmt.Fprintf(w, "%s: n=%d %s (%s, %s)\n",
		r.Algorithm, r.Points, r.Circle, r.Stats.Elapsed.Round(time.Microsecond), r.RunID)
	if err != nil {
		return err
	}
	if r.Integral != nil {
		if _, err := fmt.Fprintf(w, "integral: %s\n", r.Integral); err != nil {
			return err
		}
	}
	if r.Verified != nil {
		status := "ok"
		if !*r.Verified {
			status = fmt.Sprintf("FAILED at point %d", *r.Violation)
		}
		if _, err := fmt.Fprintf(w, "verify: %s\n", status); err != nil {
			return err
		}
	}
	return nil
}
