package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/banshee-data/mincircle/internal/fsutil"
	"github.com/banshee-data/mincircle/internal/mec"
)

// RunConfig holds the settings for one solver run. Every field is optional;
// the Get* methods supply defaults for anything left out, so partial files
// are safe.
type RunConfig struct {
	// Solver params
	Algorithm *string  `json:"algorithm,omitempty"` // welzl, iterative or exhaustive
	Seed      *uint64  `json:"seed,omitempty"`      // omitted means clock-seeded
	Dedupe    *bool    `json:"dedupe,omitempty"`
	Verify    *bool    `json:"verify,omitempty"`
	VerifyEps *float64 `json:"verify_epsilon,omitempty"` // omitted means scale-relative

	// Output params
	Integral       *bool    `json:"integral,omitempty"`
	PlotFormat     *string  `json:"plot_format,omitempty"`
	PlotWidthInch  *float64 `json:"plot_width_inch,omitempty"`
	PlotHeightInch *float64 `json:"plot_height_inch,omitempty"`
	CircleSegments *int     `json:"circle_segments,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyRunConfig returns a RunConfig with all fields set to nil.
func EmptyRunConfig() *RunConfig {
	return &RunConfig{}
}

// DefaultRunConfig returns a RunConfig with every defaultable field set
// explicitly. Seed and VerifyEps stay nil because their defaults are
// computed at run time.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		Algorithm:      ptrString(mec.AlgorithmWelzl.String()),
		Dedupe:         ptrBool(false),
		Verify:         ptrBool(false),
		Integral:       ptrBool(false),
		PlotFormat:     ptrString("png"),
		PlotWidthInch:  ptrFloat64(6),
		PlotHeightInch: ptrFloat64(6),
		CircleSegments: ptrInt(256),
	}
}

// LoadRunConfig loads a RunConfig from a JSON file in fsys.
// The file is validated to ensure it has a .json extension and is under the max file size.
func LoadRunConfig(fsys fsutil.FileSystem, path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := fsys.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := fsys.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyRunConfig()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *RunConfig) Validate() error {
	if c.Algorithm != nil {
		if _, err := mec.ParseAlgorithm(*c.Algorithm); err != nil {
			return fmt.Errorf("algorithm: %w", err)
		}
	}

	if c.VerifyEps != nil && *c.VerifyEps < 0 {
		return fmt.Errorf("verify_epsilon must be non-negative, got %g", *c.VerifyEps)
	}

	if c.PlotFormat != nil {
		switch strings.ToLower(*c.PlotFormat) {
		case "png", "svg", "pdf":
		default:
			return fmt.Errorf("plot_format must be png, svg or pdf, got %q", *c.PlotFormat)
		}
	}

	if c.PlotWidthInch != nil && (*c.PlotWidthInch <= 0 || *c.PlotWidthInch > 100) {
		return fmt.Errorf("plot_width_inch must be in (0, 100], got %g", *c.PlotWidthInch)
	}
	if c.PlotHeightInch != nil && (*c.PlotHeightInch <= 0 || *c.PlotHeightInch > 100) {
		return fmt.Errorf("plot_height_inch must be in (0, 100], got %g", *c.PlotHeightInch)
	}

	if c.CircleSegments != nil && (*c.CircleSegments < 3 || *c.CircleSegments > 100000) {
		return fmt.Errorf("circle_segments must be between 3 and 100000, got %d", *c.CircleSegments)
	}

	return nil
}

// GetAlgorithm returns the configured algorithm, or Welzl when unset or
// unparseable.
func (c *RunConfig) GetAlgorithm() mec.Algorithm {
	if c.Algorithm == nil {
		return mec.AlgorithmWelzl
	}
	a, err := mec.ParseAlgorithm(*c.Algorithm)
	if err != nil {
		return mec.AlgorithmWelzl
	}
	return a
}

// GetSeed returns the seed and whether one was configured.
func (c *RunConfig) GetSeed() (uint64, bool) {
	if c.Seed == nil {
		return 0, false
	}
	return *c.Seed, true
}

// GetDedupe returns the dedupe value or the default.
func (c *RunConfig) GetDedupe() bool {
	if c.Dedupe == nil {
		return false
	}
	return *c.Dedupe
}

// GetVerify returns the verify value or the default.
func (c *RunConfig) GetVerify() bool {
	if c.Verify == nil {
		return false
	}
	return *c.Verify
}

// GetVerifyEpsilon returns the absolute verification slack and whether one
// was configured. Callers fall back to Circle.Tolerance otherwise.
func (c *RunConfig) GetVerifyEpsilon() (float64, bool) {
	if c.VerifyEps == nil {
		return 0, false
	}
	return *c.VerifyEps, true
}

// GetIntegral returns the integral value or the default.
func (c *RunConfig) GetIntegral() bool {
	if c.Integral == nil {
		return false
	}
	return *c.Integral
}

// GetPlotFormat returns the plot_format value or the default.
func (c *RunConfig) GetPlotFormat() string {
	if c.PlotFormat == nil || *c.PlotFormat == "" {
		return "png"
	}
	return strings.ToLower(*c.PlotFormat)
}

// GetPlotWidthInch returns the plot_width_inch value or the default.
func (c *RunConfig) GetPlotWidthInch() float64 {
	if c.PlotWidthInch == nil {
		return 6
	}
	return *c.PlotWidthInch
}

// GetPlotHeightInch returns the plot_height_inch value, defaulting to the
// width so plots stay square.
func (c *RunConfig) GetPlotHeightInch() float64 {
	if c.PlotHeightInch == nil {
		return c.GetPlotWidthInch()
	}
	return *c.PlotHeightInch
}

// GetCircleSegments returns the circle_segments value or the default.
func (c *RunConfig) GetCircleSegments() int {
	if c.CircleSegments == nil {
		return 256
	}
	return *c.CircleSegments
}
