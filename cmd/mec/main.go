// Command mec computes the minimum enclosing circle of a planar point set.
//
// Points are read from a file (text, CSV or JSON), from stdin with -in -,
// or generated with -random. The circle is printed as a short summary and
// can additionally be written as a JSON report, a gonum/plot image or an
// echarts HTML page.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/banshee-data/mincircle/internal/config"
	"github.com/banshee-data/mincircle/internal/fsutil"
	"github.com/banshee-data/mincircle/internal/geom"
	"github.com/banshee-data/mincircle/internal/mec"
	"github.com/banshee-data/mincircle/internal/monitoring"
	"github.com/banshee-data/mincircle/internal/pointset"
	"github.com/banshee-data/mincircle/internal/render"
	"github.com/banshee-data/mincircle/internal/report"
	"github.com/banshee-data/mincircle/internal/security"
	"github.com/banshee-data/mincircle/internal/timeutil"
	"github.com/banshee-data/mincircle/internal/version"
	"gonum.org/v1/plot/vg"
)

// demoPoints is solved when no input is given.
var demoPoints = []geom.Point{
	{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0},
}

// clock seeds runs that were given no -seed.
var clock timeutil.Clock = timeutil.RealClock{}

// options holds the parsed command line.
type options struct {
	in         string
	format     string
	random     int
	kind       string
	configPath string
	seed       uint64
	algo       string
	dedupe     bool
	verify     bool
	integral   bool
	plotPath   string
	htmlPath   string
	jsonPath   string
	savePath   string
	debug      bool
	version    bool
	printCfg   bool

	// set records which flags were given explicitly.
	set map[string]bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mec: ")
	monitoring.SetLogger(log.Printf)

	if err := run(os.Args[1:], os.Stdin, os.Stdout, fsutil.OSFileSystem{}); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("%v", err)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{set: make(map[string]bool)}
	fs := flag.NewFlagSet("mec", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.in, "in", "", "Point file to read, or - for stdin")
	fs.StringVar(&o.format, "format", "", "Input format: text, csv or json (default: from extension, else text)")
	fs.IntVar(&o.random, "random", 0, "Generate N random points instead of reading input")
	fs.StringVar(&o.kind, "kind", pointset.KindUniform.String(), "Distribution for -random: "+kindNames())
	fs.StringVar(&o.configPath, "config", "", "Path to a JSON run config")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed for pivots and -random (default: clock)")
	fs.StringVar(&o.algo, "algo", mec.AlgorithmWelzl.String(), "Algorithm: welzl, iterative or exhaustive")
	fs.BoolVar(&o.dedupe, "dedupe", false, "Drop duplicate points before solving")
	fs.BoolVar(&o.verify, "verify", false, "Check every point lies inside the result")
	fs.BoolVar(&o.integral, "integral", false, "Also report the integer circle covering the result")
	fs.StringVar(&o.plotPath, "plot", "", "Write a plot image (.png, .svg or .pdf)")
	fs.StringVar(&o.htmlPath, "html", "", "Write an interactive HTML chart")
	fs.StringVar(&o.jsonPath, "json", "", "Write the JSON report to this path, or - for stdout")
	fs.StringVar(&o.savePath, "save", "", "Write the solved point set (.txt, .csv or .json) for replay with -in")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&o.version, "version", false, "Print version and exit")
	fs.BoolVar(&o.printCfg, "print-config", false, "Print a run config with every default filled in and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		if o.in != "" {
			return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
		}
		o.in = fs.Arg(0)
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// runConfig merges the optional config file with flags given explicitly on
// the command line. Flags win.
func (o *options) runConfig(fsys fsutil.FileSystem) (*config.RunConfig, error) {
	cfg := config.EmptyRunConfig()
	if o.configPath != "" {
		loaded, err := config.LoadRunConfig(fsys, o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if o.set["algo"] {
		cfg.Algorithm = &o.algo
	}
	if o.set["seed"] {
		cfg.Seed = &o.seed
	}
	if o.set["dedupe"] {
		cfg.Dedupe = &o.dedupe
	}
	if o.set["verify"] {
		cfg.Verify = &o.verify
	}
	if o.set["integral"] {
		cfg.Integral = &o.integral
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run config: %w", err)
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer, fsys fsutil.FileSystem) error {
	o, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	if o.version {
		_, err := fmt.Fprintln(stdout, "mec", version.String())
		return err
	}
	if o.printCfg {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(config.DefaultRunConfig())
	}
	monitoring.SetDebug(o.debug)

	cfg, err := o.runConfig(fsys)
	if err != nil {
		return err
	}
	for _, p := range []string{o.plotPath, o.htmlPath, o.jsonPath, o.savePath} {
		if p == "" || p == "-" {
			continue
		}
		if err := security.ValidateExportPath(p); err != nil {
			return fmt.Errorf("refusing to write %s: %w", p, err)
		}
	}

	seed, seeded := cfg.GetSeed()
	if !seeded {
		seed = clockSeed()
	}

	pts, err := o.loadPoints(stdin, fsys, seed)
	if err != nil {
		return err
	}
	if cfg.GetDedupe() {
		before := len(pts)
		pts = pointset.Dedupe(pts)
		monitoring.Debugf("dedupe: %d -> %d points", before, len(pts))
	}
	if o.savePath != "" {
		format := pointset.FormatFromPath(o.savePath)
		if err := writeFile(fsys, o.savePath, func(w io.Writer) error {
			return pointset.Write(w, pts, format)
		}); err != nil {
			return err
		}
		monitoring.Logf("Points written to %s", o.savePath)
	}

	solver := mec.NewSolver(mec.WithAlgorithm(cfg.GetAlgorithm()), mec.WithSeed(seed))
	circle := solver.Solve(pts)

	rep := report.New(solver.Algorithm(), circle, solver.Stats()).WithSeed(seed)
	if cfg.GetIntegral() {
		rep.WithIntegral()
	}
	if cfg.GetVerify() {
		eps, ok := cfg.GetVerifyEpsilon()
		if !ok {
			eps = circle.Tolerance()
		}
		idx, ok := mec.Encloses(circle, pts, eps)
		rep.WithVerification(idx, ok)
	}

	if o.jsonPath == "-" {
		if err := report.WriteJSON(stdout, rep); err != nil {
			return err
		}
	} else {
		if err := report.WriteText(stdout, rep); err != nil {
			return err
		}
		if o.jsonPath != "" {
			if err := writeFile(fsys, o.jsonPath, func(w io.Writer) error {
				return report.WriteJSON(w, rep)
			}); err != nil {
				return err
			}
		}
	}

	if o.plotPath != "" {
		plotOpts := render.PlotOptions{
			Format:   plotFormat(o.plotPath, cfg),
			Width:    vg.Length(cfg.GetPlotWidthInch()) * vg.Inch,
			Height:   vg.Length(cfg.GetPlotHeightInch()) * vg.Inch,
			Segments: cfg.GetCircleSegments(),
		}
		if err := writeFile(fsys, o.plotPath, func(w io.Writer) error {
			return render.Plot(w, pts, circle, plotOpts)
		}); err != nil {
			return err
		}
		monitoring.Logf("Plot written to %s", o.plotPath)
	}
	if o.htmlPath != "" {
		htmlOpts := render.HTMLOptions{Segments: cfg.GetCircleSegments()}
		if err := writeFile(fsys, o.htmlPath, func(w io.Writer) error {
			return render.HTML(w, pts, circle, htmlOpts)
		}); err != nil {
			return err
		}
		monitoring.Logf("Chart written to %s", o.htmlPath)
	}

	if rep.Verified != nil && !*rep.Verified {
		return fmt.Errorf("verification failed: point %d %v lies outside %v",
			*rep.Violation, pts[*rep.Violation], circle)
	}
	return nil
}

func (o *options) loadPoints(stdin io.Reader, fsys fsutil.FileSystem, seed uint64) ([]geom.Point, error) {
	if o.random > 0 {
		if o.in != "" {
			return nil, errors.New("-random and -in are mutually exclusive")
		}
		kind, err := pointset.ParseKind(o.kind)
		if err != nil {
			return nil, err
		}
		return pointset.Generate(kind, o.random, mec.NewRand(seed)), nil
	}

	format, err := pointset.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	switch o.in {
	case "":
		monitoring.Logf("No input given, solving the demo set")
		return demoPoints, nil
	case "-":
		return pointset.Parse(stdin, format)
	default:
		return pointset.Load(fsys, o.in, format)
	}
}

// plotFormat prefers the output file's extension, then the run config.
func plotFormat(path string, cfg *config.RunConfig) string {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", ".svg", ".pdf":
		return ext
	}
	return cfg.GetPlotFormat()
}

func writeFile(fsys fsutil.FileSystem, path string, write func(io.Writer) error) error {
	f, err := fsutil.CreateAll(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func kindNames() string {
	names := make([]string, 0, len(pointset.Kinds()))
	for _, k := range pointset.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func clockSeed() uint64 {
	return uint64(clock.Now().UnixNano())
}
