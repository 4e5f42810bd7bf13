package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/banshee-data/mincircle/internal/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotOptions configures Plot. Zero values fall back to defaults.
type PlotOptions struct {
	Title    string
	Format   string // png, svg or pdf; default png
	Width    vg.Length
	Height   vg.Length
	Segments int
}

func (o PlotOptions) withDefaults() PlotOptions {
	if o.Title == "" {
		o.Title = "Minimum enclosing circle"
	}
	if o.Format == "" {
		o.Format = "png"
	}
	o.Format = strings.ToLower(strings.TrimPrefix(o.Format, "."))
	if o.Width <= 0 {
		o.Width = 6 * vg.Inch
	}
	if o.Height <= 0 {
		o.Height = o.Width
	}
	if o.Segments <= 0 {
		o.Segments = DefaultSegments
	}
	return o
}

var (
	pointColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	circleColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	centerColor = color.RGBA{A: 255}
)

// Plot draws pts and c with gonum/plot and writes the image to w.
func Plot(w io.Writer, pts []geom.Point, c geom.Circle, opts PlotOptions) error {
	if err := checkCircle(c); err != nil {
		return err
	}
	opts = opts.withDefaults()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Add(plotter.NewGrid())

	if len(pts) > 0 {
		sc, err := plotter.NewScatter(toXYs(pts))
		if err != nil {
			return fmt.Errorf("failed to build point scatter: %w", err)
		}
		sc.GlyphStyle.Color = pointColor
		sc.GlyphStyle.Radius = vg.Points(2)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(fmt.Sprintf("points (%d)", len(pts)), sc)
	}

	// A degenerate circle is drawn as its center marker alone.
	if !c.IsDegenerate() {
		outline, err := plotter.NewLine(toXYs(c.Outline(opts.Segments)))
		if err != nil {
			return fmt.Errorf("failed to build circle outline: %w", err)
		}
		outline.Color = circleColor
		outline.Width = vg.Points(1)
		p.Add(outline)
		p.Legend.Add(fmt.Sprintf("r = %.4g", c.Radius), outline)
	}

	ctr, err := plotter.NewScatter(toXYs([]geom.Point{c.Center}))
	if err != nil {
		return fmt.Errorf("failed to build center marker: %w", err)
	}
	ctr.GlyphStyle.Color = centerColor
	ctr.GlyphStyle.Radius = vg.Points(3)
	ctr.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(ctr)

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	view := fitViewport(pts, c, 0.1)
	p.X.Min, p.X.Max = view.minX, view.maxX
	p.Y.Min, p.Y.Max = view.minY, view.maxY

	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return fmt.Errorf("failed to create %s canvas: %w", opts.Format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}
	return nil
}

func toXYs(pts []geom.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return xys
}
