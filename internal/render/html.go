package render

import (
	"fmt"
	"io"

	"github.com/banshee-data/mincircle/internal/geom"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// HTMLOptions configures HTML. Zero values fall back to defaults.
type HTMLOptions struct {
	Title string
	// AssetsHost overrides where the echarts script is loaded from.
	AssetsHost string
	Size       string // CSS width and height of the square chart
	Segments   int
}

// HTML writes a self-contained go-echarts page showing pts, the outline of
// c, and its center.
func HTML(w io.Writer, pts []geom.Point, c geom.Circle, o HTMLOptions) error {
	if err := checkCircle(c); err != nil {
		return err
	}
	if o.Title == "" {
		o.Title = "Minimum enclosing circle"
	}
	if o.Size == "" {
		o.Size = "900px"
	}
	if o.Segments <= 0 {
		o.Segments = DefaultSegments
	}

	view := fitViewport(pts, c, 0.1)
	init := opts.Initialization{PageTitle: o.Title, Width: o.Size, Height: o.Size}
	if o.AssetsHost != "" {
		init.AssetsHost = o.AssetsHost
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(init),
		charts.WithTitleOpts(opts.Title{
			Title:    o.Title,
			Subtitle: fmt.Sprintf("points=%d center=%v radius=%.6g", len(pts), c.Center, c.Radius),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: view.minX, Max: view.maxX, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: view.minY, Max: view.maxY, Name: "Y", NameLocation: "middle", NameGap: 30}),
	)

	scatter.AddSeries("points", scatterData(pts), charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	if !c.IsDegenerate() {
		scatter.AddSeries("circle", scatterData(c.Outline(o.Segments)), charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 2}))
	}
	scatter.AddSeries("center", scatterData([]geom.Point{c.Center}), charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func scatterData(pts []geom.Point) []opts.ScatterData {
	data := make([]opts.ScatterData, 0, len(pts))
	for _, p := range pts {
		data = append(data, opts.ScatterData{Value: []interface{}{p.X, p.Y}})
	}
	return data
}
