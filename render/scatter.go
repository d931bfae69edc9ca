// Package render draws the statistical panels of the manuscript:
// regression scatters, grouped box plots, depth profiles, summaries of
// the covariance network and its layouts.
//
// Each renderer is a plain struct describing the data and its styling.
// Its Render method populates one figure.Panel and returns an error for
// malformed input; callers which want to isolate failures pass that
// error on to Panel.Fail.
package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/geom"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultMarkerSize is the area of scatter markers in pt².
const DefaultMarkerSize = 100

// Unbounded leaves both ends of an axis to autoscaling.
var Unbounded = figure.Interval{Min: math.NaN(), Max: math.NaN()}

// Scatter plots Y against X with a least squares line, its 95%
// confidence band and a dashed line at y = 0.
type Scatter struct {
	X, Y []float64

	XLabel, YLabel string
	XLim, YLim     figure.Interval // a zero Interval autoscales

	Color        color.Color   // line and default marker color, black if nil
	MarkerColors []color.Color // optional, one per point
	Shapes       []string      // optional marker token per point
	Marker       string        // marker token used without Shapes
	MarkerSize   float64       // in pt², DefaultMarkerSize if zero

	NBins int // ticks per axis, 5 if zero
}

// Render implements the scatter plot on p.
func (s Scatter) Render(p *figure.Panel) error {
	n := len(s.X)
	if len(s.Y) != n {
		return errors.Errorf("scatter: %d x values but %d y values", n, len(s.Y))
	}
	if s.MarkerColors != nil && len(s.MarkerColors) != n {
		return errors.Errorf("scatter: %d marker colors for %d points", len(s.MarkerColors), n)
	}
	if s.Shapes != nil && len(s.Shapes) != n {
		return errors.Errorf("scatter: %d marker shapes for %d points", len(s.Shapes), n)
	}

	col := s.Color
	if col == nil {
		col = color.Black
	}
	size := s.MarkerSize
	if size == 0 {
		size = DefaultMarkerSize
	}

	// Points of one shape are drawn together.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if s.Shapes != nil {
		sort.SliceStable(order, func(a, b int) bool { return s.Shapes[order[a]] < s.Shapes[order[b]] })
	}
	xy := make(plotter.XYs, n)
	for k, i := range order {
		xy[k].X, xy[k].Y = s.X[i], s.Y[i]
	}

	points := geom.Point{
		XY: xy,
		Default: draw.GlyphStyle{
			Color:  col,
			Radius: figure.MarkerRadius(size),
			Shape:  figure.Marker(s.Marker),
		},
	}
	if s.MarkerColors != nil {
		points.Colors = func(k int) color.Color { return s.MarkerColors[order[k]] }
	}
	if s.Shapes != nil {
		points.Glyph = func(k int) draw.GlyphDrawer { return figure.Marker(s.Shapes[order[k]]) }
	}

	reg := geom.Regression{
		XY:      xy,
		Default: draw.LineStyle{Color: col, Width: p.Style.GeomDefault.LineWidth},
		Band:    geom.WithAlpha(col, 0.15),
	}

	setLim(p, figure.XScale, s.XLim)
	setLim(p, figure.YScale, s.YLim)
	nbins := s.NBins
	if nbins == 0 {
		nbins = 5
	}
	p.Scales[figure.XScale].Ticker = figure.NBins{N: nbins}
	p.Scales[figure.YScale].Ticker = figure.Sci(nbins)
	p.SetXLabel(s.XLabel)
	p.SetYLabel(s.YLabel)
	p.Despine = true

	return p.Add(reg, points, dashedZero())
}

// setLim fixes scale i of p to lim. The zero Interval and NaN ends
// leave the scale autoscaling.
func setLim(p *figure.Panel, i int, lim figure.Interval) {
	if lim == (figure.Interval{}) {
		return
	}
	p.Scales[i].Fix(lim.Min, lim.Max)
}

// dashedZero is the dashed reference line at y = 0.
func dashedZero() geom.HLine { return dashedAt(0) }

// dashedAt is a dashed black reference line at y.
func dashedAt(y float64) geom.HLine {
	return geom.HLine{
		Y:       plotter.Values{y},
		Default: draw.LineStyle{Color: color.Black, Width: 1, Dashes: geom.Dashed},
	}
}
