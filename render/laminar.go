package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/geom"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// LaminarScatter plots Y against X separately for each von Economo
// class: the points of a class in its laminar color and marker with
// their own least squares line and 95% band.
type LaminarScatter struct {
	X, Y    []float64
	Classes []int // laminar class of each point

	XLabel, YLabel string
	XLim, YLim     figure.Interval

	MarkerSize float64 // in pt², 60 if zero
}

// Render implements the laminar scatter plot on p.
func (s LaminarScatter) Render(p *figure.Panel) error {
	n := len(s.X)
	if len(s.Y) != n || len(s.Classes) != n {
		return errors.Errorf("laminar scatter: %d x values, %d y values and %d classes",
			n, len(s.Y), len(s.Classes))
	}
	size := s.MarkerSize
	if size == 0 {
		size = 60
	}

	byClass := make(map[int]plotter.XYs)
	for i, c := range s.Classes {
		if math.IsNaN(s.X[i]) || math.IsNaN(s.Y[i]) {
			continue
		}
		byClass[c] = append(byClass[c], plotter.XY{X: s.X[i], Y: s.Y[i]})
	}
	classes := make([]int, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	var geoms []figure.Geom
	for _, c := range classes {
		col, ok := figure.LaminarColor(c)
		if !ok {
			return errors.Errorf("laminar scatter: no laminar color for class %d", c)
		}
		xy := byClass[c]
		if len(xy) >= 3 {
			geoms = append(geoms, geom.Regression{
				XY:      xy,
				Default: draw.LineStyle{Color: col, Width: p.Style.GeomDefault.LineWidth},
				Band:    geom.WithAlpha(col, 0.15),
			})
		}
		geoms = append(geoms, geom.Point{
			XY: xy,
			Default: draw.GlyphStyle{
				Color:  col,
				Radius: figure.MarkerRadius(size),
				Shape:  figure.LaminarShape(c),
			},
		})
	}

	setLim(p, figure.XScale, s.XLim)
	setLim(p, figure.YScale, s.YLim)
	p.Scales[figure.XScale].Ticker = figure.NBins{N: 5}
	p.Scales[figure.YScale].Ticker = figure.Sci(4)
	p.SetXLabel(s.XLabel)
	p.SetYLabel(s.YLabel)
	p.Despine = true

	return p.Add(append(geoms, dashedZero())...)
}

// DegreeDistribution shows the degree distribution of a network as a
// density histogram.
type DegreeDistribution struct {
	Degrees []float64

	Bins  int         // 20 if zero
	XMax  float64     // largest degree if zero
	YMax  float64     // autoscaled if zero
	Color color.Color // defaults to figure.DefaultColor
}

// histogram returns the bin centers and densities of the degrees over
// [0, xmax].
func (d DegreeDistribution) histogram(xmax float64) plotter.XYs {
	bins := d.Bins
	if bins == 0 {
		bins = 20
	}
	x := make([]float64, 0, len(d.Degrees))
	for _, v := range d.Degrees {
		if v >= 0 && v <= xmax {
			x = append(x, v)
		}
	}
	sort.Float64s(x)
	dividers := make([]float64, bins+1)
	floats.Span(dividers, 0, xmax)
	// The last divider is exclusive.
	dividers[bins] = math.Nextafter(xmax, math.Inf(1))
	counts := stat.Histogram(nil, dividers, x, nil)

	width := xmax / float64(bins)
	xy := make(plotter.XYs, bins)
	for i, c := range counts {
		xy[i].X = (dividers[i] + dividers[i+1]) / 2
		if len(x) > 0 {
			xy[i].Y = c / (float64(len(x)) * width)
		}
	}
	return xy
}

// Render implements the degree distribution on p.
func (d DegreeDistribution) Render(p *figure.Panel) error {
	if len(d.Degrees) == 0 {
		return errors.New("degree distribution: no degrees")
	}
	xmax := d.XMax
	if xmax == 0 {
		xmax = floats.Max(d.Degrees)
	}
	if xmax <= 0 {
		return errors.Errorf("degree distribution: bad degree range [0,%g]", xmax)
	}
	col := d.Color
	if col == nil {
		col = figure.DefaultColor
	}
	bars := geom.Bar{
		XY:      d.histogram(xmax),
		GGap:    0.05,
		Fills:   func(int) color.Color { return geom.WithAlpha(col, 0.6) },
		Default: geom.BoxStyle{Border: draw.LineStyle{Color: col, Width: p.Style.GeomDefault.LineWidth / 2}},
	}

	p.SetXLim(0, xmax)
	if d.YMax != 0 {
		p.SetYLim(0, d.YMax)
	}
	p.Scales[figure.XScale].Ticker = figure.NBins{N: 5}
	p.Scales[figure.YScale].Ticker = figure.NBins{N: 4}
	p.SetXLabel("Degree")
	p.SetYLabel("Probability")
	p.Despine = true
	return p.Add(bars)
}
