package render

import (
	"image/color"
	"math"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/geom"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// GlobalMeasures are the global network measures in plotting order:
// assortativity, modularity, efficiency, clustering, path length and
// small world coefficient. The same measure of the random graphs is
// stored under the name with a "_rand" suffix.
var GlobalMeasures = []string{"a", "M", "E", "C", "L", "sigma"}

// RandomGrey is the color of random graph statistics.
var RandomGrey = color.NRGBA{0x80, 0x80, 0x80, 0xff}

// ci95 returns the half width of the normal 95% interval of v, zero
// for (almost) constant samples.
func ci95(v []float64) float64 {
	if len(v) < 2 {
		return 0
	}
	sd := stat.PopStdDev(v, nil)
	if sd <= 1e-7 {
		return 0
	}
	return distuv.Normal{Mu: 0, Sigma: sd}.Quantile(0.975)
}

// NetworkMeasures shows the mean of each of the GlobalMeasures over
// repeated samples as a bar next to the grey bar of its random graph
// counterpart, both with 95% interval whiskers in the color of their
// bar.
type NetworkMeasures struct {
	Samples map[string][]float64

	Color color.Color // defaults to figure.DefaultColor
	YLim  figure.Interval
}

// Render implements the bar plot on p.
func (m NetworkMeasures) Render(p *figure.Panel) error {
	col := m.Color
	if col == nil {
		col = figure.DefaultColor
	}
	var xy plotter.XYs
	var errs plotter.Values
	for i, name := range GlobalMeasures {
		for _, k := range []string{name, name + "_rand"} {
			v, ok := m.Samples[k]
			if !ok || len(v) == 0 {
				return errors.Errorf("network measures: no samples of %s", k)
			}
			xy = append(xy, plotter.XY{X: float64(i), Y: stat.Mean(v, nil)})
			errs = append(errs, ci95(v))
		}
	}

	fill := func(i int) color.Color {
		if i%2 == 1 {
			return RandomGrey
		}
		return col
	}
	bars := geom.Bar{
		XY:       xy,
		Err:      errs,
		GGap:     0.52,
		BGap:     0.02,
		Fills:    fill,
		Whiskers: fill,
		Default:  geom.BoxStyle{Border: draw.LineStyle{Color: color.Black, Width: p.Style.GeomDefault.LineWidth / 2}},
		Whisker:  draw.LineStyle{Width: p.Style.GeomDefault.LineWidth},
	}

	lim := m.YLim
	if lim == (figure.Interval{}) {
		lim = figure.Interval{Min: -0.5, Max: 2.5}
	}
	p.SetYLim(lim.Min, lim.Max)
	p.SetXLim(-0.5, float64(len(GlobalMeasures))-0.5)
	p.Scales[figure.XScale].Ticker = figure.LabelTicks(GlobalMeasures)
	p.Scales[figure.YScale].Ticker = figure.NBins{N: 5}
	p.SetYLabel("Network measures")
	p.Despine = true

	return p.Add(bars, geom.ZeroLine(0.5))
}

// RichClub plots the rich club coefficient of a graph per degree
// together with the mean coefficient of degree preserving random graphs
// and its 95% confidence interval. Normalised plots the ratio of the
// two instead, with a dashed line where both coincide.
type RichClub struct {
	RC     []float64   // coefficient at degree k
	Random [][]float64 // one RC curve per random graph

	Normalised bool
	Color      color.Color // defaults to figure.DefaultColor
	XMax, YMax float64     // 200 and 1.2 if zero
}

// meanCI returns the mean of each column of rows and the half width of
// its normal 95% confidence interval.
func meanCI(rows [][]float64, n int) (plotter.Values, plotter.Values) {
	z := distuv.UnitNormal.Quantile(0.975)
	mean := make(plotter.Values, n)
	ci := make(plotter.Values, n)
	for k := 0; k < n; k++ {
		var col []float64
		for _, r := range rows {
			if k < len(r) && !math.IsNaN(r[k]) && !math.IsInf(r[k], 0) {
				col = append(col, r[k])
			}
		}
		if len(col) == 0 {
			mean[k], ci[k] = math.NaN(), 0
			continue
		}
		mean[k] = stat.Mean(col, nil)
		if len(col) > 1 {
			ci[k] = z * stat.StdDev(col, nil) / math.Sqrt(float64(len(col)))
		}
	}
	return mean, ci
}

// Render implements the rich club plot on p.
func (r RichClub) Render(p *figure.Panel) error {
	if len(r.RC) == 0 {
		return errors.New("rich club: no coefficients")
	}
	if len(r.Random) == 0 {
		return errors.New("rich club: no random graphs")
	}
	col := r.Color
	if col == nil {
		col = figure.DefaultColor
	}
	n := len(r.RC)
	line := draw.LineStyle{Color: col, Width: p.Style.GeomDefault.LineWidth}
	grey := draw.LineStyle{Color: RandomGrey, Width: p.Style.GeomDefault.LineWidth}
	curve := func(v plotter.Values) plotter.XYs {
		xy := make(plotter.XYs, len(v))
		for k := range v {
			xy[k].X, xy[k].Y = float64(k), v[k]
		}
		return xy
	}

	var geoms []figure.Geom
	if r.Normalised {
		ratio := make([][]float64, len(r.Random))
		for j, rnd := range r.Random {
			ratio[j] = make([]float64, n)
			for k := range ratio[j] {
				ratio[j][k] = math.NaN()
				if k < len(rnd) && rnd[k] != 0 {
					ratio[j][k] = r.RC[k] / rnd[k]
				}
			}
		}
		mean, ci := meanCI(ratio, n)
		xy := curve(mean)
		geoms = append(geoms,
			dashedAt(1),
			geom.Line{XY: xy, Default: line},
			geom.ErrorBar{XY: xy, Err: ci, Default: line},
		)
		p.SetYLabel("Normalised Rich Club")
	} else {
		mean, ci := meanCI(r.Random, n)
		xy := curve(mean)
		geoms = append(geoms,
			geom.Line{XY: curve(r.RC), Default: line},
			geom.Line{XY: xy, Default: grey},
			geom.ErrorBar{XY: xy, Err: ci, Default: grey},
		)
		xmax, ymax := r.XMax, r.YMax
		if xmax == 0 {
			xmax = 200
		}
		if ymax == 0 {
			ymax = 1.2
		}
		p.SetXLim(0, xmax)
		p.SetYLim(0, ymax)
		p.SetYLabel("Rich Club")
	}

	p.SetXLabel("Degree")
	p.Scales[figure.XScale].Ticker = figure.NBins{N: 5}
	p.Scales[figure.YScale].Ticker = figure.NBins{N: 5}
	p.Despine = true
	return p.Add(geoms...)
}
