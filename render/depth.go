package render

import (
	"image/color"
	"math"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/data"
	"github.com/HappyPenguin/figure/geom"
	"github.com/HappyPenguin/figure/measure"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Laminar boundaries in units of depth positions, from the pial
// surface (0) to the GM/WM boundary (10). They are the mean von Economo
// layer thicknesses scaled onto the sampled depths.
var LaminaBoundaries = []float64{0.8, 1.4, 4.2, 5.1, 6.9, 10.0}

// LaminaShade is the color of the shaded layers II, IV and VI.
var LaminaShade = color.NRGBA{226, 226, 226, 255}

// DepthProfile draws the distribution of a measure at each sampled
// cortical depth, from the pial surface into the white matter: a box
// per depth filled with the color of its median. With a single value per
// depth a line is drawn instead, colored by the value at the pial
// surface.
//
// Vertical profiles have the depths along the x axis. Horizontal ones
// have them along the y axis with the pial surface on top.
type DepthProfile struct {
	// Values holds the values at each depth of measure.DepthSeries.
	Values [][]float64

	CMap       string
	CMin, CMax float64

	Lim   figure.Interval // range of the value axis
	Label string          // title of the value axis

	Horizontal      bool
	HideNumerals    bool // no laminar numerals
	HideDepthLabels bool // no depth tick labels
	Colorbar        bool // add a colorbar next to (below) the panel
}

// Render implements the depth profile on p.
func (d DepthProfile) Render(p *figure.Panel) error {
	depths := measure.DepthSeries()
	if len(d.Values) != len(depths) {
		return errors.Errorf("depth profile: %d depths, want %d", len(d.Values), len(depths))
	}
	mapper, err := figure.NewColorMapper(d.CMap, d.CMin, d.CMax)
	if err != nil {
		return err
	}

	n := len(depths)
	single := true
	for _, v := range d.Values {
		if len(v) != 1 {
			single = false
		}
	}
	colors := make([]color.Color, n)
	for i, v := range d.Values {
		center := nanMedian(v)
		if single {
			center = nanMean(v)
		}
		colors[i] = mapper.Color(center)
	}

	posScale, valScale := figure.XScale, figure.YScale
	if d.Horizontal {
		posScale, valScale = valScale, posScale
		p.Scales[posScale].Inverted = true
	}
	posLim := figure.Interval{Min: -0.5, Max: float64(n) - 0.5}
	p.Scales[posScale].Fix(posLim.Min, posLim.Max)
	setLim(p, valScale, d.Lim)

	var geoms []figure.Geom

	// Shade every other layer, starting with layer II.
	bounds := append(append([]float64{posLim.Min}, LaminaBoundaries...), posLim.Max)
	var spans [][2]float64
	for i := 1; i+1 < len(bounds); i += 2 {
		spans = append(spans, [2]float64{bounds[i], bounds[i+1]})
	}
	shade := geom.BoxStyle{Fill: LaminaShade}
	gmwm := geom.VLine{
		X:       plotter.Values{float64(measure.GMWMIndex)},
		Default: draw.LineStyle{Color: color.Black, Width: 1, Dashes: geom.Dashed},
	}
	zero := geom.HLine{Y: plotter.Values{0}, Default: draw.LineStyle{Color: color.Black, Width: 1}}
	if d.Horizontal {
		geoms = append(geoms,
			geom.HSpan{Spans: spans, Default: shade},
			geom.HLine{Y: gmwm.X, Default: gmwm.Default},
			geom.VLine{X: zero.Y, Default: zero.Default},
		)
	} else {
		geoms = append(geoms, geom.VSpan{Spans: spans, Default: shade}, gmwm, zero)
	}

	if single {
		xy := make(plotter.XYs, n)
		for i, v := range d.Values {
			xy[i].X, xy[i].Y = float64(i), v[0]
			if d.Horizontal {
				xy[i].X, xy[i].Y = xy[i].Y, xy[i].X
			}
		}
		geoms = append(geoms, geom.Path{
			XY:      xy,
			Default: draw.LineStyle{Color: colors[0], Width: p.Style.GeomDefault.LineWidth},
		})
	} else {
		pos := make([]float64, n)
		for i := range pos {
			pos[i] = float64(i)
		}
		geoms = append(geoms, geom.Boxplot{
			Boxplot:    data.NewBoxes(pos, d.Values),
			Fills:      func(i int) color.Color { return colors[i] },
			Horizontal: d.Horizontal,
			Default:    geom.BoxStyle{Border: draw.LineStyle{Color: color.Black}},
		})
	}

	if !d.HideNumerals {
		geoms = append(geoms, laminaNumerals{bounds: bounds, horizontal: d.Horizontal})
	}

	labels := measure.DepthLabels()
	if d.HideDepthLabels {
		labels = make([]string, n)
	}
	p.Scales[posScale].Ticker = figure.LabelTicks(labels)
	if d.Horizontal {
		p.Scales[valScale].Ticker = figure.SciTicks{Ticker: figure.NBins{N: 4}, Lo: -5, Hi: 5}
		tl := &p.Style.YAxis.Tick.Label
		*tl = figure.FontSize(*tl, tl.Font.Size*0.7)
	} else {
		p.Scales[valScale].Ticker = figure.Sci(4)
		tl := &p.Style.XAxis.Tick.Label
		tl.Rotation = math.Pi / 2
		tl.XAlign, tl.YAlign = draw.XRight, draw.YCenter
	}
	p.Scales[valScale].Title = d.Label
	p.Despine = true

	if err := p.Add(geoms...); err != nil {
		return err
	}
	if d.Colorbar {
		return d.addColorbar(p)
	}
	return nil
}

// addColorbar places an unlabeled colorbar right of a vertical and
// below a horizontal profile.
func (d DepthProfile) addColorbar(p *figure.Panel) error {
	r := p.Rect
	cr := figure.Rect{Left: r.Right + 0.01, Right: r.Right + 0.02, Bottom: r.Bottom, Top: r.Top}
	if d.Horizontal {
		cr = figure.Rect{Left: r.Left, Right: r.Right, Bottom: r.Bottom - 0.045, Top: r.Bottom - 0.035}
		// Make room for the colorbar between tick labels and title.
		p.Style.XAxis.TitlePad += 50
	}
	lo, hi := d.Lim.Min, d.Lim.Max
	if !d.Lim.Valid() || d.Lim == (figure.Interval{}) {
		lo, hi = d.CMin, d.CMax
	}
	_, err := figure.AddColorbar(p.Figure(), cr, &figure.Colorbar{
		CMap:       d.CMap,
		CbarMin:    d.CMin,
		CbarMax:    d.CMax,
		YMin:       lo,
		YMax:       hi,
		Horizontal: d.Horizontal,
	})
	return err
}

// laminaNumerals writes the laminar numerals centered between the
// layer boundaries, close to the far end of the value axis.
type laminaNumerals struct {
	bounds     []float64
	horizontal bool
}

// Draw implements figure.Geom.
func (l laminaNumerals) Draw(p *figure.Panel) {
	xs, ys := p.Scales[figure.XScale], p.Scales[figure.YScale]
	var texts data.XYTexts
	for i, numeral := range figure.LaminaNumerals {
		if i+1 >= len(l.bounds) {
			break
		}
		mid := (l.bounds[i] + l.bounds[i+1]) / 2
		t := struct {
			X, Y float64
			Text string
		}{Text: numeral}
		if l.horizontal {
			t.X, t.Y = xs.Max-(xs.Max-xs.Min)*0.05, mid
		} else {
			t.X, t.Y = mid, ys.Max-(ys.Max-ys.Min)*0.05
		}
		texts = append(texts, t)
	}
	geom.Text{XYText: texts}.Draw(p)
}

// finite returns the non NaN values of v.
func finite(v []float64) []float64 {
	var ok []float64
	for _, x := range v {
		if !math.IsNaN(x) {
			ok = append(ok, x)
		}
	}
	return ok
}

// nanMedian is the median of the non NaN values of v, NaN if there are
// none.
func nanMedian(v []float64) float64 {
	return figure.Percentile(finite(v), 50)
}

// nanMean is the mean of the non NaN values of v, NaN if there are
// none.
func nanMean(v []float64) float64 {
	ok := finite(v)
	if len(ok) == 0 {
		return math.NaN()
	}
	return stat.Mean(ok, nil)
}
