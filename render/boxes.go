package render

import (
	"image/color"
	"math"
	"strconv"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/data"
	"github.com/HappyPenguin/figure/geom"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg/draw"
)

// MissingValue marks regions without a value; it and everything below
// is left out of box plots.
const MissingValue = -99

// DefaultGroupLabel is the x axis title of box plots by laminar class.
const DefaultGroupLabel = "Cortical Laminar Pattern"

// Boxes draws one box plot of Values per class, from the smallest to
// the largest class. Classes in between without values keep their
// (empty) slot.
type Boxes struct {
	Classes []int
	Values  []float64

	XLabel, YLabel string // XLabel defaults to DefaultGroupLabel
	YLim           figure.Interval

	// Box colors: Laminar uses the laminar class colors, CMap samples
	// a colormap at the centers of n equal slices, otherwise Palette
	// (default "muted") is used.
	Laminar bool
	CMap    string
	Palette string

	// MaxColor and MinColor recolor the median line of the box with
	// the largest and the smallest median.
	MaxColor, MinColor color.Color

	Alpha  float64 // fill opacity, 1 if zero
	Hollow bool    // do not fill the boxes

	Sci   bool // scientific y tick labels
	NBins int  // y ticks, 4 if zero
}

// boxData returns the classes from the smallest to the largest and the
// values of each.
func (b Boxes) boxData() ([]int, [][]float64, error) {
	if len(b.Classes) != len(b.Values) {
		return nil, nil, errors.Errorf("boxes: %d classes for %d values", len(b.Classes), len(b.Values))
	}
	if len(b.Classes) == 0 {
		return nil, nil, errors.New("boxes: no data")
	}
	cat := make([]float64, len(b.Classes))
	for i, c := range b.Classes {
		cat[i] = float64(c)
	}
	g := figure.GroupBy(cat)
	levels := g.Range()
	classes := make([]int, len(levels))
	groups := make([][]float64, len(levels))
	for i, l := range levels {
		classes[i] = int(l)
		for _, j := range g.Index[l] {
			v := b.Values[j]
			if math.IsNaN(v) || v <= MissingValue {
				continue
			}
			groups[i] = append(groups[i], v)
		}
	}
	return classes, groups, nil
}

// colors returns the fill color of each of the n classes.
func (b Boxes) colors(classes []int) ([]color.Color, error) {
	n := len(classes)
	cs := make([]color.Color, n)
	switch {
	case b.Laminar:
		for i, c := range classes {
			col, ok := figure.LaminarColor(c)
			if !ok {
				return nil, errors.Errorf("boxes: no laminar color for class %d", c)
			}
			cs[i] = col
		}
	case b.CMap != "":
		m, err := figure.NewColorMapper(b.CMap, 0, 1)
		if err != nil {
			return nil, err
		}
		for i := range cs {
			cs[i] = m.Sample((float64(i) + 0.5) / float64(n))
		}
	default:
		name := b.Palette
		if name == "" {
			name = "muted"
		}
		return figure.NamedPalette(name, n)
	}
	return cs, nil
}

// Render implements the box plot on p.
func (b Boxes) Render(p *figure.Panel) error {
	classes, groups, err := b.boxData()
	if err != nil {
		return err
	}
	colors, err := b.colors(classes)
	if err != nil {
		return err
	}

	pos := make([]float64, len(classes))
	labels := make([]string, len(classes))
	for i, c := range classes {
		pos[i] = float64(i)
		labels[i] = strconv.Itoa(c)
	}
	boxes := data.NewBoxes(pos, groups)

	alpha := b.Alpha
	if alpha == 0 {
		alpha = 1
	}
	bp := geom.Boxplot{
		Boxplot: boxes,
		Medians: medianColors(boxes.Medians(), b.MaxColor, b.MinColor),
		Default: geom.BoxStyle{Border: draw.LineStyle{Color: color.Black}},
	}
	if !b.Hollow {
		bp.Fills = func(i int) color.Color { return colors[i] }
		bp.Alpha = func(int) float64 { return alpha }
	}

	setLim(p, figure.YScale, b.YLim)
	p.SetXLim(-0.5, float64(len(classes))-0.5)
	nbins := b.NBins
	if nbins == 0 {
		nbins = 4
	}
	p.Scales[figure.XScale].Ticker = figure.LabelTicks(labels)
	if b.Sci {
		p.Scales[figure.YScale].Ticker = figure.Sci(nbins)
	} else {
		p.Scales[figure.YScale].Ticker = figure.NBins{N: nbins}
	}
	xl := b.XLabel
	if xl == "" {
		xl = DefaultGroupLabel
	}
	p.SetXLabel(xl)
	p.SetYLabel(b.YLabel)

	return p.Add(bp, dashedZero())
}

// medianColors returns the color of each median line: black, except for
// the largest median (maxC) and the smallest median (minC), the latter
// winning if both coincide. Nil colors do not highlight.
func medianColors(medians []float64, maxC, minC color.Color) geom.ColorFunc {
	if maxC == nil && minC == nil {
		return nil
	}
	iv := figure.Interval{Min: math.NaN(), Max: math.NaN()}
	iv.Update(medians...)
	return func(i int) color.Color {
		m := medians[i]
		switch {
		case minC != nil && m == iv.Min:
			return minC
		case maxC != nil && m == iv.Max:
			return maxC
		}
		return color.Black
	}
}
