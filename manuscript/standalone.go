package manuscript

import (
	"image/color"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/measure"
	"github.com/HappyPenguin/figure/render"
	"gonum.org/v1/plot/vg"
)

// Standalone panels are drawn on a 10 x 6 inch poster figure.
const (
	standaloneWidth  = 10 * vg.Inch
	standaloneHeight = 6 * vg.Inch
)

// SaveNetworkMeasures writes the global network measures of samples as
// a single panel figure to path.
func SaveNetworkMeasures(path string, samples map[string][]float64, c color.Color) error {
	m := render.NetworkMeasures{Samples: samples, Color: c}
	return figure.SaveStandalone(path, standaloneWidth, standaloneHeight, posterStyle(2), DefaultDPI, m.Render)
}

// SaveRichClub writes the (normalised) rich club curve of rc against
// the random graphs as a single panel figure to path.
func SaveRichClub(path string, rc []float64, random [][]float64, normalised bool, c color.Color) error {
	r := render.RichClub{RC: rc, Random: random, Normalised: normalised, Color: c}
	return figure.SaveStandalone(path, standaloneWidth, standaloneHeight, posterStyle(2), DefaultDPI, r.Render)
}

// SaveLaminarScatter writes y against x, one regression per von Economo
// class, as a single panel figure to path. Both measures must cover
// all regions of m.
func SaveLaminarScatter(path string, m *measure.Dict, x, y measure.Key) error {
	classes, err := m.Classes(measure.VonEconomo)
	if err != nil {
		return err
	}
	xs, err := m.Get(x)
	if err != nil {
		return err
	}
	ys, err := m.Get(y)
	if err != nil {
		return err
	}
	s := render.LaminarScatter{
		X: xs, Y: ys, Classes: classes,
		XLabel: measure.AxisLabel(x),
		YLabel: measure.AxisLabel(y),
	}
	return figure.SaveStandalone(path, 10*vg.Inch, 10*vg.Inch, posterStyle(2), DefaultDPI, s.Render)
}
