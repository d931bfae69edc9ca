// Package data contains various data interfaces and prototypical
// implementations.
package data

import (
	"math"
	"sort"

	"github.com/HappyPenguin/figure"
)

// XYUVer wraps the Len and XYUV methods.
type XYUVer interface {
	// Len returns the number of x, y, u, v quadruples.
	Len() int

	// XYUV returns an x, y, u, v quadruple.
	XYUV(int) (x, y, u, v float64)
}

// XYUVRange returns the minimum and maximum x, y, u and v values.
// Quadruples with a NaN component are skipped.
func XYUVRange(xyuvs XYUVer) (xmin, xmax, ymin, ymax, umin, umax, vmin, vmax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	umin, umax = math.Inf(1), math.Inf(-1)
	vmin, vmax = math.Inf(1), math.Inf(-1)
	for i := 0; i < xyuvs.Len(); i++ {
		x, y, u, v := xyuvs.XYUV(i)
		if math.IsNaN(x + y + u + v) {
			continue
		}
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
		umin, umax = math.Min(umin, u), math.Max(umax, u)
		vmin, vmax = math.Min(vmin, v), math.Max(vmax, v)
	}
	return xmin, xmax, ymin, ymax, umin, umax, vmin, vmax
}

// XYUVs implements the XYUVer interface.
type XYUVs []struct{ X, Y, U, V float64 }

func (d XYUVs) Len() int                        { return len(d) }
func (d XYUVs) XYUV(i int) (x, y, u, v float64) { return d[i].X, d[i].Y, d[i].U, d[i].V }

// XYTexter wraps the Len and XYText methods.
type XYTexter interface {
	Len() int

	// XYText returns the position and the text of label i.
	XYText(int) (x, y float64, text string)
}

// XYTexts implements the XYTexter interface.
type XYTexts []struct {
	X, Y float64
	Text string
}

func (d XYTexts) Len() int                              { return len(d) }
func (d XYTexts) XYText(i int) (x, y float64, t string) { return d[i].X, d[i].Y, d[i].Text }

// ----------------------------------------------------------------------------
// Box plots

// Boxplotter wraps the Len and Boxplot methods.
type Boxplotter interface {
	Len() int

	// Boxplot returns the position x of box i, its whisker ends min and
	// max, its quartiles and median and its outliers.
	Boxplot(i int) (x, min, q1, median, q3, max float64, out []float64)
}

// Box holds the statistics of one box.
type Box struct {
	X                        float64
	Min, Q1, Median, Q3, Max float64
	Outliers                 []float64
	N                        int
}

// Boxes implements the Boxplotter interface.
type Boxes []Box

func (b Boxes) Len() int { return len(b) }

func (b Boxes) Boxplot(i int) (x, min, q1, median, q3, max float64, out []float64) {
	return b[i].X, b[i].Min, b[i].Q1, b[i].Median, b[i].Q3, b[i].Max, b[i].Outliers
}

// Medians returns the medians of all boxes.
func (b Boxes) Medians() []float64 {
	m := make([]float64, len(b))
	for i := range b {
		m[i] = b[i].Median
	}
	return m
}

// WhiskerFactor is the multiple of the interquartile range the whiskers
// may extend beyond the box.
const WhiskerFactor = 1.5

// NewBox computes the Tukey box of values placed at x: quartiles by
// linear interpolation, whiskers at the most extreme values within
// WhiskerFactor interquartile ranges of the box, everything beyond is
// an outlier. NaN values are ignored; a box of no values has NaN
// statistics.
func NewBox(x float64, values []float64) Box {
	var v []float64
	for _, y := range values {
		if !math.IsNaN(y) {
			v = append(v, y)
		}
	}
	b := Box{X: x, N: len(v)}
	if len(v) == 0 {
		nan := math.NaN()
		b.Min, b.Q1, b.Median, b.Q3, b.Max = nan, nan, nan, nan, nan
		return b
	}
	sort.Float64s(v)
	b.Q1 = figure.Percentile(v, 25)
	b.Median = figure.Percentile(v, 50)
	b.Q3 = figure.Percentile(v, 75)

	iqr := b.Q3 - b.Q1
	lo, hi := b.Q1-WhiskerFactor*iqr, b.Q3+WhiskerFactor*iqr
	b.Min, b.Max = b.Q1, b.Q3
	for _, y := range v {
		if y < lo || y > hi {
			b.Outliers = append(b.Outliers, y)
			continue
		}
		b.Min = math.Min(b.Min, y)
		b.Max = math.Max(b.Max, y)
	}
	return b
}

// NewBoxes returns one box per group, the i-th placed at xs[i].
func NewBoxes(xs []float64, groups [][]float64) Boxes {
	bs := make(Boxes, len(groups))
	for i, g := range groups {
		bs[i] = NewBox(xs[i], g)
	}
	return bs
}
