package geom

import (
	"image/color"
	"math"

	"github.com/HappyPenguin/figure"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultConfidence is the confidence level of regression bands.
const DefaultConfidence = 0.95

// Fit is an ordinary least squares fit y = Alpha + Beta*x.
type Fit struct {
	Alpha, Beta float64
	N           int

	meanX, sxx, s float64
	t             float64
}

// LinearFit fits a straight line to the points of xy. Points with a
// NaN coordinate are ignored. At least three points with distinct x
// values are needed.
func LinearFit(xy plotter.XYer, level float64) (*Fit, error) {
	var xs, ys []float64
	for i := 0; i < xy.Len(); i++ {
		x, y := xy.XY(i)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	n := len(xs)
	if n < 3 {
		return nil, errors.Errorf("regression needs 3 points, got %d", n)
	}
	mx := stat.Mean(xs, nil)
	sxx := 0.0
	for _, x := range xs {
		sxx += (x - mx) * (x - mx)
	}
	if sxx == 0 {
		return nil, errors.New("regression on constant x")
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	ssr := 0.0
	for i := range xs {
		r := ys[i] - (alpha + beta*xs[i])
		ssr += r * r
	}
	dof := float64(n - 2)
	if level <= 0 || level >= 1 {
		level = DefaultConfidence
	}
	st := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
	return &Fit{
		Alpha: alpha,
		Beta:  beta,
		N:     n,
		meanX: mx,
		sxx:   sxx,
		s:     math.Sqrt(ssr / dof),
		t:     st.Quantile(1 - (1-level)/2),
	}, nil
}

// At returns the fitted value at x.
func (f *Fit) At(x float64) float64 { return f.Alpha + f.Beta*x }

// Band returns the confidence interval of the fitted mean at x.
func (f *Fit) Band(x float64) (lo, hi float64) {
	d := x - f.meanX
	se := f.s * math.Sqrt(1/float64(f.N)+d*d/f.sxx)
	y := f.At(x)
	return y - f.t*se, y + f.t*se
}

// Regression draws the least squares line through XY and its
// confidence band across the full width of the panel.
type Regression struct {
	XY plotter.XYer

	Level   float64 // defaults to DefaultConfidence
	Samples int     // points along the band, defaults to 100

	Default draw.LineStyle
	Band    color.Color // nil draws no band
}

// Draw implements figure.Geom.
func (r Regression) Draw(panel *figure.Panel) {
	fit, err := LinearFit(r.XY, r.Level)
	if err != nil {
		panel.Warn("%v", err)
		return
	}
	n := r.Samples
	if n < 2 {
		n = 100
	}
	xs := panel.Scales[figure.XScale]
	step := (xs.Max - xs.Min) / float64(n-1)

	line := make([]vg.Point, n)
	upper := make([]vg.Point, n)
	lower := make([]vg.Point, n)
	for i := 0; i < n; i++ {
		x := xs.Min + float64(i)*step
		lo, hi := fit.Band(x)
		line[i] = panel.Map(x, fit.At(x))
		lower[i] = panel.Map(x, lo)
		upper[n-1-i] = panel.Map(x, hi)
	}

	canvas := panel.Canvas
	if r.Band != nil {
		poly := append(lower, upper...)
		canvas.FillPolygon(r.Band, canvas.ClipPolygonXY(poly))
	}
	sty := lineStyle(r.Default, panel)
	if r.Default.Color == nil {
		sty.Color = panel.Style.GeomDefault.Color
	}
	canvas.StrokeLines(sty, canvas.ClipLinesXY(line)...)
}

// AllDataRanges implements figure.AllDataRanger.
func (r Regression) AllDataRanges() figure.DataRanges {
	return Point{XY: r.XY}.AllDataRanges()
}
