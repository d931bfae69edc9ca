package figure

import (
	"fmt"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	XScale int = iota
	YScale
	ColorScale
	SizeScale
	numScales
)

// AllDataRanger is implemented by geoms which contribute to more than
// the x and y scale.
type AllDataRanger interface {
	// AllDataRanges returns the ranges covered by the data for all
	// used scales.
	AllDataRanges() DataRanges
}

// DataRanges contains all the ranges covered by some data.
type DataRanges [numScales]Interval

// NewDataRanges returns a DataRanges with all intervals unset, i.e. [NaN,NaN].
func NewDataRanges() DataRanges {
	dr := DataRanges{}
	for i := range dr {
		dr[i] = unsetInterval()
	}
	return dr
}

// A Geom draws data onto a panel.
type Geom interface {
	Draw(p *Panel)
}

// A Checker is a Geom which can fail before drawing, e.g. because its
// input file is missing. A failing geom blanks its panel.
type Checker interface {
	Check() error
}

// ----------------------------------------------------------------------------
// Panel

// A Panel is one set of axes on a Figure.
type Panel struct {
	Title string
	Geoms []Geom

	// Canvas is the data area of the panel. It is valid only while
	// the geoms are drawn.
	Canvas draw.Canvas

	Scales [numScales]*Scale

	// ColorMap maps the ColorScale to colors. Geoms which map values
	// to colors need it.
	ColorMap *ColorMapper

	// SizeRange is the radius range the SizeScale maps onto.
	SizeRange Interval

	// Style is this panel's copy of the figure style.
	Style Style

	AxisOff    bool // no spines, ticks or titles
	Despine    bool // draw only the left and bottom spine
	YAxisRight bool // y ticks, labels and title on the right side

	Rect Rect // position in figure coordinates

	fig *Figure
	err error
}

func newPanel(f *Figure, r Rect) *Panel {
	p := &Panel{
		Style:     f.Style,
		Rect:      r,
		SizeRange: Interval{0, 10},
		fig:       f,
	}
	for i := range p.Scales {
		p.Scales[i] = NewScale()
	}
	p.Scales[SizeScale].Trans = SqrtTransFix0
	p.Scales[SizeScale].Expand.Relative = 0
	p.Scales[ColorScale].Expand.Relative = 0
	return p
}

// Add adds geoms to p.
func (p *Panel) Add(geoms ...Geom) error {
	if p.fig.closed {
		return ErrClosed
	}
	p.Geoms = append(p.Geoms, geoms...)
	return nil
}

// Fail marks p as failed: it is drawn blank and err is recorded as a
// warning of the figure. Only the first error is kept.
func (p *Panel) Fail(err error) {
	if err == nil || p.err != nil {
		return
	}
	p.err = err
}

// Err returns the error p failed with, if any.
func (p *Panel) Err() error { return p.err }

// Figure returns the figure p belongs to.
func (p *Panel) Figure() *Figure { return p.fig }

// SetXLim fixes the x scale to [min, max]. NaN ends autoscale.
func (p *Panel) SetXLim(min, max float64) { p.Scales[XScale].Fix(min, max) }

// SetYLim fixes the y scale to [min, max]. NaN ends autoscale.
func (p *Panel) SetYLim(min, max float64) { p.Scales[YScale].Fix(min, max) }

// SetXLabel sets the title of the x axis.
func (p *Panel) SetXLabel(s string) { p.Scales[XScale].Title = s }

// SetYLabel sets the title of the y axis.
func (p *Panel) SetYLabel(s string) { p.Scales[YScale].Title = s }

// Map maps the data coordinate (x,y) to a canvas point. Points outside
// the scales end up outside the canvas.
func (p *Panel) Map(x, y float64) vg.Point {
	xu := p.Scales[XScale].DataToUnit(x)
	yu := p.Scales[YScale].DataToUnit(y)
	return vg.Point{
		X: p.Canvas.Min.X + vg.Length(xu)*(p.Canvas.Max.X-p.Canvas.Min.X),
		Y: p.Canvas.Min.Y + vg.Length(yu)*(p.Canvas.Max.Y-p.Canvas.Min.Y),
	}
}

// MapXY maps the data coordinate (x,y) to a canvas point. It returns
// false if (x,y) is NaN or lies outside of the panel's scales.
func (p *Panel) MapXY(x, y float64) (vg.Point, bool) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return vg.Point{}, false
	}
	if !p.Scales[XScale].InRange(x) || !p.Scales[YScale].InRange(y) {
		return vg.Point{}, false
	}
	return p.Map(x, y), true
}

// MapColor maps v through p's ColorMap. Without a ColorMap all values
// get the default geom color.
func (p *Panel) MapColor(v float64) color.Color {
	if p.ColorMap == nil {
		return p.Style.GeomDefault.Color
	}
	return p.ColorMap.Color(v)
}

// MapSize maps v on the size scale to a glyph radius in SizeRange.
func (p *Panel) MapSize(v float64) vg.Length {
	s := p.Scales[SizeScale]
	if math.IsNaN(v) || !s.Valid() {
		return 0
	}
	return vg.Length(s.Trans.Trans(s.Interval, p.SizeRange, v))
}

// DPI returns the resolution the figure is rendered at.
func (p *Panel) DPI() float64 { return p.fig.dpi }

// Warn records a non-fatal problem of p as a figure warning.
func (p *Panel) Warn(format string, args ...interface{}) {
	p.fig.warn(errors.Errorf("panel %q: "+format, append([]interface{}{p.Title}, args...)...))
}

// learnDataRange collects the ranges of all geoms into p's scales.
func (p *Panel) learnDataRange() {
	for _, g := range p.Geoms {
		if adr, ok := g.(AllDataRanger); ok {
			dr := adr.AllDataRanges()
			for i := range dr {
				p.Scales[i].UpdateData(dr[i])
			}
		} else if sdr, ok := g.(plot.DataRanger); ok {
			xmin, xmax, ymin, ymax := sdr.DataRange()
			p.Scales[XScale].UpdateData(Interval{xmin, xmax})
			p.Scales[YScale].UpdateData(Interval{ymin, ymax})
		}
	}
}

func (p *Panel) debugScales(info string) {
	if !Debug {
		return
	}
	debugf("%s %q", info, p.Title)
	for i, s := range p.Scales {
		debugf("    %d: %s", i, s)
	}
}

// draw renders p into the cell c. Failures blank the panel and are
// recorded as warnings.
func (p *Panel) draw(c draw.Canvas) {
	for _, g := range p.Geoms {
		if ch, ok := g.(Checker); ok {
			p.Fail(ch.Check())
		}
	}
	if p.err != nil {
		p.fig.warn(errors.Wrapf(p.err, "panel %q left blank", p.Title))
		return
	}

	p.learnDataRange()
	p.debugScales("After learning data ranges")
	for _, s := range p.Scales {
		s.autoscale()
	}
	p.debugScales("After autoscaling")
	p.Scales[XScale].deDegenerate()
	p.Scales[YScale].deDegenerate()

	p.Canvas = c
	for _, g := range p.Geoms {
		p.drawGeom(g)
	}
	if !p.AxisOff {
		p.drawAxes()
	}
	if p.Title != "" {
		pt := vg.Point{X: c.Center().X, Y: c.Max.Y + p.Style.TitlePad}
		c.FillText(p.Style.Title, pt, p.Title)
	}
}

func (p *Panel) drawGeom(g Geom) {
	defer func() {
		if r := recover(); r != nil {
			p.fig.warn(errors.Errorf("panel %q: geom %T: %v", p.Title, g, r))
		}
	}()
	g.Draw(p)
}

// drawAxes draws spines, ticks, tick labels and axis titles.
func (p *Panel) drawAxes() {
	c := p.Canvas
	sty := p.Style
	xs, ys := p.Scales[XScale], p.Scales[YScale]

	c.StrokeLine2(sty.Spine, c.Min.X, c.Min.Y, c.Max.X, c.Min.Y)
	c.StrokeLine2(sty.Spine, c.Min.X, c.Min.Y, c.Min.X, c.Max.Y)
	if !p.Despine {
		c.StrokeLine2(sty.Spine, c.Min.X, c.Max.Y, c.Max.X, c.Max.Y)
		c.StrokeLine2(sty.Spine, c.Max.X, c.Min.Y, c.Max.X, c.Max.Y)
	}

	// X ticks, labels and title.
	xa := sty.XAxis
	labelHeight := vg.Length(0)
	if xs.Ticker != nil {
		for _, tick := range xs.Ticker.Ticks(xs.Min, xs.Max) {
			if !xs.InRange(tick.Value) {
				continue
			}
			x := p.Map(tick.Value, ys.Min).X
			length := xa.Tick.Length
			if tick.IsMinor() {
				length /= 2
			}
			c.StrokeLine2(xa.Tick.LineStyle, x, c.Min.Y, x, c.Min.Y-length)
			if tick.IsMinor() || tick.Label == "" {
				continue
			}
			pt := vg.Point{X: x, Y: c.Min.Y - length - xa.Tick.Pad}
			c.FillText(xa.Tick.Label, pt, tick.Label)
			labelHeight = vg.Length(math.Max(float64(labelHeight), float64(textHeight(xa.Tick.Label, tick.Label))))
		}
		if ot, ok := xs.Ticker.(OffsetTicker); ok {
			if off := ot.Offset(xs.Min, xs.Max); off != "" {
				os := sty.Offset
				os.XAlign, os.YAlign = draw.XRight, draw.YTop
				pt := vg.Point{X: c.Max.X, Y: c.Min.Y - xa.Tick.Length - xa.Tick.Pad - labelHeight}
				c.FillText(os, pt, off)
				labelHeight += os.Height(off)
			}
		}
	}
	if xs.Title != "" {
		y := c.Min.Y - xa.Tick.Length - xa.Tick.Pad - labelHeight - xa.TitlePad
		c.FillText(xa.Title, vg.Point{X: c.Center().X, Y: y}, xs.Title)
	}

	// Y ticks, labels and title.
	ya := sty.YAxis
	x0, dir := c.Min.X, vg.Length(-1)
	if p.YAxisRight {
		x0, dir = c.Max.X, 1
		ya.Tick.Label.XAlign = draw.XLeft
		ya.Title.Rotation = -ya.Title.Rotation
	}
	labelWidth := vg.Length(0)
	if ys.Ticker != nil {
		for _, tick := range ys.Ticker.Ticks(ys.Min, ys.Max) {
			if !ys.InRange(tick.Value) {
				continue
			}
			y := p.Map(xs.Min, tick.Value).Y
			length := ya.Tick.Length
			if tick.IsMinor() {
				length /= 2
			}
			c.StrokeLine2(ya.Tick.LineStyle, x0+dir*length, y, x0, y)
			if tick.IsMinor() || tick.Label == "" {
				continue
			}
			pt := vg.Point{X: x0 + dir*(length+ya.Tick.Pad), Y: y}
			c.FillText(ya.Tick.Label, pt, tick.Label)
			labelWidth = vg.Length(math.Max(float64(labelWidth), float64(textWidth(ya.Tick.Label, tick.Label))))
		}
		if ot, ok := ys.Ticker.(OffsetTicker); ok {
			if off := ot.Offset(ys.Min, ys.Max); off != "" {
				pt := vg.Point{X: c.Min.X, Y: c.Max.Y + sty.Offset.Font.Size/4}
				c.FillText(sty.Offset, pt, off)
			}
		}
	}
	if ys.Title != "" {
		x := x0 + dir*(ya.Tick.Length+ya.Tick.Pad+labelWidth+ya.TitlePad)
		c.FillText(ya.Title, vg.Point{X: x, Y: c.Center().Y}, ys.Title)
	}
}

// textWidth and textHeight return the extent of txt in the rotated
// frame of the canvas.
func textWidth(ts draw.TextStyle, txt string) vg.Length {
	w, h := ts.Width(txt), ts.Height(txt)
	s, co := math.Abs(math.Sin(ts.Rotation)), math.Abs(math.Cos(ts.Rotation))
	return vg.Length(co*float64(w) + s*float64(h))
}

func textHeight(ts draw.TextStyle, txt string) vg.Length {
	w, h := ts.Width(txt), ts.Height(txt)
	s, co := math.Abs(math.Sin(ts.Rotation)), math.Abs(math.Cos(ts.Rotation))
	return vg.Length(s*float64(w) + co*float64(h))
}

func (p *Panel) String() string {
	return fmt.Sprintf("Panel %q at %v with %d geoms", p.Title, p.Rect, len(p.Geoms))
}
