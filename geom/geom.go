// Package geom provides basic geometric objects to display data in a
// panel.
//
// The overall concept is loosely based in ggplot2's geoms. Each geom has
// some required aesthetics, typically an (x,y) coordinate and may provide
// the ability to optionally map other aesthetics like line or fill color
// or size.
//
// The required aesthetics are a field like XY in the various geoms while the
// optional aesthetics are mapped through optional (Discrete)Aesthetics
// functions which provide a (discrete) value for a data point, or set
// directly through Colors and Glyph functions.
//
// The different geoms have singular names like Rectangle or Point even if
// they may draw several rectangles or points to match the naming in ggplot2.
package geom

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/data"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Point

// Point draws points / symbols.
type Point struct {
	XY plotter.XYer

	Alpha  Aesthetic
	Color  Aesthetic
	Colors ColorFunc
	Shape  DiscreteAesthetic
	Glyph  GlyphFunc
	Size   Aesthetic

	Default draw.GlyphStyle
}

// Draw implements figure.Geom.
func (p Point) Draw(panel *figure.Panel) {
	baseColor := p.Default.Color
	if baseColor == nil {
		baseColor = panel.Style.GeomDefault.Color
	}

	size := p.Default.Radius
	if size == 0 {
		size = panel.Style.GeomDefault.Size
	}

	shape := p.Default.Shape
	if shape == nil {
		shape = draw.GlyphDrawer(draw.CircleGlyph{})
	}

	for i := 0; i < p.XY.Len(); i++ {
		x, y := p.XY.XY(i)
		center, ok := panel.MapXY(x, y)
		if !ok {
			continue
		}

		col, ok := determineColor(baseColor, panel, i, p.Colors, p.Color, p.Alpha)
		if !ok {
			continue
		}

		switch {
		case p.Glyph != nil:
			shape = p.Glyph(i)
		case p.Shape != nil:
			shape = plotutil.Shape(p.Shape(i))
		}

		if p.Size != nil {
			size = panel.MapSize(p.Size(i))
			if size == 0 {
				continue
			}
		}

		sty := draw.GlyphStyle{
			Color:  col,
			Radius: size,
			Shape:  shape,
		}
		panel.Canvas.DrawGlyph(sty, center)
	}
}

// AllDataRanges implements figure.AllDataRanger.
func (p Point) AllDataRanges() figure.DataRanges {
	dr := figure.NewDataRanges()
	for i := 0; i < p.XY.Len(); i++ {
		x, y := p.XY.XY(i)
		dr[figure.XScale].Update(x)
		dr[figure.YScale].Update(y)
	}

	UpdateAestheticsRanges(&dr, p.XY.Len(), p.Color, nil, p.Size)

	return dr
}

// ----------------------------------------------------------------------------
// Rectangle

// Rectangle draws rectangles.
// The coordinates are the outside coordinates, i.e. if the border is drawn for
// the rectangle then this border is drawn inside the rectangle given by the
// coordinates.
type Rectangle struct {
	XYUV data.XYUVer

	Alpha Aesthetic
	Color Aesthetic
	Fill  Aesthetic
	Fills ColorFunc

	Default BoxStyle
}

// clipRect clips rect to canvas. The returned rectangle is in the canonical form.
func clipRect(rect vg.Rectangle, canvas draw.Canvas) vg.Rectangle {
	rect = CanonicRectangle(rect)
	limit := CanonicRectangle(canvas.Rectangle)

	if rect.Min.X < limit.Min.X {
		rect.Min.X = limit.Min.X
	}
	if rect.Min.Y < limit.Min.Y {
		rect.Min.Y = limit.Min.Y
	}
	if rect.Max.X > limit.Max.X {
		rect.Max.X = limit.Max.X
	}
	if rect.Max.Y > limit.Max.Y {
		rect.Max.Y = limit.Max.Y
	}
	return rect
}

// Draw implements figure.Geom.
func (r Rectangle) Draw(panel *figure.Panel) {
	fill := r.Default.Fill
	border := r.Default.Border

	for i := 0; i < r.XYUV.Len(); i++ {
		x, y, u, v := r.XYUV.XYUV(i)
		if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(u) || math.IsNaN(v) {
			continue
		}
		rect := vg.Rectangle{Min: panel.Map(x, y), Max: panel.Map(u, v)}
		rect = clipRect(rect, panel.Canvas)
		if rect.Min.X >= rect.Max.X || rect.Min.Y >= rect.Max.Y {
			continue // completely outside
		}

		if fillCol, ok := determineColor(fill, panel, i, r.Fills, r.Fill, r.Alpha); ok {
			panel.Canvas.SetColor(fillCol)
			panel.Canvas.Fill(rect.Path())
		}
		if border.Width <= 0 {
			continue
		}

		if borderCol, ok := determineColor(border.Color, panel, i, nil, r.Color, nil); ok {
			w := 0.499 * border.Width
			rect.Min.X += w
			rect.Min.Y += w
			rect.Max.X -= w
			rect.Max.Y -= w
			panel.Canvas.SetColor(borderCol)
			panel.Canvas.SetLineWidth(border.Width)
			panel.Canvas.SetLineDash(border.Dashes, border.DashOffs)
			panel.Canvas.Stroke(rect.Path())
		}
	}
}

// AllDataRanges implements figure.AllDataRanger.
func (r Rectangle) AllDataRanges() figure.DataRanges {
	dr := figure.NewDataRanges()
	xmin, xmax, ymin, ymax, umin, umax, vmin, vmax := data.XYUVRange(r.XYUV)
	if r.XYUV.Len() > 0 && xmin <= xmax {
		dr[figure.XScale].Update(xmin, xmax, umin, umax)
		dr[figure.YScale].Update(ymin, ymax, vmin, vmax)
	}
	UpdateAestheticsRanges(&dr, r.XYUV.Len(), r.Color, r.Fill, nil)
	return dr
}

// ----------------------------------------------------------------------------
// HSpan and VSpan

// HSpan shades the full width of the panel between pairs of y values.
type HSpan struct {
	Spans [][2]float64

	Default BoxStyle
}

// Draw implements figure.Geom.
func (h HSpan) Draw(panel *figure.Panel) {
	xs := panel.Scales[figure.XScale]
	xyuv := make(data.XYUVs, len(h.Spans))
	for i, s := range h.Spans {
		xyuv[i].X, xyuv[i].Y, xyuv[i].U, xyuv[i].V = xs.Min, s[0], xs.Max, s[1]
	}
	Rectangle{XYUV: xyuv, Default: h.Default}.Draw(panel)
}

// VSpan shades the full height of the panel between pairs of x values.
type VSpan struct {
	Spans [][2]float64

	Default BoxStyle
}

// Draw implements figure.Geom.
func (v VSpan) Draw(panel *figure.Panel) {
	ys := panel.Scales[figure.YScale]
	xyuv := make(data.XYUVs, len(v.Spans))
	for i, s := range v.Spans {
		xyuv[i].X, xyuv[i].Y, xyuv[i].U, xyuv[i].V = s[0], ys.Min, s[1], ys.Max
	}
	Rectangle{XYUV: xyuv, Default: v.Default}.Draw(panel)
}

// ----------------------------------------------------------------------------
// Bar

// Bar draws rectangles standing/hanging from y=0. Bars sharing an x
// value are dodged, i.e. placed side by side. Err, if set, draws
// whiskers of ± Err(i) on top of each bar, colored by Whiskers if set.
type Bar struct {
	XY  plotter.XYer
	Err plotter.Valuer

	Alpha    Aesthetic
	Color    Aesthetic
	Fill     Aesthetic
	Fills    ColorFunc
	Whiskers ColorFunc

	GGap float64 // Gap between groups as fraction of sample distance.
	BGap float64 // Gap inside a group as fraction of sample distance.

	Default BoxStyle
	Whisker draw.LineStyle
}

// Draw implements figure.Geom.
func (b Bar) Draw(p *figure.Panel) {
	rect := b.rects()
	rect.Default = b.Default
	rect.Draw(p)
	if b.Err == nil {
		return
	}
	g := b.groups()
	ws := ErrorBar{XY: b.XY, Err: b.Err, Colors: b.Whiskers, Default: b.Whisker}
	ws.Cap = func(i int) float64 {
		x, _ := b.XY.XY(i)
		_, hw := g.Width(x, i)
		return hw / 2
	}
	ws.X = func(i int) float64 {
		x, _ := b.XY.XY(i)
		c, _ := g.Width(x, i)
		return c
	}
	ws.Draw(p)
}

// AllDataRanges implements figure.AllDataRanger.
func (b Bar) AllDataRanges() figure.DataRanges {
	rect := b.rects()
	dr := rect.AllDataRanges()
	if b.Err != nil {
		for i := 0; i < b.XY.Len(); i++ {
			_, y := b.XY.XY(i)
			e := b.Err.Value(i)
			dr[figure.YScale].Update(y-e, y+e)
		}
	}
	return dr
}

func (b Bar) rects() Rectangle {
	XYUV := make(data.XYUVs, b.XY.Len())

	g := b.groups()
	for _, x := range g.Xs() {
		for _, i := range g.Group[x] {
			center, halfwidth := g.Width(x, i)
			_, y := b.XY.XY(i)
			XYUV[i].X, XYUV[i].Y = center-halfwidth, 0
			XYUV[i].U, XYUV[i].V = center+halfwidth, y
		}
	}

	rect := Rectangle{XYUV: XYUV}
	CopyAesthetics(&rect, b, nil)
	return rect
}

func (b Bar) groups() *BarGroups {
	g := NewBarGroups("dodge", b.GGap, b.BGap, true)
	for i := 0; i < b.XY.Len(); i++ {
		x, _ := b.XY.XY(i)
		g.Record(x, i)
	}
	return g
}

// ----------------------------------------------------------------------------
// BarGroups helps determining bar sizes for Bar or Boxplots

// BarGroups collects the bars (or boxes) drawn at the same x position.
type BarGroups struct {
	Group    map[float64][]int
	Position string  // "dodge" or something else
	Ggap     float64 // between groups
	Dgap     float64 // between bars inside a group if dodged
	Same     bool    // Same width for all bars?

	xs []float64
	md float64
	lg int
}

// NewBarGroups creates a BarGroups for dodged bar positioning with
// sensible gaps between bars.
func NewBarGroups(position string, groupGap, barGap float64, sameWidth bool) *BarGroups {
	if groupGap == 0 {
		groupGap = 0.2
	}
	return &BarGroups{
		Group:    make(map[float64][]int),
		Position: position,
		Ggap:     groupGap,
		Dgap:     barGap,
		Same:     sameWidth,
	}
}

// Record the point i with the given x coordinate.
func (bg *BarGroups) Record(x float64, i int) {
	bg.Group[x] = append(bg.Group[x], i)
	bg.xs = nil
}

// Width returns the center and the halfwidth for the bar i at x.
func (bg *BarGroups) Width(x float64, i int) (center float64, halfwidth float64) {
	minDelta := bg.MinDelta()
	nonGapWidth := minDelta * (1 - bg.Ggap)

	if bg.Position != "dodge" {
		return x, nonGapWidth / 2
	}

	n := len(bg.Group[x])
	if bg.Same {
		n = bg.MaxGroupSize()
	}
	if n == 0 {
		panic(fmt.Sprintf("No data at %g", x))
	}
	halfwidth = nonGapWidth / float64(2*n)

	g := -1
	for j, k := range bg.Group[x] {
		if k == i {
			g = j
			break
		}
	}
	if g == -1 {
		panic(fmt.Sprintf("No point %d at %g", i, x))
	}

	center = x
	m := len(bg.Group[x])
	center += float64(2*g-m+1) * halfwidth

	halfwidth -= minDelta * bg.Dgap

	return center, halfwidth
}

// Xs returns the sorted list of recorded x values.
func (bg *BarGroups) Xs() []float64 {
	bg.recalc()
	return bg.xs
}

// MinDelta returns the smallest difference between recorded x-values.
func (bg *BarGroups) MinDelta() float64 {
	bg.recalc()
	return bg.md
}

// MaxGroupSize determines the maximum number of values recorded per x-values.
func (bg *BarGroups) MaxGroupSize() int {
	bg.recalc()
	return bg.lg
}

// XRange returns the outer edges of the leftmost and rightmost bar.
func (bg *BarGroups) XRange() (xmin float64, xmax float64) {
	bg.recalc()
	if len(bg.xs) == 0 {
		return math.NaN(), math.NaN()
	}

	left, right := bg.xs[0], bg.xs[len(bg.xs)-1]

	li := bg.Group[left][0]
	c, hw := bg.Width(left, li)
	xmin = c - hw

	rg := bg.Group[right]
	ri := rg[len(rg)-1]
	c, hw = bg.Width(right, ri)
	xmax = c + hw

	return xmin, xmax
}

func (bg *BarGroups) recalc() {
	if bg.xs != nil {
		return
	}

	// xs: all x-values in sorted order
	bg.xs = make([]float64, 0, len(bg.Group))
	for x := range bg.Group {
		bg.xs = append(bg.xs, x)
	}
	sort.Float64s(bg.xs)

	// md: minimum distance between two x-values
	switch len(bg.xs) {
	case 0:
		bg.md = 0
	case 1:
		bg.md = 1
	default:
		bg.md = bg.xs[1] - bg.xs[0]
		for i := 2; i < len(bg.xs); i++ {
			if m := bg.xs[i] - bg.xs[i-1]; m < bg.md {
				bg.md = m
			}
		}
	}

	// lg: largest groups size
	bg.lg = 0
	for _, is := range bg.Group {
		if len(is) > bg.lg {
			bg.lg = len(is)
		}
	}
}

// ----------------------------------------------------------------------------
// ErrorBar

// ErrorBar draws vertical whiskers from y-Err to y+Err with caps.
type ErrorBar struct {
	XY  plotter.XYer
	Err plotter.Valuer

	// X optionally overrides the x position, Cap the half width of the
	// caps in data units.
	X   func(i int) float64
	Cap func(i int) float64

	Colors  ColorFunc
	Default draw.LineStyle
}

// Draw implements figure.Geom.
func (e ErrorBar) Draw(panel *figure.Panel) {
	sty := lineStyle(e.Default, panel)
	canvas := panel.Canvas
	for i := 0; i < e.XY.Len(); i++ {
		x, y := e.XY.XY(i)
		err := e.Err.Value(i)
		if math.IsNaN(err) || err <= 0 {
			continue
		}
		if e.X != nil {
			x = e.X(i)
		}
		lo, hi := panel.Map(x, y-err), panel.Map(x, y+err)
		lines := [][]vg.Point{{lo, hi}}
		s := sty
		if e.Colors != nil {
			s.Color = e.Colors(i)
		}
		if e.Cap != nil {
			c := e.Cap(i)
			for _, yy := range []float64{y - err, y + err} {
				lines = append(lines, []vg.Point{panel.Map(x-c, yy), panel.Map(x+c, yy)})
			}
		}
		canvas.StrokeLines(s, canvas.ClipLinesXY(lines...)...)
	}
}

// AllDataRanges implements figure.AllDataRanger.
func (e ErrorBar) AllDataRanges() figure.DataRanges {
	dr := figure.NewDataRanges()
	for i := 0; i < e.XY.Len(); i++ {
		x, y := e.XY.XY(i)
		if e.X != nil {
			x = e.X(i)
		}
		err := e.Err.Value(i)
		dr[figure.XScale].Update(x)
		dr[figure.YScale].Update(y-err, y+err)
	}
	return dr
}

// ----------------------------------------------------------------------------
// Path

// Path connects the given points in data order through straight line segments.
// The aesthetics map the individual line segments based on their first point.
//
// (To draw them in order of x values see Line.)
type Path struct {
	XY plotter.XYer

	Alpha  Aesthetic
	Color  Aesthetic
	Size   Aesthetic
	Stroke DiscreteAesthetic

	Default draw.LineStyle
}

// Draw implements figure.Geom.
func (p Path) Draw(panel *figure.Panel) {
	baseColor := p.Default.Color
	if baseColor == nil {
		baseColor = panel.Style.GeomDefault.Color
	}

	width := p.Default.Width
	if width == 0 {
		width = panel.Style.GeomDefault.LineWidth
	}

	dashes := p.Default.Dashes

	canvas := panel.Canvas
	for i := 0; i < p.XY.Len()-1; i++ {
		x0, y0 := p.XY.XY(i)
		x1, y1 := p.XY.XY(i + 1)
		if math.IsNaN(x0+y0) || math.IsNaN(x1+y1) {
			continue
		}
		left, right := panel.Map(x0, y0), panel.Map(x1, y1) // Clipping done below.

		col, ok := determineColor(baseColor, panel, i, nil, p.Color, p.Alpha)
		if !ok {
			continue
		}
		if p.Stroke != nil {
			dashes = plotutil.Dashes(p.Stroke(i))
		}
		if p.Size != nil {
			width = panel.MapSize(p.Size(i))
		}

		sty := draw.LineStyle{
			Color:  col,
			Width:  width,
			Dashes: dashes,
		}

		canvas.StrokeLines(sty, canvas.ClipLinesXY([]vg.Point{left, right})...)
	}
}

// AllDataRanges implements figure.AllDataRanger.
func (p Path) AllDataRanges() figure.DataRanges {
	dr := figure.NewDataRanges()
	for i := 0; i < p.XY.Len(); i++ {
		x, y := p.XY.XY(i)
		dr[figure.XScale].Update(x)
		dr[figure.YScale].Update(y)
	}
	UpdateAestheticsRanges(&dr, p.XY.Len(), p.Color, nil, p.Size)
	return dr
}

// ----------------------------------------------------------------------------
// Line

// Line connects the given points in order of the x values by straight line segments.
// The aesthetics map the individual line segments based on their first point.
//
// (To draw them in data order see Path.)
type Line struct {
	XY plotter.XYer

	Alpha  Aesthetic
	Color  Aesthetic
	Size   Aesthetic
	Stroke DiscreteAesthetic

	Default draw.LineStyle
}

func (l Line) toPath() Path {
	path := Path(l)

	xy := make(plotter.XYs, l.XY.Len())
	for i := range xy {
		xy[i].X, xy[i].Y = l.XY.XY(i)
	}
	sort.SliceStable(xy, func(i, j int) bool { return xy[i].X < xy[j].X })
	path.XY = xy

	return path
}

// Draw implements figure.Geom.
func (l Line) Draw(panel *figure.Panel) {
	path := l.toPath()
	path.Draw(panel)
}

// AllDataRanges implements figure.AllDataRanger.
func (l Line) AllDataRanges() figure.DataRanges {
	path := Path(l) // no need to sort
	return path.AllDataRanges()
}

// ----------------------------------------------------------------------------
// Segment

// Segment draws line segments between two points (X,Y) and (U,V).
type Segment struct {
	XYUV data.XYUVer

	Alpha  Aesthetic
	Color  Aesthetic
	Colors ColorFunc
	Size   Aesthetic
	Stroke DiscreteAesthetic

	Default draw.LineStyle
}

// Draw implements figure.Geom.
func (s Segment) Draw(panel *figure.Panel) {
	baseColor := s.Default.Color
	if baseColor == nil {
		baseColor = color.Black
	}

	width := s.Default.Width
	if width == 0 {
		width = panel.Style.GeomDefault.LineWidth
	}

	dashes := s.Default.Dashes

	canvas := panel.Canvas
	for i := 0; i < s.XYUV.Len(); i++ {
		x, y, u, v := s.XYUV.XYUV(i)
		if math.IsNaN(x+y) || math.IsNaN(u+v) {
			continue
		}
		left, right := panel.Map(x, y), panel.Map(u, v) // Clipping done below.

		col, ok := determineColor(baseColor, panel, i, s.Colors, s.Color, s.Alpha)
		if !ok {
			continue
		}
		if s.Stroke != nil {
			dashes = plotutil.Dashes(s.Stroke(i))
		}
		if s.Size != nil {
			width = panel.MapSize(s.Size(i))
		}

		sty := draw.LineStyle{
			Color:  col,
			Width:  width,
			Dashes: dashes,
		}

		canvas.StrokeLines(sty, canvas.ClipLinesXY([]vg.Point{left, right})...)
	}
}

// AllDataRanges implements figure.AllDataRanger.
func (s Segment) AllDataRanges() figure.DataRanges {
	dr := figure.NewDataRanges()
	for i := 0; i < s.XYUV.Len(); i++ {
		x, y, u, v := s.XYUV.XYUV(i)
		dr[figure.XScale].Update(x, u)
		dr[figure.YScale].Update(y, v)
	}
	UpdateAestheticsRanges(&dr, s.XYUV.Len(), s.Color, nil, s.Size)
	return dr
}

// ----------------------------------------------------------------------------
// HLine

// HLine draws horizontal reference (or rule) lines at the given Y values.
// Reference lines do not influence the scales.
type HLine struct {
	Y plotter.Valuer

	Alpha  Aesthetic
	Color  Aesthetic
	Size   Aesthetic
	Stroke DiscreteAesthetic

	Default draw.LineStyle
}

// Draw implements figure.Geom.
func (h HLine) Draw(panel *figure.Panel) {
	N := h.Y.Len()
	xyuv := make(data.XYUVs, N)
	xscale := panel.Scales[figure.XScale]
	xmin, xmax := xscale.Min, xscale.Max
	for i := 0; i < N; i++ {
		y := h.Y.Value(i)
		xyuv[i].X, xyuv[i].Y, xyuv[i].U, xyuv[i].V = xmin, y, xmax, y
	}
	segment := Segment{XYUV: xyuv, Default: h.Default}
	CopyAesthetics(&segment, h, nil)
	segment.Draw(panel)
}

// VLine draws vertical reference (or rule) lines at the given X values.
// Reference lines do not influence the scales.
type VLine struct {
	X plotter.Valuer

	Alpha  Aesthetic
	Color  Aesthetic
	Size   Aesthetic
	Stroke DiscreteAesthetic

	Default draw.LineStyle
}

// Draw implements figure.Geom.
func (v VLine) Draw(panel *figure.Panel) {
	N := v.X.Len()
	xyuv := make(data.XYUVs, N)
	yscale := panel.Scales[figure.YScale]
	ymin, ymax := yscale.Min, yscale.Max
	for i := 0; i < N; i++ {
		x := v.X.Value(i)
		xyuv[i].X, xyuv[i].Y, xyuv[i].U, xyuv[i].V = x, ymin, x, ymax
	}
	segment := Segment{XYUV: xyuv, Default: v.Default}
	CopyAesthetics(&segment, v, nil)
	segment.Draw(panel)
}

// Dashed is the dash pattern of dashed reference lines.
var Dashed = plotutil.Dashes(1)

// ZeroLine returns a thin horizontal reference line at y = 0.
func ZeroLine(width vg.Length) HLine {
	return HLine{Y: plotter.Values{0}, Default: draw.LineStyle{Color: color.Black, Width: width}}
}

// ----------------------------------------------------------------------------
// Text

// Text draws text labels.
type Text struct {
	XYText data.XYTexter

	Alpha Aesthetic
	Color Aesthetic

	Default draw.TextStyle
}

// Draw implements figure.Geom.
func (t Text) Draw(panel *figure.Panel) {
	baseColor := t.Default.Color
	if baseColor == nil {
		baseColor = color.Black
	}

	sty := panel.Style.Text
	if t.Default.Font.Size != 0 {
		sty = t.Default
	}
	if sty.Handler == nil {
		sty.Handler = panel.Style.Text.Handler
	}

	for i := 0; i < t.XYText.Len(); i++ {
		x, y, text := t.XYText.XYText(i)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		center := panel.Map(x, y)

		col, ok := determineColor(baseColor, panel, i, nil, t.Color, t.Alpha)
		if !ok {
			continue
		}

		s := sty
		s.Color = col
		panel.Canvas.FillText(s, center, text)
	}
}

// ----------------------------------------------------------------------------
// Boxplot

// Boxplot draws Tukey box plots: a box from the first to the third
// quartile, a median line, whiskers and the outliers as points.
// Boxes sharing a position are dodged. Horizontal boxes extend along
// the x axis and are placed at y positions.
type Boxplot struct {
	Boxplot data.Boxplotter

	Alpha   Aesthetic // alpha of the box fill
	Fill    Aesthetic
	Fills   ColorFunc
	Medians ColorFunc // color of the median line

	Horizontal bool

	Position     string
	Default      BoxStyle
	DefaultPoint draw.GlyphStyle
	GGap, BGap   float64
}

// xyuv places a data quadruple given in box coordinates (position,
// value) onto the panel's axes.
func (b Boxplot) xyuv(x, y, u, v float64) (float64, float64, float64, float64) {
	if b.Horizontal {
		return y, x, v, u
	}
	return x, y, u, v
}

func (b Boxplot) groups() *BarGroups {
	g := NewBarGroups(b.Position, b.GGap, b.BGap, true)
	for i := 0; i < b.Boxplot.Len(); i++ {
		x, _, _, _, _, _, _ := b.Boxplot.Boxplot(i)
		g.Record(x, i)
	}
	return g
}

// Draw implements figure.Geom.
func (b Boxplot) Draw(panel *figure.Panel) {
	// A Boxplot is drawn by:
	//     - Rectangle in XYUV: One per data point.
	//     - Lines in Seg: Three per data point
	//     - Points in XY: arbitrary many per data point
	N := b.Boxplot.Len()
	XYUV := make(data.XYUVs, N)
	Seg := make(data.XYUVs, 3*N)
	XY := plotter.XYs{}

	g := b.groups()
	for i := 0; i < N; i++ {
		x, min, q1, median, q3, max, out := b.Boxplot.Boxplot(i)
		if math.IsNaN(median) {
			XYUV[i].X = math.NaN()
			for j := 0; j < 3; j++ {
				Seg[3*i+j].X = math.NaN()
			}
			continue
		}

		// The box.
		center, halfwidth := g.Width(x, i)
		xmin, xmax := center-halfwidth, center+halfwidth
		XYUV[i].X, XYUV[i].Y, XYUV[i].U, XYUV[i].V = b.xyuv(xmin, q1, xmax, q3)

		// The lines
		Seg[3*i].X, Seg[3*i].Y, Seg[3*i].U, Seg[3*i].V = b.xyuv(xmin, median, xmax, median)
		Seg[3*i+1].X, Seg[3*i+1].Y, Seg[3*i+1].U, Seg[3*i+1].V = b.xyuv(center, min, center, q1)
		Seg[3*i+2].X, Seg[3*i+2].Y, Seg[3*i+2].U, Seg[3*i+2].V = b.xyuv(center, q3, center, max)

		// The outliers
		for _, o := range out {
			px, py, _, _ := b.xyuv(center, o, 0, 0)
			XY = append(XY, plotter.XY{X: px, Y: py})
		}
	}

	border := b.Default.Border
	if border.Color == nil {
		border.Color = color.Black
	}
	if border.Width == 0 {
		border.Width = panel.Style.GeomDefault.LineWidth
	}
	rect := Rectangle{XYUV: XYUV, Default: BoxStyle{Fill: b.Default.Fill, Border: border}}
	segment := Segment{XYUV: Seg, Default: border}
	CopyAesthetics(&rect, b, nil)
	if b.Medians != nil {
		segment.Colors = func(n int) color.Color {
			if n%3 == 0 {
				return b.Medians(n / 3)
			}
			return border.Color
		}
	}

	dp := b.DefaultPoint
	if dp.Color == nil {
		dp.Color = border.Color
	}
	if dp.Radius == 0 {
		dp.Radius = panel.Style.GeomDefault.Size / 2
	}
	if dp.Shape == nil {
		dp.Shape = draw.GlyphDrawer(figure.DiamondGlyph{})
	}

	rect.Draw(panel)
	segment.Draw(panel)
	Point{XY: XY, Default: dp}.Draw(panel)
}

// AllDataRanges implements figure.AllDataRanger.
func (b Boxplot) AllDataRanges() figure.DataRanges {
	dr := figure.NewDataRanges()
	pos, val := figure.XScale, figure.YScale
	if b.Horizontal {
		pos, val = val, pos
	}

	g := b.groups()
	for i := 0; i < b.Boxplot.Len(); i++ {
		x, min, _, _, _, max, out := b.Boxplot.Boxplot(i)
		dr[pos].Update(x)
		dr[val].Update(min, max)
		dr[val].Update(out...)
	}
	xmin, xmax := g.XRange()
	dr[pos].Update(xmin, xmax)

	UpdateAestheticsRanges(&dr, b.Boxplot.Len(), nil, b.Fill, nil)
	return dr
}
