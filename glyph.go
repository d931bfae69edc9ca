package figure

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	cosπover6 = vg.Length(math.Cos(math.Pi / 6))
	sinπover6 = vg.Length(math.Sin(math.Pi / 6))
)

// InvertedPyramidGlyph draws a filled triangle pointing down.
type InvertedPyramidGlyph struct{}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (InvertedPyramidGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius + (sty.Radius-sty.Radius*sinπover6)/2
	p := make(vg.Path, 0, 4)
	p.Move(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r*cosπover6, Y: pt.Y + r*sinπover6})
	p.Line(vg.Point{X: pt.X + r*cosπover6, Y: pt.Y + r*sinπover6})
	p.Close()
	c.Fill(p)
}

// DiamondGlyph draws a filled diamond. A Thin diamond is 0.6 times as
// wide as it is high.
type DiamondGlyph struct {
	Thin bool
}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (d DiamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	h := sty.Radius * 1.2
	w := h
	if d.Thin {
		w *= 0.6
	}
	p := make(vg.Path, 0, 5)
	p.Move(vg.Point{X: pt.X, Y: pt.Y + h})
	p.Line(vg.Point{X: pt.X - w, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - h})
	p.Line(vg.Point{X: pt.X + w, Y: pt.Y})
	p.Close()
	c.Fill(p)
}

// Marker returns the glyph of a matplotlib marker token. Unknown tokens
// draw circles.
func Marker(token string) draw.GlyphDrawer {
	switch token {
	case "^":
		return draw.PyramidGlyph{}
	case "v":
		return InvertedPyramidGlyph{}
	case "s":
		return draw.BoxGlyph{}
	case "d":
		return DiamondGlyph{Thin: true}
	case "D":
		return DiamondGlyph{}
	case "+":
		return draw.PlusGlyph{}
	case "x":
		return draw.CrossGlyph{}
	}
	return draw.CircleGlyph{}
}

// LaminarShape returns the glyph of laminar class c (1 based).
// Classes without a marker are drawn as circles.
func LaminarShape(c int) draw.GlyphDrawer {
	if c < 1 || c > len(LaminarMarkers) {
		return draw.CircleGlyph{}
	}
	return Marker(LaminarMarkers[c-1])
}

// MarkerRadius converts a matplotlib marker size (an area in pt²) into
// a glyph radius.
func MarkerRadius(s float64) vg.Length {
	if s <= 0 {
		return 0
	}
	return vg.Length(math.Sqrt(s) / 2)
}
