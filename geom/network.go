package geom

import (
	"image/color"
	"math"

	"github.com/HappyPenguin/figure"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Network

// Network draws a graph: straight edges between node positions first,
// then the nodes on top of them.
type Network struct {
	Pos   plotter.XYer
	Edges [][2]int

	// Order is the sequence in which nodes are drawn, later nodes
	// cover earlier ones. Nil draws nodes in index order.
	Order []int

	Colors     ColorFunc // node colors
	Glyphs     GlyphFunc
	Areas      func(i int) float64 // marker areas in square points
	EdgeColors ColorFunc           // indexed like Edges

	Default   draw.GlyphStyle
	EdgeStyle draw.LineStyle
	Outline   draw.LineStyle // node border, zero width draws none
}

// Draw implements figure.Geom.
func (n Network) Draw(panel *figure.Panel) {
	canvas := panel.Canvas

	es := n.EdgeStyle
	if es.Color == nil {
		es.Color = color.Black
	}
	if es.Width == 0 {
		es.Width = 0.2
	}
	for k, e := range n.Edges {
		x0, y0 := n.Pos.XY(e[0])
		x1, y1 := n.Pos.XY(e[1])
		if math.IsNaN(x0+y0) || math.IsNaN(x1+y1) {
			continue
		}
		sty := es
		if n.EdgeColors != nil {
			if sty.Color = n.EdgeColors(k); sty.Color == nil {
				continue
			}
		}
		line := []vg.Point{panel.Map(x0, y0), panel.Map(x1, y1)}
		canvas.StrokeLines(sty, canvas.ClipLinesXY(line)...)
	}

	order := n.Order
	if order == nil {
		order = make([]int, n.Pos.Len())
		for i := range order {
			order[i] = i
		}
	}
	for _, i := range order {
		x, y := n.Pos.XY(i)
		center, ok := panel.MapXY(x, y)
		if !ok {
			continue
		}
		sty := n.Default
		if sty.Color == nil {
			sty.Color = panel.Style.GeomDefault.Color
		}
		if sty.Radius == 0 {
			sty.Radius = panel.Style.GeomDefault.Size
		}
		if sty.Shape == nil {
			sty.Shape = draw.CircleGlyph{}
		}
		if n.Colors != nil {
			sty.Color = n.Colors(i)
		}
		if n.Glyphs != nil {
			sty.Shape = n.Glyphs(i)
		}
		if n.Areas != nil {
			sty.Radius = figure.MarkerRadius(n.Areas(i))
		}
		if sty.Radius <= 0 || sty.Color == nil {
			continue
		}
		if n.Outline.Width > 0 && n.Outline.Color != nil {
			out := sty
			out.Color = n.Outline.Color
			out.Radius += n.Outline.Width
			canvas.DrawGlyph(out, center)
		}
		canvas.DrawGlyph(sty, center)
	}
}

// AllDataRanges implements figure.AllDataRanger.
func (n Network) AllDataRanges() figure.DataRanges {
	return Point{XY: n.Pos}.AllDataRanges()
}

// ----------------------------------------------------------------------------
// Ring

// Wedge is one sector of a Ring. Angles are in degrees, counter
// clockwise from the positive x axis.
type Wedge struct {
	Start, End float64
	Color      color.Color
}

// Ring draws annular wedges around Center. The ring spans the radii
// [Radius-Width, Radius] in data units.
type Ring struct {
	Center        plotter.XY
	Radius, Width float64
	Wedges        []Wedge
}

// arcStep is the angular resolution of a wedge outline in degrees.
const arcStep = 1.0

func (r Ring) arc(radius, from, to float64) []plotter.XY {
	n := int(math.Ceil(math.Abs(to-from)/arcStep)) + 1
	pts := make([]plotter.XY, n)
	for i := range pts {
		a := from + (to-from)*float64(i)/float64(n-1)
		a *= math.Pi / 180
		pts[i] = plotter.XY{X: r.Center.X + radius*math.Cos(a), Y: r.Center.Y + radius*math.Sin(a)}
	}
	return pts
}

// Draw implements figure.Geom.
func (r Ring) Draw(panel *figure.Panel) {
	inner := r.Radius - r.Width
	for _, w := range r.Wedges {
		if w.Color == nil || w.End == w.Start {
			continue
		}
		pts := append(r.arc(r.Radius, w.Start, w.End), r.arc(inner, w.End, w.Start)...)
		poly := make([]vg.Point, len(pts))
		for i, p := range pts {
			poly[i] = panel.Map(p.X, p.Y)
		}
		panel.Canvas.FillPolygon(w.Color, panel.Canvas.ClipPolygonXY(poly))
	}
}

// AllDataRanges implements figure.AllDataRanger.
func (r Ring) AllDataRanges() figure.DataRanges {
	dr := figure.NewDataRanges()
	dr[figure.XScale].Update(r.Center.X-r.Radius, r.Center.X+r.Radius)
	dr[figure.YScale].Update(r.Center.Y-r.Radius, r.Center.Y+r.Radius)
	return dr
}
