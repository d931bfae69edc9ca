package render

import (
	"image/color"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/geom"
	"github.com/HappyPenguin/figure/network"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LaminarMap is the colormap name selecting the laminar class colors
// for categorical node values.
const LaminarMap = "von_economo"

// NodeColors turns a nodal measure into node colors.
//
// Continuous values are normalized over [Min, Max] and sampled from
// CMap. The n distinct values of a categorical measure either take the
// n colors of Palette in ascending order or sample CMap at the centers
// of n equal slices. LaminarMap colors each von Economo class by its
// fixed laminar color.
type NodeColors struct {
	CMap       string // default "jet_r"
	Palette    string // categorical only, overrides CMap
	Continuous bool
	Min, Max   float64
}

// Colors returns the color of each value.
func (nc NodeColors) Colors(values []float64) ([]color.Color, error) {
	name := nc.CMap
	if name == "" {
		name = "jet_r"
	}
	cs := make([]color.Color, len(values))
	if nc.Continuous {
		m, err := figure.NewColorMapper(name, nc.Min, nc.Max)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			cs[i] = m.Color(v)
		}
		return cs, nil
	}

	var byValue map[float64]color.Color
	n := len(figure.Levels(values))
	switch {
	case nc.Palette != "":
		pal, err := figure.NamedPalette(nc.Palette, n)
		if err != nil {
			return nil, err
		}
		if byValue, err = figure.DiscretePalette(values, pal); err != nil {
			return nil, err
		}
	case name == LaminarMap:
		byValue = figure.LaminarColorMap()
		for _, v := range figure.Levels(values) {
			if _, ok := byValue[v]; !ok {
				return nil, errors.Errorf("no laminar color for class %g", v)
			}
		}
	default:
		m, err := figure.NewColorMapper(name, 0, 1)
		if err != nil {
			return nil, err
		}
		byValue = m.Discrete(values)
	}
	for i, v := range values {
		cs[i] = byValue[v]
	}
	return cs, nil
}

// DefaultNodeSize is the marker area of network nodes in pt².
const DefaultNodeSize = 500

// edgeStyle returns the edge line style, thin black by default.
func edgeStyle(c color.Color, w vg.Length) draw.LineStyle {
	if c == nil {
		c = color.Black
	}
	if w == 0 {
		w = 0.2
	}
	return draw.LineStyle{Color: c, Width: w}
}

// AnatomicalNetwork draws the network on the anatomical plane of
// Orientation: edges first, then the nodes from the far side to the
// near side.
type AnatomicalNetwork struct {
	Centroids   network.Centroids
	Orientation network.Orientation

	// Values colors the nodes through Colors. Nil Values draw all
	// nodes in the default color.
	Values []float64
	Colors NodeColors

	// Nodes restricts the drawn nodes. Nil draws all nodes, an empty
	// slice none.
	Nodes []int
	Edges [][2]int

	EdgeColor color.Color
	EdgeWidth vg.Length

	Shape     string    // marker token
	NodeSize  float64   // marker area, DefaultNodeSize if zero
	NodeSizes []float64 // optional area of each node
}

// Render implements the network plot on p.
func (a AnatomicalNetwork) Render(p *figure.Panel) error {
	pos, err := a.Centroids.Layout(a.Orientation)
	if err != nil {
		return err
	}
	n := len(pos)
	if a.Values != nil && len(a.Values) != n {
		return errors.Errorf("network: %d values for %d nodes", len(a.Values), n)
	}
	if a.NodeSizes != nil && len(a.NodeSizes) != n {
		return errors.Errorf("network: %d node sizes for %d nodes", len(a.NodeSizes), n)
	}
	for _, e := range a.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return errors.Errorf("network: edge %v outside of %d nodes", e, n)
		}
	}

	g := geom.Network{
		Pos:       pos,
		Edges:     a.Edges,
		Order:     a.Centroids.DrawOrder(a.Orientation, a.Nodes),
		EdgeStyle: edgeStyle(a.EdgeColor, a.EdgeWidth),
		Default:   draw.GlyphStyle{Shape: figure.Marker(a.Shape)},
	}
	if a.Values != nil {
		cs, err := a.Colors.Colors(a.Values)
		if err != nil {
			return err
		}
		g.Colors = func(i int) color.Color { return cs[i] }
	}
	size := a.NodeSize
	if size == 0 {
		size = DefaultNodeSize
	}
	g.Areas = func(int) float64 { return size }
	if a.NodeSizes != nil {
		g.Areas = func(i int) float64 { return a.NodeSizes[i] }
	}

	lim := network.AxisLimits(a.Orientation)
	p.SetXLim(lim[0], lim[1])
	p.SetYLim(lim[2], lim[3])
	p.AxisOff = true
	return p.Add(g)
}

// Circular layout radii.
const (
	WedgeRadius = 0.65
	WedgeWidth  = 0.1
)

// CircularNetwork draws the network with its nodes on a circle, sorted
// by Sort and then by Wedge. An optional ring of wedges outside the
// circle shows the Wedge measure of each node.
type CircularNetwork struct {
	Sort, Wedge             []float64
	SortColors, WedgeColors NodeColors

	Edges     [][2]int
	EdgeColor color.Color
	EdgeWidth vg.Length

	NodeSize   float64 // marker area, DefaultNodeSize if zero
	ShowWedges bool
}

// Render implements the network plot on p.
func (c CircularNetwork) Render(p *figure.Panel) error {
	n := len(c.Sort)
	if n == 0 {
		return errors.New("network: no nodes")
	}
	if len(c.Wedge) != n {
		return errors.Errorf("network: %d wedge values for %d nodes", len(c.Wedge), n)
	}
	order := network.SortNodes(c.Sort, c.Wedge)
	pos, theta := network.CircularLayout(order)

	nodeColors, err := c.SortColors.Colors(c.Sort)
	if err != nil {
		return err
	}
	size := c.NodeSize
	if size == 0 {
		size = DefaultNodeSize
	}
	g := geom.Network{
		Pos:       pos,
		Edges:     c.Edges,
		EdgeStyle: edgeStyle(c.EdgeColor, c.EdgeWidth),
		Colors:    func(i int) color.Color { return nodeColors[i] },
		Areas:     func(int) float64 { return size },
	}
	geoms := []figure.Geom{g}

	lim := 0.6
	if c.ShowWedges {
		wc := c.WedgeColors
		if wc.CMap == "" && wc.Palette == "" {
			wc.CMap = LaminarMap
		}
		wedgeColors, err := wc.Colors(c.Wedge)
		if err != nil {
			return err
		}
		adj := 360 / float64(2*n)
		ring := geom.Ring{Center: plotter.XY{}, Radius: WedgeRadius, Width: WedgeWidth}
		for i := range theta {
			ring.Wedges = append(ring.Wedges, geom.Wedge{
				Start: theta[i] - adj,
				End:   theta[i] + adj,
				Color: wedgeColors[i],
			})
		}
		geoms = append(geoms, ring)
		lim = 0.75
	}

	p.SetXLim(-lim, lim)
	p.SetYLim(-lim, lim)
	p.AxisOff = true
	return p.Add(geoms...)
}
