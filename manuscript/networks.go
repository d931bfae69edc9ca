package manuscript

import (
	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/measure"
	"github.com/HappyPenguin/figure/network"
	"github.com/HappyPenguin/figure/render"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
)

// NetworkSummary summarizes the cost 10 CT covariance network: its
// modules in sagittal and axial view with the cost 2 edges, its degree
// distribution, its rich club curve against random graphs and its
// global measures. It is written to FiguresDir/NetworkSummary.png.
func NetworkSummary(d *Data, o Options) error {
	f := figure.NewFigure(15*vg.Inch, 15*vg.Inch, posterStyle(1))

	for _, v := range []struct {
		r figure.Rect
		o network.Orientation
	}{
		{figure.Rect{Left: 0.01, Right: 0.55, Bottom: 0.6, Top: 1}, network.Sagittal},
		{figure.Rect{Left: 0.55, Right: 0.98, Bottom: 0.45, Top: 1}, network.Axial},
	} {
		p, err := f.AddPanel(v.r)
		if err != nil {
			return err
		}
		orientation := v.o
		paint(p, func() (renderer, error) { return moduleNetwork(d, orientation) })
	}

	p, err := f.AddPanel(figure.Rect{Left: 0.13, Right: 0.5, Bottom: 0.35, Top: 0.6})
	if err != nil {
		return err
	}
	paint(p, func() (renderer, error) {
		g, err := d.graph(10)
		if err != nil {
			return nil, err
		}
		return render.DegreeDistribution{Degrees: g.Degrees(), XMax: 127, YMax: 0.03}, nil
	})

	p, err = f.AddPanel(figure.Rect{Left: 0.13, Right: 0.5, Bottom: 0.1, Top: 0.3})
	if err != nil {
		return err
	}
	paint(p, func() (renderer, error) {
		if len(d.RichClub) == 0 {
			return nil, errors.New("manuscript: no rich club coefficients")
		}
		return render.RichClub{RC: d.RichClub, Random: d.RandomRichClub, XMax: 127}, nil
	})

	p, err = f.AddPanel(figure.Rect{Left: 0.6, Right: 0.99, Bottom: 0.1, Top: 0.4})
	if err != nil {
		return err
	}
	paint(p, func() (renderer, error) {
		if d.GlobalMeasures == nil {
			return nil, errors.New("manuscript: no global network measures")
		}
		return render.NetworkMeasures{Samples: d.GlobalMeasures}, nil
	})

	return save(f, o.FiguresDir, "NetworkSummary.png", o.dpi())
}

// MTDegreeNetwork shows the sagittal view of the cost 10 network with
// square nodes colored by the change of MT with age at 30% depth and
// sized by degree, and the cost 2 edges on top. It is written to
// FiguresDir/MT_Degree_Network.png.
func MTDegreeNetwork(d *Data, o Options) error {
	f := figure.NewFigure(12*vg.Inch, 8*vg.Inch, posterStyle(1))
	p, err := f.AddPanel(figure.Rect{Left: 0, Right: 1, Bottom: 0, Top: 1})
	if err != nil {
		return err
	}
	paint(p, func() (renderer, error) {
		b, err := d.bounds()
		if err != nil {
			return nil, err
		}
		k := measure.MT(o.mpm(), measure.Frac(30), "slope_age")
		iv, err := colorbar(b, k)
		if err != nil {
			return nil, err
		}
		values, err := d.Measures.Get(k)
		if err != nil {
			return nil, err
		}
		nodes, err := degreeSizedNodes(d, network.Sagittal, 15)
		if err != nil {
			return nil, err
		}
		nodes.Values = values
		nodes.Colors = render.NodeColors{CMap: "autumn", Continuous: true, Min: iv.Min, Max: iv.Max}
		nodes.Shape = "s"
		return withEdges(d, nodes, 2)
	})
	return save(f, o.FiguresDir, "MT_Degree_Network.png", o.dpi())
}

// moduleNetwork returns the cost 10 network in orientation with nodes
// colored by module and the cost 2 edges on top.
func moduleNetwork(d *Data, orientation network.Orientation) (renderer, error) {
	nodes, err := degreeSizedNodes(d, orientation, 12)
	if err != nil {
		return nil, err
	}
	if nodes.Values, err = d.Measures.Get(measure.NetworkKey("Renumbered_Module", 10)); err != nil {
		return nil, err
	}
	nodes.Colors = render.NodeColors{Palette: "bright"}
	return withEdges(d, nodes, 2)
}

// degreeSizedNodes returns the nodes of the cost 10 network in
// orientation with areas of scale times their degree plus 5.
func degreeSizedNodes(d *Data, orientation network.Orientation, scale float64) (render.AnatomicalNetwork, error) {
	if _, err := d.graph(10); err != nil {
		return render.AnatomicalNetwork{}, err
	}
	c, err := d.centroids()
	if err != nil {
		return render.AnatomicalNetwork{}, err
	}
	deg, err := d.Measures.Get(measure.NetworkKey("Degree", 10))
	if err != nil {
		return render.AnatomicalNetwork{}, err
	}
	sizes := make([]float64, len(deg))
	for i, v := range deg {
		sizes[i] = scale*v + 5
	}
	return render.AnatomicalNetwork{Centroids: c, Orientation: orientation, NodeSizes: sizes}, nil
}

// withEdges draws the edges of the network at cost over nodes.
func withEdges(d *Data, nodes render.AnatomicalNetwork, cost int) (renderer, error) {
	g, err := d.graph(cost)
	if err != nil {
		return nil, err
	}
	return layers{
		nodes,
		render.AnatomicalNetwork{
			Centroids:   nodes.Centroids,
			Orientation: nodes.Orientation,
			Nodes:       []int{},
			Edges:       g.Edges(),
		},
	}, nil
}
