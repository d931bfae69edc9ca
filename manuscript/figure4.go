package manuscript

import (
	"image/color"
	"math"
	"strings"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/measure"
	"github.com/HappyPenguin/figure/network"
	"github.com/HappyPenguin/figure/render"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
)

// RichClubPercentile is the degree percentile above which nodes of the
// CT network count as hubs in Figure 4.
const RichClubPercentile = 85

// Figure4 shows the CT covariance network: sagittal views colored by
// module and by the change of MT with age with the rich club marked,
// the PLS scores by module, degree by laminar class, the regional
// changes against degree and the degree on the cortical surface. It is
// written to FiguresDir/Figure4.png, or Figure4_RC.png with the rich
// club degree maps.
func Figure4(d *Data, o Options) error {
	b, err := d.bounds()
	if err != nil {
		return err
	}
	mpm := o.mpm()
	degree := measure.NetworkKey("Degree", 10)
	modules := measure.NetworkKey("Renumbered_Module", 10)
	mtSlope := measure.MT(mpm, measure.Frac(30), "slope_age")

	f := figure.NewFigure(34.5*vg.Inch, 20*vg.Inch, posterStyle(2.5))

	// Networks in the outer columns of the top row.
	nets := figure.GridSpec{Rows: 1, Cols: 4, Left: 0, Right: 1, Bottom: 0.65, Top: 0.99, WSpace: -0.07}.Cells()
	for j, colorBy := range []measure.Key{modules, mtSlope} {
		p, err := f.AddPanel(nets[3*j])
		if err != nil {
			return err
		}
		colorBy := colorBy
		paint(p, func() (renderer, error) { return sagittalNetwork(d, b, colorBy, j == 1) })
	}

	// PLS scores by module between the networks.
	top := figure.GridSpec{Rows: 1, Cols: 4, Left: 0.07, Right: 0.98, Bottom: 0.74, Top: 0.97, WSpace: 0.3, HSpace: 0.1}.Cells()
	for j := 0; j < 2; j++ {
		p, err := f.AddPanel(top[j+1])
		if err != nil {
			return err
		}
		k := pls(j + 1)
		paint(p, func() (renderer, error) { return moduleBoxes(d, b, modules, k) })
	}

	// Degree by laminar class and the regional changes against degree.
	mid := figure.GridSpec{Rows: 1, Cols: 4, Left: 0.07, Right: 0.98, Bottom: 0.37, Top: 0.63, WSpace: 0.3, HSpace: 0.1}.Cells()
	p, err := f.AddPanel(mid[0])
	if err != nil {
		return err
	}
	paint(p, func() (renderer, error) {
		return laminarBoxes(d, b, degree, namedColor("red"), namedColor("blue"))
	})
	for j, y := range []measure.Key{measure.CT("slope_age"), mtSlope, pls(2)} {
		p, err := f.AddPanel(mid[j+1])
		if err != nil {
			return err
		}
		y := y
		paint(p, func() (renderer, error) { return pairScatter(d, b, degree, y, color.Black) })
	}

	// Degree on the cortical surface.
	prefix := degree.String()
	if o.RichClub {
		prefix = strings.Replace(prefix, "Degree_CT", "Degree_RC_CT", 1)
	}
	brains := figure.GridSpec{Rows: 1, Cols: 4, Left: 0.03, Right: 0.9, Bottom: 0, Top: 0.31}
	err = brainRow(f, brains, o.png(prefix+"_lh_pial_classic_lateral.png"), horizontalCrop,
		figure.Rect{Left: 0.92, Right: 0.93, Bottom: 0.04, Top: 0.28},
		func() (*figure.Colorbar, error) {
			deg, err := d.Measures.Get(degree)
			if err != nil {
				return nil, err
			}
			lo, hi := figure.Percentile(deg, 75), figure.Percentile(deg, 100)
			return &figure.Colorbar{
				CMap:      "Reds",
				CbarMin:   lo,
				CbarMax:   hi,
				YMin:      lo,
				YMax:      hi,
				Label:     measure.AxisLabel(degree),
				ShowTicks: true,
				LabelPad:  30,
			}, nil
		})
	if err != nil {
		return err
	}

	name := "Figure4.png"
	if o.RichClub {
		name = "Figure4_RC.png"
	}
	return save(f, o.FiguresDir, name, o.dpi())
}

// sagittalNetwork returns the sagittal view of the cost 10 network with
// nodes colored by colorBy and the edges of the cost 2 network on top.
// Module colors come from the "bright" palette with node areas growing
// with the participation coefficient; continuous measures use autumn
// over their colorbar range with node areas growing with degree. Rich
// club nodes are drawn again as squares.
func sagittalNetwork(d *Data, b *measure.Bounds, colorBy measure.Key, continuous bool) (renderer, error) {
	g10, err := d.graph(10)
	if err != nil {
		return nil, err
	}
	g02, err := d.graph(2)
	if err != nil {
		return nil, err
	}
	c, err := d.centroids()
	if err != nil {
		return nil, err
	}
	values, err := d.Measures.Get(colorBy)
	if err != nil {
		return nil, err
	}

	var colors render.NodeColors
	var sizes []float64
	if continuous {
		iv, err := colorbar(b, colorBy)
		if err != nil {
			return nil, err
		}
		colors = render.NodeColors{CMap: "autumn", Continuous: true, Min: iv.Min, Max: iv.Max}
		deg, err := d.Measures.Get(measure.NetworkKey("Degree", 10))
		if err != nil {
			return nil, err
		}
		sizes = make([]float64, len(deg))
		for i, v := range deg {
			sizes[i] = 16 * v
		}
	} else {
		colors = render.NodeColors{Palette: "bright"}
		pc, err := d.Measures.Get(measure.NetworkKey("PC", 10))
		if err != nil {
			return nil, err
		}
		sizes = make([]float64, len(pc))
		for i, v := range pc {
			sizes[i] = 10 * math.Pow(100, v)
		}
	}

	_, rich := g10.RichClub(RichClubPercentile)
	if rich == nil {
		rich = []int{}
	}
	nodes := render.AnatomicalNetwork{
		Centroids:   c,
		Orientation: network.Sagittal,
		Values:      values,
		Colors:      colors,
		NodeSizes:   sizes,
	}
	hubs := nodes
	hubs.Nodes, hubs.Shape = rich, "s"
	return layers{
		nodes,
		hubs,
		render.AnatomicalNetwork{
			Centroids:   c,
			Orientation: network.Sagittal,
			Nodes:       []int{},
			Edges:       g02.Edges(),
			EdgeWidth:   0.8,
		},
	}, nil
}

// moduleBoxes returns box plots of the gene expression measure k by the
// module of its regions.
func moduleBoxes(d *Data, b *measure.Bounds, modules, k measure.Key) (renderer, error) {
	regions, err := d.Measures.Regions(k)
	if err != nil {
		return nil, err
	}
	if regions == nil {
		return nil, errors.Errorf("manuscript: %s is not a regional measure", k)
	}
	mods, err := d.Measures.Select(modules, regions)
	if err != nil {
		return nil, err
	}
	classes := make([]int, len(mods))
	for i, m := range mods {
		classes[i] = int(m)
	}
	values, err := d.Measures.Get(k)
	if err != nil {
		return nil, err
	}
	lim, err := axis(b, k)
	if err != nil {
		return nil, err
	}
	return render.Boxes{
		Classes: classes,
		Values:  values,
		XLabel:  "Module",
		YLabel:  measure.AxisLabel(k),
		YLim:    lim,
		Palette: "bright",
	}, nil
}
