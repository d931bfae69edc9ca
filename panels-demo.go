// +build ignore

package main

import (
	"math"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/measure"
	"github.com/HappyPenguin/figure/render"
	"gonum.org/v1/plot/vg"
)

type renderer interface {
	Render(p *figure.Panel) error
}

func main() {
	f := figure.NewFigure(12*vg.Inch, 8*vg.Inch, figure.ManuscriptStyle(1))
	defer f.Close()

	cells := figure.GridSpec{
		Rows: 2, Cols: 2,
		Left: 0.1, Right: 0.9, Bottom: 0.12, Top: 0.95,
		WSpace: 0.4, HSpace: 0.5,
	}.Cells()

	n := 40
	x, y := make([]float64, n), make([]float64, n)
	classes := make([]int, n)
	for i := range x {
		x[i] = float64(i) / 4
		y[i] = 0.3*x[i] + math.Sin(float64(i))
		classes[i] = i%5 + 1
	}

	depths := measure.DepthSeries()
	profile := make([][]float64, len(depths))
	for i := range profile {
		profile[i] = []float64{0.6 + 0.05*float64(i), 0.65 + 0.05*float64(i), 0.7 + 0.05*float64(i)}
	}

	var edges [][2]int
	for i := 0; i < 12; i++ {
		edges = append(edges, [2]int{i, (i + 1) % 12}, [2]int{i, (i + 5) % 12})
	}
	sortBy, wedge := make([]float64, 12), make([]float64, 12)
	for i := range sortBy {
		sortBy[i] = float64(i % 4)
		wedge[i] = float64(i%5 + 1)
	}

	panels := []renderer{
		render.Scatter{X: x, Y: y, XLabel: "Age (years)", YLabel: "Thickness (mm)"},
		render.Boxes{Classes: classes, Values: y, YLabel: "Thickness (mm)", Laminar: true},
		render.DepthProfile{Values: profile, CMap: "jet", CMin: 0.6, CMax: 1.4,
			Lim: figure.Interval{Min: 0.5, Max: 1.5}, Label: "MT (PU)", Colorbar: true},
		render.CircularNetwork{
			Sort: sortBy, Wedge: wedge,
			SortColors:  render.NodeColors{Palette: "bright"},
			WedgeColors: render.NodeColors{CMap: render.LaminarMap},
			Edges:       edges,
			ShowWedges:  true,
		},
	}
	for i, r := range panels {
		p, err := f.AddPanel(cells[i])
		if err != nil {
			panic(err)
		}
		if err := r.Render(p); err != nil {
			p.Fail(err)
		}
	}

	if err := f.Save("panels.png", 100); err != nil {
		panic(err)
	}
}
