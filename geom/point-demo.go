// +build ignore

package main

import (
	"image/color"
	"math"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/geom"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func main() {
	f := figure.NewFigure(10*vg.Inch, 8*vg.Inch, figure.DefaultStyle(12))
	defer f.Close()

	panels, err := f.AddGrid(figure.GridSpec{
		Rows: 2, Cols: 3,
		Left: 0.08, Right: 0.98, Bottom: 0.08, Top: 0.95,
		WSpace: 0.3, HSpace: 0.35,
	})
	if err != nil {
		panic(err)
	}

	xyz := plotter.XYZs{
		{1, 1, 1},
		{2, 2, 2},
		{3, 3, 3},
		{4, 4, 4},
		{5, 3, 5},
		{6, 2, 6},
		{7, 1, 7},
	}
	z := func(i int) float64 { return xyz[i].Z }

	panels[0].SetYLabel("Plain")
	panels[0].Add(geom.Point{XY: plotter.XYValues{xyz}})

	cm, err := figure.NewColorMapper("jet", 1, 7)
	if err != nil {
		panic(err)
	}
	panels[1].SetYLabel("Color")
	panels[1].ColorMap = cm
	panels[1].Add(geom.Point{XY: plotter.XYValues{xyz}, Color: z})

	panels[2].SetYLabel("Size")
	panels[2].Add(geom.Point{XY: plotter.XYValues{xyz}, Size: func(i int) float64 { return 2 * z(i) }})

	panels[3].SetYLabel("Laminar")
	panels[3].Add(geom.Point{
		XY:     plotter.XYValues{xyz},
		Glyph:  func(i int) draw.GlyphDrawer { return figure.LaminarShape(i%5 + 1) },
		Colors: func(i int) color.Color { return figure.LaminarColors[i%5] },
	})

	noisy := make(plotter.XYs, 30)
	for i := range noisy {
		x := float64(i) / 3
		noisy[i] = plotter.XY{X: x, Y: 0.5*x + math.Sin(3*x)}
	}
	panels[4].SetYLabel("Regression")
	panels[4].Add(
		geom.Regression{XY: noisy, Band: color.Gray{210}},
		geom.Point{XY: noisy, Glyph: func(int) draw.GlyphDrawer { return figure.Marker("^") }},
	)

	panels[5].SetYLabel("Alpha")
	panels[5].Add(geom.Point{XY: plotter.XYValues{xyz}, Alpha: func(i int) float64 { return 1 - z(i)/8 }})

	if err := f.Save("point.png", 100); err != nil {
		panic(err)
	}
}
