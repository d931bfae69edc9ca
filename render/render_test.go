package render

import (
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/geom"
	"github.com/HappyPenguin/figure/network"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type renderer interface {
	Render(p *figure.Panel) error
}

// renderOne renders r onto the only panel of a small figure and fails
// on any warning.
func renderOne(t *testing.T, r renderer) *figure.Figure {
	t.Helper()
	f := figure.NewFigure(5*vg.Inch, 4*vg.Inch, figure.DefaultStyle(10))
	p, err := f.AddPanel(figure.Rect{Left: 0.2, Bottom: 0.25, Right: 0.85, Top: 0.9})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(p); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := f.Render(40); err != nil {
		t.Fatal(err)
	}
	if w := f.Warnings(); len(w) != 0 {
		t.Errorf("unexpected warnings: %v", w)
	}
	return f
}

func TestScatter(t *testing.T) {
	s := Scatter{
		X:            []float64{1, 2, 3, 4, 5},
		Y:            []float64{0.01, 0.03, 0.02, 0.05, 0.04},
		XLabel:       "x",
		YLabel:       "y",
		XLim:         figure.Interval{Min: 0, Max: 6},
		MarkerColors: []color.Color{color.Black, color.White, color.Black, color.White, color.Black},
		Shapes:       []string{"o", "^", "s", "^", "o"},
	}
	f := renderOne(t, s)
	defer f.Close()

	p := f.Panels()[0]
	if xs := p.Scales[figure.XScale]; xs.Min != 0 || xs.Max != 6 {
		t.Errorf("x scale [%g,%g], want [0,6]", xs.Min, xs.Max)
	}
	if _, ok := p.Scales[figure.YScale].Ticker.(figure.SciTicks); !ok {
		t.Errorf("y ticker %T", p.Scales[figure.YScale].Ticker)
	}

	s.Shapes = s.Shapes[1:]
	if err := s.Render(p); err == nil {
		t.Errorf("missing error for short Shapes")
	}
}

func TestBoxes(t *testing.T) {
	b := Boxes{
		Classes: []int{1, 1, 1, 3, 3, 3, 3},
		Values:  []float64{1, 2, 3, 4, -99, 6, 5},
	}
	classes, groups, err := b.boxData()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(classes, []int{1, 2, 3}) {
		t.Errorf("classes=%v", classes)
	}
	want := [][]float64{{1, 2, 3}, nil, {4, 6, 5}}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("groups=%v, want %v", groups, want)
	}

	b.Laminar = true
	cs, err := b.colors(classes)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, c := range classes {
		if lc, _ := figure.LaminarColor(c); cs[i] != lc {
			t.Errorf("class %d has color %v, want %v", c, cs[i], lc)
		}
	}

	b.MaxColor, b.MinColor = color.NRGBA{255, 0, 0, 255}, color.NRGBA{0, 0, 255, 255}
	b.Hollow = true
	b.YLim = figure.Interval{Min: 0, Max: 8}
	f := renderOne(t, b)
	f.Close()

	b.Values = b.Values[1:]
	if err := b.Render(f.Panels()[0]); err == nil {
		t.Errorf("missing error for misaligned values")
	}
}

func TestMedianColors(t *testing.T) {
	red, blue := color.NRGBA{255, 0, 0, 255}, color.NRGBA{0, 0, 255, 255}
	mc := medianColors([]float64{1, 3, math.NaN(), 2}, red, blue)
	want := []color.Color{blue, red, color.Black, color.Black}
	for i, w := range want {
		if got := mc(i); got != w {
			t.Errorf("median %d: got %v, want %v", i, got, w)
		}
	}
	if medianColors([]float64{1}, nil, nil) != nil {
		t.Errorf("expected no median colors")
	}
}

func depthValues(perDepth int) [][]float64 {
	vs := make([][]float64, 13)
	for i := range vs {
		for j := 0; j < perDepth; j++ {
			vs[i] = append(vs[i], 0.5+0.1*float64(i)+0.01*float64(j))
		}
	}
	return vs
}

func TestDepthProfile(t *testing.T) {
	for _, tc := range []struct {
		name       string
		perDepth   int
		horizontal bool
	}{
		{"vertical", 5, false},
		{"horizontal", 5, true},
		{"line", 1, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := DepthProfile{
				Values:     depthValues(tc.perDepth),
				CMap:       "jet",
				CMin:       0.4,
				CMax:       1.8,
				Lim:        figure.Interval{Min: 0.4, Max: 1.8},
				Label:      "MT",
				Horizontal: tc.horizontal,
				Colorbar:   true,
			}
			f := renderOne(t, d)
			defer f.Close()
			if n := len(f.Panels()); n != 2 {
				t.Fatalf("got %d panels, want profile and colorbar", n)
			}
			p := f.Panels()[0]
			pos := figure.XScale
			if tc.horizontal {
				pos = figure.YScale
			}
			if s := p.Scales[pos]; s.Min != -0.5 || s.Max != 12.5 || s.Inverted != tc.horizontal {
				t.Errorf("depth scale %s, inverted=%t", s, s.Inverted)
			}
		})
	}

	d := DepthProfile{Values: depthValues(3)[:12], CMap: "jet", CMax: 1}
	f := figure.NewFigure(vg.Inch, vg.Inch, figure.DefaultStyle(10))
	p, _ := f.AddPanel(figure.Rect{Right: 1, Top: 1})
	if err := d.Render(p); err == nil {
		t.Errorf("missing error for 12 depths")
	}
}

func TestDepthProfileMedianFill(t *testing.T) {
	skewed := make([][]float64, 13)
	for i := range skewed {
		skewed[i] = []float64{0, 0, 0, 0, 10, math.NaN()}
	}
	d := DepthProfile{Values: skewed, CMap: "gray", CMin: 0, CMax: 10, Lim: figure.Interval{Min: 0, Max: 10}}
	f := renderOne(t, d)
	defer f.Close()

	m, _ := figure.NewColorMapper("gray", 0, 10)
	var boxes *geom.Boxplot
	for _, g := range f.Panels()[0].Geoms {
		if b, ok := g.(geom.Boxplot); ok {
			boxes = &b
		}
	}
	if boxes == nil {
		t.Fatal("no boxes drawn")
	}
	for i := range skewed {
		if got, want := boxes.Fills(i), m.Color(0); got != want {
			t.Errorf("depth %d filled %v, want median color %v", i, got, want)
		}
	}
}

func TestCI95(t *testing.T) {
	if got := ci95([]float64{2, 2, 2}); got != 0 {
		t.Errorf("ci95 of constant = %g", got)
	}
	// Population standard deviation of 1, 3 is 1.
	if got := ci95([]float64{1, 3}); math.Abs(got-1.959964) > 1e-5 {
		t.Errorf("ci95 = %g", got)
	}
}

func TestNetworkMeasures(t *testing.T) {
	samples := make(map[string][]float64)
	for i, m := range GlobalMeasures {
		samples[m] = []float64{0.1 * float64(i), 0.1*float64(i) + 0.05}
		samples[m+"_rand"] = []float64{0.2, 0.2}
	}
	f := renderOne(t, NetworkMeasures{Samples: samples})
	f.Close()
	for _, g := range f.Panels()[0].Geoms {
		bar, ok := g.(geom.Bar)
		if !ok {
			continue
		}
		if bar.Whiskers(0) != figure.DefaultColor || bar.Whiskers(1) != RandomGrey {
			t.Errorf("whiskers %v and %v, want bar colors", bar.Whiskers(0), bar.Whiskers(1))
		}
	}

	delete(samples, "sigma_rand")
	if err := (NetworkMeasures{Samples: samples}).Render(f.Panels()[0]); err == nil {
		t.Errorf("missing error for absent sigma_rand")
	}
}

func TestRichClub(t *testing.T) {
	rc := []float64{0.1, 0.2, 0.4, 0.8}
	random := [][]float64{{0.1, 0.2, 0.3, 0.5}, {0.1, 0.3, 0.3, 0.4}}
	for _, norm := range []bool{false, true} {
		f := renderOne(t, RichClub{RC: rc, Random: random, Normalised: norm, XMax: 4})
		f.Close()

		lines, unity := 0, false
		for _, g := range f.Panels()[0].Geoms {
			switch g := g.(type) {
			case geom.Line:
				lines++
			case geom.HLine:
				unity = unity || (g.Y.Len() == 1 && g.Y.Value(0) == 1)
			}
		}
		if want := map[bool]int{false: 2, true: 1}[norm]; lines != want {
			t.Errorf("normalised=%t: %d curves, want %d", norm, lines, want)
		}
		if unity != norm {
			t.Errorf("normalised=%t: reference line at 1 drawn=%t", norm, unity)
		}
	}

	mean, ci := meanCI(random, 4)
	if mean[1] != 0.25 || ci[0] != 0 || ci[1] <= 0 {
		t.Errorf("meanCI: mean=%v ci=%v", mean, ci)
	}
}

func TestNodeColors(t *testing.T) {
	values := []float64{3, 1, 3, 2}

	cs, err := NodeColors{CMap: "jet"}.Colors(values)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	m, _ := figure.NewColorMapper("jet", 0, 1)
	for i, level := range []float64{1, 2, 3} {
		want := m.Sample((float64(i) + 0.5) / 3)
		for j, v := range values {
			if v == level && cs[j] != want {
				t.Errorf("value %g: color %v, want %v", v, cs[j], want)
			}
		}
	}

	cs, err = NodeColors{CMap: LaminarMap}.Colors(values)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cs[1] != figure.LaminarColors[0] || cs[0] != figure.LaminarColors[2] {
		t.Errorf("laminar colors %v", cs)
	}
	// Classes keep their colors when class 1 is absent.
	cs, err = NodeColors{CMap: LaminarMap}.Colors([]float64{2, 3, 4})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, c := range []int{2, 3, 4} {
		if want, _ := figure.LaminarColor(c); cs[i] != want {
			t.Errorf("class %d: color %v, want %v", c, cs[i], want)
		}
	}
	if _, err := (NodeColors{CMap: LaminarMap}).Colors([]float64{1, 7}); err == nil {
		t.Errorf("missing error for class 7")
	}

	pal, _ := figure.NamedPalette("bright", 3)
	cs, _ = NodeColors{Palette: "bright"}.Colors(values)
	if cs[3] != pal[1] {
		t.Errorf("palette color %v, want %v", cs[3], pal[1])
	}

	cs, _ = NodeColors{CMap: "jet", Continuous: true, Min: 1, Max: 3}.Colors(values)
	if cs[1] != m.Sample(0) || cs[0] != m.Sample(1) {
		t.Errorf("continuous colors %v", cs)
	}
}

func TestNetworks(t *testing.T) {
	c := network.Centroids{
		X: []float64{-40, 10, 30, 50},
		Y: []float64{-60, 0, 20, 40},
		Z: []float64{-20, 10, 30, 50},
	}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}}
	for _, o := range []network.Orientation{network.Axial, network.Coronal, network.Sagittal} {
		f := renderOne(t, AnatomicalNetwork{
			Centroids:   c,
			Orientation: o,
			Values:      []float64{1, 1, 2, 2},
			Nodes:       []int{0, 2, 3},
			Edges:       edges,
			NodeSizes:   []float64{10, 20, 30, 40},
		})
		f.Close()
	}

	f := renderOne(t, CircularNetwork{
		Sort:       []float64{1, 2, 1, 2},
		Wedge:      []float64{1, 1, 2, 3},
		Edges:      edges,
		ShowWedges: true,
	})
	f.Close()

	bad := AnatomicalNetwork{Centroids: c, Edges: [][2]int{{0, 9}}}
	if err := bad.Render(f.Panels()[0]); err == nil {
		t.Errorf("missing error for edge to unknown node")
	}
}

func TestLaminarScatter(t *testing.T) {
	var s LaminarScatter
	for i := 0; i < 20; i++ {
		c := i%5 + 1
		s.X = append(s.X, float64(i))
		s.Y = append(s.Y, 0.01*float64(c)+0.001*float64(i*i%7))
		s.Classes = append(s.Classes, c)
	}
	s.X[0] = math.NaN()
	f := renderOne(t, s)
	defer f.Close()

	var regs, points int
	for _, g := range f.Panels()[0].Geoms {
		switch g := g.(type) {
		case geom.Regression:
			regs++
		case geom.Point:
			c := points + 1
			if want, _ := figure.LaminarColor(c); g.Default.Color != want {
				t.Errorf("class %d points have color %v, want %v", c, g.Default.Color, want)
			}
			if g.Default.Shape != figure.LaminarShape(c) {
				t.Errorf("class %d points have shape %T", c, g.Default.Shape)
			}
			points++
		}
	}
	if regs != 5 || points != 5 {
		t.Errorf("got %d regressions and %d point groups, want 5 each", regs, points)
	}

	s.Classes[3] = 7
	if err := s.Render(f.Panels()[0]); err == nil {
		t.Errorf("missing error for class without laminar color")
	}
}

func TestDegreeHistogram(t *testing.T) {
	d := DegreeDistribution{Degrees: []float64{0, 1, 1, 2, 4, 4, 4, 4}, Bins: 4}
	xy := d.histogram(4)
	want := plotter.XYs{{X: 0.5, Y: 1.0 / 8}, {X: 1.5, Y: 2.0 / 8}, {X: 2.5, Y: 1.0 / 8}, {X: 3.5, Y: 4.0 / 8}}
	if len(xy) != len(want) {
		t.Fatalf("got %d bins, want %d", len(xy), len(want))
	}
	area := 0.0
	for i, w := range want {
		if math.Abs(xy[i].X-w.X) > 1e-9 || math.Abs(xy[i].Y-w.Y) > 1e-9 {
			t.Errorf("bin %d = %v, want %v", i, xy[i], w)
		}
		area += xy[i].Y
	}
	if math.Abs(area-1) > 1e-9 {
		t.Errorf("densities integrate to %g", area)
	}

	f := renderOne(t, d)
	f.Close()
	if err := (DegreeDistribution{}).Render(f.Panels()[0]); err == nil {
		t.Errorf("missing error for empty degrees")
	}
}
