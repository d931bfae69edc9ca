package geom

import (
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/plot/plotter"
)

func TestCopyAesthetics(t *testing.T) {
	h := HLine{
		Alpha: func(i int) float64 { return float64(2 * i) },
	}
	v := VLine{}

	double := func(n int) int { return 2 * n }
	addone := func(n int) int { return n + 1 }
	for i, tc := range []struct {
		src   interface{}
		index func(int) int
		want  float64
	}{
		{h, nil, 6},
		{h, double, 12},
		{&h, addone, 8},
	} {
		CopyAesthetics(&v, tc.src, tc.index)
		if got := v.Alpha(3); got != tc.want {
			t.Errorf("%d. Alpha(3) = %v, want %v", i, got, tc.want)
		}
	}
	if v.Color != nil {
		t.Errorf("nil aesthetic copied as non-nil")
	}

	// Fields are matched by name.
	p := Point{Colors: func(int) color.Color { return color.White }}
	r := Rectangle{}
	CopyAesthetics(&r, p, nil)
	if r.Fills != nil {
		t.Errorf("Colors copied into Fills")
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.NRGBA{0xff, 0x00, 0x00, 0xff}, 0.5)
	r, g, b, a := c.RGBA()
	if g != 0 || b != 0 || math.Abs(float64(a)-0x7fff) > 2 || math.Abs(float64(r)-float64(a)) > 2 {
		t.Errorf("WithAlpha = %v %v %v %v", r, g, b, a)
	}
	if WithAlpha(color.Black, 1) != color.Black {
		t.Errorf("alpha 1 changed the color")
	}
}

func TestBarGroups(t *testing.T) {
	g := NewBarGroups("dodge", 0.2, 0, true)
	g.Record(0, 0)
	if md := g.MinDelta(); md != 1 {
		t.Errorf("single group MinDelta = %v, want 1", md)
	}
	g.Record(0, 1)
	g.Record(1, 2)
	g.Record(1, 3)

	c0, hw := g.Width(0, 0)
	c1, _ := g.Width(0, 1)
	if math.Abs(hw-0.2) > 1e-12 || math.Abs(c0+0.2) > 1e-12 || math.Abs(c1-0.2) > 1e-12 {
		t.Errorf("dodged bars at %v and %v with halfwidth %v", c0, c1, hw)
	}
	xmin, xmax := g.XRange()
	if math.Abs(xmin+0.4) > 1e-12 || math.Abs(xmax-1.4) > 1e-12 {
		t.Errorf("XRange = %v, %v", xmin, xmax)
	}

	empty := NewBarGroups("dodge", 0, 0, true)
	if xmin, _ := empty.XRange(); !math.IsNaN(xmin) {
		t.Errorf("empty XRange = %v", xmin)
	}
}

func TestLinearFit(t *testing.T) {
	xy := plotter.XYs{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 5}, {X: 3, Y: 7}, {X: math.NaN(), Y: 0}}
	fit, err := LinearFit(xy, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(fit.Alpha-1) > 1e-12 || math.Abs(fit.Beta-2) > 1e-12 || fit.N != 4 {
		t.Errorf("fit = %+v", fit)
	}
	if lo, hi := fit.Band(10); math.Abs(hi-lo) > 1e-9 {
		t.Errorf("perfect fit has band [%v, %v]", lo, hi)
	}

	noisy := plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 3, Y: 4}, {X: 4, Y: 3}}
	fit, err = LinearFit(noisy, 0.95)
	if err != nil {
		t.Fatal(err)
	}
	lo0, hi0 := fit.Band(2)
	lo1, hi1 := fit.Band(6)
	if !(lo0 < fit.At(2) && fit.At(2) < hi0) {
		t.Errorf("band [%v, %v] misses fit %v", lo0, hi0, fit.At(2))
	}
	if !(hi1-lo1 > hi0-lo0) {
		t.Errorf("band not wider away from the mean: %v vs %v", hi1-lo1, hi0-lo0)
	}

	if _, err := LinearFit(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}}, 0); err == nil {
		t.Errorf("fit of two points accepted")
	}
	if _, err := LinearFit(plotter.XYs{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}, 0); err == nil {
		t.Errorf("fit on constant x accepted")
	}
}
