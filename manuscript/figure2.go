package manuscript

import (
	"image/color"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/measure"
	"github.com/HappyPenguin/figure/render"
	"gonum.org/v1/plot/vg"
)

// Figure2 shows how MT was sampled across the cortical depth, its
// relation to myelin basic protein expression and its mean and change
// with age at every depth next to the cortical layers schematic. It is
// written to FiguresDir/Figure2.png.
func Figure2(d *Data, o Options) error {
	b, err := d.bounds()
	if err != nil {
		return err
	}
	mpm := o.mpm()

	f := figure.NewFigure(34.5*vg.Inch, 28*vg.Inch, posterStyle(3.5))

	methods, err := f.AddPanel(figure.RectAt(-0.03, 0.49, 0.6, 0.48))
	if err != nil {
		return err
	}
	methods.AxisOff = true
	if err := methods.Add(&figure.Image{Path: o.schematic("methods")}); err != nil {
		return err
	}

	sp, err := f.AddPanel(figure.RectAt(0.62, 0.56, 0.35, 0.41))
	if err != nil {
		return err
	}
	paint(sp, func() (renderer, error) {
		s, err := pairScatter(d, b, measure.Key{Quantity: "mbp"}, measure.MT(mpm, measure.Frac(30), "slope_age_at14"), color.Black)
		s.YLabel = "MT at age 14\n(70% cortical depth)"
		return s, err
	})

	profiles := []struct {
		rect   figure.Rect
		stat   string
		cmap   string
		labels bool
	}{
		{figure.Rect{Left: 0.07, Right: 0.445, Bottom: 0.1, Top: 0.47}, "mean", "jet", true},
		{figure.Rect{Left: 0.605, Right: 0.98, Bottom: 0.1, Top: 0.47}, "slope_age", "RdBu_r", false},
	}
	for _, pr := range profiles {
		p, err := f.AddPanel(pr.rect)
		if err != nil {
			return err
		}
		pr := pr
		paint(p, func() (renderer, error) {
			return depthProfile(d, b, mpm, pr.stat, pr.cmap, !pr.labels)
		})
	}

	if _, err := figure.AddSchematic(f, figure.Rect{Left: 0.47, Right: 0.59, Bottom: 0.1, Top: 0.47}, o.schematic("cells")); err != nil {
		return err
	}

	return save(f, o.FiguresDir, "Figure2.png", o.dpi())
}

// depthProfile returns the horizontal profile of the cohort statistic
// stat across depths with a colorbar below. The mean is colored over
// its axis range, changes over half the largest change in either
// direction.
func depthProfile(d *Data, b *measure.Bounds, mpm, stat, cmap string, hideDepths bool) (render.DepthProfile, error) {
	values, err := d.Measures.DepthProfile(mpm, stat)
	if err != nil {
		return render.DepthProfile{}, err
	}
	k := measure.Key{Quantity: mpm, Cohort: measure.All, Statistic: stat}
	lim, err := axis(b, k)
	if err != nil {
		return render.DepthProfile{}, err
	}
	cmin, cmax := lim.Min, lim.Max
	if stat != "mean" {
		cmin, cmax = -lim.Max/2, lim.Max/2
	}
	return render.DepthProfile{
		Values:          values,
		CMap:            cmap,
		CMin:            cmin,
		CMax:            cmax,
		Lim:             lim,
		Label:           measure.AxisLabel(k),
		Horizontal:      true,
		HideNumerals:    true,
		HideDepthLabels: hideDepths,
		Colorbar:        true,
	}, nil
}
