package manuscript

import (
	"image/color"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/measure"
	"github.com/HappyPenguin/figure/render"
	"gonum.org/v1/plot/vg"
)

// Figure1 shows the regional CT and MT at 14 years and their change
// with age: for each of the four measures a row of surface views, box
// plots by laminar class and a scatter against age (or baseline).
// It is written to FiguresDir/Figure1.png.
func Figure1(d *Data, o Options) error {
	b, err := d.bounds()
	if err != nil {
		return err
	}
	mpm := o.mpm()
	ctGlobal := measure.Key{Quantity: "CT", Cohort: measure.Global, Statistic: "mean"}
	mtGlobal := measure.Key{Quantity: mpm, Depth: measure.Frac(30), Cohort: measure.Global, Statistic: "mean"}
	mtTag := mpm + "_projfrac+030"

	rows := []struct {
		lateral            string
		box, scatter       measure.Key
		cmap               string
		minColor, maxColor string
	}{
		{"SlopeAge_at14_CT", measure.CT("slope_age_at14"), ctGlobal, "jet", "blue", "red"},
		{"SlopeAge_FDRmask_CT", measure.CT("slope_age"), measure.CT("slope_age"), "winter_r", "red", "blue"},
		{"SlopeAge_at14_" + mtTag, measure.MT(mpm, measure.Frac(30), "slope_age_at14"), mtGlobal, "jet", "red", "blue"},
		{"SlopeAge_FDRmask_" + mtTag, measure.MT(mpm, measure.Frac(30), "slope_age"), measure.MT(mpm, measure.Frac(30), "slope_age"), "autumn", "blue", "red"},
	}

	f := figure.NewFigure(46*vg.Inch, 30*vg.Inch, posterStyle(3.5))
	grid := figure.GridSpec{Rows: 4, Cols: 2, Left: 0.55, Right: 0.99, Bottom: 0.06, Top: 0.97, WSpace: 0.3, HSpace: 0.5}
	panels, err := f.AddGrid(grid)
	if err != nil {
		return err
	}

	for i, row := range rows {
		off := 0.25 * float64(i)
		brains := figure.GridSpec{Rows: 1, Cols: 4, Left: 0.01, Right: 0.5, Bottom: 0.81 - off, Top: 1.01 - off}
		cbar := figure.Rect{Left: 0.11, Right: 0.4, Bottom: 0.81 - off, Top: 0.82 - off}
		box := row.box
		err := brainRow(f, brains, o.png(row.lateral+"_lh_pial_classic_lateral.png"), horizontalCrop, cbar,
			func() (*figure.Colorbar, error) {
				cb, err := measureColorbar(b, box, row.cmap)
				if err == nil {
					cb.Horizontal = true
				}
				return cb, err
			})
		if err != nil {
			return err
		}

		bp := panels[2*i]
		paint(bp, func() (renderer, error) {
			return laminarBoxes(d, b, box, namedColor(row.maxColor), namedColor(row.minColor))
		})
		if box == measure.CT("slope_age") {
			bp.Scales[figure.YScale].Ticker = figure.Sci(6)
		}
		shrinkTitles(bp, 0.88)

		sp := panels[2*i+1]
		var next measure.Key
		var nextCMap string
		if i+1 < len(rows) {
			next, nextCMap = rows[i+1].scatter, rows[i+1].cmap
		}
		scatter := row.scatter
		paint(sp, func() (renderer, error) {
			if row.cmap != "jet" {
				return pairScatter(d, b, scatter.With(scatter.Statistic+"_at14"), scatter, color.Black)
			}
			s, err := pairScatter(d, b, measure.AgeScan, scatter, color.Black)
			if err != nil {
				return nil, err
			}
			// Color each subject by the regional change of the next row.
			s.MarkerColors, err = measureColors(d, b, scatter.With("slope_age"), next, nextCMap)
			return s, err
		})
		shrinkTitles(sp, 0.88)
	}

	return save(f, o.FiguresDir, "Figure1.png", o.dpi())
}

// laminarBoxes returns box plots of k by laminar class with hollow
// boxes and highlighted extreme medians.
func laminarBoxes(d *Data, b *measure.Bounds, k measure.Key, maxC, minC color.Color) (render.Boxes, error) {
	classes, err := d.Measures.Classes(measure.VonEconomo)
	if err != nil {
		return render.Boxes{}, err
	}
	values, err := d.Measures.Get(k)
	if err != nil {
		return render.Boxes{}, err
	}
	lim, err := axis(b, k)
	if err != nil {
		return render.Boxes{}, err
	}
	return render.Boxes{
		Classes:  classes,
		Values:   values,
		YLabel:   measure.AxisLabel(k),
		YLim:     lim,
		MaxColor: maxC,
		MinColor: minC,
		Hollow:   true,
		Sci:      true,
	}, nil
}

// pairScatter returns the scatter of y against x over the regions (or
// subjects) both cover, on their axis ranges.
func pairScatter(d *Data, b *measure.Bounds, x, y measure.Key, c color.Color) (render.Scatter, error) {
	xs, ys, err := d.Measures.Pair(x, y)
	if err != nil {
		return render.Scatter{}, err
	}
	xlim, err := axis(b, x)
	if err != nil {
		return render.Scatter{}, err
	}
	ylim, err := axis(b, y)
	if err != nil {
		return render.Scatter{}, err
	}
	return render.Scatter{
		X: xs, Y: ys,
		XLabel: measure.AxisLabel(x),
		YLabel: measure.AxisLabel(y),
		XLim:   xlim,
		YLim:   ylim,
		Color:  c,
	}, nil
}

// measureColors maps the values of k through cmap normalized over the
// colorbar range of norm.
func measureColors(d *Data, b *measure.Bounds, k, norm measure.Key, cmap string) ([]color.Color, error) {
	v, err := d.Measures.Get(k)
	if err != nil {
		return nil, err
	}
	iv, err := colorbar(b, norm)
	if err != nil {
		return nil, err
	}
	m, err := figure.NewColorMapper(cmap, iv.Min, iv.Max)
	if err != nil {
		return nil, err
	}
	cs := make([]color.Color, len(v))
	for i, x := range v {
		cs[i] = m.Color(x)
	}
	return cs, nil
}

// shrinkTitles scales the axis titles of p by f.
func shrinkTitles(p *figure.Panel, f float64) {
	for _, a := range []*figure.AxisStyle{&p.Style.XAxis, &p.Style.YAxis} {
		a.Title = figure.FontSize(a.Title, a.Title.Font.Size*vg.Length(f))
	}
}
