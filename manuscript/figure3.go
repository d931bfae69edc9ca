package manuscript

import (
	"fmt"
	"image/color"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/measure"
	"gonum.org/v1/plot/vg"
)

// pls returns the key of the usable scores of PLS component n.
func pls(n int) measure.Key {
	return measure.Key{Quantity: fmt.Sprintf("PLS%d", n), Statistic: "usable"}
}

// Figure3 relates the first two PLS components of gene expression to
// their marker genes and to the regional CT and MT measures. It is
// written to FiguresDir/Figure3.png.
func Figure3(d *Data, o Options) error {
	b, err := d.bounds()
	if err != nil {
		return err
	}
	mpm := o.mpm()

	f := figure.NewFigure(34.5*vg.Inch, 22*vg.Inch, posterStyle(2.9))
	cells := figure.GridSpec{Rows: 3, Cols: 4, Left: 0.08, Right: 0.97, Bottom: 0.1, Top: 0.97, WSpace: 0.25, HSpace: 0.4}.Cells()

	genes := []string{"mbp", "oligo"}
	for i, gene := range genes {
		off := 0.66 * float64(i)
		k := pls(i + 1)
		brains := figure.GridSpec{Rows: 1, Cols: 4, Left: 0.01, Right: 0.71, Bottom: 0.67 - off, Top: 1.05 - off}
		cbar := figure.Rect{Left: 0.16, Right: 0.56, Bottom: 0.74 - off, Top: 0.75 - off}
		err := brainRow(f, brains, o.png(fmt.Sprintf("PLS%d_lh_pial_classic_lateral.png", i+1)), horizontalCrop, cbar,
			func() (*figure.Colorbar, error) {
				cb, err := measureColorbar(b, k, "RdBu_r")
				if err == nil {
					cb.Horizontal = true
				}
				return cb, err
			})
		if err != nil {
			return err
		}

		p, err := f.AddPanel(cells[8*i+3])
		if err != nil {
			return err
		}
		gk := measure.Key{Quantity: gene, Statistic: "usable"}
		paint(p, func() (renderer, error) {
			s, err := pairScatter(d, b, gk, k, color.Black)
			s.Marker, s.MarkerSize = "^", 70
			return s, err
		})
	}

	mri := []measure.Key{
		measure.CT("slope_age_at14"),
		measure.MT(mpm, measure.Frac(30), "slope_age_at14"),
		measure.CT("slope_age"),
		measure.MT(mpm, measure.Frac(30), "slope_age"),
	}
	for i, x := range mri {
		cell := cells[4+i]
		switch i {
		case 1:
			cell.Left, cell.Right = cell.Left-0.03, cell.Right-0.03
		case 2:
			cell.Left, cell.Right = cell.Left+0.03, cell.Right+0.03
		}
		p, err := f.AddPanel(cell)
		if err != nil {
			return err
		}
		x, y := x, pls(1+i/2)
		paint(p, func() (renderer, error) {
			s, err := pairScatter(d, b, x, y, color.Black)
			s.MarkerSize = 40
			return s, err
		})
		if i == 2 {
			p.Scales[figure.XScale].Ticker = figure.NBins{N: 3}
		}
		if i%2 == 1 {
			// Shares the y axis with its left neighbor.
			p.SetYLabel("")
			p.Scales[figure.YScale].Ticker = figure.NoLabels{Ticker: p.Scales[figure.YScale].Ticker}
		}
	}

	return save(f, o.FiguresDir, "Figure3.png", o.dpi())
}
