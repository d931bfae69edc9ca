package figure

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// NumColorbarCells is the number of boundaries of a colorbar gradient.
const NumColorbarCells = 300

// Colorbar is a color legend. Colors are normalized over
// [CbarMin, CbarMax] while the bar itself and its three ticks (min,
// mid, max) span [YMin, YMax]. Both ranges are usually equal; a
// narrower [YMin, YMax] shows only the data relevant part of a color
// encoding shared between panels.
type Colorbar struct {
	CMap             string
	CbarMin, CbarMax float64
	YMin, YMax       float64

	Horizontal bool
	Label      string
	ShowTicks  bool

	// LabelPad is the extra distance between bar and label.
	LabelPad vg.Length

	mapper *ColorMapper
}

// Check looks up the colormap.
func (cb *Colorbar) Check() error {
	if cb.mapper != nil {
		return nil
	}
	m, err := NewColorMapper(cb.CMap, cb.CbarMin, cb.CbarMax)
	if err != nil {
		return err
	}
	cb.mapper = m
	return nil
}

// Draw implements Geom.
func (cb *Colorbar) Draw(p *Panel) {
	if cb.mapper == nil {
		return
	}
	for i := 0; i < NumColorbarCells; i++ {
		v0, v1, col := cb.cell(i)
		var a, b vg.Point
		if cb.Horizontal {
			a, b = p.Map(v0, 0), p.Map(v1, 1)
		} else {
			a, b = p.Map(0, v0), p.Map(1, v1)
		}
		// Overlap neighbours a little to avoid hairline gaps.
		if i < NumColorbarCells-1 {
			if cb.Horizontal {
				b.X += (b.X - a.X) / 4
			} else {
				b.Y += (b.Y - a.Y) / 4
			}
		}
		p.Canvas.FillPolygon(col, []vg.Point{
			a, {X: b.X, Y: a.Y}, b, {X: a.X, Y: b.Y},
		})
	}
}

// cell returns the extent of gradient cell i along the bar and its
// color.
func (cb *Colorbar) cell(i int) (v0, v1 float64, col color.Color) {
	step := (cb.YMax - cb.YMin) / NumColorbarCells
	v0 = cb.YMin + float64(i)*step
	v1 = v0 + step
	return v0, v1, cb.mapper.Color((v0 + v1) / 2)
}

// Ticks returns the min, mid and max tick of cb, or none if ShowTicks
// is off.
func (cb *Colorbar) Ticks() plot.ConstantTicks {
	if !cb.ShowTicks {
		return plot.ConstantTicks{}
	}
	mid := (cb.YMin + cb.YMax) / 2
	vs := []float64{cb.YMin, mid, cb.YMax}
	ticks := make(plot.ConstantTicks, len(vs))
	for i, v := range vs {
		ticks[i] = plot.Tick{Value: v, Label: tickLabel(v)}
	}
	return ticks
}

func tickLabel(v float64) string {
	if v == 0 {
		return "0"
	}
	if a := math.Abs(v); a >= 1e4 || a < 1e-3 {
		return strconv.FormatFloat(v, 'e', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', 3, 64)
}

// AddColorbar adds a panel at r showing cb. An unknown colormap blanks
// the panel.
func AddColorbar(f *Figure, r Rect, cb *Colorbar) (*Panel, error) {
	p, err := f.AddPanel(r)
	if err != nil {
		return nil, err
	}
	p.Fail(cb.Check())

	long, short := XScale, YScale
	if !cb.Horizontal {
		long, short = YScale, XScale
		p.YAxisRight = true
	}
	p.Scales[long].Fix(cb.YMin, cb.YMax)
	p.Scales[long].Ticker = cb.Ticks()
	p.Scales[long].Title = cb.Label
	p.Scales[short].Fix(0, 1)
	p.Scales[short].Ticker = nil

	if cb.Horizontal {
		p.Style.XAxis.TitlePad += cb.LabelPad
	} else {
		p.Style.YAxis.TitlePad += cb.LabelPad
	}
	p.Add(cb)
	return p, nil
}
