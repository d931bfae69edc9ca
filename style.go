package figure

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Figure and its panels are drawn. Each panel
// gets its own copy of the figure's Style which renderers may tweak.
type Style struct {
	Background color.Color

	Title    draw.TextStyle
	TitlePad vg.Length

	// Text is used for free annotations like laminar numerals.
	Text draw.TextStyle

	// Offset is the style of the "1e-3" factor of scientific tick labels.
	Offset draw.TextStyle

	Spine draw.LineStyle

	XAxis AxisStyle
	YAxis AxisStyle

	GeomDefault struct {
		Color     color.Color
		Size      vg.Length // glyph radius
		LineWidth vg.Length
		Alpha     float64 // fill alpha of boxes and bands
	}
}

// AxisStyle is the style of one axis: its ticks, tick labels and title.
type AxisStyle struct {
	Title    draw.TextStyle
	TitlePad vg.Length

	Tick struct {
		draw.LineStyle
		Length vg.Length
		Pad    vg.Length // between tick and label
		Label  draw.TextStyle
	}
}

func textStyle(size vg.Length, xa draw.XAlignment, ya draw.YAlignment) draw.TextStyle {
	return draw.TextStyle{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, size),
		XAlign:  xa,
		YAlign:  ya,
		Handler: plot.DefaultTextHandler,
	}
}

// DefaultStyle returns a Style which mimics seaborn's "white" style: a
// white background, black spines, outward ticks and no grid. The
// baseFontSize is the font size of axis titles, tick labels are a bit
// smaller and the panel title a bit bigger.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f*float64(x)*10) / 10)
	}

	s := Style{}
	s.Background = color.White

	s.Title = textStyle(scale(baseFontSize, 1.2), draw.XCenter, draw.YBottom)
	s.TitlePad = scale(baseFontSize, 0.5)

	s.Text = textStyle(baseFontSize, draw.XCenter, draw.YCenter)
	s.Offset = textStyle(scale(baseFontSize, 1/1.1), draw.XLeft, draw.YBottom)

	s.Spine.Color = color.Gray16{0x2626}
	s.Spine.Width = scale(baseFontSize, 1.25/12)

	s.XAxis.Title = textStyle(baseFontSize, draw.XCenter, draw.YTop)
	s.XAxis.TitlePad = scale(baseFontSize, 0.4)
	s.XAxis.Tick.Color = s.Spine.Color
	s.XAxis.Tick.Width = s.Spine.Width
	s.XAxis.Tick.Length = scale(baseFontSize, 0.5)
	s.XAxis.Tick.Pad = scale(baseFontSize, 0.3)
	s.XAxis.Tick.Label = textStyle(scale(baseFontSize, 1/1.1), draw.XCenter, draw.YTop)

	s.YAxis.Title = textStyle(baseFontSize, draw.XCenter, draw.YBottom)
	s.YAxis.Title.Rotation = math.Pi / 2
	s.YAxis.TitlePad = scale(baseFontSize, 0.4)
	s.YAxis.Tick.Color = s.Spine.Color
	s.YAxis.Tick.Width = s.Spine.Width
	s.YAxis.Tick.Length = scale(baseFontSize, 0.5)
	s.YAxis.Tick.Pad = scale(baseFontSize, 0.3)
	s.YAxis.Tick.Label = textStyle(scale(baseFontSize, 1/1.1), draw.XRight, draw.YCenter)

	s.GeomDefault.Color = DefaultColor
	s.GeomDefault.Size = scale(baseFontSize, 0.4)
	s.GeomDefault.LineWidth = scale(baseFontSize, 1.5/12)
	s.GeomDefault.Alpha = 1

	return s
}

// ManuscriptStyle is DefaultStyle for seaborn's "notebook" context at the
// given font scale.
func ManuscriptStyle(fontScale float64) Style {
	return DefaultStyle(vg.Length(12 * fontScale))
}

// Scaled returns a copy of s with all fonts, line widths and paddings
// multiplied by f.
func (s Style) Scaled(f float64) Style {
	l := func(x *vg.Length) { *x = vg.Length(f * float64(*x)) }
	t := func(ts *draw.TextStyle) { l(&ts.Font.Size) }
	ax := func(a *AxisStyle) {
		t(&a.Title)
		l(&a.TitlePad)
		l(&a.Tick.Width)
		l(&a.Tick.Length)
		l(&a.Tick.Pad)
		t(&a.Tick.Label)
	}

	t(&s.Title)
	l(&s.TitlePad)
	t(&s.Text)
	t(&s.Offset)
	l(&s.Spine.Width)
	ax(&s.XAxis)
	ax(&s.YAxis)
	l(&s.GeomDefault.Size)
	l(&s.GeomDefault.LineWidth)
	return s
}

// FontSize returns a copy of ts with the font size set to size.
func FontSize(ts draw.TextStyle, size vg.Length) draw.TextStyle {
	ts.Font = font.From(ts.Font, size)
	return ts
}
