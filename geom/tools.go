package geom

import (
	"image/color"
	"math"
	"reflect"

	"github.com/HappyPenguin/figure"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Aesthetic is a function mapping a certain data point to an aesthetic
// through the panel's scale.
type Aesthetic func(i int) float64

// DiscreteAesthetic is a function mapping a certain data point to a
// discrete aesthetic like Shape or Stroke.
type DiscreteAesthetic func(i int) int

// ColorFunc assigns a data point its color directly, bypassing the
// color scale.
type ColorFunc func(i int) color.Color

// GlyphFunc assigns a data point its glyph.
type GlyphFunc func(i int) draw.GlyphDrawer

// UpdateAestheticsRanges is a helper to update the data ranges dr based on
// the non-nil aesthetics functions evaluated for all n data points.
// Color and fill share the color scale.
func UpdateAestheticsRanges(dr *figure.DataRanges, n int,
	color Aesthetic,
	fill Aesthetic,
	size Aesthetic) {

	for i := 0; i < n; i++ {
		if color != nil {
			dr[figure.ColorScale].Update(color(i))
		}
		if fill != nil {
			dr[figure.ColorScale].Update(fill(i))
		}
		if size != nil {
			dr[figure.SizeScale].Update(size(i))
		}
	}
}

// CopyAesthetics copies the non-nil aesthetics from src to dst.
// The destination must be a pointer to a struct, the source may be a struct
// or a pointer to one.
// The index function can be used to reindex the aesthetics functions between
// src and dst.
func CopyAesthetics(dst, src interface{}, index func(int) int) {
	srcVal := reflect.ValueOf(src)
	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	dstVal := reflect.ValueOf(dst).Elem()

	for _, aes := range []string{"Alpha", "Color", "Colors", "Fill", "Fills", "Shape", "Size", "Stroke"} {
		srcAes := srcVal.FieldByName(aes)
		if !srcAes.IsValid() {
			continue
		}
		dstAes := dstVal.FieldByName(aes)
		if !dstAes.IsValid() || dstAes.Type() != srcAes.Type() {
			continue
		}

		if index == nil || srcAes.IsNil() {
			dstAes.Set(srcAes)
			continue
		}

		f := reflect.MakeFunc(srcAes.Type(), func(in []reflect.Value) []reflect.Value {
			n := int(in[0].Int())
			m := index(n)
			return srcAes.Call([]reflect.Value{reflect.ValueOf(m)})
		})
		dstAes.Set(f)
	}
}

// BoxStyle combines a line style for the border with a fill color for
// the interior of a geom.
type BoxStyle struct {
	Fill   color.Color
	Border draw.LineStyle
}

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// WithAlpha returns col with its opacity multiplied by alpha.
func WithAlpha(col color.Color, alpha float64) color.Color {
	if col == nil || alpha >= 1 {
		return col
	}
	r, g, b, a := col.RGBA()
	if a == 0 {
		return col
	}
	// Undo premultiplication to get at the straight color.
	un := func(c uint32) uint16 { return uint16(c * 0xffff / a) }
	return color.NRGBA64{un(r), un(g), un(b), uint16(float64(a) * alpha)}
}

// determineColor returns the color of data point i: colors beats
// colorF which beats col. alphaF values outside [0,1] drop the point.
func determineColor(col color.Color, panel *figure.Panel, i int, colors ColorFunc, colorF, alphaF Aesthetic) (color.Color, bool) {
	switch {
	case colors != nil:
		col = colors(i)
	case colorF != nil:
		col = panel.MapColor(colorF(i))
	}

	if col == nil {
		return col, false
	}

	if alphaF != nil {
		alpha := alphaF(i)
		if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
			return col, false
		}
		col = WithAlpha(col, alpha)
	}

	return col, true
}

// lineStyle fills in the panel's defaults for an unset color or width.
func lineStyle(sty draw.LineStyle, panel *figure.Panel) draw.LineStyle {
	if sty.Color == nil {
		sty.Color = color.Black
	}
	if sty.Width == 0 {
		sty.Width = panel.Style.GeomDefault.LineWidth
	}
	return sty
}
