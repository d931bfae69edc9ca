package figure

import "math"

// A Transformation maps values of a scale's interval onto display units,
// e.g. glyph radii for the size scale. Inverse undoes Trans:
// Inverse(from, to, Trans(from, to, x)) == x.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
}

// lerp maps x from [a.Min, a.Max] onto [b.Min, b.Max].
func lerp(a, b Interval, x float64) float64 {
	return b.Min + (b.Max-b.Min)*(x-a.Min)/(a.Max-a.Min)
}

// squared returns the interval of areas of circles with radii in r.
func squared(r Interval) Interval {
	return Interval{Min: r.Min * r.Min, Max: r.Max * r.Max}
}

// LinearTrans maps from onto to linearly.
var LinearTrans = Transformation{
	Name:    "Linear",
	Trans:   func(from, to Interval, x float64) float64 { return lerp(from, to, x) },
	Inverse: func(from, to Interval, y float64) float64 { return lerp(to, from, y) },
}

// SqrtTrans maps values linearly onto glyph areas and returns the
// radius, so that a marker's area and not its radius grows with the
// value.
var SqrtTrans = Transformation{
	Name: "Area",
	Trans: func(from, to Interval, x float64) float64 {
		return math.Sqrt(lerp(from, squared(to), x))
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return lerp(squared(to), from, y*y)
	},
}

// SqrtTransFix0 is SqrtTrans with both intervals anchored at zero: a
// node of degree 0 has no area and doubling the degree doubles it.
var SqrtTransFix0 = Transformation{
	Name: "AreaFromZero",
	Trans: func(from, to Interval, x float64) float64 {
		from.Min, to.Min = 0, 0
		return SqrtTrans.Trans(from, to, x)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		from.Min, to.Min = 0, 0
		return SqrtTrans.Inverse(from, to, y)
	},
}
