package figure

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// ----------------------------------------------------------------------------
// Segmented colormaps

// Anchor is a point (X, V) of a piecewise linear color channel with X
// and V in [0,1].
type Anchor struct {
	X, V float64
}

// Segmented is a continuous palette.ColorMap whose red, green and blue
// channels are piecewise linear functions, like matplotlib's
// LinearSegmentedColormap.
type Segmented struct {
	R, G, B []Anchor

	min, max, alpha float64
}

// NewSegmented returns a colormap over [0,1] with the given channels.
// The anchors of each channel must be sorted by X and span [0,1].
func NewSegmented(r, g, b []Anchor) *Segmented {
	return &Segmented{R: r, G: g, B: b, min: 0, max: 1, alpha: 1}
}

// Interpolate returns a colormap which linearly interpolates between
// the evenly spaced colors cs.
func Interpolate(cs []color.Color) *Segmented {
	n := len(cs)
	r := make([]Anchor, n)
	g := make([]Anchor, n)
	b := make([]Anchor, n)
	for i, c := range cs {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		r[i] = Anchor{x, float64(nc.R) / 255}
		g[i] = Anchor{x, float64(nc.G) / 255}
		b[i] = Anchor{x, float64(nc.B) / 255}
	}
	return NewSegmented(r, g, b)
}

func channel(as []Anchor, t float64) float64 {
	if len(as) == 0 {
		return 0
	}
	if t <= as[0].X {
		return as[0].V
	}
	for i := 1; i < len(as); i++ {
		if t <= as[i].X {
			a, b := as[i-1], as[i]
			if b.X == a.X {
				return b.V
			}
			return a.V + (t-a.X)/(b.X-a.X)*(b.V-a.V)
		}
	}
	return as[len(as)-1].V
}

// At implements palette.ColorMap.
func (s *Segmented) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < s.min:
		return nil, palette.ErrUnderflow
	case v > s.max:
		return nil, palette.ErrOverflow
	}
	t := 0.0
	if s.max > s.min {
		t = (v - s.min) / (s.max - s.min)
	}
	u8 := func(x float64) uint8 { return uint8(math.Round(255 * x)) }
	return color.NRGBA{
		R: u8(channel(s.R, t)),
		G: u8(channel(s.G, t)),
		B: u8(channel(s.B, t)),
		A: u8(s.alpha),
	}, nil
}

func (s *Segmented) Max() float64          { return s.max }
func (s *Segmented) SetMax(v float64)      { s.max = v }
func (s *Segmented) Min() float64          { return s.min }
func (s *Segmented) SetMin(v float64)      { s.min = v }
func (s *Segmented) Alpha() float64        { return s.alpha }
func (s *Segmented) SetAlpha(alpha float64) { s.alpha = alpha }

// Palette implements palette.ColorMap.
func (s *Segmented) Palette(n int) palette.Palette {
	cs := make(colors, n)
	for i := range cs {
		v := s.min
		if n > 1 {
			v += float64(i) / float64(n-1) * (s.max - s.min)
		}
		cs[i], _ = s.At(v)
	}
	return cs
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// ----------------------------------------------------------------------------
// Named colormaps

func lin(v0, v1 float64) []Anchor { return []Anchor{{0, v0}, {1, v1}} }

var colorMaps = map[string]func() palette.ColorMap{
	"jet": func() palette.ColorMap {
		return NewSegmented(
			[]Anchor{{0, 0}, {0.35, 0}, {0.66, 1}, {0.89, 1}, {1, 0.5}},
			[]Anchor{{0, 0}, {0.125, 0}, {0.375, 1}, {0.64, 1}, {0.91, 0}, {1, 0}},
			[]Anchor{{0, 0.5}, {0.11, 1}, {0.34, 1}, {0.65, 0}, {1, 0}},
		)
	},
	"autumn": func() palette.ColorMap { return NewSegmented(lin(1, 1), lin(0, 1), lin(0, 0)) },
	"winter": func() palette.ColorMap { return NewSegmented(lin(0, 0), lin(0, 1), lin(1, 0.5)) },
	"gray":   func() palette.ColorMap { return NewSegmented(lin(0, 1), lin(0, 1), lin(0, 1)) },
	"hot": func() palette.ColorMap {
		return Interpolate(palette.Heat(64, 1).Colors())
	},

	"coolwarm":  func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"kindlmann": moreland.Kindlmann,
	"blackbody": moreland.BlackBody,
}

// Brewer palettes usable as continuous maps together with the number
// of classes interpolated.
var brewerMaps = map[string]int{
	"RdBu": 11, "PRGn": 11, "PuOr": 11, "RdYlBu": 11, "Spectral": 11, "BrBG": 11,
	"Reds": 9, "Blues": 9, "Greens": 9, "Greys": 9, "Oranges": 9, "Purples": 9,
}

// LookupColorMap returns a fresh colormap over [0,1] for a matplotlib
// style name. A "_r" suffix reverses the map.
func LookupColorMap(name string) (palette.ColorMap, error) {
	base := strings.TrimSuffix(name, "_r")
	reversed := base != name

	var cm palette.ColorMap
	if f, ok := colorMaps[base]; ok {
		cm = f()
	} else if n, ok := brewerMaps[base]; ok {
		p, err := brewer.GetPalette(brewer.TypeAny, base, n)
		if err != nil {
			return nil, errors.Wrapf(err, "colormap %q", name)
		}
		cm = Interpolate(p.Colors())
	} else {
		return nil, errors.Errorf("unknown colormap %q", name)
	}
	cm.SetMax(1)
	cm.SetMin(0)
	if reversed {
		cm = palette.Reverse(cm)
	}
	return cm, nil
}

// ----------------------------------------------------------------------------
// ColorMapper

// ColorMapper turns values into colors by normalizing them into [0,1]
// with Min and Max and sampling Map.
type ColorMapper struct {
	Map      palette.ColorMap // defined on [0,1]
	Min, Max float64
	NaN      color.Color // color of NaN values
}

// NewColorMapper returns a mapper for the named colormap normalized over
// [min, max].
func NewColorMapper(name string, min, max float64) (*ColorMapper, error) {
	cm, err := LookupColorMap(name)
	if err != nil {
		return nil, err
	}
	return &ColorMapper{Map: cm, Min: min, Max: max, NaN: color.Transparent}, nil
}

// Sample returns the color of the map at t, clamped to [0,1].
func (m *ColorMapper) Sample(t float64) color.Color {
	if math.IsNaN(t) {
		return m.NaN
	}
	t = math.Max(0, math.Min(1, t))
	c, err := m.Map.At(t)
	if err != nil {
		debugf("colormap sample %g: %v", t, err)
		return m.NaN
	}
	return c
}

// Normalize maps v linearly from [Min, Max] to [0,1] without clamping.
// A degenerate range maps everything to 0.
func (m *ColorMapper) Normalize(v float64) float64 {
	if m.Max == m.Min {
		return 0
	}
	return (v - m.Min) / (m.Max - m.Min)
}

// Color returns the color of v. Values outside [Min, Max] get the
// color of the nearer end.
func (m *ColorMapper) Color(v float64) color.Color {
	return m.Sample(m.Normalize(v))
}

// Discrete assigns each distinct value in values a color. The i-th of
// n sorted levels gets the map's sample at (i+0.5)/n.
func (m *ColorMapper) Discrete(values []float64) map[float64]color.Color {
	levels := Levels(values)
	n := float64(len(levels))
	cs := make(map[float64]color.Color, len(levels))
	for i, l := range levels {
		cs[l] = m.Sample((float64(i) + 0.5) / n)
	}
	return cs
}

// DiscretePalette assigns the sorted distinct values the colors of pal
// one by one. pal must have exactly one color per distinct value.
func DiscretePalette(values []float64, pal []color.Color) (map[float64]color.Color, error) {
	levels := Levels(values)
	if len(pal) != len(levels) {
		return nil, errors.Errorf("palette has %d colors for %d categories", len(pal), len(levels))
	}
	cs := make(map[float64]color.Color, len(levels))
	for i, l := range levels {
		cs[l] = pal[i]
	}
	return cs, nil
}

// ----------------------------------------------------------------------------
// Named colors and palettes

// parseHex parses a "#rrggbb" color.
func parseHex(s string) (color.Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return nil, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return nil, false
	}
	return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, true
}

func hex(s string) color.Color {
	c, ok := parseHex(s)
	if !ok {
		panic("figure: bad color " + s)
	}
	return c
}

// NamedColor returns the color of a CSS/matplotlib color name ("k",
// "grey", "purple", ...) or of a "#rrggbb" string.
func NamedColor(name string) (color.Color, bool) {
	if strings.HasPrefix(name, "#") {
		return parseHex(name)
	}
	if name == "k" {
		name = "black"
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return c, true
}

var seabornPalettes = map[string][]string{
	"deep":   {"#4C72B0", "#55A868", "#C44E52", "#8172B2", "#CCB974", "#64B5CD"},
	"muted":  {"#4878CF", "#6ACC65", "#D65F5F", "#B47CC7", "#C4AD66", "#77BEDB"},
	"bright": {"#003FFF", "#03ED3A", "#E8000B", "#8A2BE2", "#FFC400", "#00D7FF"},
}

// NamedPalette returns n colors of a named categorical palette. The
// seaborn palettes "deep", "muted" and "bright" cycle, other names are
// looked up as ColorBrewer palettes.
func NamedPalette(name string, n int) ([]color.Color, error) {
	if hs, ok := seabornPalettes[name]; ok {
		cs := make([]color.Color, n)
		for i := range cs {
			cs[i] = hex(hs[i%len(hs)])
		}
		return cs, nil
	}
	k := n
	if k < 3 {
		k = 3
	}
	p, err := brewer.GetPalette(brewer.TypeAny, name, k)
	if err != nil {
		return nil, errors.Wrapf(err, "palette %q", name)
	}
	return p.Colors()[:n], nil
}

// DefaultColor is the first color of the "deep" palette, used for
// single series.
var DefaultColor = hex(seabornPalettes["deep"][0])

// ----------------------------------------------------------------------------
// Laminar classes

// LaminarColors are the colors of the von Economo laminar classes 1 to 6.
var LaminarColors = []color.Color{
	colornames.Purple,
	colornames.Blue,
	colornames.Green,
	colornames.Orange,
	colornames.Yellow,
	colornames.Cyan,
}

// LaminarMarkers are the marker tokens of laminar classes 1 to 5.
var LaminarMarkers = []string{"o", "^", "s", "v", "d"}

// LaminarColor returns the color of laminar class c (1 based).
func LaminarColor(c int) (color.Color, bool) {
	if c < 1 || c > len(LaminarColors) {
		return nil, false
	}
	return LaminarColors[c-1], true
}

// LaminarColorMap returns LaminarColors as a map keyed by class.
func LaminarColorMap() map[float64]color.Color {
	m := make(map[float64]color.Color, len(LaminarColors))
	for i, c := range LaminarColors {
		m[float64(i+1)] = c
	}
	return m
}
