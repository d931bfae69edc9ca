package figure

import (
	"gonum.org/v1/plot/vg"
)

// Laminar numerals and their boundaries in pixel rows of the cortical
// layers schematic (after dropping its top 30 rows).
var (
	LaminaNumerals   = []string{"I", "II", "III", "IV", "V", "VI", "WM"}
	SchematicBorders = []float64{0, 113, 166, 419, 499, 653, 945, 1170}
)

// Schematic shows a picture of the cortical layers and writes the
// numeral of each layer left of it, centered between the layer's
// boundaries.
type Schematic struct {
	*Image

	// Borders are the pixel rows separating the layers, Labels the
	// len(Borders)-1 layer names.
	Borders []float64
	Labels  []string
}

// NewSchematic returns the cortical layer schematic stored at path.
func NewSchematic(path string) *Schematic {
	return &Schematic{
		Image:   &Image{Path: path, Crop: Crop{Top: 30}},
		Borders: SchematicBorders,
		Labels:  LaminaNumerals,
	}
}

// Draw implements Geom.
func (s *Schematic) Draw(p *Panel) {
	if s.img == nil {
		return
	}
	s.Image.Draw(p)

	b := s.img.Bounds()
	rect := fitRect(p.Canvas.Rectangle, b)
	w, h := rect.Max.X-rect.Min.X, rect.Max.Y-rect.Min.Y
	scale := h / vg.Length(b.Dy())

	ts := FontSize(p.Style.Text, p.Style.Text.Font.Size/2)
	x := rect.Min.X - 0.15*w
	for i, l := range s.Labels {
		if i+1 >= len(s.Borders) {
			break
		}
		mid := (s.Borders[i] + s.Borders[i+1]) / 2
		y := rect.Max.Y - vg.Length(mid)*scale
		p.Canvas.FillText(ts, vg.Point{X: x, Y: y}, l)
	}
}

// AddSchematic adds the cortical layer schematic at path in a panel
// at r.
func AddSchematic(f *Figure, r Rect, path string) (*Panel, error) {
	p, err := f.AddPanel(r)
	if err != nil {
		return nil, err
	}
	p.AxisOff = true
	return p, p.Add(NewSchematic(path))
}
