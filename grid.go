package figure

import "fmt"

// Rect is a rectangle in figure coordinates: (0,0) is the lower left
// and (1,1) the upper right corner of the figure. Rects may extend
// beyond the figure.
type Rect struct {
	Left, Bottom, Right, Top float64
}

// RectAt returns the Rect with lower left corner (left, bottom) and the
// given width and height, like matplotlib's add_axes.
func RectAt(left, bottom, width, height float64) Rect {
	return Rect{Left: left, Bottom: bottom, Right: left + width, Top: bottom + height}
}

// Width of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height of r.
func (r Rect) Height() float64 { return r.Top - r.Bottom }

func (r Rect) String() string {
	return fmt.Sprintf("[%.3g,%.3g]x[%.3g,%.3g]", r.Left, r.Right, r.Bottom, r.Top)
}

// GridSpec lays out Rows x Cols cells inside [Left,Right]x[Bottom,Top].
// WSpace and HSpace are the gaps between cells as fractions of the
// average cell width and height.
type GridSpec struct {
	Rows, Cols int

	Left, Right, Bottom, Top float64
	WSpace, HSpace           float64
}

// NewGridSpec returns a rows x cols grid with matplotlib's default
// margins and spacing.
func NewGridSpec(rows, cols int) GridSpec {
	return GridSpec{
		Rows: rows, Cols: cols,
		Left: 0.125, Right: 0.9, Bottom: 0.11, Top: 0.88,
		WSpace: 0.2, HSpace: 0.2,
	}
}

// Cells returns the Rects of all cells in row-major order starting in
// the top left corner.
func (g GridSpec) Cells() []Rect {
	if g.Rows < 1 || g.Cols < 1 {
		return nil
	}
	rows, cols := float64(g.Rows), float64(g.Cols)
	cellH := (g.Top - g.Bottom) / (rows + g.HSpace*(rows-1))
	cellW := (g.Right - g.Left) / (cols + g.WSpace*(cols-1))
	sepH, sepW := g.HSpace*cellH, g.WSpace*cellW

	cells := make([]Rect, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		top := g.Top - float64(r)*(cellH+sepH)
		for c := 0; c < g.Cols; c++ {
			left := g.Left + float64(c)*(cellW+sepW)
			cells = append(cells, Rect{
				Left: left, Right: left + cellW,
				Bottom: top - cellH, Top: top,
			})
		}
	}
	return cells
}

// Cell returns the cell in row r and column c.
func (g GridSpec) Cell(r, c int) Rect {
	return g.Cells()[r*g.Cols+c]
}
