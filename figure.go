package figure

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrClosed is returned when a closed Figure is modified or saved.
var ErrClosed = errors.New("figure: closed")

// A Figure is a composite of panels on one canvas. It is built with
// NewFigure, populated with AddPanel or AddGrid, written with Save and
// released with Close. After Close every mutation fails with ErrClosed.
type Figure struct {
	Width, Height vg.Length
	Style         Style

	panels   []*Panel
	warnings []error
	canvas   *vgimg.Canvas
	dpi      float64
	closed   bool
}

// NewFigure returns an empty figure of the given size.
func NewFigure(width, height vg.Length, style Style) *Figure {
	return &Figure{
		Width:  width,
		Height: height,
		Style:  style,
		dpi:    vgimg.DefaultDPI,
	}
}

// AddPanel adds a new, empty panel at r.
func (f *Figure) AddPanel(r Rect) (*Panel, error) {
	if f.closed {
		return nil, ErrClosed
	}
	p := newPanel(f, r)
	f.panels = append(f.panels, p)
	return p, nil
}

// AddGrid adds one panel for each cell of g in row-major order.
func (f *Figure) AddGrid(g GridSpec) ([]*Panel, error) {
	if f.closed {
		return nil, ErrClosed
	}
	cells := g.Cells()
	panels := make([]*Panel, len(cells))
	for i, r := range cells {
		panels[i], _ = f.AddPanel(r)
	}
	return panels, nil
}

// Panels returns the panels of f in the order they were added.
func (f *Figure) Panels() []*Panel { return f.panels }

// Warnings returns the problems recorded while populating and
// rendering f. A warning never aborts the figure.
func (f *Figure) Warnings() []error { return f.warnings }

func (f *Figure) warn(err error) {
	f.warnings = append(f.warnings, err)
	Logger.Printf("warning: %v", err)
}

// Closed reports whether f has been closed.
func (f *Figure) Closed() bool { return f.closed }

// Render draws all panels of f onto a fresh canvas at the given dpi.
func (f *Figure) Render(dpi int) (*vgimg.Canvas, error) {
	if f.closed {
		return nil, ErrClosed
	}
	f.dpi = float64(dpi)
	cnv := vgimg.NewWith(
		vgimg.UseWH(f.Width, f.Height),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(f.Style.Background),
	)
	dc := draw.New(cnv)
	for _, p := range f.panels {
		p.draw(f.cell(dc, p.Rect))
	}
	f.canvas = cnv
	debugf("rendered %d panels at %d dpi, %d warnings", len(f.panels), dpi, len(f.warnings))
	return cnv, nil
}

// cell returns the part of c covered by r.
func (f *Figure) cell(c draw.Canvas, r Rect) draw.Canvas {
	w, h := c.Max.X-c.Min.X, c.Max.Y-c.Min.Y
	return draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: c.Min.X + vg.Length(r.Left)*w, Y: c.Min.Y + vg.Length(r.Bottom)*h},
			Max: vg.Point{X: c.Min.X + vg.Length(r.Right)*w, Y: c.Min.Y + vg.Length(r.Top)*h},
		},
	}
}

// WriteTo renders f at dpi and writes the full canvas as PNG to w.
func (f *Figure) WriteTo(w io.Writer, dpi int) (int64, error) {
	cnv, err := f.Render(dpi)
	if err != nil {
		return 0, err
	}
	return vgimg.PngCanvas{Canvas: cnv}.WriteTo(w)
}

// Save renders f at dpi and writes it as PNG to path. Surrounding
// background is cropped away, leaving a margin of a tenth of an inch.
// An existing file is overwritten.
func (f *Figure) Save(path string, dpi int) error {
	cnv, err := f.Render(dpi)
	if err != nil {
		return err
	}
	img := Tight(cnv.Image(), f.Style.Background, dpi/10)

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot save figure")
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return errors.Wrapf(err, "cannot encode %s", path)
	}
	return errors.Wrapf(file.Close(), "cannot save %s", path)
}

// Close releases the canvas of f. Closing twice is a no-op.
func (f *Figure) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.canvas = nil
	debugf("closed figure with %d panels", len(f.panels))
	return nil
}

// Tight crops img to the bounding box of all pixels which differ from
// bg, enlarged by pad pixels on each side. A blank image is returned
// unchanged.
func Tight(img image.Image, bg color.Color, pad int) image.Image {
	b := img.Bounds()
	br, bgg, bb, ba := bg.RGBA()
	isBg := func(x, y int) bool {
		r, g, b, a := img.At(x, y).RGBA()
		return r == br && g == bgg && b == bb && a == ba
	}

	box := image.Rectangle{Min: b.Max, Max: b.Min}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isBg(x, y) {
				continue
			}
			if x < box.Min.X {
				box.Min.X = x
			}
			if y < box.Min.Y {
				box.Min.Y = y
			}
			if x >= box.Max.X {
				box.Max.X = x + 1
			}
			if y >= box.Max.Y {
				box.Max.Y = y + 1
			}
		}
	}
	if box.Empty() {
		return img
	}
	box = box.Inset(-pad).Intersect(b)

	si, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	})
	if !ok {
		return img
	}
	return si.SubImage(box)
}
