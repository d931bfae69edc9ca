package figure

import (
	"fmt"
	"image"
	_ "image/jpeg" // schematics are JPEGs
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot/vg"
)

// MissingImageError reports an expected image file which does not
// exist.
type MissingImageError struct {
	Path string
}

func (e *MissingImageError) Error() string {
	return fmt.Sprintf("missing image %s", e.Path)
}

// LoadImage decodes the image file at path. A nonexistent file yields a
// *MissingImageError.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingImageError{Path: path}
		}
		return nil, errors.Wrap(err, "cannot load image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode %s", path)
	}
	return img, nil
}

// ----------------------------------------------------------------------------
// Crop

// Crop selects rows [Top, Bottom) and columns [Left, Right) of an
// image. Zero or negative Bottom and Right count from the far edge,
// like Python slices: Right == -100 drops the last 100 columns and
// Bottom == 0 keeps all rows.
type Crop struct {
	Top, Bottom, Left, Right int
}

// Crop rectangles matching the framing of the surface renderer's views.
var (
	LateralCrop    = Crop{Top: 115, Bottom: 564, Left: 105, Right: -100}
	HorizontalCrop = Crop{Top: 90, Bottom: 560, Left: 60, Right: -55}
	VerticalCrop   = Crop{Top: 70, Bottom: 580, Left: 40, Right: -35}

	// The combined 2x2 layout of CombineSurfaceViews.
	CombinedLateralCrop = Crop{Top: 58, Bottom: 598, Left: 60, Right: 740}
	CombinedMedialCrop  = Crop{Top: 28, Bottom: 618, Left: 60, Right: 740}
)

// CropFor returns the crop rectangle of a rendered surface view. Lateral
// views are framed differently from all others; the latter depend on
// whether the brains are laid out in a row.
func CropFor(path string, horizontal bool) Crop {
	switch {
	case strings.Contains(filepath.Base(path), "lateral"):
		return LateralCrop
	case horizontal:
		return HorizontalCrop
	}
	return VerticalCrop
}

// Rectangle returns the pixel rectangle c selects from b. The result is
// clipped to b and may be empty.
func (c Crop) Rectangle(b image.Rectangle) image.Rectangle {
	end := func(v, max int) int {
		if v <= 0 {
			return max + v
		}
		return v
	}
	r := image.Rect(
		b.Min.X+c.Left, b.Min.Y+c.Top,
		b.Min.X+end(c.Right, b.Dx()), b.Min.Y+end(c.Bottom, b.Dy()),
	)
	return r.Intersect(b)
}

// Apply returns the cropped copy of img.
func (c Crop) Apply(img image.Image) image.Image {
	r := c.Rectangle(img.Bounds())
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Copy(dst, image.Point{}, img, r, xdraw.Src, nil)
	return dst
}

// ----------------------------------------------------------------------------
// Image

// Image is a geom which shows a cropped image file centered in its
// panel, keeping the aspect ratio.
type Image struct {
	Path string
	Crop Crop

	img image.Image
}

// Check loads and crops the image.
func (im *Image) Check() error {
	if im.img != nil {
		return nil
	}
	img, err := LoadImage(im.Path)
	if err != nil {
		return err
	}
	im.img = im.Crop.Apply(img)
	if im.img.Bounds().Empty() {
		return errors.Errorf("crop %v leaves nothing of %s", im.Crop, im.Path)
	}
	return nil
}

// Draw implements Geom.
func (im *Image) Draw(p *Panel) {
	if im.img == nil {
		return
	}
	rect := fitRect(p.Canvas.Rectangle, im.img.Bounds())
	p.Canvas.DrawImage(rect, resample(im.img, rect, p.DPI()))
}

// fitRect returns the largest rectangle with the aspect ratio of b
// centered in r.
func fitRect(r vg.Rectangle, b image.Rectangle) vg.Rectangle {
	w, h := r.Max.X-r.Min.X, r.Max.Y-r.Min.Y
	aspect := vg.Length(b.Dx()) / vg.Length(b.Dy())
	if w/h > aspect {
		w = h * aspect
	} else {
		h = w / aspect
	}
	cx, cy := (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2
	return vg.Rectangle{
		Min: vg.Point{X: cx - w/2, Y: cy - h/2},
		Max: vg.Point{X: cx + w/2, Y: cy + h/2},
	}
}

// resample scales img to the pixel size of rect at dpi. Images which
// already fit are returned as is.
func resample(img image.Image, rect vg.Rectangle, dpi float64) image.Image {
	w := int((rect.Max.X - rect.Min.X).Dots(dpi) + 0.5)
	h := int((rect.Max.Y - rect.Min.Y).Dots(dpi) + 0.5)
	b := img.Bounds()
	if w <= 0 || h <= 0 || (w == b.Dx() && h == b.Dy()) {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// ----------------------------------------------------------------------------
// Image grids

// AddImageGrid adds one panel per path to f, placed in the cells of
// grid in row-major order with all decorations off. The crop of each
// image is chosen by crop. Missing images blank their panel when f is
// rendered.
func AddImageGrid(f *Figure, grid GridSpec, paths []string, crop func(path string) Crop) ([]*Panel, error) {
	cells := grid.Cells()
	if len(paths) > len(cells) {
		return nil, errors.Errorf("%d images for %d grid cells", len(paths), len(cells))
	}
	panels := make([]*Panel, len(paths))
	for i, path := range paths {
		p, err := f.AddPanel(cells[i])
		if err != nil {
			return nil, err
		}
		p.AxisOff = true
		if err := p.Add(&Image{Path: path, Crop: crop(path)}); err != nil {
			return nil, err
		}
		panels[i] = p
	}
	return panels, nil
}

// SurfaceViews returns the four rendered views belonging to the left
// hemisphere lateral view lateral, in the order lh lateral, lh medial,
// rh medial, rh lateral.
func SurfaceViews(lateral string) []string {
	dir, base := filepath.Split(lateral)
	medial := strings.Replace(base, "lateral", "medial", 1)
	return []string{
		lateral,
		dir + medial,
		dir + strings.Replace(medial, "_lh_", "_rh_", 1),
		dir + strings.Replace(base, "_lh_", "_rh_", 1),
	}
}
