package manuscript

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/HappyPenguin/figure"
	"gonum.org/v1/plot/vg"
)

// CombinedDPI is the resolution of the combined surface views.
const CombinedDPI = 300

// CombineSurfaceViews arranges the lateral (top) and medial (bottom)
// views of both hemispheres of a surface rendering in a 2x2 grid, above
// the colorbar strip of the last view. The views are read from
// dir/<measure>_<hemi>_<surface>_<stat>_<view>.png and the result is
// written to dir/<measure>_<surface>_<stat>_combined.png.
func CombineSurfaceViews(dir, measure, surface, stat string) error {
	view := func(hemi, v string) string {
		return filepath.Join(dir, strings.Join([]string{measure, hemi, surface, stat, v + ".png"}, "_"))
	}
	paths := []string{
		view("lh", "lateral"),
		view("rh", "lateral"),
		view("lh", "medial"),
		view("rh", "medial"),
	}

	f := figure.NewFigure(4.5*vg.Inch, 4*vg.Inch, figure.DefaultStyle(10))
	grid := figure.GridSpec{Rows: 2, Cols: 2, Left: 0, Right: 1, Bottom: 0.08, Top: 1}
	_, err := figure.AddImageGrid(f, grid, paths, func(path string) figure.Crop {
		if strings.HasSuffix(path, "lateral.png") {
			return figure.CombinedLateralCrop
		}
		return figure.CombinedMedialCrop
	})
	if err != nil {
		f.Close()
		return err
	}

	// The surface renderer draws its colorbar below the brain.
	strip, err := f.AddPanel(figure.Rect{Left: 0, Right: 1, Bottom: 0, Top: 0.08})
	if err != nil {
		f.Close()
		return err
	}
	strip.AxisOff = true
	if err := strip.Add(&figure.Image{Path: paths[3], Crop: figure.Crop{Top: 605}}); err != nil {
		f.Close()
		return err
	}

	return save(f, dir, fmt.Sprintf("%s_%s_%s_combined.png", measure, surface, stat), CombinedDPI)
}
