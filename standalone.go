package figure

import (
	"gonum.org/v1/plot/vg"
)

// StandaloneRect is the panel position of single panel figures, leaving
// room for tick labels and axis titles.
var StandaloneRect = Rect{Left: 0.18, Bottom: 0.15, Right: 0.95, Top: 0.92}

// SaveStandalone renders a single panel figure of the given size to
// path: it creates the figure, lets fill populate the panel, saves the
// figure at dpi and closes it, also if fill fails.
func SaveStandalone(path string, width, height vg.Length, style Style, dpi int, fill func(*Panel) error) error {
	f := NewFigure(width, height, style)
	defer f.Close()

	p, err := f.AddPanel(StandaloneRect)
	if err != nil {
		return err
	}
	if err := fill(p); err != nil {
		return err
	}
	return f.Save(path, dpi)
}
