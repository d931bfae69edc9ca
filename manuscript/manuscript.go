// Package manuscript assembles the composite figures of the CT/MT
// manuscript from a measure dictionary, the CT covariance networks and
// the cortical surface renderings.
//
// Every figure function builds one figure.Figure with fixed panel
// coordinates, fills the panels through the renderers of package render
// and saves the result as PNG. A panel whose input is missing is blanked
// and reported through the figure's warnings; the rest of the figure is
// still written.
package manuscript

import (
	"image/color"
	"path/filepath"

	"github.com/HappyPenguin/figure"
	"github.com/HappyPenguin/figure/measure"
	"github.com/HappyPenguin/figure/network"
	"github.com/pkg/errors"
)

// DefaultDPI is the resolution of the composite figures.
const DefaultDPI = 100

// Options locate the inputs and outputs of the figures.
type Options struct {
	// FiguresDir receives FigureN.png. The cortical layer schematics
	// are expected two directories above it.
	FiguresDir string

	// ResultsDir holds the surface renderings in its PNGS directory.
	ResultsDir string

	MPM      string // multi parameter map of the MT measures, "MT" if empty
	RichClub bool   // show the rich club degree maps in Figure 4
	DPI      int    // DefaultDPI if zero
}

func (o Options) mpm() string {
	if o.MPM == "" {
		return "MT"
	}
	return o.MPM
}

func (o Options) dpi() int {
	if o.DPI == 0 {
		return DefaultDPI
	}
	return o.DPI
}

// png returns the surface rendering called name.
func (o Options) png(name string) string {
	return filepath.Join(o.ResultsDir, "PNGS", name)
}

// schematic returns the path of the cortical layer schematic of kind
// "cells" or "methods".
func (o Options) schematic(kind string) string {
	return filepath.Join(o.FiguresDir, "..", "..", "CorticalLayers_schematic_"+kind+".jpg")
}

// Data are the precomputed inputs of the figures.
type Data struct {
	Measures *measure.Dict

	// Bounds defaults to measure.ManuscriptBounds of Measures over
	// GeneRegions.
	Bounds *measure.Bounds

	// GeneRegions are the regions with usable gene expression data.
	GeneRegions []int

	// Networks holds the binarized CT covariance network at each cost
	// (2 and 10 are used).
	Networks map[int]*network.Graph

	// RichClub is the rich club coefficient of the cost 10 network at
	// each degree and RandomRichClub the same curve of each degree
	// preserving random graph.
	RichClub       []float64
	RandomRichClub [][]float64

	// GlobalMeasures holds samples of the render.GlobalMeasures of the
	// cost 10 network and of its random graphs.
	GlobalMeasures map[string][]float64
}

// bounds returns d.Bounds, computing the manuscript bounds on first use.
func (d *Data) bounds() (*measure.Bounds, error) {
	if d.Bounds != nil {
		return d.Bounds, nil
	}
	if d.Measures == nil {
		return nil, errors.New("manuscript: no measures")
	}
	b, err := measure.ManuscriptBounds(d.Measures, d.GeneRegions)
	if err != nil {
		return nil, err
	}
	d.Bounds = b
	return b, nil
}

// graph returns the network at cost.
func (d *Data) graph(cost int) (*network.Graph, error) {
	g, ok := d.Networks[cost]
	if !ok {
		return nil, errors.Errorf("manuscript: no network at cost %d", cost)
	}
	return g, nil
}

// centroids returns the region centroids stored under the x, y and z
// keys.
func (d *Data) centroids() (network.Centroids, error) {
	var c network.Centroids
	var err error
	if c.X, err = d.Measures.Get(measure.CentroidX); err != nil {
		return c, err
	}
	if c.Y, err = d.Measures.Get(measure.CentroidY); err != nil {
		return c, err
	}
	c.Z, err = d.Measures.Get(measure.CentroidZ)
	return c, err
}

// posterStyle mirrors seaborn's white "poster" context: twice the
// notebook sizes, scaled by fontScale.
func posterStyle(fontScale float64) figure.Style {
	return figure.ManuscriptStyle(2 * fontScale)
}

type renderer interface {
	Render(p *figure.Panel) error
}

// paint renders the renderer returned by build onto p. A failure of
// either blanks p.
func paint(p *figure.Panel, build func() (renderer, error)) {
	r, err := build()
	if err == nil {
		err = r.Render(p)
	}
	p.Fail(errors.Wrapf(err, "panel at %s", p.Rect))
}

// save writes f to dir/name at dpi and closes it. Blank panels have
// been logged by then.
func save(f *figure.Figure, dir, name string, dpi int) error {
	defer f.Close()
	return f.Save(filepath.Join(dir, name), dpi)
}

// axis returns the axis range of k.
func axis(b *measure.Bounds, k measure.Key) (figure.Interval, error) {
	lo, hi, err := b.Axis(k)
	return figure.Interval{Min: lo, Max: hi}, err
}

// colorbar returns the colorbar range of k.
func colorbar(b *measure.Bounds, k measure.Key) (figure.Interval, error) {
	lo, hi, err := b.Colorbar(k)
	return figure.Interval{Min: lo, Max: hi}, err
}

// brainRow shows the four surface views of lateral in the cells of
// grid and the colorbar built by cb at cbar.
func brainRow(f *figure.Figure, grid figure.GridSpec, lateral string, crop func(string) figure.Crop, cbar figure.Rect, cb func() (*figure.Colorbar, error)) error {
	if _, err := figure.AddImageGrid(f, grid, figure.SurfaceViews(lateral), crop); err != nil {
		return err
	}
	return addColorbar(f, cbar, cb)
}

// addColorbar adds the colorbar built by build at r. A build failure
// blanks the colorbar panel.
func addColorbar(f *figure.Figure, r figure.Rect, build func() (*figure.Colorbar, error)) error {
	cb, err := build()
	if err == nil {
		_, err = figure.AddColorbar(f, r, cb)
		return err
	}
	p, perr := f.AddPanel(r)
	if perr != nil {
		return perr
	}
	p.AxisOff = true
	p.Fail(err)
	return nil
}

// measureColorbar returns a colorbar of k spanning its colorbar range,
// labeled with its axis title.
func measureColorbar(b *measure.Bounds, k measure.Key, cmap string) (*figure.Colorbar, error) {
	iv, err := colorbar(b, k)
	if err != nil {
		return nil, err
	}
	return &figure.Colorbar{
		CMap:      cmap,
		CbarMin:   iv.Min,
		CbarMax:   iv.Max,
		YMin:      iv.Min,
		YMax:      iv.Max,
		Label:     measure.AxisLabel(k),
		ShowTicks: true,
	}, nil
}

// namedColor returns the matplotlib color name, black if unknown.
func namedColor(name string) color.Color {
	if c, ok := figure.NamedColor(name); ok {
		return c
	}
	return color.Black
}

// horizontalCrop picks the crop of the surface views in a row.
func horizontalCrop(path string) figure.Crop { return figure.CropFor(path, true) }

// layers renders several renderers onto the same panel in order.
type layers []renderer

// Render implements renderer.
func (l layers) Render(p *figure.Panel) error {
	for _, r := range l {
		if err := r.Render(p); err != nil {
			return err
		}
	}
	return nil
}
