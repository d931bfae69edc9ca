package network

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"
)

// Orientation is the anatomical plane a network is projected onto.
type Orientation int

const (
	Axial Orientation = iota
	Coronal
	Sagittal
)

func (o Orientation) String() string {
	switch o {
	case Axial:
		return "axial"
	case Coronal:
		return "coronal"
	case Sagittal:
		return "sagittal"
	}
	return "unknown"
}

// ParseOrientation parses axial, coronal or sagittal.
func ParseOrientation(s string) (Orientation, error) {
	for _, o := range []Orientation{Axial, Coronal, Sagittal} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, errors.Errorf("network: unknown orientation %q", s)
}

// Centroids are the region centers in mm.
type Centroids struct {
	X, Y, Z []float64
}

// Len returns the number of centroids.
func (c Centroids) Len() int { return len(c.X) }

func (c Centroids) check() error {
	if len(c.Y) != len(c.X) || len(c.Z) != len(c.X) {
		return errors.Errorf("network: centroid coordinates of length %d, %d, %d", len(c.X), len(c.Y), len(c.Z))
	}
	return nil
}

// Layout projects the centroids onto the plane o: x/y for axial, x/z
// for coronal and y/z for sagittal views.
func (c Centroids) Layout(o Orientation) (plotter.XYs, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	h, v := c.X, c.Y
	switch o {
	case Coronal:
		v = c.Z
	case Sagittal:
		h, v = c.Y, c.Z
	}
	xy := make(plotter.XYs, len(h))
	for i := range xy {
		xy[i].X, xy[i].Y = h[i], v[i]
	}
	return xy, nil
}

// DrawOrder returns the nodes sorted along the axis perpendicular to
// o, far ones first, so that nearer nodes are drawn on top. Only nodes
// in subset are returned; a nil subset means all nodes.
func (c Centroids) DrawOrder(o Orientation, subset []int) []int {
	depth := c.X
	switch o {
	case Axial:
		depth = c.Z
	case Coronal:
		depth = c.Y
	}
	order := make([]int, len(depth))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return depth[order[i]] < depth[order[j]] })
	if subset == nil {
		return order
	}
	keep := make(map[int]bool, len(subset))
	for _, n := range subset {
		keep[n] = true
	}
	filtered := order[:0]
	for _, n := range order {
		if keep[n] {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

// AxisLimits returns xmin, xmax, ymin, ymax of the anatomical view o
// in mm.
func AxisLimits(o Orientation) [4]float64 {
	switch o {
	case Axial:
		return [4]float64{-70, 70, -105, 70}
	case Coronal:
		return [4]float64{-70, 70, -45, 75}
	}
	return [4]float64{-105, 70, -45, 75}
}

// CircleRadius is the radius nodes of a circular layout lie on.
const CircleRadius = 0.5

// CircularLayout places the nodes on a circle of CircleRadius in the
// given order, clockwise starting at the top. It returns the positions
// indexed by node and the angle of every node in degrees.
func CircularLayout(order []int) (pos plotter.XYs, theta []float64) {
	n := len(order)
	pos = make(plotter.XYs, n)
	theta = make([]float64, n)
	for i, node := range order {
		t := math.Mod(450-float64(i)*360/float64(n), 360)
		a := t * math.Pi / 180
		pos[node].X, pos[node].Y = CircleRadius*math.Cos(a), CircleRadius*math.Sin(a)
		theta[node] = t
	}
	return pos, theta
}

// SortNodes returns the node indices sorted by the keys, earlier keys
// first, ties broken by node index.
func SortNodes(keys ...[]float64) []int {
	if len(keys) == 0 {
		return nil
	}
	order := make([]int, len(keys[0]))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		for _, k := range keys {
			if k[a] != k[b] {
				return k[a] < k[b]
			}
		}
		return a < b
	})
	return order
}
