package figure

import (
	"math"
	"sort"
)

// Levels returns the distinct non-NaN values of x in ascending order.
func Levels(x []float64) []float64 {
	seen := make(map[float64]bool, len(x))
	var ls []float64
	for _, v := range x {
		if math.IsNaN(v) || seen[v] {
			continue
		}
		seen[v] = true
		ls = append(ls, v)
	}
	sort.Float64s(ls)
	return ls
}

// Grouping partitions data points by a categorical value.
type Grouping struct {
	Levels []float64         // the sorted distinct categories
	Index  map[float64][]int // Index contains the indices for each category
}

// GroupBy groups the indices 0..len(cat)-1 by their category. NaN
// categories are dropped.
func GroupBy(cat []float64) Grouping {
	g := Grouping{
		Levels: Levels(cat),
		Index:  make(map[float64][]int),
	}
	for i, c := range cat {
		if math.IsNaN(c) {
			continue
		}
		g.Index[c] = append(g.Index[c], i)
	}
	return g
}

// Range returns the integer levels from floor(min) to floor(max), the
// box order used for laminar classes and modules.
func (g Grouping) Range() []float64 {
	if len(g.Levels) == 0 {
		return nil
	}
	lo := math.Floor(g.Levels[0])
	hi := math.Floor(g.Levels[len(g.Levels)-1])
	var r []float64
	for v := lo; v <= hi; v++ {
		r = append(r, v)
	}
	return r
}
