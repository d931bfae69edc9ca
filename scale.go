package figure

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
)

// DefaultPad is the fraction of the data range added on both sides of
// an autoscaled axis. With 0.05 the data cover about 90% of the axis.
const DefaultPad = 0.05

// CalcMinMax returns display bounds for x: the data range widened by pad
// times the range on both sides.
//
// A series with zero range yields (mean, mean). An empty series or one
// containing NaN or ±Inf yields (NaN, NaN); use Interval.Valid to detect
// this and leave the axis limits alone.
func CalcMinMax(x []float64, pad float64) (low, high float64) {
	if len(x) == 0 {
		return math.NaN(), math.NaN()
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return math.NaN(), math.NaN()
		}
	}

	min, max := floats.Min(x), floats.Max(x)
	r := max - min
	if r > 0 {
		return min - pad*r, max + pad*r
	}
	mean := stat.Mean(x, nil)
	return mean, mean
}

// Percentile returns the p-th percentile (0 <= p <= 100) of x, linearly
// interpolating between the two closest ranks. x need not be sorted.
// An empty x yields NaN.
func Percentile(x []float64, p float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	s := append([]float64(nil), x...)
	sort.Float64s(s)
	return percentileSorted(s, p)
}

func percentileSorted(s []float64, p float64) float64 {
	if p <= 0 {
		return s[0]
	}
	if p >= 100 {
		return s[len(s)-1]
	}
	pos := p / 100 * float64(len(s)-1)
	lo := math.Floor(pos)
	i := int(lo)
	if i+1 >= len(s) {
		return s[i]
	}
	return s[i] + (pos-lo)*(s[i+1]-s[i])
}

// ----------------------------------------------------------------------------
// Scale

// Scale is a generalized axis: While a panel has exactly two axes (the x-axis
// and the y-axis) it can have more scales, e.g. a color scale or a size scale.
type Scale struct {
	// Title is the scale's title.
	Title string

	// Data is the range covered by actual data.
	Data Interval

	// Interval captures the range of this scale. It may be larger or
	// smaller than the actual Data range.
	Interval

	// ScaleType determines the fundamental nature of the scale.
	ScaleType ScaleType

	// Autoscaling can be used to control autoscaling of this scale.
	Autoscaling

	// Ticker is responsible for generating the ticks. A nil Ticker
	// draws no ticks.
	Ticker plot.Ticker

	// Inverted scales map Max to the low end of the canvas.
	Inverted bool

	// Trans maps the scale's Interval to display units, used by the
	// size scale.
	Trans Transformation
}

// NewScale returns a new linear scale which autoscales to the actual data
// and places at most 5 bins between its ticks.
func NewScale() *Scale {
	s := &Scale{
		Data:      unsetInterval(),
		Interval:  unsetInterval(),
		ScaleType: Linear,
		Autoscaling: Autoscaling{
			MinRange: unsetInterval(),
			MaxRange: unsetInterval(),
		},
		Ticker: NBins{N: 5},
		Trans:  LinearTrans,
	}
	s.Autoscaling.Expand.Relative = DefaultPad

	return s
}

// DataToUnit maps the interval [s.Min, s.Max] to [0, 1].
// Values outside of [s.Min, s.Max] are mapped to values < 0 or > 1.
// If s's Interval is degenerate or unset DataToUnit returns NaN.
func (s *Scale) DataToUnit(x float64) float64 {
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min == s.Max {
		return math.NaN()
	}
	u := (x - s.Min) / (s.Max - s.Min)
	if s.Inverted {
		u = 1 - u
	}
	return u
}

// UpdateData updates s to cover i.
func (s *Scale) UpdateData(i Interval) {
	s.Data.Update(i.Min)
	s.Data.Update(i.Max)
}

// Fix fixes both ends of s. A NaN end is left to autoscaling.
// A pair from CalcMinMax that is not Valid leaves s autoscaling.
func (s *Scale) Fix(min, max float64) {
	s.FixMin(min)
	s.FixMax(max)
}

// FixMin fixes the min of s to x. If x is NaN the min is determined by
// autoscaling to the actual data.
func (s *Scale) FixMin(x float64) {
	s.MinRange.Min = x
	s.MinRange.Max = x
}

// FixMax fixes the max of s to x. If x is NaN the max is determined by
// autoscaling to the actual data.
func (s *Scale) FixMax(x float64) {
	s.MaxRange.Min = x
	s.MaxRange.Max = x
}

// HasData reports whether the Data interval of s is valid.
func (s *Scale) HasData() bool {
	return s.Data.Valid()
}

// InRange reports whether x lies in the range of s, up to rounding.
func (s *Scale) InRange(x float64) bool {
	lo, hi := s.Min, s.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	eps := 1e-9 * (hi - lo)
	return x >= lo-eps && x <= hi+eps
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.3g:%.3g] Data=[%.3g:%.3g] %s %q",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.ScaleType, s.Title)
}

func fixed(r Interval) bool {
	return !math.IsNaN(r.Min) && r.Min == r.Max
}

// autoscale turns the data range into an actual scale range.
func (s *Scale) autoscale() {
	if fixed(s.MinRange) {
		s.Min = s.MinRange.Min
	}
	if fixed(s.MaxRange) {
		s.Max = s.MaxRange.Min
	}
	if !s.HasData() {
		return
	}

	ext := s.Expand.Relative*(s.Data.Max-s.Data.Min) + s.Expand.Absolute

	// Determine the left edge of s.
	if !fixed(s.MinRange) {
		s.Min = s.Data.Min

		// Apply expansion.
		switch s.ScaleType {
		case Linear:
			s.Min -= ext
		case Discrete:
			s.Min -= 0.5 + s.Expand.Absolute
		default:
			panic(s.ScaleType)
		}

		// Clip autoscaling
		if s.MinRange.Min > s.Min {
			s.Min = s.MinRange.Min
		}
		if s.MinRange.Max < s.Min {
			s.Min = s.MinRange.Max
		}
	}

	// Determine the right edge of s.
	if !fixed(s.MaxRange) {
		s.Max = s.Data.Max

		// Apply expansion.
		switch s.ScaleType {
		case Linear:
			s.Max += ext
		case Discrete:
			s.Max += 0.5 + s.Expand.Absolute
		default:
			panic(s.ScaleType)
		}

		// Clip autoscaling
		if s.MaxRange.Min > s.Max {
			s.Max = s.MaxRange.Min
		}
		if s.MaxRange.Max < s.Max {
			s.Max = s.MaxRange.Max
		}
	}
}

// deDegenerate makes sure s spans a non-empty interval: unset ends
// become -1 and 1, a single value v is widened to v ± |v|/2 (or ± 1
// for v == 0).
func (s *Scale) deDegenerate() {
	if math.IsNaN(s.Min) && math.IsNaN(s.Max) {
		s.Min, s.Max = -1, 1
		return
	}
	if math.IsNaN(s.Min) {
		s.Min = s.Max - 1
	}
	if math.IsNaN(s.Max) {
		s.Max = s.Min + 1
	}
	if s.Min == s.Max {
		d := math.Abs(s.Min) / 2
		if d == 0 {
			d = 1
		}
		s.Min, s.Max = s.Min-d, s.Max+d
	}
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Valid reports whether both ends of i are set.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Mid returns the midpoint of i.
func (i Interval) Mid() float64 {
	return (i.Min + i.Max) / 2
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j are the same interval, treating NaN
// ends as equal to each other.
func (i Interval) Equal(j Interval) bool {
	eq := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return eq(i.Min, j.Min) && eq(i.Max, j.Max)
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the handful known scale types.
type ScaleType int

// String returns the type of st.
func (st ScaleType) String() string {
	return []string{"linear", "discrete"}[int(st)]
}

const (
	Linear ScaleType = iota
	Discrete
)

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the min and max value of a scale are scaled.
// Setting a range to a degenerate interval [f:f] will turn off autoscaling
// and fix the value to f. A non-degenerate range [u:v] will allow autoscaling
// between u and v. A NaN value works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the actual data range is expanded.
	Expand struct {
		Absolute float64
		Relative float64
	}

	MinRange Interval // MinRange determines the allowed range of the Min of a scale.
	MaxRange Interval // MaxRange determines the allowed range of the Max of a scale.
}
