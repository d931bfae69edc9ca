package figure

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var calcMinMaxTests = []struct {
	x        []float64
	pad      float64
	low, upp float64
}{
	{[]float64{1, 2, 3, 4, 5}, DefaultPad, 0.8, 5.2},
	{[]float64{5, 1, 3}, 0, 1, 5},
	{[]float64{-1, 1}, 0.5, -2, 2},
	{[]float64{2, 2, 2}, DefaultPad, 2, 2},
	{[]float64{-0.3}, DefaultPad, -0.3, -0.3},
	{nil, DefaultPad, nan, nan},
	{[]float64{1, nan, 3}, DefaultPad, nan, nan},
	{[]float64{1, math.Inf(1)}, DefaultPad, nan, nan},
}

func TestCalcMinMax(t *testing.T) {
	for i, tc := range calcMinMaxTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			low, upp := CalcMinMax(tc.x, tc.pad)
			got, want := Interval{low, upp}, Interval{tc.low, tc.upp}
			if got.Valid() != want.Valid() ||
				(want.Valid() && (math.Abs(low-tc.low) > 1e-12 || math.Abs(upp-tc.upp) > 1e-12)) {
				t.Errorf("CalcMinMax(%v, %g) = %v, want %v", tc.x, tc.pad, got, want)
			}
		})
	}
}

func TestCalcMinMaxCoversData(t *testing.T) {
	x := []float64{0.012, -0.031, 0.004, 0.027, -0.008, 0.019}
	low, upp := CalcMinMax(x, DefaultPad)
	min, max := x[1], x[3]
	r := max - min
	if low > min || upp < max {
		t.Fatalf("[%g,%g] does not cover [%g,%g]", low, upp, min, max)
	}
	if math.Abs((min-low)-DefaultPad*r) > 1e-12 || math.Abs((upp-max)-DefaultPad*r) > 1e-12 {
		t.Errorf("padding of [%g,%g] is not %g of the range", low, upp, DefaultPad)
	}
	if f := r / (upp - low); math.Abs(f-1/1.1) > 1e-12 {
		t.Errorf("data cover %g of the axis, want %g", f, 1/1.1)
	}
}

var percentileTests = []struct {
	x    []float64
	p    float64
	want float64
}{
	{[]float64{1, 2, 3, 4, 5}, 50, 3},
	{[]float64{5, 4, 3, 2, 1}, 25, 2},
	{[]float64{1, 2, 3, 4}, 50, 2.5},
	{[]float64{1, 2, 3, 4}, 75, 3.25},
	{[]float64{1, 2, 3, 4}, 0, 1},
	{[]float64{1, 2, 3, 4}, 100, 4},
	{[]float64{10, 20}, 85, 18.5},
	{[]float64{7}, 30, 7},
}

func TestPercentile(t *testing.T) {
	for i, tc := range percentileTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := Percentile(tc.x, tc.p); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Percentile(%v, %g) = %g, want %g", tc.x, tc.p, got, tc.want)
			}
		})
	}
	if got := Percentile(nil, 50); !math.IsNaN(got) {
		t.Errorf("Percentile(nil) = %g, want NaN", got)
	}
}

func TestAutoscaleMatchesCalcMinMax(t *testing.T) {
	x := []float64{2.5, 0.4, 1.8, 3.3}
	s := NewScale()
	for _, v := range x {
		s.Data.Update(v)
	}
	s.autoscale()
	low, upp := CalcMinMax(x, DefaultPad)
	if math.Abs(s.Min-low) > 1e-12 || math.Abs(s.Max-upp) > 1e-12 {
		t.Errorf("autoscaled to [%g,%g], want [%g,%g]", s.Min, s.Max, low, upp)
	}
}

func TestScaleFix(t *testing.T) {
	s := NewScale()
	s.Data.Update(1, 9)
	s.Fix(-0.5, 12.5)
	s.autoscale()
	if s.Min != -0.5 || s.Max != 12.5 {
		t.Errorf("fixed scale = [%g,%g], want [-0.5,12.5]", s.Min, s.Max)
	}

	s = NewScale()
	s.Fix(nan, nan)
	s.Data.Update(0, 10)
	s.autoscale()
	if s.Min != -0.5 || s.Max != 10.5 {
		t.Errorf("NaN fix = [%g,%g], want autoscaled [-0.5,10.5]", s.Min, s.Max)
	}

	s = NewScale()
	s.FixMax(2.5)
	s.autoscale()
	s.deDegenerate()
	if s.Min != 1.5 || s.Max != 2.5 {
		t.Errorf("only max fixed = [%g,%g], want [1.5,2.5]", s.Min, s.Max)
	}
}

func TestDeDegenerate(t *testing.T) {
	for _, tc := range []struct{ min, max, wmin, wmax float64 }{
		{nan, nan, -1, 1},
		{4, 4, 2, 6},
		{0, 0, -1, 1},
		{-2, -2, -3, -1},
		{1, 3, 1, 3},
	} {
		s := NewScale()
		s.Min, s.Max = tc.min, tc.max
		s.deDegenerate()
		if s.Min != tc.wmin || s.Max != tc.wmax {
			t.Errorf("deDegenerate [%g,%g] = [%g,%g], want [%g,%g]",
				tc.min, tc.max, s.Min, s.Max, tc.wmin, tc.wmax)
		}
	}
}

func TestDataToUnitInverted(t *testing.T) {
	s := NewScale()
	s.Min, s.Max = -0.5, 12.5
	s.Inverted = true
	if u := s.DataToUnit(12.5); u != 0 {
		t.Errorf("inverted DataToUnit(max) = %g, want 0", u)
	}
	if u := s.DataToUnit(-0.5); u != 1 {
		t.Errorf("inverted DataToUnit(min) = %g, want 1", u)
	}
}
