package figure

import (
	"math"
	"strconv"
	"testing"
)

var transformationTests = []struct {
	trans    Transformation
	from, to Interval
	x, want  float64
}{
	// Ages onto a unit axis.
	{LinearTrans, Interval{14, 24}, Interval{0, 1}, 14, 0},
	{LinearTrans, Interval{14, 24}, Interval{0, 1}, 19, 0.5},
	{LinearTrans, Interval{14, 24}, Interval{0, 1}, 24, 1},
	{LinearTrans, Interval{0, 1}, Interval{100, 0}, 0.25, 75},

	// Participation coefficients onto radii between 2 and 20.
	{SqrtTrans, Interval{-10, 30}, Interval{2, 20}, -10, 2.0},
	{SqrtTrans, Interval{-10, 30}, Interval{2, 20}, 0, 10.15},
	{SqrtTrans, Interval{-10, 30}, Interval{2, 20}, 10, 14.21},
	{SqrtTrans, Interval{-10, 30}, Interval{2, 20}, 30, 20.00},

	// Degrees onto radii with degree 0 at radius 0.
	{SqrtTransFix0, Interval{10, 40}, Interval{3, 6}, 0, 0},
	{SqrtTransFix0, Interval{10, 40}, Interval{3, 6}, 10, 3},
	{SqrtTransFix0, Interval{10, 40}, Interval{3, 6}, 40, 6},
}

func equal64(a, b float64) bool {
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 0.006
}

func TestTransform(t *testing.T) {
	for i, tc := range transformationTests {
		t.Run(tc.trans.Name+"/"+strconv.Itoa(i), func(t *testing.T) {
			if got := tc.trans.Trans(tc.from, tc.to, tc.x); !equal64(got, tc.want) {
				t.Errorf("%s.Trans(%v,%v,%g) = %g, want %g",
					tc.trans.Name, tc.from, tc.to, tc.x, got, tc.want)
			}
			y := tc.trans.Trans(tc.from, tc.to, tc.x)
			if got := tc.trans.Inverse(tc.from, tc.to, y); math.Abs(got-tc.x) > 1e-9 {
				t.Errorf("%s.Inverse(%v,%v,%g) = %g, want %g",
					tc.trans.Name, tc.from, tc.to, y, got, tc.x)
			}
		})
	}
}

func TestAreaDoubles(t *testing.T) {
	from, to := Interval{1, 50}, Interval{1, 10}
	r1 := SqrtTransFix0.Trans(from, to, 10)
	r2 := SqrtTransFix0.Trans(from, to, 20)
	if math.Abs(r2*r2-2*r1*r1) > 1e-9 {
		t.Errorf("area of degree 20 is %g, want twice %g", r2*r2, r1*r1)
	}
}
