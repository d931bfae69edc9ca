package network

import (
	"math"
	"reflect"
	"testing"
)

// testGraph has degrees 3, 3, 2, 3, 1.
func testGraph(t *testing.T) *Graph {
	g, err := FromEdges(5, [][2]int{{0, 1}, {2, 0}, {0, 3}, {1, 2}, {3, 1}, {3, 4}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return g
}

func TestGraph(t *testing.T) {
	g := testGraph(t)
	if got := g.Degrees(); !reflect.DeepEqual(got, []float64{3, 3, 2, 3, 1}) {
		t.Errorf("Degrees()=%v", got)
	}
	want := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {3, 4}}
	if got := g.Edges(); !reflect.DeepEqual(got, want) {
		t.Errorf("Edges()=%v, want %v", got, want)
	}
	if !g.HasEdge(4, 3) || g.HasEdge(4, 0) {
		t.Errorf("HasEdge broken")
	}

	if err := g.AddEdge(2, 2); err == nil {
		t.Errorf("self loop accepted")
	}
	if err := g.AddEdge(0, 5); err == nil {
		t.Errorf("edge to missing node accepted")
	}
}

func TestConnTypes(t *testing.T) {
	g := testGraph(t)

	// 40th percentile of 1,2,3,3,3 is 2.6: hubs are 0, 1 and 3.
	if th := g.HubThreshold(40); math.Abs(th-2.6) > 1e-12 {
		t.Fatalf("HubThreshold(40)=%g", th)
	}
	types, err := g.ConnTypes(40, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := map[[2]int]ConnType{
		{0, 1}: Rich, {0, 2}: Feeder, {0, 3}: Rich,
		{1, 2}: Feeder, {1, 3}: Rich, {3, 4}: Feeder,
	}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("ConnTypes=%v, want %v", types, want)
	}

	sparse, _ := FromEdges(5, [][2]int{{2, 4}, {0, 1}})
	types, err = g.ConnTypes(40, sparse)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if types[[2]int{2, 4}] != Peripheral || types[[2]int{0, 1}] != Rich || len(types) != 2 {
		t.Errorf("ConnTypes on other graph=%v", types)
	}

	if _, err := g.ConnTypes(40, New(3)); err == nil {
		t.Errorf("size mismatch accepted")
	}

	edges, nodes := g.RichClub(40)
	if !reflect.DeepEqual(nodes, []int{0, 1, 3}) {
		t.Errorf("rich nodes=%v", nodes)
	}
	if !reflect.DeepEqual(edges, [][2]int{{0, 1}, {0, 3}, {1, 3}}) {
		t.Errorf("rich edges=%v", edges)
	}
}

func TestLayout(t *testing.T) {
	c := Centroids{
		X: []float64{1, 2, 3},
		Y: []float64{10, 20, 30},
		Z: []float64{300, 100, 200},
	}
	for _, tc := range []struct {
		o      Orientation
		x0, y0 float64
		order  []int
	}{
		{Axial, 1, 10, []int{1, 2, 0}},
		{Coronal, 1, 300, []int{0, 1, 2}},
		{Sagittal, 10, 300, []int{0, 1, 2}},
	} {
		t.Run(tc.o.String(), func(t *testing.T) {
			xy, err := c.Layout(tc.o)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if xy[0].X != tc.x0 || xy[0].Y != tc.y0 {
				t.Errorf("node 0 at %v", xy[0])
			}
			if got := c.DrawOrder(tc.o, nil); !reflect.DeepEqual(got, tc.order) {
				t.Errorf("DrawOrder=%v, want %v", got, tc.order)
			}
			o, err := ParseOrientation(tc.o.String())
			if err != nil || o != tc.o {
				t.Errorf("ParseOrientation(%q)=%v, %v", tc.o, o, err)
			}
		})
	}

	if got := c.DrawOrder(Axial, []int{0, 1}); !reflect.DeepEqual(got, []int{1, 0}) {
		t.Errorf("DrawOrder on subset=%v", got)
	}
	if _, err := (Centroids{X: []float64{1}}).Layout(Axial); err == nil {
		t.Errorf("ragged centroids accepted")
	}
	if _, err := ParseOrientation("oblique"); err == nil {
		t.Errorf("unknown orientation accepted")
	}
}

func TestCircularLayout(t *testing.T) {
	order := SortNodes([]float64{2, 1, 1, 0}, []float64{0, 5, 4, 0})
	if !reflect.DeepEqual(order, []int{3, 2, 1, 0}) {
		t.Fatalf("SortNodes=%v", order)
	}
	pos, theta := CircularLayout(order)
	wantTheta := []float64{180, 270, 0, 90}
	for i := range theta {
		if math.Abs(theta[i]-wantTheta[i]) > 1e-9 {
			t.Errorf("theta[%d]=%g, want %g", i, theta[i], wantTheta[i])
		}
	}
	// Node 3 comes first and sits at the top.
	if math.Abs(pos[3].X) > 1e-9 || math.Abs(pos[3].Y-CircleRadius) > 1e-9 {
		t.Errorf("first node at %v", pos[3])
	}
}
