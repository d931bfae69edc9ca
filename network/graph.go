// Package network holds the structural covariance network whose nodes
// are the cortical regions, the hub classification of its edges and the
// node layouts used to draw it.
package network

import (
	"sort"

	"github.com/HappyPenguin/figure"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is an undirected binary graph over the regions 0..n-1.
type Graph struct {
	g *simple.UndirectedGraph
	n int
}

// New returns a graph of n unconnected nodes.
func New(n int) *Graph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	return &Graph{g: g, n: n}
}

// FromEdges returns a graph of n nodes with the given edges.
func FromEdges(n int, edges [][2]int) (*Graph, error) {
	g := New(n)
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddEdge connects u and v.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return errors.Errorf("network: edge %d-%d outside of %d nodes", u, v, g.n)
	}
	if u == v {
		return errors.Errorf("network: self loop at %d", u)
	}
	g.g.SetEdge(g.g.NewEdge(simple.Node(u), simple.Node(v)))
	return nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return g.n }

// HasEdge reports whether u and v are connected.
func (g *Graph) HasEdge(u, v int) bool { return g.g.HasEdgeBetween(int64(u), int64(v)) }

// Degrees returns the degree of every node.
func (g *Graph) Degrees() []float64 {
	deg := make([]float64, g.n)
	for i := range deg {
		deg[i] = float64(g.g.From(int64(i)).Len())
	}
	return deg
}

// Edges returns all edges, each with the smaller node first, sorted.
func (g *Graph) Edges() [][2]int {
	var edges [][2]int
	for _, e := range graph.EdgesOf(g.g.Edges()) {
		u, v := int(e.From().ID()), int(e.To().ID())
		if u > v {
			u, v = v, u
		}
		edges = append(edges, [2]int{u, v})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

// HubThreshold returns the given percentile of the degrees of g.
// Nodes with a larger degree are hubs.
func (g *Graph) HubThreshold(percentile float64) float64 {
	return figure.Percentile(g.Degrees(), percentile)
}

// ConnType classifies an edge by the hub status of its end nodes.
type ConnType int

const (
	Peripheral ConnType = iota // between two non hubs
	Feeder                     // between a hub and a non hub
	Rich                       // between two hubs
)

func (c ConnType) String() string {
	switch c {
	case Peripheral:
		return "peripheral"
	case Feeder:
		return "feeder"
	case Rich:
		return "rich"
	}
	return "unknown"
}

// ConnTypes classifies the edges of on, which defaults to g, by the hubs
// of g: nodes whose degree in g exceeds the percentile threshold.
func (g *Graph) ConnTypes(percentile float64, on *Graph) (map[[2]int]ConnType, error) {
	if on == nil {
		on = g
	}
	if on.n != g.n {
		return nil, errors.Errorf("network: %d nodes vs %d nodes", on.n, g.n)
	}
	deg := g.Degrees()
	thresh := g.HubThreshold(percentile)
	types := make(map[[2]int]ConnType)
	for _, e := range on.Edges() {
		hubs := 0
		for _, n := range e {
			if deg[n] > thresh {
				hubs++
			}
		}
		types[e] = ConnType(hubs)
	}
	return types, nil
}

// RichClub returns the hubs of g at the percentile and the edges
// between them.
func (g *Graph) RichClub(percentile float64) (edges [][2]int, nodes []int) {
	deg := g.Degrees()
	thresh := g.HubThreshold(percentile)
	for i, d := range deg {
		if d > thresh {
			nodes = append(nodes, i)
		}
	}
	types, _ := g.ConnTypes(percentile, nil)
	for _, e := range g.Edges() {
		if types[e] == Rich {
			edges = append(edges, e)
		}
	}
	return edges, nodes
}
