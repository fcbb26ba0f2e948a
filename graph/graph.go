// Package graph turns the free squares of a grid snapshot into an indexed
// graph for path search.
//
// Nodes are numbered in row-major order over the interior of the grid,
// skipping walls and every square the snake occupies. Adjacency lives in a
// single N×N buffer owned by the Graph.
package graph

import (
	"errors"
	"fmt"

	"github.com/cmars/gridsnek/grid"
)

// DefaultMaxNodes bounds the adjacency buffer to 2500² entries.
const DefaultMaxNodes = 2500

// ErrAllocation is returned when the graph would not fit the node capacity.
var ErrAllocation = errors.New("graph allocation failed")

// Graph is immutable once built.
type Graph struct {
	nodes     []grid.Position
	index     map[grid.Position]int
	adj       []bool
	neighbors [][]int
}

// Build creates the graph of free squares using DefaultMaxNodes.
func Build(g *grid.Grid, body grid.Snake) (*Graph, error) {
	return BuildCapped(g, body, DefaultMaxNodes)
}

// BuildCapped creates the graph of free squares, failing with ErrAllocation
// when more than maxNodes squares are free.
func BuildCapped(g *grid.Grid, body grid.Snake, maxNodes int) (*Graph, error) {
	occupied := body.Occupied()
	var nodes []grid.Position
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			p := grid.Position{X: x, Y: y}
			if g.At(p) == grid.Wall || occupied[p] {
				continue
			}
			nodes = append(nodes, p)
		}
	}
	n := len(nodes)
	if n > maxNodes {
		return nil, fmt.Errorf("%w: %d free cells exceed capacity %d", ErrAllocation, n, maxNodes)
	}

	gr := &Graph{
		nodes:     nodes,
		index:     make(map[grid.Position]int, n),
		adj:       make([]bool, n*n),
		neighbors: make([][]int, n),
	}
	for i, p := range nodes {
		gr.index[p] = i
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if grid.Manhattan(nodes[i], nodes[j]) == 1 {
				gr.adj[i*n+j] = true
				gr.neighbors[i] = append(gr.neighbors[i], j)
			}
		}
	}
	return gr, nil
}

// Len is the node count.
func (gr *Graph) Len() int { return len(gr.nodes) }

// Node returns the grid position of node i.
func (gr *Graph) Node(i int) grid.Position { return gr.nodes[i] }

// Index returns the node index of p, if p is a node.
func (gr *Graph) Index(p grid.Position) (int, bool) {
	i, ok := gr.index[p]
	return i, ok
}

// Adjacent reports whether nodes i and j are grid neighbours.
func (gr *Graph) Adjacent(i, j int) bool {
	return gr.adj[i*len(gr.nodes)+j]
}

// Neighbors returns the nodes adjacent to i in ascending index order. The
// slice is shared and must not be modified.
func (gr *Graph) Neighbors(i int) []int {
	return gr.neighbors[i]
}

// AdjacentTo returns the nodes orthogonally adjacent to p, which need not be
// a node itself, in North, East, South, West order.
func (gr *Graph) AdjacentTo(p grid.Position) []int {
	var out []int
	for _, q := range p.Neighbors() {
		if i, ok := gr.index[q]; ok {
			out = append(out, i)
		}
	}
	return out
}
