// Package hamilton searches a free-cell graph for a Hamiltonian path that
// starts next to the snake's head, passes the bonus and ends next to its tail.
package hamilton

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cmars/gridsnek/graph"
)

// ErrSearchExhausted is returned when no path was found, either because none
// exists or because the search ran out of budget.
var ErrSearchExhausted = errors.New("hamiltonian search exhausted")

// DefaultBudget is the default number of node expansions per search.
const DefaultBudget = 2_000_000

// ctxCheckEvery is how many expansions pass between context checks.
const ctxCheckEvery = 1024

var (
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridsnek_search_total",
		Help: "Hamiltonian searches by result",
	}, []string{"result"})

	searchExpansions = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridsnek_search_expansions",
		Help:    "Nodes pushed onto the path per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	})
)

// Problem describes one search.
type Problem struct {
	Graph *graph.Graph
	// Starts are nodes adjacent to the head, tried in order.
	Starts []int
	// Ends are nodes adjacent to the tail.
	Ends  []int
	Bonus int
}

// Result is a complete path of node indices.
type Result struct {
	Path       []int
	Expansions int
}

// Finder runs depth-first backtracking bounded by Budget node expansions
// and by the context. A zero Budget means unbounded.
type Finder struct {
	Budget int
}

// state is the search-local path. It is rebuilt for each start candidate.
type state struct {
	path         []int
	cursor       []int
	visited      []bool
	bonus        int
	bonusVisited bool
}

func (s *state) push(i int) {
	s.path = append(s.path, i)
	s.cursor = append(s.cursor, 0)
	s.visited[i] = true
	if i == s.bonus {
		s.bonusVisited = true
	}
}

func (s *state) pop() {
	last := len(s.path) - 1
	i := s.path[last]
	s.path = s.path[:last]
	s.cursor = s.cursor[:last]
	s.visited[i] = false
	if i == s.bonus {
		s.bonusVisited = false
	}
}

// Find returns the first path discovered, trying starts in order and
// neighbours in ascending index order, so the result is deterministic for a
// given problem.
func (f *Finder) Find(ctx context.Context, p Problem) (Result, error) {
	res, err := f.find(ctx, p)
	searchExpansions.Observe(float64(res.Expansions))
	switch {
	case err == nil:
		searchTotal.WithLabelValues("found").Inc()
	case errors.Is(err, errBudget):
		searchTotal.WithLabelValues("budget").Inc()
	default:
		searchTotal.WithLabelValues("exhausted").Inc()
	}
	return res, err
}

var errBudget = fmt.Errorf("%w: budget spent", ErrSearchExhausted)

func (f *Finder) find(ctx context.Context, p Problem) (Result, error) {
	g := p.Graph
	n := g.Len()
	if n == 0 || len(p.Starts) == 0 || len(p.Ends) == 0 {
		return Result{}, fmt.Errorf("%w: nothing to search", ErrSearchExhausted)
	}
	starts, ends := parityFilter(g, p.Starts, p.Ends)
	if len(starts) == 0 {
		return Result{}, fmt.Errorf("%w: no start and end of compatible colour", ErrSearchExhausted)
	}
	isEnd := make([]bool, n)
	for _, e := range ends {
		isEnd[e] = true
	}

	var expansions int
	for _, start := range starts {
		s := &state{
			path:    make([]int, 0, n),
			cursor:  make([]int, 0, n),
			visited: make([]bool, n),
			bonus:   p.Bonus,
		}
		s.push(start)
		expansions++

		for len(s.path) > 0 {
			depth := len(s.path) - 1
			cur := s.path[depth]

			if len(s.path) == n {
				if s.bonusVisited && isEnd[cur] {
					return Result{Path: s.path, Expansions: expansions}, nil
				}
				s.pop()
				continue
			}

			next := -1
			nbrs := g.Neighbors(cur)
			for s.cursor[depth] < len(nbrs) {
				j := nbrs[s.cursor[depth]]
				s.cursor[depth]++
				if s.visited[j] {
					continue
				}
				// j would be the last node: only a tail neighbour will do.
				if len(s.path) == n-1 && !isEnd[j] {
					continue
				}
				next = j
				break
			}
			if next < 0 {
				s.pop()
				continue
			}

			if f.Budget > 0 && expansions >= f.Budget {
				return Result{Expansions: expansions}, fmt.Errorf("%w after %d expansions", errBudget, expansions)
			}
			s.push(next)
			expansions++
			if expansions%ctxCheckEvery == 0 {
				if err := ctx.Err(); err != nil {
					return Result{Expansions: expansions}, fmt.Errorf("%w: %w", errBudget, err)
				}
			}
		}
	}
	return Result{Expansions: expansions}, fmt.Errorf("%w: no path from %d start(s)", ErrSearchExhausted, len(starts))
}

// parityFilter drops start and end candidates that cannot be endpoints of a
// Hamiltonian path. Grid graphs are bipartite by (x+y) parity, so a path
// through all nodes alternates colours: with an even node count the colours
// balance and the endpoints differ, with an odd count both endpoints take the
// majority colour.
func parityFilter(g *graph.Graph, starts, ends []int) ([]int, []int) {
	n := g.Len()
	var count [2]int
	for i := 0; i < n; i++ {
		count[colour(g, i)]++
	}
	ok := func(a, b int) bool {
		ca, cb := colour(g, a), colour(g, b)
		if n%2 == 0 {
			return count[0] == count[1] && ca != cb
		}
		major := 0
		if count[1] > count[0] {
			major = 1
		}
		return count[major]-count[1-major] == 1 && ca == major && cb == major
	}
	var fs, fe []int
	for _, s := range starts {
		for _, e := range ends {
			if ok(s, e) {
				fs = append(fs, s)
				break
			}
		}
	}
	for _, e := range ends {
		for _, s := range starts {
			if ok(s, e) {
				fe = append(fe, e)
				break
			}
		}
	}
	return fs, fe
}

func colour(g *graph.Graph, i int) int {
	p := g.Node(i)
	return (p.X + p.Y) & 1
}
