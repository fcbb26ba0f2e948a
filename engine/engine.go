// Package engine decides the snake's move for one tick.
//
// In exact mode the engine looks for a Hamiltonian path through every free
// cell, from beside the head to beside the tail by way of the bonus, and
// steps onto its first cell. When that fails it falls back to the heuristic
// dispatcher or a random direction. In heuristic mode it asks the dispatcher
// directly. Either way the answer is checked against the grid and replaced
// by a random valid move when it would be fatal.
package engine

import (
	"context"
	"errors"
	"math/rand"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cmars/gridsnek/config"
	"github.com/cmars/gridsnek/graph"
	"github.com/cmars/gridsnek/grid"
	"github.com/cmars/gridsnek/hamilton"
	"github.com/cmars/gridsnek/heuristic"
)

var (
	// ErrTargetUnreachable means there is no bonus among the free cells.
	ErrTargetUnreachable = errors.New("bonus not reachable")
	// ErrNoAdjacentFreeCell means the head or the tail has no free neighbour.
	ErrNoAdjacentFreeCell = errors.New("no free cell adjacent to head or tail")
)

var (
	decisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridsnek_decisions_total",
		Help: "Moves decided, by engine mode and the source of the move",
	}, []string{"mode", "source"})

	planFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridsnek_plan_failures_total",
		Help: "Exact planning attempts abandoned, by reason",
	}, []string{"reason"})
)

// Engine is not safe for concurrent use; its random source is unguarded.
type Engine struct {
	cfg        config.Engine
	dispatcher *heuristic.Dispatcher
	finder     *hamilton.Finder
	rng        *rand.Rand
	logger     log.Logger
}

func New(cfg config.Config, rng *rand.Rand, logger log.Logger) *Engine {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Engine{
		cfg:        cfg.Engine,
		dispatcher: heuristic.NewDispatcher(cfg.Heuristic.Weights, cfg.Heuristic.Thresholds),
		finder:     &hamilton.Finder{Budget: cfg.Engine.SearchBudget},
		rng:        rng,
		logger:     logger,
	}
}

// Decide returns the move for this tick. It only returns an invalid move
// when no valid one exists.
func (e *Engine) Decide(ctx context.Context, g *grid.Grid, body grid.Snake) grid.Action {
	head := body.Head()
	a, source := e.candidate(ctx, g, body)
	valid := g.IsValidMove(head, a)
	level.Debug(e.logger).Log("msg", "candidate", "source", source, "action", a, "valid", valid)
	if !valid {
		if moves := g.ValidMoves(head); len(moves) > 0 {
			a, source = moves[e.rng.Intn(len(moves))], "random"
		} else {
			source = "trapped"
			level.Info(e.logger).Log("msg", "no valid move", "head", head, "length", len(body))
		}
	}
	decisions.WithLabelValues(e.cfg.Mode, source).Inc()
	return a
}

func (e *Engine) candidate(ctx context.Context, g *grid.Grid, body grid.Snake) (grid.Action, string) {
	if e.cfg.Mode == config.ModeHeuristic {
		return e.dispatcher.Choose(heuristic.NewSituation(g, body)), "heuristic"
	}
	a, err := e.Plan(ctx, g, body)
	if err == nil {
		return a, "exact"
	}
	planFailures.WithLabelValues(reason(err)).Inc()
	level.Debug(e.logger).Log("msg", "exact plan failed", "err", err)
	if e.cfg.Fallback == config.FallbackHeuristic {
		return e.dispatcher.Choose(heuristic.NewSituation(g, body)), "heuristic"
	}
	return grid.Actions[e.rng.Intn(len(grid.Actions))], "random"
}

// Plan searches for a Hamiltonian path over the free cells and returns the
// direction of its first step.
func (e *Engine) Plan(ctx context.Context, g *grid.Grid, body grid.Snake) (grid.Action, error) {
	if e.cfg.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.SearchTimeout)
		defer cancel()
	}
	head, tail := body.Head(), body.Tail()
	bonus, ok := grid.FindBonus(g)
	if !ok {
		return grid.North, ErrTargetUnreachable
	}
	level.Debug(e.logger).Log("msg", "planning", "head", head, "tail", tail, "bonus", bonus)

	gr, err := graph.BuildCapped(g, body, e.cfg.MaxNodes)
	if err != nil {
		return grid.North, err
	}
	bi, ok := gr.Index(bonus)
	if !ok {
		return grid.North, ErrTargetUnreachable
	}
	starts, ends := gr.AdjacentTo(head), gr.AdjacentTo(tail)
	if len(starts) == 0 || len(ends) == 0 {
		return grid.North, ErrNoAdjacentFreeCell
	}
	res, err := e.finder.Find(ctx, hamilton.Problem{
		Graph:  gr,
		Starts: starts,
		Ends:   ends,
		Bonus:  bi,
	})
	if err != nil {
		return grid.North, err
	}
	a, _ := grid.DirectionTo(head, gr.Node(res.Path[0]))
	level.Debug(e.logger).Log("msg", "path found", "nodes", len(res.Path), "expansions", res.Expansions, "action", a)
	return a, nil
}

func reason(err error) string {
	switch {
	case errors.Is(err, graph.ErrAllocation):
		return "allocation"
	case errors.Is(err, ErrTargetUnreachable):
		return "target_unreachable"
	case errors.Is(err, ErrNoAdjacentFreeCell):
		return "no_adjacent_free_cell"
	case errors.Is(err, hamilton.ErrSearchExhausted):
		return "search_exhausted"
	}
	return "other"
}
