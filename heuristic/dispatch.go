package heuristic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cmars/gridsnek/grid"
)

var selections = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gridsnek_strategy_selections_total",
	Help: "Heuristic strategies chosen by the dispatcher",
}, []string{"strategy"})

// Dispatcher picks a strategy from the snake's size, how full the map is
// and where the bonus lies.
type Dispatcher struct {
	T          Thresholds
	FollowTail *FollowTail
	Zigzag     *Zigzag
	Aggressive *Aggressive
}

func NewDispatcher(w Weights, t Thresholds) *Dispatcher {
	return &Dispatcher{
		T:          t,
		FollowTail: &FollowTail{W: w, T: t},
		Zigzag:     &Zigzag{W: w, T: t},
		Aggressive: &Aggressive{W: w},
	}
}

// Select returns the strategy for this tick.
func (d *Dispatcher) Select(s Situation) Strategy {
	n := len(s.Snake)
	head, tail := s.Snake.Head(), s.Snake.Tail()
	toBonus := grid.Manhattan(head, s.Bonus)
	switch {
	case n <= d.T.ShortSnake:
		return d.Aggressive
	case toBonus <= d.T.NearBonus:
		return d.Aggressive
	case float64(n) > d.T.Crowded*float64(s.Grid.InteriorCells()):
		return d.Zigzag
	case float64(toBonus) > d.T.Detour*float64(grid.Manhattan(head, tail)) && n > d.T.LongSnake:
		return d.Zigzag
	}
	return d.FollowTail
}

func (d *Dispatcher) Name() string { return "dispatcher" }

// Choose delegates to the selected strategy.
func (d *Dispatcher) Choose(s Situation) grid.Action {
	st := d.Select(s)
	selections.WithLabelValues(st.Name()).Inc()
	return st.Choose(s)
}
