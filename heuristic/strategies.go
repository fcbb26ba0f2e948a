package heuristic

import (
	"github.com/cmars/gridsnek/grid"
)

// FollowTail heads for the bonus when it is roughly on the way back to the
// tail, and for the tail otherwise.
type FollowTail struct {
	W Weights
	T Thresholds
}

func (*FollowTail) Name() string { return "follow_tail" }

// Target returns the cell the snake steers toward this tick.
func (f *FollowTail) Target(s Situation) grid.Position {
	n := len(s.Snake)
	if n <= f.T.ShortSnake {
		return s.Bonus
	}
	head, tail := s.Snake.Head(), s.Snake.Tail()
	avg := (s.Grid.Width() + s.Grid.Height()) / 2
	tolerance := max(f.T.MinTolerance, avg/2-n/3)
	if grid.Manhattan(head, s.Bonus)+grid.Manhattan(s.Bonus, tail) <= grid.Manhattan(head, tail)+tolerance {
		return s.Bonus
	}
	return tail
}

func (f *FollowTail) Choose(s Situation) grid.Action {
	target := f.Target(s)
	center := s.Grid.Center()
	return pick(s, func(next grid.Position) int {
		return FollowTailScore(f.W, next, target, center, s.Grid.FreeNeighbors(next))
	})
}

// Zigzag sweeps the map in horizontal passes, stepping south at the edges.
// Rows alternate direction in pairs: rows 1-2 sweep east, rows 3-4 west.
type Zigzag struct {
	W Weights
	T Thresholds
}

func (*Zigzag) Name() string { return "zigzag" }

func (z *Zigzag) Choose(s Situation) grid.Action {
	head := s.Snake.Head()
	sweep, toEdge := grid.East, (s.Grid.Width()-2)-head.X
	if (head.Y-1)%4 >= 2 {
		sweep, toEdge = grid.West, head.X-1
	}
	preferred, secondary := sweep, grid.South
	if toEdge < z.T.EdgeMargin {
		preferred, secondary = grid.South, sweep.Opposite()
	}
	if s.Grid.IsValidMove(head, preferred) {
		return preferred
	}
	if s.Grid.IsValidMove(head, secondary) {
		return secondary
	}
	return pick(s, func(next grid.Position) int {
		return ZigzagScore(z.W, next, s.Bonus, s.Grid.FreeNeighbors(next))
	})
}

// Aggressive goes straight for the bonus.
type Aggressive struct {
	W Weights
}

func (*Aggressive) Name() string { return "aggressive" }

func (a *Aggressive) Choose(s Situation) grid.Action {
	return pick(s, func(next grid.Position) int {
		return AggressiveScore(a.W, next, s.Bonus, s.Grid.FreeNeighbors(next))
	})
}
