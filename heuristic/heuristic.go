// Package heuristic picks moves by scoring the four directions directly on
// the grid, without building a graph.
package heuristic

import (
	"github.com/cmars/gridsnek/grid"
)

// Weights are the coefficients of the scoring functions.
type Weights struct {
	FollowTailTarget int `yaml:"follow_tail_target"`
	FollowTailSpace  int `yaml:"follow_tail_space"`
	FollowTailCenter int `yaml:"follow_tail_center"`
	ZigzagBonus      int `yaml:"zigzag_bonus"`
	ZigzagSpace      int `yaml:"zigzag_space"`
	AggressiveBonus  int `yaml:"aggressive_bonus"`
	AggressiveSpace  int `yaml:"aggressive_space"`
}

func DefaultWeights() Weights {
	return Weights{
		FollowTailTarget: 100,
		FollowTailSpace:  10,
		FollowTailCenter: 1,
		ZigzagBonus:      10,
		ZigzagSpace:      50,
		AggressiveBonus:  200,
		AggressiveSpace:  30,
	}
}

// Thresholds steer the dispatcher and the individual strategies.
type Thresholds struct {
	// ShortSnake is the length at or below which the snake just goes for
	// the bonus.
	ShortSnake int `yaml:"short_snake"`
	// MinTolerance is the floor of the follow-tail detour allowance.
	MinTolerance int `yaml:"min_tolerance"`
	// NearBonus is the head-to-bonus distance that triggers aggression.
	NearBonus int `yaml:"near_bonus"`
	// Crowded is the fraction of the interior the snake must exceed before
	// sweeping.
	Crowded float64 `yaml:"crowded"`
	// Detour is how much farther than the tail the bonus may be before a
	// long snake sweeps instead.
	Detour    float64 `yaml:"detour"`
	LongSnake int     `yaml:"long_snake"`
	// EdgeMargin is how close to a side wall the sweep turns south.
	EdgeMargin int `yaml:"edge_margin"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		ShortSnake:   5,
		MinTolerance: 5,
		NearBonus:    5,
		Crowded:      0.6,
		Detour:       1.5,
		LongSnake:    15,
		EdgeMargin:   2,
	}
}

// Situation is the per-tick input to a strategy.
type Situation struct {
	Grid  *grid.Grid
	Snake grid.Snake
	// Bonus is the bonus cell, or the tail when the map has none.
	Bonus grid.Position
}

// NewSituation locates the bonus on g. Without one, the tail stands in.
func NewSituation(g *grid.Grid, body grid.Snake) Situation {
	bonus, ok := grid.FindBonus(g)
	if !ok {
		bonus = body.Tail()
	}
	return Situation{Grid: g, Snake: body, Bonus: bonus}
}

// Strategy chooses one action per tick.
type Strategy interface {
	Name() string
	Choose(Situation) grid.Action
}

// pick returns the valid action with the highest score, keeping the earliest
// on ties. With no valid action it returns North.
func pick(s Situation, score func(next grid.Position) int) grid.Action {
	head := s.Snake.Head()
	best, bestScore, found := grid.North, 0, false
	for _, a := range grid.Actions {
		if !s.Grid.IsValidMove(head, a) {
			continue
		}
		sc := score(head.Move(a))
		if !found || sc > bestScore {
			best, bestScore, found = a, sc, true
		}
	}
	return best
}

// FollowTailScore prefers cells near the target, with open surroundings,
// near the map centre.
func FollowTailScore(w Weights, next, target, center grid.Position, free int) int {
	return -w.FollowTailTarget*grid.Manhattan(next, target) +
		w.FollowTailSpace*free -
		w.FollowTailCenter*grid.Manhattan(next, center)
}

// ZigzagScore is the fallback used when the sweep is blocked.
func ZigzagScore(w Weights, next, bonus grid.Position, free int) int {
	return -w.ZigzagBonus*grid.Manhattan(next, bonus) + w.ZigzagSpace*free
}

// AggressiveScore pulls hard toward the bonus.
func AggressiveScore(w Weights, next, bonus grid.Position, free int) int {
	return -w.AggressiveBonus*grid.Manhattan(next, bonus) + w.AggressiveSpace*free
}
