// Package random is a Battlesnake that takes a uniformly random valid move.
package random

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/cmars/gridsnek/api"
	"github.com/cmars/gridsnek/engine"
	"github.com/cmars/gridsnek/grid"
)

// New returns a factory of sneks, each with its own random source. A zero
// seed seeds every snek freshly.
func New(seed int64) func() api.Snek {
	return func() api.Snek {
		return &snek{rng: engine.NewRand(seed)}
	}
}

type snek struct {
	rng            *rand.Rand
	currentState   *api.State
	previousStates []*api.State
}

func (s *snek) Start(st *api.State) error {
	if s.currentState != nil || len(s.previousStates) > 0 {
		return fmt.Errorf("cannot start a game in progress")
	}
	s.currentState = st
	s.previousStates = nil
	return nil
}

func (s *snek) Move(_ context.Context, st *api.State) (string, string, error) {
	if s.currentState == nil {
		return "", "", fmt.Errorf("game not started")
	}
	s.previousStates = append(s.previousStates, s.currentState)
	s.currentState = st
	return api.MoveName(s.direction()), "", nil
}

func (s *snek) direction() grid.Action {
	g, body := api.Snapshot(s.currentState)
	moves := g.ValidMoves(body.Head())
	if len(moves) == 0 {
		return grid.North
	}
	return moves[s.rng.Intn(len(moves))]
}

func (s *snek) End(st *api.State) error {
	if s.currentState == nil {
		return fmt.Errorf("game not started")
	}
	s.previousStates = append(s.previousStates, s.currentState, st)
	s.currentState = nil
	return nil
}
