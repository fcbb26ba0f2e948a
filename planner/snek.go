// Package planner is a Battlesnake that moves with the decision engine.
package planner

import (
	"context"
	"fmt"

	"github.com/go-kit/log"

	"github.com/cmars/gridsnek/api"
	"github.com/cmars/gridsnek/config"
	"github.com/cmars/gridsnek/engine"
)

// New returns a factory of sneks, each with its own engine. mode overrides
// cfg.Engine.Mode when set.
func New(cfg config.Config, mode string, logger log.Logger) func() api.Snek {
	if mode != "" {
		cfg.Engine.Mode = mode
	}
	return func() api.Snek {
		return &snek{
			engine: engine.New(cfg, engine.NewRand(cfg.Engine.Seed), logger),
		}
	}
}

type snek struct {
	engine         *engine.Engine
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

func (s *snek) Move(ctx context.Context, st *api.State) (string, string, error) {
	if s.currentState == nil {
		return "", "", fmt.Errorf("game not started")
	}
	s.previousStates = append(s.previousStates, s.currentState)
	s.currentState = st
	g, body := api.Snapshot(st)
	return api.MoveName(s.engine.Decide(ctx, g, body)), "", nil
}

func (s *snek) End(st *api.State) error {
	if s.currentState == nil {
		return nil
	}
	s.previousStates = append(s.previousStates, s.currentState, st)
	s.currentState = nil
	return nil
}
