package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmars/gridsnek/engine"
	"github.com/cmars/gridsnek/grid"
)

func newDecideCmd() *cobra.Command {
	var (
		mapPath string
		bodyArg string
		mode    string
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Print the move for an ASCII map",
		Long: `Reads a map drawn with # (wall), . (path), f (bonus), h (head),
s (body) and t (tail), and prints the engine's move. The body order is
traced from the head unless --body gives it as "x,y;x,y;...".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if mode != "" {
				cfg.Engine.Mode = mode
			}
			if seed != 0 {
				cfg.Engine.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			data, err := os.ReadFile(mapPath)
			if err != nil {
				return err
			}
			g, err := grid.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse %s: %w", mapPath, err)
			}
			var body grid.Snake
			if bodyArg != "" {
				body, err = grid.ParseSnake(bodyArg)
			} else {
				body, err = grid.TraceSnake(g)
			}
			if err != nil {
				return err
			}

			e := engine.New(cfg, engine.NewRand(cfg.Engine.Seed), newLogger(cfg))
			fmt.Fprintln(cmd.OutOrStdout(), e.Decide(context.Background(), g, body))
			return nil
		},
	}
	cmd.Flags().StringVar(&mapPath, "map", "", "ASCII map file")
	cmd.Flags().StringVar(&bodyArg, "body", "", "snake body, head first")
	cmd.Flags().StringVar(&mode, "mode", "", "exact or heuristic (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (overrides config)")
	_ = cmd.MarkFlagRequired("map")
	return cmd
}
