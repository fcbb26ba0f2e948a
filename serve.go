package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/cmars/gridsnek/api"
	"github.com/cmars/gridsnek/config"
	"github.com/cmars/gridsnek/planner"
	"github.com/cmars/gridsnek/random"
)

func newServeCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Battlesnake API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			logger := newLogger(cfg)

			r := chi.NewRouter()
			r.Use(middleware.RequestID)
			r.Use(middleware.RealIP)
			r.Use(middleware.Logger)
			r.Use(middleware.Recoverer)

			r.Mount("/exact", api.Router(planner.New(cfg, config.ModeExact, logger), logger))
			r.Mount("/heuristic", api.Router(planner.New(cfg, config.ModeHeuristic, logger), logger))
			r.Mount("/random", api.Router(random.New(cfg.Engine.Seed), logger))
			r.Handle("/metrics", promhttp.Handler())

			level.Info(logger).Log("msg", "listening", "addr", cfg.Listen, "mode", cfg.Engine.Mode)
			return http.ListenAndServe(cfg.Listen, r)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")
	return cmd
}
