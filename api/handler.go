package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func Router(newSnek func() Snek, logger log.Logger) http.Handler {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	r := chi.NewRouter()
	h := &handler{newSnek: newSnek, gameSneks: map[string]Snek{}, logger: logger}
	r.Get("/", h.Info)
	r.Post("/start", h.Start)
	r.Post("/move", h.Move)
	r.Post("/end", h.End)
	return r
}

type handler struct {
	newSnek func() Snek
	logger  log.Logger

	mu        sync.RWMutex
	gameSneks map[string]Snek
}

func gameKey(req *GameRequest) string {
	return req.Game.ID + req.You.ID
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request) (*GameRequest, bool) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		level.Warn(h.logger).Log("msg", "failed to decode request", "path", r.URL.Path, "err", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (h *handler) Info(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(&InfoResponse{
		APIVersion: "1",
		Author:     "gridsnek",
	})
	if err != nil {
		level.Error(h.logger).Log("msg", "failed to write response", "err", err)
	}
}

func (h *handler) Start(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	gameSnek := h.newSnek()
	h.mu.Lock()
	h.gameSneks[gameKey(req)] = gameSnek
	h.mu.Unlock()

	if err := gameSnek.Start(req.State()); err != nil {
		http.Error(w, "snek cannot start game", http.StatusBadRequest)
		return
	}
	level.Info(h.logger).Log("msg", "game started", "game", req.Game.ID, "you", req.You.ID)
	w.WriteHeader(http.StatusOK)
}

func (h *handler) Move(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	h.mu.RLock()
	gameSnek, ok := h.gameSneks[gameKey(req)]
	h.mu.RUnlock()
	if !ok {
		http.Error(w, "game not started", http.StatusBadRequest)
		return
	}

	move, shout, err := gameSnek.Move(r.Context(), req.State())
	if err != nil {
		level.Warn(h.logger).Log("msg", "snek cannot move", "game", req.Game.ID, "err", err)
		http.Error(w, "snek cannot move", http.StatusBadRequest)
		return
	}
	level.Debug(h.logger).Log("msg", "move", "game", req.Game.ID, "turn", req.Turn, "move", move)

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(&MoveResponse{
		Move:  move,
		Shout: shout,
	})
	if err != nil {
		level.Error(h.logger).Log("msg", "failed to encode response", "err", err)
	}
}

func (h *handler) End(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	gameSnek, ok := h.gameSneks[gameKey(req)]
	delete(h.gameSneks, gameKey(req))
	h.mu.Unlock()
	if !ok {
		http.Error(w, "game not started", http.StatusBadRequest)
		return
	}

	if err := gameSnek.End(req.State()); err != nil {
		http.Error(w, "snek cannot end game", http.StatusBadRequest)
		return
	}
	level.Info(h.logger).Log("msg", "game ended", "game", req.Game.ID, "turn", req.Turn)
	w.WriteHeader(http.StatusOK)
}
