package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"preflop-advisor/internal/advisor"
	"preflop-advisor/internal/playability"
)

// Router builds the HTTP API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/new_game", s.handleNewGame)
		r.Post("/ai_action", s.handleAIAction)
		r.Post("/player_action", s.handlePlayerAction)
		r.Post("/showdown", s.handleShowdown)
		r.Post("/playability", s.handlePlayability)
		r.Post("/advise", s.handleAdvise)
		r.Post("/range", s.handleRange)
	})
	r.Get("/ws/{gameID}", s.handleWS)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.manager.Count(),
	})
}

// newGameResponse mirrors what the table frontend needs to render the
// fresh hand.
type newGameResponse struct {
	SessionView
	// CurrentBet here is what the player must call: the button still
	// owes the big blind at the start of a hand.
	CurrentBet float64 `json:"current_bet"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, _ *http.Request) {
	session := s.manager.NewSession()

	resp := newGameResponse{SessionView: session.View()}
	if session.PlayerIsButton {
		resp.CurrentBet = 1.0
	}
	s.respond(w, http.StatusOK, resp)
}

type gameRequest struct {
	GameID  string  `json:"game_id"`
	Action  string  `json:"action,omitempty"`
	BetSize float64 `json:"bet_size,omitempty"`
}

func (s *Server) handleAIAction(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, ok := s.manager.Get(req.GameID)
	if !ok {
		s.respondError(w, http.StatusNotFound, "game not found")
		return
	}

	result, err := session.AIAct(s.advisor, s.cfg.Game)
	if err != nil {
		s.respondActionError(w, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"result": result,
		"state":  session.View(),
	})
}

func (s *Server) handlePlayerAction(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, ok := s.manager.Get(req.GameID)
	if !ok {
		s.respondError(w, http.StatusNotFound, "game not found")
		return
	}

	outcome, err := session.PlayerAct(req.Action, req.BetSize)
	if err != nil {
		s.respondActionError(w, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"outcome": outcome,
		"state":   session.View(),
	})
}

func (s *Server) handleShowdown(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, ok := s.manager.Get(req.GameID)
	if !ok {
		s.respondError(w, http.StatusNotFound, "game not found")
		return
	}

	result, err := session.Showdown()
	if err != nil {
		s.respondActionError(w, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"result": result,
		"state":  session.View(),
	})
}

type playabilityRequest struct {
	Hand      string  `json:"hand"`
	Position  string  `json:"position"`
	StackSize int     `json:"stack_size"`
	Tendency  string  `json:"opponent_tendency"`
	FacingBet float64 `json:"facing_bet,omitempty"`
}

func (s *Server) handlePlayability(w http.ResponseWriter, r *http.Request) {
	var req playabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := playability.Decide(playability.Scenario{
		Hand:      req.Hand,
		Position:  req.Position,
		StackSize: req.StackSize,
		Tendency:  req.Tendency,
		FacingBet: req.FacingBet,
	})
	s.respond(w, http.StatusOK, result)
}

func (s *Server) handleAdvise(w http.ResponseWriter, r *http.Request) {
	var req advisor.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	decision, err := s.advisor.Recommend(req)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respond(w, http.StatusOK, decision)
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	var req advisor.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entries, err := s.advisor.EvaluateRange(r.Context(), req)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respond(w, http.StatusOK, entries)
}

func (s *Server) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respond(w, status, map[string]string{"error": message})
}

func (s *Server) respondActionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrGameOver):
		s.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidAction):
		s.respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("action failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "internal error")
	}
}
