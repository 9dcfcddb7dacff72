// Package api exposes the game manager over HTTP and pushes session updates
// to websocket clients.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/user/mideast-strategy/internal/game"
	"github.com/user/mideast-strategy/internal/interfaces"
	"github.com/user/mideast-strategy/internal/oracle"
	"github.com/user/mideast-strategy/internal/types"
	"go.uber.org/zap"
)

// StartRequest picks the player's nation
type StartRequest struct {
	Country string `json:"country"`
}

// CreateResponse is returned by POST /games
type CreateResponse struct {
	GameID string           `json:"game_id"`
	State  *types.GameState `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server wires the game manager to HTTP routes
type Server struct {
	manager interfaces.GameManager
	hub     *Hub
	logger  *zap.Logger
}

// NewServer creates a server. hub may be nil to disable /ws.
func NewServer(manager interfaces.GameManager, hub *Hub, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{manager: manager, hub: hub, logger: logger}
}

// Routes builds the router
func (s *Server) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	if s.hub != nil {
		router.Get("/ws", s.hub.ServeWs)
	}

	router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/nations", s.handleNations)
		r.Get("/oracle/flight-time", s.handleFlightTime)
		r.Get("/history", s.handleHistory)

		r.Route("/games", func(r chi.Router) {
			r.Post("/", s.handleCreateGame)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetState)
				r.Post("/start", s.handleStartGame)
				r.Post("/actions", s.handleAction)
				r.Post("/end-turn", s.handleEndTurn)
			})
		})
	})

	return router
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	id, state, err := s.manager.CreateGame(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateResponse{GameID: id, State: state})
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request"})
			return
		}
	}

	state, err := s.manager.StartGame(r.Context(), chi.URLParam(r, "id"), req.Country)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var env types.ActionEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request"})
		return
	}

	state, err := s.manager.ProcessAction(r.Context(), chi.URLParam(r, "id"), env)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleEndTurn(w http.ResponseWriter, r *http.Request) {
	state, err := s.manager.EndTurn(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := s.manager.GetState(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleNations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.manager.Nations())
}

func (s *Server) handleFlightTime(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	report, err := s.manager.FlightTime(q.Get("from"), q.Get("to"), q.Get("platform"), q.Get("defense"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	matches, err := s.manager.History(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

// writeError maps manager errors onto HTTP status codes
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrGameNotFound), errors.Is(err, game.ErrNationNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrInvalidPhase):
		status = http.StatusConflict
	case errors.Is(err, types.ErrUnknownAction), errors.Is(err, types.ErrMalformedAction),
		errors.Is(err, oracle.ErrUnknown), errors.Is(err, oracle.ErrOutOfRange):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	} else {
		s.logger.Debug("Request rejected",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
