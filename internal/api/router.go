package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/ai"
	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/game"
	mw "github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/middleware"
	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/validation"
)

// SessionService is what the HTTP layer needs from the game orchestrator.
type SessionService interface {
	StartSession(ctx context.Context, playerName string, difficulty game.Difficulty) (*game.Session, *ai.StructuredReply, error)
	HandleCommand(ctx context.Context, sessionID, command string) (*game.Session, *ai.StructuredReply, error)
	GetSession(ctx context.Context, sessionID string) (*game.Session, error)
}

// Server handles HTTP requests
type Server struct {
	router      chi.Router
	sessions    SessionService
	tokens      *mw.TokenIssuer
	rateLimiter *mw.RateLimiter
}

// NewServer creates a new API server
func NewServer(sessions SessionService, tokens *mw.TokenIssuer, rateLimiter *mw.RateLimiter) *Server {
	s := &Server{
		router:      chi.NewRouter(),
		sessions:    sessions,
		tokens:      tokens,
		rateLimiter: rateLimiter,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.SetHeader("Content-Type", "application/json"))
	s.router.Use(s.rateLimiter.Middleware)
	s.router.Use(mw.SecurityHeadersMiddleware)
	s.router.Use(mw.MaxBodySizeMiddleware(64 * 1024))

	// Public endpoint (no auth required)
	s.router.Post("/api/sessions", s.createSession)

	// Protected endpoints (session token required)
	s.router.Group(func(r chi.Router) {
		r.Use(s.tokens.Middleware)
		r.Get("/api/sessions/{id}", s.getSession)
		r.Post("/api/sessions/{id}/command", s.handleCommand)
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response wraps API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response, hiding internals on 5xx.
func writeError(w http.ResponseWriter, status int, message string) {
	if status >= 500 && status != http.StatusBadGateway {
		message = "Internal server error"
	}
	writeJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}

// statusForError maps orchestrator failures onto HTTP statuses.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrNotFound):
		return http.StatusNotFound, "Session not found. Please start a new game."
	case errors.Is(err, game.ErrConflict):
		return http.StatusConflict, "Another command for this session is in flight. Try again."
	}

	switch ai.Classify(err) {
	case ai.ClassMalformed:
		return http.StatusBadGateway, "The Narrator seems lost in thought... (unreadable response)"
	case ai.ClassTimeout, ai.ClassUnreachable, ai.ClassDenied, ai.ClassUnclassified:
		return http.StatusBadGateway, "The Narrator seems lost in thought... (AI failed to respond)"
	}
	return http.StatusInternalServerError, "Internal server error"
}

// checkSessionAccess verifies the token is scoped to the requested session.
func checkSessionAccess(w http.ResponseWriter, r *http.Request, sessionID string) bool {
	if mw.SessionIDFromContext(r.Context()) != sessionID {
		writeError(w, http.StatusForbidden, "Access denied")
		return false
	}
	return true
}

// createSession starts a new adventure and returns its session token.
func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerName string `json:"playerName"`
		Difficulty string `json:"difficulty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.PlayerName == "" {
		req.PlayerName = "Adventurer"
	}
	if req.Difficulty == "" {
		req.Difficulty = string(game.DifficultyMedium)
	}

	if err := validation.ValidatePlayerName(req.PlayerName); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidateDifficulty(req.Difficulty); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, reply, err := s.sessions.StartSession(r.Context(), req.PlayerName, game.Difficulty(req.Difficulty))
	if err != nil {
		status, msg := statusForError(err)
		writeError(w, status, msg)
		return
	}

	token, err := s.tokens.Mint(session.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to issue session token")
		return
	}

	result := newTurnResult(session, reply)
	result.Message = "Welcome, your adventure begins!"

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Data: struct {
			TurnResult
			Token string `json:"token"`
		}{TurnResult: result, Token: token},
	})
}

// getSession returns the current persistent state of a session.
func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if err := validation.ValidateSessionID(sessionID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !checkSessionAccess(w, r, sessionID) {
		return
	}

	session, err := s.sessions.GetSession(r.Context(), sessionID)
	if err != nil {
		status, msg := statusForError(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    newSessionState(session),
	})
}

// handleCommand runs one player command through the orchestrator.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if err := validation.ValidateSessionID(sessionID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !checkSessionAccess(w, r, sessionID) {
		return
	}

	var req struct {
		Command string `json:"command"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.ValidateCommand(req.Command); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, reply, err := s.sessions.HandleCommand(r.Context(), sessionID, req.Command)
	if err != nil {
		status, msg := statusForError(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    newTurnResult(session, reply),
	})
}
