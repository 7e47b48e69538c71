package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ayoub/shadow-system/internal/llm"
	"github.com/ayoub/shadow-system/internal/onboarding"
	"github.com/ayoub/shadow-system/internal/store"
)

// statusResponse is the full player snapshot the HUD polls for.
type statusResponse struct {
	Profile     *store.Profile     `json:"profile"`
	Stats       []store.Stat       `json:"stats"`
	ActiveQuest *store.Quest       `json:"active_quest"`
	Skills      []store.Skill      `json:"skills"`
	Context     *store.UserContext `json:"context,omitempty"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStatus returns the player profile, attributes, active quest, and
// skill tree in one payload.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := s.store.Profile(ctx)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			s.errorResponse(w, http.StatusNotFound, "player not initialized; run onboarding first")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	stats, err := s.store.Stats(ctx)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	quest, err := s.store.ActiveQuest(ctx)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	skills, err := s.store.Skills(ctx)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Genesis context is optional; a fresh install has none.
	userCtx, err := s.store.UserContext(ctx)
	if err != nil {
		userCtx = nil
	}

	s.jsonResponse(w, http.StatusOK, statusResponse{
		Profile:     profile,
		Stats:       stats,
		ActiveQuest: quest,
		Skills:      skills,
		Context:     userCtx,
	})
}

type awakenRequest struct {
	Goals string `json:"goals"`
}

// handleAwaken generates and persists a job class from the player's goals.
func (s *Server) handleAwaken(w http.ResponseWriter, r *http.Request) {
	var req awakenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Goals == "" {
		s.errorResponse(w, http.StatusBadRequest, "goals is required")
		return
	}

	jobClass, err := onboarding.Awaken(r.Context(), s.orch, s.store, req.Goals)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"job_class": jobClass})
}

type chatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	History []chatTurn `json:"history"`
	Message string     `json:"message"`
}

type chatResponse struct {
	Reply         string `json:"reply"`
	GenesisSeeded bool   `json:"genesis_seeded"`
}

// handleOnboardingChat runs one turn of the Sovereign's interview.
func (s *Server) handleOnboardingChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Message == "" {
		s.errorResponse(w, http.StatusBadRequest, "message is required")
		return
	}

	history := make([]llm.Turn, 0, len(req.History))
	for _, t := range req.History {
		role := llm.RoleUser
		if t.Role == "model" || t.Role == "assistant" {
			role = llm.RoleModel
		}
		history = append(history, llm.Turn{Role: role, Content: t.Content})
	}

	result, err := s.interviewer.ProcessTurn(r.Context(), history, req.Message)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, chatResponse{
		Reply:         result.Reply,
		GenesisSeeded: result.GenesisSeeded,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
