// Package server exposes the Shadow System over HTTP for companion UIs.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ayoub/shadow-system/internal/llm"
	"github.com/ayoub/shadow-system/internal/onboarding"
	"github.com/ayoub/shadow-system/internal/store"
)

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	Models      []string
}

// Server is the HTTP front of the progression store and orchestrator.
type Server struct {
	httpServer  *http.Server
	store       *store.Store
	orch        *llm.Orchestrator
	interviewer *onboarding.Interviewer
}

// New connects the store, wires the orchestrator, and sets up routes.
func New(cfg Config) (*Server, error) {
	st, err := store.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	backend, err := llm.NewGeminiBackend(context.Background(), cfg.APIKey)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to create backend: %w", err)
	}

	llmCfg := llm.DefaultConfig()
	if len(cfg.Models) > 0 {
		llmCfg.Models = cfg.Models
	}
	orch := llm.NewOrchestrator(backend, llmCfg)

	s := &Server{
		store:       st,
		orch:        orch,
		interviewer: onboarding.NewInterviewer(st, orch, orch),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("POST /awaken", s.handleAwaken)
	mux.HandleFunc("POST /onboarding/chat", s.handleOnboardingChat)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
	}

	return s, nil
}

// Start runs the server until interrupted, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.store.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}
