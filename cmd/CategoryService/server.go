package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sebuszqo/CategoryService/internal/category/interfaces"
	"github.com/sirupsen/logrus"
)

type Response struct {
	Message string `json:"message"`
}

type healthChecker interface {
	Health() map[string]string
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(logger *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   recorder.status,
			"duration": time.Since(start).String(),
		}).Info("Request completed")
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(message))
}

type Server struct {
	router          *http.ServeMux
	categoryHandler *interfaces.CategoryHandler
	database        healthChecker
	authMiddleware  func(http.Handler) http.Handler
	legacyRoutes    bool
}

// NewServer wires the category routes. authMiddleware may be nil, in which case the routes are open.
func NewServer(categoryHandler *interfaces.CategoryHandler, database healthChecker, authMiddleware func(http.Handler) http.Handler, legacyRoutes bool) *Server {
	return &Server{
		categoryHandler: categoryHandler,
		database:        database,
		authMiddleware:  authMiddleware,
		legacyRoutes:    legacyRoutes,
		router:          http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	stats := s.database.Health()
	if stats["status"] != "up" {
		respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":   "unavailable",
			"database": stats,
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ready",
		"database": stats,
	})
}

func (s *Server) RegisterRoutes() {
	mainRouter := http.NewServeMux()

	mainRouter.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	s.categoryHandler.RegisterRoutes(mainRouter, s.authMiddleware, s.legacyRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
