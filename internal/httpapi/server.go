// Package httpapi exposes the RISE engine over HTTP. It is thin
// glue: request decoding, error mapping, CORS and logging; every
// decision lives in the engine.
package httpapi

import (
	"database/sql"
	"net/http"

	"go.uber.org/zap"

	"rise/internal/engine"
)

type Server struct {
	svc     *engine.Service
	db      *sql.DB
	log     *zap.Logger
	origins []string
	dbPath  string
}

// New wires the HTTP surface over an engine service. The raw DB
// handle is only used by the diagnostic endpoint.
func New(svc *engine.Service, db *sql.DB, dbPath string, origins []string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Server{svc: svc, db: db, log: log, origins: origins, dbPath: dbPath}
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /test", s.handleTest)
	mux.HandleFunc("POST /api/onboarding/propose", s.handlePropose)
	mux.HandleFunc("POST /api/onboarding/accept", s.handleAccept)
	mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	mux.HandleFunc("POST /api/tasks/{id}/complete", s.handleComplete)
	mux.HandleFunc("GET /api/profile", s.handleProfile)

	return s.withLogging(s.withCORS(mux))
}
