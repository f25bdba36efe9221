package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"rise/internal/engine"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encode response", zap.Error(err))
	}
}

// writeError maps engine errors onto the wire taxonomy: not_found,
// validation, conflict, and unavailable for everything else.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		notFound   engine.NotFoundError
		validation engine.ValidationError
		done       engine.AlreadyDoneError
	)
	switch {
	case errors.As(err, &notFound):
		s.writeJSON(w, http.StatusNotFound, errorBody{errorDetail{Code: "not_found", Message: notFound.Error()}})
	case errors.As(err, &validation):
		s.writeJSON(w, http.StatusBadRequest, errorBody{errorDetail{Code: "validation", Message: validation.Error()}})
	case errors.As(err, &done):
		s.writeJSON(w, http.StatusConflict, errorBody{errorDetail{Code: "conflict", Message: done.Error()}})
	default:
		s.log.Error("request failed", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorBody{errorDetail{Code: "unavailable", Message: "internal error"}})
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody{errorDetail{Code: "validation", Message: "malformed request body: " + err.Error()}})
		return false
	}
	return true
}
