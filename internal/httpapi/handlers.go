package httpapi

import (
	"net/http"
	"time"

	"rise/internal/engine"
	"rise/internal/storage"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "RISE API running"})
}

// handleTest is the best-effort diagnostic endpoint. It always
// answers 200; failures show up in the body, not the status.
func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	report := map[string]any{
		"backend":       "running",
		"database":      "not available",
		"database_path": s.dbPath,
		"tables":        []string{},
	}
	if s.db != nil {
		if err := s.db.PingContext(r.Context()); err != nil {
			report["database"] = "error: " + err.Error()
		} else if tables, err := storage.TableNames(r.Context(), s.db); err != nil {
			report["database"] = "connected, error listing tables: " + err.Error()
		} else {
			report["database"] = "connected"
			report["tables"] = tables
		}
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handlePropose(w http.ResponseWriter, r *http.Request) {
	var in engine.OnboardingInput
	if !s.decode(w, r, &in) {
		return
	}
	plan, err := s.svc.ProposeOnboarding(in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleAccept(w http.ResponseWriter, r *http.Request) {
	var records []engine.TaskCreate
	if !s.decode(w, r, &records) {
		return
	}
	res, err := s.svc.AcceptPlan(r.Context(), records)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"profile_id": res.ProfileID,
		"created":    res.Created,
	})
}

type taskOut struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Category string    `json:"category"`
	Status   string    `json:"status"`
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.svc.ListTasks(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]taskOut, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskOut{
			ID:       t.ID,
			Title:    t.Title,
			Start:    t.Start,
			End:      t.End,
			Category: t.Category,
			Status:   t.Status,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.CompleteTask(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"xp_gain": res.XPGained,
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.Profile(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}
