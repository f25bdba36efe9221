package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"rise/internal/storage"
)

// TaskCreate is one task-creation record from an accepted plan.
type TaskCreate struct {
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Category Category  `json:"category"`
	Status   Status    `json:"status,omitempty"`
}

type AcceptResult struct {
	ProfileID string
	Created   int
}

func validateTaskCreate(i int, t TaskCreate) (TaskCreate, error) {
	field := func(name string) string { return fmt.Sprintf("tasks[%d].%s", i, name) }

	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return t, ValidationError{Field: field("title"), Reason: "title is required"}
	}
	if t.Start.IsZero() || t.End.IsZero() {
		return t, ValidationError{Field: field("start"), Reason: "start and end are required"}
	}
	if !t.End.After(t.Start) {
		return t, ValidationError{Field: field("end"), Reason: "end must be after start"}
	}
	if t.Status == "" {
		t.Status = StatusScheduled
	}
	if !t.Status.IsValid() {
		return t, ValidationError{Field: field("status"), Reason: fmt.Sprintf("unknown status %q", t.Status)}
	}
	return t, nil
}

// AcceptPlan persists an approved plan. It ensures the singleton
// profile exists (reusing it if present) and inserts every record,
// all inside one transaction: a failure on a late record rolls back
// the whole batch. An empty list still creates the profile.
func (s *Service) AcceptPlan(ctx context.Context, records []TaskCreate) (*AcceptResult, error) {
	normalized := make([]TaskCreate, 0, len(records))
	for i, rec := range records {
		t, err := validateTaskCreate(i, rec)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, t)
	}

	var res AcceptResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		profiles := storage.NewProfileRepo(tx)
		tasks := storage.NewTaskRepo(tx)

		p, err := profiles.GetOrCreate(ctx)
		if err != nil {
			return err
		}
		res.ProfileID = p.Key

		for _, t := range normalized {
			if _, err := tasks.Insert(ctx, storage.TaskInsert{
				Title:    t.Title,
				Start:    t.Start,
				End:      t.End,
				Category: string(t.Category),
				Status:   string(t.Status),
			}); err != nil {
				return err
			}
			res.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
