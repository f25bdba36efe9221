package engine

import (
	"context"
	"database/sql"

	"rise/internal/storage"
)

type Service struct {
	db       *sql.DB
	profiles *storage.ProfileRepo
	tasks    *storage.TaskRepo
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:       db,
		profiles: storage.NewProfileRepo(db),
		tasks:    storage.NewTaskRepo(db),
	}
}

func (s *Service) ProfileRepo() *storage.ProfileRepo { return s.profiles }
func (s *Service) TaskRepo() *storage.TaskRepo       { return s.tasks }

// ProfileView is the read-only progress snapshot surfaced by the API.
type ProfileView struct {
	Level  int `json:"level"`
	XP     int `json:"xp"`
	Streak int `json:"streak"`
}

// Profile returns the singleton profile's progress. When no profile
// exists yet it reports the defaults without creating one; creation
// stays lazy until an operation actually needs the row.
func (s *Service) Profile(ctx context.Context) (ProfileView, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return ProfileView{}, err
	}
	if p == nil {
		return ProfileView{Level: 1, XP: 0, Streak: 0}, nil
	}
	return ProfileView{Level: p.Level, XP: p.XP, Streak: p.Streak}, nil
}

// ListTasks returns tasks in chronological start order, optionally
// filtered by status. An empty status means no filter.
func (s *Service) ListTasks(ctx context.Context, status string) ([]storage.Task, error) {
	return s.tasks.List(ctx, status)
}
