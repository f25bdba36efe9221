package engine

import (
	"context"
	"database/sql"
	"time"

	"rise/internal/storage"
)

type CompleteResult struct {
	TaskID      string
	XPGained    int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// CompleteTask transitions a scheduled task to done and awards XP for
// its category. The whole sequence (load task, mark done, load
// profile, write progress) runs in one transaction so concurrent
// completions cannot lose XP updates.
//
// The done transition is terminal: completing a done task fails with
// AlreadyDoneError instead of re-awarding.
func (s *Service) CompleteTask(ctx context.Context, id string) (*CompleteResult, error) {
	var res *CompleteResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		tasks := storage.NewTaskRepo(tx)
		profiles := storage.NewProfileRepo(tx)

		task, err := tasks.Get(ctx, id)
		if err != nil {
			return err
		}
		if task == nil {
			return NotFoundError{Resource: "task", ID: id}
		}
		if Status(task.Status) == StatusDone {
			return AlreadyDoneError{TaskID: id}
		}

		now := time.Now().UTC()
		if err := tasks.MarkDone(ctx, id, now); err != nil {
			return err
		}

		// The profile is created here if a task somehow exists
		// without one; the award is never dropped.
		p, err := profiles.GetOrCreate(ctx)
		if err != nil {
			return err
		}

		gain := XPGain(Category(task.Category))
		level, xp := ApplyXP(p.Level, p.XP, gain)
		if err := profiles.UpdateProgress(ctx, level, xp, now); err != nil {
			return err
		}

		res = &CompleteResult{
			TaskID:      id,
			XPGained:    gain,
			LevelBefore: p.Level,
			LevelAfter:  level,
			LevelUp:     level > p.Level,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
