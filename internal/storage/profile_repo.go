package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MainProfileKey is the fixed key of the singleton profile row.
const MainProfileKey = "main"

type ProfileRepo struct {
	db DBTX
}

func NewProfileRepo(db DBTX) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Get returns the singleton profile, or nil if it has not been
// created yet.
func (r *ProfileRepo) Get(ctx context.Context) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, level, xp, streak, created_at, updated_at
		FROM profile WHERE key = ?
	`, MainProfileKey)

	var (
		p       Profile
		updated sql.NullTime
	)
	if err := row.Scan(&p.Key, &p.Level, &p.XP, &p.Streak, &p.CreatedAt, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	if updated.Valid {
		v := updated.Time
		p.UpdatedAt = &v
	}
	return &p, nil
}

// GetOrCreate returns the singleton profile, creating it with the
// default progress (level 1, xp 0, streak 0) on first use. The fixed
// key plus ON CONFLICT keeps concurrent first calls from racing a
// second row into existence.
func (r *ProfileRepo) GetOrCreate(ctx context.Context) (*Profile, error) {
	p, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO profile (key) VALUES (?)
		ON CONFLICT(key) DO NOTHING
	`, MainProfileKey); err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx)
}

// UpdateProgress persists a new level/xp pair on the singleton row.
func (r *ProfileRepo) UpdateProgress(ctx context.Context, level, xp int, updatedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profile
		SET level = ?, xp = ?, updated_at = ?
		WHERE key = ?
	`, level, xp, updatedAt, MainProfileKey)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return nil
}
