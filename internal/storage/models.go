package storage

import "time"

type Profile struct {
	Key       string
	Level     int
	XP        int
	Streak    int
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type Task struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	Category  string
	Status    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
