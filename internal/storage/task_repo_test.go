package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertTask(t *testing.T, repo *TaskRepo, title string, start time.Time, status string) string {
	t.Helper()
	id, err := repo.Insert(context.Background(), TaskInsert{
		Title:    title,
		Start:    start,
		End:      start.Add(30 * time.Minute),
		Category: "mind",
		Status:   status,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func TestTaskRepo_InsertAndGetRoundTrip(t *testing.T) {
	repo := NewTaskRepo(newTestDB(t))
	ctx := context.Background()

	start := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	id := insertTask(t, repo, "Python Micro-Learning", start, "scheduled")

	task, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, id, task.ID)
	assert.Equal(t, "Python Micro-Learning", task.Title)
	assert.True(t, task.Start.Equal(start))
	assert.True(t, task.End.Equal(start.Add(30*time.Minute)))
	assert.Equal(t, "mind", task.Category)
	assert.Equal(t, "scheduled", task.Status)
	assert.Nil(t, task.UpdatedAt)
}

func TestTaskRepo_GetMissingReturnsNil(t *testing.T) {
	repo := NewTaskRepo(newTestDB(t))

	task, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestTaskRepo_ListChronologicalAcrossOffsets(t *testing.T) {
	repo := NewTaskRepo(newTestDB(t))
	ctx := context.Background()

	// Same instant ordering must hold even when inputs carry
	// different zone offsets.
	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	insertTask(t, repo, "second", time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), "scheduled")
	insertTask(t, repo, "first", time.Date(2026, 3, 14, 9, 0, 0, 0, plusTwo), "scheduled") // 07:00 UTC

	tasks, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
}

func TestTaskRepo_ListStatusFilter(t *testing.T) {
	repo := NewTaskRepo(newTestDB(t))
	ctx := context.Background()

	start := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	insertTask(t, repo, "a", start, "scheduled")
	insertTask(t, repo, "b", start.Add(time.Hour), "done")

	scheduled, err := repo.List(ctx, "scheduled")
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	assert.Equal(t, "a", scheduled[0].Title)
}

func TestTaskRepo_MarkDone(t *testing.T) {
	repo := NewTaskRepo(newTestDB(t))
	ctx := context.Background()

	start := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	id := insertTask(t, repo, "a", start, "scheduled")

	at := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkDone(ctx, id, at))

	task, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "done", task.Status)
	require.NotNil(t, task.UpdatedAt)
	assert.True(t, task.UpdatedAt.Equal(at))
}

func TestTaskRepo_CountByStatus(t *testing.T) {
	repo := NewTaskRepo(newTestDB(t))
	ctx := context.Background()

	start := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)
	insertTask(t, repo, "a", start, "scheduled")
	insertTask(t, repo, "b", start.Add(time.Hour), "scheduled")
	insertTask(t, repo, "c", start.Add(2*time.Hour), "done")

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["scheduled"])
	assert.Equal(t, 1, counts["done"])
}
