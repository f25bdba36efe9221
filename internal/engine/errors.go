package engine

import "fmt"

// NotFoundError indicates a lookup by ID matched nothing.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ValidationError indicates malformed caller input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AlreadyDoneError indicates an attempt to complete a task whose
// done transition already happened. Completion is terminal; the XP
// award never runs twice for one task.
type AlreadyDoneError struct {
	TaskID string
}

func (e AlreadyDoneError) Error() string {
	return fmt.Sprintf("task %s is already done", e.TaskID)
}
