package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/teamcal/teamcal-api/internal/domain"
)

// TaskStore is the persistence contract the service depends on. The file
// document store implements it today; a keyed storage engine could replace
// it without changing the service contract.
type TaskStore interface {
	Load() (domain.TaskBook, error)
	Save(book domain.TaskBook) error
}

// TaskService implements team-scoped task CRUD. Every mutating operation
// reloads the full book, applies the change, and persists the full book
// synchronously. Two concurrent mutations can race (lost update); that is
// an accepted property of the single-writer design, not handled here.
type TaskService struct {
	store  TaskStore
	logger *slog.Logger
}

// NewTaskService creates a TaskService over the given store.
func NewTaskService(store TaskStore, logger *slog.Logger) *TaskService {
	return &TaskService{
		store:  store,
		logger: logger.With("component", "task_service"),
	}
}

// AddTask appends text to the task list for (team, date). The team always
// comes from the caller's authenticated session, never from client input.
func (s *TaskService) AddTask(ctx context.Context, team, date, text string) error {
	if team == "" {
		return fmt.Errorf("%w: team is required", domain.ErrValidation)
	}
	if err := domain.ValidateDateKey(date); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: task text is required", domain.ErrValidation)
	}

	book, err := s.store.Load()
	if err != nil {
		return err
	}
	book.Append(team, date, text)
	if err := s.store.Save(book); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "task added",
		"team", team,
		"date", date,
		"count", len(book.Tasks(team, date)))
	return nil
}

// ListTasks returns the ordered task list for (team, date). Unknown or
// missing arguments yield an empty list, never an error.
func (s *TaskService) ListTasks(ctx context.Context, team, date string) ([]string, error) {
	if team == "" || date == "" {
		return []string{}, nil
	}
	book, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return book.Tasks(team, date), nil
}

// DeleteTask removes the task at index from (team, date). A missing
// association or an index outside [0, len) fails with a validation error
// and leaves the durable document untouched.
func (s *TaskService) DeleteTask(ctx context.Context, team, date string, index int) error {
	if team == "" {
		return fmt.Errorf("%w: team is required", domain.ErrValidation)
	}
	if err := domain.ValidateDateKey(date); err != nil {
		return err
	}

	book, err := s.store.Load()
	if err != nil {
		return err
	}
	if err := book.Remove(team, date, index); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := s.store.Save(book); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "task deleted",
		"team", team,
		"date", date,
		"index", index)
	return nil
}
