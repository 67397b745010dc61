package service

import (
	"context"
	"fmt"

	"github.com/Dan9191/unidash/internal/models"
	"github.com/Dan9191/unidash/internal/session"
	"github.com/Dan9191/unidash/internal/state"
)

// Tasks returns the tasks of sess matching query and filter
func (s *Service) Tasks(ctx context.Context, sess session.Session, query, filter string) ([]models.Task, error) {
	if !sess.Valid() {
		return nil, ErrUnauthorized
	}
	list := state.TaskList{Tasks: s.repo.Tasks(ctx, sess)}
	return list.Filter(query, filter)
}

// AddTask appends a pending task
func (s *Service) AddTask(ctx context.Context, sess session.Session, title string) (models.Task, error) {
	unlock, err := s.begin(sess)
	if err != nil {
		return models.Task{}, err
	}
	defer unlock()

	list := state.TaskList{Tasks: s.repo.Tasks(ctx, sess)}
	task, err := list.Add(s.gen, title)
	if err != nil {
		return models.Task{}, err
	}
	if err := s.repo.SaveTasks(ctx, sess, list.Tasks); err != nil {
		return models.Task{}, fmt.Errorf("failed to save tasks: %w", err)
	}
	s.log.Debugf("Task %s added for %s", task.ID, sess.Identity)
	return task, nil
}

// ToggleTask flips the completed flag of a task
func (s *Service) ToggleTask(ctx context.Context, sess session.Session, id string) (models.Task, error) {
	unlock, err := s.begin(sess)
	if err != nil {
		return models.Task{}, err
	}
	defer unlock()

	list := state.TaskList{Tasks: s.repo.Tasks(ctx, sess)}
	task, ok := list.Toggle(id)
	if !ok {
		return models.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if err := s.repo.SaveTasks(ctx, sess, list.Tasks); err != nil {
		return models.Task{}, fmt.Errorf("failed to save tasks: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task. Deleting an unknown id is a no-op.
func (s *Service) DeleteTask(ctx context.Context, sess session.Session, id string) error {
	unlock, err := s.begin(sess)
	if err != nil {
		return err
	}
	defer unlock()

	list := state.TaskList{Tasks: s.repo.Tasks(ctx, sess)}
	if !list.Delete(id) {
		return nil
	}
	if err := s.repo.SaveTasks(ctx, sess, list.Tasks); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// ReorderTasks persists a new task order and returns the reordered list
func (s *Service) ReorderTasks(ctx context.Context, sess session.Session, ids []string) ([]models.Task, error) {
	unlock, err := s.begin(sess)
	if err != nil {
		return nil, err
	}
	defer unlock()

	list := state.TaskList{Tasks: s.repo.Tasks(ctx, sess)}
	list.Reorder(ids)
	if err := s.repo.SaveTasks(ctx, sess, list.Tasks); err != nil {
		return nil, fmt.Errorf("failed to save tasks: %w", err)
	}
	return list.Tasks, nil
}

// TaskStats counts the tasks of sess
func (s *Service) TaskStats(ctx context.Context, sess session.Session) (models.TaskStats, error) {
	if !sess.Valid() {
		return models.TaskStats{}, ErrUnauthorized
	}
	list := state.TaskList{Tasks: s.repo.Tasks(ctx, sess)}
	pending := list.Pending()
	return models.TaskStats{
		Total:     len(list.Tasks),
		Pending:   pending,
		Completed: len(list.Tasks) - pending,
	}, nil
}
