package service

import (
	"errors"
	"fmt"
	"strings"

	"todoapp/internal/model"
	"todoapp/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create валидирует заголовок и создает задачу. Заголовок сохраняется
// без трима - проверяется только непустота.
func (s *TaskService) Create(title, description string) (model.Task, error) {
	if strings.TrimSpace(title) == "" {
		return model.Task{}, fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	}
	return s.repo.Create(title, description), nil
}

func (s *TaskService) Get(id int64) (model.Task, bool) {
	return s.repo.Get(id)
}

func (s *TaskService) List(filter model.Filter) ([]model.Task, error) {
	if !filter.Valid() {
		return nil, fmt.Errorf("%w: invalid filter %q, use 'all', 'pending' or 'completed'", ErrValidation, string(filter))
	}
	return s.repo.List(filter), nil
}

// Update не перепроверяет пустоту заголовка - валидация только при создании
func (s *TaskService) Update(id int64, changes model.TaskUpdate) (model.Task, error) {
	return s.repo.Update(id, changes)
}

func (s *TaskService) Delete(id int64) bool {
	return s.repo.Delete(id)
}

func (s *TaskService) Stats() repo.Stats {
	return s.repo.Stats()
}
