package repo

import (
	"todoapp/internal/model"
)

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	Create(title, description string) model.Task
	Get(id int64) (model.Task, bool)
	List(filter model.Filter) []model.Task
	Update(id int64, changes model.TaskUpdate) (model.Task, error)
	Delete(id int64) bool
	Stats() Stats
}

// Stats содержит сводку по всем задачам
type Stats struct {
	TotalTasks int            `json:"total_tasks"`
	ByStatus   map[string]int `json:"by_status"`
}
