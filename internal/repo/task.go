package repo

import (
	"errors"
	"sync"
	"time"

	"todoapp/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
)

type MemoryRepo struct { // Хранилище задач в памяти, живет пока жив процесс
	mu     sync.RWMutex
	tasks  []model.Task
	nextID int64
}

func NewMemoryRepo() *MemoryRepo { // Конструктор
	return &MemoryRepo{
		nextID: 1,
	}
}

// Create сохраняет новую задачу. Валидация заголовка - на уровне сервиса,
// здесь только выдача ID и created_at. Счетчик растет только при успехе.
func (r *MemoryRepo) Create(title, description string) model.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := model.Task{
		ID:          r.nextID,
		Title:       title, // Храним как есть, без трима
		Description: description,
		CreatedAt:   time.Now(),
	}
	r.tasks = append(r.tasks, t)
	r.nextID++
	return cloneTask(t)
}

func (r *MemoryRepo) Get(id int64) (model.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, false
	}
	return cloneTask(r.tasks[i]), true
}

// List возвращает независимый снимок в порядке создания. Мутации
// результата не затрагивают внутреннее состояние.
func (r *MemoryRepo) List(filter model.Filter) []model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if filter.Matches(t) {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// Update применяет частичное обновление. Переходы completed/completed_at:
//
//	false -> true:  completed_at = now()
//	true  -> false: completed_at = nil
//	без изменения:  completed_at не трогаем
func (r *MemoryRepo) Update(id int64, changes model.TaskUpdate) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrorNotFound
	}

	t := &r.tasks[i]
	if changes.Title != nil {
		t.Title = *changes.Title
	}
	if changes.Description != nil {
		t.Description = *changes.Description
	}
	if changes.Completed != nil {
		switch want := *changes.Completed; {
		case want && !t.Completed:
			now := time.Now()
			t.Completed = true
			t.CompletedAt = &now
		case !want && t.Completed:
			t.Completed = false
			t.CompletedAt = nil
		}
	}
	return cloneTask(*t), nil
}

// Delete удаляет задачу и сообщает, была ли она. Счетчик ID не откатывается.
func (r *MemoryRepo) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return true
}

func (r *MemoryRepo) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	by := map[string]int{"pending": 0, "completed": 0}
	for _, t := range r.tasks {
		by[t.Status()]++
	}
	return Stats{
		TotalTasks: len(r.tasks),
		ByStatus:   by,
	}
}

// Линейный поиск, под уже взятым мьютексом
func (r *MemoryRepo) indexOf(id int64) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Копия, не разделяющая указатель completed_at с хранилищем
func cloneTask(t model.Task) model.Task {
	if t.CompletedAt != nil {
		ts := *t.CompletedAt
		t.CompletedAt = &ts
	}
	return t
}
