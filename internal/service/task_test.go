package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todoapp/internal/model"
	"todoapp/internal/repo"
)

// MockTaskRepository - мок репозитория
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(title, description string) model.Task {
	args := m.Called(title, description)
	return args.Get(0).(model.Task)
}

func (m *MockTaskRepository) Get(id int64) (model.Task, bool) {
	args := m.Called(id)
	return args.Get(0).(model.Task), args.Bool(1)
}

func (m *MockTaskRepository) List(filter model.Filter) []model.Task {
	args := m.Called(filter)
	return args.Get(0).([]model.Task)
}

func (m *MockTaskRepository) Update(id int64, changes model.TaskUpdate) (model.Task, error) {
	args := m.Called(id, changes)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(id int64) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockTaskRepository) Stats() repo.Stats {
	args := m.Called()
	return args.Get(0).(repo.Stats)
}

func TestTaskService_Create(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		setupMock   func(*MockTaskRepository)
		wantErr     error
	}{
		{
			name:        "successful creation",
			title:       "Test Task",
			description: "details",
			setupMock: func(m *MockTaskRepository) {
				m.On("Create", "Test Task", "details").Return(model.Task{
					ID:          1,
					Title:       "Test Task",
					Description: "details",
				})
			},
			wantErr: nil,
		},
		{
			name:      "validation error - empty title",
			title:     "",
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrValidation,
		},
		{
			name:      "validation error - whitespace title",
			title:     "   ",
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrValidation,
		},
		{
			name:  "title stored untrimmed",
			title: "  padded  ",
			setupMock: func(m *MockTaskRepository) {
				m.On("Create", "  padded  ", "").Return(model.Task{ID: 1, Title: "  padded  "})
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			tt.setupMock(mockRepo)

			service := NewTaskService(mockRepo)
			result, err := service.Create(tt.title, tt.description)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotZero(t, result.ID)
			}

			// При ошибке валидации репозиторий не должен вызываться
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_List(t *testing.T) {
	tests := []struct {
		name      string
		filter    model.Filter
		setupMock func(*MockTaskRepository)
		wantErr   error
	}{
		{
			name:   "all",
			filter: model.FilterAll,
			setupMock: func(m *MockTaskRepository) {
				m.On("List", model.FilterAll).Return([]model.Task{})
			},
		},
		{
			name:   "pending",
			filter: model.FilterPending,
			setupMock: func(m *MockTaskRepository) {
				m.On("List", model.FilterPending).Return([]model.Task{})
			},
		},
		{
			name:   "completed",
			filter: model.FilterCompleted,
			setupMock: func(m *MockTaskRepository) {
				m.On("List", model.FilterCompleted).Return([]model.Task{})
			},
		},
		{
			name:      "unknown filter value",
			filter:    model.Filter("bogus"),
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			tt.setupMock(mockRepo)

			service := NewTaskService(mockRepo)
			_, err := service.List(tt.filter)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "all")
				assert.Contains(t, err.Error(), "pending")
				assert.Contains(t, err.Error(), "completed")
			} else {
				require.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_UpdateSkipsTitleValidation(t *testing.T) {
	// Асимметрия по контракту: create валидирует заголовок, update - нет
	empty := ""
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Update", int64(1), model.TaskUpdate{Title: &empty}).
		Return(model.Task{ID: 1, Title: ""}, nil)

	service := NewTaskService(mockRepo)
	result, err := service.Update(1, model.TaskUpdate{Title: &empty})

	require.NoError(t, err)
	assert.Equal(t, "", result.Title)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_UpdateNotFound(t *testing.T) {
	title := "x"
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Update", int64(9999), model.TaskUpdate{Title: &title}).
		Return(model.Task{}, repo.ErrorNotFound)

	service := NewTaskService(mockRepo)
	_, err := service.Update(9999, model.TaskUpdate{Title: &title})

	assert.ErrorIs(t, err, repo.ErrorNotFound)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_Delete(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Delete", int64(1)).Return(true).Once()
	mockRepo.On("Delete", int64(1)).Return(false).Once()

	service := NewTaskService(mockRepo)
	assert.True(t, service.Delete(1))
	assert.False(t, service.Delete(1))
	mockRepo.AssertExpectations(t)
}

func TestTaskService_Get(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Get", int64(1)).Return(model.Task{ID: 1, Title: "found"}, true)
	mockRepo.On("Get", int64(2)).Return(model.Task{}, false)

	service := NewTaskService(mockRepo)

	task, ok := service.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "found", task.Title)

	_, ok = service.Get(2)
	assert.False(t, ok)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_Stats(t *testing.T) {
	expected := repo.Stats{
		TotalTasks: 3,
		ByStatus:   map[string]int{"pending": 2, "completed": 1},
	}
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Stats").Return(expected)

	service := NewTaskService(mockRepo)
	assert.Equal(t, expected, service.Stats())
	mockRepo.AssertExpectations(t)
}
