package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrodat/property360/internal/model"
	"github.com/agrodat/property360/internal/store"
)

// TaskService owns the kanban board: a flat task list with freely
// reversible status transitions.
type TaskService struct {
	state *State
	store Store
	log   zerolog.Logger
}

func NewTaskService(state *State, st Store, log zerolog.Logger) *TaskService {
	return &TaskService{state: state, store: st, log: log}
}

func (s *TaskService) Tasks() []model.Task {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.Tasks
}

// Save creates the task when it carries no id, otherwise replaces the
// matching one.
func (s *TaskService) Save(task model.Task) (model.Task, error) {
	if task.Status == "" {
		task.Status = model.TaskStatusTodo
	}
	if !task.Status.Valid() {
		return model.Task{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, task.Status)
	}
	task.Date = model.NormalizeDate(task.Date)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	tasks := make([]model.Task, len(s.state.Tasks))
	copy(tasks, s.state.Tasks)

	if task.ID == 0 {
		task.ID = time.Now().UnixMilli()
		tasks = append(tasks, task)
	} else {
		replaced := false
		for i := range tasks {
			if tasks[i].ID == task.ID {
				tasks[i] = task
				replaced = true
				break
			}
		}
		if !replaced {
			return model.Task{}, fmt.Errorf("%w: task %d", ErrNotFound, task.ID)
		}
	}

	s.state.Tasks = tasks
	s.store.Save(store.KeyTasks, s.state.Tasks)
	return task, nil
}

// SetStatus moves a task between columns. Any transition is allowed; done
// is not terminal.
func (s *TaskService) SetStatus(taskID int64, status model.TaskStatus) (model.Task, error) {
	if !status.Valid() {
		return model.Task{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	tasks := make([]model.Task, len(s.state.Tasks))
	copy(tasks, s.state.Tasks)

	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Status = status
			s.state.Tasks = tasks
			s.store.Save(store.KeyTasks, s.state.Tasks)
			return tasks[i], nil
		}
	}
	return model.Task{}, fmt.Errorf("%w: task %d", ErrNotFound, taskID)
}

func (s *TaskService) Delete(taskID int64) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	tasks := make([]model.Task, 0, len(s.state.Tasks))
	found := false
	for _, task := range s.state.Tasks {
		if task.ID == taskID {
			found = true
			continue
		}
		tasks = append(tasks, task)
	}
	if !found {
		return fmt.Errorf("%w: task %d", ErrNotFound, taskID)
	}

	s.state.Tasks = tasks
	s.store.Save(store.KeyTasks, s.state.Tasks)
	return nil
}

// TaskFilter is a read-side projection; empty members match everything.
type TaskFilter struct {
	Query    string
	Priority model.TaskPriority
	Assignee string
}

func (s *TaskService) Filter(filter TaskFilter) []model.Task {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	query := strings.ToLower(filter.Query)
	result := make([]model.Task, 0, len(s.state.Tasks))
	for _, task := range s.state.Tasks {
		if query != "" &&
			!strings.Contains(strings.ToLower(task.Title), query) &&
			!strings.Contains(strings.ToLower(task.Location), query) {
			continue
		}
		if filter.Priority != "" && task.Priority != filter.Priority {
			continue
		}
		if filter.Assignee != "" && task.Assignee != filter.Assignee {
			continue
		}
		result = append(result, task)
	}
	return result
}
