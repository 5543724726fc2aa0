package model

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

type Task struct {
	ID       int64        `json:"id"`
	Title    string       `json:"title"`
	Location string       `json:"location"`
	Priority TaskPriority `json:"priority"`
	Status   TaskStatus   `json:"status"`
	Date     string       `json:"date"`
	Assignee string       `json:"assignee"`
}
