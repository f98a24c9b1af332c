package interpreter

import (
	"go.trai.ch/kmak/internal/core/domain"
)

// TaskRegistry holds the tasks of a script in declaration order.
type TaskRegistry struct {
	tasks    []*domain.Task
	index    map[string]int
	maxTasks int
	maxLines int
}

// NewTaskRegistry creates an empty registry with the given limits.
func NewTaskRegistry(limits domain.Limits) *TaskRegistry {
	return &TaskRegistry{
		index:    make(map[string]int),
		maxTasks: limits.Tasks,
		maxLines: limits.TaskLines,
	}
}

// Open registers a new, empty task.
func (r *TaskRegistry) Open(name string, line int) (*domain.Task, error) {
	if i, ok := r.index[name]; ok {
		return nil, domain.Tag(domain.ErrDuplicateTask, "task", name, "first_line", r.tasks[i].Line)
	}
	if r.maxTasks > 0 && len(r.tasks) >= r.maxTasks {
		return nil, domain.Tag(domain.ErrTooManyTasks, "limit", r.maxTasks)
	}

	task := &domain.Task{Name: name, Line: line}
	r.index[name] = len(r.tasks)
	r.tasks = append(r.tasks, task)
	return task, nil
}

// Append adds a body line to task.
func (r *TaskRegistry) Append(task *domain.Task, line domain.BodyLine) error {
	if r.maxLines > 0 && len(task.Body) >= r.maxLines {
		return domain.Tag(domain.ErrTooManyTaskLines, "task", task.Name, "limit", r.maxLines)
	}
	task.Body = append(task.Body, line)
	return nil
}

// Lookup finds a registered task by exact name.
func (r *TaskRegistry) Lookup(name string) (*domain.Task, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.tasks[i], true
}

// Names returns the task names in declaration order.
func (r *TaskRegistry) Names() []string {
	names := make([]string, len(r.tasks))
	for i, t := range r.tasks {
		names[i] = t.Name
	}
	return names
}

// Len returns the number of registered tasks.
func (r *TaskRegistry) Len() int {
	return len(r.tasks)
}
