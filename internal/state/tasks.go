package state

import (
	"strings"

	"github.com/Dan9191/unidash/internal/models"
)

// MiniListSize is the number of tasks shown on the dashboard overview.
const MiniListSize = 5

// TaskList is an ordered task collection. Order is user-controlled.
type TaskList struct {
	Tasks []models.Task
}

// Add appends a new pending task.
func (l *TaskList) Add(gen Generator, title string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, ErrEmptyTitle
	}
	task := models.Task{
		ID:        gen.NewID(),
		Title:     title,
		Completed: false,
		CreatedAt: gen.Now(),
	}
	l.Tasks = append(l.Tasks, task)
	return task, nil
}

// Toggle flips the completed flag of the task with id.
func (l *TaskList) Toggle(id string) (models.Task, bool) {
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			l.Tasks[i].Completed = !l.Tasks[i].Completed
			return l.Tasks[i], true
		}
	}
	return models.Task{}, false
}

// Delete removes the task with id and reports whether one was removed.
func (l *TaskList) Delete(id string) bool {
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			l.Tasks = append(l.Tasks[:i:i], l.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Reorder moves the tasks named in ids to the front, in that order. Unknown
// and repeated ids are ignored; tasks not named keep their relative order
// after the named ones.
func (l *TaskList) Reorder(ids []string) {
	index := make(map[string]int, len(l.Tasks))
	for i, task := range l.Tasks {
		index[task.ID] = i
	}

	placed := make([]bool, len(l.Tasks))
	ordered := make([]models.Task, 0, len(l.Tasks))
	for _, id := range ids {
		i, ok := index[id]
		if !ok || placed[i] {
			continue
		}
		placed[i] = true
		ordered = append(ordered, l.Tasks[i])
	}
	for i, task := range l.Tasks {
		if !placed[i] {
			ordered = append(ordered, task)
		}
	}
	l.Tasks = ordered
}

// Filter returns tasks whose title contains query (case-insensitive) and that
// match filter. An empty filter means all.
func (l *TaskList) Filter(query, filter string) ([]models.Task, error) {
	if filter == "" {
		filter = models.FilterAll
	}
	if filter != models.FilterAll && filter != models.FilterCompleted && filter != models.FilterPending {
		return nil, ErrInvalidFilter
	}
	query = strings.ToLower(query)

	result := make([]models.Task, 0, len(l.Tasks))
	for _, task := range l.Tasks {
		if query != "" && !strings.Contains(strings.ToLower(task.Title), query) {
			continue
		}
		if filter == models.FilterCompleted && !task.Completed {
			continue
		}
		if filter == models.FilterPending && task.Completed {
			continue
		}
		result = append(result, task)
	}
	return result, nil
}

// Pending counts tasks not yet completed.
func (l *TaskList) Pending() int {
	n := 0
	for _, task := range l.Tasks {
		if !task.Completed {
			n++
		}
	}
	return n
}

// Top returns at most n tasks from the head of the list.
func (l *TaskList) Top(n int) []models.Task {
	if n > len(l.Tasks) {
		n = len(l.Tasks)
	}
	if n < 0 {
		n = 0
	}
	return append([]models.Task(nil), l.Tasks[:n]...)
}
