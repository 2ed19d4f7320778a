// Package task holds the household task list that swipe rows act on.
package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

var (
	ErrNotFound   = errors.New("task not found")
	ErrNoChange   = errors.New("task already has that status")
	ErrEmptyTitle = errors.New("task title is empty")
)

type Status uint8

const (
	StatusOpen Status = iota
	StatusWaiting
	StatusDone
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusWaiting:
		return "waiting"
	case StatusDone:
		return "done"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

type Task struct {
	ID      uuid.UUID
	Title   string
	Status  Status
	Updated time.Time
}

// List is an ordered list of tasks. It is not safe for concurrent use; the UI owns it.
type List struct {
	// Now returns the current time. It defaults to time.Now.
	Now func() time.Time

	tasks []Task
}

func (l *List) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Add appends an open task.
func (l *List) Add(title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}
	t := Task{
		ID:      uuid.New(),
		Title:   title,
		Status:  StatusOpen,
		Updated: l.now(),
	}
	l.tasks = append(l.tasks, t)
	return t, nil
}

func (l *List) index(id uuid.UUID) (int, error) {
	idx := slices.IndexFunc(l.tasks, func(t Task) bool { return t.ID == id })
	if idx == -1 {
		return -1, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return idx, nil
}

func (l *List) Get(id uuid.UUID) (Task, error) {
	idx, err := l.index(id)
	if err != nil {
		return Task{}, err
	}
	return l.tasks[idx], nil
}

func (l *List) setStatus(id uuid.UUID, s Status) (Task, error) {
	idx, err := l.index(id)
	if err != nil {
		return Task{}, err
	}
	t := &l.tasks[idx]
	if t.Status == s {
		return *t, fmt.Errorf("%w: %q is %s", ErrNoChange, t.Title, s)
	}
	t.Status = s
	t.Updated = l.now()
	return *t, nil
}

// MarkDone completes a task.
func (l *List) MarkDone(id uuid.UUID) (Task, error) { return l.setStatus(id, StatusDone) }

// MarkWaiting marks a task as waiting on someone else.
func (l *List) MarkWaiting(id uuid.UUID) (Task, error) { return l.setStatus(id, StatusWaiting) }

// Reopen returns a task to the open state.
func (l *List) Reopen(id uuid.UUID) (Task, error) { return l.setStatus(id, StatusOpen) }

// Pending returns the tasks that aren't done, in the order they were added.
func (l *List) Pending() []Task {
	out := make([]Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if t.Status != StatusDone {
			out = append(out, t)
		}
	}
	return out
}

// All returns all tasks, in the order they were added.
func (l *List) All() []Task {
	return slices.Clone(l.tasks)
}

func (l *List) Len() int { return len(l.tasks) }
