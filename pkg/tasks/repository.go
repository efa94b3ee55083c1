package tasks

import (
	"context"

	"github.com/aretw0/aide/pkg/core"
	"github.com/aretw0/aide/pkg/typed"
)

// Repository is the tasks collection.
type Repository struct {
	*typed.Repository[*Task]
}

// NewRepository wires the tasks collection onto storage.
func NewRepository(storage core.Storage, config typed.Config) *Repository {
	return &Repository{Repository: typed.NewRepository[*Task](storage, Codec{}, config)}
}

// Add creates a pending task. An empty priority means PriorityMedium and an
// empty due date means none.
func (r *Repository) Add(ctx context.Context, title, description, priority, dueDate string) (*Task, error) {
	if priority == "" {
		priority = PriorityMedium
	}
	u := Update{Priority: &priority, DueDate: typed.NonEmpty(dueDate)}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return r.Create(ctx, &Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     u.DueDate,
	})
}

// Update applies u to the task. An explicitly empty due date clears it.
func (r *Repository) Update(ctx context.Context, id int, u Update) (*Task, error) {
	if err := u.validate(); err != nil {
		return nil, err
	}
	return r.Edit(ctx, id, func(t *Task) error {
		if u.Title != nil {
			t.Title = *u.Title
		}
		if u.Description != nil {
			t.Description = *u.Description
		}
		if u.Priority != nil {
			t.Priority = *u.Priority
		}
		if u.DueDate != nil {
			t.DueDate = typed.NonEmpty(*u.DueDate)
		}
		return nil
	})
}

// MarkDone flags the task as done and persists the collection.
func (r *Repository) MarkDone(ctx context.Context, id int) (*Task, error) {
	return r.Edit(ctx, id, func(t *Task) error {
		t.Done = true
		return nil
	})
}

// Pending returns the tasks that are not done, in stored order.
func (r *Repository) Pending(ctx context.Context) ([]*Task, error) {
	return r.Filter(ctx, func(t *Task) bool { return !t.Done })
}
