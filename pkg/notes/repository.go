package notes

import (
	"context"
	"time"

	"github.com/aretw0/aide/pkg/core"
	"github.com/aretw0/aide/pkg/typed"
)

// Repository is the notes collection.
type Repository struct {
	*typed.Repository[*Note]
	now func() time.Time
}

// NewRepository wires the notes collection onto storage. now may be nil.
func NewRepository(storage core.Storage, config typed.Config, now func() time.Time) *Repository {
	if now == nil {
		now = time.Now
	}
	return &Repository{
		Repository: typed.NewRepository[*Note](storage, Codec{Now: now}, config),
		now:        now,
	}
}

// Add creates a note stamped with the current time.
func (r *Repository) Add(ctx context.Context, title, content string) (*Note, error) {
	return r.Create(ctx, &Note{
		Title:     title,
		Content:   content,
		Timestamp: core.FormatTimestamp(r.now()),
	})
}

// Update applies u to the note and refreshes its timestamp, even when u is empty.
func (r *Repository) Update(ctx context.Context, id int, u Update) (*Note, error) {
	return r.Edit(ctx, id, func(n *Note) error {
		if u.Title != nil {
			n.Title = *u.Title
		}
		if u.Content != nil {
			n.Content = *u.Content
		}
		n.Timestamp = core.FormatTimestamp(r.now())
		return nil
	})
}
