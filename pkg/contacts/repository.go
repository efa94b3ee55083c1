package contacts

import (
	"context"
	"strings"

	"github.com/aretw0/aide/pkg/core"
	"github.com/aretw0/aide/pkg/typed"
)

// Repository is the contacts collection.
type Repository struct {
	*typed.Repository[*Contact]
}

// NewRepository wires the contacts collection onto storage.
func NewRepository(storage core.Storage, config typed.Config) *Repository {
	return &Repository{Repository: typed.NewRepository[*Contact](storage, Codec{}, config)}
}

// Add creates a contact. Email may be empty.
func (r *Repository) Add(ctx context.Context, name, phone, email string) (*Contact, error) {
	return r.Create(ctx, &Contact{Name: name, Phone: phone, Email: email})
}

// Update applies u to the contact.
func (r *Repository) Update(ctx context.Context, id int, u Update) (*Contact, error) {
	return r.Edit(ctx, id, func(c *Contact) error {
		if u.Name != nil {
			c.Name = *u.Name
		}
		if u.Phone != nil {
			c.Phone = *u.Phone
		}
		if u.Email != nil {
			c.Email = *u.Email
		}
		return nil
	})
}

// Search returns the contacts whose name contains query (ignoring case) or
// whose phone contains query.
func (r *Repository) Search(ctx context.Context, query string) ([]*Contact, error) {
	q := strings.ToLower(query)
	return r.Filter(ctx, func(c *Contact) bool {
		return strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Phone, q)
	})
}
