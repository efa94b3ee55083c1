// Package contacts manages an address book of names, phones and emails.
package contacts

// Contact is an address book entry. Email is optional.
type Contact struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (c *Contact) GetID() int   { return c.ID }
func (c *Contact) SetID(id int) { c.ID = id }

// Update lists the fields to change. Nil fields are left untouched.
type Update struct {
	Name  *string
	Phone *string
	Email *string
}
