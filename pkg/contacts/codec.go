package contacts

import "strconv"

// Codec maps contacts to the "id, name, phone, email" exchange columns.
type Codec struct{}

// Collection implements typed.Codec.
func (Codec) Collection() string { return "contacts" }

// Columns lists the exchange columns in file order.
func (Codec) Columns() []string { return []string{"id", "name", "phone", "email"} }

// Required lists the columns an import must carry.
func (Codec) Required() []string { return []string{"name", "phone"} }

// Row renders a contact as cells in Columns order.
func (Codec) Row(c *Contact) []string {
	return []string{strconv.Itoa(c.ID), c.Name, c.Phone, c.Email}
}

// Parse builds a new contact from an imported row.
func (Codec) Parse(fields map[string]string) (*Contact, error) {
	return &Contact{
		Name:  fields["name"],
		Phone: fields["phone"],
		Email: fields["email"],
	}, nil
}
