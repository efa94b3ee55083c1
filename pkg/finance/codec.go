package finance

import (
	"strconv"

	"github.com/aretw0/aide/pkg/core"
)

// Codec maps records to the "id, amount, category, date, description" exchange columns.
type Codec struct{}

// Collection implements typed.Codec.
func (Codec) Collection() string { return "finance" }

// Columns lists the exchange columns in file order.
func (Codec) Columns() []string {
	return []string{"id", "amount", "category", "date", "description"}
}

// Required lists the columns an import must carry.
func (Codec) Required() []string { return []string{"amount", "category", "date"} }

// Row renders a record as cells in Columns order.
func (Codec) Row(r *Record) []string {
	return []string{strconv.Itoa(r.ID), r.Amount.String(), r.Category, r.Date, r.Description}
}

// Parse builds a new record from an imported row.
func (Codec) Parse(fields map[string]string) (*Record, error) {
	amount, err := ParseAmount(fields["amount"])
	if err != nil {
		return nil, err
	}
	if _, err := core.ParseDate("date", fields["date"]); err != nil {
		return nil, err
	}
	return &Record{
		Amount:      amount,
		Category:    fields["category"],
		Date:        fields["date"],
		Description: fields["description"],
	}, nil
}
