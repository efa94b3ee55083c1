// Package finance manages income and expense entries and reports over date ranges.
package finance

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aretw0/aide/pkg/core"
)

// Record is one financial entry. A positive Amount is income, a negative one an expense.
// Date follows core.DateLayout.
type Record struct {
	ID          int             `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

func (r *Record) GetID() int   { return r.ID }
func (r *Record) SetID(id int) { r.ID = id }

// IsIncome reports whether the record adds money.
func (r *Record) IsIncome() bool { return r.Amount.IsPositive() }

// MarshalJSON writes the amount as a JSON number rather than a quoted string.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(struct {
		ID          int         `json:"id"`
		Amount      json.Number `json:"amount"`
		Category    string      `json:"category"`
		Date        string      `json:"date"`
		Description string      `json:"description"`
	}{r.ID, json.Number(r.Amount.String()), r.Category, r.Date, r.Description})
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Update lists the fields to change. Nil fields are left untouched.
type Update struct {
	Amount      *decimal.Decimal
	Category    *string
	Date        *string
	Description *string
}

// ParseAmount parses a signed decimal amount such as "-40.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, core.Invalid("amount", s, err)
	}
	return d, nil
}
