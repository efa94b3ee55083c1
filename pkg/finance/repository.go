package finance

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aretw0/aide/pkg/core"
	"github.com/aretw0/aide/pkg/typed"
)

// Repository is the finance collection.
type Repository struct {
	*typed.Repository[*Record]
}

// NewRepository wires the finance collection onto storage.
func NewRepository(storage core.Storage, config typed.Config) *Repository {
	return &Repository{Repository: typed.NewRepository[*Record](storage, Codec{}, config)}
}

// Add creates a record. date must be a DD-MM-YYYY date.
func (r *Repository) Add(ctx context.Context, amount decimal.Decimal, category, date, description string) (*Record, error) {
	if _, err := core.ParseDate("date", date); err != nil {
		return nil, err
	}
	return r.Create(ctx, &Record{
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
	})
}

// Update applies u to the record.
func (r *Repository) Update(ctx context.Context, id int, u Update) (*Record, error) {
	if u.Date != nil {
		if _, err := core.ParseDate("date", *u.Date); err != nil {
			return nil, err
		}
	}
	return r.Edit(ctx, id, func(rec *Record) error {
		if u.Amount != nil {
			rec.Amount = *u.Amount
		}
		if u.Category != nil {
			rec.Category = *u.Category
		}
		if u.Date != nil {
			rec.Date = *u.Date
		}
		if u.Description != nil {
			rec.Description = *u.Description
		}
		return nil
	})
}

// FilterByDate returns the records dated exactly date.
func (r *Repository) FilterByDate(ctx context.Context, date string) ([]*Record, error) {
	return r.Filter(ctx, func(rec *Record) bool { return rec.Date == date })
}

// FilterByCategory returns the records of category, ignoring case.
func (r *Repository) FilterByCategory(ctx context.Context, category string) ([]*Record, error) {
	return r.Filter(ctx, func(rec *Record) bool { return strings.EqualFold(rec.Category, category) })
}

// Report summarizes the records dated within [Start, End].
type Report struct {
	Start    time.Time
	End      time.Time
	Records  []*Record
	Income   decimal.Decimal // sum of positive amounts
	Expenses decimal.Decimal // sum of negative amounts, zero or below
	Balance  decimal.Decimal
}

// Report selects the records dated between start and end inclusive and sums
// them. Any unparsable date, in the bounds or in a record, fails the whole report.
func (r *Repository) Report(ctx context.Context, start, end string) (*Report, error) {
	from, err := core.ParseDate("start date", start)
	if err != nil {
		return nil, err
	}
	to, err := core.ParseDate("end date", end)
	if err != nil {
		return nil, err
	}

	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	rep := &Report{Start: from, End: to, Income: decimal.Zero, Expenses: decimal.Zero}
	for _, rec := range items {
		d, err := core.ParseDate("date", rec.Date)
		if err != nil {
			return nil, err
		}
		if d.Before(from) || d.After(to) {
			continue
		}
		rep.Records = append(rep.Records, rec)
		switch {
		case rec.Amount.IsPositive():
			rep.Income = rep.Income.Add(rec.Amount)
		case rec.Amount.IsNegative():
			rep.Expenses = rep.Expenses.Add(rec.Amount)
		}
	}
	rep.Balance = rep.Income.Add(rep.Expenses)
	return rep, nil
}
