// Package tasks manages to-do items with a priority and an optional due date.
package tasks

import (
	"encoding/json"

	"github.com/aretw0/aide/pkg/core"
)

// Priority values accepted for a task.
const (
	PriorityHigh   = "Высокий"
	PriorityMedium = "Средний"
	PriorityLow    = "Низкий"
)

// Priorities lists the accepted priorities, highest first.
var Priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}

// Task is a to-do item. DueDate is a DD-MM-YYYY date or nil.
type Task struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Done        bool    `json:"done"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
}

func (t *Task) GetID() int   { return t.ID }
func (t *Task) SetID(id int) { t.ID = id }

// UnmarshalJSON defaults the priority when the field is absent and reads an
// empty due date as none.
func (t *Task) UnmarshalJSON(data []byte) error {
	type plain Task
	p := plain{Priority: PriorityMedium}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.DueDate != nil && *p.DueDate == "" {
		p.DueDate = nil
	}
	*t = Task(p)
	return nil
}

// Update lists the fields to change. Nil fields are left untouched.
type Update struct {
	Title       *string
	Description *string
	Priority    *string
	DueDate     *string
}

// validate checks the fields of u that have constrained values.
func (u Update) validate() error {
	if u.Priority != nil {
		if err := ValidatePriority(*u.Priority); err != nil {
			return err
		}
	}
	if u.DueDate != nil && *u.DueDate != "" {
		if _, err := core.ParseDate("due_date", *u.DueDate); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePriority reports a ValidationError for values outside Priorities.
func ValidatePriority(p string) error {
	for _, known := range Priorities {
		if p == known {
			return nil
		}
	}
	return core.Invalid("priority", p, nil)
}
