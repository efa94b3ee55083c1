package tasks

import (
	"strconv"
	"strings"

	"github.com/aretw0/aide/pkg/core"
)

// Codec maps tasks to the "id, title, description, done, priority, due_date" exchange columns.
type Codec struct{}

// Collection implements typed.Codec.
func (Codec) Collection() string { return "tasks" }

// Columns lists the exchange columns in file order.
func (Codec) Columns() []string {
	return []string{"id", "title", "description", "done", "priority", "due_date"}
}

// Required lists the columns an import must carry.
func (Codec) Required() []string { return []string{"title"} }

// Row renders a task as cells in Columns order.
func (Codec) Row(t *Task) []string {
	due := ""
	if t.DueDate != nil {
		due = *t.DueDate
	}
	return []string{strconv.Itoa(t.ID), t.Title, t.Description, strconv.FormatBool(t.Done), t.Priority, due}
}

// Parse accepts "true" in any letter case as done; anything else is pending.
// A priority outside Priorities is kept as written; an empty one is PriorityMedium.
func (Codec) Parse(fields map[string]string) (*Task, error) {
	priority := fields["priority"]
	if priority == "" {
		priority = PriorityMedium
	}

	var due *string
	if d := strings.TrimSpace(fields["due_date"]); d != "" {
		if _, err := core.ParseDate("due_date", d); err != nil {
			return nil, err
		}
		due = &d
	}

	return &Task{
		Title:       fields["title"],
		Description: fields["description"],
		Done:        strings.EqualFold(strings.TrimSpace(fields["done"]), "true"),
		Priority:    priority,
		DueDate:     due,
	}, nil
}
