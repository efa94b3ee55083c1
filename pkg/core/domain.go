// Package core holds the domain contracts shared by every collection.
package core

import "fmt"

// Entity is a record that lives in a collection and is identified by an integer ID.
// Implementations are pointer types so the repository can assign the ID on create.
type Entity interface {
	GetID() int
	SetID(id int)
}

// EventType represents the type of change observed on a collection file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of a collection file in the data directory.
type Event struct {
	Type       EventType
	Collection string
	Timestamp  int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Collection)
}
