package typed

import "github.com/aretw0/aide/pkg/core"

// Codec describes how the entities of one collection map to flat exchange rows.
type Codec[T core.Entity] interface {
	// Collection is the collection name ("notes", "tasks", ...).
	Collection() string
	// Columns lists the exchange columns in order. They match the persisted field names.
	Columns() []string
	// Required lists the columns an import file must carry.
	Required() []string
	// Row renders an entity as cells in Columns order.
	Row(item T) []string
	// Parse builds a fresh entity from an imported row. The id cell is ignored.
	Parse(fields map[string]string) (T, error)
}

// NonEmpty returns nil for an empty string and a pointer to s otherwise.
// Shells use it to turn "left blank" answers into "not provided" update fields.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
