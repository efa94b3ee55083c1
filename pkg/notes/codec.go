package notes

import (
	"strconv"
	"time"

	"github.com/aretw0/aide/pkg/core"
)

// Codec maps notes to the "id, title, content, timestamp" exchange columns.
type Codec struct {
	Now func() time.Time
}

// Collection implements typed.Codec.
func (Codec) Collection() string { return "notes" }

// Columns lists the exchange columns in file order.
func (Codec) Columns() []string { return []string{"id", "title", "content", "timestamp"} }

// Required lists the columns an import must carry.
func (Codec) Required() []string { return []string{"title", "content"} }

// Row renders a note as cells in Columns order.
func (Codec) Row(n *Note) []string {
	return []string{strconv.Itoa(n.ID), n.Title, n.Content, n.Timestamp}
}

// Parse keeps an imported timestamp so exported notes come back unchanged;
// rows without one are stamped with the current time.
func (c Codec) Parse(fields map[string]string) (*Note, error) {
	ts := fields["timestamp"]
	if ts == "" {
		ts = core.FormatTimestamp(c.now())
	} else if _, err := time.Parse(core.TimestampLayout, ts); err != nil {
		return nil, core.Invalid("timestamp", ts, err)
	}
	return &Note{
		Title:     fields["title"],
		Content:   fields["content"],
		Timestamp: ts,
	}, nil
}

func (c Codec) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
