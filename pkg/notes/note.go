// Package notes manages free-form notes with a modification timestamp.
package notes

// Note is a titled piece of text. Timestamp follows core.TimestampLayout and is
// refreshed on create and on every edit.
type Note struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

func (n *Note) GetID() int   { return n.ID }
func (n *Note) SetID(id int) { n.ID = id }

// Update lists the fields to change. Nil fields are left untouched.
type Update struct {
	Title   *string
	Content *string
}
