package typed

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/aide/pkg/core"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Collection string `json:"collection"`
	Path       string `json:"path"`
	Loaded     bool   `json:"loaded"`
	Records    int    `json:"records"`
	IDStrategy string `json:"id_strategy"`
	ReadOnly   bool   `json:"read_only"`
}

type readOnlyStorage interface {
	ReadOnly() bool
}

// State implements introspection.Introspectable.
func (r *Repository[T]) State() any {
	readOnly := false
	if ro, ok := r.storage.(readOnlyStorage); ok {
		readOnly = ro.ReadOnly()
	}
	return RepositoryState{
		Collection: r.Collection(),
		Path:       r.storage.Location(),
		Loaded:     r.loaded,
		Records:    len(r.items),
		IDStrategy: string(r.config.IDStrategy),
		ReadOnly:   readOnly,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository[T]) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository[core.Entity])(nil)
var _ introspection.Component = (*Repository[core.Entity])(nil)
