package typed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"github.com/aretw0/aide/pkg/adapters/fs"
	"github.com/aretw0/aide/pkg/core"
)

// IDStrategy decides the id of a newly created record.
type IDStrategy string

const (
	// IDFromCount assigns len(records)+1. Ids can collide after a delete.
	IDFromCount IDStrategy = "count"
	// IDAfterMax assigns the highest existing id + 1.
	IDAfterMax IDStrategy = "max"
)

// ParseIDStrategy maps a configuration value to an IDStrategy.
func ParseIDStrategy(s string) (IDStrategy, error) {
	switch IDStrategy(s) {
	case "", IDFromCount:
		return IDFromCount, nil
	case IDAfterMax:
		return IDAfterMax, nil
	}
	return "", core.Invalid("id strategy", s, nil)
}

// Config holds the configuration of a typed repository.
type Config struct {
	Logger     *slog.Logger
	IDStrategy IDStrategy
}

// quarantiner is implemented by storages able to move a corrupt document aside.
type quarantiner interface {
	Quarantine(ctx context.Context) (string, error)
}

// Repository keeps one collection in memory as an ordered sequence and mirrors
// every mutation to its storage (write-through). It is not safe for concurrent use.
type Repository[T core.Entity] struct {
	storage core.Storage
	codec   Codec[T]
	config  Config
	logger  *slog.Logger

	items  []T
	loaded bool
}

// NewRepository creates a repository. The collection is loaded lazily on first use.
func NewRepository[T core.Entity](storage core.Storage, codec Codec[T], config Config) *Repository[T] {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if config.IDStrategy == "" {
		config.IDStrategy = IDFromCount
	}
	return &Repository[T]{
		storage: storage,
		codec:   codec,
		config:  config,
		logger:  logger.With("collection", codec.Collection()),
	}
}

// Collection returns the collection name.
func (r *Repository[T]) Collection() string { return r.codec.Collection() }

// Codec returns the exchange codec of the collection.
func (r *Repository[T]) Codec() Codec[T] { return r.codec }

// Load (re)reads the collection from storage, replacing the in-memory sequence.
// A missing, empty or undecodable document yields an empty collection. An
// undecodable document is moved aside when the storage supports it.
func (r *Repository[T]) Load(ctx context.Context) ([]T, error) {
	data, err := r.storage.Read(ctx)
	if err != nil {
		return nil, err
	}

	r.items = nil
	r.loaded = true

	if len(bytes.TrimSpace(data)) == 0 {
		return r.List(ctx)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		r.logger.Warn("collection file is corrupt, starting empty", "path", r.storage.Location(), "error", err)
		if q, ok := r.storage.(quarantiner); ok {
			if moved, qerr := q.Quarantine(ctx); qerr == nil {
				r.logger.Warn("corrupt collection file moved aside", "path", moved)
			}
		}
		return r.List(ctx)
	}

	// A literal null inside the array decodes to a nil entity.
	r.items = slices.DeleteFunc(items, func(item T) bool { return isNil(item) })
	r.logger.Debug("collection loaded", "path", r.storage.Location(), "records", len(r.items))
	return r.List(ctx)
}

// Save writes the whole in-memory sequence to storage.
func (r *Repository[T]) Save(ctx context.Context) error {
	items := r.items
	if items == nil {
		items = []T{}
	}
	data, err := fs.MarshalDocument(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.Collection(), err)
	}
	if err := r.storage.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", r.Collection(), err)
	}
	return nil
}

// Create assigns an id to item, appends it and persists the collection.
func (r *Repository[T]) Create(ctx context.Context, item T) (T, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return item, err
	}
	item.SetID(r.nextID())
	r.items = append(r.items, item)
	if err := r.Save(ctx); err != nil {
		return item, err
	}
	r.logger.Debug("record created", "id", item.GetID())
	return item, nil
}

// FindByID returns the first record with the given id.
func (r *Repository[T]) FindByID(ctx context.Context, id int) (T, error) {
	var zero T
	if err := r.ensureLoaded(ctx); err != nil {
		return zero, err
	}
	for _, item := range r.items {
		if item.GetID() == id {
			return item, nil
		}
	}
	return zero, core.NotFound(r.Collection(), id)
}

// Edit applies fn to the record with the given id and persists the collection.
// When fn fails nothing is persisted; fn must validate before it mutates.
func (r *Repository[T]) Edit(ctx context.Context, id int, fn func(T) error) (T, error) {
	item, err := r.FindByID(ctx, id)
	if err != nil {
		return item, err
	}
	if err := fn(item); err != nil {
		return item, err
	}
	if err := r.Save(ctx); err != nil {
		return item, err
	}
	r.logger.Debug("record edited", "id", id)
	return item, nil
}

// Delete removes every record with the given id and persists the collection.
// Deleting an unknown id is not an error; the number of removed records is returned.
func (r *Repository[T]) Delete(ctx context.Context, id int) (int, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return 0, err
	}
	before := len(r.items)
	r.items = slices.DeleteFunc(r.items, func(item T) bool { return item.GetID() == id })
	removed := before - len(r.items)
	if err := r.Save(ctx); err != nil {
		return removed, err
	}
	r.logger.Debug("records deleted", "id", id, "removed", removed)
	return removed, nil
}

// List returns the records in stored order.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(r.items), nil
}

// Filter returns the records matching keep, in stored order.
func (r *Repository[T]) Filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	var out []T
	for _, item := range r.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Len returns the number of loaded records.
func (r *Repository[T]) Len() int { return len(r.items) }

func (r *Repository[T]) ensureLoaded(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	_, err := r.Load(ctx)
	return err
}

func (r *Repository[T]) nextID() int {
	if r.config.IDStrategy == IDAfterMax {
		highest := 0
		for _, item := range r.items {
			highest = max(highest, item.GetID())
		}
		return highest + 1
	}
	return len(r.items) + 1
}

func isNil[T core.Entity](item T) bool {
	v := reflect.ValueOf(item)
	return !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil())
}
