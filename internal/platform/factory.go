package platform

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/introspection"

	"github.com/aretw0/aide/pkg/adapters/fs"
	"github.com/aretw0/aide/pkg/contacts"
	"github.com/aretw0/aide/pkg/finance"
	"github.com/aretw0/aide/pkg/notes"
	"github.com/aretw0/aide/pkg/tasks"
	"github.com/aretw0/aide/pkg/typed"
)

// Workspace groups the four collections stored in one data directory.
// The collections are independent; nothing is shared between them but the directory.
type Workspace struct {
	Dir      string
	Notes    *notes.Repository
	Tasks    *tasks.Repository
	Contacts *contacts.Repository
	Finance  *finance.Repository
}

// Open creates the repositories of the workspace rooted at dir and loads them.
//
//	ws, err := platform.Open(ctx, "./data", platform.WithLogger(logger))
func Open(ctx context.Context, dir string, opts ...Option) (*Workspace, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Safety & Path Resolution
	bypassSafety := o.readOnly || !o.devSafety
	useTemp := o.forceTemp || (IsDevRun() && !bypassSafety)
	resolved := ResolveDataDir(dir, useTemp)
	if useTemp {
		logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", dir, "resolved_path", resolved)
	}

	file := func(name string) *fs.File {
		return fs.NewFile(fs.Config{
			Path:     filepath.Join(resolved, name+".json"),
			ReadOnly: o.readOnly,
			Logger:   logger,
		})
	}
	cfg := typed.Config{Logger: logger, IDStrategy: o.idStrategy}

	ws := &Workspace{
		Dir:      resolved,
		Notes:    notes.NewRepository(file("notes"), cfg, o.now),
		Tasks:    tasks.NewRepository(file("tasks"), cfg),
		Contacts: contacts.NewRepository(file("contacts"), cfg),
		Finance:  finance.NewRepository(file("finance"), cfg),
	}
	if err := ws.Load(ctx); err != nil {
		return nil, err
	}
	return ws, nil
}

// Load (re)reads every collection from disk.
func (w *Workspace) Load(ctx context.Context) error {
	loaders := []func(context.Context) error{
		func(ctx context.Context) error { _, err := w.Notes.Load(ctx); return err },
		func(ctx context.Context) error { _, err := w.Tasks.Load(ctx); return err },
		func(ctx context.Context) error { _, err := w.Contacts.Load(ctx); return err },
		func(ctx context.Context) error { _, err := w.Finance.Load(ctx); return err },
	}
	for _, load := range loaders {
		if err := load(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Components returns the repositories for introspection, in a fixed order.
func (w *Workspace) Components() []introspection.Introspectable {
	return []introspection.Introspectable{w.Notes, w.Tasks, w.Contacts, w.Finance}
}
