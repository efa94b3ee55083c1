package aide

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/aide/internal/platform"
	"github.com/aretw0/aide/pkg/adapters/fs"
	"github.com/aretw0/aide/pkg/core"
	"github.com/aretw0/aide/pkg/typed"
)

// Version is the version of the library and the CLI.
const Version = "0.3.0"

// --- Types ---

// Workspace groups the notes, tasks, contacts and finance collections of one data directory.
type Workspace = platform.Workspace

// TypedRepository is a public alias for the generic flat-file repository.
type TypedRepository[T core.Entity] = typed.Repository[T]

// Codec is a public alias for the exchange schema of a collection.
type Codec[T core.Entity] = typed.Codec[T]

// IDStrategy selects how new record ids are assigned.
type IDStrategy = typed.IDStrategy

const (
	IDFromCount = typed.IDFromCount
	IDAfterMax  = typed.IDAfterMax
)

// --- Configuration ---

// Option defines a functional option for opening a workspace.
type Option = platform.Option

// WithLogger sets the logger used by every repository.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithIDStrategy selects how new record ids are assigned.
func WithIDStrategy(s IDStrategy) Option {
	return platform.WithIDStrategy(s)
}

// WithReadOnly rejects every mutation with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithClock overrides the time source used for note timestamps.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithForceTemp forces the use of a temporary data directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the temporary-directory sandbox used under `go run`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// Open opens the four collections stored in dir.
func Open(ctx context.Context, dir string, opts ...Option) (*Workspace, error) {
	return platform.Open(ctx, dir, opts...)
}

// OpenTypedRepository creates a repository for a custom entity stored in a single JSON file.
func OpenTypedRepository[T core.Entity](path string, codec Codec[T], logger *slog.Logger) *TypedRepository[T] {
	storage := fs.NewFile(fs.Config{Path: path, Logger: logger})
	return typed.NewRepository(storage, codec, typed.Config{Logger: logger})
}

// --- Safety & Utils ---

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// ResolveDataDir determines the actual data directory based on safety rules.
func ResolveDataDir(userPath string, forceTemp bool) string {
	return platform.ResolveDataDir(userPath, forceTemp)
}

// FindRoot looks upwards for a project root (aide.yaml, .aide or .git).
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
