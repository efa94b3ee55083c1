package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/aide/pkg/core"
)

// Config holds the configuration for a collection file.
type Config struct {
	Path     string
	ReadOnly bool
	Perm     os.FileMode // defaults to 0644
	Logger   *slog.Logger
}

// File implements core.Storage on top of a single file.
type File struct {
	config Config
	logger *slog.Logger
}

// NewFile creates a file-backed storage. Nothing touches the disk until Read or Write.
func NewFile(config Config) *File {
	if config.Perm == 0 {
		config.Perm = 0644
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &File{config: config, logger: logger}
}

// Location returns the file path.
func (f *File) Location() string { return f.config.Path }

// ReadOnly reports whether writes are rejected.
func (f *File) ReadOnly() bool { return f.config.ReadOnly }

// Read returns the file content, or (nil, nil) when the file does not exist yet.
func (f *File) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.config.Path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug("collection file missing, starting empty", "path", f.config.Path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.config.Path, err)
	}
	return data, nil
}

// Write replaces the file content atomically, creating the parent directory if needed.
func (f *File) Write(ctx context.Context, data []byte) error {
	if f.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.config.Path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := WriteFileAtomic(f.config.Path, data, f.config.Perm); err != nil {
		return err
	}
	f.logger.Debug("collection file written", "path", f.config.Path, "bytes", len(data))
	return nil
}

// Quarantine moves an unreadable file aside so the next Write does not destroy it.
// It returns the path of the moved file.
func (f *File) Quarantine(ctx context.Context) (string, error) {
	if f.config.ReadOnly {
		return "", core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	target := fmt.Sprintf("%s.corrupt-%s", f.config.Path, time.Now().Format("20060102-150405"))
	if err := os.Rename(f.config.Path, target); err != nil {
		return "", fmt.Errorf("failed to move corrupt file aside: %w", err)
	}
	return target, nil
}

var _ core.Storage = (*File)(nil)
