package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/aide/pkg/typed"
)

// options holds the internal configuration of a workspace.
type options struct {
	logger     *slog.Logger
	idStrategy typed.IDStrategy
	readOnly   bool
	now        func() time.Time
	forceTemp  bool
	devSafety  bool
}

// Option defines a functional option for opening a workspace.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:     nil,
		idStrategy: typed.IDFromCount,
		now:        time.Now,
		devSafety:  true,
	}
}

// WithLogger sets the logger used by every repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithIDStrategy selects how new record ids are assigned.
// Defaults to typed.IDFromCount, which matches files written by earlier versions.
func WithIDStrategy(s typed.IDStrategy) Option {
	return func(o *options) {
		o.idStrategy = s
	}
}

// WithReadOnly enables read-only mode.
// In this mode every mutation fails with core.ErrReadOnly and corrupt files are left in place.
// The dev safety sandbox is bypassed since nothing can be written.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithClock overrides the time source used for note timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithForceTemp forces the use of a temporary data directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the sandbox used when running via `go run`.
// By default (true) a temporary data directory is used so development runs
// never touch real data.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}
