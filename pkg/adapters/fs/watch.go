package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/aide/pkg/core"
)

// Watch observes dir and emits an event for every change of a collection file
// (a *.json file that is not an atomic-write temp file). The channel is closed
// when ctx is done.
//
// Saves replace the file through a rename, which most platforms report as a
// create of the collection file.
func Watch(ctx context.Context, dir string, logger *slog.Logger) (<-chan core.Event, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return nil
			case fe, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				e, ok := translateEvent(fe)
				if !ok {
					continue
				}
				logger.Debug("collection changed", "collection", e.Collection, "type", e.Type)
				select {
				case events <- e:
				case <-ctx.Done():
					return nil
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Warn("watcher error", "dir", dir, "error", err)
			}
		}
	})

	return events, nil
}

func translateEvent(fe fsnotify.Event) (core.Event, bool) {
	name := filepath.Base(fe.Name)
	if IsTempFile(name) || filepath.Ext(name) != ".json" {
		return core.Event{}, false
	}

	var typ core.EventType
	switch {
	case fe.Has(fsnotify.Remove), fe.Has(fsnotify.Rename):
		typ = core.EventDelete
	case fe.Has(fsnotify.Create):
		typ = core.EventCreate
	case fe.Has(fsnotify.Write):
		typ = core.EventModify
	default:
		return core.Event{}, false
	}

	return core.Event{
		Type:       typ,
		Collection: strings.TrimSuffix(name, ".json"),
		Timestamp:  time.Now().Unix(),
	}, true
}
