// Package aide is the composition root of a personal productivity toolkit.
//
// It keeps four independent collections (notes, tasks, contacts and financial
// entries) as flat JSON documents in one data directory. Every collection is the
// same generic repository (pkg/typed) over a different entity, with CSV, JSON and
// YAML import/export.
//
// Layout:
//
//   - pkg/core: entity and storage contracts, errors, date layouts.
//   - pkg/adapters/fs: file storage with atomic writes, exchange serializers, watcher.
//   - pkg/typed: the generic write-through repository.
//   - pkg/notes, pkg/tasks, pkg/contacts, pkg/finance: entities and their operations.
//   - pkg/calc: decimal calculator.
//
// Usage:
//
//	ws, err := aide.Open(ctx, "./data", aide.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	task, err := ws.Tasks.Add(ctx, "Buy milk", "", "", "")
//
// Writes are synchronous: each mutation rewrites the collection file before
// returning. A repository is not safe for concurrent use.
package aide
