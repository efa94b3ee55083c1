package typed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/aide/pkg/adapters/fs"
	"github.com/aretw0/aide/pkg/core"
)

// ImportCSV appends every row of the CSV file at path as a new record.
func (r *Repository[T]) ImportCSV(ctx context.Context, path string) (int, error) {
	return r.importWith(ctx, path, fs.NewCSVSerializer())
}

// ExportCSV writes the collection to path as CSV.
func (r *Repository[T]) ExportCSV(ctx context.Context, path string) error {
	return r.exportWith(ctx, path, fs.NewCSVSerializer())
}

// Import appends the records of path, picking the format from its extension
// (.csv, .json, .yaml or .yml).
func (r *Repository[T]) Import(ctx context.Context, path string) (int, error) {
	s, err := fs.SerializerFor(path)
	if err != nil {
		return 0, err
	}
	return r.importWith(ctx, path, s)
}

// Export writes the collection to path, picking the format from its extension.
func (r *Repository[T]) Export(ctx context.Context, path string) error {
	s, err := fs.SerializerFor(path)
	if err != nil {
		return err
	}
	return r.exportWith(ctx, path, s)
}

// importWith assigns ids row by row exactly like Create. A bad row stops the
// import: rows appended before it are kept and persisted, and the error is returned.
func (r *Repository[T]) importWith(ctx context.Context, path string, s fs.Serializer) (int, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrIO, err)
	}
	defer f.Close()

	table, decodeErr := s.Decode(f)
	if table == nil {
		return 0, fmt.Errorf("import %s: %w", path, decodeErr)
	}

	var missing []string
	for _, col := range r.codec.Required() {
		if !table.Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("import %s: %w", path,
			core.Invalid("header", strings.Join(table.Columns, ","), fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))))
	}

	var rowErr error
	imported := 0
	for i := range table.Rows {
		item, err := r.codec.Parse(table.Record(i))
		if err != nil {
			// Row 1 is the header.
			rowErr = fmt.Errorf("import %s: row %d: %w", path, i+2, err)
			break
		}
		item.SetID(r.nextID())
		r.items = append(r.items, item)
		imported++
	}

	if imported > 0 {
		if err := r.Save(ctx); err != nil {
			return imported, err
		}
	}
	r.logger.Debug("records imported", "path", path, "count", imported)

	if rowErr != nil {
		return imported, rowErr
	}
	if decodeErr != nil {
		return imported, fmt.Errorf("import %s: %w", path, decodeErr)
	}
	return imported, nil
}

func (r *Repository[T]) exportWith(ctx context.Context, path string, s fs.Serializer) error {
	items, err := r.List(ctx)
	if err != nil {
		return err
	}

	table := &fs.Table{Columns: r.codec.Columns()}
	for _, item := range items {
		table.Rows = append(table.Rows, r.codec.Row(item))
	}

	data, err := s.Encode(table)
	if err != nil {
		return fmt.Errorf("export %s: %w", r.Collection(), err)
	}
	if err := fs.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", core.ErrIO, err)
	}
	r.logger.Debug("records exported", "path", path, "count", len(items))
	return nil
}
