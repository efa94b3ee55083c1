package main

import (
	"context"
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/aide/internal/platform"
	"github.com/aretw0/aide/pkg/core"
)

// collection is the part of a domain repository shared by the four collections.
type collection[T core.Entity] interface {
	Collection() string
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int) (T, error)
	Delete(ctx context.Context, id int) (int, error)
	Import(ctx context.Context, path string) (int, error)
	Export(ctx context.Context, path string) error
}

// collectionCommands builds the list, show, delete, import and export commands
// of one collection. render prints a single record in text mode.
func collectionCommands[T core.Entity](pick func(*platform.Workspace) collection[T], render func(io.Writer, T)) []*cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all records in stored order",
		Args:  cobra.NoArgs,
		RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
			items, err := pick(ws).List(cmd.Context())
			if err != nil {
				return err
			}
			return printRecords(cmd.OutOrStdout(), items, render)
		}),
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			item, err := pick(ws).FindByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), item)
			}
			render(cmd.OutOrStdout(), item)
			return nil
		}),
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete every record with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			removed, err := pick(ws).Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d record(s) with id %d.\n", removed, id)
			return nil
		}),
	}

	importCmd := &cobra.Command{
		Use:   "import [file or pattern]...",
		Short: "Append records from CSV, JSON or YAML files",
		Long: `Import appends one record per row, assigning new ids. The format follows
the file extension (.csv, .json, .yaml, .yml). Patterns such as 'exports/**/*.csv'
are expanded. On a bad row the rows read before it are kept.`,
		Args: cobra.MinimumNArgs(1),
		RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
			files, err := expandPatterns(args)
			if err != nil {
				return err
			}
			repo := pick(ws)
			for _, file := range files {
				n, err := repo.Import(cmd.Context(), file)
				if n > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Imported %d %s from %s.\n", n, repo.Collection(), file)
				}
				if err != nil {
					return err
				}
			}
			return nil
		}),
	}

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write all records to a CSV, JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
			repo := pick(ws)
			if err := repo.Export(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s.\n", repo.Collection(), args[0])
			return nil
		}),
	}

	return []*cobra.Command{listCmd, showCmd, deleteCmd, importCmd, exportCmd}
}

func printRecords[T any](w io.Writer, items []T, render func(io.Writer, T)) error {
	if jsonOutput {
		if items == nil {
			items = []T{}
		}
		return writeJSON(w, items)
	}
	if len(items) == 0 {
		fmt.Fprintln(w, "No records.")
		return nil
	}
	for _, item := range items {
		render(w, item)
	}
	return nil
}

// expandPatterns resolves glob patterns. A pattern without matches is kept as
// is so the import reports the missing file.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, core.Invalid("pattern", pattern, err)
		}
		if len(matches) == 0 {
			files = append(files, pattern)
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}
