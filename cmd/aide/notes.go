package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/aide/internal/platform"
	"github.com/aretw0/aide/pkg/notes"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add [title] [content]",
	Short: "Add a note stamped with the current time",
	Args:  cobra.ExactArgs(2),
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		note, err := ws.Notes.Add(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Note #%d added.\n", note.ID)
		return nil
	}),
}

var noteEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change the title or content of a note",
	Long:  `Edit replaces the given fields and refreshes the timestamp, even when no field is given.`,
	Args:  cobra.ExactArgs(1),
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		note, err := ws.Notes.Update(cmd.Context(), id, notes.Update{
			Title:   changed(cmd, "title"),
			Content: changed(cmd, "content"),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Note #%d updated.\n", note.ID)
		return nil
	}),
}

func renderNote(w io.Writer, n *notes.Note) {
	headerColor.Fprintf(w, "#%d %s", n.ID, n.Title)
	fmt.Fprintf(w, "  (%s)\n", n.Timestamp)
	if n.Content != "" {
		fmt.Fprintf(w, "    %s\n", n.Content)
	}
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.AddCommand(noteAddCmd, noteEditCmd)
	notesCmd.AddCommand(collectionCommands(func(ws *platform.Workspace) collection[*notes.Note] {
		return ws.Notes
	}, renderNote)...)

	noteEditCmd.Flags().String("title", "", "New title")
	noteEditCmd.Flags().String("content", "", "New content")
}
