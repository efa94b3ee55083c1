package main

import (
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/aide/internal/platform"
	"github.com/aretw0/aide/pkg/typed"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of every collection",
	Args:  cobra.NoArgs,
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		components := ws.Components()
		states := make([]any, 0, len(components))
		for _, c := range components {
			states = append(states, c.State())
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), states)
		}

		w := cmd.OutOrStdout()
		headerColor.Fprintf(w, "Data directory: %s\n", ws.Dir)
		for _, c := range components {
			state, ok := c.State().(typed.RepositoryState)
			if !ok {
				continue
			}
			kind := "component"
			if comp, ok := c.(introspection.Component); ok {
				kind = comp.ComponentType()
			}
			mode := "rw"
			if state.ReadOnly {
				mode = "ro"
			}
			fmt.Fprintf(w, "  %-9s %-10s %4d records  ids:%s  %s  %s\n",
				state.Collection, kind, state.Records, state.IDStrategy, mode, state.Path)
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
