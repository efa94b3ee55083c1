package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aretw0/aide/internal/platform"
	"github.com/aretw0/aide/pkg/core"
)

var (
	incomeColor  = color.New(color.FgGreen)
	expenseColor = color.New(color.FgRed)
	doneColor    = color.New(color.FgGreen)
	pendingColor = color.New(color.FgYellow)
	headerColor  = color.New(color.Bold)
)

// openWorkspace opens the data directory selected by flags, environment and config file.
func openWorkspace(ctx context.Context) (*platform.Workspace, error) {
	opts := append(cfg.Options(), platform.WithLogger(logger))
	ws, err := platform.Open(ctx, cfg.DataDir, opts...)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DataDir, err)
	}
	logger.Debug("workspace opened", "dir", ws.Dir)
	return ws, nil
}

// withWorkspace adapts a handler that needs an open workspace to cobra's RunE.
func withWorkspace(fn func(cmd *cobra.Command, ws *platform.Workspace, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(cmd.Context())
		if err != nil {
			return err
		}
		return fn(cmd, ws, args)
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, core.Invalid("id", s, err)
	}
	return id, nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// changed returns a pointer to the flag value when the flag was given on the
// command line, nil otherwise. An explicitly empty value is kept.
func changed(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetString(name)
	return &value
}
