package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/aide/pkg/core"
	"github.com/aretw0/aide/pkg/tasks"
)

// run executes the CLI in-process against dataDir and returns stdout.
func run(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--data-dir", dataDir, "--env-file", filepath.Join(dataDir, ".env")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag of the tree to its default and clears
// Changed, since both outlive a single Execute.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestCLI_TasksLifecycle(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "tasks", "add", "Buy milk", "--priority", tasks.PriorityHigh, "--due", "01-02-2024")
	require.NoError(t, err)
	assert.Contains(t, out, "Task #1 added.")

	_, err = run(t, dir, "tasks", "add", "Call Bob")
	require.NoError(t, err)

	_, err = run(t, dir, "tasks", "done", "1")
	require.NoError(t, err)

	out, err = run(t, dir, "tasks", "list", "--json")
	require.NoError(t, err)

	var listed []tasks.Task
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 2)
	assert.True(t, listed[0].Done)
	assert.Equal(t, tasks.PriorityMedium, listed[1].Priority)
	assert.Nil(t, listed[1].DueDate)

	_, err = run(t, dir, "tasks", "show", "9")
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = run(t, dir, "tasks", "add", "Bad", "--priority", "urgent")
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestCLI_FinanceReport(t *testing.T) {
	dir := t.TempDir()

	for _, args := range [][]string{
		{"finance", "add", "100", "salary", "01-01-2024"},
		{"finance", "add", "--", "-40", "food", "02-01-2024"},
		{"finance", "add", "--", "-10", "Food", "05-02-2024"},
	} {
		_, err := run(t, dir, args...)
		require.NoError(t, err)
	}

	out, err := run(t, dir, "finance", "report", "01-01-2024", "31-01-2024", "--json")
	require.NoError(t, err)

	var rep struct {
		Income   string `json:"income"`
		Expenses string `json:"expenses"`
		Balance  string `json:"balance"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "100", rep.Income)
	assert.Equal(t, "-40", rep.Expenses)
	assert.Equal(t, "60", rep.Balance)

	out, err = run(t, dir, "finance", "filter", "--category", "FOOD")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "#"))
}

func TestCLI_ImportGlob(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in", "nested")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in", "a.csv"), []byte("name,phone\nAnn,+1\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "b.csv"), []byte("name,phone,email\nBob,+2,bob@example.com\n"), 0644))

	out, err := run(t, dir, "contacts", "import", filepath.Join(dir, "in", "**", "*.csv"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Imported 1 contacts"))

	out, err = run(t, dir, "contacts", "search", "bob")
	require.NoError(t, err)
	assert.Contains(t, out, "bob@example.com")
	assert.NotContains(t, out, "Ann")

	_, err = run(t, dir, "contacts", "import", filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, core.ErrIO)
}

func TestCLI_Calc(t *testing.T) {
	out, err := run(t, t.TempDir(), "calc", "2", "+", "3", "x", "4")
	require.NoError(t, err)
	assert.Equal(t, "20\n", out)

	_, err = run(t, t.TempDir(), "calc", "1", "/", "0")
	assert.Error(t, err)
}

func showTask(t *testing.T, dir string, id string) tasks.Task {
	t.Helper()
	out, err := run(t, dir, "tasks", "show", id, "--json")
	require.NoError(t, err)
	var task tasks.Task
	require.NoError(t, json.Unmarshal([]byte(out), &task))
	return task
}

func TestCLI_TasksEdit(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "tasks", "add", "Buy milk", "-p", tasks.PriorityHigh, "--due", "01-01-2025", "-d", "whole")
	require.NoError(t, err)

	out, err := run(t, dir, "tasks", "edit", "1", "--description", "2% milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Task #1 updated.")

	task := showTask(t, dir, "1")
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2% milk", task.Description)
	assert.Equal(t, tasks.PriorityHigh, task.Priority)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "01-01-2025", *task.DueDate)

	// Only --due is given now; the earlier --description must not be replayed.
	_, err = run(t, dir, "tasks", "edit", "1", "--due=")
	require.NoError(t, err)

	task = showTask(t, dir, "1")
	assert.Nil(t, task.DueDate)
	assert.Equal(t, "2% milk", task.Description)
	assert.Equal(t, tasks.PriorityHigh, task.Priority)

	_, err = run(t, dir, "tasks", "edit", "1", "--priority", "urgent")
	assert.ErrorIs(t, err, core.ErrValidation)

	_, err = run(t, dir, "tasks", "edit", "7", "--title", "x")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestCLI_NotesEdit(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "notes", "add", "Идея", "первая версия")
	require.NoError(t, err)

	_, err = run(t, dir, "notes", "edit", "1", "--content", "вторая версия")
	require.NoError(t, err)

	// No flags: fields stay, only the timestamp is refreshed.
	_, err = run(t, dir, "notes", "edit", "1")
	require.NoError(t, err)

	out, err := run(t, dir, "notes", "show", "1", "--json")
	require.NoError(t, err)

	var note struct {
		Title     string `json:"title"`
		Content   string `json:"content"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &note))
	assert.Equal(t, "Идея", note.Title)
	assert.Equal(t, "вторая версия", note.Content)
	assert.NotEmpty(t, note.Timestamp)
}
