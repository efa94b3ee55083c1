package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/aide/pkg/adapters/lifecycle"
	"github.com/aretw0/aide/pkg/core"
)

func TestSource_ForwardsUntilInputCloses(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	in := make(chan core.Event, 2)
	in <- core.Event{Type: core.EventCreate, Collection: "tasks"}
	in <- core.Event{Type: core.EventDelete, Collection: "notes"}
	close(in)

	src := lifecycle.NewSource(in)
	require.NoError(t, src.Start(ctx))

	var got []string
	for e := range src.Events() {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{"CREATE tasks", "DELETE notes"}, got)
}

func TestSource_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	src := lifecycle.NewSource(make(chan core.Event))
	require.NoError(t, src.Start(ctx))
	cancel()

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("source did not close after cancel")
	}
}
