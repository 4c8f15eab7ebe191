package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_FanOut(t *testing.T) {
	b := New()

	var first, second []Signal
	b.Subscribe(func(sig Signal) { first = append(first, sig) })
	b.Subscribe(func(sig Signal) { second = append(second, sig) })

	b.Publish(TasksChanged{ProjectID: "p1"})
	b.Publish(DailyRefresh{})

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Equal(t, TasksChanged{ProjectID: "p1"}, first[0])
	assert.Equal(t, DailyRefresh{}, first[1])
}

func TestBus_PublishIsSynchronous(t *testing.T) {
	b := New()

	delivered := false
	b.Subscribe(func(Signal) { delivered = true })

	b.Publish(BoardInvalidated{ProjectID: "p1", Change: "move"})
	assert.True(t, delivered, "handler must have run before Publish returns")
}

func TestBus_Cancel(t *testing.T) {
	b := New()

	var count int
	sub := b.Subscribe(func(Signal) { count++ })

	b.Publish(TasksChanged{ProjectID: "p1"})
	sub.Cancel()
	b.Publish(TasksChanged{ProjectID: "p1"})

	assert.Equal(t, 1, count, "canceled subscription must not receive signals")

	// Canceling twice is safe.
	sub.Cancel()
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	b := New()
	b.Publish(StoreChanged{Key: "tasks-p1"})
}

func TestBus_ProjectScopedFiltering(t *testing.T) {
	b := New()

	var mine []BoardInvalidated
	b.Subscribe(func(sig Signal) {
		if inv, ok := sig.(BoardInvalidated); ok && inv.ProjectID == "p1" {
			mine = append(mine, inv)
		}
	})

	b.Publish(BoardInvalidated{ProjectID: "p1", Change: "delete"})
	b.Publish(BoardInvalidated{ProjectID: "p2", Change: "add"})

	require.Len(t, mine, 1)
	assert.Equal(t, "delete", mine[0].Change)
}
