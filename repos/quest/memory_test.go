package quest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSaveAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Save(ctx, EventConfiguration{ID: "evt-1", Name: "Forest dash", OwnerID: "u1"})
	require.Nil(t, err)

	event, err := store.Get(ctx, "evt-1")
	require.Nil(t, err)
	assert.Equal(t, "Forest dash", event.Name)

	_, err = store.Get(ctx, "missing")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemoryStoreGetAllVisibility(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Save(ctx, EventConfiguration{ID: "pub", OwnerID: "u1", IsPublic: true})
	store.Save(ctx, EventConfiguration{ID: "priv", OwnerID: "u1", IsPublic: false})
	store.Save(ctx, EventConfiguration{ID: "other", OwnerID: "u2", IsPublic: false})

	public, err := store.GetAll(ctx, "", false)
	require.Nil(t, err)
	assert.Len(t, public, 1)
	assert.Equal(t, "pub", public[0].ID)

	ownedPublic, err := store.GetAll(ctx, "u1", false)
	require.Nil(t, err)
	assert.Len(t, ownedPublic, 1, "the owner filter alone never admits private events")
	assert.Equal(t, "pub", ownedPublic[0].ID)

	owned, err := store.GetAll(ctx, "u1", true)
	require.Nil(t, err)
	assert.Len(t, owned, 2)

	all, err := store.GetAll(ctx, "", true)
	require.Nil(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryStoreAppendResultUnionsParticipant(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Save(ctx, EventConfiguration{ID: "evt-1"})

	require.Nil(t, store.AppendResult(ctx, "evt-1", Result{ParticipantID: "p1", Points: 120}))
	require.Nil(t, store.AppendResult(ctx, "evt-1", Result{ParticipantID: "p1", Points: 90}))
	require.Nil(t, store.AppendResult(ctx, "evt-1", Result{ParticipantID: "p2", Points: 60}))

	event, err := store.Get(ctx, "evt-1")
	require.Nil(t, err)
	assert.Len(t, event.Results, 3)
	assert.Equal(t, []string{"p1", "p2"}, event.ParticipantIDs, "participant ids are a set")
}

func TestMemoryStoreAppendResultMissingEvent(t *testing.T) {
	store := NewMemoryStore()

	err := store.AppendResult(context.Background(), "missing", Result{ParticipantID: "p1"})
	assert.Equal(t, ErrNotFound, err)
}

func TestMemoryStoreGetParticipated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Save(ctx, EventConfiguration{ID: "evt-1", ParticipantIDs: []string{"p1", "p2"}})
	store.Save(ctx, EventConfiguration{ID: "evt-2", ParticipantIDs: []string{"p2"}})

	events, err := store.GetParticipated(ctx, "p1")
	require.Nil(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "evt-1", events[0].ID)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Save(ctx, EventConfiguration{ID: "evt-1", Checkpoints: []Checkpoint{{ID: "cp1", Name: "Alfa"}}})

	event, _ := store.Get(ctx, "evt-1")
	event.Checkpoints[0].Name = "mutated"

	again, _ := store.Get(ctx, "evt-1")
	assert.Equal(t, "Alfa", again.Checkpoints[0].Name)
}

func TestMemoryStoreSystemConfig(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.GetSystemConfig(ctx)
	assert.Equal(t, ErrNotFound, err)

	require.Nil(t, store.SaveSystemConfig(ctx, SystemConfig{SeasonalMode: "winter", SignupsOpen: true}))

	config, err := store.GetSystemConfig(ctx)
	require.Nil(t, err)
	assert.Equal(t, "winter", config.SeasonalMode)
	assert.True(t, config.SignupsOpen)
}
