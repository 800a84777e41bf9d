package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinitty/infinitty/internal/application/port"
)

type memoryStore struct {
	entries []LayoutEntry
}

func (m *memoryStore) SaveLayout(_ context.Context, entries []LayoutEntry) error {
	m.entries = entries
	return nil
}

func (m *memoryStore) LoadLayout(_ context.Context) ([]LayoutEntry, error) {
	return m.entries, nil
}

func TestSessionRestoreRevalidatesURLs(t *testing.T) {
	t.Parallel()

	store := &memoryStore{entries: []LayoutEntry{
		{ID: "ok", URL: "https://example.com", Geometry: port.Geometry{Width: 100, Height: 100}},
		// Persisted before the policy would have caught it, or the file
		// was edited by hand; either way it must not come back.
		{ID: "bad", URL: "http://192.168.1.1", Geometry: port.Geometry{Width: 100, Height: 100}},
	}}

	host := newFakeHost()
	surfaces := newService(host)
	session := NewSessionService(store, surfaces, zerolog.Nop())

	restored, err := session.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, restored)

	_, ok := surfaces.Record("ok")
	assert.True(t, ok)
	_, ok = surfaces.Record("bad")
	assert.False(t, ok)
}

func TestSessionSaveSnapshotsLayout(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	host := newFakeHost()
	surfaces := newService(host)
	session := NewSessionService(store, surfaces, zerolog.Nop())

	_, err := surfaces.Create(context.Background(), "p1", "https://example.com", port.Geometry{X: 10, Y: 20, Width: 300, Height: 200})
	require.NoError(t, err)

	require.NoError(t, session.Save(context.Background()))
	require.Len(t, store.entries, 1)
	assert.Equal(t, "p1", store.entries[0].ID)
	assert.Equal(t, 300.0, store.entries[0].Geometry.Width)
}
