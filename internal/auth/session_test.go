package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTempSessionStore(t *testing.T) *SessionStore {
	t.Helper()
	store, err := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return store
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := newTempSessionStore(t)

	session, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, session, "fresh store is signed out")

	want := &Session{
		AccessToken: "token-123",
		Email:       "avy@example.com",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}
	require.NoError(t, store.Save(want))

	session, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "token-123", session.AccessToken)
	assert.Equal(t, "avy@example.com", session.Email)

	require.NoError(t, store.Clear())
	session, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionStoreDropsExpiredSession(t *testing.T) {
	store := newTempSessionStore(t)

	expired := &Session{
		AccessToken: "stale",
		ExpiresAt:   time.Now().Add(-time.Minute).Unix(),
	}
	require.NoError(t, store.Save(expired))

	session, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, session, "expired sessions count as signed out")
}

func TestSessionStoreClearIsIdempotent(t *testing.T) {
	store := newTempSessionStore(t)
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}
