package accounts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestOpen_MissingFileYieldsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	store, err := Open(path)
	require.NoError(t, err)

	_, ok := store.Get("anyone")
	assert.False(t, ok)
}

func TestSet_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	store, err := Open(path)
	require.NoError(t, err)

	acct := Account{PasswordHash: "$2a$10$fakehash", Role: "staff"}
	require.NoError(t, store.Set("alice", acct))

	reopened, err := Open(path)
	require.NoError(t, err)

	got, ok := reopened.Get("alice")
	require.True(t, ok)
	assert.Equal(t, acct, got)
}

func TestSet_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Set("bob", Account{PasswordHash: "h1", Role: "admin"}))
	require.NoError(t, store.Set("bob", Account{PasswordHash: "h2", Role: "staff"}))

	got, ok := store.Get("bob")
	require.True(t, ok)
	assert.Equal(t, "h2", got.PasswordHash)
	assert.Equal(t, "staff", got.Role)
}

func TestOpen_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	writeFile(t, path, "{not json")

	_, err := Open(path)
	assert.Error(t, err)
}

func TestSet_ConcurrentRegistrationsAllSurvive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	store, err := Open(path)
	require.NoError(t, err)

	done := make(chan struct{})
	names := []string{"u1", "u2", "u3", "u4", "u5"}
	for _, name := range names {
		go func(name string) {
			defer func() { done <- struct{}{} }()
			_ = store.Set(name, Account{PasswordHash: "h", Role: "staff"})
		}(name)
	}
	for range names {
		<-done
	}

	reopened, err := Open(path)
	require.NoError(t, err)
	for _, name := range names {
		_, ok := reopened.Get(name)
		assert.True(t, ok, "account %s lost", name)
	}
}
