// Package accounts persists user accounts in a JSON file keyed by username.
// The file shape is {"<username>": {"password": "<bcrypt hash>", "role": "<role>"}}.
package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// Account is the stored record for one username.
type Account struct {
	// PasswordHash carries the "password" key for compatibility with the
	// existing users.json files; it only ever holds a bcrypt hash.
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
}

// Store is the account lookup and mutation surface. Implementations must be
// safe for concurrent use by request handlers.
type Store interface {
	// Get returns the account for username, reporting whether it exists.
	Get(username string) (Account, bool)
	// Set stores the account under username and persists the full mapping.
	Set(username string, acct Account) error
}

// FileStore keeps the full account mapping in memory, guarded by a RWMutex,
// and rewrites the backing file on every mutation.
type FileStore struct {
	path string

	mu    sync.RWMutex
	users map[string]Account
}

var _ Store = (*FileStore)(nil)

// Open loads the account mapping from path. A missing file yields an empty
// store; any other read or decode failure is an error.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path, users: make(map[string]Account)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read accounts file: %w", err)
	}
	if err := json.Unmarshal(data, &s.users); err != nil {
		return nil, fmt.Errorf("decode accounts file %s: %w", path, err)
	}
	return s, nil
}

// Get returns the account for username.
func (s *FileStore) Get(username string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acct, ok := s.users[username]
	return acct, ok
}

// Set stores the account and persists the mapping while holding the write
// lock, so concurrent registrations cannot lose updates.
func (s *FileStore) Set(username string, acct Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[username] = acct
	if err := s.save(); err != nil {
		delete(s.users, username)
		return err
	}
	return nil
}

// save overwrites the backing file with the current mapping. Callers must
// hold the write lock.
func (s *FileStore) save() error {
	data, err := json.Marshal(s.users)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write accounts file: %w", err)
	}
	return nil
}
