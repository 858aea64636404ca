package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const sessionFile = "session.json"

// Session is the persisted identity unit. Its absence means "logged out".
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

type SessionStore struct {
	dir string
}

// NewSessionStore places the store under the user config dir.
func NewSessionStore() (*SessionStore, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewSessionStoreAt(filepath.Join(base, "task-tracker")), nil
}

func NewSessionStoreAt(dir string) *SessionStore {
	return &SessionStore{dir: dir}
}

// Load returns the persisted session, or nil when none is stored.
func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionStore) Save(sess *Session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, sessionFile), data, 0o600)
}

// Clear removes the persisted session. Clearing an absent session is not an
// error.
func (s *SessionStore) Clear() error {
	err := os.Remove(filepath.Join(s.dir, sessionFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
