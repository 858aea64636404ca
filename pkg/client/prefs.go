package client

import (
	"os"
	"path/filepath"
	"strconv"
)

const darkModeFile = "dark_mode"

// DarkMode reads the persisted dark-mode preference. Absent or unreadable
// means off.
func (s *SessionStore) DarkMode() bool {
	data, err := os.ReadFile(filepath.Join(s.dir, darkModeFile))
	if err != nil {
		return false
	}
	on, err := strconv.ParseBool(string(data))
	return err == nil && on
}

func (s *SessionStore) SetDarkMode(on bool) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, darkModeFile), []byte(strconv.FormatBool(on)), 0o600)
}
