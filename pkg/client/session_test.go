package client

import "testing"

func TestSessionStore_LifeCycle(t *testing.T) {
	store := NewSessionStoreAt(t.TempDir())

	sess, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load empty store: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected no session, got %+v", sess)
	}

	saved := &Session{ID: "user-1", Name: "Alice", Token: "token-abc"}
	if err := store.Save(saved); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	if loaded == nil || *loaded != *saved {
		t.Errorf("expected %+v, got %+v", saved, loaded)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("failed to clear session: %v", err)
	}
	if sess, _ := store.Load(); sess != nil {
		t.Errorf("expected no session after clear, got %+v", sess)
	}

	// Logging out twice is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("clearing an absent session must not fail: %v", err)
	}
}

func TestSessionStore_DarkModePreference(t *testing.T) {
	store := NewSessionStoreAt(t.TempDir())

	if store.DarkMode() {
		t.Error("dark mode must default to off")
	}

	if err := store.SetDarkMode(true); err != nil {
		t.Fatalf("failed to set dark mode: %v", err)
	}
	if !store.DarkMode() {
		t.Error("expected dark mode on")
	}

	if err := store.SetDarkMode(false); err != nil {
		t.Fatalf("failed to unset dark mode: %v", err)
	}
	if store.DarkMode() {
		t.Error("expected dark mode off")
	}

	// The preference is independent of the session unit.
	if err := store.Save(&Session{ID: "user-1"}); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}
	if err := store.SetDarkMode(true); err != nil {
		t.Fatalf("failed to set dark mode: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("failed to clear session: %v", err)
	}
	if !store.DarkMode() {
		t.Error("clearing the session must not clear the dark-mode preference")
	}
}
