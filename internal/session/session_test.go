package session_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"geotask/internal/session"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := session.NewStore(storePath(t))

	want := session.Session{
		Email:  "a@b.com",
		UserID: "user-1",
		Token:  "tok-abc",
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store := session.NewStore(storePath(t))

	_, err := store.Load()
	if !errors.Is(err, session.ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := storePath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write session file: %v", err)
	}

	_, err := session.NewStore(path).Load()
	if !errors.Is(err, session.ErrNoSession) {
		t.Errorf("expected ErrNoSession for corrupt file, got %v", err)
	}
}

func TestStore_LoadBlankToken(t *testing.T) {
	path := storePath(t)
	if err := os.WriteFile(path, []byte(`{"email":"a@b.com","userId":"u1","token":""}`), 0600); err != nil {
		t.Fatalf("failed to write session file: %v", err)
	}

	_, err := session.NewStore(path).Load()
	if !errors.Is(err, session.ErrNoSession) {
		t.Errorf("expected ErrNoSession for blank token, got %v", err)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := session.NewStore(storePath(t))

	first := session.Session{Email: "a@b.com", UserID: "u1", Token: "t1"}
	second := session.Session{Email: "c@d.com", UserID: "u2", Token: "t2"}

	if err := store.Save(first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != second {
		t.Errorf("expected %+v, got %+v", second, got)
	}
}

func TestStore_Clear(t *testing.T) {
	store := session.NewStore(storePath(t))

	if err := store.Save(session.Session{Email: "a@b.com", UserID: "u1", Token: "t1"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	_, err := store.Load()
	if !errors.Is(err, session.ErrNoSession) {
		t.Errorf("expected ErrNoSession after Clear, got %v", err)
	}
}

func TestStore_ClearMissing(t *testing.T) {
	store := session.NewStore(storePath(t))

	if err := store.Clear(); err != nil {
		t.Errorf("Clear on missing file should not error, got %v", err)
	}
}

func TestStore_FileMode(t *testing.T) {
	path := storePath(t)
	store := session.NewStore(path)

	if err := store.Save(session.Session{Email: "a@b.com", UserID: "u1", Token: "t1"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}
}
