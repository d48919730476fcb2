package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmss/admin-client/internal/model"
)

func withTmpConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "charmss-admin")
}

func Test_cfgDir(t *testing.T) {
	base := withTmpConfig(t)
	if got := cfgDir(); got != base {
		t.Fatalf("cfgDir=%q, want %q", got, base)
	}
	fs := NewFileStore()
	if !strings.HasPrefix(fs.path, base) || !strings.HasSuffix(fs.path, "session.json") {
		t.Fatalf("session path unexpected: %s", fs.path)
	}
}

func TestFileStore_SaveLoadClear(t *testing.T) {
	base := withTmpConfig(t)
	fs := NewFileStore()

	if _, ok, err := fs.Load(); ok || err != nil {
		t.Fatalf("missing file should be (no state, no error), got ok=%v err=%v", ok, err)
	}

	want := State{
		Credential: "cred-1",
		User:       &model.User{Identity: model.Identity{ID: "u1", Email: "a@b.com"}},
		LoggedIn:   true,
	}
	if err := fs.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "session.json")); err != nil {
		t.Fatalf("session file missing: %v", err)
	}

	got, ok, err := fs.Load()
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if got.Credential != want.Credential || !got.LoggedIn || got.User == nil || got.User.Identity.ID != "u1" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}

	if err := fs.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := fs.Clear(); err != nil {
		t.Fatalf("Clear must be idempotent: %v", err)
	}
	if _, ok, _ := fs.Load(); ok {
		t.Fatalf("state must be gone after Clear")
	}
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	base := withTmpConfig(t)
	fs := NewFileStore()
	_ = os.MkdirAll(base, 0o700)
	_ = os.WriteFile(filepath.Join(base, "session.json"), []byte("{nope"), 0o600)

	if _, ok, err := fs.Load(); ok || err == nil {
		t.Fatalf("corrupt file should error, got ok=%v err=%v", ok, err)
	}
}
