package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "charmss-admin")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "charmss-admin")
}

// FileStore persists the session as JSON in the user config directory, so a
// restart resumes the session without re-authenticating (until the next
// expiry check).
type FileStore struct {
	path string
}

// NewFileStore places the session file under the user config directory.
func NewFileStore() *FileStore {
	return &FileStore{path: filepath.Join(cfgDir(), "session.json")}
}

var _ Persister = (*FileStore)(nil)

func (f *FileStore) Save(st State) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, b, 0o600)
}

func (f *FileStore) Load() (State, bool, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, err
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return State{}, false, err
	}
	return st, true, nil
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
