package snapshot

import (
	"os"
	"time"

	"github.com/pkg/errors"

	"golife/internal/life"
)

// FileStore reads and writes state file bytes.
type FileStore interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// DiskStore is the OS-backed FileStore.
type DiskStore struct{}

func (DiskStore) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (DiskStore) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// PathPicker resolves where to save or load a state file. An empty path means
// the user cancelled, which is a no-op rather than an error.
type PathPicker interface {
	SavePath() (string, error)
	OpenPath() (string, error)
}

// FixedPath is a PathPicker that always answers with a preconfigured path.
// An empty value behaves as a cancelled dialog.
type FixedPath string

func (p FixedPath) SavePath() (string, error) { return string(p), nil }
func (p FixedPath) OpenPath() (string, error) { return string(p), nil }

// Save writes the board's state file to the picked path. A cancelled pick
// saves nothing and reports no error.
func Save(store FileStore, picker PathPicker, b *life.Board) error {
	path, err := picker.SavePath()
	if err != nil {
		return errors.Wrap(err, "snapshot: pick save path")
	}
	if path == "" {
		return nil
	}
	data, err := Marshal(b)
	if err != nil {
		return err
	}
	if err := store.WriteFile(path, data); err != nil {
		return errors.Wrapf(err, "snapshot: write %s", path)
	}
	return nil
}

// Load reads and decodes a state file from the picked path, returning a fresh
// paused board. A cancelled pick returns (nil, nil): no snapshot produced.
func Load(store FileStore, picker PathPicker, period time.Duration) (*life.Board, error) {
	path, err := picker.OpenPath()
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: pick open path")
	}
	if path == "" {
		return nil, nil
	}
	data, err := store.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "snapshot: read %s", path)
	}
	return Decode(data, period)
}
