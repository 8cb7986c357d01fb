package store

import (
	"encoding/json"
	"errors"
	"hash/fnv"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

// ErrBadKey is returned when a path component is not a safe file name.
var ErrBadKey = errors.New("invalid key component")

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Store is the flat-file document database. Every document is one JSON
// file under the data directory, read and rewritten wholesale. Writes
// go through a temp-file rename so readers never observe a partial
// file, and a striped mutex set serializes writers per path.
//
// There is no index and no cache: every lookup is a full read of the
// backing file. That is O(n) in the file size on every request, which
// is acceptable at the scale this portal runs at.
type Store struct {
	dir   string
	locks [64]sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Dir returns the root data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path resolves key components into a .json file path under the data
// directory. Every component must pass the key pattern, which rejects
// traversal sequences and separators.
func (s *Store) Path(parts ...string) (string, error) {
	if len(parts) == 0 {
		return "", ErrBadKey
	}
	resolved := s.dir
	for _, part := range parts {
		if !keyPattern.MatchString(part) {
			return "", ErrBadKey
		}
		resolved = filepath.Join(resolved, part)
	}
	return resolved + ".json", nil
}

func (s *Store) lock(path string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(path))
	return &s.locks[h.Sum32()%uint32(len(s.locks))]
}

// ReadJSON loads the document at the given key into out. It reports
// false with a nil error when no file exists yet.
func (s *Store) ReadJSON(out any, parts ...string) (bool, error) {
	path, err := s.Path(parts...)
	if err != nil {
		return false, err
	}
	mu := s.lock(path)
	mu.Lock()
	defer mu.Unlock()
	return s.readJSON(path, out)
}

// WriteJSON replaces the document at the given key, creating the
// containing directory when absent.
func (s *Store) WriteJSON(doc any, parts ...string) error {
	path, err := s.Path(parts...)
	if err != nil {
		return err
	}
	mu := s.lock(path)
	mu.Lock()
	defer mu.Unlock()
	return s.writeJSON(path, doc)
}

// UpdateJSON runs a read-modify-write cycle under the path lock, so
// concurrent updates to the same document cannot lose each other's
// changes. fn receives whatever load put into out; loaded reports
// whether a file existed.
func (s *Store) UpdateJSON(out any, fn func(loaded bool) error, parts ...string) error {
	path, err := s.Path(parts...)
	if err != nil {
		return err
	}
	mu := s.lock(path)
	mu.Lock()
	defer mu.Unlock()
	loaded, err := s.readJSON(path, out)
	if err != nil {
		return err
	}
	if err := fn(loaded); err != nil {
		return err
	}
	return s.writeJSON(path, out)
}

func (s *Store) readJSON(path string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) writeJSON(path string, doc any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}
