package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/lottiedoc/pkg/errors"
)

// FileStore keeps each snapshot as two files in a directory: <name>.xml with
// the document and <name>.meta.json with the remaining fields. The xml file
// is the golden itself, so it can be reviewed and committed like any other
// test fixture.
type FileStore struct {
	dir string
}

// NewFileStore creates a store in dir, creating the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the store directory.
func (s *FileStore) Dir() string { return s.dir }

const metaSuffix = ".meta.json"

func (s *FileStore) Put(ctx context.Context, snap *Snapshot) error {
	if err := ValidateName(snap.Name); err != nil {
		return err
	}
	meta, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.dataPath(snap.Name), snap.Data, 0o644); err != nil {
		return err
	}
	return os.WriteFile(s.metaPath(snap.Name), meta, 0o644)
}

func (s *FileStore) Get(ctx context.Context, name string) (*Snapshot, error) {
	snap, err := s.readMeta(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.dataPath(name))
	if err != nil {
		return nil, s.notFound(name, err)
	}
	snap.Data = data
	return snap, nil
}

func (s *FileStore) List(ctx context.Context) ([]*Snapshot, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var out []*Snapshot
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), metaSuffix)
		if !ok || e.IsDir() {
			continue
		}
		snap, err := s.readMeta(name)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := os.Remove(s.metaPath(name)); err != nil {
		return s.notFound(name, err)
	}
	if err := os.Remove(s.dataPath(name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) readMeta(name string) (*Snapshot, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.metaPath(name))
	if err != nil {
		return nil, s.notFound(name, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("snapshot %s: corrupt metadata: %w", name, err)
	}
	return &snap, nil
}

func (s *FileStore) notFound(name string, err error) error {
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeNotFound, err, "snapshot %s", name)
	}
	return err
}

func (s *FileStore) dataPath(name string) string { return filepath.Join(s.dir, name+".xml") }
func (s *FileStore) metaPath(name string) string { return filepath.Join(s.dir, name+metaSuffix) }

var _ Store = (*FileStore)(nil)
