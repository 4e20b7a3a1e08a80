package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jfaraday/bookforge/internal/state"
)

// Store is the plan cache. Keys are section slugs; one entry is written
// at most once per run per key.
type Store interface {
	Exists(key string) bool
	Load(key string) (*SectionPlan, error)
	Save(key string, p *SectionPlan) error
}

// FileStore keeps one JSON file per section under a plans directory.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating plans dir %s: %w", dir, err)
	}
	return &FileStore{Dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

func (f *FileStore) Exists(key string) bool {
	_, err := os.Stat(f.path(key))
	return err == nil
}

func (f *FileStore) Load(key string) (*SectionPlan, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return nil, err
	}
	var p SectionPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("cached plan %s: %w", key, err)
	}
	return &p, nil
}

func (f *FileStore) Save(key string, p *SectionPlan) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return state.WriteFileAtomic(f.path(key), data, 0644)
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	Plans map[string]*SectionPlan
}

func NewMemStore() *MemStore {
	return &MemStore{Plans: make(map[string]*SectionPlan)}
}

func (m *MemStore) Exists(key string) bool {
	_, ok := m.Plans[key]
	return ok
}

func (m *MemStore) Load(key string) (*SectionPlan, error) {
	p, ok := m.Plans[key]
	if !ok {
		return nil, fmt.Errorf("no plan for key %s", key)
	}
	return p, nil
}

func (m *MemStore) Save(key string, p *SectionPlan) error {
	m.Plans[key] = p
	return nil
}
