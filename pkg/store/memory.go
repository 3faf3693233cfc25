package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/graphio"
)

// MemoryStore is an in-memory document store for development and tests.
// It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]graphio.Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]graphio.Document)}
}

func (s *MemoryStore) Create(ctx context.Context, doc *graphio.Document) (*graphio.Document, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	stored := *doc
	stored.ID = uuid.NewString()
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.mu.Lock()
	s.docs[stored.ID] = stored
	s.mu.Unlock()
	return &stored, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*graphio.Document, error) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "document %s not found", id)
	}
	return &doc, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, doc *graphio.Document) (*graphio.Document, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.docs[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "document %s not found", id)
	}

	stored := *doc
	stored.ID = id
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()
	s.docs[id] = stored
	return &stored, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return errors.New(errors.ErrCodeNotFound, "document %s not found", id)
	}
	delete(s.docs, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]graphio.Document, error) {
	s.mu.RLock()
	out := make([]graphio.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
