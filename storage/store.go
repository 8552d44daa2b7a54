package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InitializedKey marks a backend whose sample data has already been written.
const InitializedKey = "initialized"

var (
	ErrNotFound     = errors.New("record not found")
	ErrUnknownField = errors.New("unknown field")
)

// Fields is one record in its stored shape.
type Fields map[string]any

func (f Fields) ID() string {
	id, _ := f["id"].(string)
	return id
}

func (f Fields) clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Store persists keyed collections of records into a Backend. Every mutation
// rewrites the whole collection. Within one process mutations are serialized;
// processes sharing a backend get last-write-wins.
type Store struct {
	backend Backend
	log     *slog.Logger

	mu    sync.Mutex
	newID func() string
	now   func() time.Time
}

func NewStore(backend Backend, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		backend: backend,
		log:     log,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

// load reads a collection. Unreadable contents count as empty; only backend
// failures are reported.
func (s *Store) load(ctx context.Context, entity string) ([]Fields, error) {
	raw, ok, err := s.backend.GetItem(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", entity, err)
	}
	if !ok || len(bytes.TrimSpace(raw)) == 0 {
		return []Fields{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var items []Fields
	if err := dec.Decode(&items); err != nil {
		s.log.Error("corrupt collection, treating as empty",
			slog.String("entity", entity),
			slog.Any("error", err),
		)
		return []Fields{}, nil
	}
	out := items[:0]
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *Store) persist(ctx context.Context, entity string, items []Fields) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", entity, err)
	}
	if err := s.backend.SetItem(ctx, entity, raw); err != nil {
		return fmt.Errorf("write %s: %w", entity, err)
	}
	return nil
}

// GetAll returns every record of entity in insertion order. It never fails:
// a missing, corrupt or unreachable collection reads as empty.
func (s *Store) GetAll(ctx context.Context, entity string) []Fields {
	items, err := s.load(ctx, entity)
	if err != nil {
		s.log.Error("load collection", slog.String("entity", entity), slog.Any("error", err))
		return []Fields{}
	}
	return items
}

func (s *Store) GetByID(ctx context.Context, entity, id string) (Fields, bool) {
	for _, item := range s.GetAll(ctx, entity) {
		if item.ID() == id {
			return item, true
		}
	}
	return nil, false
}

func (s *Store) Count(ctx context.Context, entity string) int {
	return len(s.GetAll(ctx, entity))
}

// Create stores fields as a new record with a fresh id and creation time.
// Any id or createdAt in fields is overwritten.
func (s *Store) Create(ctx context.Context, entity string, fields Fields) (Fields, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, entity)
	if err != nil {
		return nil, err
	}
	rec := fields.clone()
	rec["id"] = s.newID()
	rec["createdAt"] = s.timestamp()
	items = append(items, rec)
	if err := s.persist(ctx, entity, items); err != nil {
		return nil, err
	}
	return rec.clone(), nil
}

// Update shallow-merges partial into the record with the given id. It
// reports false and writes nothing when the id is unknown. id and createdAt
// are never overwritten.
func (s *Store) Update(ctx context.Context, entity, id string, partial Fields) (Fields, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, entity)
	if err != nil {
		return nil, false, err
	}
	for i, item := range items {
		if item.ID() != id {
			continue
		}
		merged := item.clone()
		for k, v := range partial {
			if k == "id" || k == "createdAt" {
				continue
			}
			merged[k] = v
		}
		items[i] = merged
		if err := s.persist(ctx, entity, items); err != nil {
			return nil, false, err
		}
		return merged.clone(), true, nil
	}
	return nil, false, nil
}

// Save upserts rec by id: an existing record is merged in place, anything
// else is appended, with id and createdAt generated when missing.
func (s *Store) Save(ctx context.Context, entity string, rec Fields) (Fields, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, entity)
	if err != nil {
		return nil, err
	}

	id := rec.ID()
	var saved Fields
	for i, item := range items {
		if id == "" || item.ID() != id {
			continue
		}
		merged := item.clone()
		for k, v := range rec {
			if k == "createdAt" {
				continue
			}
			merged[k] = v
		}
		items[i] = merged
		saved = merged
		break
	}
	if saved == nil {
		saved = rec.clone()
		if id == "" {
			saved["id"] = s.newID()
		}
		if created, _ := saved["createdAt"].(string); created == "" {
			saved["createdAt"] = s.timestamp()
		}
		items = append(items, saved)
	}

	if err := s.persist(ctx, entity, items); err != nil {
		return nil, err
	}
	return saved.clone(), nil
}

// Delete removes the record with the given id. Deleting an id that does not
// exist is not an error; dependents are left untouched.
func (s *Store) Delete(ctx context.Context, entity, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, entity)
	if err != nil {
		return false, err
	}
	kept := make([]Fields, 0, len(items))
	for _, item := range items {
		if item.ID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return true, nil
	}
	if err := s.persist(ctx, entity, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Initialize writes seed once per backend, guarded by InitializedKey.
// It reports whether anything was written.
func (s *Store) Initialize(ctx context.Context, seed map[string][]Fields) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, done, err := s.backend.GetItem(ctx, InitializedKey)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", InitializedKey, err)
	}
	if done {
		return false, nil
	}

	for entity, items := range seed {
		if items == nil {
			items = []Fields{}
		}
		if err := s.persist(ctx, entity, items); err != nil {
			return false, err
		}
		s.log.Info("collection seeded", slog.String("entity", entity), slog.Int("records", len(items)))
	}
	if err := s.backend.SetItem(ctx, InitializedKey, []byte("true")); err != nil {
		return false, fmt.Errorf("write %s: %w", InitializedKey, err)
	}
	return true, nil
}
