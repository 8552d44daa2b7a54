package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"hotel-console/models"
	"hotel-console/validation"
)

var ErrInvalidRecord = errors.New("invalid record")

// Entity is satisfied by a pointer to any model stored in a collection.
type Entity[T any] interface {
	*T
	models.Record
}

// Collection is a typed view over one store collection. Records are
// normalized and checked before they are written, and decoded on the way
// out; a stored record that no longer decodes is skipped.
type Collection[T any, P Entity[T]] struct {
	store *Store
	key   string
}

func NewCollection[T any, P Entity[T]](store *Store, key string) *Collection[T, P] {
	return &Collection[T, P]{store: store, key: key}
}

func (c *Collection[T, P]) Key() string { return c.key }

func (c *Collection[T, P]) All(ctx context.Context) []P {
	rows := c.store.GetAll(ctx, c.key)
	out := make([]P, 0, len(rows))
	for _, row := range rows {
		rec, err := c.decode(row)
		if err != nil {
			c.store.log.Warn("skipping undecodable record",
				slog.String("entity", c.key),
				slog.String("id", row.ID()),
				slog.Any("error", err),
			)
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (c *Collection[T, P]) Get(ctx context.Context, id string) (P, error) {
	row, ok := c.store.GetByID(ctx, c.key, id)
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", c.key, id, ErrNotFound)
	}
	return c.decode(row)
}

func (c *Collection[T, P]) Count(ctx context.Context) int {
	return c.store.Count(ctx, c.key)
}

func (c *Collection[T, P]) Create(ctx context.Context, rec P) (P, error) {
	if err := c.check(rec); err != nil {
		return nil, err
	}
	fields, err := ToFields(rec)
	if err != nil {
		return nil, err
	}
	delete(fields, "id")
	delete(fields, "createdAt")

	stored, err := c.store.Create(ctx, c.key, fields)
	if err != nil {
		return nil, err
	}
	return c.decode(stored)
}

// Update overwrites the named fields of one record. Naming a field the
// model does not have is rejected so records keep their shape.
func (c *Collection[T, P]) Update(ctx context.Context, id string, partial Fields) (P, error) {
	known, err := c.fieldNames()
	if err != nil {
		return nil, err
	}
	var unknown []string
	for k := range partial {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%s: %w: %v", c.key, ErrUnknownField, unknown)
	}

	current, ok := c.store.GetByID(ctx, c.key, id)
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", c.key, id, ErrNotFound)
	}
	merged := current.clone()
	for k, v := range partial {
		merged[k] = v
	}
	next, err := c.decode(merged)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if err := c.check(next); err != nil {
		return nil, err
	}
	normalized, err := ToFields(next)
	if err != nil {
		return nil, err
	}
	changes := make(Fields, len(partial))
	for k := range partial {
		changes[k] = normalized[k]
	}

	stored, found, err := c.store.Update(ctx, c.key, id, changes)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s %q: %w", c.key, id, ErrNotFound)
	}
	return c.decode(stored)
}

// Save upserts a fully assembled record.
func (c *Collection[T, P]) Save(ctx context.Context, rec P) (P, error) {
	if err := c.check(rec); err != nil {
		return nil, err
	}
	fields, err := ToFields(rec)
	if err != nil {
		return nil, err
	}
	meta := rec.Meta()
	if meta.ID == "" {
		delete(fields, "id")
	}
	if meta.CreatedAt.IsZero() {
		delete(fields, "createdAt")
	}

	stored, err := c.store.Save(ctx, c.key, fields)
	if err != nil {
		return nil, err
	}
	return c.decode(stored)
}

func (c *Collection[T, P]) Delete(ctx context.Context, id string) error {
	_, err := c.store.Delete(ctx, c.key, id)
	return err
}

func (c *Collection[T, P]) check(rec P) error {
	rec.Normalize()
	if err := validation.Struct(rec); err != nil {
		return fmt.Errorf("%s: %w: %v", c.key, ErrInvalidRecord, err)
	}
	if v, ok := any(rec).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%s: %w: %v", c.key, ErrInvalidRecord, err)
		}
	}
	return nil
}

func (c *Collection[T, P]) decode(row Fields) (P, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return P(&rec), nil
}

func (c *Collection[T, P]) fieldNames() (map[string]bool, error) {
	fields, err := ToFields(P(new(T)))
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(fields))
	for k := range fields {
		names[k] = true
	}
	return names, nil
}

// ToFields converts a value into its stored shape. Numbers stay exact.
func ToFields(v any) (Fields, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out Fields
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
