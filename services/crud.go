package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"hotel-console/models"
	"hotel-console/permissions"
	"hotel-console/storage"
	"hotel-console/validation"
)

var ErrAccessDenied = errors.New("access denied")

// ValidationError carries per-field messages back to the form.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Errors[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ListFilter narrows a list screen. Status and Type apply only to entities
// that have such a field; "all" or "" disables them.
type ListFilter struct {
	Query  string `form:"q"`
	Status string `form:"status"`
	Type   string `form:"type"`
}

func (f ListFilter) query() string {
	return strings.ToLower(strings.TrimSpace(f.Query))
}

func selected(want, have string) bool {
	want = strings.TrimSpace(want)
	return want == "" || strings.EqualFold(want, "all") || strings.EqualFold(want, have)
}

// contains reports whether any value holds q, case-insensitively. q must
// already be lower case.
func contains(q string, values ...string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

// Crud is the create/read/update/delete flow every management screen shares:
// authorize against the session, validate the submitted form, then write
// through the collection.
type Crud[T any, P storage.Entity[T]] struct {
	Items *storage.Collection[T, P]

	rules  map[string][]string
	parse  func(Form) (P, error)
	check  func(ctx context.Context, form Form, creating bool) map[string]string
	filter func(rec P, f ListFilter) bool
	log    *slog.Logger
}

func (c *Crud[T, P]) List(ctx context.Context, f ListFilter) []P {
	items := c.Items.All(ctx)
	if c.filter == nil {
		return items
	}
	out := make([]P, 0, len(items))
	for _, rec := range items {
		if c.filter(rec, f) {
			out = append(out, rec)
		}
	}
	return out
}

func (c *Crud[T, P]) Get(ctx context.Context, id string) (P, error) {
	return c.Items.Get(ctx, id)
}

func (c *Crud[T, P]) Create(ctx context.Context, sess *models.Session, form Form) (P, error) {
	if !permissions.CanCreate(sess) {
		return nil, ErrAccessDenied
	}
	rec, err := c.build(ctx, form, true)
	if err != nil {
		return nil, err
	}
	created, err := c.Items.Create(ctx, rec)
	if err != nil {
		return nil, c.wrap(err)
	}
	c.log.Info("record created", slog.String("entity", c.Items.Key()), slog.String("id", created.Meta().ID))
	return created, nil
}

func (c *Crud[T, P]) Update(ctx context.Context, sess *models.Session, id string, form Form) (P, error) {
	if !permissions.CanEdit(sess) {
		return nil, ErrAccessDenied
	}
	if _, err := c.Items.Get(ctx, id); err != nil {
		return nil, err
	}
	rec, err := c.build(ctx, form, false)
	if err != nil {
		return nil, err
	}
	fields, err := storage.ToFields(rec)
	if err != nil {
		return nil, err
	}
	delete(fields, "id")
	delete(fields, "createdAt")

	updated, err := c.Items.Update(ctx, id, fields)
	if err != nil {
		return nil, c.wrap(err)
	}
	c.log.Info("record updated", slog.String("entity", c.Items.Key()), slog.String("id", id))
	return updated, nil
}

func (c *Crud[T, P]) Delete(ctx context.Context, sess *models.Session, id string) error {
	if !permissions.CanDelete(sess) {
		return ErrAccessDenied
	}
	if err := c.Items.Delete(ctx, id); err != nil {
		return err
	}
	c.log.Info("record deleted", slog.String("entity", c.Items.Key()), slog.String("id", id))
	return nil
}

func (c *Crud[T, P]) build(ctx context.Context, form Form, creating bool) (P, error) {
	res := validation.ValidateForm(form, c.rules)
	if !res.IsValid {
		return nil, &ValidationError{Errors: res.Errors}
	}
	if c.check != nil {
		if errs := c.check(ctx, form, creating); len(errs) > 0 {
			return nil, &ValidationError{Errors: errs}
		}
	}
	return c.parse(form)
}

// wrap turns a record the model rejects into a form error.
func (c *Crud[T, P]) wrap(err error) error {
	if errors.Is(err, storage.ErrInvalidRecord) {
		return &ValidationError{Errors: map[string]string{"_": err.Error()}}
	}
	return fmt.Errorf("%s: %w", c.Items.Key(), err)
}
