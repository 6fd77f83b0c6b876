package form

import (
	"errors"
	"strconv"
	"strings"
	"sync"
)

type State int

const (
	Closed State = iota
	OpenCreate
	OpenEdit
	Submitting
)

var (
	ErrNotOpen              = errors.New("form is not open")
	ErrDeleteNotConfirmed   = errors.New("delete requires confirmation")
	ErrNothingPendingDelete = errors.New("no delete pending confirmation")
)

// Config describes one entity type's form behavior.
type Config[T any] struct {
	// Defaults holds every editable field with its type default. OpenCreate
	// resets the form to these; OpenEdit falls back to them for any field
	// the entity is missing.
	Defaults map[string]any
	// ID extracts the entity id used for replace-by-id reconciliation.
	ID func(T) uint
	// AfterMutate, if set, runs with the new source after submit or delete.
	AfterMutate func(source []T)
}

// Controller manages the create/edit modal lifecycle for a single entity
// type and reconciles the source collection after each mutation. The source
// is the mutation target; any filtered view must be recomputed from it.
type Controller[T any] struct {
	mu sync.Mutex

	cfg    Config[T]
	state  State
	fields map[string]any

	editing   bool
	editingID uint

	pendingDelete *uint

	source []T
}

func NewController[T any](cfg Config[T]) *Controller[T] {
	return &Controller[T]{cfg: cfg, state: Closed}
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller[T]) Source() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source
}

func (c *Controller[T]) SetSource(rows []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.source = rows
}

func (c *Controller[T]) Field(name string) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields[name]
}

// OpenCreate resets every field to its type default.
func (c *Controller[T]) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = OpenCreate
	c.editing = false
	c.fields = make(map[string]any, len(c.cfg.Defaults))
	for name, def := range c.cfg.Defaults {
		c.fields[name] = def
	}
}

// OpenEdit copies every editable field from the entity snapshot, falling
// back to the type default for anything missing so no field is ever left
// unset.
func (c *Controller[T]) OpenEdit(id uint, entity map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = OpenEdit
	c.editing = true
	c.editingID = id
	c.fields = make(map[string]any, len(c.cfg.Defaults))
	for name, def := range c.cfg.Defaults {
		if v, ok := entity[name]; ok && v != nil {
			c.fields[name] = v
		} else {
			c.fields[name] = def
		}
	}
}

// UpdateField stores a field value, coercing numeric fields to int.
func (c *Controller[T]) UpdateField(name string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != OpenCreate && c.state != OpenEdit {
		return ErrNotOpen
	}
	c.fields[name] = CoerceValue(name, value)
	return nil
}

// Submit dispatches to create or update depending on how the form was
// opened. Success merges the result into the source (replace-by-id for
// edit, append for create) and closes the form; failure keeps the form
// open in its previous state so the user can retry or cancel.
func (c *Controller[T]) Submit(
	create func(fields map[string]any) (T, error),
	update func(id uint, fields map[string]any) (T, error),
) error {
	c.mu.Lock()
	if c.state != OpenCreate && c.state != OpenEdit {
		c.mu.Unlock()
		return ErrNotOpen
	}
	prev := c.state
	c.state = Submitting
	editing := c.editing
	id := c.editingID
	fields := make(map[string]any, len(c.fields))
	for k, v := range c.fields {
		fields[k] = v
	}
	c.mu.Unlock()

	var entity T
	var err error
	if editing {
		entity, err = update(id, fields)
	} else {
		entity, err = create(fields)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = prev
		return err
	}

	if editing && c.cfg.ID != nil {
		for i := range c.source {
			if c.cfg.ID(c.source[i]) == id {
				c.source[i] = entity
				break
			}
		}
	} else {
		c.source = append(c.source, entity)
	}
	c.state = Closed
	c.editing = false
	if c.cfg.AfterMutate != nil {
		c.cfg.AfterMutate(c.source)
	}
	return nil
}

// Cancel discards in-progress edits.
func (c *Controller[T]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Closed
	c.editing = false
	c.fields = nil
	c.pendingDelete = nil
}

// RequestDelete records the pending id; the delete only runs once
// ConfirmDelete is called with the same id.
func (c *Controller[T]) RequestDelete(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = &id
}

// ConfirmDelete calls del and, on success, removes exactly the matching
// entity from the source. On failure the source is left unchanged.
func (c *Controller[T]) ConfirmDelete(id uint, del func(uint) error) error {
	c.mu.Lock()
	if c.pendingDelete == nil {
		c.mu.Unlock()
		return ErrNothingPendingDelete
	}
	if *c.pendingDelete != id {
		c.mu.Unlock()
		return ErrDeleteNotConfirmed
	}
	c.pendingDelete = nil
	c.mu.Unlock()

	if err := del(id); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cfg.ID != nil {
		for i := range c.source {
			if c.cfg.ID(c.source[i]) == id {
				c.source = append(c.source[:i], c.source[i+1:]...)
				break
			}
		}
	}
	if c.cfg.AfterMutate != nil {
		c.cfg.AfterMutate(c.source)
	}
	return nil
}

// IsNumericField reports whether a field is stored as an integer: any
// field whose name contains "price", plus rating and total_reviews.
func IsNumericField(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "price") || lower == "rating" || lower == "total_reviews"
}

// CoerceValue parses numeric fields to int, defaulting to 0 when the
// value cannot be parsed. Non-numeric fields pass through unchanged.
func CoerceValue(name string, value any) any {
	if !IsNumericField(name) {
		return value
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
