// Package memstore provides the ordered, process-lifetime collections that
// back every clinic repository. Records live only as long as the process;
// there is no persistence layer behind a Collection.
package memstore

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Common errors returned by collections.
var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("record id already exists")
	ErrEmptyID     = errors.New("record id is empty")
)

// maxIDAttempts bounds id regeneration when an IDFunc keeps colliding.
const maxIDAttempts = 16

// IDFunc generates a candidate identifier for a new record.
type IDFunc func() string

type options struct {
	newID IDFunc
}

// Option configures a Collection.
type Option func(*options)

// WithIDFunc overrides the default uuid-based id generator.
func WithIDFunc(fn IDFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// Collection is an insertion-ordered set of records keyed by id.
// Reads return copies; callers never hold references into the collection.
type Collection[T any] struct {
	mu     sync.RWMutex
	name   string
	items  []T
	index  map[string]int
	issued map[string]struct{}
	getID  func(T) string
	setID  func(*T, string)
	newID  IDFunc
}

// NewCollection creates an empty collection. getID and setID expose the
// record's identifier field to the collection.
func NewCollection[T any](name string, getID func(T) string, setID func(*T, string), opts ...Option) *Collection[T] {
	o := options{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	return &Collection[T]{
		name:   name,
		index:  make(map[string]int),
		issued: make(map[string]struct{}),
		getID:  getID,
		setID:  setID,
		newID:  o.newID,
	}
}

// Add assigns a fresh id to rec, appends it and returns the stored copy.
// Ids are never reissued, including ids of records that were removed.
func (c *Collection[T]) Add(rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	id, err := c.nextIDLocked()
	if err != nil {
		return zero, err
	}
	c.setID(&rec, id)
	c.appendLocked(id, rec)
	return rec, nil
}

// Insert appends rec under its existing id. It is used to load fixed
// datasets whose identifiers are known in advance.
func (c *Collection[T]) Insert(rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.getID(rec)
	if id == "" {
		return fmt.Errorf("%s: %w", c.name, ErrEmptyID)
	}
	if _, ok := c.issued[id]; ok {
		return fmt.Errorf("%s %q: %w", c.name, id, ErrDuplicateID)
	}
	c.appendLocked(id, rec)
	return nil
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// List returns a snapshot of every record in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Update applies fn to a copy of the record with the given id and stores the
// result in place if fn succeeds. The id field is restored after fn runs, so
// it cannot be changed through an update.
func (c *Collection[T]) Update(id string, fn func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i, ok := c.index[id]
	if !ok {
		return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}
	rec := c.items[i]
	if err := fn(&rec); err != nil {
		return zero, err
	}
	c.setID(&rec, id)
	c.items[i] = rec
	return rec, nil
}

// Remove deletes the record with the given id, keeping the order of the rest.
func (c *Collection[T]) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.getID(c.items[j])] = j
	}
	return nil
}

func (c *Collection[T]) appendLocked(id string, rec T) {
	c.index[id] = len(c.items)
	c.issued[id] = struct{}{}
	c.items = append(c.items, rec)
}

func (c *Collection[T]) nextIDLocked() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := c.newID()
		if id == "" {
			continue
		}
		if _, taken := c.issued[id]; !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("%s: could not generate a unique id after %d attempts", c.name, maxIDAttempts)
}
