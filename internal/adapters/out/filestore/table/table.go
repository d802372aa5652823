// Package table keeps one record collection in memory and encodes it as a
// versioned CSV document.
package table

import (
	"errors"
	"fmt"

	"station/internal/pkg/errs"
)

// ErrNoTransaction is returned by repositories used outside a unit of work.
var ErrNoTransaction = errors.New("no active transaction")

// Record is a flat, value-typed row keyed by K.
type Record[K comparable] interface {
	Key() K
	Fields() []string
}

// Table is an insertion-ordered collection with exact-key lookup. It is not
// safe for concurrent use; the store serializes access.
type Table[K comparable, R Record[K]] struct {
	name  string
	rows  []R
	index map[K]int
}

func New[K comparable, R Record[K]](name string) *Table[K, R] {
	return &Table[K, R]{name: name, index: make(map[K]int)}
}

func (t *Table[K, R]) Name() string {
	return t.name
}

func (t *Table[K, R]) Len() int {
	return len(t.rows)
}

// Get returns the record stored under key.
func (t *Table[K, R]) Get(key K) (R, bool) {
	i, ok := t.index[key]
	if !ok {
		var zero R
		return zero, false
	}
	return t.rows[i], true
}

// Insert adds a record under a key not yet present.
func (t *Table[K, R]) Insert(r R) error {
	key := r.Key()
	if _, ok := t.index[key]; ok {
		return errs.NewValueIsInvalidErrorWithCause(t.name+" key", fmt.Errorf("%v already exists", key))
	}

	t.index[key] = len(t.rows)
	t.rows = append(t.rows, r)
	return nil
}

// Replace overwrites the record stored under r's key, keeping its position.
func (t *Table[K, R]) Replace(r R) error {
	i, ok := t.index[r.Key()]
	if !ok {
		return errs.NewObjectNotFoundError(t.name, r.Key())
	}

	t.rows[i] = r
	return nil
}

// All returns the records most recently inserted first.
func (t *Table[K, R]) All() []R {
	out := make([]R, len(t.rows))
	for i, r := range t.rows {
		out[len(t.rows)-1-i] = r
	}
	return out
}

// Clone copies the table. Records are values, so the copy shares nothing
// mutable with t.
func (t *Table[K, R]) Clone() *Table[K, R] {
	c := &Table[K, R]{
		name:  t.name,
		rows:  make([]R, len(t.rows)),
		index: make(map[K]int, len(t.index)),
	}
	copy(c.rows, t.rows)
	for k, v := range t.index {
		c.index[k] = v
	}
	return c
}
