// SPDX-License-Identifier: MIT

// Package registry is a thread-safe store of named matrices plus a bounded
// log of the operations applied to them.
//
// Locking: muStore guards the name index, muHist guards the history; the
// two are never held together. seq is an atomic counter for Record.Seq.
// Stored matrices are cloned on the way in and on the way out, so callers
// never share cells with the registry.
package registry

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/katalvlaran/matrixgen/matrix"
)

var (
	// ErrNotFound indicates no matrix is stored under the name.
	ErrNotFound = errors.New("registry: matrix not found")

	// ErrInvalidName indicates a name that is empty, too long, or not an identifier.
	ErrInvalidName = errors.New("registry: invalid matrix name")
)

const maxNameLen = 64

// Option configures a Registry.
type Option func(*Registry)

// WithHistoryLimit keeps at most n history records (oldest dropped first).
// n == 0 keeps everything. Panics on negative n.
func WithHistoryLimit(n int) Option {
	if n < 0 {
		panic("registry: WithHistoryLimit: limit must be >= 0")
	}

	return func(r *Registry) { r.limit = n }
}

// WithClock overrides the time source used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// Registry maps names to matrices in lexical order.
type Registry struct {
	muStore sync.RWMutex // guards store
	store   *treemap.Map // string -> *matrix.Dense

	muHist  sync.RWMutex     // guards history
	history *arraylist.List  // Record, oldest first
	limit   int              // 0 = unbounded
	seq     atomic.Uint64    // Record.Seq generator
	now     func() time.Time // clock
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		store:   treemap.NewWithStringComparator(),
		history: arraylist.New(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ValidateName accepts identifiers: a letter or '_' followed by letters,
// digits or '_', at most 64 bytes.
func ValidateName(name string) error {
	if name == "" || len(name) > maxNameLen {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for i, c := range name {
		ok := c == '_' || unicode.IsLetter(c) || (i > 0 && unicode.IsDigit(c))
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}

	return nil
}

// Put stores a copy of m under name, replacing any previous matrix.
// It reports whether a previous matrix was replaced.
func (r *Registry) Put(name string, m *matrix.Dense) (replaced bool, err error) {
	if err = ValidateName(name); err != nil {
		return false, err
	}
	if err = matrix.ValidateNotNil(m); err != nil {
		return false, fmt.Errorf("registry: put %q: %w", name, err)
	}
	cp := m.Clone().(*matrix.Dense)

	r.muStore.Lock()
	defer r.muStore.Unlock()
	_, replaced = r.store.Get(name)
	r.store.Put(name, cp)

	return replaced, nil
}

// Get returns a copy of the matrix stored under name.
func (r *Registry) Get(name string) (*matrix.Dense, error) {
	r.muStore.RLock()
	v, ok := r.store.Get(name)
	r.muStore.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return v.(*matrix.Dense).Clone().(*matrix.Dense), nil
}

// Delete removes name from the registry.
func (r *Registry) Delete(name string) error {
	r.muStore.Lock()
	defer r.muStore.Unlock()
	if _, ok := r.store.Get(name); !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	r.store.Remove(name)

	return nil
}

// Entry describes one stored matrix.
type Entry struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

// List returns every entry in lexical name order.
func (r *Registry) List() []Entry {
	r.muStore.RLock()
	defer r.muStore.RUnlock()

	out := make([]Entry, 0, r.store.Size())
	it := r.store.Iterator()
	for it.Next() {
		m := it.Value().(*matrix.Dense)
		out = append(out, Entry{Name: it.Key().(string), Rows: m.Rows(), Cols: m.Cols()})
	}

	return out
}

// Len reports the number of stored matrices.
func (r *Registry) Len() int {
	r.muStore.RLock()
	defer r.muStore.RUnlock()

	return r.store.Size()
}
