package wasmhost

import (
	"errors"
	"sync"

	"github.com/wippyai/fuzz-bridge/scorer"
)

// ErrTableClosed is returned when inserting into a closed table.
var ErrTableClosed = errors.New("scorer table closed")

// Handle is an opaque guest-visible reference to a scorer context.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Table maps handles to live scorer contexts. Freed handles are recycled
// through a free list, so handle values stay small for long-lived guests.
type Table struct {
	entries  []tableEntry
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type tableEntry struct {
	ctx   *scorer.Context
	valid bool
}

// NewTable creates an empty scorer table.
func NewTable() *Table {
	return &Table{
		entries:  make([]tableEntry, 0, 16),
		freeList: make([]Handle, 0, 4),
	}
}

// Insert stores a context and returns its handle.
func (t *Table) Insert(c *scorer.Context) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, ErrTableClosed
	}

	e := tableEntry{ctx: c, valid: true}

	if len(t.freeList) > 0 {
		handle := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[handle-1] = e
		return handle, nil
	}

	t.entries = append(t.entries, e)
	return Handle(len(t.entries)), nil
}

// Get retrieves a context by handle.
func (t *Table) Get(handle Handle) (*scorer.Context, bool) {
	if handle == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(t.entries) {
		return nil, false
	}

	e := t.entries[idx]
	if !e.valid {
		return nil, false
	}
	return e.ctx, true
}

// Remove takes a context out of the table. The caller owns the returned
// context and is responsible for destroying it.
func (t *Table) Remove(handle Handle) (*scorer.Context, bool) {
	if handle == 0 {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := handle - 1
	if int(idx) >= len(t.entries) {
		return nil, false
	}

	e := &t.entries[idx]
	if !e.valid {
		return nil, false
	}

	ctx := e.ctx
	e.valid = false
	e.ctx = nil
	t.freeList = append(t.freeList, handle)

	return ctx, true
}

// Len returns the number of live contexts.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Close destroys every remaining context and stops accepting inserts.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	for i := range t.entries {
		if t.entries[i].valid {
			t.entries[i].ctx.Destroy()
			t.entries[i].valid = false
			t.entries[i].ctx = nil
		}
	}

	t.entries = nil
	t.freeList = nil
	return nil
}
