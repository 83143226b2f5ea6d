package seq

// Retainer is an external owner whose reference count tracks how many
// wrappers depend on it. The host binding supplies the implementation;
// the engine only promises one Retain per wrapper and one Release when
// that wrapper dies.
type Retainer interface {
	Retain()
	Release()
}

// Wrapper is a move-only guard over one Buffer plus its owner reference.
// It guarantees the buffer's release callback fires at most once and the
// owner reference is released exactly once across the wrapper's lifetime,
// in that order, on every exit path.
//
// Wrapper values must not be copied: two wrappers aliasing the same buffer
// would hold independent release rights. Transfer ownership with Take or
// Adopt instead.
type Wrapper struct {
	buf   Buffer
	owner Retainer
}

// NewWrapper takes ownership of buf and retains owner (if any).
func NewWrapper(buf Buffer, owner Retainer) Wrapper {
	if owner != nil {
		owner.Retain()
	}
	return Wrapper{buf: buf, owner: owner}
}

// Buffer returns the wrapped buffer. The pointer stays valid until the
// wrapper is closed or moved from.
func (w *Wrapper) Buffer() *Buffer {
	return &w.buf
}

// Close releases the buffer and the owner reference, then resets the
// wrapper to the empty sentinel. Closing a moved-from or already closed
// wrapper is a no-op.
func (w *Wrapper) Close() {
	if w.buf.Release != nil {
		w.buf.Release(&w.buf)
	}
	if w.owner != nil {
		w.owner.Release()
	}
	w.buf = Buffer{}
	w.owner = nil
}

// Take moves the wrapper's state into a new wrapper and resets the source
// to the empty sentinel, so closing the source afterwards does nothing.
func (w *Wrapper) Take() Wrapper {
	moved := Wrapper{buf: w.buf, owner: w.owner}
	w.buf = Buffer{}
	w.owner = nil
	return moved
}

// Adopt releases any resources w currently holds, then moves src's state
// into w and resets src to the empty sentinel. Adopting from itself is a
// no-op.
func (w *Wrapper) Adopt(src *Wrapper) {
	if w == src {
		return
	}
	w.Close()
	w.buf = src.buf
	w.owner = src.owner
	src.buf = Buffer{}
	src.owner = nil
}
