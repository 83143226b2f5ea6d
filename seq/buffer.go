package seq

import (
	"fmt"
	"unsafe"

	"github.com/wippyai/fuzz-bridge/errors"
)

// Buffer is a width-tagged view over a contiguous run of fixed-width code
// units. Field order is part of the boundary ABI and must not change.
//
// Len counts elements, not bytes. Width must match the true element size
// used to allocate Data; it is set at construction and never re-derived.
type Buffer struct {
	// Owner, when non-nil, is a reference that keeps Data alive. For
	// Go-allocated buffers it pins the backing slice against collection.
	Owner any

	// Width tags the element size of Data.
	Width Width

	// Data points at the first element.
	Data unsafe.Pointer

	// Len is the element count.
	Len int

	// Release, when non-nil, frees Data. It must be invoked at most once;
	// Wrapper enforces this.
	Release func(*Buffer)
}

// View constructs a non-owning buffer over raw storage. Destroying a view
// does nothing to the underlying data.
func View(w Width, data unsafe.Pointer, n int) *Buffer {
	return &Buffer{Width: w, Data: data, Len: n}
}

// FromBytes wraps a byte slice as a buffer of the given width, pinning the
// slice via Owner. The byte length must be a multiple of the element size.
//
// For widths above u8 the slice must start at the natural alignment of the
// element type; freshly allocated slices satisfy this, arbitrary subslices
// may not.
func FromBytes(w Width, b []byte) (*Buffer, error) {
	if !w.Valid() {
		return nil, errors.InvalidWidth(errors.PhaseConvert, uint8(w))
	}
	size := w.Size()
	if len(b)%size != 0 {
		return nil, errors.InvalidInput(errors.PhaseConvert,
			fmt.Sprintf("byte length %d is not a multiple of element size %d", len(b), size))
	}
	return &Buffer{
		Owner: b,
		Width: w,
		Data:  unsafe.Pointer(unsafe.SliceData(b)),
		Len:   len(b) / size,
	}, nil
}

// typed reinterprets the buffer's data as a slice of Len elements of T.
// The caller must have matched T against the width tag.
func typed[T uint8 | uint16 | uint32 | uint64](b *Buffer) []T {
	if b.Len == 0 || b.Data == nil {
		return nil
	}
	return unsafe.Slice((*T)(b.Data), b.Len)
}
