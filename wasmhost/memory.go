package wasmhost

import (
	"math"

	"github.com/wippyai/fuzz-bridge/errors"
	"github.com/wippyai/fuzz-bridge/seq"
)

// guestMemory is the slice of wazero's api.Memory the host needs. Keeping
// it narrow lets tests drive the handlers with an in-process fake.
type guestMemory interface {
	Read(offset, byteCount uint32) ([]byte, bool)
	Write(offset uint32, v []byte) bool
	WriteFloat64Le(offset uint32, v float64) bool
}

// readSequence copies an encoded sequence out of guest linear memory and
// wraps it as a buffer. The copy is mandatory: linear memory may move when
// the guest grows it, and wazero's Read returns a view, not a copy.
func readSequence(mem guestMemory, ptr, n, width uint32) (*seq.Buffer, error) {
	// The tag arrives as a full u32; narrowing before validation would let
	// values like 257 alias a real width.
	w := seq.Width(width)
	if width > uint32(seq.Width64) || !w.Valid() {
		return nil, errors.New(errors.PhaseHost, errors.KindInvalidWidth).
			Detail("invalid width tag %d", width).Value(width).Build()
	}

	byteCount := uint64(n) * uint64(w.Size())
	if byteCount > math.MaxUint32 {
		return nil, errors.New(errors.PhaseHost, errors.KindOverflow).
			Detail("sequence of %d width-%d units exceeds guest address space", n, w.Size()).
			Build()
	}

	view, ok := mem.Read(ptr, uint32(byteCount))
	if !ok {
		return nil, errors.New(errors.PhaseHost, errors.KindOutOfBounds).
			Detail("guest range [%d, %d) is outside linear memory", ptr, uint64(ptr)+byteCount).
			Build()
	}

	copied := make([]byte, len(view))
	copy(copied, view)
	return seq.FromBytes(w, copied)
}
