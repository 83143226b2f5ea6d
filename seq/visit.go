package seq

import (
	"github.com/wippyai/fuzz-bridge/errors"
)

// Visitor receives the typed contents of one buffer. The four methods form
// a closed set matching the four recognized widths; implementing the
// interface forces a case for each, which is what keeps width dispatch
// exhaustive without a type switch at every call site.
type Visitor[R any] interface {
	U8(s []uint8) (R, error)
	U16(s []uint16) (R, error)
	U32(s []uint32) (R, error)
	U64(s []uint64) (R, error)
}

// Visit resolves b's width tag to a typed slice of exactly b.Len elements
// and invokes the matching visitor method. An unrecognized tag fails with
// an invalid-width error and the visitor is never invoked.
func Visit[R any](b *Buffer, v Visitor[R]) (R, error) {
	switch b.Width {
	case Width8:
		return v.U8(typed[uint8](b))
	case Width16:
		return v.U16(typed[uint16](b))
	case Width32:
		return v.U32(typed[uint32](b))
	case Width64:
		return v.U64(typed[uint64](b))
	default:
		var zero R
		return zero, errors.InvalidWidth(errors.PhaseDispatch, uint8(b.Width))
	}
}

// PairVisitor resolves two buffers in sequence: Visit2 fixes the second
// buffer's type first, then the returned Visitor fixes the first. Each
// width set stays linear (4+4 cases), never the full 16-pair product.
type PairVisitor[R any] interface {
	WithU8(second []uint8) Visitor[R]
	WithU16(second []uint16) Visitor[R]
	WithU32(second []uint32) Visitor[R]
	WithU64(second []uint64) Visitor[R]
}

// Visit2 dispatches second, then first, composing two single dispatches.
func Visit2[R any](first, second *Buffer, pv PairVisitor[R]) (R, error) {
	return Visit(second, pairOuter[R]{first: first, pv: pv})
}

type pairOuter[R any] struct {
	first *Buffer
	pv    PairVisitor[R]
}

func (o pairOuter[R]) U8(s []uint8) (R, error)   { return Visit(o.first, o.pv.WithU8(s)) }
func (o pairOuter[R]) U16(s []uint16) (R, error) { return Visit(o.first, o.pv.WithU16(s)) }
func (o pairOuter[R]) U32(s []uint32) (R, error) { return Visit(o.first, o.pv.WithU32(s)) }
func (o pairOuter[R]) U64(s []uint64) (R, error) { return Visit(o.first, o.pv.WithU64(s)) }
