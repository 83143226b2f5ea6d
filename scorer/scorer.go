package scorer

import (
	"github.com/wippyai/fuzz-bridge/seq"
)

// Scorer is a prepared algorithm instance: one sequence was fixed at
// construction time, queries arrive at any width. Scores below the cutoff
// are reported as 0.
type Scorer interface {
	ScoreU8(q []uint8, cutoff float64) (float64, error)
	ScoreU16(q []uint16, cutoff float64) (float64, error)
	ScoreU32(q []uint32, cutoff float64) (float64, error)
	ScoreU64(q []uint64, cutoff float64) (float64, error)
}

// Factory constructs a prepared Scorer from the typed contents of one
// sequence. Implementations must copy the slice if they keep it: the
// storage behind it may belong to the host and die after construction.
type Factory interface {
	FromU8(s []uint8) (Scorer, error)
	FromU16(s []uint16) (Scorer, error)
	FromU32(s []uint32) (Scorer, error)
	FromU64(s []uint64) (Scorer, error)
}

// Destroyer is optionally implemented by scorers that hold resources
// beyond Go memory. Context.Destroy invokes it exactly once.
type Destroyer interface {
	Destroy()
}

// factoryVisitor adapts a Factory to the buffer dispatch.
type factoryVisitor struct {
	f Factory
}

func (v factoryVisitor) U8(s []uint8) (Scorer, error)   { return v.f.FromU8(s) }
func (v factoryVisitor) U16(s []uint16) (Scorer, error) { return v.f.FromU16(s) }
func (v factoryVisitor) U32(s []uint32) (Scorer, error) { return v.f.FromU32(s) }
func (v factoryVisitor) U64(s []uint64) (Scorer, error) { return v.f.FromU64(s) }

// scoreVisitor adapts a prepared Scorer to the query dispatch.
type scoreVisitor struct {
	s      Scorer
	cutoff float64
}

func (v scoreVisitor) U8(q []uint8) (float64, error)   { return v.s.ScoreU8(q, v.cutoff) }
func (v scoreVisitor) U16(q []uint16) (float64, error) { return v.s.ScoreU16(q, v.cutoff) }
func (v scoreVisitor) U32(q []uint32) (float64, error) { return v.s.ScoreU32(q, v.cutoff) }
func (v scoreVisitor) U64(q []uint64) (float64, error) { return v.s.ScoreU64(q, v.cutoff) }

var _ seq.Visitor[Scorer] = factoryVisitor{}
var _ seq.Visitor[float64] = scoreVisitor{}
