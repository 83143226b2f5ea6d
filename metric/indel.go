package metric

import (
	"slices"

	"github.com/wippyai/fuzz-bridge/scorer"
	"github.com/wippyai/fuzz-bridge/seq"
)

// lcsLength computes the longest common subsequence length with a rolling
// two-row table.
func lcsLength[A, B CodeUnit](a []A, b []B) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if eq(a[i-1], b[j-1]) {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// IndelDistance is the minimum number of insertions and deletions needed
// to transform a into b.
func IndelDistance[A, B CodeUnit](a []A, b []B) int {
	return len(a) + len(b) - 2*lcsLength(a, b)
}

// IndelSimilarity is the normalized Indel similarity in [0, 1]. Two empty
// sequences are identical. Scores below cutoff are reported as 0.
func IndelSimilarity[A, B CodeUnit](a []A, b []B, cutoff float64) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return applyCutoff(1, cutoff)
	}
	sim := 1 - float64(IndelDistance(a, b))/float64(total)
	return applyCutoff(sim, cutoff)
}

type indelScorer[T CodeUnit] struct {
	prepared []T
}

func (s *indelScorer[T]) ScoreU8(q []uint8, c float64) (float64, error) {
	return IndelSimilarity(s.prepared, q, c), nil
}
func (s *indelScorer[T]) ScoreU16(q []uint16, c float64) (float64, error) {
	return IndelSimilarity(s.prepared, q, c), nil
}
func (s *indelScorer[T]) ScoreU32(q []uint32, c float64) (float64, error) {
	return IndelSimilarity(s.prepared, q, c), nil
}
func (s *indelScorer[T]) ScoreU64(q []uint64, c float64) (float64, error) {
	return IndelSimilarity(s.prepared, q, c), nil
}

type indelFactory struct{}

func (indelFactory) FromU8(s []uint8) (scorer.Scorer, error) {
	return &indelScorer[uint8]{prepared: slices.Clone(s)}, nil
}
func (indelFactory) FromU16(s []uint16) (scorer.Scorer, error) {
	return &indelScorer[uint16]{prepared: slices.Clone(s)}, nil
}
func (indelFactory) FromU32(s []uint32) (scorer.Scorer, error) {
	return &indelScorer[uint32]{prepared: slices.Clone(s)}, nil
}
func (indelFactory) FromU64(s []uint64) (scorer.Scorer, error) {
	return &indelScorer[uint64]{prepared: slices.Clone(s)}, nil
}

// NewIndel returns a factory for prepared Indel scorers.
func NewIndel() scorer.Factory {
	return indelFactory{}
}

// Ratio is the one-shot Indel similarity of two encoded buffers, resolved
// through the composed two-buffer dispatch.
func Ratio(a, b *seq.Buffer, cutoff float64) (float64, error) {
	return seq.Visit2(a, b, ratioPair{cutoff: cutoff})
}

type ratioPair struct {
	cutoff float64
}

func (p ratioPair) WithU8(s []uint8) seq.Visitor[float64] {
	return ratioQuery[uint8]{second: s, cutoff: p.cutoff}
}
func (p ratioPair) WithU16(s []uint16) seq.Visitor[float64] {
	return ratioQuery[uint16]{second: s, cutoff: p.cutoff}
}
func (p ratioPair) WithU32(s []uint32) seq.Visitor[float64] {
	return ratioQuery[uint32]{second: s, cutoff: p.cutoff}
}
func (p ratioPair) WithU64(s []uint64) seq.Visitor[float64] {
	return ratioQuery[uint64]{second: s, cutoff: p.cutoff}
}

type ratioQuery[B CodeUnit] struct {
	second []B
	cutoff float64
}

func (q ratioQuery[B]) U8(first []uint8) (float64, error) {
	return IndelSimilarity(first, q.second, q.cutoff), nil
}
func (q ratioQuery[B]) U16(first []uint16) (float64, error) {
	return IndelSimilarity(first, q.second, q.cutoff), nil
}
func (q ratioQuery[B]) U32(first []uint32) (float64, error) {
	return IndelSimilarity(first, q.second, q.cutoff), nil
}
func (q ratioQuery[B]) U64(first []uint64) (float64, error) {
	return IndelSimilarity(first, q.second, q.cutoff), nil
}
