package metric

import (
	"slices"

	"github.com/wippyai/fuzz-bridge/scorer"
)

// LevenshteinDistance is the uniform-weight edit distance between a and b,
// computed with a rolling two-row table.
func LevenshteinDistance[A, B CodeUnit](a []A, b []B) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if eq(a[i-1], b[j-1]) {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// LevenshteinSimilarity is the normalized Levenshtein similarity in [0, 1].
// Scores below cutoff are reported as 0.
func LevenshteinSimilarity[A, B CodeUnit](a []A, b []B, cutoff float64) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return applyCutoff(1, cutoff)
	}
	sim := 1 - float64(LevenshteinDistance(a, b))/float64(longest)
	return applyCutoff(sim, cutoff)
}

type levScorer[T CodeUnit] struct {
	prepared []T
}

func (s *levScorer[T]) ScoreU8(q []uint8, c float64) (float64, error) {
	return LevenshteinSimilarity(s.prepared, q, c), nil
}
func (s *levScorer[T]) ScoreU16(q []uint16, c float64) (float64, error) {
	return LevenshteinSimilarity(s.prepared, q, c), nil
}
func (s *levScorer[T]) ScoreU32(q []uint32, c float64) (float64, error) {
	return LevenshteinSimilarity(s.prepared, q, c), nil
}
func (s *levScorer[T]) ScoreU64(q []uint64, c float64) (float64, error) {
	return LevenshteinSimilarity(s.prepared, q, c), nil
}

type levFactory struct{}

func (levFactory) FromU8(s []uint8) (scorer.Scorer, error) {
	return &levScorer[uint8]{prepared: slices.Clone(s)}, nil
}
func (levFactory) FromU16(s []uint16) (scorer.Scorer, error) {
	return &levScorer[uint16]{prepared: slices.Clone(s)}, nil
}
func (levFactory) FromU32(s []uint32) (scorer.Scorer, error) {
	return &levScorer[uint32]{prepared: slices.Clone(s)}, nil
}
func (levFactory) FromU64(s []uint64) (scorer.Scorer, error) {
	return &levScorer[uint64]{prepared: slices.Clone(s)}, nil
}

// NewLevenshtein returns a factory for prepared Levenshtein scorers.
func NewLevenshtein() scorer.Factory {
	return levFactory{}
}
