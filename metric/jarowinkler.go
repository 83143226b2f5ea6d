package metric

import (
	"slices"

	"github.com/wippyai/fuzz-bridge/scorer"
)

// DefaultPrefixWeight is the standard Winkler prefix scaling factor.
const DefaultPrefixWeight = 0.1

// winklerMaxPrefix caps the common prefix considered by the Winkler boost.
const winklerMaxPrefix = 4

// JaroSimilarity is the Jaro similarity of a and b in [0, 1]. Scores below
// cutoff are reported as 0.
func JaroSimilarity[A, B CodeUnit](a []A, b []B, cutoff float64) float64 {
	return applyCutoff(jaro(a, b), cutoff)
}

func jaro[A, B CodeUnit](a []A, b []B) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	window := max(len(a), len(b))/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, len(a))
	matchedB := make([]bool, len(b))
	matches := 0

	for i := range a {
		lo := max(i-window, 0)
		hi := min(i+window+1, len(b))
		for j := lo; j < hi; j++ {
			if !matchedB[j] && eq(a[i], b[j]) {
				matchedA[i] = true
				matchedB[j] = true
				matches++
				break
			}
		}
	}

	if matches == 0 {
		return 0
	}

	// Half-transpositions: matched elements out of order.
	halfT := 0
	j := 0
	for i := range a {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if !eq(a[i], b[j]) {
			halfT++
		}
		j++
	}

	m := float64(matches)
	return (m/float64(len(a)) + m/float64(len(b)) + (m-float64(halfT)/2)/m) / 3
}

// JaroWinklerSimilarity boosts the Jaro similarity for sequences sharing a
// common prefix (at most 4 elements, scaled by prefixWeight). Scores below
// cutoff are reported as 0.
func JaroWinklerSimilarity[A, B CodeUnit](a []A, b []B, prefixWeight, cutoff float64) float64 {
	sim := jaro(a, b)

	limit := min(winklerMaxPrefix, len(a), len(b))
	prefix := 0
	for i := 0; i < limit; i++ {
		if !eq(a[i], b[i]) {
			break
		}
		prefix++
	}

	sim += float64(prefix) * prefixWeight * (1 - sim)
	return applyCutoff(sim, cutoff)
}

type jwScorer[T CodeUnit] struct {
	prepared     []T
	prefixWeight float64
}

func (s *jwScorer[T]) ScoreU8(q []uint8, c float64) (float64, error) {
	return JaroWinklerSimilarity(s.prepared, q, s.prefixWeight, c), nil
}
func (s *jwScorer[T]) ScoreU16(q []uint16, c float64) (float64, error) {
	return JaroWinklerSimilarity(s.prepared, q, s.prefixWeight, c), nil
}
func (s *jwScorer[T]) ScoreU32(q []uint32, c float64) (float64, error) {
	return JaroWinklerSimilarity(s.prepared, q, s.prefixWeight, c), nil
}
func (s *jwScorer[T]) ScoreU64(q []uint64, c float64) (float64, error) {
	return JaroWinklerSimilarity(s.prepared, q, s.prefixWeight, c), nil
}

type jwFactory struct {
	prefixWeight float64
}

func (f jwFactory) FromU8(s []uint8) (scorer.Scorer, error) {
	return &jwScorer[uint8]{prepared: slices.Clone(s), prefixWeight: f.prefixWeight}, nil
}
func (f jwFactory) FromU16(s []uint16) (scorer.Scorer, error) {
	return &jwScorer[uint16]{prepared: slices.Clone(s), prefixWeight: f.prefixWeight}, nil
}
func (f jwFactory) FromU32(s []uint32) (scorer.Scorer, error) {
	return &jwScorer[uint32]{prepared: slices.Clone(s), prefixWeight: f.prefixWeight}, nil
}
func (f jwFactory) FromU64(s []uint64) (scorer.Scorer, error) {
	return &jwScorer[uint64]{prepared: slices.Clone(s), prefixWeight: f.prefixWeight}, nil
}

// NewJaroWinkler returns a factory for prepared Jaro-Winkler scorers.
// A zero prefixWeight yields plain Jaro similarity.
func NewJaroWinkler(prefixWeight float64) scorer.Factory {
	return jwFactory{prefixWeight: prefixWeight}
}
