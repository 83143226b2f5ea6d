// Package metric provides reference similarity algorithms for the scoring
// boundary: Indel (insertion/deletion), Levenshtein and Jaro-Winkler.
//
// Each algorithm has one generic body written over two code-unit type
// parameters, so a u8 sequence can be compared against a u32 query without
// per-pair code; elements are compared by value. On top of the body each
// algorithm exposes:
//
//   - generic slice-level similarity functions (IndelSimilarity, ...)
//   - a scorer.Factory (NewIndel, NewLevenshtein, NewJaroWinkler) whose
//     prepared scorers copy their input sequence into Go-owned storage
//   - Ratio, a one-shot Indel similarity over two encoded buffers
//
// All similarities are normalized to [0, 1] and share one cutoff
// convention: a score below the cutoff is reported as 0.
package metric
