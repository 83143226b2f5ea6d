// Package rank extracts the best-scoring choices for a query.
//
// Scorer contexts provide no internal synchronization, so Extract builds
// one context per worker goroutine and never shares one across workers.
// Results are returned best first; choices scoring below the cutoff are
// dropped.
package rank
