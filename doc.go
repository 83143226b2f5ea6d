// Package fuzzbridge provides fuzzy string matching behind a strict
// ownership and error boundary.
//
// Sequences are width-tagged buffers of fixed-size code units (u8 to u64),
// so ASCII bytes, UTF-16 data and full code points all flow through the
// same scoring machinery without re-encoding. Scorers are prepared once
// per query sequence and reused across many candidates; failures never
// escape as panics but are classified into a small host-facing taxonomy.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	fuzzbridge/          Root package with string-level convenience API
//	├── seq/             Width-tagged buffers, ownership wrappers, visitor dispatch
//	├── metric/          Built-in similarity metrics (Indel, Levenshtein, Jaro-Winkler)
//	├── scorer/          Prepared scorer contexts with build/compute/destroy lifecycle
//	├── rank/            Concurrent extraction of best matches from choice lists
//	├── hosterr/         Error classification bridge for host boundaries
//	├── wasmhost/        wazero host module exposing scoring to WASM guests
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Score two strings:
//
//	score, err := fuzzbridge.Ratio("kitten", "sitting")
//	fmt.Println(score) // 0.6153...
//
// Find the best matches in a list:
//
//	m, _ := fuzzbridge.NewMatcher("indel")
//	results, err := m.WithCutoff(0.5).Match(ctx, "appel", []string{"apple", "orange", "grape"})
//
// # Scorer Lifecycle
//
// For repeated scoring against one query, prepare a context once:
//
//	q, _ := seq.Convert("kitten")
//	c, _ := scorer.Build(metric.NewIndel(), hosterr.NewLocal(), q)
//	defer c.Destroy()
//
//	var score float64
//	c.Compute(candidate, 0, &score)
//
// # Thread Safety
//
// Factories and the metric registry are safe for concurrent use. A scorer
// Context is NOT safe for concurrent Compute calls; rank.Extract builds
// one context per worker instead of sharing.
package fuzzbridge
