package fuzzbridge

import (
	"context"
	"fmt"
	"strings"

	"github.com/wippyai/fuzz-bridge/metric"
	"github.com/wippyai/fuzz-bridge/rank"
	"github.com/wippyai/fuzz-bridge/scorer"
	"github.com/wippyai/fuzz-bridge/seq"
)

// Ratio scores two strings with the normalized Indel metric.
func Ratio(a, b string) (float64, error) {
	ba, err := seq.Convert(a)
	if err != nil {
		return 0, err
	}
	bb, err := seq.Convert(b)
	if err != nil {
		return 0, err
	}
	return metric.Ratio(ba, bb, 0)
}

// Score runs a named metric over two strings. Scores below cutoff
// collapse to 0.
func Score(metricName, a, b string, cutoff float64) (float64, error) {
	f, ok := metric.Lookup(metricName)
	if !ok {
		return 0, fmt.Errorf("unknown metric %q (have: %s)", metricName, strings.Join(metric.Names(), ", "))
	}
	ba, err := seq.Convert(a)
	if err != nil {
		return 0, err
	}
	bb, err := seq.Convert(b)
	if err != nil {
		return 0, err
	}
	return scorer.Score(f, ba, bb, cutoff)
}

// Match is one ranked choice.
type Match struct {
	Choice string
	Index  int
	Score  float64
}

// Matcher ranks string choices against queries with a fixed metric.
// Configure with the With* methods before use; a zero cutoff keeps every
// choice, zero workers uses GOMAXPROCS.
type Matcher struct {
	factory scorer.Factory
	cutoff  float64
	workers int
	limit   int
}

// NewMatcher creates a matcher over a named built-in metric.
func NewMatcher(metricName string) (*Matcher, error) {
	f, ok := metric.Lookup(metricName)
	if !ok {
		return nil, fmt.Errorf("unknown metric %q (have: %s)", metricName, strings.Join(metric.Names(), ", "))
	}
	return &Matcher{factory: f}, nil
}

// WithCutoff drops choices scoring below cutoff.
func (m *Matcher) WithCutoff(cutoff float64) *Matcher {
	m.cutoff = cutoff
	return m
}

// WithWorkers sets the number of scoring goroutines.
func (m *Matcher) WithWorkers(n int) *Matcher {
	m.workers = n
	return m
}

// WithLimit caps the number of returned matches.
func (m *Matcher) WithLimit(n int) *Matcher {
	m.limit = n
	return m
}

// Match scores query against every choice and returns the survivors,
// best first.
func (m *Matcher) Match(ctx context.Context, query string, choices []string) ([]Match, error) {
	q, err := seq.Convert(query)
	if err != nil {
		return nil, err
	}
	bufs := make([]*seq.Buffer, len(choices))
	for i, c := range choices {
		if bufs[i], err = seq.Convert(c); err != nil {
			return nil, fmt.Errorf("choice %d: %w", i, err)
		}
	}

	results, err := rank.Extract(ctx, m.factory, q, bufs, m.cutoff, m.workers)
	if err != nil {
		return nil, err
	}
	if m.limit > 0 && len(results) > m.limit {
		results = results[:m.limit]
	}

	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Choice: choices[r.Index], Index: r.Index, Score: r.Score}
	}
	return matches, nil
}

// MatchOne returns the single best choice meeting the cutoff. The boolean
// is false when nothing qualifies.
func (m *Matcher) MatchOne(ctx context.Context, query string, choices []string) (Match, bool, error) {
	one := *m
	one.limit = 1
	matches, err := one.Match(ctx, query, choices)
	if err != nil {
		return Match{}, false, err
	}
	if len(matches) == 0 {
		return Match{}, false, nil
	}
	return matches[0], true, nil
}
