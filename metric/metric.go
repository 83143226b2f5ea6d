package metric

import (
	"sort"

	"github.com/wippyai/fuzz-bridge/scorer"
)

// CodeUnit is the closed set of element types an encoded buffer can carry.
type CodeUnit interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// eq compares code units across widths by value.
func eq[A, B CodeUnit](a A, b B) bool {
	return uint64(a) == uint64(b)
}

// applyCutoff implements the cutoff convention: below cutoff reports 0.
func applyCutoff(sim, cutoff float64) float64 {
	if sim < cutoff {
		return 0
	}
	return sim
}

var builtins = map[string]func() scorer.Factory{
	"indel":        NewIndel,
	"levenshtein":  NewLevenshtein,
	"jaro":         func() scorer.Factory { return NewJaroWinkler(0) },
	"jaro_winkler": func() scorer.Factory { return NewJaroWinkler(DefaultPrefixWeight) },
}

// Lookup returns a factory for a named built-in metric.
func Lookup(name string) (scorer.Factory, bool) {
	ctor, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Names lists the built-in metric names in stable order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
