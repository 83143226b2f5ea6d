package hosterr

import "fmt"

// Category is the host's error taxonomy. Every internal failure crossing
// the boundary is classified into exactly one category.
type Category uint8

const (
	CategoryUnknown Category = iota // unrecognized or foreign failure
	CategoryOutOfMemory
	CategoryTypeMismatch
	CategoryValueDomain
	CategoryIOFailure
	CategoryIndexOutOfRange
	CategoryArithmeticRange
	CategoryRuntime
)

var categoryNames = [...]string{
	CategoryUnknown:         "unknown",
	CategoryOutOfMemory:     "out_of_memory",
	CategoryTypeMismatch:    "type_mismatch",
	CategoryValueDomain:     "value_domain",
	CategoryIOFailure:       "io_failure",
	CategoryIndexOutOfRange: "index_out_of_range",
	CategoryArithmeticRange: "arithmetic_range",
	CategoryRuntime:         "runtime",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Error is a classified host error. Instances are transient: created at the
// boundary, consumed by the host, never persisted.
type Error struct {
	Category Category
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}
