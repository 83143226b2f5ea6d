package hosterr

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/wippyai/fuzz-bridge/errors"
)

// Bridge installs classified failures into the host's pending-error slot.
// The runtime lock is an explicit capability: callers may run without the
// host's serialization lock held, so the bridge acquires it around every
// touch of host error state and releases it immediately after.
type Bridge struct {
	lock  sync.Locker
	state State
}

// New creates a bridge over the host's lock and error slot.
func New(lock sync.Locker, state State) *Bridge {
	return &Bridge{lock: lock, state: state}
}

// NewLocal creates a self-contained bridge with its own lock and slot,
// for hosts that keep error state in-process and for tests.
func NewLocal() *Bridge {
	return New(&sync.Mutex{}, &LocalState{})
}

// Report classifies err and installs it as the host's pending error unless
// one is already pending, in which case err is discarded and the original
// failure is preserved. Report(nil) records an unknown-category defect.
func (b *Bridge) Report(err error) {
	cat, msg := Classify(err)

	b.lock.Lock()
	if b.state.Pending() == nil {
		b.state.Set(&Error{Category: cat, Message: msg})
	}
	b.lock.Unlock()
}

// Recover reports a value obtained from recover(). Error values go through
// the usual classification; anything else is a foreign failure and maps to
// the unknown category.
func (b *Bridge) Recover(r any) {
	switch v := r.(type) {
	case nil:
		b.Report(nil)
	case error:
		b.Report(v)
	default:
		b.lock.Lock()
		if b.state.Pending() == nil {
			b.state.Set(&Error{Category: CategoryUnknown, Message: fmt.Sprint(v)})
		}
		b.lock.Unlock()
	}
}

// Pending returns the pending host error without consuming it.
func (b *Bridge) Pending() *Error {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.state.Pending()
}

// Take returns the pending host error and clears the slot. The host calls
// this when it is ready to surface the failure to its own callers.
func (b *Bridge) Take() *Error {
	b.lock.Lock()
	defer b.lock.Unlock()
	e := b.state.Pending()
	b.state.Clear()
	return e
}

// Classify maps an internal failure onto the host taxonomy. The mapping
// follows the engine's structured error kinds first, then recognized Go
// runtime failures; any other error is a generic runtime failure. A nil
// err means the bridge was invoked with nothing propagating, which is a
// defect surfaced as unknown.
func Classify(err error) (Category, string) {
	if err == nil {
		return CategoryUnknown, "error bridge invoked with no failure propagating"
	}

	var be *errors.Error
	if stderrors.As(err, &be) {
		return classifyKind(be.Kind), err.Error()
	}

	var tae *runtime.TypeAssertionError
	if stderrors.As(err, &tae) {
		return CategoryTypeMismatch, err.Error()
	}

	var rte runtime.Error
	if stderrors.As(err, &rte) {
		return classifyRuntime(rte), err.Error()
	}

	return CategoryRuntime, err.Error()
}

func classifyKind(k errors.Kind) Category {
	switch k {
	case errors.KindAllocation:
		return CategoryOutOfMemory
	case errors.KindTypeMismatch:
		return CategoryTypeMismatch
	case errors.KindDomain, errors.KindInvalidInput:
		return CategoryValueDomain
	case errors.KindIOFailure:
		return CategoryIOFailure
	case errors.KindOutOfBounds:
		return CategoryIndexOutOfRange
	case errors.KindOverflow:
		return CategoryArithmeticRange
	default:
		// invalid_width, unsupported, destroyed and friends are logic
		// failures: generic runtime errors on the host side.
		return CategoryRuntime
	}
}

func classifyRuntime(err runtime.Error) Category {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "index out of range"),
		strings.Contains(msg, "slice bounds out of range"):
		return CategoryIndexOutOfRange
	case strings.Contains(msg, "divide by zero"):
		return CategoryArithmeticRange
	default:
		return CategoryRuntime
	}
}
