package hosterr

// State is the host's pending-error slot. Implementations are not required
// to synchronize; the Bridge serializes all access under the runtime lock.
type State interface {
	// Pending returns the currently pending error, or nil.
	Pending() *Error

	// Set installs err as the pending error.
	Set(err *Error)

	// Clear removes the pending error.
	Clear()
}

// LocalState is an in-process pending-error slot, used by hosts that keep
// their error state on the Go side.
type LocalState struct {
	err *Error
}

func (s *LocalState) Pending() *Error { return s.err }
func (s *LocalState) Set(err *Error)  { s.err = err }
func (s *LocalState) Clear()          { s.err = nil }
