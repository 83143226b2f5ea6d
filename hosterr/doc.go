// Package hosterr translates internal failures into the host runtime's
// structured error categories at the engine boundary.
//
// The host owns a single pending-error slot, modeled by the State
// interface. The Bridge is the only component allowed to touch that slot,
// and it does so under the host's runtime lock, supplied as an explicit
// sync.Locker capability. The critical section covers exactly the
// read-check-install of the slot; classification happens outside it.
//
// Two rules govern reporting:
//
//   - A pending host error is never overwritten. When a boundary call that
//     is already failing triggers a secondary internal failure, the first
//     failure wins and the secondary one is discarded.
//   - Translation happens exactly once, at the innermost boundary function
//     that catches the failure. Callers further up must not re-report.
//
// Boundary functions report Go errors via Report and recovered panic
// values via Recover:
//
//	defer func() {
//		if r := recover(); r != nil {
//			bridge.Recover(r)
//			ok = false
//		}
//	}()
//
// Calling Report with a nil error means the bridge was invoked with no
// failure propagating; that is itself a defect and surfaces as an unknown
// category error rather than a crash.
package hosterr
