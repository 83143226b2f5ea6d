// Package scorer wraps width-specialized similarity algorithm instances
// behind a uniform, host-callable compute/destroy surface.
//
// A Factory is the construction capability: given the typed contents of
// one prepared sequence, it returns a Scorer holding algorithm state. A
// Scorer answers queries at any of the four widths; together the two
// interfaces are the two halves of the width dispatch, so one generic
// algorithm body serves all width pairings.
//
// Build dispatches exactly one buffer through a Factory and returns a
// Context. Supplying any other buffer count fails with an unsupported
// error before anything is allocated - batched scoring is a reserved
// extension, not a silent fallback.
//
// A Context moves Built -> Destroyed. Compute is valid only while Built;
// after Destroy it fails deterministically through the error bridge.
// Compute and BuildFunc are catch-all frontiers: no error or panic crosses
// into host-visible code, failures are handed to the hosterr bridge and
// signalled by a false return with the output slot untouched.
//
// The Func table is the boundary ABI: an opaque context pointer plus
// compute and destroy function pointers, in that order.
package scorer
