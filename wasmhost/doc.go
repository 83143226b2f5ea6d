// Package wasmhost exposes the scoring boundary to WebAssembly guests
// through a wazero host module.
//
// Guests import functions from the "wippy:fuzz/scorer" namespace:
//
//	scorer-new(metric: u32, ptr: u32, len: u32, width: u32) -> handle: u32
//	scorer-compute(handle: u32, ptr: u32, len: u32, width: u32,
//	               cutoff: f64, out: u32) -> errno: u32
//	scorer-drop(handle: u32) -> errno: u32
//	last-error(ptr: u32, cap: u32) -> written: u32
//
// ptr/len/width describe an encoded sequence in guest linear memory: len
// counts code units, width is the seq.Width tag. The bytes are copied out
// of guest memory before use, since linear memory may move when it grows.
//
// scorer-new returns 0 on failure. scorer-compute writes the score as a
// little-endian f64 at out and returns errno 0; any failure leaves the
// out slot untouched, records a pending host error and returns a non-zero
// errno derived from the error category. last-error copies the pending
// message into guest memory (truncated to cap) and clears it.
//
// Handles are tracked in a Table; dropping a handle destroys its scorer
// context exactly once, and closing the host destroys whatever the guest
// leaked.
package wasmhost
