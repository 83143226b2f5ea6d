// Package seq provides width-tagged encoded text buffers and the visitor
// dispatch that resolves them to typed code-unit slices.
//
// # Encoded Buffers
//
// A Buffer is a view over a contiguous run of fixed-width code units. The
// Width tag identifies the element size needed to reinterpret the raw data
// pointer; it is set once at construction and never re-derived. Producers
// must set it correctly - a mismatched tag is undefined behavior:
//
//	buf, err := seq.Convert("hello")     // Go host value conversion
//	buf, err := seq.FromBytes(seq.Width16, raw) // foreign bytes, known width
//	buf := seq.View(seq.Width8, ptr, n)  // non-owning view
//
// # Ownership
//
// Buffers constructed by View do not own their storage. Foreign buffers that
// carry a release callback and/or an external owner reference are managed
// through a Wrapper, which guarantees the callback fires at most once and
// the owner reference is released exactly once, even across moves:
//
//	w := seq.NewWrapper(buf, owner)
//	defer w.Close()
//
// Wrappers are move-only: use Take and Adopt to transfer the release right,
// never copy a Wrapper value.
//
// # Dispatch
//
// Visit resolves a buffer's width tag to a typed slice and invokes the
// matching method of a Visitor. Exactly four widths are recognized; any
// other tag is a producer bug and fails without invoking the visitor.
// Visit2 composes two single dispatches so one generic algorithm body
// serves all width pairings with 4+4 cases instead of 16.
//
// Dispatch trusts Buffer.Len. Callers must guarantee the length matches the
// real underlying allocation; no bounds checking is performed beyond that.
package seq
