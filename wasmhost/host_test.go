package wasmhost

import (
	"context"
	"encoding/binary"
	"math"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/fuzz-bridge/hosterr"
	"github.com/wippyai/fuzz-bridge/seq"
)

// fakeMemory stands in for guest linear memory so handlers can be driven
// without instantiating a guest module.
type fakeMemory struct {
	data []byte
}

func newFakeMemory(size int) *fakeMemory {
	return &fakeMemory{data: make([]byte, size)}
}

func (m *fakeMemory) Read(offset, byteCount uint32) ([]byte, bool) {
	end := uint64(offset) + uint64(byteCount)
	if end > uint64(len(m.data)) {
		return nil, false
	}
	return m.data[offset:end:end], true
}

func (m *fakeMemory) Write(offset uint32, v []byte) bool {
	if uint64(offset)+uint64(len(v)) > uint64(len(m.data)) {
		return false
	}
	copy(m.data[offset:], v)
	return true
}

func (m *fakeMemory) WriteFloat64Le(offset uint32, v float64) bool {
	if uint64(offset)+8 > uint64(len(m.data)) {
		return false
	}
	binary.LittleEndian.PutUint64(m.data[offset:], math.Float64bits(v))
	return true
}

func (m *fakeMemory) float64At(offset uint32) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(m.data[offset:]))
}

func (m *fakeMemory) place(offset uint32, s string) {
	copy(m.data[offset:], s)
}

const (
	storedPtr = 0
	queryPtr  = 16
	outPtr    = 64
	errPtr    = 128
)

func TestHostScorerLifecycle(t *testing.T) {
	h := NewHost()
	defer h.Close()

	mem := newFakeMemory(256)
	mem.place(storedPtr, "cat")
	mem.place(queryPtr, "hat")

	handle := h.newHandle(mem, MetricIndel, storedPtr, 3, uint32(seq.Width8))
	if handle == 0 {
		t.Fatal("expected non-zero handle")
	}

	errno := h.compute(mem, uint32(handle), queryPtr, 3, uint32(seq.Width8), 0, outPtr)
	if errno != ErrnoOK {
		t.Fatalf("compute errno = %d", errno)
	}
	score := mem.float64At(outPtr)
	if math.Abs(score-2.0/3.0) > 1e-9 {
		t.Errorf("score = %v, want 2/3", score)
	}

	if errno := h.drop(uint32(handle)); errno != ErrnoOK {
		t.Fatalf("drop errno = %d", errno)
	}

	errno = h.compute(mem, uint32(handle), queryPtr, 3, uint32(seq.Width8), 0, outPtr)
	if errno == ErrnoOK {
		t.Fatal("compute against dropped handle should fail")
	}
	if written := h.takeError(mem, errPtr, 128); written == 0 {
		t.Error("expected a pending error message")
	}
}

func TestHostUnknownMetric(t *testing.T) {
	h := NewHost()
	defer h.Close()

	mem := newFakeMemory(64)
	mem.place(storedPtr, "cat")

	if handle := h.newHandle(mem, 999, storedPtr, 3, uint32(seq.Width8)); handle != 0 {
		t.Fatalf("expected handle 0, got %d", handle)
	}

	written := h.takeError(mem, 8, 48)
	if written == 0 {
		t.Fatal("expected a pending error message")
	}
	msg := string(mem.data[8 : 8+written])
	if msg == "" {
		t.Error("empty error message")
	}
}

func TestHostInvalidWidthTag(t *testing.T) {
	h := NewHost()
	defer h.Close()

	mem := newFakeMemory(64)
	mem.place(storedPtr, "cat")

	if handle := h.newHandle(mem, MetricIndel, storedPtr, 3, 9); handle != 0 {
		t.Fatal("invalid width tag should not build")
	}
	if h.failureErrno() == ErrnoOK {
		t.Error("expected a failure errno pending")
	}
}

func TestHostWideWidthTagNotTruncated(t *testing.T) {
	// Tags congruent to a real width mod 256 must still fail: 257 would
	// alias width 1 if the u32 were narrowed before validation.
	h := NewHost()
	defer h.Close()

	mem := newFakeMemory(64)
	mem.place(storedPtr, "cat")

	for _, tag := range []uint32{257, 258, 65536 + 4} {
		if _, err := readSequence(mem, storedPtr, 3, tag); err == nil {
			t.Errorf("readSequence accepted width tag %d", tag)
		}
		if handle := h.newHandle(mem, MetricIndel, storedPtr, 3, tag); handle != 0 {
			t.Errorf("width tag %d produced live handle %d", tag, handle)
		}
		if h.takeError(mem, 8, 56) == 0 {
			t.Errorf("width tag %d left no pending error", tag)
		}
	}
}

func TestHostSequenceOutOfRange(t *testing.T) {
	h := NewHost()
	defer h.Close()

	mem := newFakeMemory(8)

	if handle := h.newHandle(mem, MetricIndel, 4, 100, uint32(seq.Width8)); handle != 0 {
		t.Fatal("out-of-range sequence should not build")
	}
	if got := h.failureErrno(); got != ErrnoOf(hosterr.CategoryIndexOutOfRange) {
		t.Errorf("errno = %d, want index-out-of-range", got)
	}
}

func TestHostResultSlotOutOfRange(t *testing.T) {
	h := NewHost()
	defer h.Close()

	mem := newFakeMemory(32)
	mem.place(storedPtr, "cat")
	mem.place(queryPtr, "cat")

	handle := h.newHandle(mem, MetricIndel, storedPtr, 3, uint32(seq.Width8))
	if handle == 0 {
		t.Fatal("expected non-zero handle")
	}

	errno := h.compute(mem, uint32(handle), queryPtr, 3, uint32(seq.Width8), 0, 1000)
	if errno == ErrnoOK {
		t.Fatal("unwritable result slot should fail")
	}
}

func TestHostLastErrorTruncation(t *testing.T) {
	h := NewHost()
	defer h.Close()

	mem := newFakeMemory(64)

	h.newHandle(mem, 999, 0, 0, uint32(seq.Width8))

	written := h.takeError(mem, 0, 5)
	if written != 5 {
		t.Errorf("written = %d, want 5", written)
	}

	// The slot is consumed: nothing left on a second drain.
	if written := h.takeError(mem, 0, 64); written != 0 {
		t.Errorf("second drain wrote %d bytes", written)
	}
}

func TestHostLastErrorEmpty(t *testing.T) {
	h := NewHost()
	defer h.Close()

	mem := newFakeMemory(64)
	if written := h.takeError(mem, 0, 64); written != 0 {
		t.Errorf("expected 0 with no pending error, got %d", written)
	}
}

func TestHostWiderQueryAgainstNarrowStored(t *testing.T) {
	h := NewHost()
	defer h.Close()

	mem := newFakeMemory(256)
	mem.place(storedPtr, "cat")
	for i, r := range "cat" {
		binary.NativeEndian.PutUint16(mem.data[queryPtr+i*2:], uint16(r))
	}

	handle := h.newHandle(mem, MetricIndel, storedPtr, 3, uint32(seq.Width8))
	if handle == 0 {
		t.Fatal("expected non-zero handle")
	}

	errno := h.compute(mem, uint32(handle), queryPtr, 3, uint32(seq.Width16), 0, outPtr)
	if errno != ErrnoOK {
		t.Fatalf("compute errno = %d", errno)
	}
	if got := mem.float64At(outPtr); got != 1.0 {
		t.Errorf("score = %v, want 1", got)
	}
}

func TestHostInstantiate(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	h := NewHost()
	defer h.Close()

	mod, err := h.Instantiate(ctx, rt)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}

	for _, name := range []string{"scorer-new", "scorer-compute", "scorer-drop", "last-error"} {
		if mod.ExportedFunction(name) == nil {
			t.Errorf("missing export %q", name)
		}
	}

	// Dropping a handle nobody issued fails with a non-zero errno.
	results, err := mod.ExportedFunction("scorer-drop").Call(ctx, 42)
	if err != nil {
		t.Fatalf("call scorer-drop: %v", err)
	}
	if results[0] == uint64(ErrnoOK) {
		t.Error("expected failure errno for unknown handle")
	}
}
