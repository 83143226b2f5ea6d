package seq

import (
	stderrors "errors"
	"testing"
	"unsafe"

	"github.com/wippyai/fuzz-bridge/errors"
)

func widen[T uint8 | uint16 | uint32 | uint64](s []T) []uint64 {
	out := make([]uint64, len(s))
	for i, v := range s {
		out[i] = uint64(v)
	}
	return out
}

// widenVisitor collapses any width into []uint64 for comparison in tests.
type widenVisitor struct{}

func (widenVisitor) U8(s []uint8) ([]uint64, error)   { return widen(s), nil }
func (widenVisitor) U16(s []uint16) ([]uint64, error) { return widen(s), nil }
func (widenVisitor) U32(s []uint32) ([]uint64, error) { return widen(s), nil }
func (widenVisitor) U64(s []uint64) ([]uint64, error) { return widen(s), nil }

func bufOf[T uint8 | uint16 | uint32 | uint64](w Width, vals []T) *Buffer {
	b := &Buffer{Owner: vals, Width: w, Len: len(vals)}
	if len(vals) > 0 {
		b.Data = unsafe.Pointer(unsafe.SliceData(vals))
	}
	return b
}

func TestVisit_EachWidth(t *testing.T) {
	want := []uint64{97, 98, 99}

	bufs := map[string]*Buffer{
		"u8":  bufOf(Width8, []uint8{97, 98, 99}),
		"u16": bufOf(Width16, []uint16{97, 98, 99}),
		"u32": bufOf(Width32, []uint32{97, 98, 99}),
		"u64": bufOf(Width64, []uint64{97, 98, 99}),
	}

	for name, b := range bufs {
		t.Run(name, func(t *testing.T) {
			got, err := Visit(b, widenVisitor{})
			if err != nil {
				t.Fatalf("Visit failed: %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("got %d elements, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("element %d = %d, want %d", i, got[i], want[i])
				}
			}
		})
	}
}

func TestVisit_EmptyBuffer(t *testing.T) {
	got, err := Visit(bufOf(Width16, []uint16{}), widenVisitor{})
	if err != nil {
		t.Fatalf("Visit failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d elements, want 0", len(got))
	}
}

// countingVisitor records whether any method ran.
type countingVisitor struct {
	calls int
}

func (v *countingVisitor) U8(s []uint8) (int, error)   { v.calls++; return len(s), nil }
func (v *countingVisitor) U16(s []uint16) (int, error) { v.calls++; return len(s), nil }
func (v *countingVisitor) U32(s []uint32) (int, error) { v.calls++; return len(s), nil }
func (v *countingVisitor) U64(s []uint64) (int, error) { v.calls++; return len(s), nil }

func TestVisit_InvalidTag(t *testing.T) {
	v := &countingVisitor{}
	b := &Buffer{Width: Width(7), Len: 3}

	_, err := Visit(b, v)
	if err == nil {
		t.Fatal("expected error for unregistered width tag")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDispatch, Kind: errors.KindInvalidWidth}) {
		t.Errorf("expected invalid_width dispatch error, got %v", err)
	}
	if v.calls != 0 {
		t.Errorf("visitor invoked %d times, want 0", v.calls)
	}
}

type pairResult struct {
	first  []uint64
	second []uint64
}

type widenPair struct{}

func (widenPair) WithU8(s []uint8) Visitor[pairResult]   { return pairInner{second: widen(s)} }
func (widenPair) WithU16(s []uint16) Visitor[pairResult] { return pairInner{second: widen(s)} }
func (widenPair) WithU32(s []uint32) Visitor[pairResult] { return pairInner{second: widen(s)} }
func (widenPair) WithU64(s []uint64) Visitor[pairResult] { return pairInner{second: widen(s)} }

type pairInner struct {
	second []uint64
}

func (p pairInner) U8(s []uint8) (pairResult, error) {
	return pairResult{first: widen(s), second: p.second}, nil
}
func (p pairInner) U16(s []uint16) (pairResult, error) {
	return pairResult{first: widen(s), second: p.second}, nil
}
func (p pairInner) U32(s []uint32) (pairResult, error) {
	return pairResult{first: widen(s), second: p.second}, nil
}
func (p pairInner) U64(s []uint64) (pairResult, error) {
	return pairResult{first: widen(s), second: p.second}, nil
}

func TestVisit2_AllPairings(t *testing.T) {
	firsts := map[Width]*Buffer{
		Width8:  bufOf(Width8, []uint8{1, 2}),
		Width16: bufOf(Width16, []uint16{1, 2}),
		Width32: bufOf(Width32, []uint32{1, 2}),
		Width64: bufOf(Width64, []uint64{1, 2}),
	}
	seconds := map[Width]*Buffer{
		Width8:  bufOf(Width8, []uint8{3, 4, 5}),
		Width16: bufOf(Width16, []uint16{3, 4, 5}),
		Width32: bufOf(Width32, []uint32{3, 4, 5}),
		Width64: bufOf(Width64, []uint64{3, 4, 5}),
	}

	for wf, fb := range firsts {
		for ws, sb := range seconds {
			got, err := Visit2(fb, sb, widenPair{})
			if err != nil {
				t.Fatalf("Visit2(%v, %v) failed: %v", wf, ws, err)
			}
			if len(got.first) != 2 || got.first[0] != 1 || got.first[1] != 2 {
				t.Errorf("Visit2(%v, %v) first = %v", wf, ws, got.first)
			}
			if len(got.second) != 3 || got.second[0] != 3 {
				t.Errorf("Visit2(%v, %v) second = %v", wf, ws, got.second)
			}
		}
	}
}

func TestVisit2_InvalidSecond(t *testing.T) {
	fb := bufOf(Width8, []uint8{1})
	sb := &Buffer{Width: Width(9), Len: 1}

	_, err := Visit2(fb, sb, widenPair{})
	if err == nil {
		t.Fatal("expected error for invalid second buffer tag")
	}
}
