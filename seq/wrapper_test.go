package seq

import (
	"testing"
	"unsafe"
)

type fakeOwner struct {
	events   *[]string
	retains  int
	releases int
}

func (o *fakeOwner) Retain() { o.retains++ }
func (o *fakeOwner) Release() {
	o.releases++
	if o.events != nil {
		*o.events = append(*o.events, "owner")
	}
}

func releasableBuf(events *[]string) Buffer {
	data := []uint8{1, 2, 3}
	return Buffer{
		Width: Width8,
		Data:  unsafe.Pointer(unsafe.SliceData(data)),
		Len:   len(data),
		Release: func(*Buffer) {
			*events = append(*events, "release")
		},
	}
}

func TestWrapper_CloseReleasesOnce(t *testing.T) {
	var events []string
	owner := &fakeOwner{events: &events}

	w := NewWrapper(releasableBuf(&events), owner)
	if owner.retains != 1 {
		t.Fatalf("retains = %d, want 1", owner.retains)
	}

	w.Close()
	w.Close() // second close must be a no-op

	if len(events) != 2 {
		t.Fatalf("events = %v, want exactly [release owner]", events)
	}
	if events[0] != "release" || events[1] != "owner" {
		t.Errorf("events = %v, want release before owner", events)
	}
	if owner.releases != 1 {
		t.Errorf("owner releases = %d, want 1", owner.releases)
	}
}

func TestWrapper_NonOwningCloseIsNoop(t *testing.T) {
	data := []uint8{1}
	w := NewWrapper(*View(Width8, unsafe.Pointer(unsafe.SliceData(data)), 1), nil)
	w.Close() // nothing to release, must not panic
	if w.Buffer().Width != 0 || w.Buffer().Len != 0 {
		t.Error("closed wrapper should hold the empty sentinel")
	}
}

func TestWrapper_TakeMovesReleaseRight(t *testing.T) {
	var events []string
	owner := &fakeOwner{events: &events}

	src := NewWrapper(releasableBuf(&events), owner)
	dst := src.Take()

	// Moved-from wrapper destroys as a no-op.
	src.Close()
	if len(events) != 0 {
		t.Fatalf("moved-from close fired %v, want nothing", events)
	}

	dst.Close()
	if len(events) != 2 {
		t.Fatalf("events = %v, want [release owner]", events)
	}
	if owner.retains != 1 || owner.releases != 1 {
		t.Errorf("owner refcount retain/release = %d/%d, want 1/1", owner.retains, owner.releases)
	}
}

func TestWrapper_AdoptReleasesDestinationFirst(t *testing.T) {
	var events []string
	ownerA := &fakeOwner{events: &events}
	ownerB := &fakeOwner{events: &events}

	dst := NewWrapper(releasableBuf(&events), ownerA)
	src := NewWrapper(releasableBuf(&events), ownerB)

	dst.Adopt(&src)

	// Destination's previous resources went away when it adopted.
	if len(events) != 2 {
		t.Fatalf("adopt released %v, want destination's [release owner]", events)
	}
	if ownerA.releases != 1 {
		t.Errorf("previous owner releases = %d, want 1", ownerA.releases)
	}
	if ownerB.releases != 0 {
		t.Errorf("adopted owner released early")
	}

	// Source is now the sentinel.
	src.Close()
	if len(events) != 2 {
		t.Fatal("closing moved-from source released something")
	}

	dst.Close()
	if ownerB.releases != 1 {
		t.Errorf("adopted owner releases = %d, want 1", ownerB.releases)
	}
	if len(events) != 4 {
		t.Fatalf("events = %v, want four entries total", events)
	}
}

func TestWrapper_AdoptSelf(t *testing.T) {
	var events []string
	w := NewWrapper(releasableBuf(&events), nil)
	w.Adopt(&w)
	if len(events) != 0 {
		t.Fatal("self-adopt must not release")
	}
	w.Close()
	if len(events) != 1 {
		t.Fatalf("events = %v, want one release", events)
	}
}
