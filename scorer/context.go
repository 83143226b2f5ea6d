package scorer

import (
	"sync/atomic"

	"github.com/wippyai/fuzz-bridge/errors"
	"github.com/wippyai/fuzz-bridge/hosterr"
	"github.com/wippyai/fuzz-bridge/seq"
)

const (
	stateBuilt uint32 = iota + 1
	stateDestroyed
)

// ErrMultiSequence is returned when Build receives a sequence count other
// than one. Multi-sequence contexts are a reserved extension point for
// batched scoring; the failure is explicit, never a silent fallback.
// Preallocated so the rejection path performs no heap allocation.
var ErrMultiSequence = errors.Unsupported(errors.PhaseBuild, "only a single input sequence is supported")

// Context pairs one prepared algorithm instance with the bridge that
// receives its failures. Independent contexts may be used concurrently;
// a single context must not service concurrent Compute calls.
type Context struct {
	scorer Scorer
	bridge *hosterr.Bridge
	state  atomic.Uint32
}

// Build dispatches exactly one buffer through the factory and returns a
// Built context. Any other buffer count fails before any allocation.
func Build(f Factory, bridge *hosterr.Bridge, bufs ...*seq.Buffer) (*Context, error) {
	if len(bufs) != 1 {
		return nil, ErrMultiSequence
	}

	s, err := seq.Visit[Scorer](bufs[0], factoryVisitor{f: f})
	if err != nil {
		return nil, err
	}

	c := &Context{scorer: s, bridge: bridge}
	c.state.Store(stateBuilt)
	return c, nil
}

// Compute scores query against the prepared sequence and writes the result
// through out, returning true. On any failure - bad width tag, algorithm
// error, panic, use after Destroy - the failure goes to the bridge, out is
// left unwritten and Compute returns false. Nothing escapes the boundary.
func (c *Context) Compute(query *seq.Buffer, cutoff float64, out *float64) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.bridge.Recover(r)
			ok = false
		}
	}()

	if c.state.Load() != stateBuilt {
		c.bridge.Report(errors.Destroyed(errors.PhaseCompute, "scorer context"))
		return false
	}

	score, err := seq.Visit[float64](query, scoreVisitor{s: c.scorer, cutoff: cutoff})
	if err != nil {
		c.bridge.Report(err)
		return false
	}

	*out = score
	return true
}

// Destroy releases the prepared instance. The first call wins; later calls
// are no-ops, so one Build is paired with exactly one effective Destroy.
func (c *Context) Destroy() {
	if !c.state.CompareAndSwap(stateBuilt, stateDestroyed) {
		return
	}
	if d, ok := c.scorer.(Destroyer); ok {
		d.Destroy()
	}
	c.scorer = nil
}

// Func is the host-callable function table over a context. Field order is
// part of the boundary ABI: opaque context, compute, destroy.
type Func struct {
	Context *Context
	Compute func(f *Func, query *seq.Buffer, cutoff float64, out *float64) bool
	Destroy func(f *Func)
}

// Func builds the ABI table for the context.
func (c *Context) Func() Func {
	return Func{
		Context: c,
		Compute: func(f *Func, query *seq.Buffer, cutoff float64, out *float64) bool {
			return f.Context.Compute(query, cutoff, out)
		},
		Destroy: func(f *Func) {
			f.Context.Destroy()
		},
	}
}

// BuildFunc is the boundary form of Build: failures are reported through
// the bridge and never escape. On success the table is written through out.
func BuildFunc(f Factory, bridge *hosterr.Bridge, out *Func, bufs ...*seq.Buffer) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			bridge.Recover(r)
			ok = false
		}
	}()

	c, err := Build(f, bridge, bufs...)
	if err != nil {
		bridge.Report(err)
		return false
	}

	*out = c.Func()
	return true
}

// Score builds a transient context over a, computes b against it and
// destroys the context on all paths. Convenience for one-shot callers.
func Score(f Factory, a, b *seq.Buffer, cutoff float64) (float64, error) {
	bridge := hosterr.NewLocal()

	c, err := Build(f, bridge, a)
	if err != nil {
		return 0, err
	}
	defer c.Destroy()

	var out float64
	if !c.Compute(b, cutoff, &out) {
		if pending := bridge.Take(); pending != nil {
			return 0, pending
		}
		return 0, errors.New(errors.PhaseCompute, errors.KindRuntime).
			Detail("compute failed without a reported error").Build()
	}
	return out, nil
}
