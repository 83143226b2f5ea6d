package wasmhost

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/fuzz-bridge/errors"
	"github.com/wippyai/fuzz-bridge/hosterr"
	"github.com/wippyai/fuzz-bridge/metric"
	"github.com/wippyai/fuzz-bridge/scorer"
)

// Namespace is the import module name guests link against.
const Namespace = "wippy:fuzz/scorer"

// Built-in metric identifiers for scorer-new.
const (
	MetricIndel       uint32 = 1
	MetricLevenshtein uint32 = 2
	MetricJaro        uint32 = 3
	MetricJaroWinkler uint32 = 4
)

// Host owns the guest-facing scoring surface: a handle table of live
// scorer contexts, the pending-error slot guests drain through
// last-error, and the metric registry scorer-new resolves against.
type Host struct {
	table   *Table
	bridge  *hosterr.Bridge
	metrics map[uint32]scorer.Factory
}

// NewHost creates a host with the built-in metrics registered.
func NewHost() *Host {
	h := &Host{
		table:   NewTable(),
		bridge:  hosterr.NewLocal(),
		metrics: make(map[uint32]scorer.Factory, 4),
	}
	h.metrics[MetricIndel] = metric.NewIndel()
	h.metrics[MetricLevenshtein] = metric.NewLevenshtein()
	h.metrics[MetricJaro] = metric.NewJaroWinkler(0)
	h.metrics[MetricJaroWinkler] = metric.NewJaroWinkler(metric.DefaultPrefixWeight)
	return h
}

// RegisterMetric installs a factory under a metric identifier, replacing
// any previous registration. Must be called before Instantiate.
func (h *Host) RegisterMetric(id uint32, f scorer.Factory) {
	h.metrics[id] = f
}

// Instantiate builds the host module into the wazero runtime under
// Namespace. The returned module stays alive until the runtime closes.
func (h *Host) Instantiate(ctx context.Context, rt wazero.Runtime) (api.Module, error) {
	u32 := api.ValueTypeI32
	f64 := api.ValueTypeF64

	return rt.NewHostModuleBuilder(Namespace).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(h.scorerNew),
			[]api.ValueType{u32, u32, u32, u32}, []api.ValueType{u32}).
		Export("scorer-new").
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(h.scorerCompute),
			[]api.ValueType{u32, u32, u32, u32, f64, u32}, []api.ValueType{u32}).
		Export("scorer-compute").
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(h.scorerDrop),
			[]api.ValueType{u32}, []api.ValueType{u32}).
		Export("scorer-drop").
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(h.lastError),
			[]api.ValueType{u32, u32}, []api.ValueType{u32}).
		Export("last-error").
		Instantiate(ctx)
}

// Close destroys every context the guest leaked and shuts the table down.
func (h *Host) Close() error {
	if n := h.table.Len(); n > 0 {
		Logger().Debug("destroying leaked scorer handles", zap.Int("count", n))
	}
	return h.table.Close()
}

func (h *Host) scorerNew(_ context.Context, mod api.Module, stack []uint64) {
	stack[0] = uint64(h.newHandle(mod.Memory(),
		api.DecodeU32(stack[0]),
		api.DecodeU32(stack[1]),
		api.DecodeU32(stack[2]),
		api.DecodeU32(stack[3])))
}

func (h *Host) newHandle(mem guestMemory, metricID, ptr, n, width uint32) Handle {
	f, ok := h.metrics[metricID]
	if !ok {
		h.bridge.Report(errors.New(errors.PhaseHost, errors.KindInvalidInput).
			Detail("unknown metric identifier %d", metricID).Value(metricID).Build())
		return 0
	}

	buf, err := readSequence(mem, ptr, n, width)
	if err != nil {
		h.bridge.Report(err)
		return 0
	}

	c, err := scorer.Build(f, h.bridge, buf)
	if err != nil {
		h.bridge.Report(err)
		return 0
	}

	handle, err := h.table.Insert(c)
	if err != nil {
		c.Destroy()
		h.bridge.Report(err)
		return 0
	}

	Logger().Debug("scorer-new",
		zap.Uint32("metric", metricID),
		zap.Uint32("handle", uint32(handle)),
		zap.Uint32("len", n))
	return handle
}

func (h *Host) scorerCompute(_ context.Context, mod api.Module, stack []uint64) {
	stack[0] = uint64(h.compute(mod.Memory(),
		api.DecodeU32(stack[0]),
		api.DecodeU32(stack[1]),
		api.DecodeU32(stack[2]),
		api.DecodeU32(stack[3]),
		api.DecodeF64(stack[4]),
		api.DecodeU32(stack[5])))
}

func (h *Host) compute(mem guestMemory, handle, ptr, n, width uint32, cutoff float64, out uint32) uint32 {
	c, ok := h.table.Get(Handle(handle))
	if !ok {
		h.bridge.Report(errors.New(errors.PhaseHost, errors.KindInvalidInput).
			Detail("unknown scorer handle %d", handle).Value(handle).Build())
		return h.failureErrno()
	}

	query, err := readSequence(mem, ptr, n, width)
	if err != nil {
		h.bridge.Report(err)
		return h.failureErrno()
	}

	var score float64
	if !c.Compute(query, cutoff, &score) {
		return h.failureErrno()
	}

	if !mem.WriteFloat64Le(out, score) {
		h.bridge.Report(errors.New(errors.PhaseHost, errors.KindOutOfBounds).
			Detail("result slot %d is outside linear memory", out).Build())
		return h.failureErrno()
	}
	return ErrnoOK
}

func (h *Host) scorerDrop(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = uint64(h.drop(api.DecodeU32(stack[0])))
}

func (h *Host) drop(handle uint32) uint32 {
	c, ok := h.table.Remove(Handle(handle))
	if !ok {
		h.bridge.Report(errors.New(errors.PhaseHost, errors.KindInvalidInput).
			Detail("unknown scorer handle %d", handle).Value(handle).Build())
		return h.failureErrno()
	}
	c.Destroy()
	Logger().Debug("scorer-drop", zap.Uint32("handle", handle))
	return ErrnoOK
}

func (h *Host) lastError(_ context.Context, mod api.Module, stack []uint64) {
	stack[0] = uint64(h.takeError(mod.Memory(),
		api.DecodeU32(stack[0]),
		api.DecodeU32(stack[1])))
}

func (h *Host) takeError(mem guestMemory, ptr, capacity uint32) uint32 {
	pending := h.bridge.Take()
	if pending == nil {
		return 0
	}

	msg := []byte(pending.Message)
	if uint32(len(msg)) > capacity {
		msg = msg[:capacity]
	}
	if len(msg) == 0 {
		return 0
	}
	if !mem.Write(ptr, msg) {
		return 0
	}
	return uint32(len(msg))
}

// failureErrno converts the pending error into a guest errno. A failure
// with nothing pending means a reporting gap upstream; that still has to
// surface as a failure, so it maps to the unknown category.
func (h *Host) failureErrno() uint32 {
	if pending := h.bridge.Pending(); pending != nil {
		return ErrnoOf(pending.Category)
	}
	return ErrnoOf(hosterr.CategoryUnknown)
}
