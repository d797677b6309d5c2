package gl

import (
	"context"
	"math"

	gldispatch "github.com/openbindings/gl-dispatch"
	"github.com/openbindings/gl-dispatch/binding"
	"github.com/openbindings/gl-dispatch/dispatch"
	"github.com/openbindings/gl-dispatch/errors"
)

// API dispatches this surface's entry points through a binding set.
// Safe for concurrent use once the set is loaded.
type API struct {
	front  *dispatch.Front
	caller gldispatch.Caller
}

// NewAPI binds the surface to a loaded (or about-to-be-loaded) set and
// the caller that knows how to invoke its addresses. The set must have
// been built from this surface's table: the slot constants index it
// directly, so a set sized for some other table is a construction bug
// and panics here rather than misdispatching later.
func NewAPI(set *binding.Set, caller gldispatch.Caller) *API {
	if set.Len() != slotCount {
		panic(errors.TableMismatch(slotCount, set.Len()).Error())
	}
	return &API{front: dispatch.New(set), caller: caller}
}

// Supports reports whether the named entry point is available.
func (a *API) Supports(name string) bool {
	return a.front.Supports(name)
}

func (a *API) call(ctx context.Context, slot int, args ...uint64) ([]uint64, error) {
	addr, err := a.front.Addr(slot)
	if err != nil {
		return nil, err
	}
	return a.caller.Call(ctx, addr, args...)
}

// GetError returns the current error flag.
func (a *API) GetError(ctx context.Context) (uint32, error) {
	results, err := a.call(ctx, SlotGetError)
	if err != nil {
		return 0, err
	}
	return uint32(results[0]), nil
}

// Clear clears the buffers selected by mask.
func (a *API) Clear(ctx context.Context, mask uint32) error {
	_, err := a.call(ctx, SlotClear, uint64(mask))
	return err
}

// ClearColor sets the clear color.
func (a *API) ClearColor(ctx context.Context, r, g, b, alpha float32) error {
	_, err := a.call(ctx, SlotClearColor,
		uint64(math.Float32bits(r)),
		uint64(math.Float32bits(g)),
		uint64(math.Float32bits(b)),
		uint64(math.Float32bits(alpha)),
	)
	return err
}

// Enable enables a capability.
func (a *API) Enable(ctx context.Context, cap uint32) error {
	_, err := a.call(ctx, SlotEnable, uint64(cap))
	return err
}

// Disable disables a capability.
func (a *API) Disable(ctx context.Context, cap uint32) error {
	_, err := a.call(ctx, SlotDisable, uint64(cap))
	return err
}

// DrawArrays renders primitives from bound array data.
func (a *API) DrawArrays(ctx context.Context, mode uint32, first, count int32) error {
	_, err := a.call(ctx, SlotDrawArrays, uint64(mode), uint64(uint32(first)), uint64(uint32(count)))
	return err
}

// Viewport sets the viewport rectangle.
func (a *API) Viewport(ctx context.Context, x, y, width, height int32) error {
	_, err := a.call(ctx, SlotViewport,
		uint64(uint32(x)), uint64(uint32(y)), uint64(uint32(width)), uint64(uint32(height)))
	return err
}

// Scissor sets the scissor rectangle.
func (a *API) Scissor(ctx context.Context, x, y, width, height int32) error {
	_, err := a.call(ctx, SlotScissor,
		uint64(uint32(x)), uint64(uint32(y)), uint64(uint32(width)), uint64(uint32(height)))
	return err
}

// LineWidth sets the rasterized line width.
func (a *API) LineWidth(ctx context.Context, width float32) error {
	_, err := a.call(ctx, SlotLineWidth, uint64(math.Float32bits(width)))
	return err
}

// Flush forces issued commands to begin execution.
func (a *API) Flush(ctx context.Context) error {
	_, err := a.call(ctx, SlotFlush)
	return err
}

// Finish blocks until issued commands complete.
func (a *API) Finish(ctx context.Context) error {
	_, err := a.call(ctx, SlotFinish)
	return err
}
