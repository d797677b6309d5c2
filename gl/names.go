package gl

import "github.com/openbindings/gl-dispatch/nametable"

// Slot constants index the name table and every binding set built from
// it. Order must match the names list below; both are emitted together
// by the generator.
const (
	SlotClear = iota
	SlotClearColor
	SlotDisable
	SlotDrawArrays
	SlotEnable
	SlotFinish
	SlotFlush
	SlotGetError
	SlotLineWidth
	SlotScissor
	SlotViewport
	slotCount
)

var names = [slotCount]string{
	SlotClear:      "glClear",
	SlotClearColor: "glClearColor",
	SlotDisable:    "glDisable",
	SlotDrawArrays: "glDrawArrays",
	SlotEnable:     "glEnable",
	SlotFinish:     "glFinish",
	SlotFlush:      "glFlush",
	SlotGetError:   "glGetError",
	SlotLineWidth:  "glLineWidth",
	SlotScissor:    "glScissor",
	SlotViewport:   "glViewport",
}

// apiTable is the process-lifetime table for this surface, shared by
// reference across every binding set.
var apiTable = nametable.New(names[:])

// Table returns the name table for this API surface.
func Table() *nametable.Table {
	return apiTable
}

// Names returns the canonical entry-point name list in slot order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

// Capability and state enums used by the sample wrappers.
const (
	ColorBufferBit   uint32 = 0x00004000
	DepthBufferBit   uint32 = 0x00000100
	StencilBufferBit uint32 = 0x00000400

	Blend       uint32 = 0x0BE2
	DepthTest   uint32 = 0x0B71
	ScissorTest uint32 = 0x0C11

	Triangles uint32 = 0x0004
	Lines     uint32 = 0x0001

	NoError uint32 = 0
)
