// Package pipeline provides the cycle-accurate model of the FMA
// execution pipeline: single-issue intake, a fixed-latency in-flight
// window, the per-register scoreboard, and forwarding resolution.
package pipeline

import "github.com/sarchlab/fpusim/fp32"

// MemMirror describes whatever sits in the surrounding pipeline's
// memory mirror stage this cycle: the destination register and whether
// it will write the floating-point register file. The forwarding
// resolver consumes it; the FMA pipeline refreshes it every tick from
// its own in-flight window.
type MemMirror struct {
	// Valid indicates the mirror holds a live operation.
	Valid bool

	// Rd is the destination register index.
	Rd uint8

	// FPRegWrite is true when the operation will write the FP register
	// file.
	FPRegWrite bool

	// Value is the result available for forwarding.
	Value uint32

	// Flags are the exception flags traveling with the result.
	Flags fp32.Flags
}

// Clear resets the mirror to empty state.
func (m *MemMirror) Clear() {
	m.Valid = false
	m.Rd = 0
	m.FPRegWrite = false
	m.Value = 0
	m.Flags = 0
}

// WbMirror describes whatever sits in the writeback mirror stage this
// cycle.
type WbMirror struct {
	// Valid indicates the mirror holds a live operation.
	Valid bool

	// Rd is the destination register index.
	Rd uint8

	// FPRegWrite is true when the operation will write the FP register
	// file.
	FPRegWrite bool

	// Value is the result available for forwarding.
	Value uint32

	// Flags are the exception flags traveling with the result.
	Flags fp32.Flags
}

// Clear resets the mirror to empty state.
func (w *WbMirror) Clear() {
	w.Valid = false
	w.Rd = 0
	w.FPRegWrite = false
	w.Value = 0
	w.Flags = 0
}
