package emu

import (
	"github.com/sarchlab/fpusim/fp32"
	"github.com/sarchlab/fpusim/insts"
)

// FCSR is the floating-point control and status register bank: a 3-bit
// rounding-mode field and the 5 sticky exception flags. The core only
// reads the rounding mode at dispatch and OR-merges flags at
// completion; clearing the flags is the owner's explicit act, never
// the core's.
type FCSR struct {
	frm    insts.RoundingMode
	fflags fp32.Flags
}

// RoundingMode returns the current dynamic rounding mode.
func (c *FCSR) RoundingMode() insts.RoundingMode {
	return c.frm
}

// SetRoundingMode sets the dynamic rounding mode field.
func (c *FCSR) SetRoundingMode(rm insts.RoundingMode) {
	c.frm = rm & 0b111
}

// Flags returns the accumulated sticky exception flags.
func (c *FCSR) Flags() fp32.Flags {
	return c.fflags
}

// MergeFlags OR-accumulates a completion's flag vector into the sticky
// flags.
func (c *FCSR) MergeFlags(f fp32.Flags) {
	c.fflags |= f
}

// ClearFlags clears the sticky flags. Only an explicit external write
// reaches this; pipeline completions never clear flags.
func (c *FCSR) ClearFlags() {
	c.fflags = 0
}

// Read returns the packed register image: rounding mode in bits [7:5],
// flags in bits [4:0].
func (c *FCSR) Read() uint32 {
	return uint32(c.frm)<<5 | uint32(c.fflags)
}

// Write replaces the whole register image.
func (c *FCSR) Write(v uint32) {
	c.frm = insts.RoundingMode(v>>5) & 0b111
	c.fflags = fp32.Flags(v & 0x1F)
}
