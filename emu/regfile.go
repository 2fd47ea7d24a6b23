// Package emu provides the architectural floating-point state: the
// 32-entry register file and the floating-point control/status register.
package emu

// RegFile is the floating-point register file: 32 general registers,
// triple read port, single write port. Unlike an integer register
// file, no register is hardwired to zero; all 32 are ordinary
// read/write state.
type RegFile struct {
	// F holds the packed single-precision register values f0-f31.
	F [32]uint32
}

// Read returns a register value. Out-of-range indices read as zero so
// the read path stays total.
func (r *RegFile) Read(reg uint8) uint32 {
	if reg >= 32 {
		return 0
	}
	return r.F[reg]
}

// Write stores a value into a register. Out-of-range writes are ignored.
func (r *RegFile) Write(reg uint8, value uint32) {
	if reg >= 32 {
		return
	}
	r.F[reg] = value
}

// ReadOperands reads the three source operands in one cycle, modeling
// the triple read port.
func (r *RegFile) ReadOperands(r1, r2, r3 uint8) (v1, v2, v3 uint32) {
	return r.Read(r1), r.Read(r2), r.Read(r3)
}

// Reset clears all registers.
func (r *RegFile) Reset() {
	r.F = [32]uint32{}
}
