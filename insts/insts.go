// Package insts provides floating-point operation definitions and dispatch
// field decoding for the FMA execution core.
package insts

// Operation identifies one of the seven operations the FMA core executes.
// Every operation is evaluated as X*Y+Z with a per-operation sign rule;
// ADD/SUB and MUL synthesize the missing operand at dispatch.
type Operation uint8

// Operations.
const (
	OpAdd Operation = iota
	OpSub
	OpMul
	OpFma    // X*Y + Z
	OpFms    // X*Y - Z
	OpFnmsub // -(X*Y) + Z
	OpFnmadd // -(X*Y) - Z
)

// String returns the assembler-style mnemonic for the operation.
func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "fadd"
	case OpSub:
		return "fsub"
	case OpMul:
		return "fmul"
	case OpFma:
		return "fmadd"
	case OpFms:
		return "fmsub"
	case OpFnmsub:
		return "fnmsub"
	case OpFnmadd:
		return "fnmadd"
	}
	return "unknown"
}

// UsesAddend returns true if the operation reads a third source register.
// ADD/SUB/MUL synthesize their missing operand and read only two.
func (op Operation) UsesAddend() bool {
	switch op {
	case OpFma, OpFms, OpFnmsub, OpFnmadd:
		return true
	}
	return false
}

// RoundingMode selects one of the five IEEE-754 rounding modes, or the
// dynamic encoding that defers to the rounding-mode CSR at dispatch.
type RoundingMode uint8

// Rounding modes, in the 3-bit rm field encoding.
const (
	RNE RoundingMode = 0b000 // Round to nearest, ties to even
	RTZ RoundingMode = 0b001 // Round toward zero
	RDN RoundingMode = 0b010 // Round down (toward -infinity)
	RUP RoundingMode = 0b011 // Round up (toward +infinity)
	RMM RoundingMode = 0b100 // Round to nearest, ties to max magnitude

	// DynamicRM is the reserved encoding that selects the CSR rounding mode.
	DynamicRM RoundingMode = 0b111
)

// String returns the conventional name of the rounding mode.
func (rm RoundingMode) String() string {
	switch rm {
	case RNE:
		return "rne"
	case RTZ:
		return "rtz"
	case RDN:
		return "rdn"
	case RUP:
		return "rup"
	case RMM:
		return "rmm"
	case DynamicRM:
		return "dyn"
	}
	return "reserved"
}

// OpClass is the operation-class field supplied by the external
// instruction decode each issue cycle.
type OpClass uint8

// Operation classes.
const (
	ClassAdd OpClass = iota
	ClassSub
	ClassMul
	ClassFused // one of the four FMA variants, selected by FMAVariant
)

// FMAVariant is the 2-bit variant field that selects among the four
// fused operations when the class is ClassFused.
type FMAVariant uint8

// FMA variants, in opcode[3:2] encoding order.
const (
	VariantFmadd  FMAVariant = 0b00
	VariantFmsub  FMAVariant = 0b01
	VariantFnmsub FMAVariant = 0b10
	VariantFnmadd FMAVariant = 0b11
)

// Request carries the per-issue fields the external instruction decode
// supplies: the operation selection, the explicit rounding-mode field,
// the three source register indices, and the destination register.
type Request struct {
	// Class is the operation-class field.
	Class OpClass

	// Variant selects the fused operation when Class is ClassFused.
	Variant FMAVariant

	// RM is the explicit 3-bit rounding-mode field. DynamicRM defers
	// to the CSR rounding mode sampled at dispatch.
	RM RoundingMode

	// Src1, Src2, Src3 are the source register indices. Src3 is read
	// only by the fused operations.
	Src1, Src2, Src3 uint8

	// Dest is the destination register index.
	Dest uint8
}
