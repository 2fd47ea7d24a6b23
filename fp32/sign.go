package fp32

import "github.com/sarchlab/fpusim/insts"

// PreliminarySign derives the sign of the product term before the
// addition runs: the XOR of the multiplied operands' signs, complemented
// for the negating fused operations. The final result sign is settled
// by the adder once the magnitude comparison is known.
func PreliminarySign(op insts.Operation, xSign, ySign bool) bool {
	ps := xSign != ySign
	if op == insts.OpFnmadd || op == insts.OpFnmsub {
		return !ps
	}
	return ps
}

// AddendSign derives the effective sign of the addend term: the third
// operand's sign, complemented for the subtracting operations.
func AddendSign(op insts.Operation, zSign bool) bool {
	switch op {
	case insts.OpSub, insts.OpFms, insts.OpFnmadd:
		return !zSign
	}
	return zSign
}

// EffectiveSub decides whether the combination is an effective addition
// or subtraction of magnitudes. prodSign is the preliminary product
// sign from PreliminarySign; addendSign is the third operand's raw
// sign. The per-operation truth table:
//
//	Add, Fma:          sub when addend sign differs from product sign
//	Sub, Fms, Fnmadd:  sub when addend sign equals product sign
//	Fnmsub:            sub when addend sign differs from product sign
func EffectiveSub(op insts.Operation, prodSign, addendSign bool) bool {
	switch op {
	case insts.OpSub, insts.OpFms, insts.OpFnmadd:
		return addendSign == prodSign
	}
	return addendSign != prodSign
}
