package fp32

import "github.com/sarchlab/fpusim/insts"

// Result is a completed operation: the packed 32-bit pattern and the
// exception flags it raised.
type Result struct {
	Bits  uint32
	Flags Flags
}

// Compute evaluates one operation over packed operands with a single
// rounding step, composing the datapath stages in pipeline order:
// unpack and sign resolution, significand multiply, addend alignment,
// add with leading-zero anticipation, normalization with shift
// correction, rounding, packing, and special-case override. It is a
// total function over all bit patterns.
func Compute(op insts.Operation, xb, yb, zb uint32, mode insts.RoundingMode) Result {
	x := Unpack(xb)
	y := Unpack(yb)
	z := Unpack(zb)

	prodSign := PreliminarySign(op, x.Sign, y.Sign)
	addendSign := AddendSign(op, z.Sign)
	effSub := EffectiveSub(op, prodSign, z.Sign)

	if sp := ResolveSpecial(x, y, z, prodSign, addendSign, effSub); sp.Handled {
		return Result{Bits: sp.Bits, Flags: sp.Flags}
	}

	// Degenerate zero paths. A zero product leaves the addend (or a
	// signed zero) as the exact result; a zero addend falls through to
	// the datapath, where it aligns to nothing.
	if x.IsZero() || y.IsZero() {
		if z.IsZero() {
			return Result{Bits: zeroSum(prodSign, addendSign, mode)}
		}
		return Result{Bits: packSign(addendSign, zb&^SignMask)}
	}

	prod := MultiplySig(prodSign, ArithOperand(x), ArithOperand(y))
	al := Align(prod, ArithOperand(z), addendSign, effSub)

	var predShift uint32
	if al.EffSub && al.Small != 0 {
		if al.Big >= al.Small {
			predShift = PredictNormShift(al.Big, al.Small)
		} else {
			predShift = PredictNormShift(al.Small, al.Big)
		}
	}

	sum := AddAligned(al)
	if sum.Mag == 0 {
		// Exact cancellation: signed zero by rounding direction.
		return Result{Bits: cancellationZero(mode)}
	}

	n := CorrectShift(Normalize(sum, al.EffSub, predShift))
	outcome := Round(n, mode)
	return Result{Bits: outcome.Bits, Flags: ResultFlags(outcome)}
}

// zeroSum resolves the sign of a zero-plus-zero result: equal signs
// keep the sign, opposite signs give +0 except under round-down.
func zeroSum(prodSign, addendSign bool, mode insts.RoundingMode) uint32 {
	if prodSign == addendSign {
		return packSign(prodSign, 0)
	}
	return cancellationZero(mode)
}

// cancellationZero is the zero produced by exact cancellation of equal
// magnitudes: +0 in every mode except round-down, which gives -0.
func cancellationZero(mode insts.RoundingMode) uint32 {
	if mode == insts.RDN {
		return SignMask
	}
	return 0
}
