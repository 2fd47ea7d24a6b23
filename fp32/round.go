package fp32

import "github.com/sarchlab/fpusim/insts"

// RoundOutcome is the rounder's packed result plus its status bits.
type RoundOutcome struct {
	Bits      uint32
	Inexact   bool
	Overflow  bool
	Underflow bool
}

// Frame bit positions of the retained mantissa window: with the leading
// bit at frameTop, the 24-bit mantissa occupies [frameTop:mantShift],
// guard and round sit just below, and everything further down is sticky.
const (
	mantShift  = frameTop - 23 // 37
	guardShift = mantShift - 1 // 36
	roundShift = mantShift - 2 // 35
	stickyMask = (uint64(1) << roundShift) - 1
)

// Round applies the selected rounding mode to a normalized frame value
// and packs the result. Results below the normal range are first
// denormalized with a jamming right shift (gradual underflow), so
// subnormal outputs round exactly like normal ones. Overflow saturates
// per mode. Underflow reports tininess detected after rounding,
// together with inexactness.
func Round(n Normalized, mode insts.RoundingMode) RoundOutcome {
	sig := n.Sig
	exp := n.Exp

	tiny := false
	if exp < ExpMin {
		shift := uint(ExpMin - exp)
		sig = shiftRightJam64(sig, shift)
		exp = ExpMin
		tiny = true
	}

	mant := uint32(sig >> mantShift)
	guard := sig&(1<<guardShift) != 0
	round := sig&(1<<roundShift) != 0
	sticky := sig&stickyMask != 0
	inexact := guard || round || sticky

	if roundUp(mode, n.Sign, mant&1 != 0, guard, round, sticky) {
		mant++
		if mant == 1<<24 {
			mant >>= 1
			exp++
		}
	}

	o := RoundOutcome{Inexact: inexact}

	if mant >= implicitBit {
		biased := exp + ExpBias
		if biased >= 255 {
			return overflowOutcome(n.Sign, mode)
		}
		o.Bits = Pack(n.Sign, uint8(biased), mant)
		return o
	}

	// Subnormal or zero result.
	o.Bits = Pack(n.Sign, 0, mant)
	o.Underflow = tiny && inexact
	return o
}

// roundUp decides whether the retained mantissa is incremented, from
// the sign, the retained LSB, and the guard/round/sticky bits.
func roundUp(mode insts.RoundingMode, sign, lsb, guard, round, sticky bool) bool {
	switch mode {
	case insts.RNE:
		return guard && (round || sticky || lsb)
	case insts.RTZ:
		return false
	case insts.RDN:
		return sign && (guard || round || sticky)
	case insts.RUP:
		return !sign && (guard || round || sticky)
	case insts.RMM:
		return guard
	}
	return false
}

// overflowOutcome saturates an overflowed result per rounding mode:
// the nearest modes produce infinity, round-toward-zero the maximum
// finite value, and the directed modes saturate toward their direction.
func overflowOutcome(sign bool, mode insts.RoundingMode) RoundOutcome {
	o := RoundOutcome{Inexact: true, Overflow: true}

	toInf := true
	switch mode {
	case insts.RTZ:
		toInf = false
	case insts.RDN:
		toInf = sign
	case insts.RUP:
		toInf = !sign
	}

	if toInf {
		o.Bits = packSign(sign, PositiveInfinity)
	} else {
		o.Bits = packSign(sign, MaxFinite)
	}
	return o
}
