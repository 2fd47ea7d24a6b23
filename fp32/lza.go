package fp32

import "math/bits"

// PredictNormShift anticipates the number of leading zeros a-b will
// have in the frame (a is the minuend, b the subtrahend, a >= b),
// without computing the difference. It analyzes the borrow pattern of
// the operand pair word-parallel:
//
//	t = a XOR b      positions where a borrow chain can end
//	z = NOT a AND b  positions that generate a borrow
//
// A position is a candidate leading-one location when the bit above it
// belongs to the borrow-active region and the position itself does not
// generate a borrow. The prediction is deliberately one-sided: it never
// overshoots the true shift, but may undershoot by exactly one, which
// CorrectShift repairs after the real difference is available.
func PredictNormShift(a, b uint64) uint32 {
	t := a ^ b
	z := ^a & b
	f := (t >> 1) &^ z
	if f == 0 {
		return frameWidth - 1
	}

	lead := uint32(bits.Len64(f) - 1)
	return frameTop - 1 - lead
}
