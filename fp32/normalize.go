package fp32

// Normalized is a frame value positioned for rounding: leading bit at
// frameTop (except when the anticipated shift undershot by one, which
// CorrectShift repairs), with the exponent adjusted to match.
type Normalized struct {
	Sig  uint64
	Exp  int32
	Sign bool
}

// Normalize positions the raw sum for rounding. A carry out of the
// frame top (effective additions only) costs a one-bit right shift
// with the dropped bit jammed sticky and an exponent increment.
// Effective subtractions shift left by the anticipated count and
// decrement the exponent accordingly; effective additions never shift
// left because both operands enter the frame normalized.
func Normalize(s Sum, effSub bool, predShift uint32) Normalized {
	n := Normalized{Sig: s.Mag, Exp: s.Exp, Sign: s.Sign}

	if n.Sig&(1<<frameCarry) != 0 {
		n.Sig = (n.Sig >> 1) | (n.Sig & 1)
		n.Exp++
		return n
	}
	if effSub && predShift > 0 {
		n.Sig <<= predShift
		n.Exp -= int32(predShift)
	}
	return n
}

// CorrectShift fixes the anticipator's one-bit undershoot: if the
// leading bit is still zero after the predicted shift, shift left one
// more position and decrement the exponent. A zero magnitude passes
// through untouched; the caller resolves exact cancellation before the
// normalizer runs.
func CorrectShift(n Normalized) Normalized {
	if n.Sig != 0 && n.Sig&(1<<frameTop) == 0 {
		n.Sig <<= 1
		n.Exp--
	}
	return n
}
