package fp32

// Sum is the raw adder output: an unsigned magnitude in the frame, the
// resolved sign, and the shared exponent. The guard/round/sticky bits
// live in the magnitude's low-order bits until the rounder extracts
// them; the sticky contribution from alignment is already jammed into
// bit 0 of the smaller operand.
type Sum struct {
	Mag  uint64
	Sign bool
	Exp  int32
}

// AddAligned performs the signed addition or subtraction of the two
// aligned frame operands. Effective additions may carry into the bit
// above the frame top, which the normalizer absorbs. For effective
// subtractions a negative raw difference is negated and the result
// sign flipped, so the magnitude path downstream never sees a
// two's-complement value.
func AddAligned(al Alignment) Sum {
	if !al.EffSub {
		return Sum{Mag: al.Big + al.Small, Sign: al.BigSign, Exp: al.Exp}
	}
	if al.Big >= al.Small {
		return Sum{Mag: al.Big - al.Small, Sign: al.BigSign, Exp: al.Exp}
	}
	return Sum{Mag: al.Small - al.Big, Sign: !al.BigSign, Exp: al.Exp}
}
