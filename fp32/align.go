package fp32

// Frame geometry for the add/normalize datapath. Operands enter the
// 64-bit frame with their leading bit at frameTop; the guard region
// below the 48 significand bits absorbs alignment shifts, and anything
// pushed past bit 0 is jammed into the sticky position.
const (
	frameGuardBits = 13
	frameTop       = 47 + frameGuardBits // 60
	frameCarry     = frameTop + 1        // 61
	frameWidth     = frameTop + 1        // 61 value bits
)

// Alignment is the aligner output: the two operands brought to a shared
// exponent, the larger one anchoring the frame.
type Alignment struct {
	// Big is the larger-exponent operand, leading bit at frameTop.
	Big uint64
	// Small is the smaller-exponent operand shifted into Big's frame.
	// Bits shifted past the frame are jammed into bit 0 as a sticky.
	Small uint64
	// Exp is the shared result exponent (the larger of the two).
	Exp int32
	// BigSign is the sign of the term anchoring the frame.
	BigSign bool
	// EffSub is true when the combination subtracts magnitudes.
	EffSub bool
	// BigIsProduct records which term anchors the frame.
	BigIsProduct bool
}

// Align brings the product and the addend to a shared exponent, the
// larger of the two, shifting the smaller operand right and collapsing
// everything shifted past the frame into a sticky bit. An exponent
// distance beyond the frame width leaves the smaller operand as a bare
// sticky contribution.
func Align(p Product, z Operand, addendSign, effSub bool) Alignment {
	big := p.Sig << frameGuardBits

	if z.Sig == 0 {
		return Alignment{
			Big:          big,
			Exp:          p.Exp,
			BigSign:      p.Sign,
			EffSub:       effSub,
			BigIsProduct: true,
		}
	}

	addend := uint64(z.Sig) << (24 + frameGuardBits)
	diff := p.Exp - z.Exp

	if diff >= 0 {
		return Alignment{
			Big:          big,
			Small:        shiftRightJam64(addend, uint(diff)),
			Exp:          p.Exp,
			BigSign:      p.Sign,
			EffSub:       effSub,
			BigIsProduct: true,
		}
	}
	return Alignment{
		Big:     addend,
		Small:   shiftRightJam64(big, uint(-diff)),
		Exp:     z.Exp,
		BigSign: addendSign,
		EffSub:  effSub,
	}
}

// shiftRightJam64 shifts v right by n, OR-reducing every shifted-out
// bit into the result's bit 0. The jam keeps inexactness and magnitude
// ordering observable after arbitrarily large alignment shifts.
func shiftRightJam64(v uint64, n uint) uint64 {
	if n == 0 {
		return v
	}
	if n >= 64 {
		if v != 0 {
			return 1
		}
		return 0
	}
	r := v >> n
	if v<<(64-n) != 0 {
		r |= 1
	}
	return r
}
