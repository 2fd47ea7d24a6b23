package fp32

// Special is the special-case resolver's verdict. When Handled is set,
// Bits and Flags override the normal-path result entirely.
type Special struct {
	Handled bool
	Bits    uint32
	Flags   Flags
}

// ResolveSpecial applies the IEEE-754 priority rules for NaN, infinity
// and invalid-operation inputs, first match wins:
//
//  1. any signaling NaN operand: canonical quiet NaN, invalid
//  2. any quiet NaN operand: that operand's pattern, quiet bit forced
//  3. an invalid combination (0 x inf in the product, or an effective
//     subtraction of two infinities): canonical quiet NaN, invalid
//  4. any infinity operand: signed infinity per the operation's signs
//
// Overflow, underflow and zero handling need computed values and are
// resolved downstream. prodSign and addendSign are the preliminary
// product sign and effective addend sign for the operation; the
// operation itself is already folded into them.
func ResolveSpecial(x, y, z Unpacked, prodSign, addendSign, effSub bool) Special {
	if x.Class == ClassSignalingNaN || y.Class == ClassSignalingNaN ||
		z.Class == ClassSignalingNaN {
		return Special{Handled: true, Bits: CanonicalNaN, Flags: FlagInvalid}
	}

	for _, u := range [3]Unpacked{x, y, z} {
		if u.Class == ClassQuietNaN {
			return Special{Handled: true, Bits: u.Bits | QuietBit}
		}
	}

	if (x.IsZero() && y.IsInf()) || (x.IsInf() && y.IsZero()) {
		return Special{Handled: true, Bits: CanonicalNaN, Flags: FlagInvalid}
	}

	prodInf := x.IsInf() || y.IsInf()
	if prodInf && z.IsInf() && effSub {
		return Special{Handled: true, Bits: CanonicalNaN, Flags: FlagInvalid}
	}
	if prodInf {
		return Special{Handled: true, Bits: packSign(prodSign, PositiveInfinity)}
	}
	if z.IsInf() {
		return Special{Handled: true, Bits: packSign(addendSign, PositiveInfinity)}
	}

	return Special{}
}
