// Package fp32 implements the single-precision floating-point datapath of
// the FMA execution core: unpack/classify, significand multiply, addend
// alignment, leading-zero anticipation, raw addition, normalization with
// shift correction, rounding, packing, and special-case resolution.
//
// All functions are pure; the timing model in timing/pipeline decides
// when their results become architecturally visible.
package fp32

import "math/bits"

// Field masks and well-known bit patterns of the 32-bit encoding.
const (
	// SignMask selects the sign bit.
	SignMask uint32 = 0x80000000
	// ExpMask selects the 8-bit biased exponent field.
	ExpMask uint32 = 0x7F800000
	// FracMask selects the 23-bit fraction field.
	FracMask uint32 = 0x007FFFFF
	// QuietBit is the top fraction bit; set for quiet NaNs.
	QuietBit uint32 = 0x00400000

	// CanonicalNaN is the canonical quiet NaN pattern.
	CanonicalNaN uint32 = 0x7FC00000
	// PositiveInfinity and NegativeInfinity are the infinity encodings.
	PositiveInfinity uint32 = 0x7F800000
	NegativeInfinity uint32 = 0xFF800000
	// MaxFinite is the largest finite magnitude (without sign).
	MaxFinite uint32 = 0x7F7FFFFF
	// One is the encoding of +1.0.
	One uint32 = 0x3F800000

	// ExpBias is the single-precision exponent bias.
	ExpBias = 127
	// ExpMin is the smallest unbiased exponent of a normal number.
	ExpMin = -126

	// implicitBit is the hidden leading significand bit of normals.
	implicitBit uint32 = 0x00800000
)

// Class is the derived classification of a 32-bit pattern.
type Class uint8

// Classifications.
const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInfinity
	ClassQuietNaN
	ClassSignalingNaN
)

// String returns the classification name.
func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	case ClassInfinity:
		return "infinity"
	case ClassQuietNaN:
		return "qnan"
	case ClassSignalingNaN:
		return "snan"
	}
	return "invalid"
}

// Unpacked is a decoded 32-bit pattern: sign, biased exponent, the
// 24-bit significand with the implicit bit folded in where the
// classification calls for one, and the derived class.
type Unpacked struct {
	// Bits is the original 32-bit pattern.
	Bits uint32
	// Sign is true for negative patterns.
	Sign bool
	// Exp is the biased exponent field (0-255).
	Exp uint8
	// Sig is the 24-bit significand: 1.fraction for normals and NaNs,
	// 0.fraction for subnormals, 0 for zeros and infinities.
	Sig uint32
	// Class is the derived classification.
	Class Class
}

// Unpack decodes a 32-bit pattern. Pure function, no side effects.
func Unpack(b uint32) Unpacked {
	u := Unpacked{
		Bits: b,
		Sign: b&SignMask != 0,
		Exp:  uint8((b & ExpMask) >> 23),
	}
	frac := b & FracMask

	switch {
	case u.Exp == 0 && frac == 0:
		u.Class = ClassZero
	case u.Exp == 0:
		u.Class = ClassSubnormal
		u.Sig = frac
	case u.Exp == 255 && frac == 0:
		u.Class = ClassInfinity
	case u.Exp == 255 && frac&QuietBit != 0:
		u.Class = ClassQuietNaN
		u.Sig = implicitBit | frac
	case u.Exp == 255:
		u.Class = ClassSignalingNaN
		u.Sig = implicitBit | frac
	default:
		u.Class = ClassNormal
		u.Sig = implicitBit | frac
	}
	return u
}

// IsNaN returns true for quiet and signaling NaNs.
func (u Unpacked) IsNaN() bool {
	return u.Class == ClassQuietNaN || u.Class == ClassSignalingNaN
}

// IsZero returns true for positive and negative zero.
func (u Unpacked) IsZero() bool { return u.Class == ClassZero }

// IsInf returns true for positive and negative infinity.
func (u Unpacked) IsInf() bool { return u.Class == ClassInfinity }

// Fraction returns the 23-bit fraction field without the implicit bit.
func (u Unpacked) Fraction() uint32 { return u.Bits & FracMask }

// Pack reassembles sign, biased exponent, and 23-bit mantissa into the
// 32-bit encoding. The implicit bit is the caller's concern: only the
// low 23 bits of mant are kept.
func Pack(sign bool, exp uint8, mant uint32) uint32 {
	b := uint32(exp)<<23 | mant&FracMask
	if sign {
		b |= SignMask
	}
	return b
}

// packSign applies a sign to a magnitude pattern.
func packSign(sign bool, magnitude uint32) uint32 {
	if sign {
		return magnitude | SignMask
	}
	return magnitude
}

// Operand is a finite nonzero value normalized for arithmetic:
// value = Sig * 2^(Exp-23) with Sig in [2^23, 2^24). Subnormal inputs
// are normalized here, off the critical path, so the downstream
// datapath only ever sees a leading one at bit 23. A zero operand is
// represented with Sig == 0.
type Operand struct {
	Sign bool
	Exp  int32
	Sig  uint32
}

// ArithOperand converts an unpacked finite value into its normalized
// arithmetic form.
func ArithOperand(u Unpacked) Operand {
	op := Operand{Sign: u.Sign}

	switch u.Class {
	case ClassNormal:
		op.Exp = int32(u.Exp) - ExpBias
		op.Sig = u.Sig
	case ClassSubnormal:
		shift := int32(bits.LeadingZeros32(u.Sig)) - 8
		op.Sig = u.Sig << shift
		op.Exp = ExpMin - shift
	}
	return op
}

// IsZero returns true for the zero operand.
func (o Operand) IsZero() bool { return o.Sig == 0 }
