package fp32_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fpusim/fp32"
	"github.com/sarchlab/fpusim/insts"
)

func f32(v float32) uint32 {
	return math.Float32bits(v)
}

var allModes = []insts.RoundingMode{
	insts.RNE, insts.RTZ, insts.RDN, insts.RUP, insts.RMM,
}

var _ = Describe("Compute", func() {
	Context("with exact arithmetic", func() {
		It("should compute a fused multiply-add", func() {
			r := fp32.Compute(insts.OpFma, f32(2), f32(3), f32(4), insts.RNE)
			Expect(r.Bits).To(Equal(uint32(0x41200000))) // 10.0
			Expect(r.Flags).To(Equal(fp32.Flags(0)))
		})

		It("should compute the fused variants", func() {
			cases := []struct {
				op   insts.Operation
				want float32
			}{
				{insts.OpFma, 10},     // 2*3+4
				{insts.OpFms, 2},      // 2*3-4
				{insts.OpFnmsub, -2},  // -(2*3)+4
				{insts.OpFnmadd, -10}, // -(2*3)-4
			}
			for _, c := range cases {
				r := fp32.Compute(c.op, f32(2), f32(3), f32(4), insts.RNE)
				Expect(r.Bits).To(Equal(f32(c.want)), c.op.String())
				Expect(r.Flags).To(Equal(fp32.Flags(0)), c.op.String())
			}
		})

		It("should add and subtract through the unit product", func() {
			r := fp32.Compute(insts.OpAdd, fp32.One, f32(1.5), f32(2.25), insts.RNE)
			Expect(r.Bits).To(Equal(f32(3.75)))

			r = fp32.Compute(insts.OpSub, fp32.One, f32(1.5), f32(2.25), insts.RNE)
			Expect(r.Bits).To(Equal(f32(-0.75)))
		})

		It("should return the other operand when adding zero, in every mode", func() {
			patterns := []uint32{
				f32(1.0), f32(-2.5), 0x00000001, 0x00080000,
				0x7F7FFFFF, 0x00800000,
			}
			for _, p := range patterns {
				for _, mode := range allModes {
					r := fp32.Compute(insts.OpAdd, fp32.One, p, 0, mode)
					Expect(r.Bits).To(Equal(p))
					Expect(r.Flags).To(Equal(fp32.Flags(0)))
				}
			}
		})

		It("should multiply exactly representable products without flags", func() {
			r := fp32.Compute(insts.OpMul, f32(1.5), f32(4), 0, insts.RNE)
			Expect(r.Bits).To(Equal(f32(6)))
			Expect(r.Flags).To(Equal(fp32.Flags(0)))
		})
	})

	Context("with signed zeros", func() {
		It("should give -0 for a negative exact product of zero", func() {
			// -1.0 * +0.0 keeps the product sign on the zero.
			r := fp32.Compute(insts.OpMul, f32(-1), 0, 0x80000000, insts.RNE)
			Expect(r.Bits).To(Equal(uint32(0x80000000)))
		})

		It("should resolve exact cancellation to +0 except under round-down", func() {
			for _, mode := range allModes {
				r := fp32.Compute(insts.OpAdd, fp32.One, f32(1), f32(-1), mode)
				if mode == insts.RDN {
					Expect(r.Bits).To(Equal(uint32(0x80000000)))
				} else {
					Expect(r.Bits).To(Equal(uint32(0)))
				}
				Expect(r.Flags).To(Equal(fp32.Flags(0)))
			}
		})

		It("should keep the common sign when summing like-signed zeros", func() {
			r := fp32.Compute(insts.OpAdd, fp32.One, 0x80000000, 0x80000000, insts.RNE)
			Expect(r.Bits).To(Equal(uint32(0x80000000)))

			r = fp32.Compute(insts.OpSub, fp32.One, 0, 0x80000000, insts.RNE)
			Expect(r.Bits).To(Equal(uint32(0)))
		})
	})

	Context("with NaN operands", func() {
		It("should quiet a signaling NaN to the canonical pattern with invalid", func() {
			snan := uint32(0x7F800001)
			r := fp32.Compute(insts.OpAdd, fp32.One, snan, f32(1), insts.RNE)
			Expect(r.Bits).To(Equal(fp32.CanonicalNaN))
			Expect(r.Flags).To(Equal(fp32.FlagInvalid))
		})

		It("should propagate the first quiet NaN payload in operand order", func() {
			qnanX := uint32(0x7FC12345)
			qnanZ := uint32(0xFFC54321)
			r := fp32.Compute(insts.OpFma, qnanX, f32(1), qnanZ, insts.RNE)
			Expect(r.Bits).To(Equal(qnanX))
			Expect(r.Flags).To(Equal(fp32.Flags(0)))

			r = fp32.Compute(insts.OpFma, f32(1), f32(1), qnanZ, insts.RNE)
			Expect(r.Bits).To(Equal(qnanZ))
			Expect(r.Flags).To(Equal(fp32.Flags(0)))
		})

		It("should prefer the signaling NaN verdict over a quiet payload", func() {
			r := fp32.Compute(insts.OpFma, 0x7FC12345, 0x7F800001, f32(1), insts.RNE)
			Expect(r.Bits).To(Equal(fp32.CanonicalNaN))
			Expect(r.Flags).To(Equal(fp32.FlagInvalid))
		})
	})

	Context("with infinities", func() {
		It("should flag zero times infinity as invalid", func() {
			r := fp32.Compute(insts.OpMul, fp32.PositiveInfinity, 0, 0x80000000, insts.RNE)
			Expect(r.Bits).To(Equal(fp32.CanonicalNaN))
			Expect(r.Flags).To(Equal(fp32.FlagInvalid))
		})

		It("should add like-signed infinities without flags", func() {
			r := fp32.Compute(insts.OpAdd, fp32.One,
				fp32.PositiveInfinity, fp32.PositiveInfinity, insts.RNE)
			Expect(r.Bits).To(Equal(fp32.PositiveInfinity))
			Expect(r.Flags).To(Equal(fp32.Flags(0)))

			r = fp32.Compute(insts.OpAdd, fp32.One,
				fp32.NegativeInfinity, fp32.NegativeInfinity, insts.RNE)
			Expect(r.Bits).To(Equal(fp32.NegativeInfinity))
		})

		It("should flag the effective subtraction of infinities as invalid", func() {
			r := fp32.Compute(insts.OpAdd, fp32.One,
				fp32.PositiveInfinity, fp32.NegativeInfinity, insts.RNE)
			Expect(r.Bits).To(Equal(fp32.CanonicalNaN))
			Expect(r.Flags).To(Equal(fp32.FlagInvalid))

			r = fp32.Compute(insts.OpSub, fp32.One,
				fp32.PositiveInfinity, fp32.PositiveInfinity, insts.RNE)
			Expect(r.Bits).To(Equal(fp32.CanonicalNaN))
			Expect(r.Flags).To(Equal(fp32.FlagInvalid))
		})

		It("should carry the negated product sign onto an infinite result", func() {
			r := fp32.Compute(insts.OpFnmadd, fp32.PositiveInfinity, f32(1), f32(5),
				insts.RNE)
			Expect(r.Bits).To(Equal(fp32.NegativeInfinity))
		})

		It("should absorb a finite product into an infinite addend", func() {
			r := fp32.Compute(insts.OpFma, f32(2), f32(3), fp32.NegativeInfinity,
				insts.RNE)
			Expect(r.Bits).To(Equal(fp32.NegativeInfinity))
			Expect(r.Flags).To(Equal(fp32.Flags(0)))
		})
	})

	Context("with subnormal values", func() {
		It("should produce exact subnormal results without flags", func() {
			// 2^-100 * 2^-30 = 2^-130, exactly representable subnormal.
			r := fp32.Compute(insts.OpMul, 0x0D800000, 0x30800000, 0, insts.RNE)
			Expect(r.Bits).To(Equal(uint32(0x00080000)))
			Expect(r.Flags).To(Equal(fp32.Flags(0)))
		})

		It("should normalize subnormal inputs before multiplying", func() {
			// 2^-140 (subnormal) * 2^127 = 2^-13.
			r := fp32.Compute(insts.OpMul, 0x00000200, 0x7F000000, 0, insts.RNE)
			Expect(r.Bits).To(Equal(f32(float32(math.Ldexp(1, -13)))))
			Expect(r.Flags).To(Equal(fp32.Flags(0)))
		})

		It("should flag underflow when an inexact result is tiny", func() {
			// 2^-126 * 2^-24 = 2^-150, below the subnormal range; the
			// even-tie rounds to zero.
			r := fp32.Compute(insts.OpMul, 0x00800000, 0x33800000, 0, insts.RNE)
			Expect(r.Bits).To(Equal(uint32(0)))
			Expect(r.Flags).To(Equal(fp32.FlagUnderflow | fp32.FlagInexact))
		})

		It("should round 2^-150 up to the smallest subnormal under round-up", func() {
			r := fp32.Compute(insts.OpMul, 0x00800000, 0x33800000, 0, insts.RUP)
			Expect(r.Bits).To(Equal(uint32(0x00000001)))
			Expect(r.Flags).To(Equal(fp32.FlagUnderflow | fp32.FlagInexact))
		})

		It("should not flag underflow for exact tiny results", func() {
			// 2^-126 * 2^-1 = 2^-127, exact subnormal.
			r := fp32.Compute(insts.OpMul, 0x00800000, f32(0.5), 0, insts.RNE)
			Expect(r.Bits).To(Equal(uint32(0x00400000)))
			Expect(r.Flags).To(Equal(fp32.Flags(0)))
		})
	})

	Context("with heavy cancellation", func() {
		It("should cancel down to a single ulp exactly", func() {
			// 1.0 - (1.0 - 2^-24) = 2^-24 exactly.
			r := fp32.Compute(insts.OpSub, fp32.One, f32(1), 0x3F7FFFFF, insts.RNE)
			Expect(r.Bits).To(Equal(f32(float32(math.Ldexp(1, -24)))))
			Expect(r.Flags).To(Equal(fp32.Flags(0)))
		})

		It("should cancel a product against a nearby addend exactly", func() {
			// 1.5*1.5 - 2.25 = 0, 1.5*1.5 - 2.0 = 0.25.
			r := fp32.Compute(insts.OpFms, f32(1.5), f32(1.5), f32(2.25), insts.RNE)
			Expect(r.Bits).To(Equal(uint32(0)))

			r = fp32.Compute(insts.OpFms, f32(1.5), f32(1.5), f32(2), insts.RNE)
			Expect(r.Bits).To(Equal(f32(0.25)))
			Expect(r.Flags).To(Equal(fp32.Flags(0)))
		})
	})

	Context("with a commutative multiply", func() {
		It("should give identical results with the factors swapped", func() {
			pairs := [][2]uint32{
				{f32(1.5), f32(-3.25)},
				{0x00000001, f32(2)},
				{0x7F7FFFFF, f32(1.0000001)},
				{0x00800000, 0x00400000},
			}
			for _, p := range pairs {
				zSign := (p[0] ^ p[1]) & fp32.SignMask
				a := fp32.Compute(insts.OpMul, p[0], p[1], zSign, insts.RNE)
				b := fp32.Compute(insts.OpMul, p[1], p[0], zSign, insts.RNE)
				Expect(a).To(Equal(b))
			}
		})
	})
})
