package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/fpusim/insts"
)

var _ = Describe("Decoder", func() {
	var d *insts.Decoder

	BeforeEach(func() {
		d = insts.NewDecoder()
	})

	Context("when decoding the operation", func() {
		It("should map the scalar classes directly", func() {
			Expect(d.DecodeOperation(insts.ClassAdd, 0)).To(Equal(insts.OpAdd))
			Expect(d.DecodeOperation(insts.ClassSub, 0)).To(Equal(insts.OpSub))
			Expect(d.DecodeOperation(insts.ClassMul, 0)).To(Equal(insts.OpMul))
		})

		It("should select the fused operation by variant", func() {
			Expect(d.DecodeOperation(insts.ClassFused, insts.VariantFmadd)).
				To(Equal(insts.OpFma))
			Expect(d.DecodeOperation(insts.ClassFused, insts.VariantFmsub)).
				To(Equal(insts.OpFms))
			Expect(d.DecodeOperation(insts.ClassFused, insts.VariantFnmsub)).
				To(Equal(insts.OpFnmsub))
			Expect(d.DecodeOperation(insts.ClassFused, insts.VariantFnmadd)).
				To(Equal(insts.OpFnmadd))
		})

		It("should fall back to add on malformed encodings", func() {
			Expect(d.DecodeOperation(insts.OpClass(99), 0)).To(Equal(insts.OpAdd))
			Expect(d.DecodeOperation(insts.ClassFused, insts.FMAVariant(7))).
				To(Equal(insts.OpAdd))
		})
	})

	Context("when resolving the rounding mode", func() {
		It("should pass an explicit mode through", func() {
			Expect(d.ResolveRoundingMode(insts.RTZ, insts.RUP)).To(Equal(insts.RTZ))
		})

		It("should substitute the CSR mode for the dynamic encoding", func() {
			Expect(d.ResolveRoundingMode(insts.DynamicRM, insts.RDN)).
				To(Equal(insts.RDN))
		})

		It("should resolve reserved encodings to nearest-even", func() {
			Expect(d.ResolveRoundingMode(insts.RoundingMode(0b101), insts.RUP)).
				To(Equal(insts.RNE))
			Expect(d.ResolveRoundingMode(insts.DynamicRM, insts.RoundingMode(0b110))).
				To(Equal(insts.RNE))
		})
	})

	Context("when routing operands", func() {
		It("should synthesize the unit multiplicand for add and sub", func() {
			x, y, z := d.RouteOperands(insts.OpAdd, 0x40000000, 0x40400000, 0xDEAD)
			Expect(x).To(Equal(uint32(0x3F800000)))
			Expect(y).To(Equal(uint32(0x40000000)))
			Expect(z).To(Equal(uint32(0x40400000)))
		})

		It("should synthesize a product-signed zero addend for mul", func() {
			x, y, z := d.RouteOperands(insts.OpMul, 0xBF800000, 0x40000000, 0xDEAD)
			Expect(x).To(Equal(uint32(0xBF800000)))
			Expect(y).To(Equal(uint32(0x40000000)))
			Expect(z).To(Equal(uint32(0x80000000)))

			_, _, z = d.RouteOperands(insts.OpMul, 0xBF800000, 0xC0000000, 0)
			Expect(z).To(Equal(uint32(0)))
		})

		It("should pass all three operands through for the fused operations", func() {
			for _, op := range []insts.Operation{
				insts.OpFma, insts.OpFms, insts.OpFnmsub, insts.OpFnmadd,
			} {
				x, y, z := d.RouteOperands(op, 1, 2, 3)
				Expect([3]uint32{x, y, z}).To(Equal([3]uint32{1, 2, 3}))
			}
		})
	})
})

var _ = Describe("Operation", func() {
	It("should report addend usage only for the fused operations", func() {
		Expect(insts.OpAdd.UsesAddend()).To(BeFalse())
		Expect(insts.OpSub.UsesAddend()).To(BeFalse())
		Expect(insts.OpMul.UsesAddend()).To(BeFalse())
		Expect(insts.OpFma.UsesAddend()).To(BeTrue())
		Expect(insts.OpFnmadd.UsesAddend()).To(BeTrue())
	})

	It("should print assembler-style mnemonics", func() {
		Expect(insts.OpFnmsub.String()).To(Equal("fnmsub"))
		Expect(insts.Operation(200).String()).To(Equal("unknown"))
	})
})
