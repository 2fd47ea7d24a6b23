package fp32

// Product is the significand product, renormalized so its leading bit
// sits at position 47: value = Sig * 2^(Exp-47). A zero product has
// Sig == 0.
type Product struct {
	Sign bool
	Exp  int32
	Sig  uint64
}

// MultiplySig computes the unsigned 24x24->48 bit product of the two
// significands. For normalized 1.x inputs the raw product lies in
// [1.0, 4.0), so the top bit of the 48-bit result decides whether a
// one-bit right normalization is needed; that decision is folded into
// the exponent here rather than left to the adder.
func MultiplySig(sign bool, x, y Operand) Product {
	if x.Sig == 0 || y.Sig == 0 {
		return Product{Sign: sign}
	}

	prod := uint64(x.Sig) * uint64(y.Sig)
	exp := x.Exp + y.Exp
	if prod&(1<<47) != 0 {
		exp++
	} else {
		prod <<= 1
	}
	return Product{Sign: sign, Exp: exp, Sig: prod}
}
