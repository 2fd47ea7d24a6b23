package insts

// Bit patterns used when synthesizing operands. These mirror the packed
// single-precision encodings; the decoder works on raw patterns so it
// does not depend on the datapath package.
const (
	// packedOne is the single-precision encoding of +1.0.
	packedOne uint32 = 0x3F800000
	// signMask selects the sign bit of a packed value.
	signMask uint32 = 0x80000000
)

// Decoder maps external dispatch fields to the internal operation
// selection, routes the X/Y/Z operand triple, and resolves the
// rounding mode. It is stateless.
type Decoder struct{}

// NewDecoder creates a new dispatch-field decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// DecodeOperation selects one of the seven operations from the
// operation-class and FMA-variant fields. The decode is total: an
// unrecognized class or variant falls back to OpAdd, since control
// logic cannot fault on a malformed encoding.
func (d *Decoder) DecodeOperation(class OpClass, variant FMAVariant) Operation {
	switch class {
	case ClassAdd:
		return OpAdd
	case ClassSub:
		return OpSub
	case ClassMul:
		return OpMul
	case ClassFused:
		switch variant {
		case VariantFmadd:
			return OpFma
		case VariantFmsub:
			return OpFms
		case VariantFnmsub:
			return OpFnmsub
		case VariantFnmadd:
			return OpFnmadd
		}
	}
	return OpAdd
}

// ResolveRoundingMode resolves the explicit rm field against the CSR
// rounding mode. DynamicRM substitutes the CSR value; any reserved
// encoding resolves to RNE so the result is always a concrete mode.
// The substitution happens exactly once, at dispatch.
func (d *Decoder) ResolveRoundingMode(explicit, csrMode RoundingMode) RoundingMode {
	rm := explicit
	if rm == DynamicRM {
		rm = csrMode
	}
	if rm > RMM {
		rm = RNE
	}
	return rm
}

// RouteOperands maps the (up to three) source register values onto the
// X/Y/Z operand triple of the unified X*Y+Z datapath:
//
//	ADD/SUB: X=1.0, Y=v1, Z=v2 (the product degenerates to v1)
//	MUL:     X=v1, Y=v2, Z=zero carrying the product sign
//	fused:   X=v1, Y=v2, Z=v3
//
// The MUL addend takes the product's sign rather than +0 so that a zero
// product keeps its sign through the final addition (e.g. -1.0 * +0.0
// must stay -0.0 under round-to-nearest).
func (d *Decoder) RouteOperands(op Operation, v1, v2, v3 uint32) (x, y, z uint32) {
	switch op {
	case OpAdd, OpSub:
		return packedOne, v1, v2
	case OpMul:
		return v1, v2, (v1 ^ v2) & signMask
	}
	return v1, v2, v3
}
