package fp32

// Flags is the 5-bit sticky exception flag vector, in fflags bit order
// (Invalid at bit 4 down to Inexact at bit 0). Flags accumulate in the
// external CSR on every completion and are never cleared by the core.
type Flags uint8

// Exception flags.
const (
	FlagInexact Flags = 1 << iota
	FlagUnderflow
	FlagOverflow
	FlagDivByZero // never raised by this engine
	FlagInvalid
)

// String renders the raised flags as a compact "NV OF UF NX" style list.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	s := ""
	if f&FlagInvalid != 0 {
		s += "NV "
	}
	if f&FlagDivByZero != 0 {
		s += "DZ "
	}
	if f&FlagOverflow != 0 {
		s += "OF "
	}
	if f&FlagUnderflow != 0 {
		s += "UF "
	}
	if f&FlagInexact != 0 {
		s += "NX "
	}
	return s[:len(s)-1]
}

// ResultFlags derives the flag vector from a rounding outcome: inexact
// covers rounding inexactness as well as overflow and underflow;
// invalid never originates here (the special-case resolver raises it
// directly).
func ResultFlags(o RoundOutcome) Flags {
	var f Flags
	if o.Overflow {
		f |= FlagOverflow
	}
	if o.Underflow {
		f |= FlagUnderflow
	}
	if o.Inexact || o.Overflow || o.Underflow {
		f |= FlagInexact
	}
	return f
}
