package pipeline

// ForwardSource indicates where a source operand's value should come
// from.
type ForwardSource int

const (
	// ForwardNone means no forwarding needed - use the register file
	// value.
	ForwardNone ForwardSource = iota
	// ForwardFromMem means forward from the memory mirror stage.
	ForwardFromMem
	// ForwardFromWb means forward from the writeback mirror stage.
	ForwardFromWb
	// StallOnEx means the producer is still in the execute stage; the
	// value cannot be obtained this cycle, not even by forwarding.
	StallOnEx
)

// String returns the decision name.
func (f ForwardSource) String() string {
	switch f {
	case ForwardNone:
		return "regfile"
	case ForwardFromMem:
		return "mem"
	case ForwardFromWb:
		return "wb"
	case StallOnEx:
		return "stall"
	}
	return "unknown"
}

// ForwardingResult contains the forwarding decisions for the three
// source operands.
type ForwardingResult struct {
	// Forward1, Forward2, Forward3 are the per-source decisions.
	Forward1 ForwardSource
	Forward2 ForwardSource
	Forward3 ForwardSource
}

// Stall reports whether any source forces the intake to wait a cycle.
func (r ForwardingResult) Stall() bool {
	return r.Forward1 == StallOnEx || r.Forward2 == StallOnEx ||
		r.Forward3 == StallOnEx
}

// HazardUnit resolves, per source register, whether the operand comes
// from the register file, a forwarding path, or forces a stall.
type HazardUnit struct{}

// NewHazardUnit creates a new forwarding resolver.
func NewHazardUnit() *HazardUnit {
	return &HazardUnit{}
}

// DetectForwarding determines the forwarding decision for each source
// register of an operation about to dispatch. usesSrc3 masks the third
// source for the two-operand operations so an unused register can
// never stall the intake.
func (h *HazardUnit) DetectForwarding(
	src1, src2, src3 uint8,
	usesSrc3 bool,
	sb *Scoreboard,
	mem *MemMirror,
	wb *WbMirror,
) ForwardingResult {
	result := ForwardingResult{
		Forward1: h.detectForReg(src1, sb, mem, wb),
		Forward2: h.detectForReg(src2, sb, mem, wb),
		Forward3: ForwardNone,
	}
	if usesSrc3 {
		result.Forward3 = h.detectForReg(src3, sb, mem, wb)
	}
	return result
}

// detectForReg resolves a single register. Priority is strict, first
// match wins: a producer still in execute stalls; then the memory
// mirror forwards (more recent than writeback); then the writeback
// mirror; otherwise the register file already holds the value. No
// floating-point register is hardwired to zero, so every index takes
// the same path.
//
// The scoreboard tracks the newest in-flight producer, so a remaining
// latency above two means that producer has not reached the memory
// mirror yet and any mirror match for the register belongs to an older
// writer. Forwarding that older value would break the dependence, so
// the intake stalls instead.
func (h *HazardUnit) detectForReg(
	reg uint8,
	sb *Scoreboard,
	mem *MemMirror,
	wb *WbMirror,
) ForwardSource {
	inMem := mem.Valid && mem.FPRegWrite && mem.Rd == reg
	inWb := wb.Valid && wb.FPRegWrite && wb.Rd == reg

	switch {
	case sb.Busy(reg) && sb.Remaining(reg) > 2:
		return StallOnEx
	case inMem:
		return ForwardFromMem
	case inWb:
		return ForwardFromWb
	case sb.Busy(reg):
		return StallOnEx
	}
	return ForwardNone
}

// SelectOperand is the operand mux: it applies a forwarding decision,
// yielding either the register file value or the bypassed result.
func (h *HazardUnit) SelectOperand(
	forward ForwardSource,
	regValue uint32,
	mem *MemMirror,
	wb *WbMirror,
) uint32 {
	switch forward {
	case ForwardFromMem:
		return mem.Value
	case ForwardFromWb:
		return wb.Value
	default:
		return regValue
	}
}
