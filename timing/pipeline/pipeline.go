package pipeline

import (
	"github.com/sarchlab/fpusim/emu"
	"github.com/sarchlab/fpusim/fp32"
	"github.com/sarchlab/fpusim/insts"
	"github.com/sarchlab/fpusim/timing/latency"
)

// Statistics holds pipeline performance counters.
type Statistics struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// Dispatched is the number of operations admitted into the pipe.
	Dispatched uint64
	// Completed is the number of operations that finished.
	Completed uint64
	// DataStalls is the number of intake cycles lost to a producer
	// still in its execute stage.
	DataStalls uint64
	// WritebackStalls is the number of intake cycles lost to the
	// single writeback port (two operations would finish together).
	WritebackStalls uint64
	// FlushSquashed is the number of staged intakes killed by a flush.
	FlushSquashed uint64
}

// CPI returns the cycles per completed operation.
func (s Statistics) CPI() float64 {
	if s.Completed == 0 {
		return 0
	}
	return float64(s.Cycles) / float64(s.Completed)
}

// Completion is the per-cycle completion output: the result, flags,
// and latency tag of whichever operation, if any, finishes this cycle.
type Completion struct {
	// Valid indicates an operation finished this cycle.
	Valid bool
	// Result is the packed 32-bit result pattern.
	Result uint32
	// Flags is the 5-bit exception flag vector merged into the CSR.
	Flags fp32.Flags
	// LatencyTag is the operation's fixed latency (3-bit tag).
	LatencyTag uint8
	// Dest is the destination register written back.
	Dest uint8
}

// slot is one in-flight operation. The datapath result is computed at
// dispatch (the stages are pure functions); the slot then drains
// through the fixed-latency window with no further blocking.
type slot struct {
	remaining  uint64
	dest       uint8
	result     uint32
	flags      fp32.Flags
	latencyTag uint8
}

// Option is a functional option for configuring the Pipeline.
type Option func(*Pipeline)

// WithLatencyTable sets a custom latency table.
func WithLatencyTable(table *latency.Table) Option {
	return func(p *Pipeline) {
		p.latTable = table
	}
}

// Pipeline is the FMA execution pipeline: single-issue intake guarded
// by the forwarding resolver, a window of in-flight fixed-latency
// operations indexed by cycles remaining, the per-register scoreboard,
// and the completion/writeback path. The whole model advances in
// lock-step, one Tick per clock edge; the only suspension point is the
// intake boundary.
type Pipeline struct {
	regFile *emu.RegFile
	csr     *emu.FCSR

	decoder    *insts.Decoder
	latTable   *latency.Table
	hazard     *HazardUnit
	scoreboard *Scoreboard

	slots []slot

	mem MemMirror
	wb  WbMirror

	pending      *insts.Request
	flushPending bool

	stats Statistics
}

// NewPipeline creates a pipeline bound to the given register file and
// CSR bank.
func NewPipeline(regFile *emu.RegFile, csr *emu.FCSR, opts ...Option) *Pipeline {
	p := &Pipeline{
		regFile:    regFile,
		csr:        csr,
		decoder:    insts.NewDecoder(),
		latTable:   latency.NewTable(),
		hazard:     NewHazardUnit(),
		scoreboard: NewScoreboard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Scoreboard exposes the hazard-tracking scoreboard.
func (p *Pipeline) Scoreboard() *Scoreboard {
	return p.scoreboard
}

// Mirrors exposes the memory and writeback mirror stages consumed by
// the forwarding resolver.
func (p *Pipeline) Mirrors() (*MemMirror, *WbMirror) {
	return &p.mem, &p.wb
}

// Stats returns the pipeline performance counters.
func (p *Pipeline) Stats() Statistics {
	return p.stats
}

// InFlight returns the number of operations inside the pipeline.
func (p *Pipeline) InFlight() int {
	return len(p.slots)
}

// Pending reports whether an intake request is staged but not yet
// admitted.
func (p *Pipeline) Pending() bool {
	return p.pending != nil
}

// Issue stages one operation for intake at the next tick. At most one
// operation enters the pipeline per cycle; Issue reports false if a
// request is already staged (still stalling on a hazard).
func (p *Pipeline) Issue(req insts.Request) bool {
	if p.pending != nil {
		return false
	}
	r := req
	p.pending = &r
	return true
}

// Flush squashes the staged intake, if any, at the next tick. In-flight
// operations are never killed; only the intake of a not-yet-dispatched
// operation is converted to a no-op.
func (p *Pipeline) Flush() {
	p.flushPending = true
}

// Tick advances the pipeline by one clock edge: in-flight operations
// drain one cycle, at most one completes (writeback plus sticky flag
// merge), the stage mirrors and scoreboard advance, and then the
// staged intake is admitted unless a hazard holds it back.
func (p *Pipeline) Tick() Completion {
	p.stats.Cycles++

	completion := p.advance()
	p.scoreboard.Tick()
	p.refreshMirrors()
	p.intake()

	return completion
}

// advance drains every in-flight slot by one cycle and retires the one
// reaching zero.
func (p *Pipeline) advance() Completion {
	completion := Completion{}

	kept := p.slots[:0]
	for i := range p.slots {
		s := &p.slots[i]
		s.remaining--
		if s.remaining > 0 {
			kept = append(kept, *s)
			continue
		}

		p.regFile.Write(s.dest, s.result)
		p.csr.MergeFlags(s.flags)
		p.stats.Completed++
		completion = Completion{
			Valid:      true,
			Result:     s.result,
			Flags:      s.flags,
			LatencyTag: s.latencyTag,
			Dest:       s.dest,
		}
	}
	p.slots = kept

	return completion
}

// refreshMirrors rebuilds the memory and writeback mirror stages from
// the in-flight window: two cycles from completion maps to the memory
// mirror, one cycle to the writeback mirror.
func (p *Pipeline) refreshMirrors() {
	p.mem.Clear()
	p.wb.Clear()

	for i := range p.slots {
		s := &p.slots[i]
		switch s.remaining {
		case 2:
			p.mem = MemMirror{
				Valid:      true,
				Rd:         s.dest,
				FPRegWrite: true,
				Value:      s.result,
				Flags:      s.flags,
			}
		case 1:
			p.wb = WbMirror{
				Valid:      true,
				Rd:         s.dest,
				FPRegWrite: true,
				Value:      s.result,
				Flags:      s.flags,
			}
		}
	}
}

// intake admits the staged request unless a flush squashes it or a
// hazard stalls it for another cycle.
func (p *Pipeline) intake() {
	if p.flushPending {
		if p.pending != nil {
			p.pending = nil
			p.stats.FlushSquashed++
		}
		p.flushPending = false
	}
	if p.pending == nil {
		return
	}

	req := p.pending
	op := p.decoder.DecodeOperation(req.Class, req.Variant)

	fwd := p.hazard.DetectForwarding(
		req.Src1, req.Src2, req.Src3, op.UsesAddend(),
		p.scoreboard, &p.mem, &p.wb)
	if fwd.Stall() {
		p.stats.DataStalls++
		return
	}

	lat := p.latTable.GetLatency(op)
	if p.writebackConflict(lat) {
		p.stats.WritebackStalls++
		return
	}

	v1, v2, v3 := p.regFile.ReadOperands(req.Src1, req.Src2, req.Src3)
	v1 = p.hazard.SelectOperand(fwd.Forward1, v1, &p.mem, &p.wb)
	v2 = p.hazard.SelectOperand(fwd.Forward2, v2, &p.mem, &p.wb)
	v3 = p.hazard.SelectOperand(fwd.Forward3, v3, &p.mem, &p.wb)

	rm := p.decoder.ResolveRoundingMode(req.RM, p.csr.RoundingMode())
	x, y, z := p.decoder.RouteOperands(op, v1, v2, v3)
	res := fp32.Compute(op, x, y, z, rm)

	p.scoreboard.Dispatch(req.Dest, lat)
	p.slots = append(p.slots, slot{
		remaining:  lat,
		dest:       req.Dest,
		result:     res.Bits,
		flags:      res.Flags,
		latencyTag: uint8(lat),
	})
	p.stats.Dispatched++
	p.pending = nil
}

// writebackConflict reports whether admitting an operation with the
// given latency would make two operations reach the single writeback
// port in the same cycle.
func (p *Pipeline) writebackConflict(lat uint64) bool {
	for i := range p.slots {
		if p.slots[i].remaining == lat {
			return true
		}
	}
	return false
}

// Reset clears all pipeline state, including the scoreboard and the
// stage mirrors. The register file and CSR are left to their owners.
func (p *Pipeline) Reset() {
	p.slots = nil
	p.pending = nil
	p.flushPending = false
	p.mem.Clear()
	p.wb.Clear()
	p.scoreboard.Reset()
	p.stats = Statistics{}
}
