package pipeline

// NumRegs is the number of logical floating-point registers tracked.
const NumRegs = 32

// Entry tracks one logical register: a busy flag and the remaining
// pipeline latency of its in-flight producer. The counter is 3 bits
// wide in hardware, so latencies are capped at 7.
type Entry struct {
	Busy      bool
	Remaining uint8
}

// Scoreboard tracks, per logical floating-point register, whether a
// producer is still in flight and how many cycles remain until its
// result is architecturally visible.
//
// A dispatch to an already-busy register unconditionally overwrites the
// tracked latency, so the scoreboard always describes the newest
// in-flight producer. The forwarding resolver relies on exactly that
// to reject stale mirror matches (see DESIGN.md).
type Scoreboard struct {
	entries [NumRegs]Entry
}

// NewScoreboard creates a scoreboard with all registers idle.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// Dispatch marks a register busy with the operation's fixed latency.
func (s *Scoreboard) Dispatch(reg uint8, lat uint64) {
	if reg >= NumRegs {
		return
	}
	if lat > 7 {
		lat = 7
	}
	s.entries[reg] = Entry{Busy: true, Remaining: uint8(lat)}
}

// Tick advances one cycle: every busy register's counter decrements,
// and registers reaching zero fall back to idle.
func (s *Scoreboard) Tick() {
	for i := range s.entries {
		e := &s.entries[i]
		if !e.Busy {
			continue
		}
		e.Remaining--
		if e.Remaining == 0 {
			e.Busy = false
		}
	}
}

// Busy reports whether a producer for the register is still in flight.
func (s *Scoreboard) Busy(reg uint8) bool {
	if reg >= NumRegs {
		return false
	}
	return s.entries[reg].Busy
}

// Remaining returns the tracked remaining latency for a register.
func (s *Scoreboard) Remaining(reg uint8) uint8 {
	if reg >= NumRegs {
		return 0
	}
	return s.entries[reg].Remaining
}

// Reset returns every register to idle.
func (s *Scoreboard) Reset() {
	s.entries = [NumRegs]Entry{}
}
