// Package core provides the top-level FMA execution core model: the
// floating-point register file, the control/status registers, and the
// execution pipeline behind a single lock-step Tick interface.
package core

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/fpusim/emu"
	"github.com/sarchlab/fpusim/insts"
	"github.com/sarchlab/fpusim/timing/latency"
	"github.com/sarchlab/fpusim/timing/pipeline"
)

// HookPosOpComplete is the hook position invoked whenever an operation
// completes. The hook item is the pipeline.Completion.
var HookPosOpComplete = &sim.HookPos{Name: "OpComplete"}

// Stats holds performance statistics for the core.
type Stats struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// Dispatched is the number of operations admitted into the pipe.
	Dispatched uint64
	// Completed is the number of operations that finished.
	Completed uint64
	// Stalls is the number of intake cycles lost to hazards.
	Stalls uint64
	// FlushSquashed is the number of staged intakes killed by a flush.
	FlushSquashed uint64
}

// Core is the floating-point execution core. It owns the architectural
// state and drives the pipeline one clock edge at a time; observers can
// hook HookPosOpComplete for completion tracing.
type Core struct {
	sim.HookableBase

	regFile  *emu.RegFile
	csr      *emu.FCSR
	pipeline *pipeline.Pipeline
}

// Option is a functional option for configuring the Core.
type Option func(*coreConfig)

type coreConfig struct {
	latTable *latency.Table
}

// WithLatencyTable sets a custom latency table.
func WithLatencyTable(table *latency.Table) Option {
	return func(c *coreConfig) {
		c.latTable = table
	}
}

// NewCore creates a core with fresh architectural state.
func NewCore(opts ...Option) *Core {
	cfg := &coreConfig{latTable: latency.NewTable()}
	for _, opt := range opts {
		opt(cfg)
	}

	regFile := &emu.RegFile{}
	csr := &emu.FCSR{}
	return &Core{
		regFile: regFile,
		csr:     csr,
		pipeline: pipeline.NewPipeline(regFile, csr,
			pipeline.WithLatencyTable(cfg.latTable)),
	}
}

// RegFile returns the floating-point register file.
func (c *Core) RegFile() *emu.RegFile {
	return c.regFile
}

// CSR returns the floating-point control/status register bank.
func (c *Core) CSR() *emu.FCSR {
	return c.csr
}

// Pipeline returns the underlying execution pipeline.
func (c *Core) Pipeline() *pipeline.Pipeline {
	return c.pipeline
}

// Issue stages one operation for intake at the next tick.
func (c *Core) Issue(req insts.Request) bool {
	return c.pipeline.Issue(req)
}

// Flush squashes the staged intake, if any, at the next tick.
func (c *Core) Flush() {
	c.pipeline.Flush()
}

// Tick advances the core one clock edge and returns the completion
// output, invoking the completion hook when an operation finishes.
func (c *Core) Tick() pipeline.Completion {
	completion := c.pipeline.Tick()
	if completion.Valid {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosOpComplete,
			Item:   completion,
		})
	}
	return completion
}

// Drain ticks until no operation is in flight or staged, returning the
// number of cycles consumed.
func (c *Core) Drain() uint64 {
	var cycles uint64
	for c.pipeline.InFlight() > 0 || c.pipeline.Pending() {
		c.Tick()
		cycles++
	}
	return cycles
}

// Stats returns performance statistics for the core.
func (c *Core) Stats() Stats {
	pipeStats := c.pipeline.Stats()
	return Stats{
		Cycles:        pipeStats.Cycles,
		Dispatched:    pipeStats.Dispatched,
		Completed:     pipeStats.Completed,
		Stalls:        pipeStats.DataStalls + pipeStats.WritebackStalls,
		FlushSquashed: pipeStats.FlushSquashed,
	}
}

// Reset clears all core state.
func (c *Core) Reset() {
	c.pipeline.Reset()
	c.regFile.Reset()
	c.csr.Write(0)
}
