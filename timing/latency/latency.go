// Package latency provides the fixed per-operation pipeline latencies
// for the FMA execution core.
//
// Latency is a pure function of the operation selection, known at
// dispatch time; it never depends on operand values.
package latency

import (
	"github.com/sarchlab/fpusim/insts"
)

// Table provides operation latency lookups.
type Table struct {
	config *TimingConfig
}

// NewTable creates a latency table with the default timing values.
func NewTable() *Table {
	return &Table{
		config: DefaultTimingConfig(),
	}
}

// NewTableWithConfig creates a latency table with a custom timing
// configuration.
func NewTableWithConfig(config *TimingConfig) *Table {
	return &Table{
		config: config,
	}
}

// GetLatency returns the pipeline latency in cycles for the operation.
func (t *Table) GetLatency(op insts.Operation) uint64 {
	switch op {
	case insts.OpAdd, insts.OpSub:
		return t.config.AddSubLatency
	case insts.OpMul:
		return t.config.MulLatency
	case insts.OpFma, insts.OpFms, insts.OpFnmsub, insts.OpFnmadd:
		return t.config.FmaLatency
	}
	return t.config.AddSubLatency
}

// Config returns the current timing configuration.
func (t *Table) Config() *TimingConfig {
	return t.config
}
