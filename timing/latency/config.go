package latency

import (
	"encoding/json"
	"fmt"
	"os"
)

// TimingConfig holds the pipeline occupancy in cycles for each
// operation class. The defaults reflect the stage structure: the add
// path skips the multiply stages, the multiply path skips the wide add.
type TimingConfig struct {
	// AddSubLatency is the pipeline latency of FADD/FSUB. Default: 4.
	AddSubLatency uint64 `json:"add_sub_latency"`

	// MulLatency is the pipeline latency of FMUL. Default: 5.
	MulLatency uint64 `json:"mul_latency"`

	// FmaLatency is the pipeline latency of the four fused
	// multiply-add variants. Default: 6.
	FmaLatency uint64 `json:"fma_latency"`
}

// DefaultTimingConfig returns the default latency values.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		AddSubLatency: 4,
		MulLatency:    5,
		FmaLatency:    6,
	}
}

// LoadConfig loads a TimingConfig from a JSON file. Missing fields
// keep their defaults.
func LoadConfig(path string) (*TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timing config file: %w", err)
	}

	config := DefaultTimingConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse timing config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a TimingConfig to a JSON file.
func (c *TimingConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize timing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timing config file: %w", err)
	}

	return nil
}

// Validate checks that all latency values are usable. The scoreboard
// counters are 3 bits wide, so no latency may exceed 7.
func (c *TimingConfig) Validate() error {
	if c.AddSubLatency == 0 {
		return fmt.Errorf("add_sub_latency must be > 0")
	}
	if c.MulLatency == 0 {
		return fmt.Errorf("mul_latency must be > 0")
	}
	if c.FmaLatency == 0 {
		return fmt.Errorf("fma_latency must be > 0")
	}
	if c.AddSubLatency > 7 || c.MulLatency > 7 || c.FmaLatency > 7 {
		return fmt.Errorf("latencies must fit the 3-bit scoreboard counter (max 7)")
	}
	return nil
}

// Clone returns a copy of the TimingConfig.
func (c *TimingConfig) Clone() *TimingConfig {
	return &TimingConfig{
		AddSubLatency: c.AddSubLatency,
		MulLatency:    c.MulLatency,
		FmaLatency:    c.FmaLatency,
	}
}
