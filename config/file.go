package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sarchlab/rnspim/kernel"
	"github.com/sarchlab/rnspim/pim"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration cannot describe a
// runnable benchmark.
var ErrInvalidConfig = errors.New("invalid config")

// KernelPaths names the kernel images used for each operation.
type KernelPaths struct {
	Add string `yaml:"add"`
	Mul string `yaml:"mul"`
}

// ReportPaths names the files the benchmark report is written to. Empty
// paths disable the corresponding output.
type ReportPaths struct {
	JSON  string `yaml:"json"`
	Chart string `yaml:"chart"`
}

// Config describes a fleet and the benchmark sweep run on it.
type Config struct {
	NumUnits         int     `yaml:"num_units"`
	FreqMHz          float64 `yaml:"freq_mhz"`
	BufferBytes      int     `yaml:"buffer_bytes"`
	DMABytesPerCycle int64   `yaml:"dma_bytes_per_cycle"`
	DMASetupCycles   int     `yaml:"dma_setup_cycles"`
	Parallel         bool    `yaml:"parallel"`

	RingDimLog  int    `yaml:"ring_dim_log"`
	ModulusBits int    `yaml:"modulus_bits"`
	Towers      []int  `yaml:"towers"`
	Seed        string `yaml:"seed"`

	Iterations int      `yaml:"iterations"`
	Warmup     int      `yaml:"warmup"`
	Cases      []string `yaml:"cases"`

	Kernels KernelPaths `yaml:"kernels"`
	Report  ReportPaths `yaml:"report"`
}

// DefaultConfig returns the reference setup: 256 units, ring dimension
// 2^18, and 2, 4, and 8 towers of 60-bit moduli.
func DefaultConfig() Config {
	return Config{
		NumUnits:         pim.DefaultNumUnits,
		FreqMHz:          350,
		BufferBytes:      pim.BufferBytes,
		DMABytesPerCycle: 8,
		DMASetupCycles:   16,
		RingDimLog:       18,
		ModulusBits:      60,
		Towers:           []int{2, 4, 8},
		Seed:             "rnspim",
		Iterations:       5,
		Warmup:           1,
		Kernels: KernelPaths{
			Add: kernel.AddPath,
			Mul: kernel.MulPath,
		},
	}
}

// LoadConfig reads a YAML file on top of the default configuration.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return c, c.Validate()
}

// Validate checks that every tower count of the sweep can be partitioned
// over the fleet. Each unit must receive an equal slice that fits in one
// bulk buffer and lies inside a single tower.
func (c Config) Validate() error {
	switch {
	case c.NumUnits <= 0:
		return fmt.Errorf("%w: num_units must be positive", ErrInvalidConfig)
	case c.FreqMHz <= 0:
		return fmt.Errorf("%w: freq_mhz must be positive", ErrInvalidConfig)
	case c.BufferBytes <= 0 || c.BufferBytes%kernel.WordBytes != 0:
		return fmt.Errorf("%w: buffer_bytes must be a positive multiple of %d",
			ErrInvalidConfig, kernel.WordBytes)
	case c.DMABytesPerCycle <= 0:
		return fmt.Errorf("%w: dma_bytes_per_cycle must be positive",
			ErrInvalidConfig)
	case c.RingDimLog <= 0 || c.RingDimLog > 24:
		return fmt.Errorf("%w: ring_dim_log %d out of range",
			ErrInvalidConfig, c.RingDimLog)
	case c.ModulusBits < 2 || c.ModulusBits > 61:
		return fmt.Errorf("%w: modulus_bits %d out of range",
			ErrInvalidConfig, c.ModulusBits)
	case len(c.Towers) == 0:
		return fmt.Errorf("%w: no tower counts", ErrInvalidConfig)
	case c.Iterations <= 0 || c.Warmup < 0:
		return fmt.Errorf("%w: iterations must be positive", ErrInvalidConfig)
	}

	n := 1 << c.RingDimLog
	for _, towers := range c.Towers {
		if err := c.checkPartition(towers, n); err != nil {
			return err
		}
	}

	return nil
}

func (c Config) checkPartition(towers, n int) error {
	if towers <= 0 {
		return fmt.Errorf("%w: tower count %d", ErrInvalidConfig, towers)
	}

	length := towers * n
	if length%c.NumUnits != 0 {
		return fmt.Errorf("%w: %d words do not divide over %d units",
			ErrInvalidConfig, length, c.NumUnits)
	}

	slice := length / c.NumUnits
	if slice*kernel.WordBytes > c.BufferBytes {
		return fmt.Errorf("%w: %d towers need %d bytes per unit, buffer is %d",
			ErrInvalidConfig, towers, slice*kernel.WordBytes, c.BufferBytes)
	}

	if slice > n || n%slice != 0 {
		return fmt.Errorf("%w: slices of %d words straddle towers of %d",
			ErrInvalidConfig, slice, n)
	}

	return nil
}
