package bench

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sarchlab/rnspim/config"
)

// TimingSample is one timed iteration of a case.
type TimingSample struct {
	Case          string        `json:"case"`
	Towers        int           `json:"towers"`
	Iteration     int           `json:"iteration"`
	Duration      time.Duration `json:"duration_ns"`
	DeviceSeconds float64       `json:"device_seconds,omitempty"`
	Bytes         int64         `json:"bytes,omitempty"`
}

// Runner sweeps cases over tower counts.
type Runner struct {
	Cases      []Case
	Towers     []int
	Iterations int
	Warmup     int
}

// NewRunner creates a runner for the sweep a configuration describes.
func NewRunner(cfg config.Config) (*Runner, error) {
	cases, err := FindCases(cfg.Cases)
	if err != nil {
		return nil, err
	}

	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("%w: iterations must be positive",
			config.ErrInvalidConfig)
	}

	return &Runner{
		Cases:      cases,
		Towers:     cfg.Towers,
		Iterations: cfg.Iterations,
		Warmup:     cfg.Warmup,
	}, nil
}

// Run times every case for every tower count and summarizes the samples.
func (r *Runner) Run(ctx *Context) (*Report, error) {
	report := &Report{}

	for _, towers := range r.Towers {
		for _, c := range r.Cases {
			samples, err := r.runCase(ctx, c, towers)
			if err != nil {
				return nil, fmt.Errorf("%s, %d towers: %w", c.Name, towers, err)
			}

			report.Samples = append(report.Samples, samples...)
		}
	}

	report.Stats = Summarize(report.Samples)

	return report, nil
}

func (r *Runner) runCase(
	ctx *Context,
	c Case,
	towers int,
) ([]TimingSample, error) {
	body, err := c.Prepare(ctx, towers)
	if err != nil {
		return nil, err
	}

	for i := 0; i < r.Warmup; i++ {
		if _, err := body(); err != nil {
			return nil, err
		}
	}

	samples := make([]TimingSample, 0, r.Iterations)
	for i := 0; i < r.Iterations; i++ {
		start := time.Now()
		m, err := body()
		elapsed := time.Since(start)

		if err != nil {
			return nil, err
		}

		samples = append(samples, TimingSample{
			Case:          c.Name,
			Towers:        towers,
			Iteration:     i,
			Duration:      elapsed,
			DeviceSeconds: m.DeviceSeconds,
			Bytes:         m.Bytes,
		})
	}

	s := summarize(samples)
	slog.Info("Benchmark",
		"case", c.Name, "towers", towers,
		"mean", s.Mean, "median", s.Median,
		"device_seconds", s.DeviceSeconds)

	return samples, nil
}
