package bench

import (
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the samples of one case at one tower count. Median is
// the lower middle sample when the count is even.
type Stats struct {
	Case          string        `json:"case"`
	Towers        int           `json:"towers"`
	Samples       int           `json:"samples"`
	Min           time.Duration `json:"min_ns"`
	Max           time.Duration `json:"max_ns"`
	Mean          time.Duration `json:"mean_ns"`
	Median        time.Duration `json:"median_ns"`
	StdDev        time.Duration `json:"stddev_ns"`
	DeviceSeconds float64       `json:"device_seconds,omitempty"`
	MBPerSec      float64       `json:"mb_per_sec,omitempty"`
}

type statsKey struct {
	name   string
	towers int
}

// Summarize groups samples by case and tower count, in order of first
// appearance.
func Summarize(samples []TimingSample) []Stats {
	groups := make(map[statsKey][]TimingSample)
	order := make([]statsKey, 0)

	for _, s := range samples {
		k := statsKey{s.Case, s.Towers}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}

		groups[k] = append(groups[k], s)
	}

	out := make([]Stats, 0, len(order))
	for _, k := range order {
		out = append(out, summarize(groups[k]))
	}

	return out
}

func summarize(samples []TimingSample) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	ns := make([]float64, len(samples))
	device := make([]float64, len(samples))
	var bytes int64
	var total time.Duration

	for i, s := range samples {
		ns[i] = float64(s.Duration)
		device[i] = s.DeviceSeconds
		bytes += s.Bytes
		total += s.Duration
	}

	slices.Sort(ns)

	st := Stats{
		Case:          samples[0].Case,
		Towers:        samples[0].Towers,
		Samples:       len(samples),
		Min:           time.Duration(floats.Min(ns)),
		Max:           time.Duration(floats.Max(ns)),
		Mean:          time.Duration(stat.Mean(ns, nil)),
		Median:        time.Duration(stat.Quantile(0.5, stat.Empirical, ns, nil)),
		DeviceSeconds: stat.Mean(device, nil),
	}

	if len(ns) > 1 {
		st.StdDev = time.Duration(stat.StdDev(ns, nil))
	}

	if bytes > 0 && total > 0 {
		st.MBPerSec = float64(bytes) / total.Seconds() / 1e6
	}

	return st
}
