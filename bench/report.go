package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/rnspim/config"
)

// Report is the outcome of a benchmark sweep.
type Report struct {
	Samples []TimingSample `json:"samples"`
	Stats   []Stats        `json:"stats"`
}

func ms(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64)
}

// WriteTable prints one row per case and tower count.
func (r *Report) WriteTable(w io.Writer) error {
	t := table.NewWriter()
	t.SetTitle("RNS offload benchmark")
	t.SetCaption("Wall times are host time and include the simulator for " +
		"pim cases. Device is simulated fleet and host link time.")
	t.AppendHeader(table.Row{
		"Case", "Towers", "N", "Min (ms)", "Median (ms)", "Mean (ms)",
		"Max (ms)", "StdDev (ms)", "Device (ms)", "MB/s",
	})

	prev := ""
	for _, s := range r.Stats {
		if prev != "" && prev != s.Case {
			t.AppendSeparator()
		}
		prev = s.Case

		device, rate := "-", "-"
		if s.DeviceSeconds > 0 {
			device = strconv.FormatFloat(s.DeviceSeconds*1e3, 'f', 3, 64)
		}

		if s.MBPerSec > 0 {
			rate = strconv.FormatFloat(s.MBPerSec, 'f', 1, 64)
		}

		t.AppendRow(table.Row{
			s.Case, s.Towers, s.Samples, ms(s.Min), ms(s.Median), ms(s.Mean),
			ms(s.Max), ms(s.StdDev), device, rate,
		})
	}

	_, err := fmt.Fprintln(w, t.Render())

	return err
}

// WriteJSON encodes the samples and their summary.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// WriteChart renders an HTML page with the mean wall time and the simulated
// device time of every case, one bar series per tower count.
func (r *Report) WriteChart(w io.Writer) error {
	page := components.NewPage()
	page.SetPageTitle("RNS offload benchmark")

	page.AddCharts(
		r.bar("Mean wall time", "ms", func(s Stats) float64 {
			return float64(s.Mean) / float64(time.Millisecond)
		}),
		r.bar("Simulated device time", "ms", func(s Stats) float64 {
			return s.DeviceSeconds * 1e3
		}),
	)

	return page.Render(w)
}

func (r *Report) bar(
	title, unit string,
	value func(Stats) float64,
) *charts.Bar {
	cases := make([]string, 0)
	towers := make([]int, 0)
	seenCase := map[string]bool{}
	seenTowers := map[int]bool{}
	values := map[statsKey]float64{}

	for _, s := range r.Stats {
		if !seenCase[s.Case] {
			seenCase[s.Case] = true
			cases = append(cases, s.Case)
		}

		if !seenTowers[s.Towers] {
			seenTowers[s.Towers] = true
			towers = append(towers, s.Towers)
		}

		values[statsKey{s.Case, s.Towers}] = value(s)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: unit}),
	)
	bar.SetXAxis(cases)

	for _, t := range towers {
		data := make([]opts.BarData, len(cases))
		for i, c := range cases {
			data[i] = opts.BarData{Value: values[statsKey{c, t}]}
		}

		bar.AddSeries(fmt.Sprintf("%d towers", t), data)
	}

	return bar
}

// Save writes the JSON report and the chart to the configured paths.
// Empty paths are skipped.
func (r *Report) Save(paths config.ReportPaths) error {
	if err := saveTo(paths.JSON, r.WriteJSON); err != nil {
		return err
	}

	return saveTo(paths.Chart, r.WriteChart)
}

func saveTo(path string, write func(io.Writer) error) error {
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
