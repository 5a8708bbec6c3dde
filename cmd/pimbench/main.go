// Command pimbench times RNS modular addition and multiplication on the host
// and offloaded to a simulated PIM fleet.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/rnspim/api"
	"github.com/sarchlab/rnspim/bench"
	"github.com/sarchlab/rnspim/config"
	"github.com/sarchlab/rnspim/core"
	"github.com/tebeka/atexit"
	"golang.org/x/sys/cpu"
)

var (
	configFile = flag.String("config", "", "YAML configuration file.")
	towersFlag = flag.String("towers", "", "Comma-separated tower counts.")
	casesFlag  = flag.String("cases", "", "Comma-separated benchmark cases.")
	iterations = flag.Int("iterations", 0, "Timed iterations per case.")
	numUnits   = flag.Int("units", 0, "Number of PIM units.")
	parallel   = flag.Bool("parallel", false, "Use the parallel engine.")
	verify     = flag.Bool("verify", true, "Check offload results first.")
	jsonPath   = flag.String("json", "", "Write the JSON report here.")
	chartPath  = flag.String("chart", "", "Write the HTML chart here.")
	logLevel   = flag.String("log-level", "info", "trace, debug, info, or warn.")
	logFile    = flag.String("log-file", "", "Write logs to this file.")
	monitor    = flag.Bool("monitor", false, "Serve the simulation monitor.")
)

func main() {
	flag.Parse()

	setupLogging()

	cfg, err := loadConfig()
	if err != nil {
		fatal(err)
	}

	engine := newEngine(cfg)

	fleetBuilder := config.NewFleetBuilder().
		WithEngine(engine).
		WithConfig(cfg)

	var m *monitoring.Monitor
	if *monitor {
		m = monitoring.NewMonitor()
		m.RegisterEngine(engine)
		fleetBuilder = fleetBuilder.WithMonitor(m)
	}

	fleet := fleetBuilder.Build("Fleet")
	if m != nil {
		m.StartServer()
	}
	orch := api.OrchestratorBuilder{}.
		WithFleet(fleet).
		WithEngine(engine).
		WithFreq(sim.Freq(cfg.FreqMHz)*sim.MHz).
		WithHostDMA(cfg.DMABytesPerCycle, cfg.DMASetupCycles).
		Build("Orchestrator")

	slog.Info("Host",
		"avx2", cpu.X86.HasAVX2,
		"avx512f", cpu.X86.HasAVX512F,
		"asimd", cpu.ARM64.HasASIMD)
	slog.Info("Fleet",
		"units", fleet.NumUnits(),
		"freq_mhz", cfg.FreqMHz,
		"towers", cfg.Towers,
		"ring_dim_log", cfg.RingDimLog)

	ctx, err := bench.NewContext(cfg, orch)
	if err != nil {
		fatal(err)
	}

	if *verify {
		if err := bench.Verify(ctx); err != nil {
			fatal(err)
		}
	}

	runner, err := bench.NewRunner(cfg)
	if err != nil {
		fatal(err)
	}

	report, err := runner.Run(ctx)
	if err != nil {
		fatal(err)
	}

	if err := report.WriteTable(os.Stdout); err != nil {
		fatal(err)
	}

	if err := report.Save(cfg.Report); err != nil {
		fatal(err)
	}

	atexit.Exit(0)
}

func loadConfig() (config.Config, error) {
	cfg := config.DefaultConfig()

	if *configFile != "" {
		var err error
		if cfg, err = config.LoadConfig(*configFile); err != nil {
			return cfg, err
		}
	}

	if *towersFlag != "" {
		towers, err := parseInts(*towersFlag)
		if err != nil {
			return cfg, fmt.Errorf("%w: towers: %v", config.ErrInvalidConfig, err)
		}

		cfg.Towers = towers
	}

	if *casesFlag != "" {
		cfg.Cases = strings.Split(*casesFlag, ",")
	}

	if *iterations > 0 {
		cfg.Iterations = *iterations
	}

	if *numUnits > 0 {
		cfg.NumUnits = *numUnits
	}

	if *parallel {
		cfg.Parallel = true
	}

	if *jsonPath != "" {
		cfg.Report.JSON = *jsonPath
	}

	if *chartPath != "" {
		cfg.Report.Chart = *chartPath
	}

	return cfg, cfg.Validate()
}

func parseInts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))

	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

func newEngine(cfg config.Config) sim.Engine {
	if cfg.Parallel {
		return sim.NewParallelEngine()
	}

	return sim.NewSerialEngine()
}

func setupLogging() {
	var w io.Writer = os.Stderr

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fatal(err)
		}

		atexit.Register(func() { f.Close() })
		w = f
	}

	level := slog.LevelInfo
	switch strings.ToLower(*logLevel) {
	case "trace":
		level = core.LevelTrace
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && a.Value.Any() == core.LevelTrace {
				a.Value = slog.StringValue("TRACE")
			}

			return a
		},
	})

	slog.SetDefault(slog.New(handler))
}

func fatal(err error) {
	slog.Error("pimbench", "error", err)
	atexit.Exit(1)
}
