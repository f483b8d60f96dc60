// Command strongmotion derives velocity, displacement, Fourier and response
// spectra for directories of strong-motion station records.
//
// Usage:
//
//	strongmotion [flags] [station-dir ...]
//
// Without arguments every non-hidden subdirectory of -root is processed.
// Each station directory needs waveform.csv or waveform.mseed and may carry
// metadata.yml; results are written next to the inputs.
//
// Examples:
//
//	strongmotion -root data/seismic_formatted
//	strongmotion -workers 4 -config strict.yml data/N.TKCH data/N.IBRH
//	strongmotion -root /tmp/demo -synth 3
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"gopkg.in/yaml.v2"

	"github.com/cwbudde/algo-strongmotion/internal/batch"
	"github.com/cwbudde/algo-strongmotion/internal/log"
	"github.com/cwbudde/algo-strongmotion/internal/stationio"
	"github.com/cwbudde/algo-strongmotion/motion/process"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := flag.String("root", ".", "directory holding one subdirectory per station")
	configPath := flag.String("config", "", "YAML file overriding the processing defaults")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "stations processed concurrently")
	rate := flag.Float64("rate", 100, "sampling rate in Hz for stations whose metadata has none")
	synth := flag.Int("synth", 0, "write this many synthetic stations under -root before processing")
	summary := flag.Bool("summary", true, "write summary_metadata.csv under -root")
	debug := flag.Bool("debug", false, "human-readable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: strongmotion [flags] [station-dir ...]\n\n")
		fmt.Fprintf(os.Stderr, "Derives velocity, displacement and spectra of strong-motion records.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, processes every station directory under -root.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  strongmotion -root data/seismic_formatted\n")
		fmt.Fprintf(os.Stderr, "  strongmotion -workers 4 -config strict.yml data/N.TKCH\n")
		fmt.Fprintf(os.Stderr, "  strongmotion -root /tmp/demo -synth 3\n")
	}
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer log.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Errorw("invalid configuration", "path", *configPath, "error", err)
		return 1
	}

	if *synth > 0 {
		dirs, err := writeSynthetic(*root, *synth, *rate)
		if err != nil {
			log.Errorw("synthetic stations", "root", *root, "error", err)
			return 1
		}
		log.Infow("synthetic stations written", "root", *root, "stations", len(dirs))
	}

	stations := flag.Args()
	if len(stations) == 0 {
		if stations, err = stationio.Discover(*root); err != nil {
			log.Errorw("station discovery", "error", err)
			return 1
		}
	}

	if len(stations) == 0 {
		log.Warnw("no station directories", "root", *root)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcomes := batch.Run(ctx, stations, *workers, processStation(cfg, *rate))
	ok, failed := batch.Summary(outcomes)

	if *summary {
		n, err := stationio.WriteSummaryFile(*root, stations)
		if err != nil {
			log.Errorw("summary table", "root", *root, "error", err)
			return 1
		}
		log.Infow("summary table written", "file", stationio.SummaryFile, "stations", n)
	}

	if failed > 0 {
		log.Warnw("some stations failed", "succeeded", ok, "failed", failed)
		return 1
	}

	return 0
}

// loadConfig overlays the YAML file at path on the defaults. An empty path
// selects the defaults.
func loadConfig(path string) (process.Config, error) {
	cfg := process.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return process.Config{}, err
	}

	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return process.Config{}, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return process.Config{}, err
	}

	return cfg, nil
}

// processStation returns the per-station job: load, derive, write.
func processStation(cfg process.Config, fallbackRate float64) batch.Func {
	return func(ctx context.Context, dir string) error {
		rec, md, err := stationio.LoadRecord(dir, fallbackRate)
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := process.Run(rec, cfg)
		if err != nil {
			return err
		}

		log.Debugw("station derived",
			"station", rec.Station,
			"samples", rec.Len(),
			"rate_hz", rec.SampleRate,
			"pga_total", res.Peaks.Acceleration.Total,
			"pgv_total", res.Peaks.Velocity.Total,
			"pgd_total", res.Peaks.Displacement.Total,
		)

		if err := stationio.WriteResults(dir, md, res); err != nil {
			return fmt.Errorf("station %s: %w", rec.Station, err)
		}

		return nil
	}
}
