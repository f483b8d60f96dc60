// Package batch runs one job per station with bounded concurrency. A failing
// station is recorded and logged; it never stops the others.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-strongmotion/internal/log"
)

// Func processes one station.
type Func func(ctx context.Context, station string) error

// Outcome is the result of one station.
type Outcome struct {
	Station string
	Err     error
	Elapsed time.Duration
}

// OK reports whether the station succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

// Run calls fn for every station with at most workers calls in flight
// (GOMAXPROCS when workers < 1). Outcomes keep the order of stations.
// Stations not yet started when ctx is cancelled fail with ctx.Err().
func Run(ctx context.Context, stations []string, workers int, fn Func) []Outcome {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	runID := uuid.New().String()
	logger := log.With("run_id", runID)
	logger.Infow("batch started", "stations", len(stations), "workers", workers)

	outcomes := make([]Outcome, len(stations))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, station := range stations {
		g.Go(func() error {
			outcomes[i] = runOne(ctx, station, fn)

			if err := outcomes[i].Err; err != nil {
				logger.Errorw("station failed", "station", station, "error", err)
			} else {
				logger.Infow("station processed", "station", station, "elapsed", outcomes[i].Elapsed)
			}

			return nil
		})
	}

	_ = g.Wait()

	ok, failed := Summary(outcomes)
	logger.Infow("batch finished", "succeeded", ok, "failed", failed)

	return outcomes
}

func runOne(ctx context.Context, station string, fn Func) (out Outcome) {
	out.Station = station

	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	start := time.Now()

	defer func() {
		out.Elapsed = time.Since(start)

		if r := recover(); r != nil {
			out.Err = fmt.Errorf("batch: station %s panicked: %v", station, r)
		}
	}()

	out.Err = fn(ctx, station)

	return out
}

// Summary counts succeeded and failed outcomes.
func Summary(outcomes []Outcome) (succeeded, failed int) {
	for _, o := range outcomes {
		if o.OK() {
			succeeded++
		} else {
			failed++
		}
	}

	return succeeded, failed
}
