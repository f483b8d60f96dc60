package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cwbudde/algo-strongmotion/internal/log"
)

func TestRun_IsolatesFailures(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	log.Set(zap.New(obs))

	errBad := errors.New("bad record")
	stations := []string{"A", "B", "C", "D", "E"}

	outcomes := Run(context.Background(), stations, 2, func(_ context.Context, station string) error {
		switch station {
		case "B":
			return errBad
		case "D":
			panic("corrupt")
		}

		return nil
	})

	if len(outcomes) != len(stations) {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), len(stations))
	}

	for i, o := range outcomes {
		if o.Station != stations[i] {
			t.Fatalf("outcome %d is %q, want %q", i, o.Station, stations[i])
		}
	}

	if !errors.Is(outcomes[1].Err, errBad) {
		t.Fatalf("B: err=%v", outcomes[1].Err)
	}

	if outcomes[3].Err == nil {
		t.Fatal("D: panic not reported")
	}

	ok, failed := Summary(outcomes)
	if ok != 3 || failed != 2 {
		t.Fatalf("Summary=%d/%d want 3/2", ok, failed)
	}

	if n := logs.FilterMessage("station failed").Len(); n != 2 {
		t.Fatalf("logged %d failures, want 2", n)
	}

	last := logs.FilterMessage("batch finished").All()
	if len(last) != 1 || last[0].ContextMap()["run_id"] == "" {
		t.Fatalf("missing run summary: %+v", last)
	}
}

func TestRun_BoundsConcurrency(t *testing.T) {
	log.Set(zap.NewNop())

	var inFlight, peak atomic.Int32

	stations := make([]string, 16)
	for i := range stations {
		stations[i] = string(rune('a' + i))
	}

	block := make(chan struct{})
	done := make(chan []Outcome)

	go func() {
		done <- Run(context.Background(), stations, 3, func(context.Context, string) error {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}

			<-block
			inFlight.Add(-1)

			return nil
		})
	}()

	close(block)
	outcomes := <-done

	if p := peak.Load(); p > 3 {
		t.Fatalf("peak concurrency %d exceeds 3", p)
	}

	if ok, _ := Summary(outcomes); ok != len(stations) {
		t.Fatalf("succeeded %d want %d", ok, len(stations))
	}
}

func TestRun_Cancelled(t *testing.T) {
	log.Set(zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32

	outcomes := Run(ctx, []string{"A", "B"}, 1, func(context.Context, string) error {
		calls.Add(1)
		return nil
	})

	if calls.Load() != 0 {
		t.Fatalf("fn called %d times after cancel", calls.Load())
	}

	for _, o := range outcomes {
		if !errors.Is(o.Err, context.Canceled) {
			t.Fatalf("%s: err=%v want context.Canceled", o.Station, o.Err)
		}
	}
}
