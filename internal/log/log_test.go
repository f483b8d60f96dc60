package log

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetAndWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))

	Infow("run started", "root", "/data")
	With("run_id", "abc").Warnw("station failed", "station", "S1")
	Debugw("detail")
	Errorw("boom", "error", "x")

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}

	if entries[0].Message != "run started" || entries[0].ContextMap()["root"] != "/data" {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}

	fields := entries[1].ContextMap()
	if fields["run_id"] != "abc" || fields["station"] != "S1" || entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("unexpected child entry %+v", entries[1])
	}
}

func TestInit(t *testing.T) {
	if err := Init(true); err != nil {
		t.Fatalf("Init(true): %v", err)
	}

	if Logger() == nil {
		t.Fatal("nil logger after Init")
	}

	Sync()
}
