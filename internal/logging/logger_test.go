package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deriverse/drv-smart-contract-common/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := parseLevel(tc.raw)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
	if _, err := parseLevel("trace"); err == nil {
		t.Error("expected error for trace")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, _, err := New("indexer", config.LogConfig{Format: "xml"}); err == nil {
		t.Error("xml format accepted")
	}
	if _, _, err := New("indexer", config.LogConfig{Output: "syslog"}); err == nil {
		t.Error("syslog output accepted")
	}
}

func TestNewFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "keeper.log")
	logger, closeFn, err := New("keeper", config.LogConfig{Output: "file", Format: "json", FilePath: path, MaxSizeMB: 1})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
}

func TestLogFilePath(t *testing.T) {
	if got, want := LogFilePath("indexer", ""), filepath.Join("logs", "indexer", "indexer.log"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := LogFilePath("indexer", " /tmp/x.log "); got != "/tmp/x.log" {
		t.Errorf("got %q", got)
	}
}

func TestMeasureCU(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	meter := &StaticMeter{Remaining: 200_000}
	boom := errors.New("boom")

	err := MeasureCU(logger, meter, "new_spot_order", func() error {
		meter.Consume(1500)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want %v", err, boom)
	}
	out := buf.String()
	for _, want := range []string{"new_spot_order: CU before", "new_spot_order: CU after", "used=1500"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q lacks %q", out, want)
		}
	}
}

func TestMeasureCUWithoutMeter(t *testing.T) {
	called := false
	if err := MeasureCU(nil, nil, "x", func() error { called = true; return nil }); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("fn not called")
	}
}

func TestStaticMeterFloor(t *testing.T) {
	m := &StaticMeter{Remaining: 10}
	m.Consume(25)
	if m.RemainingUnits() != 0 {
		t.Errorf("got %d, want 0", m.RemainingUnits())
	}
}
