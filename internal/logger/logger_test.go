package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "reconciled entry",
			fields:  Fields{"summary": "Sharks @ Jets", "action": "created"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "fetch failed",
			err:     errors.New("connection refused"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(LevelInfo, &buf)

			l.log(tt.level, tt.message, tt.fields, tt.err)

			if logged := buf.Len() > 0; logged != tt.want {
				t.Fatalf("log() logged = %v, want %v", logged, tt.want)
			}
			if !tt.want {
				return
			}

			var entry LogEntry
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if entry.Message != tt.message {
				t.Errorf("Message = %q, want %q", entry.Message, tt.message)
			}
			if entry.Level != string(tt.level) {
				t.Errorf("Level = %q, want %q", entry.Level, tt.level)
			}
			if tt.err != nil && !strings.Contains(entry.Error, tt.err.Error()) {
				t.Errorf("Error = %q, want to contain %q", entry.Error, tt.err.Error())
			}
		})
	}
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("sync.created")
	m.IncrCounter("sync.created")
	m.IncrCounter("sync.skipped")

	if got := m.Counter("sync.created"); got != 2 {
		t.Errorf("Counter(sync.created) = %d, want 2", got)
	}
	if got := m.Counter("sync.skipped"); got != 1 {
		t.Errorf("Counter(sync.skipped) = %d, want 1", got)
	}
	if got := m.Counter("sync.deleted"); got != 0 {
		t.Errorf("Counter(sync.deleted) = %d, want 0", got)
	}
}

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("sync.created")
	m.RecordTiming("fetch.officials", 100*time.Millisecond)
	m.RecordTiming("fetch.officials", 200*time.Millisecond)

	snapshot := m.Snapshot()

	counters, ok := snapshot["counters"].(map[string]int64)
	if !ok {
		t.Fatal("snapshot missing counters")
	}
	if counters["sync.created"] != 1 {
		t.Errorf("counters[sync.created] = %d, want 1", counters["sync.created"])
	}

	timings, ok := snapshot["timings"].(map[string]map[string]interface{})
	if !ok {
		t.Fatal("snapshot missing timings")
	}
	stats, ok := timings["fetch.officials"]
	if !ok {
		t.Fatal("snapshot missing fetch.officials timing")
	}
	if stats["count"] != 2 {
		t.Errorf("count = %v, want 2", stats["count"])
	}
	if stats["average"] != "150ms" {
		t.Errorf("average = %v, want 150ms", stats["average"])
	}
}
