package runlog

import (
	"os"
	"testing"
	"time"
)

func TestRunLogger_WriteAndRead(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	l := NewRunLogger(dir)
	l.w.now = func() time.Time { return day }
	if err := l.WriteRun(Entry{Tool: "wavegen", Seed: "poo", Result: map[string]any{"count": 20}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := l.WriteRun(Entry{Tool: "scatter", Seed: "poo", Config: map[string]any{"min_distance": 20}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	path := l.w.Path(day)
	entries, err := ReadEntries(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries=%d want 2", len(entries))
	}
	if entries[0].Tool != "wavegen" || entries[1].Tool != "scatter" {
		t.Fatalf("tools mismatch: %+v", entries)
	}
	if entries[0].Time != day.Format(time.RFC3339Nano) {
		t.Fatalf("time=%q", entries[0].Time)
	}
	if got := entries[0].Result["count"]; got != float64(20) {
		t.Fatalf("result count=%v", got)
	}
}

func TestRunLogger_AppendsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		l := NewRunLogger(dir)
		l.w.now = func() time.Time { return day }
		if err := l.WriteRun(Entry{Tool: "seabed"}); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
		if err := l.Close(); err != nil {
			t.Fatalf("close %d: %v", i, err)
		}
	}
	entries, err := ReadEntries(NewRunLogger(dir).w.Path(day))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries=%d want 3", len(entries))
	}
}

func TestJSONLZstdWriter_RotatesPerDay(t *testing.T) {
	dir := t.TempDir()
	w := NewJSONLZstdWriter(dir, "runs")
	day1 := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	day2 := day1.Add(2 * time.Hour)
	cur := day1
	w.now = func() time.Time { return cur }

	if err := w.Write(map[string]int{"a": 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	cur = day2
	if err := w.Write(map[string]int{"b": 2}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	for _, d := range []time.Time{day1, day2} {
		if _, err := os.Stat(w.Path(d)); err != nil {
			t.Fatalf("expected %s: %v", w.Path(d), err)
		}
	}
}

func TestRecord_DisabledWithoutDir(t *testing.T) {
	if err := Record("", Entry{Tool: "wavegen"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	dir := t.TempDir()
	if err := Record(dir, Entry{Tool: "wavegen", Seed: "s"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(ents) != 1 {
		t.Fatalf("files=%d want 1", len(ents))
	}
}
