package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mlq-scheduler/internal/core"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	want := SchedulerConfig{Port: 9095, MinPriority: 1, MaxPriority: 5, SystemPriorityThreshold: 2}
	if *c != want {
		t.Errorf("config = %+v, want %+v", *c, want)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	yaml := `port: 8080
debug: true
scheduler:
  min_priority: 0
  max_priority: 9
  system_priority_threshold: 4
  max_time_units: 500
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := SchedulerConfig{Port: 8080, Debug: true, MinPriority: 0, MaxPriority: 9, SystemPriorityThreshold: 4, MaxTimeUnits: 500}
	if *c != want {
		t.Errorf("config = %+v, want %+v", *c, want)
	}
	classifier, err := c.Classifier()
	if err != nil {
		t.Fatal(err)
	}
	if q, _ := classifier.Classify(4); q != core.SystemQueue {
		t.Errorf("priority 4 classified as %v", q)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("MLQ_SCHEDULER_SYSTEM_PRIORITY_THRESHOLD", "3")
	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if c.SystemPriorityThreshold != 3 {
		t.Errorf("threshold = %d", c.SystemPriorityThreshold)
	}
}

func TestLoad_InvalidThreshold(t *testing.T) {
	dir := t.TempDir()
	yaml := "scheduler:\n  system_priority_threshold: 8\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); !errors.Is(err, core.ErrInvalidPriority) {
		t.Errorf("error = %v, want %v", err, core.ErrInvalidPriority)
	}
}
