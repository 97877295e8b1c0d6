package system

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFindLatestConfig(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	files := []struct {
		name string
		age  time.Duration
	}{
		{"old.yaml", 3 * time.Hour},
		{"newest.YML", time.Hour},
		{"notes.txt", 0},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte("fps: 10\n"), 0644); err != nil {
			t.Fatal(err)
		}
		mod := now.Add(-f.age)
		if err := os.Chtimes(path, mod, mod); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "dir.yaml"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindLatestConfig(dir)
	if err != nil {
		t.Fatalf("FindLatestConfig failed: %v", err)
	}
	if filepath.Base(got) != "newest.YML" {
		t.Errorf("Expected newest.YML, got %s", got)
	}
}

func TestFindLatestConfigEmpty(t *testing.T) {
	if _, err := FindLatestConfig(t.TempDir()); err == nil {
		t.Error("Expected error for a folder without YAML files")
	}
	if _, err := FindLatestConfig(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for a missing folder")
	}
}

func TestProbe(t *testing.T) {
	info := Probe()
	if info.LogicalCPUs < 1 {
		t.Errorf("Expected at least one CPU, got %d", info.LogicalCPUs)
	}
	t.Logf("CPUs: %d, available: %d MB", info.LogicalCPUs, info.AvailableBytes>>20)
}

func TestWorkers(t *testing.T) {
	tests := []struct {
		name      string
		info      Info
		requested int
		expected  int
	}{
		{"explicit", Info{LogicalCPUs: 8}, 3, 3},
		{"auto", Info{LogicalCPUs: 8}, 0, 8},
		{"unknown cpus", Info{}, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Workers(tt.requested); got != tt.expected {
				t.Errorf("Expected %d workers, got %d", tt.expected, got)
			}
		})
	}
}

func TestHeadroom(t *testing.T) {
	if got := FrameMemory(10, 128, 64); got != 81920 {
		t.Errorf("Expected 81920 bytes, got %d", got)
	}
	if got := FrameMemory(-1, 128, 64); got != 0 {
		t.Errorf("Expected 0 for negative frames, got %d", got)
	}

	small := Info{AvailableBytes: 8192}
	if err := small.Headroom(1, 128, 64); err != nil {
		t.Errorf("One frame should fit: %v", err)
	}
	if err := small.Headroom(2, 128, 64); !errors.Is(err, ErrInsufficientMemory) {
		t.Errorf("Expected ErrInsufficientMemory, got %v", err)
	}
	if err := (Info{}).Headroom(1000, 128, 64); err != nil {
		t.Errorf("Unknown memory should not fail: %v", err)
	}
}
