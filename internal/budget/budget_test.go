package budget

import "testing"

func TestAuditOverBudget(t *testing.T) {
	r := Audit(2, 128, 64, 1)

	if r.BytesPerFrame != 1024 {
		t.Errorf("Expected 1024 bytes/frame, got %d", r.BytesPerFrame)
	}
	if r.UsedBytes != 2048 {
		t.Errorf("Expected 2048 used bytes, got %d", r.UsedBytes)
	}
	if r.LimitBytes != 1024 {
		t.Errorf("Expected 1024 limit bytes, got %d", r.LimitBytes)
	}
	if r.WithinBudget {
		t.Error("2048 bytes should exceed a 1 KB limit")
	}
	if r.Percent() != 200 {
		t.Errorf("Expected 200%%, got %.1f", r.Percent())
	}
}

func TestAuditFlipsAtLimit(t *testing.T) {
	// 128x64 => 1 KB per frame, 32 KB limit
	prevUsed := -1
	for frames := 0; frames <= 40; frames++ {
		r := Audit(frames, 128, 64, 32)
		if r.UsedBytes < prevUsed {
			t.Fatalf("Used bytes decreased at %d frames", frames)
		}
		prevUsed = r.UsedBytes

		expected := r.UsedBytes <= r.LimitBytes
		if r.WithinBudget != expected {
			t.Errorf("%d frames: WithinBudget=%v, used=%d limit=%d", frames, r.WithinBudget, r.UsedBytes, r.LimitBytes)
		}
		if frames <= 32 && !r.WithinBudget {
			t.Errorf("%d frames should fit in 32 KB", frames)
		}
		if frames > 32 && r.WithinBudget {
			t.Errorf("%d frames should not fit in 32 KB", frames)
		}
	}
}

func TestBytesPerFrameFloors(t *testing.T) {
	tests := []struct {
		w, h     int
		expected int
	}{
		{128, 64, 1024},
		{128, 32, 512},
		{10, 3, 3},
		{7, 1, 0},
	}

	for _, tt := range tests {
		if got := BytesPerFrame(tt.w, tt.h); got != tt.expected {
			t.Errorf("%dx%d: expected %d, got %d", tt.w, tt.h, tt.expected, got)
		}
	}
}

func TestZeroLimit(t *testing.T) {
	r := Audit(0, 128, 64, 0)
	if !r.WithinBudget {
		t.Error("Zero frames should fit a zero limit")
	}
	if r.Percent() != 0 {
		t.Errorf("Expected 0%% for zero limit, got %.1f", r.Percent())
	}
	if Audit(1, 128, 64, 0).WithinBudget {
		t.Error("One frame should not fit a zero limit")
	}
}
