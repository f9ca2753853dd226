package models

import (
	"strings"
	"testing"
)

func TestNewEncodingProgress(t *testing.T) {
	ep := NewEncodingProgress(120)

	if ep.TotalDuration != 120 {
		t.Errorf("TotalDuration = %f; want 120", ep.TotalDuration)
	}
	if ep.State != ProgressStateStarting {
		t.Errorf("State = %s; want %s", ep.State, ProgressStateStarting)
	}
	if ep.Progress != 0 {
		t.Errorf("Progress = %f; want 0", ep.Progress)
	}
}

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		name           string
		totalDuration  float64
		currentSeconds float64
		expected       float64
	}{
		{"Halfway", 100, 50, 50},
		{"Complete", 100, 100, 100},
		{"Overshoot clamps to 100", 100, 150, 100},
		{"Start", 100, 0, 0},
		{"Unknown duration stays at zero", 0, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := NewEncodingProgress(tt.totalDuration)
			ep.CalculateProgress(tt.currentSeconds)
			if ep.Progress != tt.expected {
				t.Errorf("Progress = %f; want %f", ep.Progress, tt.expected)
			}
		})
	}
}

func TestEstimatedTimeRemaining_NoData(t *testing.T) {
	ep := NewEncodingProgress(100)

	// No speed or progress yet: ETA is unknown.
	if eta := ep.EstimatedTimeRemaining(); eta != 0 {
		t.Errorf("Expected zero ETA with no data, got %v", eta)
	}
}

func TestFormatSummary(t *testing.T) {
	ep := NewEncodingProgress(100)
	ep.Speed = 2.5
	ep.Bitrate = "128.0kbits/s"
	ep.Size = "1024kB"
	ep.CalculateProgress(40)

	summary := ep.FormatSummary()
	for _, want := range []string{"40.0%", "2.50x", "128.0kbits/s", "1024kB"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Expected %q in summary, got %q", want, summary)
		}
	}
}
