package systems

import "testing"

func TestAdjustVolumeStep(t *testing.T) {
	tests := []struct {
		current   float64
		direction int
		want      float64
	}{
		{0.5, 1, 0.75},
		{0.5, -1, 0.25},
		{1.0, 1, 1.0},
		{0, -1, 0},
		{0.6, 1, 0.75}, // snaps to the nearest step first
		{0.9, -1, 0.75},
	}

	for _, tt := range tests {
		if got := adjustVolumeStep(tt.current, tt.direction); got != tt.want {
			t.Errorf("adjustVolumeStep(%v, %d) = %v, want %v", tt.current, tt.direction, got, tt.want)
		}
	}
}

func TestFormatVolumeBar(t *testing.T) {
	tests := []struct {
		volume float64
		want   string
	}{
		{0, "[..........] 0%"},
		{0.5, "[|||||.....] 50%"},
		{0.75, "[||||||||..] 75%"},
		{1, "[||||||||||] 100%"},
	}

	for _, tt := range tests {
		if got := formatVolumeBar(tt.volume); got != tt.want {
			t.Errorf("formatVolumeBar(%v) = %q, want %q", tt.volume, got, tt.want)
		}
	}
}

func TestFormatToggle(t *testing.T) {
	if got := formatToggle(true); got != "[X] On" {
		t.Errorf("formatToggle(true) = %q", got)
	}
	if got := formatToggle(false); got != "[ ] Off" {
		t.Errorf("formatToggle(false) = %q", got)
	}
}
