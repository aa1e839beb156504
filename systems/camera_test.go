package systems

import (
	"math"
	"testing"

	"github.com/automoto/shadow-runner/components"
	"github.com/automoto/shadow-runner/config"
)

func TestClampCameraTarget(t *testing.T) {
	viewW, viewH := ViewSize(1)
	if viewW != float64(config.C.Width) || viewH != float64(config.C.Height) {
		t.Fatalf("ViewSize(1) = %v x %v, want the screen size", viewW, viewH)
	}

	tests := []struct {
		name         string
		x, y         float64
		levelW       float64
		levelH       float64
		wantX, wantY float64
	}{
		{"inside", 800, 200, 1600, 368, 800, 368 - viewH/2},
		{"left edge", 10, 10, 1600, 368, viewW / 2, viewH / 2},
		{"right edge", 1590, 360, 1600, 368, 1600 - viewW/2, 368 - viewH/2},
		{"level narrower than view", 100, 100, 320, 368, 160, viewH / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := clampCameraTarget(tt.x, tt.y, 1, tt.levelW, tt.levelH)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("clampCameraTarget() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestShakeOffset(t *testing.T) {
	tests := []struct {
		name    string
		shake   components.ScreenShakeData
		maxAmp  float64
		wantNil bool
	}{
		{"fresh", components.ScreenShakeData{Strength: 6, Total: 20, Elapsed: 1}, 6, false},
		{"half way", components.ScreenShakeData{Strength: 6, Total: 20, Elapsed: 10}, 3, false},
		{"finished", components.ScreenShakeData{Strength: 6, Total: 20, Elapsed: 20}, 0, true},
		{"no duration", components.ScreenShakeData{Strength: 6}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := shakeOffset(&tt.shake)
			if tt.wantNil && (dx != 0 || dy != 0) {
				t.Fatalf("shakeOffset() = (%v, %v), want no offset", dx, dy)
			}
			if math.Abs(dx) > tt.maxAmp || math.Abs(dy) > tt.maxAmp {
				t.Errorf("shakeOffset() = (%v, %v), want within %v", dx, dy, tt.maxAmp)
			}
		})
	}
}
