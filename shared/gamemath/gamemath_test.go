package gamemath

import (
	"math"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00:00"},
		{"rounds down", 1400 * time.Millisecond, "00:01"},
		{"rounds up", 59500 * time.Millisecond, "01:00"},
		{"minutes", 125 * time.Second, "02:05"},
		{"past an hour", 61*time.Minute + 9*time.Second, "61:09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestTicksToDuration(t *testing.T) {
	if got := TicksToDuration(90, 60); got != 1500*time.Millisecond {
		t.Errorf("TicksToDuration(90, 60) = %v", got)
	}
	if got := TicksToDuration(10, 0); got != 0 {
		t.Errorf("TicksToDuration with zero tps = %v", got)
	}
}

func TestBoostVelocity(t *testing.T) {
	tests := []struct {
		name   string
		speedY float64
		want   float64
	}{
		{"from rest", 0, -8},
		{"rising slowly", -3, -5},
		{"falling is capped", 6, -10},
		{"already fast", -9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoostVelocity(tt.speedY, 8, 10); got != tt.want {
				t.Errorf("BoostVelocity(%v) = %v, want %v", tt.speedY, got, tt.want)
			}
		})
	}
}

func TestClampAxis(t *testing.T) {
	tests := []struct {
		name                   string
		center, view, min, max float64
		want                   float64
	}{
		{"inside", 500, 200, 0, 1000, 500},
		{"left edge", 50, 200, 0, 1000, 100},
		{"right edge", 990, 200, 0, 1000, 900},
		{"level smaller than view", 10, 640, 0, 320, 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampAxis(tt.center, tt.view, tt.min, tt.max); got != tt.want {
				t.Errorf("ClampAxis() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFitAspect(t *testing.T) {
	w, h := FitAspect(1920, 1200, 16.0/9.0)
	if w != 1920 || math.Abs(h-1080) > 1e-9 {
		t.Errorf("FitAspect(1920,1200) = %v x %v", w, h)
	}
	w, h = FitAspect(2560, 1080, 16.0/9.0)
	if h != 1080 || math.Abs(w-1920) > 1e-9 {
		t.Errorf("FitAspect(2560,1080) = %v x %v", w, h)
	}
}

func TestApplyFriction(t *testing.T) {
	if got := ApplyFriction(3, 0.5); got != 2.5 {
		t.Errorf("ApplyFriction(3) = %v", got)
	}
	if got := ApplyFriction(-0.2, 0.5); got != 0 {
		t.Errorf("ApplyFriction(-0.2) = %v", got)
	}
	if got := ClampSpeed(-9, 6); got != -6 {
		t.Errorf("ClampSpeed(-9) = %v", got)
	}
}

func TestPatrolWalksBackAndForth(t *testing.T) {
	p := NewPatrol([]Vec{{0, 0}, {10, 0}})
	pos := Vec{0, 0}
	var vel Vec

	var turns []int
	for tick := 0; tick < 200; tick++ {
		step := p.Step(pos, vel, 1, 1.5)
		if step.Snap != nil {
			pos = *step.Snap
			turns = append(turns, tick)
		}
		vel = step.Velocity
		pos = pos.Add(vel)

		if pos.X < -1.5 || pos.X > 11.5 {
			t.Fatalf("tick %d: patrol left its path at %+v", tick, pos)
		}
	}

	if len(turns) < 4 {
		t.Fatalf("expected several turnarounds, got %v", turns)
	}
}

func TestPatrolStep(t *testing.T) {
	t.Run("heads toward target", func(t *testing.T) {
		p := NewPatrol([]Vec{{0, 0}, {10, 0}})
		step := p.Step(Vec{0, 0}, Vec{}, 50, 75)
		if step.Snap != nil || step.Velocity != (Vec{50, 0}) {
			t.Errorf("step = %+v", step)
		}
	})

	t.Run("passing the last point turns around", func(t *testing.T) {
		p := NewPatrol([]Vec{{0, 0}, {10, 0}, {20, 0}})
		p.Index = 2
		step := p.Step(Vec{21, 0}, Vec{50, 0}, 50, 75)
		if step.Snap == nil || *step.Snap != (Vec{20, 0}) {
			t.Fatalf("expected snap to {20 0}, got %+v", step.Snap)
		}
		if p.Forward || p.Index != 1 {
			t.Errorf("patrol = %+v, want backward at index 1", p)
		}
		if step.Velocity != (Vec{-75, 0}) {
			t.Errorf("velocity = %+v, want {-75 0}", step.Velocity)
		}
	})

	t.Run("passing the first point turns forward", func(t *testing.T) {
		p := &Patrol{Points: []Vec{{0, 0}, {10, 0}}, Index: 0, Forward: false}
		step := p.Step(Vec{-1, 0}, Vec{-50, 0}, 50, 75)
		if !p.Forward || p.Index != 1 || step.Velocity != (Vec{75, 0}) {
			t.Errorf("patrol = %+v, step = %+v", p, step)
		}
	})

	t.Run("single point stays put", func(t *testing.T) {
		p := NewPatrol([]Vec{{3, 3}})
		if step := p.Step(Vec{3, 3}, Vec{}, 50, 75); step.Velocity != (Vec{}) || step.Snap != nil {
			t.Errorf("step = %+v", step)
		}
	})
}
