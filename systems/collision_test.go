package systems

import (
	"testing"

	"github.com/automoto/shadow-runner/components"
	"github.com/automoto/shadow-runner/tags"
	"github.com/solarlune/resolv"
)

func testSpace(objects ...*resolv.Object) {
	space := resolv.NewSpace(320, 320, 16, 16)
	space.Add(objects...)
}

func TestMoveY(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		speedY     float64
		wantY      float64
		wantGround bool
		wantSpeedY float64
	}{
		{"lands on ground", 32, 140, 8, 144, true, 0},
		{"stays grounded at rest", 32, 144, 0, 144, true, 0},
		{"falls freely", 32, 100, 4, 104, false, 4},
		{"bumps the ceiling", 112, 132, -6, 128, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ground := resolv.NewObject(0, 160, 320, 16, tags.ResolvSolid)
			ceiling := resolv.NewObject(96, 112, 64, 16, tags.ResolvSolid)
			body := resolv.NewObject(tt.x, tt.y, 16, 16)
			testSpace(ground, ceiling, body)

			physics := &components.PhysicsData{SpeedY: tt.speedY}
			moveY(physics, body)

			if body.Y != tt.wantY {
				t.Errorf("Y = %v, want %v", body.Y, tt.wantY)
			}
			if (physics.OnGround != nil) != tt.wantGround {
				t.Errorf("OnGround = %v, want grounded %v", physics.OnGround, tt.wantGround)
			}
			if physics.SpeedY != tt.wantSpeedY {
				t.Errorf("SpeedY = %v, want %v", physics.SpeedY, tt.wantSpeedY)
			}
		})
	}
}

func TestMoveX(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		speedX     float64
		wantX      float64
		wantSpeedX float64
	}{
		{"stops at wall", 40, 140, 10, 48, 0},
		{"open floor", 200, 140, 3, 203, 3},
		{"passes over a wall", 40, 80, 10, 50, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wall := resolv.NewObject(64, 100, 16, 60, tags.ResolvSolid)
			body := resolv.NewObject(tt.x, tt.y, 16, 16)
			testSpace(wall, body)

			physics := &components.PhysicsData{SpeedX: tt.speedX}
			moveX(physics, body)

			if body.X != tt.wantX || physics.SpeedX != tt.wantSpeedX {
				t.Errorf("X, SpeedX = %v, %v, want %v, %v", body.X, physics.SpeedX, tt.wantX, tt.wantSpeedX)
			}
		})
	}
}
