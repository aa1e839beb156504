package components

import (
	"testing"

	cfg "github.com/automoto/shadow-runner/config"
)

func TestInputEdges(t *testing.T) {
	tests := []struct {
		name                         string
		before, held                 bool
		pressed, justPressed, justUp bool
	}{
		{"idle", false, false, false, false, false},
		{"press", false, true, true, true, false},
		{"hold", true, true, true, false, false},
		{"release", true, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &InputData{}
			in.Held[cfg.ActionJump] = tt.before
			in.Advance()
			in.Held[cfg.ActionJump] = tt.held

			if got := in.Pressed(cfg.ActionJump); got != tt.pressed {
				t.Errorf("Pressed() = %v, want %v", got, tt.pressed)
			}
			if got := in.JustPressed(cfg.ActionJump); got != tt.justPressed {
				t.Errorf("JustPressed() = %v, want %v", got, tt.justPressed)
			}
			if got := in.JustReleased(cfg.ActionJump); got != tt.justUp {
				t.Errorf("JustReleased() = %v, want %v", got, tt.justUp)
			}
		})
	}
}
