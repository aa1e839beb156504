package systems

import (
	"testing"

	"github.com/automoto/shadow-runner/assets/animations"
	"github.com/automoto/shadow-runner/components"
)

func TestExpired(t *testing.T) {
	finished := animations.NewAnimation(0, 0, 1, 0)
	finished.Mode = animations.Hold
	finished.Update()

	tests := []struct {
		name  string
		ticks int
		anim  *components.AnimationData
		want  bool
	}{
		{"counting down", 5, nil, false},
		{"last tick", 1, nil, true},
		{"waits for animation", 0, &components.AnimationData{CurrentAnimation: animations.NewAnimation(0, 3, 1, 5)}, false},
		{"animation finished", 0, &components.AnimationData{CurrentAnimation: finished}, true},
		{"no animation", 0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := &components.ExpiryData{Ticks: tt.ticks}
			if got := expired(ex, tt.anim); got != tt.want {
				t.Errorf("expired() = %v, want %v", got, tt.want)
			}
		})
	}
}
