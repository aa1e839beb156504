package systems

import (
	"testing"

	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/shared/leveldata"
)

func held(actions ...cfg.ActionID) *components.InputData {
	input := &components.InputData{}
	for _, a := range actions {
		input.Held[a] = true
	}
	return input
}

func TestNextTutorialStep(t *testing.T) {
	jumpHeld := held(cfg.ActionJump)
	jumpHeld.Before[cfg.ActionJump] = true

	tests := []struct {
		name  string
		step  components.TutorialStep
		input *components.InputData
		want  components.TutorialStep
	}{
		{"waits for right", components.TutorialMoveRight, held(), components.TutorialMoveRight},
		{"left does not count first", components.TutorialMoveRight, held(cfg.ActionMoveLeft), components.TutorialMoveRight},
		{"right", components.TutorialMoveRight, held(cfg.ActionMoveRight), components.TutorialMoveLeft},
		{"left", components.TutorialMoveLeft, held(cfg.ActionMoveLeft), components.TutorialJump},
		{"jump press", components.TutorialJump, held(cfg.ActionJump), components.TutorialGoal},
		{"jump held from before", components.TutorialJump, jumpHeld, components.TutorialJump},
		{"goal ignores input", components.TutorialGoal, held(cfg.ActionJump), components.TutorialGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextTutorialStep(tt.step, tt.input); got != tt.want {
				t.Errorf("nextTutorialStep() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTutorialText(t *testing.T) {
	if got := tutorialText(components.TutorialMoveRight); got != cfg.Tutorial.Steps[0] {
		t.Errorf("MoveRight text = %q", got)
	}
	if got := tutorialText(components.TutorialGoal); got != cfg.Tutorial.GoalText {
		t.Errorf("Goal text = %q, want %q", got, cfg.Tutorial.GoalText)
	}
	if got := tutorialText(components.TutorialDone); got != "" {
		t.Errorf("Done text = %q, want empty", got)
	}
}

func TestAnchorPanel(t *testing.T) {
	const sw, sh, w, h = 640.0, 360.0, 200.0, 60.0

	tests := []struct {
		anchor string
		x, y   float64
	}{
		{leveldata.AnchorTopLeft, panelInset, introTop},
		{leveldata.AnchorBottomLeft, panelInset, sh - h - panelInset},
		{leveldata.AnchorBottom, (sw - w) / 2, sh - h - panelInset},
		{leveldata.AnchorBottomRight, sw - w - panelInset, sh - h - panelInset},
		{"", (sw - w) / 2, introTop},
	}

	for _, tt := range tests {
		x, y := anchorPanel(tt.anchor, w, h, sw, sh)
		if x != tt.x || y != tt.y {
			t.Errorf("anchorPanel(%q) = (%v, %v), want (%v, %v)", tt.anchor, x, y, tt.x, tt.y)
		}
	}
}

func TestLegendImageMissingIcon(t *testing.T) {
	for _, name := range []string{"", "does_not_exist.png", "../levels/catalog.yaml"} {
		if img := legendImage(name); img != nil {
			t.Errorf("legendImage(%q) = %v, want nil", name, img)
		}
	}
	if !missingIcons["does_not_exist.png"] {
		t.Error("missing icon was not recorded")
	}
}
