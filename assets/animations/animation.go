// Package animations steps through the frames of a horizontal sprite strip.
package animations

// Mode decides what happens once the last frame has been shown.
type Mode int

const (
	Loop Mode = iota
	// Hold stays on the last frame.
	Hold
)

type Animation struct {
	First         int
	Last          int
	Step          int
	TicksPerFrame float32
	Mode          Mode

	ticks float32
	frame int
	done  bool
}

func NewAnimation(first, last, step int, ticksPerFrame float32) *Animation {
	a := &Animation{
		First:         first,
		Last:          last,
		Step:          max(step, 1),
		TicksPerFrame: ticksPerFrame,
	}
	a.Restart()
	return a
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	if a.done && a.Mode == Hold {
		return
	}
	a.ticks--
	if a.ticks >= 0 {
		return
	}
	a.ticks = a.TicksPerFrame

	if next := a.frame + a.Step; next <= a.Last {
		a.frame = next
		return
	}
	a.done = true
	if a.Mode == Loop {
		a.frame = a.First
	}
}

// Frame is the sheet index to draw.
func (a *Animation) Frame() int {
	return a.frame
}

// Done reports whether the last frame has been played through since the
// last Restart.
func (a *Animation) Done() bool {
	return a.done
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.ticks = a.TicksPerFrame
	a.done = false
}

// Frames lists every sheet index the animation can show, in play order.
func (a *Animation) Frames() []int {
	var out []int
	for i := a.First; i <= a.Last; i += a.Step {
		out = append(out, i)
	}
	return out
}
