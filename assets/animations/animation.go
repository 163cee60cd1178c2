package animations

import "github.com/automoto/animtester/config"

// Playback is the frame loop of the animation being viewed.
// It is owned by the viewer session, so facing and speed survive character
// switches.
type Playback struct {
	Animation     config.AnimationID
	Direction     config.Direction
	Frame         int
	Ticks         int // ticks since the last frame advance
	TicksPerFrame int // lower is faster
}

func NewPlayback(anim config.AnimationID, dir config.Direction, ticksPerFrame int) *Playback {
	return &Playback{
		Animation:     anim,
		Direction:     dir,
		TicksPerFrame: clampSpeed(ticksPerFrame),
	}
}

// SetAnimation switches to id and restarts the loop. Unknown ids and the
// animation already playing are ignored.
func (p *Playback) SetAnimation(id config.AnimationID) {
	if !id.Valid() || id == p.Animation {
		return
	}
	p.Animation = id
	p.ResetFrame()
}

func (p *Playback) SetDirection(d config.Direction) {
	if !d.Valid() {
		return
	}
	p.Direction = d
}

// Tick advances the loop by one tick. frames is the frame count of the
// current sheet; zero (no sheet loaded) keeps the frame where it is.
func (p *Playback) Tick(frames int) {
	p.Ticks++
	if p.Ticks < p.TicksPerFrame {
		return
	}
	p.Ticks = 0
	if frames > 0 {
		p.Frame = (p.Frame + 1) % frames
	}
}

// SetSpeed changes the ticks per frame by delta, clamped to the configured
// bounds.
func (p *Playback) SetSpeed(delta int) {
	p.TicksPerFrame = clampSpeed(p.TicksPerFrame + delta)
}

// Slower and Faster step the speed by the configured amount.
func (p *Playback) Slower() { p.SetSpeed(config.Viewer.SpeedStep) }
func (p *Playback) Faster() { p.SetSpeed(-config.Viewer.SpeedStep) }

func (p *Playback) ResetFrame() {
	p.Frame = 0
	p.Ticks = 0
}

func clampSpeed(v int) int {
	lo, hi := config.Viewer.MinTicksPerFrame, config.Viewer.MaxTicksPerFrame
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
