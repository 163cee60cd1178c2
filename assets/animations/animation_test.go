package animations

import (
	"testing"

	"github.com/automoto/animtester/config"
)

func TestTickAdvancesOneFramePerCycle(t *testing.T) {
	for _, speed := range []int{1, 2, 8, 30} {
		p := NewPlayback(config.Run, config.Right, speed)
		frames := config.Run.Def().Frames

		for i := 0; i < speed-1; i++ {
			p.Tick(frames)
		}
		if p.Frame != 0 {
			t.Fatalf("speed %d: frame advanced early to %d", speed, p.Frame)
		}
		p.Tick(frames)
		if p.Frame != 1 || p.Ticks != 0 {
			t.Fatalf("speed %d: got frame %d ticks %d, want 1 and 0", speed, p.Frame, p.Ticks)
		}
	}
}

func TestTickLoopsBackToStart(t *testing.T) {
	for _, id := range config.AllAnimations() {
		frames := id.Def().Frames
		p := NewPlayback(id, config.Down, 3)
		p.Frame = 1

		for i := 0; i < p.TicksPerFrame*frames; i++ {
			p.Tick(frames)
		}
		if p.Frame != 1 {
			t.Errorf("%s: frame %d after a full loop, want 1", id, p.Frame)
		}
	}
}

func TestTickWithoutSheetHoldsFrame(t *testing.T) {
	p := NewPlayback(config.Run, config.Left, 1)
	for i := 0; i < 5; i++ {
		p.Tick(0)
	}
	if p.Frame != 0 || p.Ticks != 0 {
		t.Fatalf("got frame %d ticks %d, want 0 and 0", p.Frame, p.Ticks)
	}
}

func TestSetAnimation(t *testing.T) {
	p := NewPlayback(config.IdleAnim, config.Down, 8)
	p.Frame, p.Ticks = 3, 5

	p.SetAnimation(config.IdleAnim)
	if p.Frame != 3 || p.Ticks != 5 {
		t.Fatalf("same animation reset state: frame %d ticks %d", p.Frame, p.Ticks)
	}

	p.SetAnimation(config.Phone)
	if p.Animation != config.Phone || p.Frame != 0 || p.Ticks != 0 {
		t.Fatalf("switch: got %+v", *p)
	}
	if p.Direction != config.Down || p.TicksPerFrame != 8 {
		t.Fatalf("switch changed direction or speed: %+v", *p)
	}

	p.Frame = 2
	p.SetAnimation(config.AnimationID(-1))
	p.SetAnimation(config.AnimationCount)
	if p.Animation != config.Phone || p.Frame != 2 {
		t.Fatalf("invalid id changed state: %+v", *p)
	}
}

func TestSetDirection(t *testing.T) {
	p := NewPlayback(config.Idle, config.Down, 8)
	p.Frame = 1

	p.SetDirection(config.Left)
	if p.Direction != config.Left || p.Frame != 1 {
		t.Fatalf("got %+v", *p)
	}

	p.SetDirection(config.DirectionCount)
	p.SetDirection(config.Direction(-3))
	if p.Direction != config.Left {
		t.Fatalf("invalid direction applied: %v", p.Direction)
	}
}

func TestSetSpeedClamps(t *testing.T) {
	p := NewPlayback(config.Idle, config.Down, 8)
	lo, hi := config.Viewer.MinTicksPerFrame, config.Viewer.MaxTicksPerFrame

	for i := 0; i < 50; i++ {
		p.Slower()
		if p.TicksPerFrame < lo || p.TicksPerFrame > hi {
			t.Fatalf("out of range: %d", p.TicksPerFrame)
		}
	}
	if p.TicksPerFrame != hi {
		t.Fatalf("got %d, want %d", p.TicksPerFrame, hi)
	}

	for i := 0; i < 50; i++ {
		p.Faster()
		if p.TicksPerFrame < lo || p.TicksPerFrame > hi {
			t.Fatalf("out of range: %d", p.TicksPerFrame)
		}
	}
	if p.TicksPerFrame != lo {
		t.Fatalf("got %d, want %d", p.TicksPerFrame, lo)
	}

	p.SetSpeed(1000)
	if p.TicksPerFrame != hi {
		t.Fatalf("got %d, want %d", p.TicksPerFrame, hi)
	}
	p.SetSpeed(-1000)
	if p.TicksPerFrame != lo {
		t.Fatalf("got %d, want %d", p.TicksPerFrame, lo)
	}
}

func TestNewPlaybackClampsSpeed(t *testing.T) {
	if got := NewPlayback(config.Idle, config.Down, 0).TicksPerFrame; got != config.Viewer.MinTicksPerFrame {
		t.Errorf("got %d", got)
	}
	if got := NewPlayback(config.Idle, config.Down, 99).TicksPerFrame; got != config.Viewer.MaxTicksPerFrame {
		t.Errorf("got %d", got)
	}
}
