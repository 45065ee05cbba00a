package animations

import (
	"time"

	"github.com/automoto/mauricefight/config"
)

// Animation steps through the frames of one AnimationDef on a millisecond
// clock. Frames are relative to the definition: 0 is def.Start on the sheet.
type Animation struct {
	def     config.AnimationDef
	frame   int
	last    time.Duration // when the current frame was first shown
	started bool
}

func NewAnimation(def config.AnimationDef) *Animation {
	return &Animation{def: def}
}

// Reset switches to def and rewinds to the first frame. The frame timer starts
// on the next Advance.
func (a *Animation) Reset(def config.AnimationDef) {
	a.def = def
	a.frame = 0
	a.last = 0
	a.started = false
}

// Restart rewinds the current definition.
func (a *Animation) Restart() {
	a.Reset(a.def)
}

// Advance moves the animation forward to time now and returns the frame to
// display and whether a one-shot animation has finished.
//
// The first call after a reset only starts the frame timer. After that a frame
// is due once DelayMs has elapsed since the previous step. A repeated
// animation wraps from its terminal frame back to 0. A one-shot animation holds
// its terminal frame and keeps reporting completion on every due call until it
// is reset.
func (a *Animation) Advance(now time.Duration) (int, bool) {
	if !a.started {
		a.started = true
		a.last = now
		return a.frame, false
	}
	if !a.due(now) {
		return a.frame, false
	}

	if a.frame >= a.def.Last() {
		if a.def.Repeat == config.OneShot {
			a.frame = a.def.Last()
			return a.frame, true
		}
		a.frame = 0
		a.last = now
		return a.frame, false
	}

	a.frame++
	a.last = now
	return a.frame, false
}

func (a *Animation) due(now time.Duration) bool {
	elapsed := now - a.last
	if a.def.DelayMs <= 0 {
		// a zero delay still needs the clock to move, one frame per distinct instant
		return elapsed > 0
	}
	return elapsed.Milliseconds() >= int64(a.def.DelayMs)
}

// Frame returns the current frame relative to the definition start.
func (a *Animation) Frame() int {
	return a.frame
}

// SheetIndex returns the current frame as an absolute sprite sheet index.
func (a *Animation) SheetIndex() int {
	return a.def.Start + a.frame
}

func (a *Animation) Def() config.AnimationDef {
	return a.def
}

// Started reports whether the frame timer is running.
func (a *Animation) Started() bool {
	return a.started
}
