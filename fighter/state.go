package fighter

import (
	"time"

	"github.com/automoto/mauricefight/assets/animations"
	"github.com/automoto/mauricefight/config"
)

// Transition is a state's decision: where to go and which way to face.
type Transition struct {
	State     config.StateID
	Direction Direction
	Changed   bool
}

// Context is what a state sees when deciding.
type Context struct {
	State     config.StateID
	Facing    Direction
	Input     InputState
	Animation *animations.Animation
	Now       time.Duration
}

// State is the behavior of one fighter state. Implementations hold no mutable
// data and are shared for the fighter's lifetime. The set is closed.
type State interface {
	ID() config.StateID
	Animation() config.AnimationDef
	// OnEvent decides the response to a semantic event. It must not touch the
	// animation.
	OnEvent(ev Event, ctx Context) Transition
	// OnTick advances the animation and decides whether to leave the state.
	OnTick(ctx Context) Transition

	state()
}

func stay(ctx Context) Transition {
	return Transition{State: ctx.State, Direction: ctx.Facing}
}

// to builds a transition and flags it as a change when either the state or
// the direction differs from the current one.
func to(ctx Context, st config.StateID, dir Direction) Transition {
	return Transition{
		State:     st,
		Direction: dir,
		Changed:   st != ctx.State || dir != ctx.Facing,
	}
}

// advance steps the animation and reports completion.
func advance(ctx Context) bool {
	_, done := ctx.Animation.Advance(ctx.Now)
	return done
}
