package fighter

import "github.com/automoto/mauricefight/config"

// idleState: standing still, breathing.
type idleState struct{ def config.AnimationDef }

func (s idleState) ID() config.StateID { return config.Idle }
func (s idleState) Animation() config.AnimationDef { return s.def }
func (idleState) state() {}

func (s idleState) OnEvent(ev Event, ctx Context) Transition {
	switch ev.Kind {
	case Move:
		return to(ctx, config.Move, ev.Direction)
	case Crouch:
		return to(ctx, config.Crouch, ctx.Facing)
	case Attack:
		return attack(ctx, ev.Attack)
	}
	return stay(ctx)
}

func (s idleState) OnTick(ctx Context) Transition {
	advance(ctx)
	return stay(ctx)
}

// moveState: walking in the facing direction.
type moveState struct{ def config.AnimationDef }

func (s moveState) ID() config.StateID { return config.Move }
func (s moveState) Animation() config.AnimationDef { return s.def }
func (moveState) state() {}

func (s moveState) OnEvent(ev Event, ctx Context) Transition {
	switch ev.Kind {
	case Move:
		// turning around keeps walking without restarting the cycle
		return to(ctx, config.Move, ev.Direction)
	case EndMove:
		return to(ctx, config.Idle, ctx.Facing)
	case Crouch:
		return to(ctx, config.Crouch, ctx.Facing)
	case Attack:
		return attack(ctx, ev.Attack)
	}
	return stay(ctx)
}

func (s moveState) OnTick(ctx Context) Transition {
	advance(ctx)
	return stay(ctx)
}

// crouchState holds the crouch pose until the key is released.
type crouchState struct{ def config.AnimationDef }

func (s crouchState) ID() config.StateID { return config.Crouch }
func (s crouchState) Animation() config.AnimationDef { return s.def }
func (crouchState) state() {}

func (s crouchState) OnEvent(ev Event, ctx Context) Transition {
	switch ev.Kind {
	case EndCrouch:
		return to(ctx, config.EndCrouch, ctx.Facing)
	case Move:
		return to(ctx, config.Crouch, ev.Direction)
	}
	return stay(ctx)
}

func (s crouchState) OnTick(ctx Context) Transition {
	advance(ctx)
	return stay(ctx)
}

// endCrouchState plays the stand-up animation once. Crouching again cuts it
// short.
type endCrouchState struct{ def config.AnimationDef }

func (s endCrouchState) ID() config.StateID { return config.EndCrouch }
func (s endCrouchState) Animation() config.AnimationDef { return s.def }
func (endCrouchState) state() {}

func (s endCrouchState) OnEvent(ev Event, ctx Context) Transition {
	switch ev.Kind {
	case Crouch:
		return to(ctx, config.Crouch, ctx.Facing)
	case Move:
		return to(ctx, config.EndCrouch, ev.Direction)
	}
	return stay(ctx)
}

func (s endCrouchState) OnTick(ctx Context) Transition {
	if advance(ctx) {
		return to(ctx, config.Idle, ctx.Facing)
	}
	return stay(ctx)
}
