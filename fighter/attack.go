package fighter

import "github.com/automoto/mauricefight/config"

// attackState is shared by HighKick, LeftPunch and RightPunch. An attack
// cannot be cancelled or turned; it returns to Idle once played.
type attackState struct {
	id  config.StateID
	def config.AnimationDef
}

func (s attackState) ID() config.StateID { return s.id }
func (s attackState) Animation() config.AnimationDef { return s.def }
func (attackState) state() {}

func (s attackState) OnEvent(_ Event, ctx Context) Transition {
	return stay(ctx)
}

func (s attackState) OnTick(ctx Context) Transition {
	if advance(ctx) {
		return to(ctx, config.Idle, ctx.Facing)
	}
	return stay(ctx)
}

// attack starts the attack named by kind, or stays put for NoAttack.
func attack(ctx Context, kind AttackKind) Transition {
	st := kind.State()
	if st == config.StateNone {
		return stay(ctx)
	}
	return to(ctx, st, ctx.Facing)
}
