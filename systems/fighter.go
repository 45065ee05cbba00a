package systems

import (
	"math"

	"github.com/automoto/mauricefight/components"
	"github.com/automoto/mauricefight/fighter"
	"github.com/automoto/mauricefight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateFighters drives every fighter one frame: key edges go to the selected
// fighters, then each machine ticks and its body moves by the velocity of the
// state it ends up in.
func UpdateFighters(ecs *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	input := getOrCreateInput(ecs)
	now := arena.Clock.Now()

	tags.Selected.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		if dispatchKeys(f.Machine, input.Pressed, input.Released) == fighter.ReturnToMenu {
			arena.ReturnToMenu = true
		}
	})
	if arena.ReturnToMenu {
		return
	}

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		f.Machine.Tick(now)

		moved := moveFighter(components.Object.Get(e), f.Machine.Velocity())
		components.State.Get(e).Moved = moved
	})
}

// dispatchKeys feeds one frame of key edges to a machine, presses first so
// that switching direction in a single frame never passes through Idle.
func dispatchKeys(m *fighter.Machine, pressed, released []ebiten.Key) fighter.Outcome {
	for _, key := range pressed {
		if m.ProcessInput(fighter.KeyDown(key)) == fighter.ReturnToMenu {
			return fighter.ReturnToMenu
		}
	}
	for _, key := range released {
		if m.ProcessInput(fighter.KeyUp(key)) == fighter.ReturnToMenu {
			return fighter.ReturnToMenu
		}
	}
	return fighter.Continue
}

// moveFighter integrates vel into the body, stopping at solids, and returns
// the displacement actually applied.
func moveFighter(obj *components.ObjectData, vel fighter.Vector) dmath.Vec2 {
	if vel.X == 0 && vel.Y == 0 {
		return dmath.Vec2{}
	}

	dx := vel.X
	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		dx = blockedDX(obj.Object, dx, check.ObjectsByTags(tags.ResolvSolid))
	}

	from := obj.Feet()
	obj.SetFeet(fighter.Integrate(from, fighter.Vector{X: dx, Y: vel.Y}))
	obj.Update()

	to := obj.Feet()
	return dmath.Vec2{X: to.X - from.X, Y: to.Y - from.Y}
}

// blockedDX shortens a horizontal move so that obj stops flush against the
// first solid in its way. Solids that only touch the body from above or below
// (the floor under a standing fighter) do not block.
func blockedDX(obj *resolv.Object, dx float64, solids []*resolv.Object) float64 {
	for _, s := range solids {
		if s.Y >= obj.Y+obj.H || s.Y+s.H <= obj.Y {
			continue
		}
		switch {
		case dx > 0 && s.X >= obj.X+obj.W:
			dx = math.Min(dx, s.X-(obj.X+obj.W))
		case dx < 0 && s.X+s.W <= obj.X:
			dx = math.Max(dx, s.X+s.W-obj.X)
		}
	}
	return dx
}
