package systems

import (
	"math"

	"github.com/automoto/mauricefight/components"
	"github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/tags"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// cameraView is what the camera needs to know about the frame.
type cameraView struct {
	target         dmath.Vec2 // feet of the selected fighter
	moved          dmath.Vec2 // its displacement this frame
	screenW        float64
	screenH        float64
	arenaW, arenaH float64
}

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	selected, ok := tags.Selected.First(e.World)
	if !ok {
		return
	}
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry).Arena
	if arena == nil {
		return
	}

	camera.Position = followCamera(camera.Position, cameraView{
		target:  components.Object.Get(selected).Feet(),
		moved:   components.State.Get(selected).Moved,
		screenW: float64(config.C.Width),
		screenH: float64(config.C.Height),
		arenaW:  float64(arena.Width),
		arenaH:  float64(arena.Height),
	})
}

// followCamera moves the camera along with the fighter while it walks and eases
// back onto it when it stands still. The fighter never drifts more than
// MaxDrift from the center, and the arena always fills the screen.
func followCamera(pos dmath.Vec2, v cameraView) dmath.Vec2 {
	if v.moved.X != 0 {
		pos.X += v.moved.X
	} else {
		pos.X += (v.target.X - pos.X) * config.Camera.FollowSmoothing
	}

	if drift := v.target.X - pos.X; math.Abs(drift) > config.Camera.MaxDrift {
		pos.X = v.target.X - math.Copysign(config.Camera.MaxDrift, drift)
	}

	// Floor at the bottom of the screen
	pos.Y = v.arenaH - v.screenH/2

	pos.X = clampAxis(pos.X, v.screenW, v.arenaW)
	pos.Y = clampAxis(pos.Y, v.screenH, v.arenaH)
	return pos
}

// clampAxis keeps a view of size span inside [0, limit], centering it when the
// arena is smaller than the view.
func clampAxis(center, span, limit float64) float64 {
	if limit <= span {
		return limit / 2
	}
	return math.Max(span/2, math.Min(limit-span/2, center))
}
