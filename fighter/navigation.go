package fighter

import (
	"github.com/automoto/mauricefight/config"
	"github.com/yohamta/donburi/features/math"
)

// Vector is a position or velocity in world pixels.
type Vector = math.Vec2

// Velocity is the movement of a fighter playing def while facing dir. Facing
// alone sets the sign.
func Velocity(def config.AnimationDef, dir Direction) Vector {
	return Vector{X: def.Speed * dir.Sign()}
}

// Integrate applies one tick of velocity to pos.
func Integrate(pos, vel Vector) Vector {
	return Vector{X: pos.X + vel.X, Y: pos.Y + vel.Y}
}

// Mirror reports whether the sprite must be flipped horizontally. Sheets are
// drawn facing right.
func Mirror(dir Direction) bool {
	return dir == Left
}

// ScaleX is the horizontal draw scale for a sprite displayed at scale.
func ScaleX(dir Direction, scale float64) float64 {
	return scale * dir.Sign()
}
