package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Feet is the bottom-center of the body, where a fighter stands.
func (o *ObjectData) Feet() math.Vec2 {
	return math.Vec2{X: o.X + o.W/2, Y: o.Y + o.H}
}

// SetFeet moves the body so that its bottom-center is at p.
func (o *ObjectData) SetFeet(p math.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
