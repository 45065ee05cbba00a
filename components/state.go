package components

import (
	"github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/fighter"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// StateData mirrors the fighter machine for systems that only read it
// (HUD, debug overlay). UpdateStates refreshes it every frame.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	Direction     fighter.Direction
	Frame         int
	StateTimer    int       // frames spent in CurrentState
	Moved         math.Vec2 // displacement applied by the last tick
}

var State = donburi.NewComponentType[StateData]()
