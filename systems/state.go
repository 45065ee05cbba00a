package systems

import (
	"github.com/automoto/mauricefight/components"
	"github.com/automoto/mauricefight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates copies each fighter machine into its StateData. Runs after
// UpdateFighters.
func UpdateStates(ecs *ecs.ECS) {
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		syncState(components.State.Get(e), f)
	})
}

func syncState(state *components.StateData, f *components.FighterData) {
	m := f.Machine
	if m.State() != state.CurrentState {
		state.PreviousState = state.CurrentState
		state.CurrentState = m.State()
		state.StateTimer = 0
	} else {
		state.StateTimer++
	}
	state.Direction = m.Direction()
	state.Frame = m.Frame()
}
