package systems

import (
	"github.com/automoto/mauricefight/components"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard once per frame: held actions for menus and
// key edges for fighters. Must run before UpdateFighters and UpdateMenu.
func UpdateInput(ecs *ecs.ECS) {
	_, existed := components.Input.First(ecs.World)
	input := getOrCreateInput(ecs)
	pollActions(input, ebiten.IsKeyPressed)
	if !existed {
		// Keys held across a scene change are not new presses
		input.Previous = input.Current
	}

	// Reuse the slices to avoid per-frame allocations
	input.Pressed = inpututil.AppendJustPressedKeys(input.Pressed[:0])
	input.Released = inpututil.AppendJustReleasedKeys(input.Released[:0])
}

// pollActions swaps the action buffers and records which actions are held.
func pollActions(input *components.InputData, isPressed func(ebiten.Key) bool) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if isPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
