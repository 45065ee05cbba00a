package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionCrouch
	ActionHighKick
	ActionLeftPunch
	ActionRightPunch
	ActionMenu // leaves the fight, handled outside the fighter's event set
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding lists the keys bound to an action.
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// ActionForKey returns the first fighter or menu-exit action bound to key.
// Menu navigation actions are not considered.
func (c InputConfig) ActionForKey(key ebiten.Key) (ActionID, bool) {
	for _, id := range fighterActions {
		for _, k := range c.Bindings[id].Keys {
			if k == key {
				return id, true
			}
		}
	}
	return ActionNone, false
}

// fighterActions are the actions a fighter's key translator looks at, in
// priority order when one key is bound twice.
var fighterActions = []ActionID{
	ActionMenu,
	ActionMoveLeft,
	ActionMoveRight,
	ActionCrouch,
	ActionHighKick,
	ActionLeftPunch,
	ActionRightPunch,
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:   {Keys: []ebiten.Key{ebiten.KeyLeft}},
			ActionMoveRight:  {Keys: []ebiten.Key{ebiten.KeyRight}},
			ActionCrouch:     {Keys: []ebiten.Key{ebiten.KeyDown}},
			ActionHighKick:   {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionLeftPunch:  {Keys: []ebiten.Key{ebiten.KeyB}},
			ActionRightPunch: {Keys: []ebiten.Key{ebiten.KeyC}},
			ActionMenu:       {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionMenuUp:     {Keys: []ebiten.Key{ebiten.KeyUp}},
			ActionMenuDown:   {Keys: []ebiten.Key{ebiten.KeyDown}},
			ActionMenuLeft:   {Keys: []ebiten.Key{ebiten.KeyLeft}},
			ActionMenuRight:  {Keys: []ebiten.Key{ebiten.KeyRight}},
			ActionMenuSelect: {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
			ActionDebug:      {Keys: []ebiten.Key{ebiten.KeyF1}},
		},
	}
}
