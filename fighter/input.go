package fighter

import (
	"github.com/automoto/mauricefight/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// EventKind is the meaning of a translated key edge.
type EventKind int

const (
	Nothing EventKind = iota
	Move
	EndMove
	Crouch
	EndCrouch
	Attack
)

func (k EventKind) String() string {
	switch k {
	case Move:
		return "move"
	case EndMove:
		return "endmove"
	case Crouch:
		return "crouch"
	case EndCrouch:
		return "endcrouch"
	case Attack:
		return "attack"
	}
	return "nothing"
}

// AttackKind names the attack an Attack event asks for.
type AttackKind int

const (
	NoAttack AttackKind = iota
	HighKick
	LeftPunch
	RightPunch
)

// State returns the fighter state that performs the attack.
func (k AttackKind) State() config.StateID {
	switch k {
	case HighKick:
		return config.HighKick
	case LeftPunch:
		return config.LeftPunch
	case RightPunch:
		return config.RightPunch
	}
	return config.StateNone
}

// Event is a semantic input event. Direction is only meaningful for Move and
// Attack only for Attack.
type Event struct {
	Kind      EventKind
	Direction Direction
	Attack    AttackKind
}

// RawEvent is one key press or release edge from the input source.
type RawEvent struct {
	Key     ebiten.Key
	Pressed bool
}

func KeyDown(k ebiten.Key) RawEvent { return RawEvent{Key: k, Pressed: true} }
func KeyUp(k ebiten.Key) RawEvent { return RawEvent{Key: k} }

// InputState is what the translator knows about the held keys.
type InputState struct {
	Moving    bool
	Crouching bool
	Facing    Direction
}

// Translator turns raw key edges into semantic events for one fighter.
type Translator struct {
	bindings config.InputConfig
	held     map[ebiten.Key]bool
	state    InputState
}

func NewTranslator(bindings config.InputConfig) *Translator {
	return &Translator{
		bindings: bindings,
		held:     make(map[ebiten.Key]bool),
	}
}

// Translate maps a raw edge to a semantic event and updates the input state.
// Unbound keys, repeated presses of a held key and releases of a key that is
// not held all yield Nothing and leave the state untouched.
func (t *Translator) Translate(raw RawEvent) Event {
	action, ok := t.bindings.ActionForKey(raw.Key)
	if !ok || action == config.ActionMenu {
		return Event{}
	}
	if raw.Pressed == t.held[raw.Key] {
		return Event{}
	}
	if raw.Pressed {
		t.held[raw.Key] = true
	} else {
		delete(t.held, raw.Key)
	}

	switch action {
	case config.ActionMoveLeft, config.ActionMoveRight:
		dir := Right
		if action == config.ActionMoveLeft {
			dir = Left
		}
		t.state.Moving = t.horizontalHeld()
		if raw.Pressed {
			t.state.Facing = dir
			return Event{Kind: Move, Direction: dir}
		}
		if t.state.Moving {
			// the other direction is still held
			return Event{}
		}
		return Event{Kind: EndMove, Direction: t.state.Facing}
	case config.ActionCrouch:
		t.state.Crouching = raw.Pressed
		if raw.Pressed {
			return Event{Kind: Crouch}
		}
		return Event{Kind: EndCrouch}
	case config.ActionHighKick:
		return t.attack(raw, HighKick)
	case config.ActionLeftPunch:
		return t.attack(raw, LeftPunch)
	case config.ActionRightPunch:
		return t.attack(raw, RightPunch)
	}
	return Event{}
}

func (t *Translator) attack(raw RawEvent, kind AttackKind) Event {
	if !raw.Pressed {
		return Event{}
	}
	return Event{Kind: Attack, Attack: kind}
}

func (t *Translator) horizontalHeld() bool {
	for _, id := range []config.ActionID{config.ActionMoveLeft, config.ActionMoveRight} {
		for _, k := range t.bindings.Bindings[id].Keys {
			if t.held[k] {
				return true
			}
		}
	}
	return false
}

// IsMenuKey reports whether key leaves the fight.
func (t *Translator) IsMenuKey(key ebiten.Key) bool {
	action, ok := t.bindings.ActionForKey(key)
	return ok && action == config.ActionMenu
}

func (t *Translator) State() InputState {
	return t.state
}

// SetFacing seeds the facing direction, e.g. for a fighter spawned facing left.
func (t *Translator) SetFacing(d Direction) {
	t.state.Facing = d
}
