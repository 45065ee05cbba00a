package config

import "strings"

// StateID identifies a fighter state. The set is closed: the state machine
// only ever holds one of FighterStates.
type StateID int

// StateNone marks the absence of a state, e.g. the source of the first trace.
const StateNone StateID = -1

const (
	Idle StateID = iota
	Move
	Crouch
	EndCrouch
	HighKick
	LeftPunch
	RightPunch

	// Ko is reserved for knock-outs; no transition leads to it yet.
	Ko
)

// FighterStates lists every state a fighter can be in, in table order.
var FighterStates = []StateID{Idle, Move, Crouch, EndCrouch, HighKick, LeftPunch, RightPunch}

// StateToActionName maps a state to the action name used by character configuration.
var StateToActionName = map[StateID]string{
	Idle:       "idle",
	Move:       "walking",
	Crouch:     "crouch",
	EndCrouch:  "endcrouch",
	HighKick:   "highkick",
	LeftPunch:  "leftpunch",
	RightPunch: "rightpunch",
	Ko:         "ko",
}

// ActionName returns the configuration action name for the state.
func (s StateID) ActionName() string {
	return StateToActionName[s]
}

func (s StateID) String() string {
	if name, ok := StateToActionName[s]; ok {
		return name
	}
	if s == StateNone {
		return "none"
	}
	return "unknown"
}

// IsFighterState reports whether s belongs to FighterStates.
func (s StateID) IsFighterState() bool {
	for _, st := range FighterStates {
		if st == s {
			return true
		}
	}
	return false
}

// IsAttack reports whether s is one of the attack states.
func (s StateID) IsAttack() bool {
	return s == HighKick || s == LeftPunch || s == RightPunch
}

// StateForAction returns the state using the given action name (case-insensitive).
func StateForAction(action string) (StateID, bool) {
	for st, name := range StateToActionName {
		if strings.EqualFold(name, action) {
			return st, true
		}
	}
	return StateNone, false
}

// DefaultRepeat is the repeat policy an action gets when its configuration
// does not name one: transitional and attack animations play once.
func DefaultRepeat(action string) RepeatMode {
	st, ok := StateForAction(action)
	if !ok {
		return Repeated
	}
	switch {
	case st.IsAttack(), st == EndCrouch, st == Ko:
		return OneShot
	}
	return Repeated
}
