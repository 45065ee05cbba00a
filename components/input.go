package components

import (
	cfg "github.com/automoto/mauricefight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
// Used by menus; fighters get key edges through KeyEdges.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Key edges polled this frame, presses first.
	Pressed  []ebiten.Key
	Released []ebiten.Key
}

var Input = donburi.NewComponentType[InputData]()
