package components

import (
	"github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/fighter"
	"github.com/yohamta/donburi"
)

type FighterData struct {
	Machine   *fighter.Machine
	Character *config.CharacterConfig
	// Selected fighters receive keyboard input; the others only animate.
	Selected bool
}

var Fighter = donburi.NewComponentType[FighterData]()
