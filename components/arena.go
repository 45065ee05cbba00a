package components

import (
	"github.com/automoto/mauricefight/assets"
	"github.com/automoto/mauricefight/assets/animations"
	"github.com/yohamta/donburi"
)

type ArenaData struct {
	Arena      *assets.Arena
	Characters []string
	Clock      animations.Clock
	// ReturnToMenu is raised when the selected fighter asks to leave.
	ReturnToMenu bool
}

var Arena = donburi.NewComponentType[ArenaData]()
