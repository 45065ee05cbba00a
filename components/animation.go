package components

import (
	"github.com/automoto/mauricefight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteSheetData is the drawable side of a fighter: its sheet and the frames
// cut from it, keyed by sheet index.
type SpriteSheetData struct {
	Sheet        *ebiten.Image
	Layout       config.SpriteLayout
	CachedFrames map[int]*ebiten.Image
}

var SpriteSheet = donburi.NewComponentType[SpriteSheetData]()
