package factory

import (
	"github.com/automoto/mauricefight/assets"
	"github.com/automoto/mauricefight/components"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/fighter"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateSpriteSheet loads the sheet of a character and cuts every frame one
// of its actions can show.
func GenerateSpriteSheet(c *cfg.CharacterConfig) *components.SpriteSheetData {
	data := &components.SpriteSheetData{
		Sheet:        assets.GetSheet(c),
		Layout:       c.Sprite,
		CachedFrames: make(map[int]*ebiten.Image),
	}
	for _, a := range c.Actions {
		for i := 0; i < a.Sequence.Frames; i++ {
			index := a.Sequence.Index + i
			data.CachedFrames[index] = assets.GetFrame(c, index, fighter.FrameRegion(index, c.Sprite))
		}
	}
	return data
}
