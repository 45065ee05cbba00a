package systems

import (
	"github.com/automoto/mauricefight/components"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/fonts"
	"github.com/automoto/mauricefight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const controlsHint = "Arrows: Move/Crouch   A: Kick   B/C: Punch   Esc: Menu   F1: Debug"

// DrawHUD renders the selected fighter's name in the top-left corner and the
// controls in the top-right one.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	selected, ok := tags.Selected.First(ecs.World)
	if !ok {
		return
	}
	f := components.Fighter.Get(selected)
	margin := cfg.HUD.Margin

	nameFont := fonts.Bold.Get()
	text.Draw(screen, f.Machine.Name(), nameFont, margin, margin+16, cfg.HUD.TextColor)

	hintFont := fonts.Small.Get()
	width := screen.Bounds().Dx()
	x := width - margin - fonts.Width(hintFont, controlsHint)
	text.Draw(screen, controlsHint, hintFont, x, margin+10, cfg.HUD.TextColor)
}
