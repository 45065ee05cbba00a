package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/mauricefight/components"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/fighter"
	"github.com/automoto/mauricefight/fonts"
	"github.com/automoto/mauricefight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	// Get camera for world-space rendering.
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		// Viewport in world coordinates
		viewX := camera.Position.X - float64(width)/2
		viewY := camera.Position.Y - float64(height)/2
		viewW := float64(width)
		viewH := float64(height)

		for _, obj := range space.Objects() {
			if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
				continue
			}

			x := obj.X + camX
			y := obj.Y + camY

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = cfg.Grey
			} else if obj.HasTags(tags.ResolvFighter) {
				c = cfg.Green
			}

			// Draw outline
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	// State label above every fighter
	face := fonts.Small.Get()
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		label := fighterLabel(components.State.Get(e))
		x := int(o.X+o.W/2+camX) - fonts.Width(face, label)/2
		y := int(o.Y+camY) - 4
		text.Draw(screen, label, face, x, y, cfg.HUD.DebugColor)
	})

	// Held keys of the selected fighter
	if selected, ok := tags.Selected.First(ecs.World); ok {
		m := components.Fighter.Get(selected).Machine
		line := inputLabel(m.Input(), m.TickCount())
		text.Draw(screen, line, face, cfg.HUD.Margin, height-cfg.HUD.Margin, cfg.HUD.DebugColor)
	}
}

// fighterLabel reads like "walking left #3".
func fighterLabel(s *components.StateData) string {
	return fmt.Sprintf("%s %s #%d", s.CurrentState, s.Direction, s.Frame)
}

func inputLabel(in fighter.InputState, ticks uint64) string {
	held := func(name string, on bool) string {
		if on {
			return name
		}
		return "-"
	}
	return fmt.Sprintf("tick %d  held [%s %s]  facing %s", ticks,
		held("move", in.Moving), held("crouch", in.Crouching), in.Facing)
}
