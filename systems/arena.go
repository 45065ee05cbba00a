package systems

import (
	"github.com/automoto/mauricefight/components"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena paints the backdrop and every solid of the arena. The floor is the
// widest solid; the rest are walls.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.BackgroundColor)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry).Arena
	if arena == nil {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	for _, s := range arena.Solids {
		c := cfg.Arena.WallColor
		if s.Width > s.Height {
			c = cfg.Arena.FloorColor
		}
		vector.FillRect(screen, float32(s.X+camX), float32(s.Y+camY), float32(s.Width), float32(s.Height), c, false)
	}
}

// ShouldReturnToMenu reports whether a fighter asked to leave the arena.
func ShouldReturnToMenu(ecs *ecs.ECS) bool {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return false
	}
	return components.Arena.Get(arenaEntry).ReturnToMenu
}
