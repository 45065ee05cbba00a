package systems

import (
	"image"

	"github.com/automoto/mauricefight/components"
	"github.com/automoto/mauricefight/fighter"
	"github.com/automoto/mauricefight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawFighters renders every fighter's current frame, bottom-center on its
// feet. Off-screen fighters are skipped; the padding keeps sprites from
// popping at the edges.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	padding := 64.0
	minX := camera.Position.X - float64(width)/2 - padding
	maxX := camera.Position.X + float64(width)/2 + padding

	r := &sheetRenderer{
		screen:  screen,
		offsetX: float64(width)/2 - camera.Position.X,
		offsetY: float64(height)/2 - camera.Position.Y,
	}

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if o.X+o.W < minX || o.X > maxX {
			return
		}
		f := components.Fighter.Get(e)
		r.sheet = components.SpriteSheet.Get(e)
		f.Machine.Draw(r, r.sheet.Layout, o.Feet())
	})
}

// sheetRenderer draws frames cut from one sprite sheet onto the screen.
type sheetRenderer struct {
	screen           *ebiten.Image
	sheet            *components.SpriteSheetData
	offsetX, offsetY float64
}

func (r *sheetRenderer) DrawFrame(region image.Rectangle, pos fighter.Vector, mirror bool) {
	img := r.frame(region)
	if img == nil {
		return
	}
	display := r.sheet.Layout.Display

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Anchor on the display origin, bottom-center unless configured otherwise
	originX, originY := display.XOrigin, display.YOrigin
	if originX == 0 && originY == 0 {
		originX, originY = float64(region.Dx())/2, float64(region.Dy())
	}
	drawOp.GeoM.Translate(-originX, -originY)

	scale := display.Scale
	if scale == 0 {
		scale = 1
	}
	dir := fighter.Right
	if mirror {
		dir = fighter.Left
	}
	drawOp.GeoM.Scale(fighter.ScaleX(dir, scale), scale)

	drawOp.GeoM.Translate(pos.X, pos.Y)
	drawOp.GeoM.Translate(r.offsetX, r.offsetY)

	r.screen.DrawImage(img, drawOp)
}

// frame returns the cached sub-image for region, cutting it on first use.
func (r *sheetRenderer) frame(region image.Rectangle) *ebiten.Image {
	if r.sheet == nil || r.sheet.Sheet == nil {
		return nil
	}
	index := 0
	if size := r.sheet.Layout.Size; size > 0 {
		index = region.Min.X / size
	}
	if img, ok := r.sheet.CachedFrames[index]; ok {
		return img
	}
	img := r.sheet.Sheet.SubImage(region).(*ebiten.Image)
	if r.sheet.CachedFrames == nil {
		r.sheet.CachedFrames = make(map[int]*ebiten.Image)
	}
	r.sheet.CachedFrames[index] = img
	return img
}
