package fighter

import (
	"image"

	"github.com/automoto/mauricefight/config"
)

// Renderer draws one sprite sheet region with its bottom-center anchor at pos.
type Renderer interface {
	DrawFrame(region image.Rectangle, pos Vector, mirror bool)
}

// FrameRegion is the sheet rectangle of frame index. Frames are square and
// laid out left to right on a single row.
func FrameRegion(index int, layout config.SpriteLayout) image.Rectangle {
	x := index * layout.Size
	return image.Rect(x, 0, x+layout.Size, layout.Size)
}

// Draw hands the current frame to r.
func (m *Machine) Draw(r Renderer, layout config.SpriteLayout, pos Vector) {
	r.DrawFrame(FrameRegion(m.SheetIndex(), layout), pos, Mirror(m.direction))
}
