package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/mauricefight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:data
	dataFS embed.FS
)

// Arena is a loaded fighting stage.
type Arena struct {
	Name   string
	Width  int
	Height int
	Solids []Solid
	Spawns []FighterSpawn
}

// Solid is a wall or floor rectangle.
type Solid struct {
	X, Y, Width, Height float64
}

// FighterSpawn places a fighter. X, Y is where its feet stand.
type FighterSpawn struct {
	X, Y       float64
	Character  string
	Selected   bool
	FacingLeft bool
}

// LoadCharacters reads the embedded character configuration.
func LoadCharacters() (*config.CharacterSet, error) {
	return config.LoadCharacters(dataFS, config.Arena.CharactersFile)
}

// LoadArena reads a TMX arena from the embedded levels.
func LoadArena(path string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(levelFS))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load arena %s", path)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solid":
			for _, o := range og.Objects {
				arena.Solids = append(arena.Solids, Solid{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "FighterSpawn":
			for _, o := range og.Objects {
				arena.Spawns = append(arena.Spawns, FighterSpawn{
					X:          o.X,
					Y:          o.Y,
					Character:  o.Properties.GetString("character"),
					Selected:   o.Properties.GetBool("selected"),
					FacingLeft: strings.EqualFold(o.Properties.GetString("facing"), "left"),
				})
			}
			// Left to right, like the stage reads
			sort.SliceStable(arena.Spawns, func(i, j int) bool {
				return arena.Spawns[i].X < arena.Spawns[j].X
			})
		}
	}

	if len(arena.Spawns) == 0 {
		return nil, errors.Errorf("arena %s has no fighter spawn points", path)
	}
	return arena, nil
}

// MustLoadArena is LoadArena for scene setup, where a broken arena is fatal.
func MustLoadArena(path string) *Arena {
	arena, err := LoadArena(path)
	if err != nil {
		panic(err)
	}
	return arena
}

type SheetLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewSheetLoader() *SheetLoader {
	return &SheetLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

// Sheet returns the sprite sheet of a character. The image is read from disk
// relative to the working directory; when it is missing a generated
// placeholder sheet is used instead.
func (l *SheetLoader) Sheet(c *config.CharacterConfig) *ebiten.Image {
	key := c.Name
	if img, ok := l.cache[key]; ok {
		return img
	}

	var img *ebiten.Image
	data, err := os.ReadFile(c.Sprite.Image)
	if err == nil {
		img, _, err = ebitenutil.NewImageFromReader(bytes.NewReader(data))
	}
	if err != nil {
		log.Printf("Warning: using a placeholder sheet for %s: %v", c.Name, err)
		img = ebiten.NewImageFromImage(PlaceholderSheet(c))
	}

	l.cache[key] = img
	return img
}

// Frame returns a cached sub-image of one sheet frame.
func (l *SheetLoader) Frame(c *config.CharacterConfig, index int, src image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%d", c.Name, index)
	if img, ok := l.frameCache[key]; ok {
		return img
	}
	frame := l.Sheet(c).SubImage(src).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

var sheetLoader = NewSheetLoader()

func GetSheet(c *config.CharacterConfig) *ebiten.Image {
	return sheetLoader.Sheet(c)
}

func GetFrame(c *config.CharacterConfig, index int, src image.Rectangle) *ebiten.Image {
	return sheetLoader.Frame(c, index, src)
}

// PlaceholderSheet draws a flat-colored stand-in sprite sheet for a character:
// a body that crouches in the crouch frames and reaches out in the attack
// frames, so every state is recognisable without art.
func PlaceholderSheet(c *config.CharacterConfig) *image.RGBA {
	size := c.Sprite.Size
	frames := c.Sprite.Frames
	for _, a := range c.Actions {
		if end := a.Sequence.Index + a.Sequence.Frames; end > frames {
			frames = end
		}
	}
	if frames < 1 {
		frames = 1
	}
	sheet := image.NewRGBA(image.Rect(0, 0, frames*size, size))

	body := bodyColor(c.Name)
	limb := color.RGBA{R: body.R / 2, G: body.G / 2, B: body.B / 2, A: 255}

	for _, a := range c.Actions {
		st, _ := config.StateForAction(a.Name)
		seq := a.Sequence
		for k := 0; k < seq.Frames; k++ {
			x0 := (seq.Index + k) * size
			drawPose(sheet, x0, size, st, k, seq.Frames, body, limb)
		}
	}
	return sheet
}

func drawPose(dst *image.RGBA, x0, size int, st config.StateID, k, n int, body, limb color.RGBA) {
	w := size / 4
	h := size * 7 / 10
	switch st {
	case config.Crouch:
		h = size * 4 / 10
	case config.EndCrouch:
		h = size*4/10 + (size*3/10)*(k+1)/n
	case config.Ko:
		h = size * 7 / 10 * (n - k) / n
	case config.Idle, config.Move:
		// bob
		h -= (k % 2) * 2
	}
	if h < 2 {
		h = 2
	}
	left := x0 + (size-w)/2
	fill(dst, image.Rect(left, size-h, left+w, size), body)

	reach := 0
	if n > 1 {
		reach = (size / 3) * k / (n - 1)
	}
	switch st {
	case config.LeftPunch, config.RightPunch:
		y := size - h + h/4
		if st == config.LeftPunch {
			y += h / 6
		}
		fill(dst, image.Rect(left+w, y, left+w+reach, y+size/14), limb)
	case config.HighKick:
		y := size - h/2 - h*k/(2*n)
		fill(dst, image.Rect(left+w, y, left+w+reach, y+size/10), limb)
	case config.Move:
		stride := size / 10 * (k%3 - 1)
		fill(dst, image.Rect(left+stride, size-size/10, left+w+stride, size), limb)
	}
}

func fill(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	xdraw.Draw(dst, r.Intersect(dst.Bounds()), &image.Uniform{C: c}, image.Point{}, xdraw.Src)
}

func bodyColor(name string) color.RGBA {
	var h uint32 = 2166136261
	for i := 0; i < len(name); i++ {
		h = (h ^ uint32(name[i])) * 16777619
	}
	return color.RGBA{R: 96 + uint8(h%128), G: 96 + uint8(h>>8%128), B: 96 + uint8(h>>16%128), A: 255}
}
