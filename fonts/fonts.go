package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every font name with the Go fonts.
func LoadDefaults() {
	LoadFontWithSize(Regular, goregular.TTF, 12)
	LoadFontWithSize(Bold, gobold.TTF, 16)
	LoadFontWithSize(Title, gobold.TTF, 32)
	LoadFontWithSize(Small, goregular.TTF, 10)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

// Width is the advance of s drawn with face, in pixels.
func Width(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
