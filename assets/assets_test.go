package assets

import (
	"image/color"
	"testing"

	"github.com/automoto/mauricefight/config"
)

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena(config.Arena.Level)
	if err != nil {
		t.Fatalf("LoadArena() error = %v", err)
	}
	if arena.Name != "arena" {
		t.Errorf("Name = %q, want arena", arena.Name)
	}
	if arena.Width != 1200 || arena.Height != 368 {
		t.Errorf("size = %dx%d, want 1200x368", arena.Width, arena.Height)
	}
	if len(arena.Solids) != 3 {
		t.Errorf("got %d solids, want 3", len(arena.Solids))
	}

	want := []FighterSpawn{
		{X: 320, Y: 320, Character: "maurice", Selected: true},
		{X: 720, Y: 320, Character: "jeanjacques", FacingLeft: true},
		{X: 960, Y: 320, Character: "maurice", FacingLeft: true},
	}
	if len(arena.Spawns) != len(want) {
		t.Fatalf("got %d spawns, want %d", len(arena.Spawns), len(want))
	}
	for i := range want {
		if arena.Spawns[i] != want[i] {
			t.Errorf("spawn %d = %+v, want %+v", i, arena.Spawns[i], want[i])
		}
	}
}

func TestLoadArenaMissing(t *testing.T) {
	if _, err := LoadArena("levels/nowhere.tmx"); err == nil {
		t.Error("LoadArena() on a missing file should fail")
	}
}

func TestEmbeddedCharacters(t *testing.T) {
	set, err := LoadCharacters()
	if err != nil {
		t.Fatalf("LoadCharacters() error = %v", err)
	}
	for _, name := range []string{"maurice", "jeanjacques"} {
		c, err := set.Character(name)
		if err != nil {
			t.Errorf("Character(%q) error = %v", name, err)
			continue
		}
		if _, err := c.StateAnimations(); err != nil {
			t.Errorf("%s: StateAnimations() error = %v", name, err)
		}
	}

	// the embedded file and the built-in tables describe the same characters
	for name, defs := range config.CharacterAnimations {
		c, err := set.Character(name)
		if err != nil {
			t.Errorf("built-in %q missing from the file", name)
			continue
		}
		for st, want := range defs {
			got, err := c.Action(st.ActionName())
			if err != nil {
				t.Errorf("%s: %v", name, err)
				continue
			}
			if got != want {
				t.Errorf("%s %s = %+v, want %+v", name, st, got, want)
			}
		}
	}
}

func TestPlaceholderSheet(t *testing.T) {
	c, ok := config.BuiltinCharacter("maurice")
	if !ok {
		t.Fatal("maurice is not a built-in character")
	}
	sheet := PlaceholderSheet(c)

	b := sheet.Bounds()
	if b.Dx() != 39*100 || b.Dy() != 100 {
		t.Fatalf("sheet is %dx%d, want 3900x100", b.Dx(), b.Dy())
	}

	// every configured frame has a body standing on the bottom edge
	for _, a := range c.Actions {
		for k := 0; k < a.Sequence.Frames; k++ {
			x := (a.Sequence.Index+k)*100 + 50
			if _, _, _, alpha := sheet.At(x, 99).RGBA(); alpha == 0 {
				t.Errorf("%s frame %d is empty", a.Name, k)
			}
		}
	}
	// and nothing above the head of the crouch pose
	crouch, _ := c.Action("crouch")
	if got := sheet.RGBAAt(crouch.Start*100+50, 40); got != (color.RGBA{}) {
		t.Errorf("crouch frame drawn at head height: %v", got)
	}
}
