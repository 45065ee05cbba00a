package systems

import (
	"testing"

	"github.com/automoto/mauricefight/components"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestPollActions(t *testing.T) {
	held := map[ebiten.Key]bool{}
	isPressed := func(k ebiten.Key) bool { return held[k] }
	input := &components.InputData{}

	held[ebiten.KeySpace] = true
	pollActions(input, isPressed)
	if got := GetAction(input, cfg.ActionMenuSelect); !got.Pressed || !got.JustPressed {
		t.Errorf("first frame = %+v, want pressed and just pressed", got)
	}

	pollActions(input, isPressed)
	if got := GetAction(input, cfg.ActionMenuSelect); !got.Pressed || got.JustPressed {
		t.Errorf("second frame = %+v, want held only", got)
	}

	delete(held, ebiten.KeySpace)
	pollActions(input, isPressed)
	if got := GetAction(input, cfg.ActionMenuSelect); got.Pressed || !got.JustReleased {
		t.Errorf("release frame = %+v, want just released", got)
	}

	// one key can drive several actions
	held[ebiten.KeyDown] = true
	pollActions(input, isPressed)
	if !input.Current[cfg.ActionMenuDown] || !input.Current[cfg.ActionCrouch] {
		t.Error("down should hold both menu down and crouch")
	}
}
