package systems

import (
	"testing"

	"github.com/automoto/mauricefight/components"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestSetMenuCharacters(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	SetMenuCharacters(e, []string{"maurice", "jeanjacques"}, "jeanjacques")
	if got := GetOrCreateMenu(e).SelectedCharacter(); got != "jeanjacques" {
		t.Errorf("SelectedCharacter() = %q, want the preferred one", got)
	}

	SetMenuCharacters(e, []string{"maurice", "jeanjacques"}, "nobody")
	if got := GetOrCreateMenu(e).SelectedCharacter(); got != "maurice" {
		t.Errorf("SelectedCharacter() = %q, want the first one", got)
	}

	if got := (&components.MenuData{}).SelectedCharacter(); got != "" {
		t.Errorf("empty menu picked %q", got)
	}
}

func TestCycleCharacter(t *testing.T) {
	t.Cleanup(func() { globalSettings = components.SettingsData{} })

	e := ecs.NewECS(donburi.NewWorld())
	SetMenuCharacters(e, []string{"maurice", "jeanjacques"}, "")
	menu := GetOrCreateMenu(e)

	cycleCharacter(e, menu, -1)
	if got := menu.SelectedCharacter(); got != "jeanjacques" {
		t.Errorf("left from the first = %q, want wrap to jeanjacques", got)
	}
	cycleCharacter(e, menu, +1)
	if got := menu.SelectedCharacter(); got != "maurice" {
		t.Errorf("right from the last = %q, want wrap to maurice", got)
	}

	// the choice outlives the menu's world
	if globalSettings.Character != "maurice" {
		t.Errorf("committed character = %q", globalSettings.Character)
	}
	next := ecs.NewECS(donburi.NewWorld())
	if got := GetOrCreateSettings(next).Character; got != "maurice" {
		t.Errorf("next scene starts with %q", got)
	}
}

func TestMenuOptionLabels(t *testing.T) {
	menu := &components.MenuData{Characters: []string{"maurice"}}
	settings := &components.SettingsData{Debug: true}

	tests := []struct {
		option components.MainMenuOption
		want   string
	}{
		{components.MainMenuFight, "Fight"},
		{components.MainMenuCharacter, "< maurice >"},
		{components.MainMenuDebug, "Debug: On"},
		{components.MainMenuExit, "Exit"},
	}
	for _, tt := range tests {
		if got := getOptionLabel(tt.option, menu, settings); got != tt.want {
			t.Errorf("label(%d) = %q, want %q", tt.option, got, tt.want)
		}
	}
}

func TestMenuCursorBobs(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	menu := GetOrCreateMenu(e)

	peak := float32(0)
	for i := 0; i < 120; i++ {
		updateCursor(menu)
		if menu.CursorOffset < 0 || menu.CursorOffset > cfg.Menu.CursorTravel {
			t.Fatalf("offset %v out of [0, %v]", menu.CursorOffset, cfg.Menu.CursorTravel)
		}
		if menu.CursorOffset > peak {
			peak = menu.CursorOffset
		}
	}
	if peak < cfg.Menu.CursorTravel/2 {
		t.Errorf("cursor barely moved, peak %v", peak)
	}
}
