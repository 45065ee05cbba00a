package systems

import (
	"os"

	"github.com/automoto/mauricefight/components"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// createArenaScene receives the character picked for the selected fighter.
func NewUpdateMenu(sceneChanger SceneChanger, createArenaScene func(character string) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)
		updateCursor(menu)

		// Navigate menu with wrap-around
		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		selectedOption := menu.VisibleOptions[menu.SelectedIndex]
		if selectedOption == components.MainMenuCharacter {
			if GetAction(input, cfg.ActionMenuLeft).JustPressed {
				cycleCharacter(e, menu, -1)
			}
			if GetAction(input, cfg.ActionMenuRight).JustPressed {
				cycleCharacter(e, menu, +1)
			}
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch selectedOption {
			case components.MainMenuFight:
				sceneChanger.ChangeScene(createArenaScene(menu.SelectedCharacter()))
			case components.MainMenuCharacter:
				cycleCharacter(e, menu, +1)
			case components.MainMenuDebug:
				settings := GetOrCreateSettings(e)
				settings.Debug = !settings.Debug
				CommitSettings(settings)
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		// Escape leaves the game from the menu
		if GetAction(input, cfg.ActionMenu).JustPressed {
			os.Exit(0)
		}
	}
}

// cycleCharacter steps the character choice and remembers it.
func cycleCharacter(e *ecs.ECS, menu *components.MenuData, step int) {
	n := len(menu.Characters)
	if n == 0 {
		return
	}
	menu.CharacterIndex = (menu.CharacterIndex + step + n) % n

	settings := GetOrCreateSettings(e)
	settings.Character = menu.SelectedCharacter()
	CommitSettings(settings)
}

// updateCursor advances the selection cursor bob by one frame.
func updateCursor(menu *components.MenuData) {
	if menu.CursorTween == nil {
		return
	}
	offset, _, done := menu.CursorTween.Update(1 / float32(ebiten.TPS()))
	menu.CursorOffset = offset
	if done {
		menu.CursorTween.Reset()
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	settings := GetOrCreateSettings(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := cfg.Menu.Title
	titleX := int((width - float64(fonts.Width(titleFont, title))) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := getOptionLabel(option, menu, settings)
		x := int((width - float64(fonts.Width(menuFont, label))) / 2)
		baseline := int(y) + int(cfg.Menu.MenuItemHeight)
		text.Draw(screen, label, menuFont, x, baseline, textColor)

		if i == menu.SelectedIndex {
			cursorX := x - 20 - int(menu.CursorOffset)
			text.Draw(screen, ">", menuFont, cursorX, baseline, textColor)
		}
	}

	hint := "Up/Down: Navigate   Left/Right: Character   Enter: Select"
	hintFont := fonts.Small.Get()
	hintX := int((width - float64(fonts.Width(hintFont, hint))) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Menu.TextColorNormal)
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption, menu *components.MenuData, settings *components.SettingsData) string {
	switch option {
	case components.MainMenuFight:
		return "Fight"
	case components.MainMenuCharacter:
		return "< " + menu.SelectedCharacter() + " >"
	case components.MainMenuDebug:
		if settings.Debug {
			return "Debug: On"
		}
		return "Debug: Off"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed.
// Characters must be set with SetMenuCharacters before the menu is shown.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		visibleOptions := []components.MainMenuOption{
			components.MainMenuFight,
			components.MainMenuCharacter,
			components.MainMenuDebug,
			components.MainMenuExit,
		}

		travel, period := cfg.Menu.CursorTravel, cfg.Menu.CursorPeriod
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex:  0,
			VisibleOptions: visibleOptions,
			CursorTween: gween.NewSequence(
				gween.New(0, travel, period, ease.OutQuad),
				gween.New(travel, 0, period, ease.InQuad),
			),
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}

// SetMenuCharacters lists the selectable characters, preselecting preferred
// when it is one of them.
func SetMenuCharacters(e *ecs.ECS, names []string, preferred string) {
	menu := GetOrCreateMenu(e)
	menu.Characters = names
	menu.CharacterIndex = 0
	for i, name := range names {
		if name == preferred {
			menu.CharacterIndex = i
		}
	}
}
