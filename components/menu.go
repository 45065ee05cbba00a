package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuFight MainMenuOption = iota
	MainMenuCharacter
	MainMenuDebug
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex  int
	VisibleOptions []MainMenuOption
	Characters     []string
	CharacterIndex int

	// Cursor bob, out and back, restarted each time it completes.
	CursorTween  *gween.Sequence
	CursorOffset float32
}

var Menu = donburi.NewComponentType[MenuData]()

// SelectedCharacter is the character picked in the menu, or "" when the menu
// has none.
func (m *MenuData) SelectedCharacter() string {
	if m.CharacterIndex < 0 || m.CharacterIndex >= len(m.Characters) {
		return ""
	}
	return m.Characters[m.CharacterIndex]
}
