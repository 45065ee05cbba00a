package components

import "github.com/yohamta/donburi"

// SettingsData holds the player's preferences, persisted between runs.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	Character  string // character picked in the menu
}

var Settings = donburi.NewComponentType[SettingsData]()
