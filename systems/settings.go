package systems

import (
	"github.com/automoto/mauricefight/components"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/yohamta/donburi/ecs"
)

// globalSettings carries the player's preferences from one scene's world to
// the next; every scene starts from a copy.
var globalSettings components.SettingsData

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the preferences of the previous scene if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, globalSettings)
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

// CommitSettings makes s the preferences of the following scenes and saves
// them.
func CommitSettings(s *components.SettingsData) {
	globalSettings = *s
	_ = SaveSettings(savedFrom(s))
}

// UpdateDebugToggle flips the debug overlay on F1.
func UpdateDebugToggle(e *ecs.ECS) {
	if !GetAction(getOrCreateInput(e), cfg.ActionDebug).JustPressed {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.Debug = !settings.Debug
	CommitSettings(settings)
}
