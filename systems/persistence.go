package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/mauricefight/components"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool   `json:"debug"`
	Fullscreen bool   `json:"fullscreen"`
	Character  string `json:"character"`
}

// settingsStore is the subset of *gdata.Manager persistence needs.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "mauricefight",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := store.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

func savedFrom(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
		Character:  s.Character,
	}
}

// ApplySavedSettingsGlobal applies settings before the first scene is created.
// Command-line debug flags win over the saved overlay preference.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	globalSettings = components.SettingsData{Debug: cfg.Debug.Overlay}
	if saved == nil {
		return
	}
	globalSettings = components.SettingsData{
		Debug:      saved.Debug || cfg.Debug.Overlay,
		Fullscreen: saved.Fullscreen,
		Character:  saved.Character,
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}
