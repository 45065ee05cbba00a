package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createArenaScene := func(character string) interface{} {
		return NewArenaScene(ms.sceneChanger, character)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createArenaScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	settings := systems.GetOrCreateSettings(ms.ecs)
	systems.SetMenuCharacters(ms.ecs, loadCharacters().Names(), settings.Character)
}
