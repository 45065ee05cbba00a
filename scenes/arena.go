package scenes

import (
	"image/color"
	"log"
	"log/slog"
	"sync"

	"github.com/automoto/mauricefight/assets"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/fighter"
	"github.com/automoto/mauricefight/systems"
	"github.com/automoto/mauricefight/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the fight: every fighter of the arena, the selected one
// driven by the keyboard.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	character    string
	once         sync.Once
}

// NewArenaScene creates the arena scene. character replaces the selected
// fighter's character when set.
func NewArenaScene(sc SceneChanger, character string) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, character: character}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if systems.ShouldReturnToMenu(as.ecs) {
		as.sceneChanger.ChangeScene(NewMenuScene(as.sceneChanger))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, then fighters, then whatever reads them
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebugToggle)
	ecs.AddSystem(systems.UpdateFighters)
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawFighters)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	as.ecs = ecs

	arena := assets.MustLoadArena(cfg.Arena.Level)
	_, err := factory.CreateArena(ecs, arena, loadCharacters(), factory.ArenaOptions{
		Character: as.character,
		Tracer:    transitionTracer(),
	})
	if err != nil {
		panic(err)
	}
}

// loadCharacters reads the character file, falling back to the built-in
// characters when it is broken.
func loadCharacters() *cfg.CharacterSet {
	set, err := assets.LoadCharacters()
	if err != nil {
		log.Printf("Warning: using built-in characters: %v", err)
		return cfg.BuiltinCharacters()
	}
	return set
}

func transitionTracer() fighter.Tracer {
	if !cfg.Debug.TraceTransitions {
		return fighter.NopTracer
	}
	return fighter.NewLogTracer(slog.Default())
}
