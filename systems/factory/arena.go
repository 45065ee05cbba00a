package factory

import (
	"github.com/automoto/mauricefight/archetypes"
	"github.com/automoto/mauricefight/assets"
	"github.com/automoto/mauricefight/assets/animations"
	"github.com/automoto/mauricefight/components"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/fighter"
	"github.com/pkg/errors"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ArenaOptions tunes how an arena is populated.
type ArenaOptions struct {
	// Character replaces the character of the selected spawn when set.
	Character string
	Tracer    fighter.Tracer
	Clock     animations.Clock
}

// CreateArena builds the whole fight: collision space, walls, fighters and a
// camera on the selected fighter.
func CreateArena(ecs *ecs.ECS, arena *assets.Arena, characters *cfg.CharacterSet, opts ArenaOptions) (*donburi.Entry, error) {
	if opts.Clock == nil {
		opts.Clock = animations.NewClock()
	}
	if opts.Tracer == nil {
		opts.Tracer = fighter.NopTracer
	}

	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.Set(entry, &components.ArenaData{
		Arena:      arena,
		Characters: characters.Names(),
		Clock:      opts.Clock,
	})

	CreateSpace(ecs, arena.Width, arena.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	for _, s := range arena.Solids {
		CreateWall(ecs, s)
	}

	focus := math.Vec2{X: float64(arena.Width) / 2, Y: float64(arena.Height) / 2}
	for _, spawn := range arena.Spawns {
		name := spawn.Character
		if spawn.Selected && opts.Character != "" {
			name = opts.Character
		}
		c, err := characters.Character(name)
		if err != nil {
			return nil, errors.Wrapf(err, "arena %s", arena.Name)
		}
		if _, err := CreateFighter(ecs, c, spawn, opts.Tracer); err != nil {
			return nil, err
		}
		if spawn.Selected {
			focus = math.Vec2{X: spawn.X, Y: spawn.Y}
		}
	}

	CreateCamera(ecs, focus)
	return entry, nil
}
