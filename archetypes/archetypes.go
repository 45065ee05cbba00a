package archetypes

import (
	"github.com/automoto/mauricefight/components"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.SpriteSheet,
		components.State,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components[:len(a.components):len(a.components)], cs...)...,
	))
	return e
}
