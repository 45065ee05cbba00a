package factory

import (
	"github.com/automoto/mauricefight/archetypes"
	"github.com/automoto/mauricefight/assets"
	"github.com/automoto/mauricefight/components"
	"github.com/automoto/mauricefight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a solid arena rectangle fighters cannot walk through.
func CreateWall(ecs *ecs.ECS, s assets.Solid) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(s.X, s.Y, s.Width, s.Height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, s.Width, s.Height))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
