package factory

import (
	"github.com/automoto/mauricefight/archetypes"
	"github.com/automoto/mauricefight/assets"
	"github.com/automoto/mauricefight/components"
	cfg "github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/fighter"
	"github.com/automoto/mauricefight/tags"
	"github.com/pkg/errors"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateFighter spawns a fighter of the given character standing at spawn.
// The machine is built first so that a misconfigured character leaves no
// entity behind.
func CreateFighter(ecs *ecs.ECS, c *cfg.CharacterConfig, spawn assets.FighterSpawn, tracer fighter.Tracer) (*donburi.Entry, error) {
	dir := fighter.Right
	if spawn.FacingLeft {
		dir = fighter.Left
	}
	machine, err := fighter.New(c, fighter.WithTracer(tracer), fighter.WithDirection(dir))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create fighter %s", c.Name)
	}

	var entry *donburi.Entry
	if spawn.Selected {
		entry = archetypes.Fighter.Spawn(ecs, tags.Selected)
	} else {
		entry = archetypes.Fighter.Spawn(ecs)
	}

	w := float64(cfg.Fighter.CollisionWidth)
	h := float64(cfg.Fighter.CollisionHeight)
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	object := components.ObjectData{Object: obj}
	object.SetFeet(math.Vec2{X: spawn.X, Y: spawn.Y})
	components.Object.SetValue(entry, object)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Fighter.SetValue(entry, components.FighterData{
		Machine:   machine,
		Character: c,
		Selected:  spawn.Selected,
	})
	components.State.SetValue(entry, components.StateData{
		CurrentState:  machine.State(),
		PreviousState: cfg.StateNone,
		Direction:     machine.Direction(),
	})
	components.SpriteSheet.Set(entry, GenerateSpriteSheet(c))

	return entry, nil
}
