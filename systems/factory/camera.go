package factory

import (
	"github.com/automoto/mauricefight/archetypes"
	"github.com/automoto/mauricefight/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the camera centered on at.
func CreateCamera(ecs *ecs.ECS, at math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: at})
	return camera
}
